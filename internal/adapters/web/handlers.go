package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"bluegold-store/internal/app"

	"github.com/go-chi/chi/v5"
)

// Handler holds the StoreService and the chi router.
type Handler struct {
	svc    app.StoreService
	router chi.Router
}

// NewHandler creates and wires the chi router with all routes.
func NewHandler(svc app.StoreService, allowedOrigins string) http.Handler {
	h := &Handler{svc: svc}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(Logger)
	r.Use(Recoverer)
	r.Use(CORS(allowedOrigins))
	r.Use(RequestBodyLimit(1 << 20)) // 1 MB

	r.Get("/api/health", h.health)

	// ── Catalog & localization ───────────────────────────────────────────────
	r.Get("/api/products", h.listProducts)
	r.Get("/api/products/{id}", h.getProduct)
	r.Get("/api/i18n/{locale}", h.translations)

	// ── Session carts ────────────────────────────────────────────────────────
	r.Post("/api/carts", h.createCart)
	r.Get("/api/carts/{id}", h.getCart)
	r.Post("/api/carts/{id}/items", h.addCartItem)
	r.Patch("/api/carts/{id}/items/{productID}", h.adjustCartItem)
	r.Delete("/api/carts/{id}/items/{productID}", h.removeCartItem)

	// ── Recommendation chat ──────────────────────────────────────────────────
	r.Post("/api/recommend", h.recommend)

	h.router = r
	return r
}

// health reports service status and catalog size.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	type response struct {
		Status   string `json:"status"`
		Products int    `json:"products"`
	}
	writeJSON(w, http.StatusOK, response{Status: "ok", Products: len(h.svc.ListProducts())})
}

// decodeJSON decodes the request body into v and returns false + writes an
// appropriate error response on failure. Returns HTTP 413 when the body exceeds
// the RequestBodyLimit; HTTP 400 for all other decode errors.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeError(w, r, "request body too large", "REQUEST_TOO_LARGE", http.StatusRequestEntityTooLarge)
			return false
		}
		writeError(w, r, "invalid JSON body: "+err.Error(), "BAD_REQUEST", http.StatusBadRequest)
		return false
	}
	return true
}
