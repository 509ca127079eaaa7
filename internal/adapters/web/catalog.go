package web

import (
	"net/http"
	"strconv"

	"bluegold-store/internal/core"

	"github.com/go-chi/chi/v5"
)

// listProducts handles GET /api/products.
func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"products": h.svc.ListProducts()})
}

// getProduct handles GET /api/products/{id}.
func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, "invalid product id", "BAD_REQUEST", http.StatusBadRequest)
		return
	}

	p, err := h.svc.GetProduct(id)
	if err != nil {
		writeError(w, r, "product not found", "NOT_FOUND", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// translations handles GET /api/i18n/{locale} — the full static string table
// resolved to one locale. Unsupported locales fall back to Hebrew.
func (h *Handler) translations(w http.ResponseWriter, r *http.Request) {
	locale := core.ParseLocale(chi.URLParam(r, "locale"))
	writeJSON(w, http.StatusOK, map[string]any{
		"locale":  locale,
		"strings": h.svc.Translations(locale),
	})
}
