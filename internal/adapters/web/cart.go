package web

import (
	"errors"
	"net/http"
	"strconv"

	"bluegold-store/internal/app"

	"github.com/go-chi/chi/v5"
)

// createCart handles POST /api/carts.
func (h *Handler) createCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusCreated, h.svc.CreateCart())
}

// getCart handles GET /api/carts/{id}.
func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.GetCart(chi.URLParam(r, "id"))
	if err != nil {
		h.writeCartError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// addCartItem handles POST /api/carts/{id}/items.
func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID int `json:"product_id"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.svc.AddToCart(chi.URLParam(r, "id"), req.ProductID)
	if err != nil {
		h.writeCartError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// adjustCartItem handles PATCH /api/carts/{id}/items/{productID}. The body
// carries a signed quantity delta; the resulting quantity is clamped at 1.
func (h *Handler) adjustCartItem(w http.ResponseWriter, r *http.Request) {
	productID, ok := productIDParam(w, r)
	if !ok {
		return
	}

	var req struct {
		Delta int `json:"delta"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.svc.AdjustCartLine(chi.URLParam(r, "id"), productID, req.Delta)
	if err != nil {
		h.writeCartError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// removeCartItem handles DELETE /api/carts/{id}/items/{productID}.
func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	productID, ok := productIDParam(w, r)
	if !ok {
		return
	}

	result, err := h.svc.RemoveFromCart(chi.URLParam(r, "id"), productID)
	if err != nil {
		h.writeCartError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func productIDParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "productID"))
	if err != nil {
		writeError(w, r, "invalid product id", "BAD_REQUEST", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func (h *Handler) writeCartError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, app.ErrCartNotFound):
		writeError(w, r, "cart not found", "NOT_FOUND", http.StatusNotFound)
	case errors.Is(err, app.ErrProductNotFound):
		writeError(w, r, "product not found", "NOT_FOUND", http.StatusNotFound)
	default:
		writeError(w, r, "internal server error", "INTERNAL_ERROR", http.StatusInternalServerError)
	}
}
