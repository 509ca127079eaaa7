package web

import (
	"net/http"
	"strings"

	"bluegold-store/internal/app"
	"bluegold-store/internal/core"
)

// recommend handles POST /api/recommend — one inventory-grounded model
// exchange. The call is stateless: concurrent queries from the same client are
// independent, and the echoed token lets the client discard stale responses.
func (h *Handler) recommend(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Query  string `json:"query"`
		Locale string `json:"locale"`
		Token  string `json:"token,omitempty"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		writeError(w, r, "query is required", "BAD_REQUEST", http.StatusBadRequest)
		return
	}

	result := h.svc.Recommend(r.Context(), app.RecommendRequest{
		Query:  req.Query,
		Locale: core.ParseLocale(req.Locale),
		Token:  req.Token,
	})
	writeJSON(w, http.StatusOK, result)
}
