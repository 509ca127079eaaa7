package app

import (
	"github.com/shopspring/decimal"

	"bluegold-store/internal/core"
)

// RecommendRequest carries one shopper query. Token is an opaque client value
// echoed back on the result so callers can discard responses from queries they
// have since superseded.
type RecommendRequest struct {
	Query  string
	Locale core.Locale
	Token  string
}

// RecommendResult is the rendered recommendation: only products that exist in
// the catalog, in the order the model proposed them, plus the model's
// explanation verbatim.
type RecommendResult struct {
	Products  []core.Product `json:"products"`
	Reasoning string         `json:"reasoning"`
	Token     string         `json:"token,omitempty"`
}

// CartLineResult is one cart line with its extended price.
type CartLineResult struct {
	Product   core.Product    `json:"product"`
	Quantity  int             `json:"quantity"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// CartResult is a full cart snapshot handed to the presentation layer.
type CartResult struct {
	CartID string           `json:"cart_id"`
	Lines  []CartLineResult `json:"lines"`
	Total  decimal.Decimal  `json:"total"`
	Count  int              `json:"count"`
}
