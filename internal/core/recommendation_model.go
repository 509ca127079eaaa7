package core

import "strings"

// Recommendation is the structured reply of the recommendation model: a subset
// of catalog ids plus a short explanation in the shopper's language. ProductIDs
// are carried as returned; callers filter them against the catalog before
// rendering, so unknown ids are dropped there, never treated as an error.
type Recommendation struct {
	ProductIDs []int  `json:"product_ids" jsonschema_description:"IDs of the recommended products, chosen only from the provided inventory"`
	Reasoning  string `json:"reasoning" jsonschema_description:"A short, friendly explanation in the requested language of why these products fit"`
}

// Normalize cleans up model output formatting quirks.
func (r *Recommendation) Normalize() {
	r.Reasoning = strings.TrimSpace(r.Reasoning)
	if r.ProductIDs == nil {
		r.ProductIDs = []int{}
	}
}
