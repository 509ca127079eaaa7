package core

import "github.com/shopspring/decimal"

// Locale is one of the two supported display languages.
type Locale string

const (
	LocaleHebrew  Locale = "he"
	LocaleEnglish Locale = "en"
)

// Product is an immutable catalog entry. Names and descriptions carry both
// languages; Category is free text used for display and grounding tags, never
// for filtering logic.
type Product struct {
	ID            int             `json:"id"`
	NameHe        string          `json:"name_he"`
	NameEn        string          `json:"name_en"`
	Price         decimal.Decimal `json:"price"`
	Category      string          `json:"category"`
	ImageURL      string          `json:"img"`
	Kosher        bool            `json:"kosher"`
	Vegan         bool            `json:"vegan"`
	DescriptionHe string          `json:"description_he,omitempty"`
	DescriptionEn string          `json:"description_en,omitempty"`
}

// Name returns the product name in the given locale.
func (p Product) Name(locale Locale) string {
	if locale == LocaleEnglish {
		return p.NameEn
	}
	return p.NameHe
}

// Description returns the localized description. May be empty.
func (p Product) Description(locale Locale) string {
	if locale == LocaleEnglish {
		return p.DescriptionEn
	}
	return p.DescriptionHe
}

// Tags returns the grounding labels for the product: "kosher" and "vegan" when
// the flags are set, plus the category. Unset labels are omitted.
func (p Product) Tags() []string {
	tags := make([]string, 0, 3)
	if p.Kosher {
		tags = append(tags, "kosher")
	}
	if p.Vegan {
		tags = append(tags, "vegan")
	}
	if p.Category != "" {
		tags = append(tags, p.Category)
	}
	return tags
}
