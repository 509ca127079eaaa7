package core_test

import (
	"testing"

	"bluegold-store/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	assert.Equal(t, "Shopping Cart", core.Resolve("cart_title", core.LocaleEnglish))
	assert.Equal(t, "עגלת קניות", core.Resolve("cart_title", core.LocaleHebrew))
}

func TestResolve_UnknownKeyYieldsPlaceholder(t *testing.T) {
	assert.Equal(t, "[no_such_key]", core.Resolve("no_such_key", core.LocaleEnglish))
	assert.Equal(t, "[no_such_key]", core.Resolve("no_such_key", core.LocaleHebrew))
}

func TestResolve_DegradationStringsPresent(t *testing.T) {
	for _, key := range []string{"ai_unavailable", "ai_error"} {
		for _, locale := range []core.Locale{core.LocaleHebrew, core.LocaleEnglish} {
			s := core.Resolve(key, locale)
			assert.NotEmpty(t, s)
			assert.NotContains(t, s, "[", "key %s must resolve in locale %s", key, locale)
		}
	}
}

func TestTranslations_CoversAllKeys(t *testing.T) {
	en := core.Translations(core.LocaleEnglish)
	he := core.Translations(core.LocaleHebrew)

	require.Equal(t, len(en), len(he))
	assert.Equal(t, "Add to Cart", en["add_to_cart"])
	assert.Equal(t, "הוסף לעגלה", he["add_to_cart"])
}

func TestParseLocale(t *testing.T) {
	tests := []struct {
		in   string
		want core.Locale
	}{
		{"en", core.LocaleEnglish},
		{"en-US", core.LocaleEnglish},
		{"he", core.LocaleHebrew},
		{"he-IL", core.LocaleHebrew},
		{"", core.LocaleHebrew},
		{"fr", core.LocaleHebrew},
		{"garbage!!", core.LocaleHebrew},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, core.ParseLocale(tt.in), "input %q", tt.in)
	}
}
