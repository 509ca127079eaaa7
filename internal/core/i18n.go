package core

// message is a two-locale string pair. No pluralization, no interpolation.
type message struct {
	He string
	En string
}

// messages is the static localization table for the storefront UI plus the
// degradation strings of the recommendation client.
var messages = map[string]message{
	"nav_home":              {He: "ראשי", En: "Home"},
	"nav_catalog":           {He: "קטלוג", En: "Shop"},
	"nav_about":             {He: "מי אנחנו", En: "About Us"},
	"nav_contact":           {He: "צור קשר", En: "Contact"},
	"hero_title":            {He: "הטעמים של ישראל, אצלך בבית", En: "The Tastes of Israel, at Home"},
	"hero_subtitle":         {He: "משלוח מהיר לכל רחבי ארה״ב", En: "Fast shipping across the US"},
	"hero_cta":              {He: "לקטלוג המלא", En: "Shop Now"},
	"cart_title":            {He: "עגלת קניות", En: "Shopping Cart"},
	"cart_empty":            {He: "העגלה ריקה", En: "Your cart is empty"},
	"cart_total":            {He: "סה״כ", En: "Total"},
	"cart_checkout":         {He: "לקופה", En: "Checkout"},
	"ai_helper_title":       {He: "היועץ של Blue & Gold", En: "Blue & Gold Concierge"},
	"ai_helper_placeholder": {He: "למשל: אני מחפש מתנה לחבר טבעוני...", En: "E.g., I need a gift for a vegan friend..."},
	"ai_helper_btn":         {He: "שאל את המומחה", En: "Ask the Expert"},
	"ai_unavailable":        {He: "חסר מפתח API", En: "API Key missing"},
	"ai_error":              {He: "מצטערים, הייתה בעיה בתקשורת עם המומחה שלנו.", En: "Sorry, we had trouble connecting to our expert."},
	"badge_kosher":          {He: "כשר", En: "Kosher"},
	"badge_vegan":           {He: "טבעוני", En: "Vegan"},
	"footer_about":          {He: "מביאים את ישראל אליך.", En: "Bringing Israel to you."},
	"add_to_cart":           {He: "הוסף לעגלה", En: "Add to Cart"},
}

// Resolve returns the string for key in the given locale. Unknown keys resolve
// to a visible "[key]" placeholder rather than failing.
func Resolve(key string, locale Locale) string {
	m, ok := messages[key]
	if !ok {
		return "[" + key + "]"
	}
	if locale == LocaleEnglish {
		return m.En
	}
	return m.He
}

// Translations projects the whole table into one locale, so the presentation
// layer can fetch its static strings in a single call.
func Translations(locale Locale) map[string]string {
	out := make(map[string]string, len(messages))
	for k := range messages {
		out[k] = Resolve(k, locale)
	}
	return out
}
