package core

import "github.com/shopspring/decimal"

// SeedProducts returns the built-in Blue & Gold catalog. It is used directly
// when no database is configured, and by cmd/seed-db to populate one.
func SeedProducts() []Product {
	return []Product{
		{
			ID: 1, NameHe: "במבה אסם (מארז 8)", NameEn: "Osem Bamba (8 Pack)",
			Price: decimal.RequireFromString("12.99"), Category: "snacks",
			ImageURL: "https://picsum.photos/500/500?random=1", Kosher: true, Vegan: true,
			DescriptionHe: "חטיף הבוטנים הקלאסי והאהוב.", DescriptionEn: "The classic peanut butter puff.",
		},
		{
			ID: 2, NameHe: "קפה טורקי עלית", NameEn: "Elite Turkish Coffee",
			Price: decimal.RequireFromString("8.50"), Category: "coffee",
			ImageURL: "https://picsum.photos/500/500?random=2", Kosher: true, Vegan: true,
			DescriptionHe: "קפה קלוי וחזק.", DescriptionEn: "Strong, roasted coffee.",
		},
		{
			ID: 3, NameHe: "זעתר ישראלי אמיתי", NameEn: "Authentic Za'atar",
			Price: decimal.RequireFromString("6.99"), Category: "pantry",
			ImageURL: "https://picsum.photos/500/500?random=3", Kosher: true, Vegan: true,
		},
		{
			ID: 4, NameHe: "חלבה וניל", NameEn: "Vanilla Halva",
			Price: decimal.RequireFromString("9.99"), Category: "snacks",
			ImageURL: "https://picsum.photos/500/500?random=4", Kosher: true,
		},
		{
			ID: 5, NameHe: "טחינה הר ברכה", NameEn: "Har Bracha Tahini",
			Price: decimal.RequireFromString("14.99"), Category: "pantry",
			ImageURL: "https://picsum.photos/500/500?random=5", Kosher: true, Vegan: true,
		},
		{
			ID: 6, NameHe: "בוץ ים המלח", NameEn: "Dead Sea Mud Mask",
			Price: decimal.RequireFromString("19.99"), Category: "culture",
			ImageURL: "https://picsum.photos/500/500?random=6", Vegan: true,
		},
		{
			ID: 7, NameHe: "נרות שבת מהודרים", NameEn: "Shabbat Candles",
			Price: decimal.RequireFromString("11.50"), Category: "culture",
			ImageURL: "https://picsum.photos/500/500?random=7", Kosher: true,
		},
		{
			ID: 8, NameHe: "שוקולד פרה", NameEn: "Elite Cow Chocolate",
			Price: decimal.RequireFromString("4.50"), Category: "snacks",
			ImageURL: "https://picsum.photos/500/500?random=8", Kosher: true,
		},
		{
			ID: 9, NameHe: "ביסלי גריל (מארז 6)", NameEn: "Bissli Grill (6 Pack)",
			Price: decimal.RequireFromString("10.99"), Category: "snacks",
			ImageURL: "https://picsum.photos/500/500?random=9", Kosher: true, Vegan: true,
		},
		{
			ID: 10, NameHe: "שמן זית גלילי", NameEn: "Galilee Olive Oil",
			Price: decimal.RequireFromString("24.99"), Category: "pantry",
			ImageURL: "https://picsum.photos/500/500?random=10", Kosher: true, Vegan: true,
		},
	}
}
