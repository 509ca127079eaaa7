package db

import (
	"context"
	"fmt"

	"bluegold-store/internal/core"

	"github.com/jackc/pgx/v5/pgxpool"
)

// LoadProducts reads the full catalog from the products table in id order. The
// server calls this exactly once at startup; the catalog stays in memory and
// read-only for the lifetime of the process.
func LoadProducts(ctx context.Context, pool *pgxpool.Pool) ([]core.Product, error) {
	rows, err := pool.Query(ctx, `
		SELECT id, name_he, name_en, price, category, image_url, kosher, vegan,
		       COALESCE(description_he, ''), COALESCE(description_en, '')
		FROM products
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []core.Product
	for rows.Next() {
		var p core.Product
		if err := rows.Scan(&p.ID, &p.NameHe, &p.NameEn, &p.Price, &p.Category, &p.ImageURL,
			&p.Kosher, &p.Vegan, &p.DescriptionHe, &p.DescriptionEn); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read products: %w", err)
	}
	return products, nil
}
