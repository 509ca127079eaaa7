// seed-db is a one-shot tool that creates the products table and loads the
// built-in catalog into it. Run it against a fresh database before starting
// the server with DATABASE_URL set.
//
// Usage: go run ./cmd/seed-db
package main

import (
	"context"
	"log"

	"bluegold-store/internal/config"
	"bluegold-store/internal/core"
	"bluegold-store/internal/db"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer pool.Close()

	tx, err := pool.Begin(ctx)
	if err != nil {
		log.Fatalf("Failed to begin transaction: %v", err)
	}
	defer tx.Rollback(ctx)

	log.Println("Creating products table...")
	_, err = tx.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS products (
			id             INTEGER PRIMARY KEY,
			name_he        TEXT NOT NULL,
			name_en        TEXT NOT NULL,
			price          NUMERIC(10,2) NOT NULL CHECK (price >= 0),
			category       TEXT NOT NULL,
			image_url      TEXT NOT NULL DEFAULT '',
			kosher         BOOLEAN NOT NULL DEFAULT false,
			vegan          BOOLEAN NOT NULL DEFAULT false,
			description_he TEXT,
			description_en TEXT
		);
		TRUNCATE products;
	`)
	if err != nil {
		log.Fatalf("Failed to create products table: %v", err)
	}

	log.Println("Inserting catalog seed...")
	for _, p := range core.SeedProducts() {
		_, err = tx.Exec(ctx, `
			INSERT INTO products
				(id, name_he, name_en, price, category, image_url, kosher, vegan, description_he, description_en)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULLIF($9, ''), NULLIF($10, ''))
		`, p.ID, p.NameHe, p.NameEn, p.Price, p.Category, p.ImageURL, p.Kosher, p.Vegan,
			p.DescriptionHe, p.DescriptionEn)
		if err != nil {
			log.Fatalf("Failed to insert product %d: %v", p.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		log.Fatalf("Failed to commit: %v", err)
	}
	log.Println("Catalog seeded.")
}
