package main

import (
	"context"
	"net/http"

	webAdapter "bluegold-store/internal/adapters/web"
	"bluegold-store/internal/ai"
	"bluegold-store/internal/app"
	"bluegold-store/internal/config"
	"bluegold-store/internal/core"
	"bluegold-store/internal/db"
	"bluegold-store/internal/logx"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logx.Init("development")
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	logx.Init(cfg.Env)

	ctx := context.Background()

	// The catalog is read once at startup and immutable afterwards. With a
	// database configured it comes from the products table; otherwise the
	// embedded seed is used.
	products := core.SeedProducts()
	if cfg.DatabaseURL != "" {
		pool, err := db.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("database connection failed")
		}
		products, err = db.LoadProducts(ctx, pool)
		pool.Close()
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load catalog from database")
		}
	}

	catalog := core.NewCatalogService(products)
	carts := core.NewCartService()

	if cfg.OpenAIAPIKey == "" {
		log.Warn().Msg("OPENAI_API_KEY is not set; recommendations will return a degraded response")
	}
	recommender := ai.NewRecommender(cfg.OpenAIAPIKey, cfg.OpenAIModel)

	svc := app.NewStoreService(catalog, carts, recommender)
	handler := webAdapter.NewHandler(svc, cfg.AllowedOrigins)

	log.Info().Str("port", cfg.Port).Int("products", len(products)).Msg("server starting")
	if err := http.ListenAndServe(":"+cfg.Port, handler); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
