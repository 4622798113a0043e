package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/tableside/tableside/pkg/logging"
	"github.com/tableside/tableside/pkg/shutdown"

	billapp "github.com/tableside/tableside/internal/billing/application"
	"github.com/tableside/tableside/internal/billing/infrastructure/blob"
	billhttp "github.com/tableside/tableside/internal/billing/infrastructure/http"
	catapp "github.com/tableside/tableside/internal/catalog/application"
	cathttp "github.com/tableside/tableside/internal/catalog/infrastructure/http"
	"github.com/tableside/tableside/internal/catalog/infrastructure/yamlfile"
	"github.com/tableside/tableside/internal/integration"
	inthttp "github.com/tableside/tableside/internal/integration/http"
)

func main() {
	_ = godotenv.Load()

	log := logging.New(env("LOG_LEVEL", "info"))

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	// Configuration
	httpAddr := env("HTTP_ADDR", ":8080")
	catalogFile := env("CATALOG_FILE", "config/catalog.yaml")
	storeFile := env("STORE_FILE", "data/active_bills.json")
	redisAddr := env("REDIS_ADDR", "")
	redisKey := env("REDIS_KEY", "pos:active_bills")

	// Product catalog
	products, err := yamlfile.Load(catalogFile)
	if err != nil {
		log.Error("catalog load failed", "err", err)
		os.Exit(1)
	}
	catalog := catapp.NewService(products)

	// Bill store: Redis when configured, local file otherwise
	var store billapp.BillStore
	if redisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: redisAddr})
		defer rdb.Close()
		store = blob.NewRedisStore(log, rdb, redisKey)
	} else {
		store = blob.NewFileStore(log, storeFile)
	}

	registry := billapp.NewRegistry(ctx, log, store)

	integrations := integration.NewMemoryService("card-reader", "delivery")

	// HTTP server
	r := chi.NewRouter()
	r.Mount("/", billhttp.NewHandler(log, registry, catalog).Routes())
	r.Mount("/catalog", cathttp.NewHandler(log, catalog).Routes())
	r.Mount("/ext", inthttp.NewHandler(log, integrations).Routes())
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	srv := &http.Server{
		Addr:         httpAddr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("http listening", "addr", httpAddr, "tables_open", len(registry.List()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http server error", "err", err)
			cancel()
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	_ = srv.Shutdown(shutdownCtx)
	log.Info("pos-server shutdown complete")
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
