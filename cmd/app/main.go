package main

import (
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"people-directory/internal/config"
	"people-directory/internal/observability"
	"people-directory/internal/person"
	"people-directory/internal/provider"
	"people-directory/internal/seed"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db := mustOpenDB(cfg.DatabaseURL)
	defer db.Close()

	metrics := observability.NewMetrics("people_directory")

	repo := person.NewPostgresRepository(db, cfg.TableName)
	client := provider.NewClient(provider.Config{
		BaseURL: cfg.ProviderURL,
		Metrics: metrics,
	})

	// populate an empty store before accepting traffic
	if err := seed.Bootstrap(repo, client, seed.Options{
		Batches:   cfg.SeedBatches,
		BatchSize: cfg.SeedBatchSize,
		Metrics:   metrics,
	}); err != nil {
		panic(err)
	}

	app := fiber.New()
	setupCORS(app)
	app.Use(requestLog(metrics))

	app.Get("/metrics", adaptor.HTTPHandler(observability.MetricsHandler()))

	service := person.NewService(repo, client)
	handler := person.NewHandler(service)
	handler.RegisterPublicRoutes(app)

	app.Listen(cfg.Addr)
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,HEAD",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
}

func mustOpenDB(dbURL string) *sql.DB {
	if dbURL == "" {
		panic("DATABASE_URL is not set")
	}

	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		panic(err)
	}

	if err := db.Ping(); err != nil {
		panic(err)
	}

	return db
}

func requestLog(m *observability.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		m.HTTPRequests.WithLabelValues(c.Route().Path, strconv.Itoa(c.Response().StatusCode())).Inc()
		fmt.Printf("URL = %s, Method = %s, Duration = %v\n", c.OriginalURL(), c.Method(), time.Since(start))
		return err
	}
}
