package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	datasetFile "emissions-dashboard-service/internal/dataset/adapters/file"
	datasetHttp "emissions-dashboard-service/internal/dataset/adapters/http/fiber"
	datasetPg "emissions-dashboard-service/internal/dataset/adapters/postgres"
	"emissions-dashboard-service/internal/dataset/core/ports"
	datasetUsecase "emissions-dashboard-service/internal/dataset/core/usecase"

	viewsHttp "emissions-dashboard-service/internal/views/adapters/http/fiber"
	viewsWeb "emissions-dashboard-service/internal/views/adapters/web"
	viewsDomain "emissions-dashboard-service/internal/views/core/domain"
	viewsUsecase "emissions-dashboard-service/internal/views/core/usecase"

	"emissions-dashboard-service/internal/platform/config"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	_ "emissions-dashboard-service/docs"
)

// @title Emissions Dashboard API
// @version 1.0
// @description Read-only dashboard over a vehicle fuel consumption and CO2 emissions dataset.
// @BasePath /
func main() {
	_ = godotenv.Load(".env.local", ".env")

	// Config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load: %v", err)
	}

	// Dataset source
	source, closeSource := newSource(cfg)
	defer closeSource()

	// Load once; the dataset is read-only from here on
	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 30*time.Second)
	ds, err := datasetUsecase.NewLoadDatasetUseCase(source).Execute(loadCtx)
	cancelLoad()
	if err != nil {
		log.Fatalf("failed to load dataset: %v", err)
	}

	registry, err := viewsDomain.NewRegistry(viewsDomain.DefaultViews())
	if err != nil {
		log.Fatalf("invalid view registry: %v", err)
	}

	// Usecases
	describeDatasetUC := datasetUsecase.NewDescribeDatasetUseCase(ds)
	renderViewUC := viewsUsecase.NewRenderViewUseCase(registry, ds)

	// HTTP (Fiber) app + handlers
	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())

	// dashboard
	dashboardHandler := viewsWeb.NewDashboardHandler(renderViewUC)
	app.Get("/", dashboardHandler.Index)
	app.Get("/ui/views/:id", dashboardHandler.View)

	// views endpoints
	viewHandler := viewsHttp.NewViewHandler(renderViewUC)
	app.Get("/views", viewHandler.ListViews)
	app.Get("/views/:id", viewHandler.GetView)

	// dataset endpoint
	datasetHandler := datasetHttp.NewDatasetHandler(describeDatasetUC)
	app.Get("/dataset", datasetHandler.GetDataset)

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	go func() {
		if err := app.Listen(cfg.Addr()); err != nil {
			log.Printf("fiber stopped: %v", err)
		}
	}()

	log.Printf("server started on %s", cfg.Addr())

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("fiber shutdown error: %v", err)
	}

	log.Println("server exiting")
}

// newSource picks the dataset adapter. The returned func releases whatever
// the source holds open.
func newSource(cfg config.Config) (ports.DatasetSourcePort, func()) {
	switch cfg.DatasetSource {
	case config.SourcePostgres:
		db, err := sql.Open("postgres", cfg.PostgresDSN)
		if err != nil {
			log.Fatalf("failed to open postgres: %v", err)
		}

		db.SetMaxOpenConns(4)
		db.SetMaxIdleConns(2)
		db.SetConnMaxLifetime(30 * time.Minute)

		if err := db.Ping(); err != nil {
			log.Fatalf("failed to ping postgres: %v", err)
		}

		return datasetPg.NewVehicleSource(datasetPg.NewSQLDB(db), cfg.DatasetTable), func() { db.Close() }

	case config.SourceXLSX:
		return datasetFile.NewXLSXSource(cfg.DatasetPath, cfg.DatasetSheet), func() {}

	default:
		return datasetFile.NewCSVSource(cfg.DatasetPath), func() {}
	}
}
