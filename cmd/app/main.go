package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"jobshop/cmd"
	httpin "jobshop/internal/adapters/in/http"
	"jobshop/internal/adapters/out/postgres/assignmentrepo"
	"jobshop/internal/adapters/out/postgres/categoryrepo"
	"jobshop/internal/adapters/out/postgres/poservicerepo"
	"jobshop/internal/adapters/out/postgres/workorderrepo"
	"jobshop/internal/catalog"
	"jobshop/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := openDB(configs)
	cat := loadCatalog(configs.CatalogPath)

	app := cmd.NewCompositionRoot(configs, gormDB, cat)

	jobManager := jobs.NewJobManager(
		app.CreateGetWorkOrdersQueryHandler(),
		urgentWatchSpec(configs),
		slog.Default(),
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting scheduled jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:        goDotEnvVariable("HTTP_PORT"),
		DBHost:          goDotEnvVariable("DB_HOST"),
		DBPort:          goDotEnvVariable("DB_PORT"),
		DBUser:          goDotEnvVariable("DB_USER"),
		DBPassword:      goDotEnvVariable("DB_PASSWORD"),
		DBName:          goDotEnvVariable("DB_NAME"),
		DBSslMode:       goDotEnvVariable("DB_SSLMODE"),
		CatalogPath:     goDotEnvVariable("CATALOG_PATH"),
		UrgentWatchSpec: goDotEnvVariable("URGENT_WATCH_SPEC"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func openDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&workorderrepo.WorkOrderDTO{},
		&categoryrepo.CategoryEntryDTO{},
		&assignmentrepo.AssignmentDTO{},
		&poservicerepo.POServiceDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
	return gormDB
}

func loadCatalog(path string) *catalog.Catalog {
	if path == "" {
		cat, err := catalog.Default()
		if err != nil {
			log.Fatalf("Error loading built-in machine catalog: %v", err)
		}
		return cat
	}
	cat, err := catalog.LoadFile(path)
	if err != nil {
		log.Fatalf("Error loading machine catalog from %s: %v", path, err)
	}
	return cat
}

func urgentWatchSpec(configs cmd.Config) string {
	if configs.UrgentWatchSpec == "" {
		return jobs.DefaultUrgentWatchSpec
	}
	return configs.UrgentWatchSpec
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpin.NewServer(app.CreateHandlers(), app.Catalog())
	server.RegisterRoutes(e)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && err != http.ErrServerClosed {
			e.Logger.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	if err := e.Close(); err != nil {
		e.Logger.Error(err)
	}
}
