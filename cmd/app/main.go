package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"servicetrack/cmd"
	httpin "servicetrack/internal/adapters/in/http"
	"servicetrack/internal/adapters/out/postgres/auditrepo"
	"servicetrack/internal/adapters/out/postgres/counterrepo"
	"servicetrack/internal/adapters/out/postgres/orderrepo"
	"servicetrack/internal/adapters/out/postgres/principalrepo"
	"servicetrack/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	db := mustOpenDB(configs)
	mustPrepareSchema(db)

	app := cmd.NewCompositionRoot(configs, db, logger)

	jobManager := jobs.NewJobManager(app.AuditRecorder(), configs.AuditRetrySchedule, logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:           goDotEnvVariable("HTTP_PORT"),
		DBHost:             goDotEnvVariable("DB_HOST"),
		DBPort:             goDotEnvVariable("DB_PORT"),
		DBUser:             goDotEnvVariable("DB_USER"),
		DBPassword:         goDotEnvVariable("DB_PASSWORD"),
		DBName:             goDotEnvVariable("DB_NAME"),
		DBSslMode:          goDotEnvVariable("DB_SSLMODE"),
		AuditRetrySchedule: goDotEnvVariable("AUDIT_RETRY_SCHEDULE"),
	}
	if config.AuditRetrySchedule == "" {
		config.AuditRetrySchedule = "0 * * * * *"
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

func mustOpenDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}
	return db
}

// mustPrepareSchema migrates the tables and provisions the track number
// counter row. The counter must exist before the first order intake; a
// missing row at runtime is a configuration error by contract.
func mustPrepareSchema(db *gorm.DB) {
	err := db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.StatusEventDTO{},
		&counterrepo.CounterDTO{},
		&principalrepo.PrincipalDTO{},
		&auditrepo.EntryDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate schema: %v", err)
	}

	if err = counterrepo.EnsureCounter(context.Background(), db); err != nil {
		log.Fatalf("Failed to provision counter: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", httpin.Health)

	server := httpin.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateTransitionStatusCommandHandler(),
		app.CreateAssignTechniciansCommandHandler(),
		app.CreateAssignSalesCommandHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateGetActiveOrdersQueryHandler(),
		app.CreateGetAuditTrailQueryHandler(),
		app.CreateGetTechnicianCandidatesQueryHandler(),
		app.CreateGetSalesCandidatesQueryHandler(),
	)

	api := e.Group("/api/v1", httpin.ResolvePrincipal(app.PrincipalDirectory()))
	server.RegisterRoutes(api)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
