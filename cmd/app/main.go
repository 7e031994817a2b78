package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"dispatch/api"
	"dispatch/cmd"
	httpserver "dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/out/postgres/driverrepo"
	"dispatch/internal/adapters/out/postgres/orderrepo"
	"dispatch/internal/jobs"
	"dispatch/internal/pkg/metrics"
)

func main() {
	configs := getConfigs()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	contract, err := api.Contract(context.Background())
	if err != nil {
		log.Fatalf("Invalid OpenAPI contract: %v", err)
	}

	gormDB := mustConnectDB(configs)

	registry := prometheus.NewRegistry()
	m := metrics.NewPrometheusMetrics(registry, "dispatch")

	app := cmd.NewCompositionRoot(configs, gormDB, m)

	jobManager := jobs.NewJobManager(
		app.CreateSyncDriverLocationsCommandHandler(),
		configs.LocationFetchSpec,
		m,
		logger,
	)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, contract, registry, m, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),

		OrderDuration: goDotEnvDuration("ORDER_DURATION", time.Hour),
		MaxSearchGap:  goDotEnvDuration("MAX_SEARCH_GAP", 4*time.Hour),

		DatetimeFormat: goDotEnvDefault("DATETIME_FORMAT", "2006-01-02 15:04:05"),
		DateFormat:     goDotEnvDefault("DATE_FORMAT", "2006-01-02"),

		LocationFeedURL:   goDotEnvVariable("LOCATION_FEED_URL"),
		LocationFetchSpec: goDotEnvDefault("LOCATION_FETCH_SPEC", "@every 1m"),
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

func goDotEnvDefault(key, fallback string) string {
	if value := goDotEnvVariable(key); value != "" {
		return value
	}
	return fallback
}

func goDotEnvDuration(key string, fallback time.Duration) time.Duration {
	value := goDotEnvVariable(key)
	if value == "" {
		return fallback
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		log.Fatalf("Invalid duration in %s: %v", key, err)
	}
	return duration
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)

	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Error opening database: %v", err)
	}

	// TranslateError turns driver errors into gorm sentinels; the driver
	// repository relies on it to detect foreign key violations on delete.
	gormDB, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err = gormDB.AutoMigrate(&driverrepo.DriverDTO{}, &orderrepo.OrderDTO{}); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	return gormDB
}

func startWebServer(
	app *cmd.CompositionRoot,
	contract *openapi3.T,
	registry *prometheus.Registry,
	m metrics.Metrics,
	port string,
) {
	e := echo.New()
	e.Use(httpserver.MetricsMiddleware(m))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	e.GET("/openapi.json", func(c echo.Context) error {
		return c.JSON(http.StatusOK, contract)
	})

	app.CreateHTTPServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
