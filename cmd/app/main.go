package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"marketplace/cmd"
	httpin "marketplace/internal/adapters/in/http"
	"marketplace/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustOpenDB(configs)

	root := cmd.NewCompositionRoot(configs, gormDB, logger)

	jobManager := jobs.NewJobManager(root.CreateMatchStoragesCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&root, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),

		RoutingBaseURL:   goDotEnvVariable("ROUTING_BASE_URL"),
		NotifyWebhookURL: goDotEnvVariable("NOTIFY_WEBHOOK_URL"),

		MatchChunkSize:    envInt("MATCH_CHUNK_SIZE"),
		MatchParallelism:  envInt("MATCH_PARALLELISM"),
		MatchRouteTimeout: time.Duration(envInt("MATCH_ROUTE_TIMEOUT_SECONDS")) * time.Second,
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

// envInt reads an optional integer variable; unset or malformed values read
// as zero and the consumer's defaults apply.
func envInt(key string) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return 0
	}
	return v
}

func mustOpenDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return db
}

func startWebServer(root *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpin.NewServer(
		root.CreateCreateOrderCommandHandler(),
		root.CreateMakeOfferCommandHandler(),
		root.CreateGiveDiscountCommandHandler(),
		root.CreateRequestDiscountCommandHandler(),
		root.CreateCancelDiscountRequestCommandHandler(),
		root.CreateCancelRequestCommandHandler(),
		root.CreateCancelOrderCommandHandler(),
		root.CreateConfirmRequestCommandHandler(),
		root.CreateMakePaymentCommandHandler(),
		root.CreateMarkRequestShownCommandHandler(),
		root.CreateGetActiveOrdersQueryHandler(),
		root.CreateGetOrderOffersQueryHandler(),
		root.CreateGetUnseenRequestsQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
