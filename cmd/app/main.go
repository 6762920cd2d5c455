package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"urbanmart/cmd"
	_ "urbanmart/docs"
	httpin "urbanmart/internal/adapters/in/http"
	"urbanmart/internal/adapters/out/postgres"
	"urbanmart/internal/adapters/out/rabbitmq"
	"urbanmart/internal/adapters/out/rediscache"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB, err := openDatabase(configs)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	if err = postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Database migration failed: %v", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     configs.RedisAddr,
		Password: configs.RedisPassword,
	})
	cache := rediscache.NewCache(redisClient)

	publisher, err := rabbitmq.NewPublisher(configs.AmqpURL, configs.AmqpExchange, logger)
	if err != nil {
		log.Fatalf("RabbitMQ connection failed: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, cache, publisher, logger)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}

	e := buildWebServer(&app, configs)

	go func() {
		if err := e.Start("0.0.0.0:" + configs.HTTPPort); err != nil {
			e.Logger.Info("Shutting down the server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	jobManager.StopAll()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err = e.Shutdown(ctx); err != nil {
		e.Logger.Error(err)
	}
	if err = publisher.Close(); err != nil {
		logger.Error("Failed to close RabbitMQ publisher", "error", err)
	}
	if err = redisClient.Close(); err != nil {
		logger.Error("Failed to close Redis client", "error", err)
	}
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

		JWTSecret: goDotEnvVariable("JWT_SECRET"),
		JWTTTL:    durationEnvVariable("JWT_TTL", 24*time.Hour),

		RedisAddr:       goDotEnvVariable("REDIS_ADDR"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		ProductCacheTTL: durationEnvVariable("PRODUCT_CACHE_TTL", 5*time.Minute),

		AmqpURL:      goDotEnvVariable("AMQP_URL"),
		AmqpExchange: goDotEnvVariable("AMQP_EXCHANGE"),

		StaleSweepSpec:        envOrDefault("STALE_SWEEP_SPEC", "*/10 * * * *"),
		DeliveryRequestMaxAge: durationEnvVariable("DELIVERY_REQUEST_MAX_AGE", time.Hour),
	}
}

func goDotEnvVariable(key string) string {
	if err := godotenv.Load(".env"); err != nil {
		log.Debugf("No .env file loaded: %v", err)
	}
	value := os.Getenv(key)
	if value == "" {
		log.Fatalf("Missing required environment variable %s", key)
	}
	return value
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func durationEnvVariable(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("Invalid duration in %s: %v", key, err)
	}
	return value
}

func openDatabase(configs cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	return gorm.Open(gormpostgres.Open(dsn), &gorm.Config{TranslateError: true})
}

//	@title			UrbanMart API
//	@version		1.0
//	@description	Multi-role marketplace: customers, merchants, delivery organizations.
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
func buildWebServer(app *cmd.CompositionRoot, configs cmd.Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(log.INFO)
	e.Use(middleware.Recover())

	handlers := httpin.Handlers{
		Checkout:               app.CreateCheckoutCommandHandler(),
		UpdateOrderStatus:      app.CreateUpdateOrderStatusCommandHandler(),
		AddToCart:              app.CreateAddToCartCommandHandler(),
		UpdateCartItem:         app.CreateUpdateCartItemCommandHandler(),
		RemoveCartItem:         app.CreateRemoveCartItemCommandHandler(),
		RequestDelivery:        app.CreateRequestDeliveryCommandHandler(),
		ResolveDeliveryRequest: app.CreateResolveDeliveryRequestCommandHandler(),
		UpdateDeliveryStatus:   app.CreateUpdateDeliveryStatusCommandHandler(),
		CreateHiringRequest:    app.CreateCreateHiringRequestCommandHandler(),
		ResolveHiringRequest:   app.CreateResolveHiringRequestCommandHandler(),
		CreateOrganization:     app.CreateCreateOrganizationCommandHandler(),
		RegisterUser:           app.CreateRegisterUserCommandHandler(),

		Login:                 app.CreateLoginQueryHandler(),
		GetCart:               app.CreateGetCartQueryHandler(),
		GetOrder:              app.CreateGetOrderQueryHandler(),
		GetOrderStatusHistory: app.CreateGetOrderStatusHistoryQueryHandler(),
		GetCustomerOrders:     app.CreateGetCustomerOrdersQueryHandler(),
		GetMerchantOrders:     app.CreateGetMerchantOrdersQueryHandler(),
		GetProduct:            app.CreateGetProductQueryHandler(),
		GetAdminStats:         app.CreateGetAdminStatsQueryHandler(),
	}

	auth := httpin.NewAuth(configs.JWTSecret, configs.JWTTTL)
	server := httpin.NewServer(handlers, auth)
	server.RegisterRoutes(e)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	return e
}
