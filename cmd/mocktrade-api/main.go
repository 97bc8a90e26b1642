package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"

	"github.com/zsmartex/mocktrade/config"
	"github.com/zsmartex/mocktrade/events"
	"github.com/zsmartex/mocktrade/models"
	"github.com/zsmartex/mocktrade/repositories"
	"github.com/zsmartex/mocktrade/routes"
	"github.com/zsmartex/mocktrade/routes/middlewares"
	"github.com/zsmartex/mocktrade/services"
	"github.com/zsmartex/mocktrade/services/order_service"
	"github.com/zsmartex/mocktrade/services/trade_service"
)

func main() {
	godotenv.Load()

	if err := config.InitializeConfig(); err != nil {
		config.Logger.Fatalf("Failed to initialize config: %v", err)
	}
	defer config.Close()

	if config.DataBase != nil && config.GetEnvBool("DATABASE_AUTO_MIGRATE", true) {
		if err := models.Migrate(config.DataBase); err != nil {
			config.Logger.Fatalf("Failed to migrate database: %v", err)
		}
	}

	orders, trades, err := repositories.Open(config.StorageDriver(), config.DataBase)
	if err != nil {
		config.Logger.Fatalf("Failed to open storage: %v", err)
	}

	publisher := publishers()
	policy := services.NewStatusPolicy(config.GetEnv("STATUS_POLICY", "permissive"))

	orderService := order_service.NewOrderService(orders)
	orderService.Policy = policy
	orderService.Events = publisher

	tradeService := trade_service.NewTradeService(trades)
	tradeService.Policy = policy
	tradeService.Events = publisher

	var guards []fiber.Handler
	if key := os.Getenv("JWT_PUBLIC_KEY"); len(key) > 0 {
		auth, err := middlewares.Authenticate(key)
		if err != nil {
			config.Logger.Fatalf("Failed to load JWT public key: %v", err)
		}
		guards = append(guards, auth)
	}

	app := routes.SetupRouter(orderService, tradeService, guards...)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit

		config.Logger.Info("Shutting down")
		app.Shutdown()
	}()

	addr := ":" + config.GetEnv("PORT", "8000")
	config.Logger.Infof("Starting mocktrade-api on %s with %s storage", addr, config.StorageDriver())

	if err := app.Listen(addr); err != nil {
		config.Logger.Fatalf("Failed to listen: %v", err)
	}
}

func publishers() events.Publisher {
	var publishers events.Multi

	if config.Nats != nil {
		publishers = append(publishers, events.NewNatsPublisher(config.Nats))
	}

	if config.InfluxDB != nil {
		publishers = append(publishers, events.NewInfluxPublisher(config.InfluxDB))
	}

	if len(publishers) == 0 {
		return events.Nop
	}

	return publishers
}
