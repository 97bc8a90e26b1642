package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/zsmartex/mocktrade/config"
	"github.com/zsmartex/mocktrade/controllers"
	"github.com/zsmartex/mocktrade/controllers/order_controllers"
	"github.com/zsmartex/mocktrade/controllers/trade_controllers"
	"github.com/zsmartex/mocktrade/services/order_service"
	"github.com/zsmartex/mocktrade/services/trade_service"
)

// SetupRouter wires the order and trade routes. guards run in front of every
// /order and /trade route.
func SetupRouter(orders *order_service.OrderService, trades *trade_service.TradeService, guards ...fiber.Handler) *fiber.App {
	app := fiber.New()

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: config.GetEnv("CORS_ALLOW_ORIGINS", "*"),
	}))

	app.Get("/api/v2/public/timestamp", controllers.GetTimestamp)

	order_controller := order_controllers.NewOrderController(orders)
	order := app.Group("/order", guards...)
	order.Post("/", order_controller.CreateOrder)
	order.Get("/", order_controller.GetOrders)
	order.Post("/:id/status", order_controller.UpdateOrderStatus)
	order.Post("/:id/simulate_fill", order_controller.SimulateFill)
	order.Post("/:id/cancel", order_controller.CancelOrder)
	order.Get("/:id/dropcopy", order_controller.DropCopy)

	trade_controller := trade_controllers.NewTradeController(trades)
	trade := app.Group("/trade", guards...)
	trade.Post("/", trade_controller.CreateTrade)
	trade.Get("/", trade_controller.GetTrades)
	trade.Post("/:id/amend", trade_controller.AmendTrade)
	trade.Post("/:id/cancel", trade_controller.CancelTrade)

	return app
}
