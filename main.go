package main

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/senthoormurugank23/DIGITAL-HUB-FOR-FURNITURE-SHOP/configs"
	"github.com/senthoormurugank23/DIGITAL-HUB-FOR-FURNITURE-SHOP/logging"
	"github.com/senthoormurugank23/DIGITAL-HUB-FOR-FURNITURE-SHOP/routes"
)

func main() {
	slog.SetDefault(logging.New(configs.EnvLogLevel()))

	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024,
	})

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: configs.EnvClientURL(),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	configs.ConnectDB()

	routes.AuthRoutes(app)
	routes.CategoryRoutes(app)
	routes.ProductRoutes(app)
	routes.CartRoutes(app)
	routes.PaymentRoutes(app)
	routes.OrderRoutes(app)
	routes.SalesRoutes(app)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Welcome to the furniture shop API"})
	})

	if err := app.Listen(":" + configs.EnvPort()); err != nil {
		slog.Error("server stopped", "err", err)
	}
}
