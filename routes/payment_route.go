package routes

import (
	paymentController "github.com/senthoormurugank23/DIGITAL-HUB-FOR-FURNITURE-SHOP/controllers/payment"
	"github.com/senthoormurugank23/DIGITAL-HUB-FOR-FURNITURE-SHOP/middlewares"

	"github.com/gofiber/fiber/v2"
)

func PaymentRoutes(app *fiber.App) {
	app.Post("/api/v1/payment/create-order", middlewares.RequireSignIn, paymentController.CreateOrder)
	app.Post("/api/v1/payment/verify", middlewares.RequireSignIn, paymentController.VerifyPayment)
}
