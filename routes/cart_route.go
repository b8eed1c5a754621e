package routes

import (
	cartController "github.com/senthoormurugank23/DIGITAL-HUB-FOR-FURNITURE-SHOP/controllers/cart"
	"github.com/senthoormurugank23/DIGITAL-HUB-FOR-FURNITURE-SHOP/middlewares"

	"github.com/gofiber/fiber/v2"
)

func CartRoutes(app *fiber.App) {
	app.Post("/api/v1/cart/add", middlewares.RequireSignIn, cartController.AddToCart)
	app.Put("/api/v1/cart/update", middlewares.RequireSignIn, cartController.UpdateCart)
	app.Delete("/api/v1/cart/remove", middlewares.RequireSignIn, cartController.RemoveCartItem)
	app.Get("/api/v1/cart/get", middlewares.RequireSignIn, cartController.GetUserCart)
	app.Delete("/api/v1/cart/clear", middlewares.RequireSignIn, cartController.ClearCart)
}
