package routes

import (
	orderController "github.com/senthoormurugank23/DIGITAL-HUB-FOR-FURNITURE-SHOP/controllers/orders"
	"github.com/senthoormurugank23/DIGITAL-HUB-FOR-FURNITURE-SHOP/middlewares"

	"github.com/gofiber/fiber/v2"
)

func OrderRoutes(app *fiber.App) {
	app.Get("/api/v1/order/my-orders", middlewares.RequireSignIn, orderController.GetUserOrders)
	app.Get("/api/v1/order/product-photo/:pid", orderController.OrderProductPhoto)
	app.Post("/api/v1/order/cancel-request", middlewares.RequireSignIn, orderController.CancelRequest)

	app.Get("/api/v1/order/all-orders", middlewares.RequireSignIn, middlewares.IsAdmin, orderController.GetAllOrders)
	app.Put("/api/v1/order/status/:orderId", middlewares.RequireSignIn, middlewares.IsAdmin, orderController.UpdateOrderStatus)
	app.Delete("/api/v1/order/delete/:orderId", middlewares.RequireSignIn, middlewares.IsAdmin, orderController.DeleteOrder)
	app.Get("/api/v1/order/cancel-requests", middlewares.RequireSignIn, middlewares.IsAdmin, orderController.GetCancellationRequests)
	app.Post("/api/v1/order/cancel/:orderId", middlewares.RequireSignIn, middlewares.IsAdmin, orderController.CancelOrderByAdmin)
}
