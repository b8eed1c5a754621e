package routes

import (
	salesController "github.com/senthoormurugank23/DIGITAL-HUB-FOR-FURNITURE-SHOP/controllers/sales"
	"github.com/senthoormurugank23/DIGITAL-HUB-FOR-FURNITURE-SHOP/middlewares"

	"github.com/gofiber/fiber/v2"
)

func SalesRoutes(app *fiber.App) {
	app.Post("/api/v1/sales/monthly", middlewares.RequireSignIn, middlewares.IsAdmin, salesController.GetMonthlySalesReport)
	app.Post("/api/v1/sales/date-range", middlewares.RequireSignIn, middlewares.IsAdmin, salesController.GetDateRangeSalesReport)
	app.Post("/api/v1/sales/single-date", middlewares.RequireSignIn, middlewares.IsAdmin, salesController.GetSingleDateSalesReport)
}
