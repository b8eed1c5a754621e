package routes

import (
	categoryController "github.com/senthoormurugank23/DIGITAL-HUB-FOR-FURNITURE-SHOP/controllers/category"
	"github.com/senthoormurugank23/DIGITAL-HUB-FOR-FURNITURE-SHOP/middlewares"

	"github.com/gofiber/fiber/v2"
)

func CategoryRoutes(app *fiber.App) {
	app.Post("/api/v1/category/create-category", middlewares.RequireSignIn, middlewares.IsAdmin, categoryController.CreateCategory)
	app.Put("/api/v1/category/update-category/:id", middlewares.RequireSignIn, middlewares.IsAdmin, categoryController.UpdateCategory)
	app.Delete("/api/v1/category/delete-category/:id", middlewares.RequireSignIn, middlewares.IsAdmin, categoryController.DeleteCategory)

	app.Get("/api/v1/category/get-categories", categoryController.GetAllCategories)
	app.Get("/api/v1/category/single-category/:slug", categoryController.GetSingleCategory)
	app.Get("/api/v1/category/category-photo/:id", categoryController.GetCategoryPhoto)
}
