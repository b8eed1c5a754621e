package routes

import (
	productsController "github.com/senthoormurugank23/DIGITAL-HUB-FOR-FURNITURE-SHOP/controllers/products"
	"github.com/senthoormurugank23/DIGITAL-HUB-FOR-FURNITURE-SHOP/middlewares"

	"github.com/gofiber/fiber/v2"
)

func ProductRoutes(app *fiber.App) {
	app.Post("/api/v1/product/create-product", middlewares.RequireSignIn, middlewares.IsAdmin, productsController.CreateProduct)
	app.Put("/api/v1/product/update-product/:pid", middlewares.RequireSignIn, middlewares.IsAdmin, productsController.UpdateProduct)
	app.Delete("/api/v1/product/delete-product/:pid", middlewares.RequireSignIn, middlewares.IsAdmin, productsController.DeleteProduct)
	app.Get("/api/v1/product/out-of-stock", middlewares.RequireSignIn, middlewares.IsAdmin, productsController.GetOutOfStockProducts)

	app.Get("/api/v1/product/get-products", productsController.GetProducts)
	app.Get("/api/v1/product/get-product/:slug", productsController.GetSingleProduct)
	app.Get("/api/v1/product/product-photo/:pid", productsController.GetProductPhoto)
	app.Post("/api/v1/product/product-filters", productsController.FilterProducts)
	app.Get("/api/v1/product/product-count", productsController.GetProductCount)
	app.Get("/api/v1/product/product-list/:page", productsController.GetProductList)
	app.Get("/api/v1/product/search/:keyword", productsController.SearchProducts)
	app.Get("/api/v1/product/related-product/:pid/:cid", productsController.GetRelatedProducts)
	app.Get("/api/v1/product/product-category/:slug", productsController.GetProductsByCategory)
	app.Get("/api/v1/product/latest-products", productsController.GetLatestProducts)

	// Ratings and reviews, purchasers only
	app.Post("/api/v1/product/rate", middlewares.RequireSignIn, productsController.RateProduct)
	app.Get("/api/v1/product/rating/:id", productsController.GetProductRating)
	app.Post("/api/v1/product/review", middlewares.RequireSignIn, productsController.AddReview)
	app.Get("/api/v1/product/reviews/:id", productsController.GetReviews)
}
