package routes

import (
	authController "github.com/senthoormurugank23/DIGITAL-HUB-FOR-FURNITURE-SHOP/controllers/auth"
	"github.com/senthoormurugank23/DIGITAL-HUB-FOR-FURNITURE-SHOP/middlewares"

	"github.com/gofiber/fiber/v2"
)

func AuthRoutes(app *fiber.App) {
	app.Post("/api/v1/auth/register", authController.Register)
	app.Get("/api/v1/auth/verify-email/:token", authController.VerifyEmail)
	app.Post("/api/v1/auth/login", authController.Login)

	// Password reset via emailed OTP
	app.Post("/api/v1/auth/send-otp", authController.SendOTP)
	app.Post("/api/v1/auth/verify-otp", authController.VerifyOTP)
	app.Post("/api/v1/auth/reset-password", authController.ResetPassword)

	app.Put("/api/v1/auth/profile", middlewares.RequireSignIn, authController.UpdateProfile)
	app.Get("/api/v1/auth/user-details", middlewares.RequireSignIn, authController.GetUserDetails)

	app.Post("/api/v1/auth/address", middlewares.RequireSignIn, authController.AddAddress)
	app.Put("/api/v1/auth/address", middlewares.RequireSignIn, authController.UpdateAddress)
	app.Put("/api/v1/auth/select-address", middlewares.RequireSignIn, authController.SelectAddress)
	app.Delete("/api/v1/auth/address/:index", middlewares.RequireSignIn, authController.DeleteAddress)
	app.Get("/api/v1/auth/addresses", middlewares.RequireSignIn, authController.GetAddresses)

	app.Get("/api/v1/auth/all-users", middlewares.RequireSignIn, middlewares.IsAdmin, authController.GetAllUsers)
	app.Delete("/api/v1/auth/user/:id", middlewares.RequireSignIn, middlewares.IsAdmin, authController.DeleteUser)
}
