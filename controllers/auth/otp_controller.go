package authController

import (
	"context"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/senthoormurugank23/DIGITAL-HUB-FOR-FURNITURE-SHOP/helpers"
	"github.com/senthoormurugank23/DIGITAL-HUB-FOR-FURNITURE-SHOP/mailer"
	"github.com/senthoormurugank23/DIGITAL-HUB-FOR-FURNITURE-SHOP/models"
	"github.com/senthoormurugank23/DIGITAL-HUB-FOR-FURNITURE-SHOP/responses"
)

const otpTTL = 5 * time.Minute

// SendOTP generates a password-reset code and mails it to the account email.
func SendOTP(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var reqBody struct {
		Email string `json:"email"`
	}
	if err := c.BodyParser(&reqBody); err != nil || reqBody.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Email is required",
		})
	}

	var user models.User
	if err := userCollection.FindOne(ctx, bson.M{"email": reqBody.Email}).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return c.Status(fiber.StatusNotFound).JSON(responses.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "User not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error sending OTP",
		})
	}

	otp, err := helpers.GenerateOTP()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error generating OTP",
		})
	}

	expires := time.Now().Add(otpTTL)
	update := bson.M{"$set": bson.M{"otp": otp, "otpExpires": expires, "updatedAt": time.Now()}}
	if _, err := userCollection.UpdateOne(ctx, bson.M{"email": reqBody.Email}, update); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error sending OTP",
		})
	}

	if err := mailer.SendOTPEmail(reqBody.Email, otp); err != nil {
		slog.Error("otp email failed", "email", reqBody.Email, "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to send OTP email",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "OTP sent to email",
	})
}

func VerifyOTP(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var reqBody struct {
		Email string `json:"email"`
		OTP   string `json:"otp"`
	}
	if err := c.BodyParser(&reqBody); err != nil || reqBody.Email == "" || reqBody.OTP == "" {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Email and OTP are required",
		})
	}

	var user models.User
	err := userCollection.FindOne(ctx, bson.M{"email": reqBody.Email, "otp": reqBody.OTP}).Decode(&user)
	if err != nil || user.OTPExpires == nil || user.OTPExpires.Before(time.Now()) {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid or expired OTP",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "OTP verified",
	})
}

func ResetPassword(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var reqBody struct {
		Email       string `json:"email"`
		NewPassword string `json:"newPassword"`
	}
	if err := c.BodyParser(&reqBody); err != nil || reqBody.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request format",
		})
	}

	if !helpers.ValidPassword(reqBody.NewPassword) {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Password must contain at least 1 uppercase letter, 1 number, 1 special character, and be at least 6 characters long.",
		})
	}

	hashed, err := helpers.HashPassword(reqBody.NewPassword)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error resetting password",
		})
	}

	update := bson.M{"$set": bson.M{
		"password":  hashed,
		"updatedAt": time.Now(),
	}, "$unset": bson.M{"otp": "", "otpExpires": ""}}

	result, err := userCollection.UpdateOne(ctx, bson.M{"email": reqBody.Email}, update)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error resetting password",
		})
	}
	if result.MatchedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(responses.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "User not found",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Password reset successful",
	})
}
