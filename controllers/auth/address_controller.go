package authController

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/senthoormurugank23/DIGITAL-HUB-FOR-FURNITURE-SHOP/helpers"
	"github.com/senthoormurugank23/DIGITAL-HUB-FOR-FURNITURE-SHOP/models"
	"github.com/senthoormurugank23/DIGITAL-HUB-FOR-FURNITURE-SHOP/responses"
)

func AddAddress(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userObjectID, errResp := userIdFromLocals(c)
	if errResp != nil {
		return errResp(c)
	}

	var reqBody struct {
		Address models.Address `json:"address"`
	}
	if err := c.BodyParser(&reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request format",
		})
	}

	if err := helpers.ValidateAddress(&reqBody.Address); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
		})
	}

	var user models.User
	if err := userCollection.FindOne(ctx, bson.M{"_id": userObjectID}).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return c.Status(fiber.StatusNotFound).JSON(responses.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "User not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error adding address",
		})
	}

	if len(user.Addresses) >= helpers.MaxAddresses {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Maximum 2 addresses allowed",
		})
	}

	update := bson.M{
		"$push": bson.M{"addresses": reqBody.Address},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	if _, err := userCollection.UpdateOne(ctx, bson.M{"_id": userObjectID}, update); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error adding address",
		})
	}

	user.Addresses = append(user.Addresses, reqBody.Address)
	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Address added successfully",
		Result:  &fiber.Map{"addresses": user.Addresses},
	})
}

func UpdateAddress(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userObjectID, errResp := userIdFromLocals(c)
	if errResp != nil {
		return errResp(c)
	}

	var reqBody struct {
		Index   int            `json:"index"`
		Address models.Address `json:"address"`
	}
	if err := c.BodyParser(&reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request format",
		})
	}

	if err := helpers.ValidateAddress(&reqBody.Address); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
		})
	}

	var user models.User
	if err := userCollection.FindOne(ctx, bson.M{"_id": userObjectID}).Decode(&user); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(responses.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "User not found",
		})
	}

	if reqBody.Index < 0 || reqBody.Index >= len(user.Addresses) {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid address index",
		})
	}

	field := fmt.Sprintf("addresses.%d", reqBody.Index)
	update := bson.M{"$set": bson.M{field: reqBody.Address, "updatedAt": time.Now()}}
	if _, err := userCollection.UpdateOne(ctx, bson.M{"_id": userObjectID}, update); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error updating address",
		})
	}

	user.Addresses[reqBody.Index] = reqBody.Address
	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Address updated successfully",
		Result:  &fiber.Map{"addresses": user.Addresses},
	})
}

// SelectAddress marks one saved address as the checkout address.
func SelectAddress(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userObjectID, errResp := userIdFromLocals(c)
	if errResp != nil {
		return errResp(c)
	}

	var reqBody struct {
		Index int `json:"index"`
	}
	if err := c.BodyParser(&reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request format",
		})
	}

	var user models.User
	if err := userCollection.FindOne(ctx, bson.M{"_id": userObjectID}).Decode(&user); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(responses.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "User not found",
		})
	}

	if reqBody.Index < 0 || reqBody.Index >= len(user.Addresses) {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid address index",
		})
	}

	selected := user.Addresses[reqBody.Index]
	update := bson.M{"$set": bson.M{"selectedAddress": selected, "updatedAt": time.Now()}}
	if _, err := userCollection.UpdateOne(ctx, bson.M{"_id": userObjectID}, update); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error selecting address",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Address selected successfully",
		Result:  &fiber.Map{"selectedAddress": selected},
	})
}

func DeleteAddress(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userObjectID, errResp := userIdFromLocals(c)
	if errResp != nil {
		return errResp(c)
	}

	index, err := c.ParamsInt("index")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid address index",
		})
	}

	var user models.User
	if err := userCollection.FindOne(ctx, bson.M{"_id": userObjectID}).Decode(&user); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(responses.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "User not found",
		})
	}

	if index < 0 || index >= len(user.Addresses) {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid address index",
		})
	}

	addresses := append(user.Addresses[:index], user.Addresses[index+1:]...)
	update := bson.M{"$set": bson.M{"addresses": addresses, "updatedAt": time.Now()}}
	if _, err := userCollection.UpdateOne(ctx, bson.M{"_id": userObjectID}, update); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error deleting address",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Address deleted successfully",
		Result:  &fiber.Map{"addresses": addresses},
	})
}

func GetAddresses(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userObjectID, errResp := userIdFromLocals(c)
	if errResp != nil {
		return errResp(c)
	}

	var user models.User
	if err := userCollection.FindOne(ctx, bson.M{"_id": userObjectID}).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return c.Status(fiber.StatusNotFound).JSON(responses.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "User not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching addresses",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Addresses fetched successfully",
		Result:  &fiber.Map{"addresses": user.Addresses},
	})
}
