package cartController

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/senthoormurugank23/DIGITAL-HUB-FOR-FURNITURE-SHOP/configs"
	"github.com/senthoormurugank23/DIGITAL-HUB-FOR-FURNITURE-SHOP/models"
	"github.com/senthoormurugank23/DIGITAL-HUB-FOR-FURNITURE-SHOP/responses"
)

var cartCollection *mongo.Collection = configs.GetCollection(configs.DB, "carts")
var productCollection *mongo.Collection = configs.GetCollection(configs.DB, "products")

func authedUserID(c *fiber.Ctx) (primitive.ObjectID, bool) {
	userId, ok := c.Locals("userId").(string)
	if !ok || userId == "" {
		return primitive.NilObjectID, false
	}
	userObjectID, err := primitive.ObjectIDFromHex(userId)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return userObjectID, true
}

type cartLineRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// AddToCart appends a new line. A product already in the cart is rejected;
// the client must use the update endpoint instead.
func AddToCart(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userObjectID, ok := authedUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "User ID not found in token",
		})
	}

	var reqBody cartLineRequest
	if err := c.BodyParser(&reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request format",
		})
	}

	productID, err := primitive.ObjectIDFromHex(reqBody.ProductID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid product ID format",
		})
	}
	if reqBody.Quantity < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Quantity must be at least 1",
		})
	}

	cart, err := findOrCreateCart(ctx, userObjectID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching cart",
		})
	}

	for _, line := range cart.Products {
		if line.Product == productID {
			return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: "Product already in cart. Go to cart to update quantity.",
			})
		}
	}

	cart.Products = append(cart.Products, models.CartLine{Product: productID, Quantity: reqBody.Quantity})
	if err := saveCartLines(ctx, cart.Id, cart.Products); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to update cart",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Product added to cart",
		Result:  &fiber.Map{"cart": cart},
	})
}

// UpdateCart sets a line's quantity, capped by the product's live stock.
func UpdateCart(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userObjectID, ok := authedUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "User ID not found in token",
		})
	}

	var reqBody cartLineRequest
	if err := c.BodyParser(&reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request format",
		})
	}

	productID, err := primitive.ObjectIDFromHex(reqBody.ProductID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid product ID format",
		})
	}
	if reqBody.Quantity < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Quantity must be at least 1",
		})
	}

	var cart models.Cart
	if err := cartCollection.FindOne(ctx, bson.M{"user": userObjectID}).Decode(&cart); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Cart not found",
		})
	}

	var product models.Product
	err = productCollection.FindOne(ctx, bson.M{"_id": productID},
		options.FindOne().SetProjection(bson.M{"quantity": 1})).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.Status(fiber.StatusNotFound).JSON(responses.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Product not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching product",
		})
	}

	if reqBody.Quantity > product.Quantity {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Stock limit exceeded",
		})
	}

	updated := false
	for i := range cart.Products {
		if cart.Products[i].Product == productID {
			cart.Products[i].Quantity = reqBody.Quantity
			updated = true
			break
		}
	}
	if !updated {
		return c.Status(fiber.StatusNotFound).JSON(responses.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Product not in cart",
		})
	}

	if err := saveCartLines(ctx, cart.Id, cart.Products); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to update cart",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Cart updated successfully",
		Result:  &fiber.Map{"cart": cart},
	})
}

func RemoveCartItem(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userObjectID, ok := authedUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "User ID not found in token",
		})
	}

	var reqBody struct {
		ProductID string `json:"productId"`
	}
	if err := c.BodyParser(&reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request format",
		})
	}

	productID, err := primitive.ObjectIDFromHex(reqBody.ProductID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid product ID format",
		})
	}

	var cart models.Cart
	if err := cartCollection.FindOne(ctx, bson.M{"user": userObjectID}).Decode(&cart); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Cart not found",
		})
	}

	lines := make([]models.CartLine, 0, len(cart.Products))
	for _, line := range cart.Products {
		if line.Product != productID {
			lines = append(lines, line)
		}
	}
	cart.Products = lines

	if err := saveCartLines(ctx, cart.Id, cart.Products); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to update cart",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Product removed from cart",
		Result:  &fiber.Map{"cart": cart},
	})
}

// GetUserCart returns the cart with each line denormalized against the live
// product document.
func GetUserCart(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userObjectID, ok := authedUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "User ID not found in token",
		})
	}

	cart, err := findOrCreateCart(ctx, userObjectID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching cart",
		})
	}

	lines := make([]fiber.Map, 0, len(cart.Products))
	for _, line := range cart.Products {
		var product models.Product
		err := productCollection.FindOne(ctx, bson.M{"_id": line.Product},
			options.FindOne().SetProjection(bson.M{"photo": 0})).Decode(&product)
		if err != nil {
			// product removed from catalog since it was added
			continue
		}
		lines = append(lines, fiber.Map{
			"product":  product,
			"quantity": line.Quantity,
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Cart fetched successfully",
		Result: &fiber.Map{
			"cart": fiber.Map{
				"id":       cart.Id.Hex(),
				"user":     cart.User.Hex(),
				"products": lines,
			},
		},
	})
}

func ClearCart(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userObjectID, ok := authedUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "User ID not found in token",
		})
	}

	result, err := cartCollection.UpdateOne(ctx, bson.M{"user": userObjectID},
		bson.M{"$set": bson.M{"products": []models.CartLine{}}})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to clear cart",
		})
	}
	if result.MatchedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(responses.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Cart not found",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Cart cleared successfully",
	})
}

func findOrCreateCart(ctx context.Context, userID primitive.ObjectID) (*models.Cart, error) {
	var cart models.Cart
	err := cartCollection.FindOne(ctx, bson.M{"user": userID}).Decode(&cart)
	if err == nil {
		return &cart, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, err
	}

	cart = models.Cart{
		Id:       primitive.NewObjectID(),
		User:     userID,
		Products: []models.CartLine{},
	}
	if _, err := cartCollection.InsertOne(ctx, cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func saveCartLines(ctx context.Context, cartID primitive.ObjectID, lines []models.CartLine) error {
	_, err := cartCollection.UpdateOne(ctx, bson.M{"_id": cartID},
		bson.M{"$set": bson.M{"products": lines}})
	return err
}
