package paymentController

import (
	"context"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	razorpay "github.com/razorpay/razorpay-go"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/senthoormurugank23/DIGITAL-HUB-FOR-FURNITURE-SHOP/configs"
	"github.com/senthoormurugank23/DIGITAL-HUB-FOR-FURNITURE-SHOP/helpers"
	"github.com/senthoormurugank23/DIGITAL-HUB-FOR-FURNITURE-SHOP/models"
	"github.com/senthoormurugank23/DIGITAL-HUB-FOR-FURNITURE-SHOP/responses"
)

var orderCollection *mongo.Collection = configs.GetCollection(configs.DB, "orders")
var productCollection *mongo.Collection = configs.GetCollection(configs.DB, "products")
var cartCollection *mongo.Collection = configs.GetCollection(configs.DB, "carts")

var razorpayKeyID = configs.EnvRazorpayKeyId()
var razorpayKeySecret = configs.EnvRazorpayKeySecret()

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

type createOrderItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type CreateOrderRequest struct {
	Items           []createOrderItem `json:"items"`
	TotalPrice      float64           `json:"totalPrice"`
	SelectedAddress models.Address    `json:"selectedAddress"`
}

type VerifyPaymentRequest struct {
	OrderID   string `json:"order_id"`
	PaymentID string `json:"payment_id"`
	Signature string `json:"signature"`
}

// CreateOrder re-prices the submitted line items from the catalog, opens a
// gateway order and persists the pending local order with an address
// snapshot.
func CreateOrder(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userObjectID, ok := authedUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "User ID not found in token",
		})
	}

	var orderReq CreateOrderRequest
	if err := c.BodyParser(&orderReq); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	if len(orderReq.Items) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Order must contain at least one item",
		})
	}

	if err := helpers.ValidateAddress(&orderReq.SelectedAddress); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid address format",
		})
	}

	// Price comes from our own catalog read, never from the client.
	items := make([]models.OrderItem, 0, len(orderReq.Items))
	for _, item := range orderReq.Items {
		if item.Quantity < 1 {
			return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: "Quantity must be at least 1",
			})
		}

		productID, err := primitive.ObjectIDFromHex(item.ProductID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: "Invalid product ID format",
			})
		}

		var product models.Product
		err = productCollection.FindOne(ctx, bson.M{"_id": productID},
			options.FindOne().SetProjection(bson.M{"name": 1, "price": 1, "quantity": 1})).Decode(&product)
		if err != nil {
			if err == mongo.ErrNoDocuments {
				return c.Status(fiber.StatusNotFound).JSON(responses.ApiResponse{
					Status:  fiber.StatusNotFound,
					Message: "Product not found: " + item.ProductID,
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
				Status:  fiber.StatusInternalServerError,
				Message: "Error creating order",
			})
		}

		if item.Quantity > product.Quantity {
			return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: "Insufficient stock for " + product.Name,
			})
		}

		items = append(items, models.OrderItem{
			ProductId: product.Id,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  item.Quantity,
		})
	}

	totalPrice := helpers.OrderTotal(items)
	if orderReq.TotalPrice != totalPrice {
		slog.Warn("client total differs from server total",
			"user", userObjectID.Hex(), "client", orderReq.TotalPrice, "server", totalPrice)
	}

	client := razorpay.NewClient(razorpayKeyID, razorpayKeySecret)
	data := map[string]interface{}{
		"amount":   helpers.AmountInPaise(totalPrice),
		"currency": "INR",
		"receipt":  "order_" + uuid.NewString(),
	}

	razorpayOrder, err := client.Order.Create(data, nil)
	if err != nil {
		slog.Error("razorpay order create failed", "user", userObjectID.Hex(), "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error creating order",
		})
	}

	gatewayOrderID, _ := razorpayOrder["id"].(string)

	now := time.Now()
	order := models.Order{
		Id:              primitive.NewObjectID(),
		UserId:          userObjectID,
		Items:           items,
		TotalPrice:      totalPrice,
		SelectedAddress: orderReq.SelectedAddress,
		PaymentDetails: models.PaymentDetails{
			OrderId: gatewayOrderID,
			Status:  models.PaymentPending,
		},
		Status:        models.StatusNotProcessed,
		StatusHistory: []models.StatusEntry{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if _, err := orderCollection.InsertOne(ctx, order); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to create order in database",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Order created successfully",
		Result: &fiber.Map{
			"orderId":    order.Id.Hex(),
			"razorpayId": gatewayOrderID,
			"amount":     razorpayOrder["amount"],
			"currency":   razorpayOrder["currency"],
			"key_id":     razorpayKeyID,
		},
	})
}

// VerifyPayment checks the gateway signature and, exactly once per payment,
// moves the order to Processing/Paid, appends the history entry and reduces
// stock. The order update and the stock loop run in one transaction.
func VerifyPayment(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	var verifyReq VerifyPaymentRequest
	if err := c.BodyParser(&verifyReq); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	if verifyReq.OrderID == "" || verifyReq.PaymentID == "" || verifyReq.Signature == "" {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Order ID, payment ID and signature are required",
		})
	}

	if !helpers.VerifyRazorpaySignature(razorpayKeySecret, verifyReq.OrderID, verifyReq.PaymentID, verifyReq.Signature) {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Payment verification failed",
		})
	}

	session, err := configs.DB.StartSession()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error verifying payment",
		})
	}
	defer session.EndSession(ctx)

	var order models.Order
	alreadyVerified := false

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		// Matching on the pending payment state makes a duplicate gateway
		// callback a no-op.
		filter := bson.M{
			"paymentDetails.orderId": verifyReq.OrderID,
			"paymentDetails.status":  models.PaymentPending,
		}
		update := bson.M{
			"$set": bson.M{
				"paymentDetails.paymentId": verifyReq.PaymentID,
				"paymentDetails.status":    models.PaymentPaid,
				"status":                   models.StatusProcessing,
				"updatedAt":                time.Now(),
			},
			"$push": bson.M{
				"statusHistory": models.StatusEntry{Status: models.StatusProcessing, Date: time.Now()},
			},
		}

		result := orderCollection.FindOneAndUpdate(sc, filter, update,
			options.FindOneAndUpdate().SetReturnDocument(options.After))
		if err := result.Decode(&order); err != nil {
			if err != mongo.ErrNoDocuments {
				return nil, err
			}
			// No pending order for this gateway id: either already handled
			// or unknown.
			findErr := orderCollection.FindOne(sc, bson.M{
				"paymentDetails.orderId":   verifyReq.OrderID,
				"paymentDetails.paymentId": verifyReq.PaymentID,
				"paymentDetails.status":    models.PaymentPaid,
			}).Decode(&order)
			if findErr == nil {
				alreadyVerified = true
				return nil, nil
			}
			return nil, mongo.ErrNoDocuments
		}

		for _, item := range order.Items {
			if err := reduceStock(sc, item); err != nil {
				return nil, err
			}
		}

		// Checkout succeeded, drop the cart.
		if _, err := cartCollection.UpdateOne(sc, bson.M{"user": order.UserId},
			bson.M{"$set": bson.M{"products": []models.CartLine{}}}); err != nil {
			return nil, err
		}

		return nil, nil
	})

	if err == mongo.ErrNoDocuments {
		return c.Status(fiber.StatusNotFound).JSON(responses.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Order not found",
		})
	}
	if err != nil {
		slog.Error("payment verification transaction failed",
			"gatewayOrderId", verifyReq.OrderID, "paymentId", verifyReq.PaymentID, "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error verifying payment",
		})
	}

	message := "Payment verified, order updated, and stock reduced"
	if alreadyVerified {
		message = "Payment already verified"
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: message,
		Result: &fiber.Map{
			"orderId":   order.Id.Hex(),
			"paymentId": verifyReq.PaymentID,
			"status":    order.Status,
		},
	})
}

// reduceStock takes the purchased quantity off the product in one server-side
// operation. The fast path is a conditional decrement; when stock is short it
// clamps to zero instead, so the quantity can never go negative. A missing
// product is skipped with a warning rather than failing the paid order.
func reduceStock(ctx context.Context, item models.OrderItem) error {
	filter := bson.M{"_id": item.ProductId, "quantity": bson.M{"$gte": item.Quantity}}
	result, err := productCollection.UpdateOne(ctx, filter,
		bson.M{"$inc": bson.M{"quantity": -item.Quantity}})
	if err != nil {
		return err
	}
	if result.MatchedCount > 0 {
		return nil
	}

	clamp := mongo.Pipeline{bson.D{{Key: "$set", Value: bson.D{{
		Key: "quantity",
		Value: bson.D{{Key: "$max", Value: bson.A{
			0,
			bson.D{{Key: "$subtract", Value: bson.A{"$quantity", item.Quantity}}},
		}}},
	}}}}}
	result, err = productCollection.UpdateOne(ctx, bson.M{"_id": item.ProductId}, clamp)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		slog.Warn("stock decrement skipped, product missing",
			"productId", item.ProductId.Hex(), "quantity", item.Quantity)
		return nil
	}

	slog.Warn("stock clamped to zero on decrement",
		"productId", item.ProductId.Hex(), "quantity", item.Quantity)
	return nil
}
