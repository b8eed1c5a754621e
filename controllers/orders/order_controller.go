package orderController

import (
	"context"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
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
var userCollection *mongo.Collection = configs.GetCollection(configs.DB, "users")

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

func GetUserOrders(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userObjectID, ok := authedUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(responses.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "User ID not found in token",
		})
	}

	cursor, err := orderCollection.Find(ctx, bson.M{"userId": userObjectID},
		options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching orders",
		})
	}
	defer cursor.Close(ctx)

	orders := make([]models.Order, 0)
	if err := cursor.All(ctx, &orders); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error decoding orders",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Orders fetched successfully",
		Result:  &fiber.Map{"orders": orders},
	})
}

// GetAllOrders returns every order with the owning customer's contact details
// attached, newest first.
func GetAllOrders(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := orderCollection.Find(ctx, bson.M{},
		options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching orders",
		})
	}
	defer cursor.Close(ctx)

	orders := make([]fiber.Map, 0)
	for cursor.Next(ctx) {
		var order models.Order
		if err := cursor.Decode(&order); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
				Status:  fiber.StatusInternalServerError,
				Message: "Error decoding orders",
			})
		}

		entry := fiber.Map{"order": order}
		var user models.User
		if err := userCollection.FindOne(ctx, bson.M{"_id": order.UserId},
			options.FindOne().SetProjection(bson.M{"name": 1, "email": 1})).Decode(&user); err == nil {
			entry["user"] = fiber.Map{"name": user.Name, "email": user.Email}
		}
		orders = append(orders, entry)
	}
	if err := cursor.Err(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching orders",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Orders fetched successfully",
		Result:  &fiber.Map{"orders": orders},
	})
}

// UpdateOrderStatus advances an order one step along
// Not Processed -> Processing -> Shipped -> Delivered. Cancellation has its
// own flow and is rejected here.
func UpdateOrderStatus(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	orderID, err := primitive.ObjectIDFromHex(c.Params("orderId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid order ID format",
		})
	}

	var reqBody struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&reqBody); err != nil || reqBody.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Status is required",
		})
	}

	var order models.Order
	if err := orderCollection.FindOne(ctx, bson.M{"_id": orderID}).Decode(&order); err != nil {
		if err == mongo.ErrNoDocuments {
			return c.Status(fiber.StatusNotFound).JSON(responses.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Order not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error updating order status",
		})
	}

	if helpers.IsTerminalStatus(order.Status) || !helpers.CanAdvanceStatus(order.Status, reqBody.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid status transition from " + order.Status + " to " + reqBody.Status,
		})
	}

	now := time.Now()
	set := bson.M{"status": reqBody.Status, "updatedAt": now}
	if reqBody.Status == models.StatusShipped {
		set["shippingDate"] = now
	}
	update := bson.M{
		"$set":  set,
		"$push": bson.M{"statusHistory": models.StatusEntry{Status: reqBody.Status, Date: now}},
	}

	if _, err := orderCollection.UpdateOne(ctx, bson.M{"_id": orderID, "status": order.Status}, update); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error updating order status",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Order status updated successfully",
		Result:  &fiber.Map{"status": reqBody.Status},
	})
}

func DeleteOrder(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	orderID, err := primitive.ObjectIDFromHex(c.Params("orderId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid order ID format",
		})
	}

	result, err := orderCollection.DeleteOne(ctx, bson.M{"_id": orderID})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error deleting order",
		})
	}
	if result.DeletedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(responses.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Order not found",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Order deleted successfully",
	})
}

// OrderProductPhoto serves the image for a line item's product.
func OrderProductPhoto(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	productID, err := primitive.ObjectIDFromHex(c.Params("pid"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid Product ID",
		})
	}

	var product models.Product
	err = productCollection.FindOne(ctx, bson.M{"_id": productID},
		options.FindOne().SetProjection(bson.M{"photo": 1})).Decode(&product)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(responses.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Product not found",
		})
	}
	if len(product.Photo.Data) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(responses.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Image not available",
		})
	}

	c.Set(fiber.HeaderContentType, product.Photo.ContentType)
	return c.Status(fiber.StatusOK).Send(product.Photo.Data)
}

// CancelRequest flags a customer's own order for cancellation; the actual
// cancellation happens when an admin confirms it.
func CancelRequest(c *fiber.Ctx) error {
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
		OrderID string `json:"orderId"`
	}
	if err := c.BodyParser(&reqBody); err != nil || reqBody.OrderID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Order ID is required",
		})
	}

	orderID, err := primitive.ObjectIDFromHex(reqBody.OrderID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid order ID format",
		})
	}

	filter := bson.M{
		"_id":    orderID,
		"userId": userObjectID,
		"status": bson.M{"$nin": bson.A{models.StatusCancelled, models.StatusDelivered}},
	}
	result, err := orderCollection.UpdateOne(ctx, filter,
		bson.M{"$set": bson.M{"cancelRequested": true, "updatedAt": time.Now()}})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error sending cancellation request",
		})
	}
	if result.MatchedCount == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Order cannot be cancelled",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Cancellation request sent successfully",
	})
}

// GetCancellationRequests lists paid orders awaiting admin cancellation.
func GetCancellationRequests(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{
		"cancelRequested":       true,
		"paymentDetails.status": models.PaymentPaid,
		"status":                bson.M{"$ne": models.StatusCancelled},
	}
	cursor, err := orderCollection.Find(ctx, filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error fetching cancellation requests",
		})
	}
	defer cursor.Close(ctx)

	orders := make([]models.Order, 0)
	if err := cursor.All(ctx, &orders); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error decoding orders",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Cancellation requests fetched successfully",
		Result:  &fiber.Map{"orders": orders},
	})
}

// CancelOrderByAdmin confirms a customer's cancellation request: the payment
// is refunded through the gateway by payment id, every line item is
// restocked and the order moves to Cancelled. Restock and status change run
// in one transaction; the refund happens first since it cannot be rolled
// back anyway.
func CancelOrderByAdmin(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	orderID, err := primitive.ObjectIDFromHex(c.Params("orderId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid order ID format",
		})
	}

	var order models.Order
	if err := orderCollection.FindOne(ctx, bson.M{"_id": orderID}).Decode(&order); err != nil {
		if err == mongo.ErrNoDocuments {
			return c.Status(fiber.StatusNotFound).JSON(responses.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Order not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error cancelling order",
		})
	}

	if order.Status == models.StatusCancelled {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Order already cancelled",
		})
	}
	if !order.CancelRequested {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Cancellation request not made",
		})
	}
	if order.PaymentDetails.Status != models.PaymentPaid || order.PaymentDetails.PaymentId == "" {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Order has no refundable payment",
		})
	}

	client := razorpay.NewClient(configs.EnvRazorpayKeyId(), configs.EnvRazorpayKeySecret())
	amount := int(helpers.AmountInPaise(order.TotalPrice))
	if _, err := client.Payment.Refund(order.PaymentDetails.PaymentId, amount, nil, nil); err != nil {
		slog.Error("razorpay refund failed",
			"orderId", order.Id.Hex(), "paymentId", order.PaymentDetails.PaymentId, "err", err)
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Refund failed",
		})
	}

	session, err := configs.DB.StartSession()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error cancelling order",
		})
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		for _, item := range order.Items {
			result, err := productCollection.UpdateOne(sc, bson.M{"_id": item.ProductId},
				bson.M{"$inc": bson.M{"quantity": item.Quantity}})
			if err != nil {
				return nil, err
			}
			if result.MatchedCount == 0 {
				slog.Warn("restock skipped, product missing",
					"productId", item.ProductId.Hex(), "quantity", item.Quantity)
			}
		}

		update := bson.M{
			"$set": bson.M{
				"status":          models.StatusCancelled,
				"cancelRequested": false,
				"updatedAt":       time.Now(),
			},
			"$push": bson.M{
				"statusHistory": models.StatusEntry{Status: models.StatusCancelled, Date: time.Now()},
			},
		}
		_, err := orderCollection.UpdateOne(sc, bson.M{"_id": order.Id}, update)
		return nil, err
	})
	if err != nil {
		slog.Error("cancellation transaction failed", "orderId", order.Id.Hex(), "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error cancelling order",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Order cancelled, refund processed, and product quantity restocked",
	})
}
