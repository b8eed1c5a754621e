package salesController

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/senthoormurugank23/DIGITAL-HUB-FOR-FURNITURE-SHOP/configs"
	"github.com/senthoormurugank23/DIGITAL-HUB-FOR-FURNITURE-SHOP/models"
	"github.com/senthoormurugank23/DIGITAL-HUB-FOR-FURNITURE-SHOP/responses"
)

var orderCollection *mongo.Collection = configs.GetCollection(configs.DB, "orders")

// salesReport aggregates non-cancelled orders created inside [from, to):
// per-product quantity and revenue plus the overall total.
func salesReport(ctx context.Context, from, to time.Time) (fiber.Map, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{
			"createdAt": bson.M{"$gte": from, "$lt": to},
			"status":    bson.M{"$ne": models.StatusCancelled},
		}}},
		bson.D{{Key: "$unwind", Value: "$items"}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":           "$items.productId",
			"productName":   bson.M{"$first": "$items.name"},
			"totalQuantity": bson.M{"$sum": "$items.quantity"},
			"totalRevenue": bson.M{"$sum": bson.M{
				"$multiply": bson.A{"$items.price", "$items.quantity"},
			}},
		}}},
		bson.D{{Key: "$sort", Value: bson.M{"totalRevenue": -1}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id": nil,
			"products": bson.M{"$push": bson.M{
				"productId":     "$_id",
				"productName":   "$productName",
				"totalQuantity": "$totalQuantity",
				"totalRevenue":  "$totalRevenue",
			}},
			"totalSales":    bson.M{"$sum": "$totalRevenue"},
			"totalQuantity": bson.M{"$sum": "$totalQuantity"},
		}}},
		bson.D{{Key: "$project", Value: bson.M{"_id": 0}}},
	}

	cursor, err := orderCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []bson.M
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return fiber.Map{"products": []bson.M{}, "totalSales": 0, "totalQuantity": 0}, nil
	}

	report := fiber.Map{}
	for k, v := range results[0] {
		report[k] = v
	}
	return report, nil
}

// GetMonthlySalesReport reports sales for a calendar month.
func GetMonthlySalesReport(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var reqBody struct {
		Month int `json:"month"`
		Year  int `json:"year"`
	}
	if err := c.BodyParser(&reqBody); err != nil || reqBody.Month < 1 || reqBody.Month > 12 || reqBody.Year == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Valid month and year are required",
		})
	}

	from := time.Date(reqBody.Year, time.Month(reqBody.Month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	report, err := salesReport(ctx, from, to)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error generating sales report",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Monthly sales report generated successfully",
		Result:  &fiber.Map{"report": report},
	})
}

// GetDateRangeSalesReport reports sales between two dates, both inclusive.
func GetDateRangeSalesReport(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var reqBody struct {
		FromDate string `json:"fromDate"`
		ToDate   string `json:"toDate"`
	}
	if err := c.BodyParser(&reqBody); err != nil || reqBody.FromDate == "" || reqBody.ToDate == "" {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "fromDate and toDate are required",
		})
	}

	from, err := time.Parse("2006-01-02", reqBody.FromDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid fromDate format, expected YYYY-MM-DD",
		})
	}
	to, err := time.Parse("2006-01-02", reqBody.ToDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid toDate format, expected YYYY-MM-DD",
		})
	}
	if to.Before(from) {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "toDate must not be before fromDate",
		})
	}

	report, err := salesReport(ctx, from, to.AddDate(0, 0, 1))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error generating sales report",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Date range sales report generated successfully",
		Result:  &fiber.Map{"report": report},
	})
}

// GetSingleDateSalesReport reports sales for one calendar day.
func GetSingleDateSalesReport(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var reqBody struct {
		SingleDate string `json:"singleDate"`
	}
	if err := c.BodyParser(&reqBody); err != nil || reqBody.SingleDate == "" {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "singleDate is required",
		})
	}

	day, err := time.Parse("2006-01-02", reqBody.SingleDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid singleDate format, expected YYYY-MM-DD",
		})
	}

	report, err := salesReport(ctx, day, day.AddDate(0, 0, 1))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error generating sales report",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Single date sales report generated successfully",
		Result:  &fiber.Map{"report": report},
	})
}
