package productsController

import (
	"context"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gosimple/slug"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/senthoormurugank23/DIGITAL-HUB-FOR-FURNITURE-SHOP/configs"
	"github.com/senthoormurugank23/DIGITAL-HUB-FOR-FURNITURE-SHOP/helpers"
	"github.com/senthoormurugank23/DIGITAL-HUB-FOR-FURNITURE-SHOP/models"
	"github.com/senthoormurugank23/DIGITAL-HUB-FOR-FURNITURE-SHOP/responses"
)

var productCollection *mongo.Collection = configs.GetCollection(configs.DB, "products")
var categoryCollection *mongo.Collection = configs.GetCollection(configs.DB, "categories")

const productsPerPage = 6

// listing endpoints never ship photo blobs
var withoutPhoto = options.Find().SetProjection(bson.M{"photo": 0})

func formMeasure(c *fiber.Ctx, field, defaultUnit string) models.Measure {
	m := models.Measure{Unit: defaultUnit}
	if raw := c.FormValue(field + "[value]"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			m.Value = v
		}
	}
	if unit := c.FormValue(field + "[unit]"); unit != "" {
		m.Unit = unit
	}
	return m
}

func CreateProduct(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	name := c.FormValue("name")
	description := c.FormValue("description")
	priceRaw := c.FormValue("price")
	categoryRaw := c.FormValue("category")
	quantityRaw := c.FormValue("quantity")

	if name == "" || description == "" || priceRaw == "" || categoryRaw == "" || quantityRaw == "" {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Required fields are missing",
		})
	}

	price, err := strconv.ParseFloat(priceRaw, 64)
	if err != nil || price <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid price",
		})
	}

	quantity, err := strconv.Atoi(quantityRaw)
	if err != nil || quantity < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Quantity cannot be negative",
		})
	}

	categoryID, err := primitive.ObjectIDFromHex(categoryRaw)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid category ID format",
		})
	}

	now := time.Now()
	product := models.Product{
		Id:          primitive.NewObjectID(),
		Name:        name,
		Slug:        slug.Make(name),
		Description: description,
		Price:       price,
		Category:    categoryID,
		Quantity:    quantity,
		Dimensions: models.Dimensions{
			Height: formMeasure(c, "dimensions[height]", "cm"),
			Width:  formMeasure(c, "dimensions[width]", "cm"),
			Depth:  formMeasure(c, "dimensions[depth]", "cm"),
		},
		Weight:    formMeasure(c, "weight", "kg"),
		Ratings:   []models.Rating{},
		Reviews:   []models.Review{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	photo, present, err := helpers.ReadFormPhoto(c, "photo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Error reading product photo",
		})
	}
	if present {
		product.Photo = photo
	}

	if _, err := productCollection.InsertOne(ctx, product); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error creating product",
		})
	}

	product.Photo = models.Photo{}
	return c.Status(fiber.StatusCreated).JSON(responses.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Product Created Successfully",
		Result:  &fiber.Map{"product": product},
	})
}

func UpdateProduct(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	productID, err := primitive.ObjectIDFromHex(c.Params("pid"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid product ID format",
		})
	}

	var product models.Product
	if err := productCollection.FindOne(ctx, bson.M{"_id": productID}).Decode(&product); err != nil {
		if err == mongo.ErrNoDocuments {
			return c.Status(fiber.StatusNotFound).JSON(responses.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Product not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error updating product",
		})
	}

	update := bson.M{"updatedAt": time.Now()}
	if name := c.FormValue("name"); name != "" {
		update["name"] = name
		update["slug"] = slug.Make(name)
	}
	if description := c.FormValue("description"); description != "" {
		update["description"] = description
	}
	if priceRaw := c.FormValue("price"); priceRaw != "" {
		price, err := strconv.ParseFloat(priceRaw, 64)
		if err != nil || price <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: "Invalid price",
			})
		}
		update["price"] = price
	}
	if categoryRaw := c.FormValue("category"); categoryRaw != "" {
		categoryID, err := primitive.ObjectIDFromHex(categoryRaw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: "Invalid category ID format",
			})
		}
		update["category"] = categoryID
	}
	if quantityRaw := c.FormValue("quantity"); quantityRaw != "" {
		quantity, err := strconv.Atoi(quantityRaw)
		if err != nil || quantity < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: "Quantity cannot be negative",
			})
		}
		update["quantity"] = quantity
	}

	if c.FormValue("dimensions[height][value]") != "" {
		update["dimensions.height"] = formMeasure(c, "dimensions[height]", "cm")
	}
	if c.FormValue("dimensions[width][value]") != "" {
		update["dimensions.width"] = formMeasure(c, "dimensions[width]", "cm")
	}
	if c.FormValue("dimensions[depth][value]") != "" {
		update["dimensions.depth"] = formMeasure(c, "dimensions[depth]", "cm")
	}
	if c.FormValue("weight[value]") != "" {
		update["weight"] = formMeasure(c, "weight", "kg")
	}

	photo, present, err := helpers.ReadFormPhoto(c, "photo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Error reading product photo",
		})
	}
	if present {
		update["photo"] = photo
	}

	if _, err := productCollection.UpdateOne(ctx, bson.M{"_id": productID}, bson.M{"$set": update}); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error updating product",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Product Updated Successfully",
	})
}

// GetProducts returns the newest twelve products for the landing page.
func GetProducts(c *fiber.Ctx) error {
	return findProducts(c, bson.M{}, options.Find().
		SetProjection(bson.M{"photo": 0}).
		SetSort(bson.M{"createdAt": -1}).
		SetLimit(12))
}

func GetSingleProduct(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var product models.Product
	err := productCollection.FindOne(ctx, bson.M{"slug": c.Params("slug")},
		options.FindOne().SetProjection(bson.M{"photo": 0})).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.Status(fiber.StatusNotFound).JSON(responses.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Product not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error while getting single product",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Single Product Fetched",
		Result:  &fiber.Map{"product": product},
	})
}

func GetProductPhoto(c *fiber.Ctx) error {
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

func DeleteProduct(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	productID, err := primitive.ObjectIDFromHex(c.Params("pid"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid product ID format",
		})
	}

	result, err := productCollection.DeleteOne(ctx, bson.M{"_id": productID})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error while deleting product",
		})
	}
	if result.DeletedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(responses.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Product not found",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Product Deleted successfully",
	})
}

// FilterProducts narrows by category set and/or price band.
func FilterProducts(c *fiber.Ctx) error {
	var reqBody struct {
		Checked []string  `json:"checked"`
		Radio   []float64 `json:"radio"`
	}
	if err := c.BodyParser(&reqBody); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request format",
		})
	}

	filter := bson.M{}
	if len(reqBody.Checked) > 0 {
		categoryIDs := make([]primitive.ObjectID, 0, len(reqBody.Checked))
		for _, raw := range reqBody.Checked {
			id, err := primitive.ObjectIDFromHex(raw)
			if err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
					Status:  fiber.StatusBadRequest,
					Message: "Invalid category ID format",
				})
			}
			categoryIDs = append(categoryIDs, id)
		}
		filter["category"] = bson.M{"$in": categoryIDs}
	}
	if len(reqBody.Radio) == 2 {
		filter["price"] = bson.M{"$gte": reqBody.Radio[0], "$lte": reqBody.Radio[1]}
	}

	return findProducts(c, filter, withoutPhoto)
}

func GetProductCount(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	total, err := productCollection.EstimatedDocumentCount(ctx)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error in product count",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Product count fetched successfully",
		Result:  &fiber.Map{"total": total},
	})
}

func GetProductList(c *fiber.Ctx) error {
	page, err := c.ParamsInt("page")
	if err != nil || page < 1 {
		page = 1
	}

	opts := options.Find().
		SetProjection(bson.M{"photo": 0}).
		SetSort(bson.M{"createdAt": -1}).
		SetSkip(int64((page - 1) * productsPerPage)).
		SetLimit(productsPerPage)

	return findProducts(c, bson.M{}, opts)
}

// SearchProducts matches the keyword case-insensitively against name and
// description.
func SearchProducts(c *fiber.Ctx) error {
	keyword := c.Params("keyword")
	filter := bson.M{"$or": bson.A{
		bson.M{"name": bson.M{"$regex": keyword, "$options": "i"}},
		bson.M{"description": bson.M{"$regex": keyword, "$options": "i"}},
	}}
	return findProducts(c, filter, withoutPhoto)
}

func GetRelatedProducts(c *fiber.Ctx) error {
	productID, err := primitive.ObjectIDFromHex(c.Params("pid"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid product ID format",
		})
	}
	categoryID, err := primitive.ObjectIDFromHex(c.Params("cid"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(responses.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid category ID format",
		})
	}

	filter := bson.M{"category": categoryID, "_id": bson.M{"$ne": productID}}
	return findProducts(c, filter, options.Find().SetProjection(bson.M{"photo": 0}).SetLimit(3))
}

func GetProductsByCategory(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var category models.Category
	if err := categoryCollection.FindOne(ctx, bson.M{"slug": c.Params("slug")}).Decode(&category); err != nil {
		if err == mongo.ErrNoDocuments {
			return c.Status(fiber.StatusNotFound).JSON(responses.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Category not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error while getting products",
		})
	}

	cursor, err := productCollection.Find(ctx, bson.M{"category": category.Id}, withoutPhoto)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error while getting products",
		})
	}
	defer cursor.Close(ctx)

	products := make([]models.Product, 0)
	if err := cursor.All(ctx, &products); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error decoding products",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Products fetched successfully",
		Result:  &fiber.Map{"category": category, "products": products},
	})
}

// GetLatestProducts returns the four newest products for the featured strip.
func GetLatestProducts(c *fiber.Ctx) error {
	return findProducts(c, bson.M{}, options.Find().
		SetProjection(bson.M{"photo": 0}).
		SetSort(bson.M{"createdAt": -1}).
		SetLimit(4))
}

func GetOutOfStockProducts(c *fiber.Ctx) error {
	return findProducts(c, bson.M{"quantity": 0}, withoutPhoto)
}

func findProducts(c *fiber.Ctx, filter bson.M, opts *options.FindOptions) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := productCollection.Find(ctx, filter, opts)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error in getting products",
		})
	}
	defer cursor.Close(ctx)

	products := make([]models.Product, 0)
	if err := cursor.All(ctx, &products); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(responses.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Error decoding products",
		})
	}

	return c.Status(fiber.StatusOK).JSON(responses.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Products fetched successfully",
		Result:  &fiber.Map{"products": products, "total": len(products)},
	})
}
