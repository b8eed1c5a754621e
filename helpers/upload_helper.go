package helpers

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/senthoormurugank23/DIGITAL-HUB-FOR-FURNITURE-SHOP/models"
)

// ReadFormPhoto pulls an optional image out of a multipart form. The second
// return value reports whether the field was present.
func ReadFormPhoto(c *fiber.Ctx, field string) (models.Photo, bool, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return models.Photo{}, false, nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		return models.Photo{}, true, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return models.Photo{}, true, err
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return models.Photo{Data: data, ContentType: contentType}, true, nil
}
