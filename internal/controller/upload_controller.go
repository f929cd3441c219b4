package controller

import (
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"dergipage_backend/internal/model"
	"dergipage_backend/pkg/database"
	"dergipage_backend/pkg/utils/cloudflare"
	"dergipage_backend/pkg/utils/image"
	"dergipage_backend/pkg/utils/validation"
)

// UploadArticleImage makale kapak resmini R2'ye yükler (staff)
func UploadArticleImage(c *fiber.Ctx) error {
	articleID, err := strconv.ParseUint(c.Params("article_id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid article ID",
		})
	}

	var article model.Article
	if err := database.GetDB().Preload("Product").First(&article, articleID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Article not found",
		})
	}

	// Dosyayı al
	file, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No file uploaded",
		})
	}

	if err := validation.ValidateImage(file); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	// Resmi optimize et
	buf, contentType, err := image.ProcessImage(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Could not process image",
		})
	}

	result, err := cloudflare.UploadImage(cloudflare.UploadImageConfig{
		Body:        buf,
		ContentType: contentType,
		ProductSlug: article.Product.Slug,
		ArticleSlug: article.Slug,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not upload image",
		})
	}

	// Eski resmi sil
	if article.Image != "" {
		if err := cloudflare.DeleteImage(article.Image); err != nil {
			log.Printf("Could not delete old image for article %d: %v", article.ID, err)
		}
	}

	if err := database.GetDB().Model(&article).Update("image", result.URL).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not save image record",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Image uploaded successfully",
		"url":     result.URL,
	})
}
