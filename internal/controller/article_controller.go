package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"

	"dergipage_backend/internal/model"
	"dergipage_backend/pkg/database"
)

type ArticleInput struct {
	MainHeading  string                `json:"main_heading" validate:"required"`
	Description  string                `json:"description"`
	Author       string                `json:"author"`
	Category     model.ArticleCategory `json:"category"`
	Image        string                `json:"image"`
	IssueDate    *time.Time            `json:"issue_date"`
	IssueEndDate *time.Time            `json:"issue_end_date"`
	Sections     datatypes.JSON        `json:"sections"`
	IsActive     *bool                 `json:"is_active"`
}

// CreateArticle ürüne yeni sayı ekler (staff)
func CreateArticle(c *fiber.Ctx) error {
	input := new(ArticleInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	var product model.Product
	if err := database.GetDB().First(&product, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Product not found",
		})
	}

	article := model.Article{
		ProductID:    product.ID,
		MainHeading:  input.MainHeading,
		Description:  input.Description,
		Author:       input.Author,
		Category:     input.Category,
		Image:        input.Image,
		IssueDate:    input.IssueDate,
		IssueEndDate: input.IssueEndDate,
		Sections:     input.Sections,
		IsActive:     true,
	}

	if err := database.GetDB().Create(&article).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not create article",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(article)
}

// UpdateArticle sayı bilgilerini günceller (staff)
func UpdateArticle(c *fiber.Ctx) error {
	input := new(ArticleInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	var article model.Article
	if err := database.GetDB().First(&article, c.Params("article_id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Article not found",
		})
	}

	article.MainHeading = input.MainHeading
	article.Description = input.Description
	article.Author = input.Author
	article.Category = input.Category
	article.Image = input.Image
	article.IssueDate = input.IssueDate
	article.IssueEndDate = input.IssueEndDate
	if len(input.Sections) > 0 {
		article.Sections = input.Sections
	}
	if input.IsActive != nil {
		article.IsActive = *input.IsActive
	}

	if err := database.GetDB().Save(&article).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not update article",
		})
	}

	return c.JSON(article)
}

// DeleteArticle sayıyı pasife alır (staff). Kayıt silinmez, kullanıcıya dönmez.
func DeleteArticle(c *fiber.Ctx) error {
	var article model.Article
	if err := database.GetDB().First(&article, c.Params("article_id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Article not found",
		})
	}

	if err := database.GetDB().Model(&article).Update("is_active", false).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not delete article",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
