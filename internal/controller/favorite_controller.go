package controller

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"dergipage_backend/internal/model"
	"dergipage_backend/pkg/database"
	"dergipage_backend/pkg/utils/jwt"
)

// AddFavorite makaleyi kullanıcının favorilerine ekler
func AddFavorite(c *fiber.Ctx) error {
	claims := c.Locals("user").(*jwt.Claims)

	articleID, err := strconv.ParseUint(c.Params("article_id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid article ID",
		})
	}

	var article model.Article
	if err := database.GetDB().First(&article, articleID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Article not found",
		})
	}

	favorite := model.Favorite{
		UserID:    claims.UserID,
		ProductID: article.ProductID,
		ArticleID: article.ID,
	}

	// Aynı makale ikinci kez eklenirse mevcut kayıt korunur
	if err := database.GetDB().
		FirstOrCreate(&favorite, model.Favorite{UserID: claims.UserID, ArticleID: article.ID}).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not add favorite",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(favorite)
}

// RemoveFavorite makaleyi favorilerden çıkarır
func RemoveFavorite(c *fiber.Ctx) error {
	claims := c.Locals("user").(*jwt.Claims)

	articleID, err := strconv.ParseUint(c.Params("article_id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid article ID",
		})
	}

	result := database.GetDB().
		Where("user_id = ? AND article_id = ?", claims.UserID, articleID).
		Delete(&model.Favorite{})
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not remove favorite",
		})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Favorite not found",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// ListFavorites kullanıcının favori makalelerini listeler
func ListFavorites(c *fiber.Ctx) error {
	claims := c.Locals("user").(*jwt.Claims)

	var favorites []model.Favorite
	if err := database.GetDB().Where("user_id = ?", claims.UserID).
		Preload("Article").
		Order("created_at DESC").
		Find(&favorites).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch favorites",
		})
	}

	return c.JSON(favorites)
}
