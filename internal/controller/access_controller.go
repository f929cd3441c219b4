package controller

import (
	"log"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"dergipage_backend/internal/model"
	"dergipage_backend/pkg/access"
	"dergipage_backend/pkg/database"
	"dergipage_backend/pkg/utils/jwt"
)

// GetProductArticles kullanıcının bu üründe okuyabileceği makaleleri döner.
// Aktif abonelik yoksa ürün bilgisi ve boş liste ile hasAccess=false döner.
func GetProductArticles(c *fiber.Ctx) error {
	claims := c.Locals("user").(*jwt.Claims)

	productID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid product ID",
		})
	}

	var product model.Product
	if err := database.GetDB().
		Preload("Articles").
		Preload("Variants").
		First(&product, productID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   "Product not found",
		})
	}

	if !product.IsActive {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   "Product not found",
		})
	}

	response, err := access.BuildProductAccess(database.GetDB(), claims.UserID, product, time.Now())
	if err != nil {
		log.Printf("Could not build product access for user %d product %d: %v",
			claims.UserID, product.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Could not fetch articles",
		})
	}

	return c.JSON(response)
}

// StartTrial ürün deneme süresi tanımlıysa kullanıcıya deneme aboneliği açar
func StartTrial(c *fiber.Ctx) error {
	claims := c.Locals("user").(*jwt.Claims)

	productID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid product ID",
		})
	}

	var product model.Product
	if err := database.GetDB().First(&product, productID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Product not found",
		})
	}

	if !product.IsActive || product.TrialDays <= 0 {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "This publication does not offer a trial",
		})
	}

	// Daha önce deneme kullanıldı mı
	var trialCount int64
	database.GetDB().Model(&model.Subscription{}).
		Where("user_id = ? AND product_id = ? AND is_trial = ?", claims.UserID, product.ID, true).
		Count(&trialCount)
	if trialCount > 0 {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Trial already used for this publication",
		})
	}

	now := time.Now()
	trial := model.Subscription{
		UserID:                 claims.UserID,
		ProductID:              product.ID,
		Status:                 model.StatusActive,
		PaymentStatus:          model.PaymentCompleted,
		StartDate:              now,
		EndDate:                now.AddDate(0, 0, product.TrialDays),
		HistoricalArticleLimit: model.DefaultHistoricalArticleLimit,
		IsTrial:                true,
	}

	if err := database.GetDB().Create(&trial).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not start trial",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":      "Trial started successfully",
		"subscription": trial,
	})
}
