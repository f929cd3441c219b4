package controller

import (
	"github.com/gofiber/fiber/v2"

	"dergipage_backend/internal/model"
	"dergipage_backend/pkg/database"
)

type ProductInput struct {
	Heading          string `json:"heading" validate:"required"`
	ShortDescription string `json:"short_description"`
	Description      string `json:"description"`
	CoverImage       string `json:"cover_image"`
	TrialDays        int    `json:"trial_days"`
	IsActive         *bool  `json:"is_active"`
}

// ListProducts aktif yayınları varyantlarıyla listeler
func ListProducts(c *fiber.Ctx) error {
	var products []model.Product
	if err := database.DB.Where("is_active = ?", true).
		Preload("Variants").
		Order("created_at DESC").
		Find(&products).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch products",
		})
	}

	return c.JSON(products)
}

// GetProduct ürün bilgisi ve varyantları döner; makaleler dahil edilmez
func GetProduct(c *fiber.Ctx) error {
	var product model.Product
	if err := database.DB.Preload("Variants").
		First(&product, "id = ? AND is_active = ?", c.Params("id"), true).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Product not found",
		})
	}

	return c.JSON(fiber.Map{
		"id":                product.ID,
		"heading":           product.Heading,
		"slug":              product.Slug,
		"short_description": product.ShortDescription,
		"description":       product.Description,
		"cover_image":       product.CoverImage,
		"trial_days":        product.TrialDays,
		"variants":          product.Variants,
	})
}

// CreateProduct yeni yayın oluşturur (staff)
func CreateProduct(c *fiber.Ctx) error {
	input := new(ProductInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	product := model.Product{
		Heading:          input.Heading,
		ShortDescription: input.ShortDescription,
		Description:      input.Description,
		CoverImage:       input.CoverImage,
		TrialDays:        input.TrialDays,
		IsActive:         true,
	}

	if err := database.GetDB().Create(&product).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not create product",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(product)
}

// UpdateProduct yayın bilgilerini günceller (staff)
func UpdateProduct(c *fiber.Ctx) error {
	input := new(ProductInput)
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

	product.Heading = input.Heading
	product.ShortDescription = input.ShortDescription
	product.Description = input.Description
	product.CoverImage = input.CoverImage
	product.TrialDays = input.TrialDays
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}

	if err := database.GetDB().Save(&product).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not update product",
		})
	}

	return c.JSON(product)
}

// DeleteProduct yayını pasife alır (staff)
func DeleteProduct(c *fiber.Ctx) error {
	var product model.Product
	if err := database.GetDB().First(&product, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Product not found",
		})
	}

	if err := database.GetDB().Model(&product).Update("is_active", false).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not delete product",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
