package controller

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"

	"dergipage_backend/internal/model"
	"dergipage_backend/pkg/access"
	"dergipage_backend/pkg/database"
	"dergipage_backend/pkg/utils/jwt"
)

type MarkReadInput struct {
	SectionID string `json:"section_id" validate:"required"`
}

// MarkSectionRead bir bölümü okundu işaretler. İlk işaretlemede okuma kaydı
// oluşturulur; tüm bölümler okununca kayıt completed olur.
func MarkSectionRead(c *fiber.Ctx) error {
	claims := c.Locals("user").(*jwt.Claims)

	articleID, err := strconv.ParseUint(c.Params("article_id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid article ID",
		})
	}

	input := new(MarkReadInput)
	if err := c.BodyParser(input); err != nil || input.SectionID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	var article model.Article
	if err := database.GetDB().First(&article, articleID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Article not found",
		})
	}

	// Bölüm makalede var mı
	sections := article.ParseSections()
	found := false
	for _, section := range sections {
		if section.ID == input.SectionID {
			found = true
			break
		}
	}
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Section not found in article",
		})
	}

	var progress model.ReadingProgress
	database.GetDB().FirstOrCreate(&progress, model.ReadingProgress{
		UserID:    claims.UserID,
		ProductID: article.ProductID,
		ArticleID: article.ID,
	})

	entries := progress.ParseReadSections()
	for _, entry := range entries {
		if entry.SectionID == input.SectionID {
			// Zaten okunmuş, tekrar yazılmaz
			return c.JSON(access.BuildProgressSummary(&progress, len(sections)))
		}
	}

	entries = append(entries, model.ReadSectionEntry{
		SectionID: input.SectionID,
		ReadAt:    time.Now(),
	})

	raw, err := json.Marshal(entries)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not update progress",
		})
	}

	progress.ReadSections = datatypes.JSON(raw)
	progress.Completed = len(entries) >= len(sections)

	if err := database.GetDB().Save(&progress).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not update progress",
		})
	}

	return c.JSON(access.BuildProgressSummary(&progress, len(sections)))
}

// GetProgress makale için okuma özetini döner
func GetProgress(c *fiber.Ctx) error {
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

	var progress model.ReadingProgress
	err = database.GetDB().
		Where("user_id = ? AND article_id = ?", claims.UserID, articleID).
		First(&progress).Error
	if err != nil {
		// Kayıt yoksa sıfır özet döner
		return c.JSON(access.BuildProgressSummary(nil, article.SectionCount()))
	}

	return c.JSON(access.BuildProgressSummary(&progress, article.SectionCount()))
}
