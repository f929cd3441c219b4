package middleware

import (
	"github.com/gofiber/fiber/v2"

	"dergipage_backend/internal/model"
	"dergipage_backend/pkg/database"
	"dergipage_backend/pkg/utils/jwt"
)

// RequireStaff kullanıcının staff dizininde kayıtlı olduğunu kontrol eder
func RequireStaff() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims := c.Locals("user").(*jwt.Claims)

		var member model.StaffMember
		if err := database.DB.Where("email = ?", claims.Email).First(&member).Error; err != nil {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Staff access required",
			})
		}

		c.Locals("staff", &member)
		return c.Next()
	}
}
