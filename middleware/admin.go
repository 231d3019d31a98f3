package middleware

import (
	"vesta/database"
	"vesta/models"

	"github.com/gofiber/fiber/v2"
)

// AdminMiddleware ensures the authenticated user holds an admin role.
// Must run after JWTMiddleware so userId is present in locals.
func AdminMiddleware(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status":  false,
			"message": "Unauthorized: User ID not found",
			"data":    nil,
		})
	}

	var admin models.User
	err := database.Database.Db.
		Where("id = ? AND is_deleted = false AND role IN ?", userID, []string{"ADMIN", "SUPER-ADMIN"}).
		First(&admin).Error
	if err != nil {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"status":  false,
			"message": "Access Denied! Admin role required.",
			"data":    nil,
		})
	}

	c.Locals("adminUser", &admin)
	return c.Next()
}
