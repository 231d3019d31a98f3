package authRoutes

import (
	authController "vesta/controllers/auth"
	"vesta/middleware"
	authValidator "vesta/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/login", authValidator.Login(), authController.Login)
	authGroup.Post("/logout", middleware.JWTMiddleware, authController.Logout)
}
