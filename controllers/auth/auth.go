package authController

import (
	"log"
	"time"
	"vesta/database"
	"vesta/middleware"
	"vesta/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// Login authenticates an admin and issues a session token
func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("email = ? AND is_deleted = false", reqData.Email).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid email or password!", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid email or password!", nil)
	}

	if user.Role != "ADMIN" && user.Role != "SUPER-ADMIN" {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access Denied! Admin role required.", nil)
	}

	token, err := middleware.GenerateJWT(user.ID, user.FirstName+" "+user.LastName, user.Role, user.Email)
	if err != nil {
		log.Printf("Error generating token for user %d: %v", user.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	user.LastLogin = time.Now()
	if err := db.Save(&user).Error; err != nil {
		log.Printf("Error updating last login for user %d: %v", user.ID, err)
	}

	// Clean Response
	user.Password = ""

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful.", fiber.Map{
		"token": token,
		"user":  user,
	})
}

// Logout ends the admin session. Tokens are stateless, so this only
// acknowledges the sign-out; the client discards the token.
func Logout(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	log.Printf("Admin %d signed out", userId)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Signed out.", nil)
}
