package adminController

import (
	"log"
	"vesta/database"
	"vesta/middleware"
	"vesta/models"
	"vesta/utils"

	"github.com/gofiber/fiber/v2"
)

// UserList returns user profiles newest-first
func UserList(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedList").(*struct {
		Page  *int `json:"page"`
		Limit *int `json:"limit"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	offset := (*reqData.Page - 1) * (*reqData.Limit)
	db := database.Database.Db

	var users []models.User
	if err := db.
		Where("is_deleted = false AND role = ?", "USER").
		Order("created_at desc").
		Offset(offset).
		Limit(*reqData.Limit).
		Find(&users).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch user list!", nil)
	}

	var total int64
	db.Model(&models.User{}).
		Where("is_deleted = false AND role = ?", "USER").
		Count(&total)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User list.", fiber.Map{
		"users": users,
		"pagination": fiber.Map{
			"total": total,
			"page":  *reqData.Page,
			"limit": *reqData.Limit,
		},
	})
}

// SetUserActive writes the activation flag on a user profile
func SetUserActive(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("id")
	if err != nil || userID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user ID!", nil)
	}

	reqData, ok := c.Locals("validatedSetActive").(*struct {
		Active *bool `json:"active"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = false", userID).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	user.IsActive = *reqData.Active
	if err := db.Save(&user).Error; err != nil {
		log.Printf("Error updating active flag for user %d: %v", user.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update user!", nil)
	}

	state := "deactivated"
	if user.IsActive {
		state = "activated"
	}
	utils.Notify(user.Email, "Account "+state, "Your Vesta Capital account has been "+state+" by an administrator.", utils.SeverityInfo)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User "+state+".", fiber.Map{
		"userId":   user.ID,
		"isActive": user.IsActive,
	})
}

// DeleteUser removes a user profile and everything that depends on it.
// Dependent investment and withdrawal rows go first, then the profile,
// all in one transaction. The external auth identity is removed last,
// best effort: a failure there is queued for retry and never rolls back
// the completed deletions.
func DeleteUser(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("id")
	if err != nil || userID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user ID!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = false", userID).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	if user.Role != "USER" {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Admin accounts cannot be deleted here!", nil)
	}

	tx := db.Begin()

	if err := tx.Model(&models.Investment{}).
		Where("user_id = ? AND is_deleted = false", user.ID).
		Update("is_deleted", true).Error; err != nil {
		tx.Rollback()
		log.Printf("Error deleting investments for user %d: %v", user.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete user!", nil)
	}

	if err := tx.Model(&models.WithdrawalRequest{}).
		Where("user_id = ? AND is_deleted = false", user.ID).
		Update("is_deleted", true).Error; err != nil {
		tx.Rollback()
		log.Printf("Error deleting withdrawals for user %d: %v", user.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete user!", nil)
	}

	user.IsDeleted = true
	if err := tx.Save(&user).Error; err != nil {
		tx.Rollback()
		log.Printf("Error deleting user %d: %v", user.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete user!", nil)
	}

	tx.Commit()

	// Auth identity removal happens outside the transaction: its failure
	// is logged and queued, not surfaced.
	utils.RemoveAuthIdentityBestEffort(db, user.ID, user.AuthID)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User deleted.", fiber.Map{
		"userId": user.ID,
	})
}

// UserInvestments returns a user's investments for the drill-down view
func UserInvestments(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("id")
	if err != nil || userID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user ID!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = false", userID).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	var investments []models.Investment
	if err := db.
		Where("user_id = ? AND is_deleted = false", user.ID).
		Order("created_at desc").
		Preload("Package").
		Find(&investments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch investments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User investments.", fiber.Map{
		"userId":      user.ID,
		"investments": investments,
	})
}
