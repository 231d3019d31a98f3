package adminController

import (
	"log"
	"vesta/database"
	"vesta/middleware"
	"vesta/models"

	"github.com/gofiber/fiber/v2"
)

// Overview returns the full dashboard snapshot in one response: user
// profiles, investment packages, withdrawal requests with their owner,
// and counts derived from those collections. A failed user fetch still
// returns the other collections with a warning attached.
func Overview(c *fiber.Ctx) error {
	db := database.Database.Db
	warnings := []string{}

	var users []models.User
	if err := db.
		Where("is_deleted = false AND role = ?", "USER").
		Order("created_at desc").
		Find(&users).Error; err != nil {
		log.Printf("Error fetching users for overview: %v", err)
		warnings = append(warnings, "Failed to fetch users!")
	}

	var packages []models.InvestmentPackage
	if err := db.
		Where("is_deleted = false").
		Order("created_at desc").
		Find(&packages).Error; err != nil {
		log.Printf("Error fetching packages for overview: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch data!", nil)
	}

	var withdrawals []models.WithdrawalRequest
	if err := db.
		Where("is_deleted = false").
		Order("requested_at desc").
		Preload("User").
		Find(&withdrawals).Error; err != nil {
		log.Printf("Error fetching withdrawals for overview: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch data!", nil)
	}

	// Counts derived from the fetched collections, never stored
	activeUsers := 0
	for _, u := range users {
		if u.IsActive {
			activeUsers++
		}
	}
	pendingWithdrawals := 0
	for _, w := range withdrawals {
		if w.Status == models.WithdrawalStatusPending {
			pendingWithdrawals++
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard overview.", fiber.Map{
		"users":       users,
		"packages":    packages,
		"withdrawals": withdrawals,
		"counts": fiber.Map{
			"totalUsers":         len(users),
			"activeUsers":        activeUsers,
			"totalPackages":      len(packages),
			"pendingWithdrawals": pendingWithdrawals,
		},
		"warnings": warnings,
	})
}
