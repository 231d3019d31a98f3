package adminController

import (
	"log"
	"time"
	"vesta/database"
	"vesta/middleware"
	"vesta/models"
	"vesta/utils"

	"github.com/gofiber/fiber/v2"
)

// AdjustWallet credits or debits a user's wallet. An "add" sets the
// balance to exactly current + amount; a "subtract" clamps at zero, so
// debiting more than the balance empties the wallet instead of going
// negative. Every adjustment writes a ledger row.
func AdjustWallet(c *fiber.Ctx) error {
	adminID := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedAdjustWallet").(*struct {
		UserID    uint    `json:"userId"`
		Amount    float64 `json:"amount"`
		Direction string  `json:"direction"`
		Reason    string  `json:"reason"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var targetUser models.User
	if err := db.Where("id = ? AND is_deleted = false", reqData.UserID).First(&targetUser).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	balanceBefore := targetUser.WalletBalance

	var balanceAfter float64
	var txnType models.TransactionType
	if reqData.Direction == "add" {
		balanceAfter = balanceBefore + reqData.Amount
		txnType = models.TransactionTypeAdminCredit
	} else {
		balanceAfter = balanceBefore - reqData.Amount
		if balanceAfter < 0 {
			balanceAfter = 0
		}
		txnType = models.TransactionTypeAdminDebit
	}

	tx := db.Begin()

	transaction := models.WalletTransaction{
		UserID:          targetUser.ID,
		TransactionType: txnType,
		Amount:          reqData.Amount,
		BalanceBefore:   balanceBefore,
		BalanceAfter:    balanceAfter,
		Description:     "Admin wallet adjustment",
		ReferenceID:     utils.NewReferenceID(),
		AdminID:         adminID,
		Reason:          reqData.Reason,
		TransactionDate: time.Now(),
	}

	if err := tx.Create(&transaction).Error; err != nil {
		tx.Rollback()
		log.Printf("Error creating wallet transaction for user %d: %v", targetUser.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create transaction!", nil)
	}

	targetUser.WalletBalance = balanceAfter
	if err := tx.Save(&targetUser).Error; err != nil {
		tx.Rollback()
		log.Printf("Error updating balance for user %d: %v", targetUser.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update balance!", nil)
	}

	tx.Commit()

	adjustedBy := ""
	if admin, ok := c.Locals("adminUser").(*models.User); ok {
		adjustedBy = admin.FirstName + " " + admin.LastName
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Wallet adjusted.", fiber.Map{
		"transactionId":   transaction.ID,
		"userId":          targetUser.ID,
		"previousBalance": balanceBefore,
		"newBalance":      balanceAfter,
		"direction":       reqData.Direction,
		"referenceId":     transaction.ReferenceID,
		"adjustedBy":      adjustedBy,
	})
}

// WalletLedger returns a user's wallet transaction history
func WalletLedger(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("id")
	if err != nil || userID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user ID!", nil)
	}

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = false", userID).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	query := db.Model(&models.WalletTransaction{}).Where("user_id = ? AND is_deleted = false", user.ID)

	var total int64
	query.Count(&total)

	var transactions []models.WalletTransaction
	if err := query.
		Order("transaction_date DESC").
		Offset(offset).
		Limit(limit).
		Find(&transactions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch ledger!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Wallet ledger.", fiber.Map{
		"userId":         user.ID,
		"currentBalance": user.WalletBalance,
		"transactions":   transactions,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}
