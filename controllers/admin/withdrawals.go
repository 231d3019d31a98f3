package adminController

import (
	"fmt"
	"log"
	"time"
	"vesta/database"
	"vesta/middleware"
	"vesta/models"
	"vesta/utils"

	"github.com/gofiber/fiber/v2"
)

// WithdrawalList returns withdrawal requests joined with their owning
// profile, most recently requested first
func WithdrawalList(c *fiber.Ctx) error {
	status := c.Query("status") // PENDING, APPROVED, REJECTED

	db := database.Database.Db
	query := db.Where("is_deleted = false")

	if status != "" {
		query = query.Where("status = ?", status)
	}

	var withdrawals []models.WithdrawalRequest
	if err := query.
		Order("requested_at desc").
		Preload("User").
		Find(&withdrawals).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch withdrawals!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Withdrawal list.", fiber.Map{
		"withdrawals": withdrawals,
	})
}

// ApproveWithdrawal marks a pending withdrawal as approved and stamps the
// processed time. The status write is guarded on PENDING so a concurrent
// second decision cannot overwrite the first.
func ApproveWithdrawal(c *fiber.Ctx) error {
	return decideWithdrawal(c, models.WithdrawalStatusApproved)
}

// RejectWithdrawal marks a pending withdrawal as rejected and refunds the
// withdrawn amount to the owner's wallet.
func RejectWithdrawal(c *fiber.Ctx) error {
	return decideWithdrawal(c, models.WithdrawalStatusRejected)
}

func decideWithdrawal(c *fiber.Ctx, decision models.WithdrawalStatus) error {
	adminID := c.Locals("userId").(uint)

	withdrawalID, err := c.ParamsInt("id")
	if err != nil || withdrawalID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid withdrawal ID!", nil)
	}

	db := database.Database.Db

	var withdrawal models.WithdrawalRequest
	if err := db.Where("id = ? AND is_deleted = false", withdrawalID).First(&withdrawal).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Withdrawal not found!", nil)
	}

	now := time.Now()
	tx := db.Begin()

	// Guarded write: only a withdrawal still PENDING can be decided
	result := tx.Model(&models.WithdrawalRequest{}).
		Where("id = ? AND status = ?", withdrawal.ID, models.WithdrawalStatusPending).
		Updates(map[string]interface{}{
			"status":       decision,
			"processed_at": now,
			"decided_by":   adminID,
		})
	if result.Error != nil {
		tx.Rollback()
		log.Printf("Error deciding withdrawal %d: %v", withdrawal.ID, result.Error)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update withdrawal!", nil)
	}
	if result.RowsAffected == 0 {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Only pending withdrawals can be decided!", nil)
	}

	var user models.User
	if err := tx.Where("id = ?", withdrawal.UserID).First(&user).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch withdrawal owner!", nil)
	}

	// A rejected withdrawal returns the full requested amount to the wallet
	if decision == models.WithdrawalStatusRejected {
		balanceBefore := user.WalletBalance
		user.WalletBalance = balanceBefore + withdrawal.Amount
		if err := tx.Save(&user).Error; err != nil {
			tx.Rollback()
			log.Printf("Error refunding withdrawal %d: %v", withdrawal.ID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to refund wallet!", nil)
		}

		refund := models.WalletTransaction{
			UserID:          user.ID,
			TransactionType: models.TransactionTypeWithdrawalRefund,
			Amount:          withdrawal.Amount,
			BalanceBefore:   balanceBefore,
			BalanceAfter:    user.WalletBalance,
			Description:     fmt.Sprintf("Refund for rejected withdrawal #%d", withdrawal.ID),
			ReferenceID:     utils.NewReferenceID(),
			AdminID:         adminID,
			TransactionDate: now,
		}
		if err := tx.Create(&refund).Error; err != nil {
			tx.Rollback()
			log.Printf("Error recording refund for withdrawal %d: %v", withdrawal.ID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record refund!", nil)
		}
	}

	tx.Commit()

	if decision == models.WithdrawalStatusApproved {
		utils.Notify(user.Email, "Withdrawal approved",
			fmt.Sprintf("Your withdrawal of %.2f (net %.2f after fee) has been approved.", withdrawal.Amount, withdrawal.NetAmount),
			utils.SeverityInfo)
	} else {
		utils.Notify(user.Email, "Withdrawal rejected",
			fmt.Sprintf("Your withdrawal of %.2f was rejected. The amount has been returned to your wallet.", withdrawal.Amount),
			utils.SeverityDestructive)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Withdrawal "+string(decision)+".", fiber.Map{
		"withdrawalId": withdrawal.ID,
		"status":       decision,
		"processedAt":  now,
	})
}
