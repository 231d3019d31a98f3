package models

import (
	"time"

	"gorm.io/gorm"
)

// TransactionType defines the type of wallet transaction
type TransactionType string

const (
	TransactionTypeAdminCredit      TransactionType = "ADMIN_CREDIT"
	TransactionTypeAdminDebit       TransactionType = "ADMIN_DEBIT"
	TransactionTypeWithdrawalRefund TransactionType = "WITHDRAWAL_REFUND"
)

// WalletTransaction is the ledger of every balance change made through
// the admin console. Amount is the requested amount; for a clamped debit
// the delta actually applied is BalanceBefore - BalanceAfter.
type WalletTransaction struct {
	gorm.Model
	UserID          uint            `gorm:"not null;index" json:"userId"`
	TransactionType TransactionType `gorm:"type:varchar(50);not null" json:"transactionType"`
	Amount          float64         `gorm:"not null" json:"amount"`
	BalanceBefore   float64         `gorm:"not null" json:"balanceBefore"`
	BalanceAfter    float64         `gorm:"not null" json:"balanceAfter"`
	Description     string          `gorm:"type:text" json:"description"`
	ReferenceID     string          `gorm:"type:varchar(64);index" json:"referenceId"`
	AdminID         uint            `gorm:"default:0" json:"adminId"`
	Reason          string          `gorm:"type:text" json:"reason"`
	TransactionDate time.Time       `gorm:"not null" json:"transactionDate"`
	IsDeleted       bool            `gorm:"default:false" json:"isDeleted"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (WalletTransaction) TableName() string {
	return "wallet_transactions"
}
