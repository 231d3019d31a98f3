package models

import (
	"time"

	"gorm.io/gorm"
)

// WithdrawalStatus defines the status of a withdrawal request
type WithdrawalStatus string

const (
	WithdrawalStatusPending  WithdrawalStatus = "PENDING"
	WithdrawalStatusApproved WithdrawalStatus = "APPROVED"
	WithdrawalStatusRejected WithdrawalStatus = "REJECTED"
)

// WithdrawalRequest is a user request to convert wallet balance into a payout.
// Transitions only PENDING -> APPROVED or PENDING -> REJECTED, never reversed.
type WithdrawalRequest struct {
	gorm.Model
	UserID      uint             `gorm:"not null;index" json:"userId"`
	Amount      float64          `gorm:"type:decimal(15,2);not null" json:"amount"`
	Fee         float64          `gorm:"type:decimal(15,2);default:0" json:"fee"`
	NetAmount   float64          `gorm:"type:decimal(15,2);not null" json:"netAmount"`
	Status      WithdrawalStatus `gorm:"type:varchar(20);default:'PENDING';index" json:"status"`
	RequestedAt time.Time        `gorm:"not null" json:"requestedAt"`
	ProcessedAt *time.Time       `json:"processedAt"`
	DecidedBy   uint             `gorm:"default:0" json:"decidedBy"` // admin who approved/rejected
	IsDeleted   bool             `gorm:"default:false" json:"isDeleted"`

	User User `gorm:"foreignKey:UserID" json:"user"`
}

func (WithdrawalRequest) TableName() string {
	return "withdrawal_requests"
}
