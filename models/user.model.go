package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	FirstName     string    `gorm:"default:''" json:"firstName"`
	LastName      string    `gorm:"default:''" json:"lastName"`
	Email         string    `gorm:"unique;not null" json:"email"`
	Mobile        string    `gorm:"default:''" json:"mobile"`
	Role          string    `gorm:"default:'USER'" json:"role"` // USER, ADMIN, SUPER-ADMIN
	Password      string    `gorm:"not null" json:"-"`
	ReferralCode  string    `gorm:"uniqueIndex;type:varchar(20)" json:"referralCode"`
	WalletBalance float64   `gorm:"type:decimal(15,2);default:0" json:"walletBalance"`
	IsActive      bool      `gorm:"default:true" json:"isActive"`
	AuthID        string    `gorm:"type:varchar(64);index" json:"-"` // identity in the external auth store
	LastLogin     time.Time `gorm:"default:NULL" json:"lastLogin"`
	IsDeleted     bool      `gorm:"default:false" json:"isDeleted"`
}
