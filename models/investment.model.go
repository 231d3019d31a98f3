package models

import (
	"gorm.io/gorm"
)

// InvestmentStatus defines the lifecycle of a user investment
type InvestmentStatus string

const (
	InvestmentStatusRunning   InvestmentStatus = "RUNNING"
	InvestmentStatusCompleted InvestmentStatus = "COMPLETED"
	InvestmentStatusCancelled InvestmentStatus = "CANCELLED"
)

// Investment records a user's purchase of an investment package
type Investment struct {
	gorm.Model
	UserID    uint             `gorm:"not null;index" json:"userId"`
	PackageID uint             `gorm:"not null;index" json:"packageId"`
	Amount    float64          `gorm:"type:decimal(15,2);not null" json:"amount"`
	Status    InvestmentStatus `gorm:"type:varchar(20);default:'RUNNING'" json:"status"`
	IsDeleted bool             `gorm:"default:false" json:"isDeleted"`

	User    User              `gorm:"foreignKey:UserID" json:"-"`
	Package InvestmentPackage `gorm:"foreignKey:PackageID" json:"package"`
}

func (Investment) TableName() string {
	return "investments"
}
