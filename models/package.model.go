package models

import (
	"gorm.io/gorm"
)

// PackageType enum values
const (
	PackageTypeDaily  = "daily"  // periodic income plus payout at maturity
	PackageTypeStable = "stable" // lump-sum payout at maturity
)

// InvestmentPackage is the template users invest into
type InvestmentPackage struct {
	gorm.Model
	Name         string  `gorm:"not null" json:"name"`
	Amount       float64 `gorm:"type:decimal(15,2);not null" json:"amount"`
	ReturnAmount float64 `gorm:"type:decimal(15,2);not null" json:"returnAmount"`
	DurationDays int     `gorm:"not null" json:"durationDays"`
	MaxPurchases int     `gorm:"default:3" json:"maxPurchases"`
	IsActive     bool    `gorm:"default:true" json:"isActive"`
	PackageType  string  `gorm:"type:varchar(20);not null" json:"packageType"` // daily, stable
	DailyIncome  float64 `gorm:"type:decimal(15,2);default:0" json:"dailyIncome"`
	IsDeleted    bool    `gorm:"default:false" json:"isDeleted"`
}

func (InvestmentPackage) TableName() string {
	return "investment_packages"
}
