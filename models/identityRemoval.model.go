package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// IdentityRemoval queues auth identities whose best-effort deletion failed
// after the owning profile was removed. A daily job retries these until
// the auth store confirms the delete.
type IdentityRemoval struct {
	gorm.Model
	UserID      uint           `gorm:"not null;index" json:"userId"`
	AuthID      string         `gorm:"type:varchar(64);not null" json:"authId"`
	Attempts    int            `gorm:"default:0" json:"attempts"`
	LastError   string         `gorm:"type:text" json:"lastError"`
	LastTriedAt *time.Time     `json:"lastTriedAt"`
	Response    datatypes.JSON `json:"response"` // last raw auth-store response
	Done        bool           `gorm:"default:false;index" json:"done"`
}

func (IdentityRemoval) TableName() string {
	return "identity_removals"
}
