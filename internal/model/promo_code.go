package model

import (
	"time"

	"gorm.io/gorm"
)

// PromoCode satın alma sırasında uygulanan indirim kodu
type PromoCode struct {
	gorm.Model
	Code           string     `json:"code" gorm:"uniqueIndex;not null"`
	PercentOff     int        `json:"percent_off" gorm:"not null"`
	MaxRedemptions int        `json:"max_redemptions" gorm:"default:0"` // 0 = sınırsız
	Redeemed       int        `json:"redeemed" gorm:"default:0"`
	ExpiresAt      *time.Time `json:"expires_at"`
	IsActive       bool       `json:"is_active" gorm:"default:true"`
}
