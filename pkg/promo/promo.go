// Package promo satın alma sırasında uygulanan indirim kodlarını doğrular
package promo

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"dergipage_backend/internal/model"
)

var (
	ErrNotFound  = errors.New("promo code not found")
	ErrInactive  = errors.New("promo code is no longer active")
	ErrExpired   = errors.New("promo code has expired")
	ErrExhausted = errors.New("promo code redemption limit reached")
)

// Validate kodun şu an kullanılabilir olup olmadığını kontrol eder
func Validate(code model.PromoCode, now time.Time) error {
	if !code.IsActive {
		return ErrInactive
	}
	if code.ExpiresAt != nil && code.ExpiresAt.Before(now) {
		return ErrExpired
	}
	if code.MaxRedemptions > 0 && code.Redeemed >= code.MaxRedemptions {
		return ErrExhausted
	}
	return nil
}

// Redeem kodu bulur, doğrular ve kullanım sayacını artırır
func Redeem(db *gorm.DB, code string, now time.Time) (*model.PromoCode, error) {
	var promoCode model.PromoCode
	err := db.Where("code = ?", strings.ToUpper(strings.TrimSpace(code))).
		First(&promoCode).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := Validate(promoCode, now); err != nil {
		return nil, err
	}

	if err := db.Model(&promoCode).Update("redeemed", gorm.Expr("redeemed + 1")).Error; err != nil {
		return nil, err
	}

	return &promoCode, nil
}
