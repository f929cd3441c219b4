package model

import (
	"time"

	"gorm.io/gorm"
)

// Subscription Status
type SubscriptionStatus string

const (
	StatusActive     SubscriptionStatus = "active"
	StatusExpireSoon SubscriptionStatus = "expiresoon"
	StatusExpired    SubscriptionStatus = "expired"
	StatusCancelled  SubscriptionStatus = "cancelled"
)

// Payment Status
type PaymentStatus string

const (
	PaymentCompleted PaymentStatus = "completed"
	PaymentPending   PaymentStatus = "pending"
	PaymentFailed    PaymentStatus = "failed"
)

const DefaultHistoricalArticleLimit = 5

type Subscription struct {
	gorm.Model
	UserID    uint `json:"user_id" gorm:"index:idx_user_product"`
	ProductID uint `json:"product_id" gorm:"index:idx_user_product"`
	VariantID uint `json:"variant_id"`

	Status        SubscriptionStatus `json:"status" gorm:"default:'active'"`
	PaymentStatus PaymentStatus      `json:"payment_status" gorm:"default:'pending'"`

	StartDate time.Time `json:"start_date" gorm:"not null"`
	EndDate   time.Time `json:"end_date" gorm:"not null"`

	// Yenileme zinciri alanları. OriginalStartDate dolu ise erişim penceresi
	// oradan ölçülür; ContiguousChainID kesintisiz yenilemeleri bağlar.
	OriginalStartDate *time.Time `json:"original_start_date"`
	ContiguousChainID *string    `json:"contiguous_chain_id" gorm:"index"`

	HistoricalArticleLimit int    `json:"historical_article_limit" gorm:"default:5"`
	IsTrial                bool   `json:"is_trial" gorm:"default:false"`
	StripeSubID            string `json:"stripe_subscription_id"`

	// İlişkiler
	User    User    `json:"-" gorm:"foreignKey:UserID"`
	Product Product `json:"-" gorm:"foreignKey:ProductID"`
	Variant Variant `json:"-" gorm:"foreignKey:VariantID"`
}

// IsGrantingAccess abonelik şu an erişim veriyor mu
func (s *Subscription) IsGrantingAccess(now time.Time) bool {
	if s.Status != StatusActive && s.Status != StatusExpireSoon {
		return false
	}
	if s.PaymentStatus != PaymentCompleted {
		return false
	}
	return s.EndDate.After(now)
}

// AnchorDate zincir çözümlemesinde kullanılan tarih: originalStartDate ?? startDate
func (s *Subscription) AnchorDate() time.Time {
	if s.OriginalStartDate != nil {
		return *s.OriginalStartDate
	}
	return s.StartDate
}
