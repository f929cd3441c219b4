package access

import (
	"errors"
	"log"
	"time"

	"gorm.io/gorm"

	"dergipage_backend/internal/model"
)

// FindActiveSubscription şu an erişim veren aboneliği bulur. Kayıt yoksa
// (nil, nil) döner; bu bir hata değil "erişim yok" sinyalidir.
func FindActiveSubscription(db *gorm.DB, userID, productID uint, now time.Time) (*model.Subscription, error) {
	var sub model.Subscription
	err := db.Where(
		"user_id = ? AND product_id = ? AND status IN ? AND end_date > ? AND payment_status = ?",
		userID, productID,
		[]model.SubscriptionStatus{model.StatusActive, model.StatusExpireSoon},
		now, model.PaymentCompleted,
	).Order("end_date DESC"). // birden fazla kayıt varsa en geç biteni seç
		First(&sub).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &sub, nil
}

// StartResolution zincir çözümlemesinin sonucu. Degraded true ise zincir
// sorgusu başarısız oldu ve aboneliğin kendi tarihine düşüldü.
type StartResolution struct {
	EffectiveStart time.Time
	Degraded       bool
}

// ResolveEffectiveStart zincir üyelerinden etkin başlangıç tarihini hesaplar.
// Zincir boşsa aboneliğin kendi tarihi kullanılır.
func ResolveEffectiveStart(active model.Subscription, chain []model.Subscription) time.Time {
	if len(chain) == 0 {
		return active.AnchorDate()
	}

	earliest := chain[0]
	for _, member := range chain[1:] {
		if member.StartDate.Before(earliest.StartDate) {
			earliest = member
		}
	}

	return earliest.AnchorDate()
}

// EffectiveStartDate makaleleri geçmiş/gelecek olarak ayırmada kullanılan
// tarihi üretir. Abonelik bir yenileme zincirine bağlıysa zincirin en eski
// üyesinin tarihi esas alınır; böylece yenileme geçmiş penceresini sıfırlamaz.
// Zincir sorgusu hata verirse en iyi tahminle devam edilir, hata yüzeye çıkmaz.
func EffectiveStartDate(db *gorm.DB, active model.Subscription) StartResolution {
	if active.ContiguousChainID == nil {
		return StartResolution{EffectiveStart: active.AnchorDate()}
	}

	var chain []model.Subscription
	err := db.Where(
		"contiguous_chain_id = ? AND user_id = ? AND product_id = ? AND payment_status = ?",
		*active.ContiguousChainID, active.UserID, active.ProductID, model.PaymentCompleted,
	).Order("start_date ASC").
		Find(&chain).Error

	if err != nil {
		log.Printf("Could not resolve renewal chain %s for subscription %d: %v",
			*active.ContiguousChainID, active.ID, err)
		return StartResolution{EffectiveStart: active.AnchorDate(), Degraded: true}
	}

	// Zincir id'si var ama üye bulunamadı: tutarsız veri, kendi tarihine düş
	return StartResolution{EffectiveStart: ResolveEffectiveStart(active, chain)}
}
