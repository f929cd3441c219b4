// Package subscription abonelik yaşam döngüsü yardımcıları: yenileme
// zinciri tespiti ve durum geçişleri için süre eşikleri.
package subscription

import (
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"dergipage_backend/internal/model"
)

// MaxRenewalGap yeni aboneliğin öncekinin bitişine "bitişik" sayılması için
// izin verilen en büyük boşluk
const MaxRenewalGap = 24 * time.Hour

// ExpireSoonWindow bitişe bu kadar gün kala abonelik expiresoon'a geçer
const ExpireSoonWindow = 7 * 24 * time.Hour

// FindPriorSubscription yeni başlangıç tarihine bitişik biten, ödemesi
// tamamlanmış önceki aboneliği bulur. Yoksa (nil, nil) döner.
func FindPriorSubscription(db *gorm.DB, userID, productID uint, startDate time.Time) (*model.Subscription, error) {
	var prior model.Subscription
	err := db.Where(
		"user_id = ? AND product_id = ? AND payment_status = ? AND end_date BETWEEN ? AND ?",
		userID, productID, model.PaymentCompleted,
		startDate.Add(-MaxRenewalGap), startDate,
	).Order("end_date DESC").
		First(&prior).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &prior, nil
}

// LinkRenewalChain yeni aboneliği varsa önceki bitişik abonelikle aynı
// zincire bağlar. Önceki abonelik zincirsizse yeni bir zincir id'si üretilir
// ve iki kayda da yazılır. OriginalStartDate zincirin başından kopyalanır.
func LinkRenewalChain(db *gorm.DB, sub *model.Subscription) error {
	prior, err := FindPriorSubscription(db, sub.UserID, sub.ProductID, sub.StartDate)
	if err != nil {
		return err
	}
	if prior == nil {
		return nil // yenileme değil, taze abonelik
	}

	chainID := prior.ContiguousChainID
	if chainID == nil {
		id := uuid.New().String()
		chainID = &id
		if err := db.Model(prior).Update("contiguous_chain_id", id).Error; err != nil {
			return err
		}
	}

	anchor := prior.AnchorDate()
	sub.ContiguousChainID = chainID
	sub.OriginalStartDate = &anchor

	if err := db.Model(sub).Updates(map[string]interface{}{
		"contiguous_chain_id": *chainID,
		"original_start_date": anchor,
	}).Error; err != nil {
		return err
	}

	log.Printf("Linked subscription %d to renewal chain %s", sub.ID, *chainID)
	return nil
}
