package cron

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"dergipage_backend/internal/model"
	"dergipage_backend/pkg/database"
	"dergipage_backend/pkg/subscription"
)

func InitSubscriptionStatusCron() {
	c := cron.New()

	// Saatlik tarama: active -> expiresoon -> expired geçişleri
	_, err := c.AddFunc("0 * * * *", func() {
		SweepSubscriptionStatuses()
	})

	if err != nil {
		log.Printf("Could not initialize subscription status cron: %v", err)
		return
	}

	c.Start()
}

// SweepSubscriptionStatuses süresi dolan abonelikleri expired, bitişine az
// kalanları expiresoon durumuna taşır
func SweepSubscriptionStatuses() {
	now := time.Now()
	db := database.GetDB()

	expired := db.Model(&model.Subscription{}).
		Where("status IN ? AND end_date <= ?",
			[]model.SubscriptionStatus{model.StatusActive, model.StatusExpireSoon}, now).
		Update("status", model.StatusExpired)
	if expired.Error != nil {
		log.Printf("Error expiring subscriptions: %v", expired.Error)
	} else if expired.RowsAffected > 0 {
		log.Printf("Marked %d subscriptions as expired", expired.RowsAffected)
	}

	expireSoon := db.Model(&model.Subscription{}).
		Where("status = ? AND end_date > ? AND end_date <= ?",
			model.StatusActive, now, now.Add(subscription.ExpireSoonWindow)).
		Update("status", model.StatusExpireSoon)
	if expireSoon.Error != nil {
		log.Printf("Error marking expiring subscriptions: %v", expireSoon.Error)
	} else if expireSoon.RowsAffected > 0 {
		log.Printf("Marked %d subscriptions as expiring soon", expireSoon.RowsAffected)
	}
}
