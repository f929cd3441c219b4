package seed

import (
	"log"
	"time"

	"gorm.io/gorm"

	"dergipage_backend/internal/model"
)

func SeedStaffMembers(db *gorm.DB) {
	members := []model.StaffMember{
		{Email: "ayse.demir@dergipage.com", DisplayName: "Ayşe Demir", Role: "editor"},
		{Email: "mehmet.kaya@dergipage.com", DisplayName: "Mehmet Kaya", Role: "author"},
		{Email: "elif.celik@dergipage.com", DisplayName: "Elif Çelik", Role: "author"},
	}

	for _, member := range members {
		result := db.FirstOrCreate(&member, model.StaffMember{Email: member.Email})
		if result.Error != nil {
			log.Printf("Error creating staff member %s: %v", member.Email, result.Error)
		}
	}

	log.Println("Staff members seeded successfully!")
}

func SeedProducts(db *gorm.DB) {
	products := []model.Product{
		{
			Heading:          "Teknoloji Bülteni",
			ShortDescription: "Weekly technology digest",
			Description:      "In-depth weekly coverage of the technology industry",
			TrialDays:        7,
			IsActive:         true,
			Variants: []model.Variant{
				{
					Name:                   "Monthly",
					Price:                  9.99,
					Currency:               model.CurrencyUSD,
					DurationDays:           30,
					HistoricalArticleLimit: 5,
					StripeProductID:        "prod_test_tech_monthly",
					StripePriceID:          "price_test_tech_monthly",
				},
				{
					Name:                   "Annual",
					Price:                  99.99,
					Currency:               model.CurrencyUSD,
					DurationDays:           365,
					HistoricalArticleLimit: 10,
					StripeProductID:        "prod_test_tech_annual",
					StripePriceID:          "price_test_tech_annual",
				},
			},
		},
		{
			Heading:          "Ekonomi Analiz",
			ShortDescription: "Monthly economy dossier",
			Description:      "Monthly macro analysis and market dossiers",
			TrialDays:        0,
			IsActive:         true,
			Variants: []model.Variant{
				{
					Name:                   "Monthly",
					Price:                  14.99,
					Currency:               model.CurrencyUSD,
					DurationDays:           30,
					HistoricalArticleLimit: 3,
					StripeProductID:        "prod_test_econ_monthly",
					StripePriceID:          "price_test_econ_monthly",
				},
			},
		},
	}

	for _, product := range products {
		result := db.FirstOrCreate(&product, model.Product{Heading: product.Heading})
		if result.Error != nil {
			log.Printf("Error creating product %s: %v", product.Heading, result.Error)
		}
	}

	log.Println("Products seeded successfully!")
}

func SeedPromoCodes(db *gorm.DB) {
	expiry := time.Now().AddDate(1, 0, 0)
	codes := []model.PromoCode{
		{Code: "WELCOME10", PercentOff: 10, MaxRedemptions: 0, ExpiresAt: &expiry, IsActive: true},
		{Code: "LAUNCH25", PercentOff: 25, MaxRedemptions: 100, ExpiresAt: &expiry, IsActive: true},
	}

	for _, code := range codes {
		result := db.FirstOrCreate(&code, model.PromoCode{Code: code.Code})
		if result.Error != nil {
			log.Printf("Error creating promo code %s: %v", code.Code, result.Error)
		}
	}

	log.Println("Promo codes seeded successfully!")
}
