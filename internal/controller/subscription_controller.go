package controller

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/checkout/session"
	"github.com/stripe/stripe-go/v74/coupon"
	"github.com/stripe/stripe-go/v74/webhook"

	"dergipage_backend/internal/model"
	"dergipage_backend/pkg/database"
	"dergipage_backend/pkg/promo"
	"dergipage_backend/pkg/subscription"
	"dergipage_backend/pkg/utils/jwt"
)

type CheckoutInput struct {
	VariantID uint   `json:"variant_id" validate:"required"`
	PromoCode string `json:"promo_code"`
}

func InitSubscriptionController() {}

// CreateCheckoutSession seçilen varyant için Stripe checkout oturumu açar.
// Promosyon kodu verilmişse indirim Stripe kuponu olarak uygulanır.
func CreateCheckoutSession(c *fiber.Ctx) error {
	input := new(CheckoutInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	claims := c.Locals("user").(*jwt.Claims)

	var variant model.Variant
	if err := database.DB.Preload("Product").First(&variant, input.VariantID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Pricing variant not found",
		})
	}

	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(string(variant.Currency)),
					UnitAmount: stripe.Int64(int64(variant.Price * 100)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(fmt.Sprintf("%s - %s", variant.Product.Heading, variant.Name)),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(os.Getenv("FRONTEND_URL") + "/subscriptions/payment-success"),
		CancelURL:  stripe.String(os.Getenv("FRONTEND_URL") + "/subscriptions/payment-cancelled"),
	}

	params.AddMetadata("user_id", strconv.FormatUint(uint64(claims.UserID), 10))
	params.AddMetadata("variant_id", strconv.FormatUint(uint64(variant.ID), 10))
	params.AddMetadata("product_id", strconv.FormatUint(uint64(variant.ProductID), 10))

	// Promosyon kodu kontrolü
	if input.PromoCode != "" {
		promoCode, err := promo.Redeem(database.DB, input.PromoCode, time.Now())
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		stripeCoupon, err := coupon.New(&stripe.CouponParams{
			PercentOff: stripe.Float64(float64(promoCode.PercentOff)),
			Duration:   stripe.String(string(stripe.CouponDurationOnce)),
		})
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Could not apply promo code",
			})
		}

		params.Discounts = []*stripe.CheckoutSessionDiscountParams{
			{Coupon: stripe.String(stripeCoupon.ID)},
		}
		params.AddMetadata("promo_code", promoCode.Code)
	}

	checkoutSession, err := session.New(params)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not create checkout session",
		})
	}

	return c.JSON(fiber.Map{
		"session_id": checkoutSession.ID,
		"url":        checkoutSession.URL,
	})
}

// CancelSubscription aktif aboneliği iptal eder
func CancelSubscription(c *fiber.Ctx) error {
	claims := c.Locals("user").(*jwt.Claims)

	productID, err := strconv.ParseUint(c.Query("product_id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid product ID",
		})
	}

	var sub model.Subscription
	if err := database.DB.Where(
		"user_id = ? AND product_id = ? AND status IN ?",
		claims.UserID, productID,
		[]model.SubscriptionStatus{model.StatusActive, model.StatusExpireSoon},
	).Order("end_date DESC").First(&sub).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "No active subscription found",
		})
	}

	sub.Status = model.StatusCancelled
	if err := database.DB.Save(&sub).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not update subscription status",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Subscription cancelled successfully",
	})
}

// GetMySubscriptions kullanıcının erişim veren aboneliklerini listeler
func GetMySubscriptions(c *fiber.Ctx) error {
	claims := c.Locals("user").(*jwt.Claims)

	var subs []model.Subscription
	if err := database.DB.Where(
		"user_id = ? AND status IN ? AND payment_status = ?",
		claims.UserID,
		[]model.SubscriptionStatus{model.StatusActive, model.StatusExpireSoon},
		model.PaymentCompleted,
	).Preload("Product").Preload("Variant").
		Find(&subs).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch subscriptions",
		})
	}

	return c.JSON(subs)
}

// HandleStripeWebhook ödeme sonuçlarını işler. Başarılı ödeme abonelik
// kaydını oluşturur ve varsa yenileme zincirine bağlar.
func HandleStripeWebhook(c *fiber.Ctx) error {
	webhookSecret := os.Getenv("STRIPE_WEBHOOK_SECRET")

	payload := c.Body()
	signatureHeader := c.Get("Stripe-Signature")

	event, err := webhook.ConstructEvent(payload, signatureHeader, webhookSecret)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid webhook signature",
		})
	}

	log.Printf("Processing Stripe webhook event: %s", event.Type)

	switch event.Type {
	case "checkout.session.completed":
		var sessionData struct {
			ID       string            `json:"id"`
			Metadata map[string]string `json:"metadata"`
		}
		if err := json.Unmarshal(event.Data.Raw, &sessionData); err != nil {
			return c.Status(fiber.StatusBadRequest).Send(nil)
		}

		if err := createSubscriptionFromCheckout(sessionData.ID, sessionData.Metadata); err != nil {
			log.Printf("Could not create subscription for session %s: %v", sessionData.ID, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Could not create subscription",
			})
		}

		log.Printf("Subscription created for checkout session %s", sessionData.ID)

	case "checkout.session.expired":
		var sessionData struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(event.Data.Raw, &sessionData); err != nil {
			return c.Status(fiber.StatusBadRequest).Send(nil)
		}

		// Tamamlanmayan ödeme: bekleyen kayıt varsa failed'a çek
		if err := database.DB.Model(&model.Subscription{}).
			Where("stripe_sub_id = ? AND payment_status = ?", sessionData.ID, model.PaymentPending).
			Update("payment_status", model.PaymentFailed).Error; err != nil {
			log.Printf("Could not mark session %s as failed: %v", sessionData.ID, err)
		}
	}

	return c.SendStatus(fiber.StatusOK)
}

func createSubscriptionFromCheckout(sessionID string, metadata map[string]string) error {
	userID, err := strconv.ParseUint(metadata["user_id"], 10, 32)
	if err != nil {
		return fmt.Errorf("invalid user_id in metadata: %v", err)
	}
	variantID, err := strconv.ParseUint(metadata["variant_id"], 10, 32)
	if err != nil {
		return fmt.Errorf("invalid variant_id in metadata: %v", err)
	}

	var variant model.Variant
	if err := database.DB.First(&variant, variantID).Error; err != nil {
		return fmt.Errorf("variant not found: %v", err)
	}

	now := time.Now()
	sub := model.Subscription{
		UserID:                 uint(userID),
		ProductID:              variant.ProductID,
		VariantID:              variant.ID,
		Status:                 model.StatusActive,
		PaymentStatus:          model.PaymentCompleted,
		StartDate:              now,
		EndDate:                now.AddDate(0, 0, variant.DurationDays),
		HistoricalArticleLimit: variant.HistoricalArticleLimit,
		StripeSubID:            sessionID,
	}

	if err := database.DB.Create(&sub).Error; err != nil {
		return err
	}

	// Bitişik yenileme ise zincire bağla; hata aboneliği geçersiz kılmaz
	if err := subscription.LinkRenewalChain(database.DB, &sub); err != nil {
		log.Printf("Could not link renewal chain for subscription %d: %v", sub.ID, err)
	}

	return nil
}
