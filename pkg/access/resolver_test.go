package access_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"dergipage_backend/internal/model"
	"dergipage_backend/pkg/access"
)

func makeSubscription(id uint, start time.Time, original *time.Time) model.Subscription {
	sub := model.Subscription{
		StartDate:         start,
		EndDate:           start.AddDate(0, 1, 0),
		Status:            model.StatusActive,
		PaymentStatus:     model.PaymentCompleted,
		OriginalStartDate: original,
	}
	sub.ID = id
	return sub
}

func TestResolveEffectiveStart(t *testing.T) {
	jan := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	mar := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	dec := time.Date(2023, time.December, 1, 0, 0, 0, 0, time.UTC)

	t.Run("empty chain falls back to own start date", func(t *testing.T) {
		active := makeSubscription(1, feb, nil)

		result := access.ResolveEffectiveStart(active, nil)

		assert.Equal(t, feb, result)
	})

	t.Run("empty chain prefers original start date when set", func(t *testing.T) {
		active := makeSubscription(1, feb, &jan)

		result := access.ResolveEffectiveStart(active, nil)

		assert.Equal(t, jan, result)
	})

	t.Run("chain resolves to earliest member start date", func(t *testing.T) {
		active := makeSubscription(3, mar, nil)
		chain := []model.Subscription{
			makeSubscription(1, jan, nil),
			makeSubscription(2, feb, nil),
			active,
		}

		result := access.ResolveEffectiveStart(active, chain)

		assert.Equal(t, jan, result)
	})

	t.Run("earliest member original start date wins", func(t *testing.T) {
		active := makeSubscription(3, mar, nil)
		chain := []model.Subscription{
			makeSubscription(1, jan, &dec),
			makeSubscription(2, feb, nil),
			active,
		}

		result := access.ResolveEffectiveStart(active, chain)

		assert.Equal(t, dec, result)
	})

	t.Run("result is independent of which member is active", func(t *testing.T) {
		chain := []model.Subscription{
			makeSubscription(1, jan, nil),
			makeSubscription(2, feb, nil),
			makeSubscription(3, mar, nil),
		}

		for _, active := range chain {
			result := access.ResolveEffectiveStart(active, chain)
			assert.Equal(t, jan, result)
		}
	})

	t.Run("chain order does not matter", func(t *testing.T) {
		active := makeSubscription(3, mar, nil)
		chain := []model.Subscription{
			active,
			makeSubscription(1, jan, nil),
			makeSubscription(2, feb, nil),
		}

		result := access.ResolveEffectiveStart(active, chain)

		assert.Equal(t, jan, result)
	})
}

func TestSubscriptionIsGrantingAccess(t *testing.T) {
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		status        model.SubscriptionStatus
		paymentStatus model.PaymentStatus
		endDate       time.Time
		want          bool
	}{
		{"active completed future end", model.StatusActive, model.PaymentCompleted, now.AddDate(0, 0, 10), true},
		{"expiresoon completed future end", model.StatusExpireSoon, model.PaymentCompleted, now.AddDate(0, 0, 2), true},
		{"expired status", model.StatusExpired, model.PaymentCompleted, now.AddDate(0, 0, 10), false},
		{"cancelled status", model.StatusCancelled, model.PaymentCompleted, now.AddDate(0, 0, 10), false},
		{"pending payment", model.StatusActive, model.PaymentPending, now.AddDate(0, 0, 10), false},
		{"failed payment", model.StatusActive, model.PaymentFailed, now.AddDate(0, 0, 10), false},
		{"end date passed", model.StatusActive, model.PaymentCompleted, now.AddDate(0, 0, -1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := model.Subscription{
				Status:        tt.status,
				PaymentStatus: tt.paymentStatus,
				StartDate:     now.AddDate(0, -1, 0),
				EndDate:       tt.endDate,
			}

			assert.Equal(t, tt.want, sub.IsGrantingAccess(now))
		})
	}
}
