package promo_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"dergipage_backend/internal/model"
	"dergipage_backend/pkg/promo"
)

func TestValidate(t *testing.T) {
	now := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	past := now.AddDate(0, -1, 0)
	future := now.AddDate(0, 1, 0)

	tests := []struct {
		name string
		code model.PromoCode
		want error
	}{
		{
			"valid unlimited code",
			model.PromoCode{Code: "WELCOME10", PercentOff: 10, IsActive: true},
			nil,
		},
		{
			"valid code with future expiry",
			model.PromoCode{Code: "LAUNCH25", PercentOff: 25, IsActive: true, ExpiresAt: &future, MaxRedemptions: 100, Redeemed: 99},
			nil,
		},
		{
			"inactive code",
			model.PromoCode{Code: "OLD", IsActive: false},
			promo.ErrInactive,
		},
		{
			"expired code",
			model.PromoCode{Code: "EXPIRED", IsActive: true, ExpiresAt: &past},
			promo.ErrExpired,
		},
		{
			"exhausted code",
			model.PromoCode{Code: "FULL", IsActive: true, MaxRedemptions: 5, Redeemed: 5},
			promo.ErrExhausted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := promo.Validate(tt.code, now)
			if tt.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}
