package access_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"dergipage_backend/internal/model"
	"dergipage_backend/pkg/access"
)

func TestDaysRemaining(t *testing.T) {
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		endDate time.Time
		want    int
	}{
		{"ten full days", now.AddDate(0, 0, 10), 10},
		{"partial day rounds up", now.Add(36 * time.Hour), 2},
		{"less than a day rounds up", now.Add(2 * time.Hour), 1},
		{"already passed goes negative", now.Add(-30 * time.Hour), -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, access.DaysRemaining(tt.endDate, now))
		})
	}
}

func TestNoAccessResponse(t *testing.T) {
	product := model.Product{
		Heading:          "Teknoloji Bülteni",
		ShortDescription: "Weekly technology digest",
		Articles: []model.Article{
			{IsActive: true},
			{IsActive: true},
			{IsActive: false},
		},
		Variants: []model.Variant{
			{Name: "Monthly", Price: 9.99},
		},
	}
	product.ID = 7

	response := access.NoAccessResponse(product)

	assert.True(t, response.Success)
	assert.False(t, response.HasAccess)
	assert.Empty(t, response.Articles)
	assert.NotNil(t, response.Articles, "articles must serialize as [] not null")
	assert.Nil(t, response.Subscription)
	assert.Equal(t, uint(7), response.Product.ID)
	assert.Equal(t, "Teknoloji Bülteni", response.Product.Heading)
	assert.Len(t, response.Product.Variants, 1)
	assert.Equal(t, 3, response.AccessInfo.TotalArticles)
	assert.Equal(t, 2, response.AccessInfo.ActiveArticles)
	assert.Equal(t, 0, response.AccessInfo.AccessibleArticles)
	assert.NotEmpty(t, response.AccessInfo.Message)
	assert.Nil(t, response.AccessInfo.EffectiveStartDate)
}
