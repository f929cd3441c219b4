package access_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dergipage_backend/internal/model"
	"dergipage_backend/pkg/access"
)

func issueDate(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func makeArticle(id uint, date *time.Time, active bool) model.Article {
	article := model.Article{
		MainHeading: "Article",
		IsActive:    active,
		IssueDate:   date,
	}
	article.ID = id
	return article
}

func TestPartitionArticles(t *testing.T) {
	effectiveStart := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

	t.Run("splits on effective start date", func(t *testing.T) {
		articles := []model.Article{
			makeArticle(1, issueDate(2024, time.January, 10), true),
			makeArticle(2, issueDate(2024, time.February, 10), true),
			makeArticle(3, issueDate(2024, time.April, 10), true),
			makeArticle(4, issueDate(2024, time.May, 10), true),
		}

		historical, future := access.PartitionArticles(articles, effectiveStart, 5)

		require.Len(t, historical, 2)
		require.Len(t, future, 2)
		for _, article := range historical {
			assert.Equal(t, access.TypeHistorical, article.Type)
			assert.False(t, article.IssueDate.After(effectiveStart))
		}
		for _, article := range future {
			assert.Equal(t, access.TypeFuture, article.Type)
			assert.True(t, article.IssueDate.After(effectiveStart))
		}
	})

	t.Run("boundary date is historical not future", func(t *testing.T) {
		articles := []model.Article{
			makeArticle(1, &effectiveStart, true),
		}

		historical, future := access.PartitionArticles(articles, effectiveStart, 5)

		require.Len(t, historical, 1)
		assert.Empty(t, future)
		assert.Equal(t, access.TypeHistorical, historical[0].Type)
	})

	t.Run("historical keeps the N most recent issues", func(t *testing.T) {
		articles := []model.Article{
			makeArticle(1, issueDate(2023, time.October, 1), true),
			makeArticle(2, issueDate(2023, time.November, 1), true),
			makeArticle(3, issueDate(2023, time.December, 1), true),
			makeArticle(4, issueDate(2024, time.January, 1), true),
			makeArticle(5, issueDate(2024, time.February, 1), true),
		}

		historical, _ := access.PartitionArticles(articles, effectiveStart, 2)

		require.Len(t, historical, 2)
		// En yeni iki sayı kalmalı, en eskiler değil
		assert.Equal(t, uint(5), historical[0].ID)
		assert.Equal(t, uint(4), historical[1].ID)
	})

	t.Run("future set is never capped", func(t *testing.T) {
		var articles []model.Article
		for i := 1; i <= 20; i++ {
			articles = append(articles, makeArticle(uint(i), issueDate(2024, time.April, i), true))
		}

		_, future := access.PartitionArticles(articles, effectiveStart, 1)

		assert.Len(t, future, 20)
	})

	t.Run("zero limit empties historical but not future", func(t *testing.T) {
		articles := []model.Article{
			makeArticle(1, issueDate(2024, time.January, 1), true),
			makeArticle(2, issueDate(2024, time.April, 1), true),
		}

		historical, future := access.PartitionArticles(articles, effectiveStart, 0)

		assert.Empty(t, historical)
		assert.Len(t, future, 1)
	})

	t.Run("inactive articles are excluded", func(t *testing.T) {
		articles := []model.Article{
			makeArticle(1, issueDate(2024, time.January, 1), false),
			makeArticle(2, issueDate(2024, time.April, 1), false),
			makeArticle(3, issueDate(2024, time.April, 2), true),
		}

		historical, future := access.PartitionArticles(articles, effectiveStart, 5)

		assert.Empty(t, historical)
		require.Len(t, future, 1)
		assert.Equal(t, uint(3), future[0].ID)
	})

	t.Run("articles without an issue date are excluded", func(t *testing.T) {
		articles := []model.Article{
			makeArticle(1, nil, true),
			makeArticle(2, issueDate(2024, time.April, 1), true),
		}

		historical, future := access.PartitionArticles(articles, effectiveStart, 5)

		assert.Empty(t, historical)
		assert.Len(t, future, 1)
	})
}

func TestMergeSorted(t *testing.T) {
	effectiveStart := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

	articles := []model.Article{
		makeArticle(1, issueDate(2024, time.January, 5), true),
		makeArticle(2, issueDate(2024, time.May, 5), true),
		makeArticle(3, issueDate(2024, time.February, 5), true),
		makeArticle(4, issueDate(2024, time.April, 5), true),
	}

	historical, future := access.PartitionArticles(articles, effectiveStart, 5)
	merged := access.MergeSorted(historical, future)

	require.Len(t, merged, 4)
	for i := 1; i < len(merged); i++ {
		assert.True(t, merged[i-1].IssueDate.After(*merged[i].IssueDate),
			"merged list must be sorted descending by issue date")
	}
}

// Sekiz sayılık örnek: Ocak başlangıçlı zincir, limit 3
func TestPartitionRenewalScenario(t *testing.T) {
	effectiveStart := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	var articles []model.Article
	for month := time.January; month <= time.August; month++ {
		// Ocak 1 sınır tarihi: geçmiş sayılmalı
		articles = append(articles, makeArticle(uint(month), issueDate(2024, month, 1), true))
	}
	// Aralık sayıları da geçmişte kalsın
	articles = append(articles, makeArticle(100, issueDate(2023, time.December, 1), true))

	historical, future := access.PartitionArticles(articles, effectiveStart, 3)

	// Ocak 1 + Aralık = 2 geçmiş sayı (limit 3'ün altında)
	assert.Len(t, historical, 2)
	// Şubat-Ağustos = 7 gelecek sayı, sınırsız
	assert.Len(t, future, 7)
	assert.Len(t, access.MergeSorted(historical, future), 9)
}
