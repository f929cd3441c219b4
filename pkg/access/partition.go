package access

import (
	"sort"
	"time"

	"dergipage_backend/internal/model"
)

// ArticleType makalenin hangi pencereden döndüğünü işaretler
type ArticleType string

const (
	TypeHistorical ArticleType = "historical"
	TypeFuture     ArticleType = "future"
)

type PartitionedArticle struct {
	model.Article
	Type ArticleType
}

// PartitionArticles makaleleri etkin başlangıç tarihine göre ikiye böler.
// Geçmiş küme issue tarihi <= effectiveStart olanlardan en yeni limit kadarı,
// gelecek küme issue tarihi > effectiveStart olanların tamamıdır. Pasif veya
// issue tarihi boş makaleler iki kümeye de girmez. Sınırdaki makale
// (issue tarihi == effectiveStart) geçmiş sayılır.
func PartitionArticles(articles []model.Article, effectiveStart time.Time, limit int) (historical, future []PartitionedArticle) {
	for _, article := range articles {
		if !article.IsActive || article.IssueDate == nil {
			continue
		}

		if article.IssueDate.After(effectiveStart) {
			future = append(future, PartitionedArticle{Article: article, Type: TypeFuture})
		} else {
			historical = append(historical, PartitionedArticle{Article: article, Type: TypeHistorical})
		}
	}

	sortByIssueDateDesc(historical)
	sortByIssueDateDesc(future)

	// En yeni N sayı; limit 0 ise geçmiş küme boş kalır
	if limit < 0 {
		limit = 0
	}
	if len(historical) > limit {
		historical = historical[:limit]
	}

	return historical, future
}

// MergeSorted iki kümeyi issue tarihine göre azalan tek listede birleştirir
func MergeSorted(historical, future []PartitionedArticle) []PartitionedArticle {
	merged := make([]PartitionedArticle, 0, len(historical)+len(future))
	merged = append(merged, future...)
	merged = append(merged, historical...)
	sortByIssueDateDesc(merged)
	return merged
}

func sortByIssueDateDesc(articles []PartitionedArticle) {
	sort.SliceStable(articles, func(i, j int) bool {
		return articles[i].IssueDate.After(*articles[j].IssueDate)
	})
}
