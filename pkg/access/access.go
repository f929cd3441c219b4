// Package access bir kullanıcının bir üründe okuyabileceği makaleleri çözer:
// aktif abonelik bulunur, yenileme zincirinden etkin başlangıç tarihi
// hesaplanır, makaleler geçmiş/gelecek olarak bölünür ve okuyucuya özel
// alanlarla zenginleştirilir.
package access

import (
	"sync"
	"time"

	"gorm.io/gorm"

	"dergipage_backend/internal/model"
)

// BuildProductAccess core akışı uçtan uca çalıştırır. product, makaleleri ve
// varyantlarıyla birlikte yüklenmiş olmalıdır. userID'nin erişimi yoksa
// hasAccess=false ile boş liste döner; bu bir hata değildir.
func BuildProductAccess(db *gorm.DB, userID uint, product model.Product, now time.Time) (Response, error) {
	sub, err := FindActiveSubscription(db, userID, product.ID, now)
	if err != nil {
		return Response{}, err
	}
	if sub == nil {
		return NoAccessResponse(product), nil
	}

	resolution := EffectiveStartDate(db, *sub)

	historical, future := PartitionArticles(product.Articles, resolution.EffectiveStart, sub.HistoricalArticleLimit)
	merged := MergeSorted(historical, future)

	articleIDs := make([]uint, 0, len(merged))
	for _, article := range merged {
		articleIDs = append(articleIDs, article.ID)
	}

	// Favoriler ve okuma kayıtları birbirinden bağımsız, paralel çekilir
	var (
		favorites map[uint]bool
		progress  map[uint]*model.ReadingProgress
		wg        sync.WaitGroup
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		favorites = FavoriteArticleIDs(db, userID, product.ID)
	}()
	go func() {
		defer wg.Done()
		progress = ProgressByArticle(db, userID, product.ID, articleIDs)
	}()
	wg.Wait()

	authorNames := ResolveAuthorNames(db, merged)

	articles := make([]ArticleView, 0, len(merged))
	for _, article := range merged {
		articles = append(articles, ArticleView{
			ID:              article.ID,
			MainHeading:     article.MainHeading,
			Description:     article.Description,
			Author:          DisplayAuthor(article.Author, authorNames),
			Category:        string(article.Category),
			Image:           article.Image,
			CreatedAt:       article.IssueDate,
			IssueDate:       article.IssueDate,
			IssueEndDate:    article.IssueEndDate,
			SectionsCount:   article.SectionCount(),
			ArticleType:     article.Type,
			IsFavorite:      favorites[article.ID],
			ReadingProgress: BuildProgressSummary(progress[article.ID], article.SectionCount()),
		})
	}

	effectiveStart := resolution.EffectiveStart

	return Response{
		Success:   true,
		Product:   buildProductView(product),
		Articles:  articles,
		HasAccess: true,
		Subscription: &SubscriptionView{
			ID:            sub.ID,
			EndDate:       sub.EndDate,
			DaysRemaining: DaysRemaining(sub.EndDate, now),
			Status:        string(sub.Status),
			StartDate:     sub.StartDate,
		},
		AccessInfo: AccessInfo{
			TotalArticles:      len(product.Articles),
			ActiveArticles:     countActive(product.Articles),
			AccessibleArticles: len(merged),
			EffectiveStartDate: &effectiveStart,
			LookBackCount:      sub.HistoricalArticleLimit,
			HistoricalArticles: len(historical),
			FutureArticles:     len(future),
		},
	}, nil
}
