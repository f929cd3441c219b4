package access

import (
	"math"
	"time"

	"dergipage_backend/internal/model"
)

// Yanıt şekli dış kontrattır; alan adları istemcilerle paylaşılan adlardır.

type ProductView struct {
	ID               uint            `json:"id"`
	Heading          string          `json:"heading"`
	ShortDescription string          `json:"shortDescription"`
	Variants         []model.Variant `json:"variants"`
}

type ArticleView struct {
	ID              uint            `json:"_id"`
	MainHeading     string          `json:"mainHeading"`
	Description     string          `json:"description"`
	Author          string          `json:"author"`
	Category        string          `json:"category"`
	Image           string          `json:"image"`
	CreatedAt       *time.Time      `json:"createdAt"`
	IssueDate       *time.Time      `json:"issueDate"`
	IssueEndDate    *time.Time      `json:"issueEndDate"`
	SectionsCount   int             `json:"sectionsCount"`
	ArticleType     ArticleType     `json:"articleType"`
	IsFavorite      bool            `json:"isFavorite"`
	ReadingProgress ProgressSummary `json:"readingProgress"`
}

type SubscriptionView struct {
	ID            uint      `json:"id"`
	EndDate       time.Time `json:"endDate"`
	DaysRemaining int       `json:"daysRemaining"`
	Status        string    `json:"status"`
	StartDate     time.Time `json:"startDate"`
}

type AccessInfo struct {
	TotalArticles      int        `json:"totalArticles"`
	ActiveArticles     int        `json:"activeArticles"`
	AccessibleArticles int        `json:"accessibleArticles"`
	EffectiveStartDate *time.Time `json:"effectiveStartDate,omitempty"`
	LookBackCount      int        `json:"lookBackCount"`
	HistoricalArticles int        `json:"historicalArticles"`
	FutureArticles     int        `json:"futureArticles"`
	Message            string     `json:"message,omitempty"`
}

type Response struct {
	Success      bool              `json:"success"`
	Product      ProductView       `json:"product"`
	Articles     []ArticleView     `json:"articles"`
	HasAccess    bool              `json:"hasAccess"`
	Subscription *SubscriptionView `json:"subscription"`
	AccessInfo   AccessInfo        `json:"accessInfo"`
}

// DaysRemaining bitişe kalan gün sayısı (yukarı yuvarlanır). Statüsü henüz
// güncellenmemiş geçmiş kayıtlar için negatif olabilir; düzeltilmez.
func DaysRemaining(endDate, now time.Time) int {
	return int(math.Ceil(endDate.Sub(now).Hours() / 24))
}

func buildProductView(product model.Product) ProductView {
	return ProductView{
		ID:               product.ID,
		Heading:          product.Heading,
		ShortDescription: product.ShortDescription,
		Variants:         product.Variants,
	}
}

// NoAccessResponse erişimi olmayan kullanıcı için ürün bilgisiyle boş liste döner
func NoAccessResponse(product model.Product) Response {
	return Response{
		Success:   true,
		Product:   buildProductView(product),
		Articles:  []ArticleView{},
		HasAccess: false,
		AccessInfo: AccessInfo{
			TotalArticles:  len(product.Articles),
			ActiveArticles: countActive(product.Articles),
			Message:        "An active subscription is required to read this publication",
		},
	}
}

func countActive(articles []model.Article) int {
	count := 0
	for _, article := range articles {
		if article.IsActive {
			count++
		}
	}
	return count
}
