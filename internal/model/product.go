package model

import (
	"encoding/json"
	"time"

	"github.com/gosimple/slug"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Article Categories
type ArticleCategory string

const (
	CategoryNews      ArticleCategory = "News"
	CategoryAnalysis  ArticleCategory = "Analysis"
	CategoryInterview ArticleCategory = "Interview"
	CategoryColumn    ArticleCategory = "Column"
	CategoryDossier   ArticleCategory = "Dossier"
)

// Currency Types
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyTRY Currency = "TRY"
	CurrencyGBP Currency = "GBP"
)

type Product struct {
	gorm.Model
	Heading          string `json:"heading" gorm:"not null"`
	Slug             string `json:"slug" gorm:"uniqueIndex;not null"`
	ShortDescription string `json:"short_description"`
	Description      string `json:"description" gorm:"type:text"`
	CoverImage       string `json:"cover_image"`
	IsActive         bool   `json:"is_active" gorm:"default:true"`
	TrialDays        int    `json:"trial_days" gorm:"default:0"` // 0 ise deneme kapalı

	// İlişkiler
	Articles []Article `json:"articles" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Variants []Variant `json:"variants" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// Variant bir ürünün fiyatlandırma seçeneği (aylık, yıllık vb.)
type Variant struct {
	gorm.Model
	ProductID              uint     `json:"product_id"`
	Name                   string   `json:"name" gorm:"not null"`
	Price                  float64  `json:"price" gorm:"not null"`
	Currency               Currency `json:"currency" gorm:"not null"`
	DurationDays           int      `json:"duration_days" gorm:"not null"`
	HistoricalArticleLimit int      `json:"historical_article_limit" gorm:"default:5"`
	StripeProductID        string   `json:"stripe_product_id"`
	StripePriceID          string   `json:"stripe_price_id"`

	Product Product `json:"-" gorm:"foreignKey:ProductID"`
}

type Article struct {
	gorm.Model
	ProductID   uint            `json:"product_id" gorm:"uniqueIndex:idx_product_article_slug"`
	MainHeading string          `json:"main_heading" gorm:"not null"`
	Slug        string          `json:"slug" gorm:"uniqueIndex:idx_product_article_slug;not null"`
	Description string          `json:"description" gorm:"type:text"`
	Author      string          `json:"author"` // email ise staff dizininden isim çözülür
	Category    ArticleCategory `json:"category"`
	Image       string          `json:"image"`
	IsActive    bool            `json:"is_active" gorm:"default:true"`

	// Sayı (issue) tarihleri. IssueDate boş olan makaleler kullanıcıya dönmez.
	IssueDate    *time.Time `json:"issue_date"`
	IssueEndDate *time.Time `json:"issue_end_date"`

	// Bölümler ve içerik blokları (esnek yapı)
	Sections datatypes.JSON `json:"sections"`

	Product Product `json:"-" gorm:"foreignKey:ProductID"`
}

type ArticleSection struct {
	ID     string          `json:"id"`
	Title  string          `json:"title"`
	Blocks json.RawMessage `json:"blocks,omitempty"`
}

// ParseSections Sections JSON kolonunu çözer. Bozuk veri boş liste sayılır.
func (a *Article) ParseSections() []ArticleSection {
	if len(a.Sections) == 0 {
		return nil
	}
	var sections []ArticleSection
	if err := json.Unmarshal(a.Sections, &sections); err != nil {
		return nil
	}
	return sections
}

func (a *Article) SectionCount() int {
	return len(a.ParseSections())
}

// BeforeCreate makale oluşturulurken slug'ı otomatik oluşturur
func (a *Article) BeforeCreate(tx *gorm.DB) error {
	if a.Slug == "" {
		s := slug.Make(a.MainHeading)

		// Aynı ürün içinde benzersiz olduğundan emin ol
		var count int64
		tx.Model(&Article{}).Where("product_id = ? AND slug = ?", a.ProductID, s).Count(&count)
		if count > 0 {
			s = s + "-" + time.Now().Format("20060102150405")
		}

		a.Slug = s
	}
	return nil
}

// BeforeCreate ürün oluşturulurken slug'ı otomatik oluşturur
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.Slug == "" {
		p.Slug = slug.Make(p.Heading)
	}
	return nil
}
