package model

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Favorite kullanıcının yıldızladığı makaleler
type Favorite struct {
	gorm.Model
	UserID    uint `json:"user_id" gorm:"uniqueIndex:idx_user_article_fav"`
	ProductID uint `json:"product_id"`
	ArticleID uint `json:"article_id" gorm:"uniqueIndex:idx_user_article_fav"`

	User    User    `json:"-" gorm:"foreignKey:UserID"`
	Article Article `json:"-" gorm:"foreignKey:ArticleID"`
}

// ReadingProgress kullanıcı+makale başına okunan bölümlerin kaydı
type ReadingProgress struct {
	gorm.Model
	UserID    uint `json:"user_id" gorm:"uniqueIndex:idx_user_article_progress"`
	ProductID uint `json:"product_id"`
	ArticleID uint `json:"article_id" gorm:"uniqueIndex:idx_user_article_progress"`

	ReadSections datatypes.JSON `json:"read_sections"`
	Completed    bool           `json:"completed" gorm:"default:false"`

	User    User    `json:"-" gorm:"foreignKey:UserID"`
	Article Article `json:"-" gorm:"foreignKey:ArticleID"`
}

type ReadSectionEntry struct {
	SectionID string    `json:"section_id"`
	ReadAt    time.Time `json:"read_at"`
}

// ParseReadSections ReadSections JSON kolonunu çözer. Bozuk veri boş liste sayılır.
func (p *ReadingProgress) ParseReadSections() []ReadSectionEntry {
	if len(p.ReadSections) == 0 {
		return nil
	}
	var entries []ReadSectionEntry
	if err := json.Unmarshal(p.ReadSections, &entries); err != nil {
		return nil
	}
	return entries
}
