package access

import (
	"fmt"
	"log"
	"math"
	"strings"

	"gorm.io/gorm"

	"dergipage_backend/internal/model"
)

// ProgressSummary makale başına okuma durumu özeti
type ProgressSummary struct {
	ReadPercentage    int    `json:"readPercentage"`
	Completed         bool   `json:"completed"`
	ReadSectionsCount int    `json:"readSectionsCount"`
	TotalSections     int    `json:"totalSections"`
	ProgressText      string `json:"progressText"`
	HasProgress       bool   `json:"hasProgress"`
}

// BuildProgressSummary okuma kaydından özet üretir. Kayıt yoksa sayaçlar
// sıfır döner. totalSections 0 ise yüzde 0 kabul edilir.
func BuildProgressSummary(progress *model.ReadingProgress, totalSections int) ProgressSummary {
	summary := ProgressSummary{
		TotalSections: totalSections,
		ProgressText:  fmt.Sprintf("0/%d", totalSections),
	}

	if progress == nil {
		return summary
	}

	readCount := len(progress.ParseReadSections())

	percentage := 0
	if totalSections > 0 {
		percentage = int(math.Round(float64(readCount) / float64(totalSections) * 100))
		if percentage > 100 {
			percentage = 100
		}
		if percentage < 0 {
			percentage = 0
		}
	}

	summary.ReadPercentage = percentage
	summary.Completed = progress.Completed
	summary.ReadSectionsCount = readCount
	summary.ProgressText = fmt.Sprintf("%d/%d", readCount, totalSections)
	summary.HasProgress = true

	return summary
}

// FavoriteArticleIDs kullanıcının bu üründe yıldızladığı makale id'leri.
// Sorgu hatası loglanır ve boş küme döner, yanıtı bozmaz.
func FavoriteArticleIDs(db *gorm.DB, userID, productID uint) map[uint]bool {
	var favorites []model.Favorite
	if err := db.Where("user_id = ? AND product_id = ?", userID, productID).
		Find(&favorites).Error; err != nil {
		log.Printf("Could not fetch favorites for user %d: %v", userID, err)
		return map[uint]bool{}
	}

	ids := make(map[uint]bool, len(favorites))
	for _, favorite := range favorites {
		ids[favorite.ArticleID] = true
	}
	return ids
}

// ProgressByArticle kullanıcının bu üründeki okuma kayıtları, makale id'sine göre.
// Sorgu hatası loglanır ve boş harita döner.
func ProgressByArticle(db *gorm.DB, userID, productID uint, articleIDs []uint) map[uint]*model.ReadingProgress {
	result := make(map[uint]*model.ReadingProgress)
	if len(articleIDs) == 0 {
		return result
	}

	var records []model.ReadingProgress
	if err := db.Where("user_id = ? AND product_id = ? AND article_id IN ?", userID, productID, articleIDs).
		Find(&records).Error; err != nil {
		log.Printf("Could not fetch reading progress for user %d: %v", userID, err)
		return result
	}

	for i := range records {
		result[records[i].ArticleID] = &records[i]
	}
	return result
}

// ResolveAuthorNames '@' içeren yazar alanlarını staff dizininden tek sorguda
// çözer. Dizin hatasında ham değer gösterilir, hata yüzeye çıkmaz.
func ResolveAuthorNames(db *gorm.DB, articles []PartitionedArticle) map[string]string {
	emailSet := make(map[string]bool)
	for _, article := range articles {
		if strings.Contains(article.Author, "@") {
			emailSet[article.Author] = true
		}
	}

	names := make(map[string]string, len(emailSet))
	if len(emailSet) == 0 {
		return names
	}

	emails := make([]string, 0, len(emailSet))
	for email := range emailSet {
		emails = append(emails, email)
	}

	var staff []model.StaffMember
	if err := db.Where("email IN ?", emails).Find(&staff).Error; err != nil {
		log.Printf("Could not resolve author names: %v", err)
		return names
	}

	for _, member := range staff {
		names[member.Email] = member.DisplayName
	}
	return names
}

// DisplayAuthor çözülen ismi, yoksa ham yazar değerini döndürür
func DisplayAuthor(author string, names map[string]string) string {
	if name, ok := names[author]; ok && name != "" {
		return name
	}
	return author
}
