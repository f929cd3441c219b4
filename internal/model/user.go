package model

import (
	"strings"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null"`
	Password string `json:"-" gorm:"not null"`
	Username string `gorm:"uniqueIndex;not null"`

	// Opsiyonel profil bilgileri
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Avatar    string `json:"avatar"`

	// İlişkiler
	Subscriptions []Subscription `json:"-"`
	Favorites     []Favorite     `json:"-"`
}

func (u *User) GetFullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

func (u *User) GetPublicProfile() map[string]interface{} {
	return map[string]interface{}{
		"id":        u.ID,
		"username":  u.Username,
		"full_name": u.GetFullName(),
		"avatar":    u.Avatar,
	}
}

// StaffMember yazar/editör dizini. Makale yazarları email ile buradan çözülür.
type StaffMember struct {
	gorm.Model
	Email       string `json:"email" gorm:"uniqueIndex;not null"`
	DisplayName string `json:"display_name" gorm:"not null"`
	Role        string `json:"role" gorm:"default:'editor'"`
}
