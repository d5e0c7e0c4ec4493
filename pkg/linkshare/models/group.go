package models

import (
	"github.com/gosimple/slug"
)

// DefaultCountry is applied when a submission omits the country
const DefaultCountry = "Global"

// Group represents a listed WhatsApp group invite
type Group struct {
	ID          int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"type:text;not null" json:"description"`
	Category    string `gorm:"size:50;not null;index" json:"category"`
	Country     string `gorm:"size:50;not null;default:'Global'" json:"country"`
	Link        string `gorm:"type:text;not null" json:"link"`
	Owner       string `gorm:"size:100;not null" json:"owner"`
	Members     int    `gorm:"not null;default:0" json:"members"`
	CreatedAt   int64  `gorm:"autoCreateTime:false;not null;index" json:"createdAt"`
}

// TableName keeps the table name stable regardless of the struct name
func (Group) TableName() string {
	return "whatsapp_groups"
}

// Slug returns the URL-safe form of the group name used in detail URLs
func (g Group) Slug() string {
	return slug.Make(g.Name)
}

// NewGroup is a validated submission that has not been stored yet.
// The store assigns ID and CreatedAt.
type NewGroup struct {
	Name        string
	Description string
	Category    string
	Country     string
	Link        string
	Owner       string
	Members     int
}
