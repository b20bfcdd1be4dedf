package models

import "gorm.io/gorm"

type Movie struct {
	gorm.Model

	Name     string `gorm:"not null"`
	Director string `gorm:"not null"`
	// Year is nil when the metadata provider did not report one.
	Year      *int
	PosterURL string `gorm:"not null"`
	UserID    uint   `gorm:"not null;index"`

	// Relationships
	User User `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
