package models

import "gorm.io/gorm"

type User struct {
	gorm.Model

	Name string `gorm:"not null"`

	// Relationships
	Movies []Movie `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
