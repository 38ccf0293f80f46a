package models

import (
	"time"

	"gorm.io/gorm"
)

type Category struct {
	ID            string `gorm:"size:36;not null;uniqueIndex;primary_key"`
	Name          string `gorm:"size:100;not null;uniqueIndex"`
	Slug          string `gorm:"size:100;not null;uniqueIndex"`
	SerialNo      int    `gorm:"not null;default:0;index"`
	Groups        []Group
	SubCategories []SubCategory
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

type SubCategory struct {
	ID         string `gorm:"size:36;not null;uniqueIndex;primary_key"`
	CategoryID string `gorm:"size:36;not null;index"`
	Name       string `gorm:"size:100;not null"`
	Slug       string `gorm:"size:100;not null;uniqueIndex"`
	SerialNo   int    `gorm:"not null;default:0"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}
