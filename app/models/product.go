package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID            string `gorm:"size:36;not null;uniqueIndex;primary_key"`
	CategoryID    string `gorm:"size:36;not null;index"`
	Category      Category
	SubCategoryID *string      `gorm:"size:36;index"`
	SubCategory   *SubCategory `gorm:"foreignKey:SubCategoryID"`
	ModelName     string       `gorm:"size:255;not null;index"`
	Slug          string       `gorm:"size:255;not null;uniqueIndex"`
	SerialNo      int          `gorm:"not null;default:0"`
	Values        []ProductValue
	Files         []ProductFile
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

type ProductFile struct {
	ID          string `gorm:"size:36;not null;uniqueIndex;primary_key"`
	ProductID   string `gorm:"size:36;not null;index"`
	Name        string `gorm:"size:255;not null"`
	Path        string `gorm:"size:255;not null"`
	ContentType string `gorm:"size:100"`
	Size        int64  `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
