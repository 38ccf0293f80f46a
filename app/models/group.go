package models

import (
	"time"

	"gorm.io/gorm"
)

// Group is an admin-defined section of a category's attribute sheet
// (e.g. "Engine", "Dimensions"). SerialNo drives display order within
// the category.
type Group struct {
	ID         string `gorm:"size:36;not null;uniqueIndex;primary_key"`
	CategoryID string `gorm:"size:36;not null;index"`
	Name       string `gorm:"size:100;not null"`
	SerialNo   int    `gorm:"not null;default:0"`
	Fields     []Field
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

// TableName avoids the GROUPS reserved word in MySQL 8.
func (Group) TableName() string {
	return "field_groups"
}

// Field is a single admin-defined attribute. Order marks the field whose
// value drives default product ordering for its category; Filter marks it
// as facet/filter material.
type Field struct {
	ID        string `gorm:"size:36;not null;uniqueIndex;primary_key"`
	GroupID   string `gorm:"size:36;not null;index"`
	Group     Group  `gorm:"foreignKey:GroupID"`
	Name      string `gorm:"size:100;not null"`
	SerialNo  int    `gorm:"not null;default:0"`
	Order     bool   `gorm:"column:is_order;not null;default:false"`
	Filter    bool   `gorm:"column:is_filter;not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
