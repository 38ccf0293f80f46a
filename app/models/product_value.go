package models

import (
	"time"

	"github.com/Tarekrahman5500/generator-deploy-sub000/app/utils/sortkey"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductValue is the EAV fact row: one string value per (product, field)
// pair. Kind and NumValue cache the sortkey classification of Value so
// range filters and ordering never cast raw strings in SQL; both are
// recomputed whenever the row is saved.
type ProductValue struct {
	ID        string              `gorm:"size:36;not null;uniqueIndex;primary_key"`
	ProductID string              `gorm:"size:36;not null;uniqueIndex:idx_product_field"`
	FieldID   string              `gorm:"size:36;not null;uniqueIndex:idx_product_field;index"`
	Field     Field               `gorm:"foreignKey:FieldID"`
	Value     string              `gorm:"size:255;not null;default:''"`
	Kind      string              `gorm:"size:10;not null;default:'empty'"`
	NumValue  decimal.NullDecimal `gorm:"type:decimal(20,6)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BeforeSave keeps the cached type tag in sync with Value.
func (v *ProductValue) BeforeSave(tx *gorm.DB) error {
	key := sortkey.Parse(v.Value)
	v.Kind = sortkey.KindOf(key)
	if n, ok := key.(sortkey.Num); ok {
		v.NumValue = decimal.NullDecimal{Decimal: n.Value, Valid: true}
	} else {
		v.NumValue = decimal.NullDecimal{}
	}
	return nil
}
