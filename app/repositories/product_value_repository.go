package repositories

import (
	"context"

	"github.com/Tarekrahman5500/generator-deploy-sub000/app/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductValueRepositoryImpl interface {
	GetDistinctValues(ctx context.Context, fieldID string) ([]string, error)
	Backfill(ctx context.Context, productIDs, fieldIDs []string) error
}

type productValueRepository struct {
	db *gorm.DB
}

func NewProductValueRepository(db *gorm.DB) ProductValueRepositoryImpl {
	return &productValueRepository{db: db}
}

// GetDistinctValues lists the distinct raw values a field takes across
// live (non-deleted) products. This feeds the facet aggregator and is
// computed per call so admin edits show up immediately.
func (r *productValueRepository) GetDistinctValues(ctx context.Context, fieldID string) ([]string, error) {
	var values []string
	err := r.db.WithContext(ctx).
		Model(&models.ProductValue{}).
		Joins("JOIN products ON products.id = product_values.product_id AND products.deleted_at IS NULL").
		Where("product_values.field_id = ?", fieldID).
		Distinct().
		Order("product_values.value ASC").
		Pluck("product_values.value", &values).Error
	if err != nil {
		return nil, err
	}
	return values, nil
}

// Backfill inserts an empty-string row for every missing (product, field)
// pair. Existing rows are never touched: the insert rides the
// (product_id, field_id) unique index with a do-nothing conflict clause,
// so concurrent back-fills over overlapping sets stay race-free.
func (r *productValueRepository) Backfill(ctx context.Context, productIDs, fieldIDs []string) error {
	if len(productIDs) == 0 || len(fieldIDs) == 0 {
		return nil
	}

	rows := make([]models.ProductValue, 0, len(productIDs)*len(fieldIDs))
	for _, productID := range productIDs {
		for _, fieldID := range fieldIDs {
			rows = append(rows, models.ProductValue{
				ID:        uuid.New().String(),
				ProductID: productID,
				FieldID:   fieldID,
				Value:     "",
			})
		}
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "product_id"}, {Name: "field_id"}},
			DoNothing: true,
		}).
		CreateInBatches(&rows, 500).Error
}
