package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/Tarekrahman5500/generator-deploy-sub000/app/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// FieldFilter is one entry of a client filter map, already validated by the
// service layer: either Exact is set (string equality) or Min and Max are
// set (inclusive numeric range).
type FieldFilter struct {
	FieldID string
	Exact   *string
	Min     *decimal.Decimal
	Max     *decimal.Decimal
}

// SearchQuery describes one id-resolution pass over the value store.
type SearchQuery struct {
	CategoryID    string
	SubCategoryID string
	ModelNames    []string
	Filters       []FieldFilter
	OrderFieldID  string
	Limit         int
	Offset        int
}

type ProductRepositoryImpl interface {
	SearchIDs(ctx context.Context, q SearchQuery) ([]string, int64, error)
	HydrateByIDs(ctx context.Context, ids []string) ([]models.Product, error)
	GetIDsByCategory(ctx context.Context, categoryID string) ([]string, error)
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepositoryImpl {
	return &productRepository{db}
}

// baseQuery builds the shared predicate: category scope, optional
// sub-category, optional model-name set, plus one independently aliased
// existence join per filter so filters on different fields AND together
// without touching each other's rows. Aliases come from the loop index;
// everything client-supplied is a bind parameter.
func (p *productRepository) baseQuery(ctx context.Context, q SearchQuery) *gorm.DB {
	tx := p.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("products.category_id = ?", q.CategoryID)

	if q.SubCategoryID != "" {
		tx = tx.Where("products.sub_category_id = ?", q.SubCategoryID)
	}

	if len(q.ModelNames) > 0 {
		lowered := make([]string, len(q.ModelNames))
		for i, name := range q.ModelNames {
			lowered[i] = strings.ToLower(name)
		}
		tx = tx.Where("LOWER(products.model_name) IN ?", lowered)
	}

	for i, f := range q.Filters {
		alias := fmt.Sprintf("pv%d", i)
		if f.Exact != nil {
			tx = tx.Joins(
				fmt.Sprintf("JOIN product_values %[1]s ON %[1]s.product_id = products.id AND %[1]s.field_id = ? AND %[1]s.value = ?", alias),
				f.FieldID, *f.Exact,
			)
		} else {
			// Only rows cached as plain numerics can match a range; a
			// non-numeric value is "no match", never a query error.
			tx = tx.Joins(
				fmt.Sprintf("JOIN product_values %[1]s ON %[1]s.product_id = products.id AND %[1]s.field_id = ? AND %[1]s.kind = 'num' AND %[1]s.num_value BETWEEN ? AND ?", alias),
				f.FieldID, f.Min, f.Max,
			)
		}
	}

	return tx
}

// SearchIDs resolves the paginated page of matching product ids plus the
// unpaginated distinct total. Ordering: the order field's cached numeric
// value ascending with missing/non-numeric values last, then product id as
// the stable tiebreak; without an order field, product id alone.
func (p *productRepository) SearchIDs(ctx context.Context, q SearchQuery) ([]string, int64, error) {
	var total int64
	if err := p.baseQuery(ctx, q).Distinct("products.id").Count(&total).Error; err != nil {
		return nil, 0, err
	}

	tx := p.baseQuery(ctx, q).Group("products.id")
	if q.OrderFieldID != "" {
		tx = tx.
			Joins("LEFT JOIN product_values ov ON ov.product_id = products.id AND ov.field_id = ?", q.OrderFieldID).
			Order("CASE WHEN MIN(ov.num_value) IS NULL THEN 1 ELSE 0 END").
			Order("MIN(ov.num_value)").
			Order("products.id ASC")
	} else {
		tx = tx.Order("products.id ASC")
	}

	var ids []string
	err := tx.Limit(q.Limit).Offset(q.Offset).Pluck("products.id", &ids).Error
	if err != nil {
		return nil, 0, err
	}
	return ids, total, nil
}

// HydrateByIDs loads full products for a page of ids, preserving the order
// of the id list.
func (p *productRepository) HydrateByIDs(ctx context.Context, ids []string) ([]models.Product, error) {
	if len(ids) == 0 {
		return []models.Product{}, nil
	}

	var products []models.Product
	err := p.db.WithContext(ctx).
		Preload("Values.Field.Group").
		Preload("Files").
		Preload("Category").
		Preload("SubCategory").
		Where("id IN ?", ids).
		Find(&products).Error
	if err != nil {
		return nil, err
	}

	byID := make(map[string]models.Product, len(products))
	for _, product := range products {
		byID[product.ID] = product
	}

	ordered := make([]models.Product, 0, len(ids))
	for _, id := range ids {
		if product, ok := byID[id]; ok {
			ordered = append(ordered, product)
		}
	}
	return ordered, nil
}

func (p *productRepository) GetIDsByCategory(ctx context.Context, categoryID string) ([]string, error) {
	var ids []string
	err := p.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("category_id = ?", categoryID).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
