package repositories

import (
	"context"
	"errors"

	"github.com/Tarekrahman5500/generator-deploy-sub000/app/models"
	"gorm.io/gorm"
)

type CategoryRepositoryImpl interface {
	GetByID(ctx context.Context, id string) (*models.Category, error)
	GetAll(ctx context.Context) ([]models.Category, error)
	GetDefault(ctx context.Context) (*models.Category, error)
	GetSubCategoryByID(ctx context.Context, id string) (*models.SubCategory, error)
	GetGroupsWithFields(ctx context.Context, categoryID string) ([]models.Group, error)
	GetFieldIDs(ctx context.Context, categoryID string) ([]string, error)
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepositoryImpl {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) GetByID(ctx context.Context, id string) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).Preload("SubCategories").First(&category, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) GetAll(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.WithContext(ctx).
		Preload("SubCategories").
		Order("serial_no ASC, name ASC").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// GetDefault returns the category with the lowest serial number, used when
// a search request names no category.
func (r *categoryRepository) GetDefault(ctx context.Context) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).Order("serial_no ASC, name ASC").First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) GetSubCategoryByID(ctx context.Context, id string) (*models.SubCategory, error) {
	var sub models.SubCategory
	err := r.db.WithContext(ctx).First(&sub, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

func (r *categoryRepository) GetGroupsWithFields(ctx context.Context, categoryID string) ([]models.Group, error) {
	var groups []models.Group
	err := r.db.WithContext(ctx).
		Preload("Fields", func(db *gorm.DB) *gorm.DB {
			return db.Order("fields.serial_no ASC")
		}).
		Where("category_id = ?", categoryID).
		Order("serial_no ASC, name ASC").
		Find(&groups).Error
	if err != nil {
		return nil, err
	}
	return groups, nil
}

// GetFieldIDs lists every field reachable through the category's groups,
// the field set the value back-fill has to cover.
func (r *categoryRepository) GetFieldIDs(ctx context.Context, categoryID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&models.Field{}).
		Joins("JOIN field_groups ON field_groups.id = fields.group_id AND field_groups.deleted_at IS NULL").
		Where("field_groups.category_id = ?", categoryID).
		Pluck("fields.id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
