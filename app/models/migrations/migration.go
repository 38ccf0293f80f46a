package migrations

import (
	"github.com/Tarekrahman5500/generator-deploy-sub000/app/models"
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Category{}, &models.SubCategory{}, &models.Group{}, &models.Field{}, &models.Product{}, &models.ProductValue{}, &models.ProductFile{})
}
