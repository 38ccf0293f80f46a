package seeders

import (
	"context"
	"fmt"
	"log"

	"github.com/Tarekrahman5500/generator-deploy-sub000/app/db/fakers"
	"github.com/Tarekrahman5500/generator-deploy-sub000/app/models"
	"github.com/Tarekrahman5500/generator-deploy-sub000/app/repositories"
	"github.com/Tarekrahman5500/generator-deploy-sub000/app/services"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// Seed builds a small demo equipment catalog: a Compressor category whose
// pressure attribute spans enough distinct numerics to facet as a range,
// and a Generator category with sub-categories and pair/range-shaped
// values. Finishes with a value back-fill so every product carries a row
// for every field of its category.
func Seed(ctx context.Context, db *gorm.DB) error {
	compressor := newCategory("Compressor", 1)
	engine := newGroup(compressor, "Engine", 1)
	powerSource := newField(engine, "PowerSource", 1, false, true)
	tankCapacity := newField(engine, "TankCapacityGal", 2, false, false)
	performance := newGroup(compressor, "Performance", 2)
	maxPressure := newField(performance, "MaxPressurePsi", 1, true, true)
	voltage := newField(performance, "VoltageRating", 2, false, true)

	generator := newCategory("Generator", 2)
	portable := newSubCategory(generator, "Portable", 1)
	standby := newSubCategory(generator, "Standby", 2)
	genEngine := newGroup(generator, "Engine", 1)
	fuelType := newField(genEngine, "FuelType", 1, false, true)
	output := newGroup(generator, "Output", 2)
	ratedWatts := newField(output, "RatedWatts", 1, true, true)
	frequency := newField(output, "FrequencyHz", 2, false, false)

	for _, category := range []*models.Category{compressor, generator} {
		if err := db.WithContext(ctx).Create(category).Error; err != nil {
			return fmt.Errorf("failed to seed category %s: %w", category.Name, err)
		}
	}

	sources := []string{"Gasoline", "Electric"}
	for i := 0; i < 8; i++ {
		product := fakers.ProductFaker(compressor, nil, i+1)
		values := []*models.ProductValue{
			fakers.ValueFaker(product, powerSource, sources[i%2]),
			fakers.ValueFaker(product, tankCapacity, fmt.Sprintf("%d", 10+i*5)),
			fakers.ValueFaker(product, maxPressure, fmt.Sprintf("%d", (i+1)*100)),
			fakers.ValueFaker(product, voltage, "120/240"),
		}
		if err := createProduct(ctx, db, product, values); err != nil {
			return err
		}
	}

	fuels := []string{"Diesel", "Propane", "Natural Gas"}
	subs := []*models.SubCategory{portable, standby}
	for i := 0; i < 6; i++ {
		product := fakers.ProductFaker(generator, subs[i%2], i+1)
		values := []*models.ProductValue{
			fakers.ValueFaker(product, fuelType, fuels[i%3]),
			fakers.ValueFaker(product, ratedWatts, formatWatts(i)),
			fakers.ValueFaker(product, frequency, "50-60"),
		}
		if err := createProduct(ctx, db, product, values); err != nil {
			return err
		}
	}

	backfill := services.NewBackfillService(
		repositories.NewCategoryRepository(db),
		repositories.NewProductRepository(db),
		repositories.NewProductValueRepository(db),
	)
	if err := backfill.BackfillAll(ctx); err != nil {
		return err
	}

	log.Println("seeded demo catalog: 2 categories, 14 products")
	return nil
}

func createProduct(ctx context.Context, db *gorm.DB, product *models.Product, values []*models.ProductValue) error {
	if err := db.WithContext(ctx).Create(product).Error; err != nil {
		return fmt.Errorf("failed to seed product %s: %w", product.ModelName, err)
	}
	for _, value := range values {
		if err := db.WithContext(ctx).Create(value).Error; err != nil {
			return fmt.Errorf("failed to seed value for product %s: %w", product.ModelName, err)
		}
	}
	return nil
}

func formatWatts(i int) string {
	// Thousand separators on purpose: the normalizer must strip them.
	return fmt.Sprintf("%d,%03d", (i+2)*2, 500)
}

func newCategory(name string, serialNo int) *models.Category {
	return &models.Category{
		ID:       uuid.New().String(),
		Name:     name,
		Slug:     slug.Make(name),
		SerialNo: serialNo,
		// Capacity reserved up front so the pointers handed out by
		// newGroup/newSubCategory survive later appends.
		Groups:        make([]models.Group, 0, 8),
		SubCategories: make([]models.SubCategory, 0, 8),
	}
}

func newSubCategory(category *models.Category, name string, serialNo int) *models.SubCategory {
	sub := models.SubCategory{
		ID:         uuid.New().String(),
		CategoryID: category.ID,
		Name:       name,
		Slug:       slug.Make(category.Name + "-" + name),
		SerialNo:   serialNo,
	}
	category.SubCategories = append(category.SubCategories, sub)
	return &category.SubCategories[len(category.SubCategories)-1]
}

func newGroup(category *models.Category, name string, serialNo int) *models.Group {
	group := models.Group{
		ID:         uuid.New().String(),
		CategoryID: category.ID,
		Name:       name,
		SerialNo:   serialNo,
		Fields:     make([]models.Field, 0, 8),
	}
	category.Groups = append(category.Groups, group)
	return &category.Groups[len(category.Groups)-1]
}

func newField(group *models.Group, name string, serialNo int, order, filter bool) *models.Field {
	field := models.Field{
		ID:       uuid.New().String(),
		GroupID:  group.ID,
		Name:     name,
		SerialNo: serialNo,
		Order:    order,
		Filter:   filter,
	}
	group.Fields = append(group.Fields, field)
	return &group.Fields[len(group.Fields)-1]
}
