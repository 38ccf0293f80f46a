package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/Tarekrahman5500/generator-deploy-sub000/app/models"
	"github.com/Tarekrahman5500/generator-deploy-sub000/app/models/migrations"
	"github.com/Tarekrahman5500/generator-deploy-sub000/app/repositories"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := migrations.AutoMigrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

type catalogFixture struct {
	category    models.Category
	subCategory models.SubCategory
	other       models.Category
	powerSource models.Field
	tank        models.Field
	maxPressure models.Field
	products    []models.Product
}

// seedCatalog builds the compressor scenario: PowerSource alternates
// between Gasoline and Electric, MaxPressurePsi runs 100..700 in steps of
// 100 and is both the filter and the order field.
func seedCatalog(t *testing.T, db *gorm.DB) catalogFixture {
	t.Helper()

	category := models.Category{ID: uuid.New().String(), Name: "Compressor", Slug: "compressor", SerialNo: 1}
	other := models.Category{ID: uuid.New().String(), Name: "Generator", Slug: "generator", SerialNo: 2}
	for _, c := range []*models.Category{&category, &other} {
		if err := db.Create(c).Error; err != nil {
			t.Fatalf("create category: %v", err)
		}
	}

	sub := models.SubCategory{ID: uuid.New().String(), CategoryID: category.ID, Name: "Stationary", Slug: "stationary", SerialNo: 1}
	if err := db.Create(&sub).Error; err != nil {
		t.Fatalf("create sub-category: %v", err)
	}

	engine := models.Group{ID: uuid.New().String(), CategoryID: category.ID, Name: "Engine", SerialNo: 1}
	performance := models.Group{ID: uuid.New().String(), CategoryID: category.ID, Name: "Performance", SerialNo: 2}
	for _, g := range []*models.Group{&engine, &performance} {
		if err := db.Create(g).Error; err != nil {
			t.Fatalf("create group: %v", err)
		}
	}

	powerSource := models.Field{ID: uuid.New().String(), GroupID: engine.ID, Name: "PowerSource", SerialNo: 1, Filter: true}
	tank := models.Field{ID: uuid.New().String(), GroupID: engine.ID, Name: "TankCapacityGal", SerialNo: 2}
	maxPressure := models.Field{ID: uuid.New().String(), GroupID: performance.ID, Name: "MaxPressurePsi", SerialNo: 1, Order: true, Filter: true}
	for _, f := range []*models.Field{&powerSource, &tank, &maxPressure} {
		if err := db.Create(f).Error; err != nil {
			t.Fatalf("create field: %v", err)
		}
	}

	sources := []string{"Gasoline", "Electric"}
	var products []models.Product
	for i := 0; i < 7; i++ {
		product := models.Product{
			ID:            uuid.New().String(),
			CategoryID:    category.ID,
			SubCategoryID: &sub.ID,
			ModelName:     fmt.Sprintf("CMP-%d", i+1),
			Slug:          fmt.Sprintf("cmp-%d", i+1),
			SerialNo:      i + 1,
		}
		if err := db.Create(&product).Error; err != nil {
			t.Fatalf("create product: %v", err)
		}
		rows := []models.ProductValue{
			{ID: uuid.New().String(), ProductID: product.ID, FieldID: powerSource.ID, Value: sources[i%2]},
			{ID: uuid.New().String(), ProductID: product.ID, FieldID: tank.ID, Value: fmt.Sprintf("%d", 10+i)},
			{ID: uuid.New().String(), ProductID: product.ID, FieldID: maxPressure.ID, Value: fmt.Sprintf("%d", (i+1)*100)},
		}
		for i := range rows {
			if err := db.Create(&rows[i]).Error; err != nil {
				t.Fatalf("create value: %v", err)
			}
		}
		products = append(products, product)
	}

	return catalogFixture{
		category:    category,
		subCategory: sub,
		other:       other,
		powerSource: powerSource,
		tank:        tank,
		maxPressure: maxPressure,
		products:    products,
	}
}

func newSearchService(db *gorm.DB) *SearchService {
	return NewSearchService(
		repositories.NewCategoryRepository(db),
		repositories.NewProductRepository(db),
		NewCatalogService(),
	)
}

func TestSearchGroupedAndOrdered(t *testing.T) {
	db := setupTestDB(t)
	fix := seedCatalog(t, db)
	svc := newSearchService(db)

	result, err := svc.Search(context.Background(), SearchRequest{CategoryID: fix.category.ID, Limit: 10})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	if result.Meta.Total != 7 {
		t.Errorf("total = %d, want 7", result.Meta.Total)
	}
	if len(result.Products) != 7 {
		t.Fatalf("got %d products, want 7", len(result.Products))
	}

	// MaxPressurePsi is the order field; lowest pressure first.
	first := result.Products[0]
	if first.ModelName != "CMP-1" {
		t.Errorf("first product = %s, want CMP-1 (pressure 100)", first.ModelName)
	}

	if len(first.Groups) != 2 || first.Groups[0].Name != "Engine" || first.Groups[1].Name != "Performance" {
		t.Fatalf("groups = %+v, want [Engine, Performance]", first.Groups)
	}
	engine := first.Groups[0]
	if engine.Values[0].FieldName != "PowerSource" || engine.Values[1].FieldName != "TankCapacityGal" {
		t.Errorf("engine values out of serial order: %+v", engine.Values)
	}
	if first.Category.Name != "Compressor" {
		t.Errorf("category summary = %+v", first.Category)
	}
	if first.SubCategory == nil || first.SubCategory.Name != "Stationary" {
		t.Errorf("sub-category summary missing: %+v", first.SubCategory)
	}
}

func TestSearchDefaultCategory(t *testing.T) {
	db := setupTestDB(t)
	fix := seedCatalog(t, db)
	svc := newSearchService(db)

	// No category in the request: the lowest serial number wins, which is
	// the compressor category, not the generator one.
	result, err := svc.Search(context.Background(), SearchRequest{Limit: 10})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if result.Meta.Total != 7 {
		t.Errorf("total = %d, want the 7 products of %s", result.Meta.Total, fix.category.Name)
	}
}

func TestSearchUnknownCategoryIsSoft(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)
	svc := newSearchService(db)

	result, err := svc.Search(context.Background(), SearchRequest{CategoryID: "stale-cached-id", Limit: 10})
	if err != nil {
		t.Fatalf("unknown category must not error: %v", err)
	}
	if result.Meta.Total != 0 || len(result.Products) != 0 {
		t.Errorf("got %d/%d, want empty result", result.Meta.Total, len(result.Products))
	}
}

func TestSearchForeignSubCategoryIsSoft(t *testing.T) {
	db := setupTestDB(t)
	fix := seedCatalog(t, db)
	svc := newSearchService(db)

	// Sub-category of another category: same soft empty answer.
	result, err := svc.Search(context.Background(), SearchRequest{
		CategoryID:    fix.other.ID,
		SubCategoryID: fix.subCategory.ID,
		Limit:         10,
	})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if result.Meta.Total != 0 {
		t.Errorf("total = %d, want 0", result.Meta.Total)
	}
}

func TestSearchMalformedFilterRejected(t *testing.T) {
	db := setupTestDB(t)
	fix := seedCatalog(t, db)
	svc := newSearchService(db)

	_, err := svc.Search(context.Background(), SearchRequest{
		CategoryID: fix.category.ID,
		Filters:    map[string]any{fix.maxPressure.ID: []any{"100", "700"}},
		Limit:      10,
	})
	if !errors.Is(err, ErrMalformedFilter) {
		t.Fatalf("err = %v, want ErrMalformedFilter", err)
	}

	_, err = svc.Search(context.Background(), SearchRequest{
		CategoryID: fix.category.ID,
		Filters:    map[string]any{fix.maxPressure.ID: map[string]any{"min": "abc", "max": 10.0}},
		Limit:      10,
	})
	if !errors.Is(err, ErrMalformedFilter) {
		t.Fatalf("err = %v, want ErrMalformedFilter for non-numeric bound", err)
	}
}

func TestSearchCombinedFilters(t *testing.T) {
	db := setupTestDB(t)
	fix := seedCatalog(t, db)
	svc := newSearchService(db)

	result, err := svc.Search(context.Background(), SearchRequest{
		CategoryID: fix.category.ID,
		Filters: map[string]any{
			fix.powerSource.ID: "Electric",
			fix.maxPressure.ID: map[string]any{"min": 100.0, "max": 400.0},
		},
		Limit: 10,
	})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	// Electric products are CMP-2/4/6 (pressures 200/400/600); the range
	// keeps 200 and 400.
	if result.Meta.Total != 2 {
		t.Fatalf("total = %d, want 2", result.Meta.Total)
	}
	if result.Products[0].ModelName != "CMP-2" || result.Products[1].ModelName != "CMP-4" {
		t.Errorf("models = %s, %s, want CMP-2, CMP-4", result.Products[0].ModelName, result.Products[1].ModelName)
	}
}

func TestSearchFilterOnUnflaggedFieldHonored(t *testing.T) {
	db := setupTestDB(t)
	fix := seedCatalog(t, db)
	svc := newSearchService(db)

	// TankCapacityGal is not filter-flagged; supplied filters on it are
	// still applied.
	result, err := svc.Search(context.Background(), SearchRequest{
		CategoryID: fix.category.ID,
		Filters:    map[string]any{fix.tank.ID: "12"},
		Limit:      10,
	})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if result.Meta.Total != 1 || result.Products[0].ModelName != "CMP-3" {
		t.Errorf("got total %d, want exactly CMP-3 (tank 12)", result.Meta.Total)
	}
}

func TestSearchModelNameSetCaseInsensitive(t *testing.T) {
	db := setupTestDB(t)
	fix := seedCatalog(t, db)
	svc := newSearchService(db)

	result, err := svc.Search(context.Background(), SearchRequest{
		CategoryID: fix.category.ID,
		Models:     []string{"cmp-1", "CMP-5"},
		Limit:      10,
	})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if result.Meta.Total != 2 {
		t.Errorf("total = %d, want 2", result.Meta.Total)
	}
}

func TestSearchPaginationMeta(t *testing.T) {
	db := setupTestDB(t)
	fix := seedCatalog(t, db)
	svc := newSearchService(db)

	result, err := svc.Search(context.Background(), SearchRequest{CategoryID: fix.category.ID, Page: 2, Limit: 3})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if result.Meta.Total != 7 || result.Meta.Page != 2 || result.Meta.Limit != 3 || result.Meta.TotalPages != 3 {
		t.Errorf("meta = %+v, want total 7, page 2, limit 3, totalPages 3", result.Meta)
	}
	if len(result.Products) != 3 {
		t.Errorf("page size = %d, want 3", len(result.Products))
	}
	// Page 2 of the pressure ordering holds CMP-4..CMP-6.
	if result.Products[0].ModelName != "CMP-4" {
		t.Errorf("page 2 starts at %s, want CMP-4", result.Products[0].ModelName)
	}
}
