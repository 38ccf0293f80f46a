package fakers

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/Tarekrahman5500/generator-deploy-sub000/app/models"
	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// ProductFaker builds one product for the given category with a datasheet
// file attached. Attribute values are filled in by the seeder, which knows
// the category's field sheet.
func ProductFaker(category *models.Category, subCategory *models.SubCategory, serialNo int) *models.Product {
	name := fmt.Sprintf("%s-%d", strings.ToUpper(faker.Word()), 1000+rand.Intn(9000))
	productID := uuid.New().String()

	product := &models.Product{
		ID:         productID,
		CategoryID: category.ID,
		ModelName:  name,
		Slug:       slug.Make(name + "-" + uuid.NewString()[:6]),
		SerialNo:   serialNo,
		Files: []models.ProductFile{
			{
				ID:          uuid.New().String(),
				ProductID:   productID,
				Name:        name + " datasheet",
				Path:        "/files/datasheets/" + slug.Make(name) + ".pdf",
				ContentType: "application/pdf",
				Size:        int64(rand.Intn(900_000) + 100_000),
			},
		},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if subCategory != nil {
		product.SubCategoryID = &subCategory.ID
	}

	return product
}

// ValueFaker builds one attribute value row; Kind and NumValue are filled
// by the model's save hook.
func ValueFaker(product *models.Product, field *models.Field, value string) *models.ProductValue {
	return &models.ProductValue{
		ID:        uuid.New().String(),
		ProductID: product.ID,
		FieldID:   field.ID,
		Value:     value,
	}
}
