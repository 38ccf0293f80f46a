package services

import (
	"log"
	"sort"

	"github.com/Tarekrahman5500/generator-deploy-sub000/app/models"
	"github.com/Tarekrahman5500/generator-deploy-sub000/app/utils/sortkey"
)

// GroupedProduct is the client-facing shape of one product: its flat EAV
// rows reassembled into display-ordered attribute groups.
type GroupedProduct struct {
	ID          string           `json:"id"`
	ModelName   string           `json:"modelName"`
	Slug        string           `json:"slug"`
	SerialNo    int              `json:"serialNo"`
	Category    CategorySummary  `json:"category"`
	SubCategory *CategorySummary `json:"subCategory,omitempty"`
	Groups      []GroupView      `json:"groups"`
	Files       []FileView       `json:"files"`
}

type CategorySummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type GroupView struct {
	Name     string      `json:"name"`
	SerialNo int         `json:"serialNo"`
	Values   []ValueView `json:"values"`
}

type ValueView struct {
	ValueID   string `json:"valueId"`
	FieldID   string `json:"fieldId"`
	FieldName string `json:"fieldName"`
	SerialNo  int    `json:"serialNo"`
	Value     string `json:"value"`
	Order     bool   `json:"order"`
	Filter    bool   `json:"filter"`
}

type FileView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Path        string `json:"path"`
	ContentType string `json:"contentType,omitempty"`
	Size        int64  `json:"size"`
}

// CatalogService reshapes hydrated products for the client. It holds no
// state; every method is a pure transform over its inputs.
type CatalogService struct{}

func NewCatalogService() *CatalogService {
	return &CatalogService{}
}

// GroupFields buckets a product's value rows by attribute group, orders
// values inside a group by field serial number and the groups themselves by
// group serial number. A value row whose group belongs to another category
// is upstream corruption: it is logged and left out rather than surfaced.
func (s *CatalogService) GroupFields(product models.Product) GroupedProduct {
	buckets := make(map[string][]ValueView)
	serials := make(map[string]int)
	var order []string

	for _, value := range product.Values {
		group := value.Field.Group
		if group.CategoryID != product.CategoryID {
			log.Printf("product %s: value %s references field %s of foreign category %s, skipping",
				product.ID, value.ID, value.FieldID, group.CategoryID)
			continue
		}

		if _, seen := buckets[group.Name]; !seen {
			order = append(order, group.Name)
			serials[group.Name] = group.SerialNo
		}
		buckets[group.Name] = append(buckets[group.Name], ValueView{
			ValueID:   value.ID,
			FieldID:   value.FieldID,
			FieldName: value.Field.Name,
			SerialNo:  value.Field.SerialNo,
			Value:     value.Value,
			Order:     value.Field.Order,
			Filter:    value.Field.Filter,
		})
	}

	sort.SliceStable(order, func(i, j int) bool {
		return serials[order[i]] < serials[order[j]]
	})

	groups := make([]GroupView, 0, len(order))
	for _, name := range order {
		values := buckets[name]
		sort.SliceStable(values, func(i, j int) bool {
			return values[i].SerialNo < values[j].SerialNo
		})
		groups = append(groups, GroupView{Name: name, SerialNo: serials[name], Values: values})
	}

	files := make([]FileView, 0, len(product.Files))
	for _, f := range product.Files {
		files = append(files, FileView{
			ID:          f.ID,
			Name:        f.Name,
			Path:        f.Path,
			ContentType: f.ContentType,
			Size:        f.Size,
		})
	}

	grouped := GroupedProduct{
		ID:        product.ID,
		ModelName: product.ModelName,
		Slug:      product.Slug,
		SerialNo:  product.SerialNo,
		Category: CategorySummary{
			ID:   product.Category.ID,
			Name: product.Category.Name,
			Slug: product.Category.Slug,
		},
		Groups: groups,
		Files:  files,
	}
	if product.SubCategory != nil {
		grouped.SubCategory = &CategorySummary{
			ID:   product.SubCategory.ID,
			Name: product.SubCategory.Name,
			Slug: product.SubCategory.Slug,
		}
	}
	return grouped
}

// SortAndTransform orders products by their category's order field and
// groups each one. The order field is the order-flagged field with the
// lowest serial number found across the products' values; without one the
// input order is kept. The sort is stable, so equal keys keep the id order
// the query produced.
func (s *CatalogService) SortAndTransform(products []models.Product) []GroupedProduct {
	if fieldID, ok := pickOrderField(products); ok {
		keys := make([]sortkey.Key, len(products))
		for i, product := range products {
			keys[i] = sortkey.Parse(valueOfField(product, fieldID))
		}
		indexes := make([]int, len(products))
		for i := range indexes {
			indexes[i] = i
		}
		sort.SliceStable(indexes, func(i, j int) bool {
			return sortkey.Compare(keys[indexes[i]], keys[indexes[j]]) < 0
		})
		sorted := make([]models.Product, len(products))
		for i, idx := range indexes {
			sorted[i] = products[idx]
		}
		products = sorted
	}

	grouped := make([]GroupedProduct, 0, len(products))
	for _, product := range products {
		grouped = append(grouped, s.GroupFields(product))
	}
	return grouped
}

// pickOrderField resolves which order-flagged field drives sorting when a
// category carries more than one: lowest serial number wins, field id
// breaking exact ties.
func pickOrderField(products []models.Product) (string, bool) {
	var (
		fieldID  string
		serialNo int
		found    bool
	)
	for _, product := range products {
		for _, value := range product.Values {
			if !value.Field.Order {
				continue
			}
			f := value.Field
			if !found || f.SerialNo < serialNo || (f.SerialNo == serialNo && f.ID < fieldID) {
				fieldID, serialNo, found = f.ID, f.SerialNo, true
			}
		}
	}
	return fieldID, found
}

func valueOfField(product models.Product, fieldID string) string {
	for _, value := range product.Values {
		if value.FieldID == fieldID {
			return value.Value
		}
	}
	return ""
}
