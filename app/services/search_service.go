package services

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/Tarekrahman5500/generator-deploy-sub000/app/models"
	"github.com/Tarekrahman5500/generator-deploy-sub000/app/repositories"
	"github.com/shopspring/decimal"
)

// ErrMalformedFilter flags a filter value that is neither a scalar nor a
// well-formed {min,max} object. Handlers turn it into a client error.
var ErrMalformedFilter = errors.New("malformed filter value")

const (
	DefaultPageSize = 9
	MaxPageSize     = 100
)

// SearchRequest is the decoded search call. Filters maps field ids to
// either a scalar (exact match) or a {min,max} object (numeric range).
type SearchRequest struct {
	CategoryID    string         `json:"categoryId"`
	SubCategoryID string         `json:"subCategoryId"`
	Models        []string       `json:"models"`
	Filters       map[string]any `json:"filters"`
	Page          int            `json:"page" validate:"gte=0"`
	Limit         int            `json:"limit" validate:"gte=0,lte=100"`
}

type Meta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

type SearchResult struct {
	Products []GroupedProduct `json:"products"`
	Meta     Meta             `json:"meta"`
}

type SearchService struct {
	categoryRepo repositories.CategoryRepositoryImpl
	productRepo  repositories.ProductRepositoryImpl
	catalog      *CatalogService
}

func NewSearchService(categoryRepo repositories.CategoryRepositoryImpl, productRepo repositories.ProductRepositoryImpl, catalog *CatalogService) *SearchService {
	return &SearchService{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		catalog:      catalog,
	}
}

// Search runs one filtered, paginated catalog query. A stale or unknown
// category/sub-category id yields an empty page rather than an error so
// clients with cached ids never see a failure.
func (s *SearchService) Search(ctx context.Context, req SearchRequest) (*SearchResult, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	limit := req.Limit
	if limit < 1 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	category, err := s.resolveCategory(ctx, req.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return emptyResult(page, limit), nil
	}

	if req.SubCategoryID != "" {
		sub, err := s.categoryRepo.GetSubCategoryByID(ctx, req.SubCategoryID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve sub-category: %w", err)
		}
		if sub == nil || sub.CategoryID != category.ID {
			return emptyResult(page, limit), nil
		}
	}

	filters, err := decodeFilters(req.Filters)
	if err != nil {
		return nil, err
	}

	orderFieldID, err := s.resolveOrderField(ctx, category.ID)
	if err != nil {
		return nil, err
	}

	query := repositories.SearchQuery{
		CategoryID:    category.ID,
		SubCategoryID: req.SubCategoryID,
		ModelNames:    req.Models,
		Filters:       filters,
		OrderFieldID:  orderFieldID,
		Limit:         limit,
		Offset:        (page - 1) * limit,
	}

	ids, total, err := s.productRepo.SearchIDs(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve product ids: %w", err)
	}

	products, err := s.productRepo.HydrateByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to hydrate products: %w", err)
	}

	return &SearchResult{
		Products: s.catalog.SortAndTransform(products),
		Meta: Meta{
			Total:      total,
			Page:       page,
			Limit:      limit,
			TotalPages: int((total + int64(limit) - 1) / int64(limit)),
		},
	}, nil
}

func (s *SearchService) resolveCategory(ctx context.Context, id string) (*models.Category, error) {
	if id == "" {
		category, err := s.categoryRepo.GetDefault(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve default category: %w", err)
		}
		return category, nil
	}
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve category: %w", err)
	}
	return category, nil
}

// resolveOrderField picks the category's designated order field. Admin
// tooling is supposed to flag at most one field per category; when several
// slip through, the lowest serial number wins (field id breaking ties) so
// the result never depends on row order.
func (s *SearchService) resolveOrderField(ctx context.Context, categoryID string) (string, error) {
	groups, err := s.categoryRepo.GetGroupsWithFields(ctx, categoryID)
	if err != nil {
		return "", fmt.Errorf("failed to resolve order field: %w", err)
	}

	var (
		fieldID  string
		serialNo int
		found    bool
	)
	for _, group := range groups {
		for _, field := range group.Fields {
			if !field.Order {
				continue
			}
			if !found || field.SerialNo < serialNo || (field.SerialNo == serialNo && field.ID < fieldID) {
				fieldID, serialNo, found = field.ID, field.SerialNo, true
			}
		}
	}
	if !found {
		return "", nil
	}
	return fieldID, nil
}

func emptyResult(page, limit int) *SearchResult {
	return &SearchResult{
		Products: []GroupedProduct{},
		Meta:     Meta{Total: 0, Page: page, Limit: limit, TotalPages: 0},
	}
}

// decodeFilters validates the client filter map before any SQL is built.
// Scalars (string, number, bool) become exact matches; objects must carry
// numeric min and max. Anything else is rejected, not dropped.
func decodeFilters(raw map[string]any) ([]repositories.FieldFilter, error) {
	fieldIDs := make([]string, 0, len(raw))
	for fieldID := range raw {
		fieldIDs = append(fieldIDs, fieldID)
	}
	sort.Strings(fieldIDs)

	filters := make([]repositories.FieldFilter, 0, len(raw))
	for _, fieldID := range fieldIDs {
		value := raw[fieldID]
		switch v := value.(type) {
		case string:
			exact := v
			filters = append(filters, repositories.FieldFilter{FieldID: fieldID, Exact: &exact})
		case float64:
			exact := decimal.NewFromFloat(v).String()
			filters = append(filters, repositories.FieldFilter{FieldID: fieldID, Exact: &exact})
		case bool:
			exact := fmt.Sprintf("%t", v)
			filters = append(filters, repositories.FieldFilter{FieldID: fieldID, Exact: &exact})
		case map[string]any:
			min, okMin := decodeBound(v["min"])
			max, okMax := decodeBound(v["max"])
			if !okMin || !okMax {
				return nil, fmt.Errorf("%w: field %s needs numeric min and max", ErrMalformedFilter, fieldID)
			}
			filters = append(filters, repositories.FieldFilter{FieldID: fieldID, Min: &min, Max: &max})
		default:
			return nil, fmt.Errorf("%w: field %s", ErrMalformedFilter, fieldID)
		}
	}
	return filters, nil
}

func decodeBound(value any) (decimal.Decimal, bool) {
	switch v := value.(type) {
	case float64:
		return decimal.NewFromFloat(v), true
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return decimal.Decimal{}, false
		}
		return d, true
	default:
		return decimal.Decimal{}, false
	}
}
