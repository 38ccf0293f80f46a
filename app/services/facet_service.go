package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/Tarekrahman5500/generator-deploy-sub000/app/repositories"
	"github.com/Tarekrahman5500/generator-deploy-sub000/app/utils/sortkey"
	"github.com/shopspring/decimal"
)

const (
	FacetKindRange = "range"
	FacetKindList  = "list"
)

// rangeThreshold is how many distinct numeric values a field may take
// before the UI gets a min/max slider instead of a checkbox list.
const rangeThreshold = 5

// Facet describes one filterable field for the client's filter UI: either
// a numeric range or an enumerated value list.
type Facet struct {
	FieldID string           `json:"fieldId"`
	Kind    string           `json:"kind"`
	Min     *decimal.Decimal `json:"min,omitempty"`
	Max     *decimal.Decimal `json:"max,omitempty"`
	Values  []string         `json:"values,omitempty"`
}

// AnalyzeValues classifies the raw values a field takes. When every
// non-empty value parses as a plain number and more than rangeThreshold
// distinct numbers occur, the field is a range; otherwise it is a list of
// the cleaned values. A single non-numeric value forces the list form —
// there is no partial numeric treatment.
func AnalyzeValues(values []string) Facet {
	cleaned := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			continue
		}
		cleaned = append(cleaned, v)
	}

	distinct := make(map[string]decimal.Decimal)
	allNumeric := true
	for _, v := range cleaned {
		n, ok := sortkey.ParseNumber(v)
		if !ok {
			allNumeric = false
			break
		}
		distinct[n.String()] = n
	}

	if allNumeric && len(distinct) > rangeThreshold {
		var min, max decimal.Decimal
		first := true
		for _, n := range distinct {
			if first {
				min, max, first = n, n, false
				continue
			}
			if n.LessThan(min) {
				min = n
			}
			if n.GreaterThan(max) {
				max = n
			}
		}
		return Facet{Kind: FacetKindRange, Min: &min, Max: &max}
	}

	return Facet{Kind: FacetKindList, Values: cleaned}
}

// FacetService computes live facet metadata per category. Nothing is
// cached: admins edit fields and values at will, and the next call must
// reflect it.
type FacetService struct {
	categoryRepo repositories.CategoryRepositoryImpl
	valueRepo    repositories.ProductValueRepositoryImpl
}

func NewFacetService(categoryRepo repositories.CategoryRepositoryImpl, valueRepo repositories.ProductValueRepositoryImpl) *FacetService {
	return &FacetService{categoryRepo: categoryRepo, valueRepo: valueRepo}
}

// Facets maps each requested category to its filter-flagged fields'
// facets, keyed by field name. An empty id list means every category.
// Unknown category ids are skipped, matching the soft not-found policy of
// search.
func (s *FacetService) Facets(ctx context.Context, categoryIDs []string) (map[string]map[string]Facet, error) {
	if len(categoryIDs) == 0 {
		categories, err := s.categoryRepo.GetAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list categories: %w", err)
		}
		for _, c := range categories {
			categoryIDs = append(categoryIDs, c.ID)
		}
	}

	result := make(map[string]map[string]Facet, len(categoryIDs))
	for _, categoryID := range categoryIDs {
		category, err := s.categoryRepo.GetByID(ctx, categoryID)
		if err != nil {
			return nil, fmt.Errorf("failed to load category %s: %w", categoryID, err)
		}
		if category == nil {
			continue
		}

		groups, err := s.categoryRepo.GetGroupsWithFields(ctx, category.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load fields of category %s: %w", category.ID, err)
		}

		facets := make(map[string]Facet)
		for _, group := range groups {
			for _, field := range group.Fields {
				if !field.Filter {
					continue
				}
				values, err := s.valueRepo.GetDistinctValues(ctx, field.ID)
				if err != nil {
					return nil, fmt.Errorf("failed to aggregate values of field %s: %w", field.ID, err)
				}
				facet := AnalyzeValues(values)
				facet.FieldID = field.ID
				facets[field.Name] = facet
			}
		}
		result[category.ID] = facets
	}
	return result, nil
}
