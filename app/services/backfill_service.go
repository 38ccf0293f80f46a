package services

import (
	"context"
	"fmt"
	"log"

	"github.com/Tarekrahman5500/generator-deploy-sub000/app/repositories"
)

// BackfillService guarantees every product exposes a value row for every
// field of its category, so reads never deal with missing pairs.
type BackfillService struct {
	categoryRepo repositories.CategoryRepositoryImpl
	productRepo  repositories.ProductRepositoryImpl
	valueRepo    repositories.ProductValueRepositoryImpl
}

func NewBackfillService(categoryRepo repositories.CategoryRepositoryImpl, productRepo repositories.ProductRepositoryImpl, valueRepo repositories.ProductValueRepositoryImpl) *BackfillService {
	return &BackfillService{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		valueRepo:    valueRepo,
	}
}

// BackfillCategory inserts empty value rows for every missing
// (product, field) pair of one category. Safe to run repeatedly and
// concurrently; existing values are never overwritten.
func (s *BackfillService) BackfillCategory(ctx context.Context, categoryID string) error {
	fieldIDs, err := s.categoryRepo.GetFieldIDs(ctx, categoryID)
	if err != nil {
		return fmt.Errorf("failed to list fields of category %s: %w", categoryID, err)
	}
	productIDs, err := s.productRepo.GetIDsByCategory(ctx, categoryID)
	if err != nil {
		return fmt.Errorf("failed to list products of category %s: %w", categoryID, err)
	}
	if err := s.valueRepo.Backfill(ctx, productIDs, fieldIDs); err != nil {
		return fmt.Errorf("failed to backfill category %s: %w", categoryID, err)
	}
	return nil
}

// BackfillAll runs BackfillCategory over every category.
func (s *BackfillService) BackfillAll(ctx context.Context) error {
	categories, err := s.categoryRepo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to list categories: %w", err)
	}
	for _, category := range categories {
		if err := s.BackfillCategory(ctx, category.ID); err != nil {
			return err
		}
		log.Printf("backfilled category %s (%s)", category.Name, category.ID)
	}
	return nil
}
