package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/expense_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker_app/internal/dto"
	"github.com/google/uuid"
)

type categoryService struct {
	BaseService
	categoryRepo portsrepo.CategoryRepositoryFacade
}

func NewCategoryService(categoryRepo portsrepo.CategoryRepositoryFacade) portssvc.CategorySvcFacade {
	return &categoryService{categoryRepo: categoryRepo}
}

var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

func (s *categoryService) CreateCategory(ctx context.Context, actor domain.Actor, req dto.CreateCategoryRequest) (*domain.Category, error) {
	now := time.Now().UTC()
	category := domain.Category{
		CategoryID:  uuid.NewString(),
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		CreatedBy:   actor.UserID,
		Timestamps:  domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}
	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		s.LogError(ctx, err, "Failed to save category")
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	s.LogInfo(ctx, "Category created", slog.String("category_id", category.CategoryID))
	return &category, nil
}

func (s *categoryService) GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get category %s: %w", categoryID, err)
	}
	return category, nil
}

func (s *categoryService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.categoryRepo.FindCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

type subcategoryService struct {
	BaseService
	subcategoryRepo portsrepo.SubcategoryRepositoryFacade
}

func NewSubcategoryService(subcategoryRepo portsrepo.SubcategoryRepositoryFacade) portssvc.SubcategorySvcFacade {
	return &subcategoryService{subcategoryRepo: subcategoryRepo}
}

var _ portssvc.SubcategorySvcFacade = (*subcategoryService)(nil)

// CreateSubcategory returns the stored record with its category populated.
func (s *subcategoryService) CreateSubcategory(ctx context.Context, actor domain.Actor, req dto.CreateSubcategoryRequest) (*domain.Subcategory, error) {
	now := time.Now().UTC()
	subcategory := domain.Subcategory{
		SubcategoryID: uuid.NewString(),
		Name:          strings.TrimSpace(req.Name),
		Description:   req.Description,
		Category:      domain.Ref{ID: req.CategoryID},
		UserID:        actor.UserID,
		Timestamps:    domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}
	if err := s.subcategoryRepo.SaveSubcategory(ctx, subcategory); err != nil {
		s.LogError(ctx, err, "Failed to save subcategory")
		return nil, fmt.Errorf("failed to create subcategory: %w", err)
	}
	created, err := s.subcategoryRepo.FindSubcategoryByID(ctx, subcategory.SubcategoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload subcategory: %w", err)
	}
	return created, nil
}

func (s *subcategoryService) GetSubcategoryByID(ctx context.Context, actor domain.Actor, subcategoryID string) (*domain.Subcategory, error) {
	subcategory, err := s.subcategoryRepo.FindSubcategoryByID(ctx, subcategoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get subcategory %s: %w", subcategoryID, err)
	}
	if err := s.Authorize(ctx, actor, subcategory.UserID, "subcategory"); err != nil {
		return nil, err
	}
	return subcategory, nil
}

func (s *subcategoryService) ListSubcategories(ctx context.Context, actor domain.Actor, categoryID string) ([]domain.Subcategory, error) {
	subcategories, err := s.subcategoryRepo.FindSubcategories(ctx, portsrepo.SubcategoryFilter{
		CategoryID: strings.TrimSpace(categoryID),
		UserID:     ownerScope(actor),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list subcategories: %w", err)
	}
	return subcategories, nil
}
