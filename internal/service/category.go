package service

import (
	"context"
	"errors"

	"github.com/autoservis/orders-api/internal/dto"
	apperrors "github.com/autoservis/orders-api/internal/errors"
	"github.com/autoservis/orders-api/internal/model"
	"github.com/autoservis/orders-api/internal/repository"
	"gorm.io/gorm"
)

type CategoryService struct {
	categories *repository.CategoryRepository
	orders     *repository.OrderRepository
}

func NewCategoryService(categories *repository.CategoryRepository, orders *repository.OrderRepository) *CategoryService {
	return &CategoryService{categories: categories, orders: orders}
}

func (s *CategoryService) GetAll(ctx context.Context) ([]dto.CategoryResponse, error) {
	categories, err := s.categories.GetAll(ctx)
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrStoreUnavailable, err)
	}

	responses := make([]dto.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		responses = append(responses, dto.CategoryResponse{ID: category.ID, Name: category.Name})
	}
	return responses, nil
}

func (s *CategoryService) GetByID(ctx context.Context, id uint) (*dto.CategoryResponse, error) {
	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrStoreUnavailable, err)
	}
	return &dto.CategoryResponse{ID: category.ID, Name: category.Name}, nil
}

// Create inserts a new category. The unique index decides races, so a
// concurrent duplicate loses with a Conflict rather than a generic failure.
func (s *CategoryService) Create(ctx context.Context, req *dto.CategoryRequest) (*dto.CategoryResponse, error) {
	category := model.VehicleCategory{Name: req.Name}
	if err := s.categories.Create(ctx, &category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrCategoryExists
		}
		return nil, apperrors.WrapError(apperrors.ErrStoreUnavailable, err)
	}
	return &dto.CategoryResponse{ID: category.ID, Name: category.Name}, nil
}

func (s *CategoryService) Update(ctx context.Context, id uint, req *dto.CategoryRequest) (*dto.CategoryResponse, error) {
	category := model.VehicleCategory{Name: req.Name}
	if err := s.categories.Update(ctx, id, &category); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, apperrors.ErrCategoryNotFound
		case errors.Is(err, gorm.ErrDuplicatedKey):
			return nil, apperrors.ErrCategoryExists
		default:
			return nil, apperrors.WrapError(apperrors.ErrStoreUnavailable, err)
		}
	}
	return s.GetByID(ctx, id)
}

// Delete removes a category unless it is still referenced by an order. The
// explicit check yields an actionable Conflict instead of a raw FK error.
func (s *CategoryService) Delete(ctx context.Context, id uint) error {
	if _, err := s.categories.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCategoryNotFound
		}
		return apperrors.WrapError(apperrors.ErrStoreUnavailable, err)
	}

	inUse, err := s.orders.CountByCategory(ctx, id)
	if err != nil {
		return apperrors.WrapError(apperrors.ErrStoreUnavailable, err)
	}
	if inUse > 0 {
		return apperrors.ErrCategoryInUse
	}

	if err := s.categories.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCategoryNotFound
		}
		return apperrors.WrapError(apperrors.ErrStoreUnavailable, err)
	}
	return nil
}
