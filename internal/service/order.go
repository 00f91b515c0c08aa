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

type OrderService struct {
	orders     *repository.OrderRepository
	categories *repository.CategoryRepository
	statuses   *repository.StatusRepository
}

func NewOrderService(
	orders *repository.OrderRepository,
	categories *repository.CategoryRepository,
	statuses *repository.StatusRepository,
) *OrderService {
	return &OrderService{
		orders:     orders,
		categories: categories,
		statuses:   statuses,
	}
}

// List returns one page of orders with the total count of matching rows.
func (s *OrderService) List(ctx context.Context, filter dto.OrderFilter, limit, offset int) ([]dto.OrderResponse, int64, error) {
	orders, total, err := s.orders.List(ctx, filter, limit, offset)
	if err != nil {
		return nil, 0, apperrors.WrapError(apperrors.ErrStoreUnavailable, err)
	}

	items := make([]dto.OrderResponse, 0, len(orders))
	for _, order := range orders {
		items = append(items, toOrderResponse(&order))
	}
	return items, total, nil
}

func (s *OrderService) GetByID(ctx context.Context, id uint) (*dto.OrderResponse, error) {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrderNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrStoreUnavailable, err)
	}

	response := toOrderResponse(order)
	return &response, nil
}

// Create stores a new order. A missing status falls back to the default
// seeded status; supplied references must exist.
func (s *OrderService) Create(ctx context.Context, req *dto.OrderRequest) (*dto.OrderResponse, error) {
	statusID, err := s.resolveStatus(ctx, req.StatusID)
	if err != nil {
		return nil, err
	}
	if err := s.checkCategory(ctx, req.VehicleCategoryID); err != nil {
		return nil, err
	}

	order := model.Order{
		Brand:             req.Brand,
		Price:             req.Price,
		VehicleCategoryID: req.VehicleCategoryID,
		StatusID:          statusID,
	}
	if err := s.orders.Create(ctx, &order); err != nil {
		return nil, apperrors.WrapError(apperrors.ErrStoreUnavailable, err)
	}

	response := toOrderResponse(&order)
	return &response, nil
}

// Update replaces all mutable fields of an existing order.
func (s *OrderService) Update(ctx context.Context, id uint, req *dto.OrderRequest) (*dto.OrderResponse, error) {
	statusID, err := s.resolveStatus(ctx, req.StatusID)
	if err != nil {
		return nil, err
	}
	if err := s.checkCategory(ctx, req.VehicleCategoryID); err != nil {
		return nil, err
	}

	order := model.Order{
		Brand:             req.Brand,
		Price:             req.Price,
		VehicleCategoryID: req.VehicleCategoryID,
		StatusID:          statusID,
	}
	if err := s.orders.Update(ctx, id, &order); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrderNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrStoreUnavailable, err)
	}

	return s.GetByID(ctx, id)
}

func (s *OrderService) Delete(ctx context.Context, id uint) error {
	if err := s.orders.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrOrderNotFound
		}
		return apperrors.WrapError(apperrors.ErrStoreUnavailable, err)
	}
	return nil
}

// resolveStatus validates a supplied status id or falls back to the default
// seeded status when none was given.
func (s *OrderService) resolveStatus(ctx context.Context, statusID *uint) (uint, error) {
	if statusID == nil {
		status, err := s.statuses.GetDefault(ctx)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return 0, apperrors.ErrStatusNotFound
			}
			return 0, apperrors.WrapError(apperrors.ErrStoreUnavailable, err)
		}
		return status.ID, nil
	}

	if _, err := s.statuses.GetByID(ctx, *statusID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apperrors.ErrStatusNotFound
		}
		return 0, apperrors.WrapError(apperrors.ErrStoreUnavailable, err)
	}
	return *statusID, nil
}

func (s *OrderService) checkCategory(ctx context.Context, categoryID *uint) error {
	if categoryID == nil {
		return nil
	}
	if _, err := s.categories.GetByID(ctx, *categoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCategoryNotFound
		}
		return apperrors.WrapError(apperrors.ErrStoreUnavailable, err)
	}
	return nil
}

func toOrderResponse(order *model.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:                order.ID,
		Brand:             order.Brand,
		Price:             order.Price,
		VehicleCategoryID: order.VehicleCategoryID,
		StatusID:          order.StatusID,
		CreatedAt:         order.CreatedAt,
	}
}
