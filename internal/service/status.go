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

type StatusService struct {
	statuses *repository.StatusRepository
	orders   *repository.OrderRepository
}

func NewStatusService(statuses *repository.StatusRepository, orders *repository.OrderRepository) *StatusService {
	return &StatusService{statuses: statuses, orders: orders}
}

func (s *StatusService) GetAll(ctx context.Context) ([]dto.StatusResponse, error) {
	statuses, err := s.statuses.GetAll(ctx)
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrStoreUnavailable, err)
	}

	responses := make([]dto.StatusResponse, 0, len(statuses))
	for _, status := range statuses {
		responses = append(responses, dto.StatusResponse{ID: status.ID, Status: status.Status})
	}
	return responses, nil
}

func (s *StatusService) Create(ctx context.Context, req *dto.StatusRequest) (*dto.StatusResponse, error) {
	status := model.OrderStatus{Status: req.Status}
	if err := s.statuses.Create(ctx, &status); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrStatusExists
		}
		return nil, apperrors.WrapError(apperrors.ErrStoreUnavailable, err)
	}
	return &dto.StatusResponse{ID: status.ID, Status: status.Status}, nil
}

// Delete removes a status unless an order still references it. Statuses get
// the same in-use protection as categories.
func (s *StatusService) Delete(ctx context.Context, id uint) error {
	if _, err := s.statuses.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrStatusNotFound
		}
		return apperrors.WrapError(apperrors.ErrStoreUnavailable, err)
	}

	inUse, err := s.orders.CountByStatus(ctx, id)
	if err != nil {
		return apperrors.WrapError(apperrors.ErrStoreUnavailable, err)
	}
	if inUse > 0 {
		return apperrors.ErrStatusInUse
	}

	if err := s.statuses.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrStatusNotFound
		}
		return apperrors.WrapError(apperrors.ErrStoreUnavailable, err)
	}
	return nil
}
