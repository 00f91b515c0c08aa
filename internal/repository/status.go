package repository

import (
	"context"

	"github.com/autoservis/orders-api/internal/model"
	"gorm.io/gorm"
)

type StatusRepository struct {
	db *gorm.DB
}

func NewStatusRepository(db *gorm.DB) *StatusRepository {
	return &StatusRepository{db: db}
}

func (r *StatusRepository) GetAll(ctx context.Context) ([]model.OrderStatus, error) {
	var statuses []model.OrderStatus
	if err := r.db.WithContext(ctx).Order("id").Find(&statuses).Error; err != nil {
		return nil, err
	}
	return statuses, nil
}

func (r *StatusRepository) GetByID(ctx context.Context, id uint) (*model.OrderStatus, error) {
	var status model.OrderStatus
	if err := r.db.WithContext(ctx).First(&status, id).Error; err != nil {
		return nil, err
	}
	return &status, nil
}

// GetDefault returns the lowest-id status, assigned to orders created
// without an explicit status. Seeding guarantees one exists.
func (r *StatusRepository) GetDefault(ctx context.Context) (*model.OrderStatus, error) {
	var status model.OrderStatus
	if err := r.db.WithContext(ctx).Order("id").First(&status).Error; err != nil {
		return nil, err
	}
	return &status, nil
}

func (r *StatusRepository) Create(ctx context.Context, status *model.OrderStatus) error {
	return r.db.WithContext(ctx).Create(status).Error
}

func (r *StatusRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.OrderStatus{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
