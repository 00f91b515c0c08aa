package repository

import (
	"context"
	"strings"

	"github.com/autoservis/orders-api/internal/dto"
	"github.com/autoservis/orders-api/internal/model"
	"github.com/autoservis/orders-api/pkg/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// List returns one page of orders matching the filter plus the total count
// of matching rows. The count runs before limit/offset so it is accurate for
// every page. Results are ordered by id descending; ids are assigned
// monotonically, so this is reverse insertion order (newest first).
func (r *OrderRepository) List(ctx context.Context, filter dto.OrderFilter, limit, offset int) ([]model.Order, int64, error) {
	query := r.applyFilter(r.db.WithContext(ctx).Model(&model.Order{}), filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		logger.GetLogger().Error("Failed to count orders", zap.Error(err))
		return nil, 0, err
	}

	var orders []model.Order
	if err := query.Order("id DESC").Limit(limit).Offset(offset).Find(&orders).Error; err != nil {
		logger.GetLogger().Error("Failed to fetch orders",
			zap.Int("limit", limit),
			zap.Int("offset", offset),
			zap.Error(err),
		)
		return nil, 0, err
	}

	return orders, total, nil
}

// applyFilter composes the supplied predicates conjunctively. Absent
// predicates (nil pointers, empty search) are skipped.
func (r *OrderRepository) applyFilter(query *gorm.DB, filter dto.OrderFilter) *gorm.DB {
	if filter.Search != "" {
		// LOWER/LIKE instead of ILIKE so the predicate behaves the same
		// on the sqlite test store
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(brand) LIKE ?", pattern)
	}
	if filter.StatusID != nil {
		query = query.Where("status_id = ?", *filter.StatusID)
	}
	if filter.CategoryID != nil {
		query = query.Where("vehicle_category_id = ?", *filter.CategoryID)
	}
	if filter.DateFrom != nil {
		query = query.Where("created_at >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query = query.Where("created_at <= ?", *filter.DateTo)
	}
	if filter.PriceFrom != nil {
		query = query.Where("price >= ?", *filter.PriceFrom)
	}
	if filter.PriceTo != nil {
		query = query.Where("price <= ?", *filter.PriceTo)
	}
	return query
}

func (r *OrderRepository) GetByID(ctx context.Context, id uint) (*model.Order, error) {
	var order model.Order
	if err := r.db.WithContext(ctx).First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) Create(ctx context.Context, order *model.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

// Update replaces all mutable fields of an order. The id and created_at
// columns are never touched.
func (r *OrderRepository) Update(ctx context.Context, id uint, order *model.Order) error {
	result := r.db.WithContext(ctx).Model(&model.Order{}).Where("id = ?", id).Updates(map[string]interface{}{
		"brand":               order.Brand,
		"price":               order.Price,
		"vehicle_category_id": order.VehicleCategoryID,
		"status_id":           order.StatusID,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *OrderRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.Order{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountByStatus reports how many orders reference a status.
func (r *OrderRepository) CountByStatus(ctx context.Context, statusID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Order{}).Where("status_id = ?", statusID).Count(&count).Error
	return count, err
}

// CountByCategory reports how many orders reference a vehicle category.
func (r *OrderRepository) CountByCategory(ctx context.Context, categoryID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Order{}).Where("vehicle_category_id = ?", categoryID).Count(&count).Error
	return count, err
}
