package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/autoservis/orders-api/internal/dto"
	"github.com/autoservis/orders-api/internal/handler"
	"github.com/autoservis/orders-api/internal/model"
	"github.com/autoservis/orders-api/internal/repository"
	"github.com/autoservis/orders-api/internal/router"
	"github.com/autoservis/orders-api/internal/service"
	"github.com/autoservis/orders-api/pkg/database"
)

var testDBCounter int64

// setupTestAPI wires the full router against a fresh in-memory sqlite
// database, migrated and seeded like the real store.
func setupTestAPI(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	// A uniquely named shared-cache DB so gorm's pooled connections see the
	// same data while tests stay isolated from each other
	dsn := fmt.Sprintf("file:orders_api_test_%d?mode=memory&cache=shared", atomic.AddInt64(&testDBCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, database.AutoMigrate(db))
	require.NoError(t, database.Seed(db))

	orderRepo := repository.NewOrderRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	statusRepo := repository.NewStatusRepository(db)

	orderService := service.NewOrderService(orderRepo, categoryRepo, statusRepo)
	categoryService := service.NewCategoryService(categoryRepo, orderRepo)
	statusService := service.NewStatusService(statusRepo, orderRepo)

	engine := router.NewRouter(
		handler.NewOrderHandler(orderService),
		handler.NewCategoryHandler(categoryService),
		handler.NewStatusHandler(statusService),
		handler.NewHealthHandler(db),
	).SetupRoutes()

	return engine, db
}

func performRequest(engine *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		buf, _ := json.Marshal(body)
		reader = bytes.NewReader(buf)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

// insertOrder writes an order directly to the store, bypassing the API, so
// filter tests can pin created_at.
func insertOrder(t *testing.T, db *gorm.DB, brand string, price float64, categoryID *uint, statusID uint, createdAt time.Time) model.Order {
	t.Helper()

	order := model.Order{
		Brand:             brand,
		Price:             price,
		VehicleCategoryID: categoryID,
		StatusID:          statusID,
		CreatedAt:         createdAt,
	}
	require.NoError(t, db.Create(&order).Error)
	return order
}

func uintPtr(v uint) *uint {
	return &v
}

// orderListResponse mirrors the paginated list envelope.
type orderListResponse struct {
	Items      []dto.OrderResponse `json:"items"`
	Total      int64               `json:"total"`
	Page       int                 `json:"page"`
	PerPage    int                 `json:"per_page"`
	TotalPages int                 `json:"total_pages"`
}

func decodeOrderList(t *testing.T, w *httptest.ResponseRecorder) orderListResponse {
	t.Helper()

	var resp orderListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}
