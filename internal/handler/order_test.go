package handler_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autoservis/orders-api/internal/dto"
	"github.com/autoservis/orders-api/internal/model"
)

func TestCreateOrder(t *testing.T) {
	engine, _ := setupTestAPI(t)

	w := performRequest(engine, http.MethodPost, "/api/orders", map[string]any{
		"brand": "Mercedes",
		"price": 999.99,
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var resp dto.OrderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotZero(t, resp.ID)
	assert.Equal(t, "Mercedes", resp.Brand)
	assert.Equal(t, 999.99, resp.Price)
	// Status omitted in the payload falls back to the default seeded status
	assert.Equal(t, uint(1), resp.StatusID)
	assert.False(t, resp.CreatedAt.IsZero())
}

func TestCreateOrderValidation(t *testing.T) {
	testCases := []struct {
		name string
		body map[string]any
	}{
		{
			name: "negative price",
			body: map[string]any{"brand": "Mercedes", "price": -100},
		},
		{
			name: "zero price",
			body: map[string]any{"brand": "Mercedes", "price": 0},
		},
		{
			name: "missing brand",
			body: map[string]any{"price": 10.5},
		},
		{
			name: "wrong-typed price",
			body: map[string]any{"brand": "Mercedes", "price": "expensive"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			engine, db := setupTestAPI(t)

			w := performRequest(engine, http.MethodPost, "/api/orders", tc.body)

			assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

			// Rejected payloads never reach the store
			var count int64
			require.NoError(t, db.Model(&model.Order{}).Count(&count).Error)
			assert.Zero(t, count)
		})
	}
}

func TestCreateOrderUnknownReferences(t *testing.T) {
	engine, _ := setupTestAPI(t)

	w := performRequest(engine, http.MethodPost, "/api/orders", map[string]any{
		"brand":     "Mercedes",
		"price":     100.0,
		"status_id": 999,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = performRequest(engine, http.MethodPost, "/api/orders", map[string]any{
		"brand":               "Mercedes",
		"price":               100.0,
		"vehicle_category_id": 999,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetOrder(t *testing.T) {
	engine, db := setupTestAPI(t)
	order := insertOrder(t, db, "Skoda", 250, uintPtr(1), 2, time.Now().UTC())

	w := performRequest(engine, http.MethodGet, fmt.Sprintf("/api/orders/%d", order.ID), nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.OrderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, order.ID, resp.ID)
	assert.Equal(t, "Skoda", resp.Brand)
	assert.Equal(t, uint(2), resp.StatusID)
}

func TestGetOrderNotFound(t *testing.T) {
	engine, _ := setupTestAPI(t)

	w := performRequest(engine, http.MethodGet, "/api/orders/12345", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateOrderReplacesMutableFields(t *testing.T) {
	engine, db := setupTestAPI(t)
	order := insertOrder(t, db, "Skoda", 250, uintPtr(1), 1, time.Now().UTC())

	w := performRequest(engine, http.MethodPut, fmt.Sprintf("/api/orders/%d", order.ID), map[string]any{
		"brand":               "Audi",
		"price":               500.5,
		"vehicle_category_id": 2,
		"status_id":           3,
	})

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.OrderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, order.ID, resp.ID)
	assert.Equal(t, "Audi", resp.Brand)
	assert.Equal(t, 500.5, resp.Price)
	require.NotNil(t, resp.VehicleCategoryID)
	assert.Equal(t, uint(2), *resp.VehicleCategoryID)
	assert.Equal(t, uint(3), resp.StatusID)
	// created_at is immutable
	assert.WithinDuration(t, order.CreatedAt, resp.CreatedAt, time.Second)
}

func TestUpdateOrderNotFound(t *testing.T) {
	engine, _ := setupTestAPI(t)

	w := performRequest(engine, http.MethodPut, "/api/orders/9999", map[string]any{
		"brand": "Audi",
		"price": 100.0,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteOrder(t *testing.T) {
	engine, db := setupTestAPI(t)
	order := insertOrder(t, db, "Skoda", 250, nil, 1, time.Now().UTC())

	w := performRequest(engine, http.MethodDelete, fmt.Sprintf("/api/orders/%d", order.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "message")

	w = performRequest(engine, http.MethodGet, fmt.Sprintf("/api/orders/%d", order.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = performRequest(engine, http.MethodDelete, fmt.Sprintf("/api/orders/%d", order.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListOrdersPagination(t *testing.T) {
	engine, db := setupTestAPI(t)
	for i := 0; i < 25; i++ {
		insertOrder(t, db, fmt.Sprintf("Brand %d", i), float64(i+1), nil, 1, time.Now().UTC())
	}

	// Iterating all pages accounts for every matching row exactly once
	seen := 0
	for page := 1; page <= 3; page++ {
		w := performRequest(engine, http.MethodGet, fmt.Sprintf("/api/orders?page=%d&per_page=10", page), nil)
		require.Equal(t, http.StatusOK, w.Code)

		resp := decodeOrderList(t, w)
		assert.Equal(t, int64(25), resp.Total)
		assert.Equal(t, page, resp.Page)
		assert.Equal(t, 10, resp.PerPage)
		assert.Equal(t, 3, resp.TotalPages)
		seen += len(resp.Items)
	}
	assert.Equal(t, 25, seen)

	// A page past the end is empty but keeps the correct totals
	w := performRequest(engine, http.MethodGet, "/api/orders?page=4&per_page=10", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeOrderList(t, w)
	assert.Empty(t, resp.Items)
	assert.Equal(t, int64(25), resp.Total)
	assert.Equal(t, 3, resp.TotalPages)
}

func TestListOrdersPerPageClamped(t *testing.T) {
	engine, db := setupTestAPI(t)
	insertOrder(t, db, "Skoda", 100, nil, 1, time.Now().UTC())

	w := performRequest(engine, http.MethodGet, "/api/orders?per_page=500", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeOrderList(t, w)
	assert.Equal(t, 100, resp.PerPage)

	w = performRequest(engine, http.MethodGet, "/api/orders?per_page=0&page=0", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp = decodeOrderList(t, w)
	assert.Equal(t, 1, resp.PerPage)
	assert.Equal(t, 1, resp.Page)
}

func TestListOrdersEmptyStore(t *testing.T) {
	engine, _ := setupTestAPI(t)

	w := performRequest(engine, http.MethodGet, "/api/orders", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeOrderList(t, w)
	assert.Empty(t, resp.Items)
	assert.Zero(t, resp.Total)
	assert.Zero(t, resp.TotalPages)
}

func TestListOrdersSortedNewestFirst(t *testing.T) {
	engine, db := setupTestAPI(t)
	first := insertOrder(t, db, "First", 100, nil, 1, time.Now().UTC())
	second := insertOrder(t, db, "Second", 200, nil, 1, time.Now().UTC())
	third := insertOrder(t, db, "Third", 300, nil, 1, time.Now().UTC())

	w := performRequest(engine, http.MethodGet, "/api/orders", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeOrderList(t, w)
	require.Len(t, resp.Items, 3)
	assert.Equal(t, third.ID, resp.Items[0].ID)
	assert.Equal(t, second.ID, resp.Items[1].ID)
	assert.Equal(t, first.ID, resp.Items[2].ID)
}

func TestListOrdersMalformedFiltersIgnored(t *testing.T) {
	engine, db := setupTestAPI(t)
	insertOrder(t, db, "Mercedes", 100, nil, 1, time.Now().UTC())
	insertOrder(t, db, "BMW", 200, nil, 2, time.Now().UTC())

	// A malformed filter behaves exactly like an absent one
	paths := []string{
		"/api/orders?status=abc",
		"/api/orders?category=xyz",
		"/api/orders?price_from=xyz",
		"/api/orders?price_to=--",
		"/api/orders?date_from=banana",
		"/api/orders?date_to=2024-13-45",
	}
	for _, path := range paths {
		w := performRequest(engine, http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, w.Code, path)

		resp := decodeOrderList(t, w)
		assert.Equal(t, int64(2), resp.Total, path)
		assert.Len(t, resp.Items, 2, path)
	}
}

func TestListOrdersFilters(t *testing.T) {
	engine, db := setupTestAPI(t)
	now := time.Now().UTC()
	insertOrder(t, db, "Mercedes Sprinter", 1500, uintPtr(2), 1, now)
	insertOrder(t, db, "mercedes vito", 900, uintPtr(1), 2, now)
	insertOrder(t, db, "BMW X5", 2500, uintPtr(1), 2, now)

	testCases := []struct {
		name     string
		query    string
		expected int64
	}{
		{"search is case-insensitive substring", "search=MERCEDES", 2},
		{"whitespace-only search is absent", "search=%20%20", 3},
		{"status exact match", "status=2", 2},
		{"category exact match", "category=1", 2},
		{"price lower bound", "price_from=1000", 2},
		{"price upper bound with comma separator", "price_to=1500,00", 2},
		{"filters compose conjunctively", "search=mercedes&status=2&price_to=1000", 1},
		{"conjunction can be empty", "search=bmw&status=1", 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := performRequest(engine, http.MethodGet, "/api/orders?"+tc.query, nil)
			require.Equal(t, http.StatusOK, w.Code)

			resp := decodeOrderList(t, w)
			assert.Equal(t, tc.expected, resp.Total)
			assert.Len(t, resp.Items, int(tc.expected))
		})
	}
}

func TestListOrdersDateRange(t *testing.T) {
	engine, db := setupTestAPI(t)
	inside := insertOrder(t, db, "Inside", 100, nil, 1,
		time.Date(2024, 1, 15, 23, 59, 0, 0, time.UTC))
	insertOrder(t, db, "After", 100, nil, 1,
		time.Date(2024, 1, 16, 0, 0, 1, 0, time.UTC))
	insertOrder(t, db, "Before", 100, nil, 1,
		time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC))

	// A bare date_to covers the whole day
	w := performRequest(engine, http.MethodGet, "/api/orders?date_from=2024-01-15&date_to=2024-01-15", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeOrderList(t, w)
	require.Equal(t, int64(1), resp.Total)
	assert.Equal(t, inside.ID, resp.Items[0].ID)

	// Timestamp bounds are taken literally
	w = performRequest(engine, http.MethodGet, "/api/orders?date_to=2024-01-15T12:00:00", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp = decodeOrderList(t, w)
	assert.Equal(t, int64(1), resp.Total)
	assert.Equal(t, "Before", resp.Items[0].Brand)
}
