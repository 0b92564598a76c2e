package tests

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpapi "feastly/track-svc/internal/api/http"
	"feastly/track-svc/internal/domain"
	"feastly/track-svc/internal/storage"

	"github.com/alicebob/miniredis/v2"
	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func setupStore(t *testing.T) *storage.Store {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return storage.NewStore(rdb)
}

func TestStore_RecordAndGetTracking(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	placed := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	assert.NoError(t, store.RecordStatus(ctx, domain.OrderEvent{
		Type: domain.EventOrderPlaced, OrderID: 101,
		RestaurantID: 10, CustomerID: 7, Status: "pending", Timestamp: placed,
	}))
	assert.NoError(t, store.RecordStatus(ctx, domain.OrderEvent{
		Type: domain.EventStatusChanged, OrderID: 101,
		RestaurantID: 10, CustomerID: 7, Status: "confirmed", Timestamp: placed.Add(2 * time.Minute),
	}))

	info, err := store.GetTracking(ctx, 101)
	assert.NoError(t, err)
	assert.Equal(t, "confirmed", info.Status)
	assert.Equal(t, 10, info.RestaurantID)
	assert.Len(t, info.History, 2)
	assert.Equal(t, "pending", info.History[0].Status)
	assert.Equal(t, "confirmed", info.History[1].Status)
}

func TestStore_GetTracking_Unknown(t *testing.T) {
	store := setupStore(t)

	_, err := store.GetTracking(context.Background(), 404)
	assert.ErrorIs(t, err, storage.ErrOrderNotTracked)
}

func TestStore_DeliveredCounts(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	day := time.Date(2026, 5, 1, 20, 0, 0, 0, time.UTC)

	assert.NoError(t, store.IncrementDelivered(ctx, 10, day))
	assert.NoError(t, store.IncrementDelivered(ctx, 10, day))
	assert.NoError(t, store.IncrementDelivered(ctx, 11, day))

	counts, err := store.DeliveredCounts(ctx, day)
	assert.NoError(t, err)
	assert.Equal(t, map[int]int{10: 2, 11: 1}, counts)

	// A different day starts from zero.
	counts, err = store.DeliveredCounts(ctx, day.AddDate(0, 0, 1))
	assert.NoError(t, err)
	assert.Empty(t, counts)
}

func TestHandler_getTracking(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	assert.NoError(t, store.RecordStatus(ctx, domain.OrderEvent{
		Type: domain.EventOrderPlaced, OrderID: 101,
		RestaurantID: 10, Status: "pending", Timestamp: time.Now(),
	}))

	handler := httpapi.NewHandler(store)
	r := mux.NewRouter()
	handler.RegisterRoutes(r)

	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, httptest.NewRequest("GET", "/api/track/101", nil))
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"status":"pending"`)

	recorder = httptest.NewRecorder()
	r.ServeHTTP(recorder, httptest.NewRequest("GET", "/api/track/404", nil))
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
