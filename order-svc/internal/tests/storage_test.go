package tests

import (
	"bytes"
	"database/sql"
	"log"
	"os"
	"testing"
	"time"

	"feastly/order-svc/internal/domain"
	"feastly/order-svc/internal/storage"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func setupOrdersRepo(t *testing.T) (*storage.PostgresOrders, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return storage.NewPostgresOrders(db), mock
}

func TestPostgresOrders_UpdateOrderStatus_Wins(t *testing.T) {
	repo, mock := setupOrdersRepo(t)

	mock.ExpectExec("UPDATE orders").
		WithArgs("confirmed", 101, "pending").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateOrderStatus(101, domain.StatusPending, domain.StatusConfirmed)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresOrders_UpdateOrderStatus_LostRace(t *testing.T) {
	repo, mock := setupOrdersRepo(t)

	// Another actor already moved the order to cancelled.
	mock.ExpectExec("UPDATE orders").
		WithArgs("confirmed", 101, "pending").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT status FROM orders").
		WithArgs(101).
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("cancelled"))

	err := repo.UpdateOrderStatus(101, domain.StatusPending, domain.StatusConfirmed)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresOrders_UpdateOrderStatus_MissingOrder(t *testing.T) {
	repo, mock := setupOrdersRepo(t)

	mock.ExpectExec("UPDATE orders").
		WithArgs("confirmed", 404, "pending").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT status FROM orders").
		WithArgs(404).
		WillReturnError(sql.ErrNoRows)

	err := repo.UpdateOrderStatus(404, domain.StatusPending, domain.StatusConfirmed)
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresOffers_ListPlatformFees_LogsSkippedRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	repo := storage.NewPostgresOffers(db)

	var logged bytes.Buffer
	log.SetOutput(&logged)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	// The first row's is_percentage cannot scan into a bool; the second is fine.
	mock.ExpectQuery("SELECT (.+) FROM platform_fees").
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "fee_type", "fee_value", "is_percentage", "description", "is_active"}).
			AddRow(1, "service_fee", "5", "maybe", "", true).
			AddRow(2, "service_fee", "3", true, "launch fee", true))

	fees, err := repo.ListPlatformFees()
	assert.NoError(t, err)
	assert.Len(t, fees, 1)
	assert.Equal(t, 2, fees[0].ID)
	assert.Contains(t, logged.String(), "skipping platform fee row")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresOrders_CreateOrder_IsTransactional(t *testing.T) {
	repo, mock := setupOrdersRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO orders").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).
			AddRow(101, time.Now()))
	mock.ExpectExec("INSERT INTO order_items").
		WillReturnError(sql.ErrConnDone)
	mock.ExpectRollback()

	order := &domain.Order{
		CustomerID: 7, RestaurantID: 10, Status: domain.StatusPending,
		Items: []domain.OrderItem{{DishID: 1, DishName: "Paneer Tikka", Quantity: 2}},
	}
	err := repo.CreateOrder(order)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
