package storage

import (
	"database/sql"
	"fmt"
	"log"

	"feastly/order-svc/internal/domain"

	"github.com/lib/pq"
)

type PostgresOrders struct {
	DB *sql.DB
}

func NewPostgresOrders(db *sql.DB) *PostgresOrders {
	return &PostgresOrders{DB: db}
}

// CreateOrder writes the order row and its item snapshot in one
// transaction. Either the whole order lands or none of it does.
func (r *PostgresOrders) CreateOrder(order *domain.Order) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var partnerID sql.NullInt64
	if order.DeliveryPartnerID != 0 {
		partnerID = sql.NullInt64{Int64: int64(order.DeliveryPartnerID), Valid: true}
	}

	err = tx.QueryRow(`
		INSERT INTO orders (customer_id, restaurant_id, delivery_partner_id,
			subtotal, delivery_charge, platform_fee, discount_amount, final_amount,
			offer_code, payment_mode, status, delivery_address, delivery_pin_code)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at
	`, order.CustomerID, order.RestaurantID, partnerID,
		order.Subtotal, order.DeliveryCharge, order.PlatformFee,
		order.DiscountAmount, order.FinalAmount,
		nullString(order.OfferCode), string(order.PaymentMode), string(order.Status),
		order.DeliveryAddress, order.DeliveryPinCode).
		Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	for _, item := range order.Items {
		if _, err := tx.Exec(`
			INSERT INTO order_items (order_id, dish_id, dish_name, quantity, unit_price)
			VALUES ($1, $2, $3, $4, $5)
		`, order.ID, item.DishID, item.DishName, item.Quantity, item.UnitPrice); err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}

	return tx.Commit()
}

func (r *PostgresOrders) GetOrder(orderID int) (*domain.Order, error) {
	var order domain.Order
	var partnerID sql.NullInt64
	var offerCode sql.NullString
	var deliveredAt sql.NullTime

	err := r.DB.QueryRow(`
		SELECT o.id, o.customer_id, o.restaurant_id, o.delivery_partner_id,
			o.subtotal, o.delivery_charge, o.platform_fee, o.discount_amount, o.final_amount,
			o.offer_code, o.payment_mode, o.status, o.delivery_address, o.delivery_pin_code,
			o.created_at, o.delivered_at, COALESCE(rst.name, '')
		FROM orders o
		LEFT JOIN restaurants rst ON rst.id = o.restaurant_id
		WHERE o.id = $1
	`, orderID).Scan(&order.ID, &order.CustomerID, &order.RestaurantID, &partnerID,
		&order.Subtotal, &order.DeliveryCharge, &order.PlatformFee,
		&order.DiscountAmount, &order.FinalAmount,
		&offerCode, &order.PaymentMode, &order.Status,
		&order.DeliveryAddress, &order.DeliveryPinCode,
		&order.CreatedAt, &deliveredAt, &order.RestaurantName)
	if err == sql.ErrNoRows {
		return nil, domain.ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	order.DeliveryPartnerID = int(partnerID.Int64)
	order.OfferCode = offerCode.String
	if deliveredAt.Valid {
		t := deliveredAt.Time
		order.DeliveredAt = &t
	}

	items, err := r.listItems(orderID)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return &order, nil
}

func (r *PostgresOrders) listItems(orderID int) ([]domain.OrderItem, error) {
	rows, err := r.DB.Query(`
		SELECT dish_id, dish_name, quantity, unit_price
		FROM order_items
		WHERE order_id = $1
		ORDER BY id
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.OrderItem{}
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.DishID, &item.DishName, &item.Quantity, &item.UnitPrice); err != nil {
			log.Printf("[order-svc] skipping order item row: %v", err)
			continue
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PostgresOrders) ListOrders(filter domain.OrderFilter) ([]domain.Order, error) {
	query := `
		SELECT o.id, o.customer_id, o.restaurant_id, o.delivery_partner_id,
			o.subtotal, o.delivery_charge, o.platform_fee, o.discount_amount, o.final_amount,
			o.offer_code, o.payment_mode, o.status, o.delivery_address, o.delivery_pin_code,
			o.created_at, o.delivered_at, COALESCE(rst.name, '')
		FROM orders o
		LEFT JOIN restaurants rst ON rst.id = o.restaurant_id
		WHERE 1=1`
	args := []interface{}{}

	if filter.CustomerID != 0 {
		args = append(args, filter.CustomerID)
		query += fmt.Sprintf(" AND o.customer_id = $%d", len(args))
	}
	if filter.RestaurantID != 0 {
		args = append(args, filter.RestaurantID)
		query += fmt.Sprintf(" AND o.restaurant_id = $%d", len(args))
	}
	if filter.DeliveryPartnerID != 0 {
		args = append(args, filter.DeliveryPartnerID)
		query += fmt.Sprintf(" AND o.delivery_partner_id = $%d", len(args))
	}
	if len(filter.Statuses) != 0 {
		statuses := make([]string, len(filter.Statuses))
		for i, s := range filter.Statuses {
			statuses[i] = string(s)
		}
		args = append(args, pq.Array(statuses))
		query += fmt.Sprintf(" AND o.status = ANY($%d)", len(args))
	}
	query += " ORDER BY o.created_at DESC"

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		var order domain.Order
		var partnerID sql.NullInt64
		var offerCode sql.NullString
		var deliveredAt sql.NullTime

		err := rows.Scan(&order.ID, &order.CustomerID, &order.RestaurantID, &partnerID,
			&order.Subtotal, &order.DeliveryCharge, &order.PlatformFee,
			&order.DiscountAmount, &order.FinalAmount,
			&offerCode, &order.PaymentMode, &order.Status,
			&order.DeliveryAddress, &order.DeliveryPinCode,
			&order.CreatedAt, &deliveredAt, &order.RestaurantName)
		if err != nil {
			log.Printf("[order-svc] skipping order row: %v", err)
			continue
		}

		order.DeliveryPartnerID = int(partnerID.Int64)
		order.OfferCode = offerCode.String
		if deliveredAt.Valid {
			t := deliveredAt.Time
			order.DeliveredAt = &t
		}

		if items, err := r.listItems(order.ID); err == nil {
			order.Items = items
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

// UpdateOrderStatus is the compare-and-set that serializes racing actors.
// The row only changes while its status still equals expected; a lost race
// surfaces as domain.ErrConflict so the caller refetches and re-decides.
func (r *PostgresOrders) UpdateOrderStatus(orderID int, expected, next domain.OrderStatus) error {
	result, err := r.DB.Exec(`
		UPDATE orders
		SET status = $1,
			delivered_at = CASE WHEN $1 = 'delivered' THEN CURRENT_TIMESTAMP ELSE delivered_at END
		WHERE id = $2 AND status = $3
	`, string(next), orderID, string(expected))
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows != 0 {
		return nil
	}

	// Zero rows: either the order vanished or someone else won the race.
	var current string
	err = r.DB.QueryRow("SELECT status FROM orders WHERE id = $1", orderID).Scan(&current)
	if err == sql.ErrNoRows {
		return domain.ErrOrderNotFound
	}
	if err != nil {
		return err
	}
	return domain.ErrConflict
}

func (r *PostgresOrders) SaveQRCode(orderID int, qr []byte) error {
	_, err := r.DB.Exec("UPDATE orders SET qr_code = $1 WHERE id = $2", qr, orderID)
	return err
}

func (r *PostgresOrders) GetQRCode(orderID int) ([]byte, error) {
	var qr []byte
	err := r.DB.QueryRow("SELECT qr_code FROM orders WHERE id = $1", orderID).Scan(&qr)
	if err == sql.ErrNoRows {
		return nil, domain.ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return qr, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
