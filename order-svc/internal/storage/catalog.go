package storage

import (
	"database/sql"
	"log"

	"feastly/order-svc/internal/domain"
)

// PostgresMenu backs restaurant and dish reads/writes. Order placement
// snapshots from here; nothing ever writes back from an order to a dish.
type PostgresMenu struct {
	DB *sql.DB
}

func NewPostgresMenu(db *sql.DB) *PostgresMenu {
	return &PostgresMenu{DB: db}
}

func (r *PostgresMenu) CreateRestaurant(rest *domain.Restaurant) error {
	return r.DB.QueryRow(`
		INSERT INTO restaurants (name, address, pin_code, phone, status, owner_name, owner_email, restaurant_fees)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`, rest.Name, rest.Address, rest.PinCode, rest.Phone, rest.Status,
		rest.OwnerName, rest.OwnerEmail, rest.Fees).
		Scan(&rest.ID, &rest.CreatedAt)
}

func (r *PostgresMenu) GetRestaurant(id int) (*domain.Restaurant, error) {
	var rest domain.Restaurant
	err := r.DB.QueryRow(`
		SELECT id, name, COALESCE(address, ''), COALESCE(pin_code, ''), COALESCE(phone, ''),
			status, COALESCE(owner_name, ''), COALESCE(owner_email, ''), restaurant_fees, created_at
		FROM restaurants
		WHERE id = $1
	`, id).Scan(&rest.ID, &rest.Name, &rest.Address, &rest.PinCode, &rest.Phone,
		&rest.Status, &rest.OwnerName, &rest.OwnerEmail, &rest.Fees, &rest.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, domain.ErrRestaurantNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *PostgresMenu) ListRestaurants(pinCode string, activeOnly bool) ([]domain.Restaurant, error) {
	query := `
		SELECT id, name, COALESCE(address, ''), COALESCE(pin_code, ''), COALESCE(phone, ''),
			status, COALESCE(owner_name, ''), COALESCE(owner_email, ''), restaurant_fees, created_at
		FROM restaurants
		WHERE 1=1`
	args := []interface{}{}

	if activeOnly {
		query += " AND status = 'active'"
	}
	if pinCode != "" {
		args = append(args, pinCode)
		query += " AND pin_code = $1"
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	restaurants := []domain.Restaurant{}
	for rows.Next() {
		var rest domain.Restaurant
		err := rows.Scan(&rest.ID, &rest.Name, &rest.Address, &rest.PinCode, &rest.Phone,
			&rest.Status, &rest.OwnerName, &rest.OwnerEmail, &rest.Fees, &rest.CreatedAt)
		if err != nil {
			log.Printf("[order-svc] skipping restaurant row: %v", err)
			continue
		}
		restaurants = append(restaurants, rest)
	}
	return restaurants, rows.Err()
}

func (r *PostgresMenu) UpdateRestaurant(rest *domain.Restaurant) error {
	result, err := r.DB.Exec(`
		UPDATE restaurants
		SET status = COALESCE(NULLIF($1, ''), status),
			restaurant_fees = $2
		WHERE id = $3
	`, rest.Status, rest.Fees, rest.ID)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrRestaurantNotFound
	}
	return nil
}

func (r *PostgresMenu) CreateDish(dish *domain.Dish) error {
	return r.DB.QueryRow(`
		INSERT INTO dishes (restaurant_id, name, description, price, category, availability)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`, dish.RestaurantID, dish.Name, dish.Description, dish.Price, dish.Category, dish.Available).
		Scan(&dish.ID, &dish.CreatedAt)
}

func (r *PostgresMenu) GetDish(dishID int) (*domain.Dish, error) {
	var dish domain.Dish
	err := r.DB.QueryRow(`
		SELECT id, restaurant_id, name, COALESCE(description, ''), price,
			COALESCE(category, ''), availability, created_at
		FROM dishes
		WHERE id = $1
	`, dishID).Scan(&dish.ID, &dish.RestaurantID, &dish.Name, &dish.Description,
		&dish.Price, &dish.Category, &dish.Available, &dish.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, domain.ErrDishNotFound
	}
	if err != nil {
		return nil, err
	}
	return &dish, nil
}

func (r *PostgresMenu) ListDishes(restaurantID int) ([]domain.Dish, error) {
	rows, err := r.DB.Query(`
		SELECT id, restaurant_id, name, COALESCE(description, ''), price,
			COALESCE(category, ''), availability, created_at
		FROM dishes
		WHERE restaurant_id = $1
		ORDER BY created_at DESC
	`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	dishes := []domain.Dish{}
	for rows.Next() {
		var dish domain.Dish
		err := rows.Scan(&dish.ID, &dish.RestaurantID, &dish.Name, &dish.Description,
			&dish.Price, &dish.Category, &dish.Available, &dish.CreatedAt)
		if err != nil {
			log.Printf("[order-svc] skipping dish row: %v", err)
			continue
		}
		dishes = append(dishes, dish)
	}
	return dishes, rows.Err()
}

func (r *PostgresMenu) UpdateDish(dish *domain.Dish) error {
	result, err := r.DB.Exec(`
		UPDATE dishes
		SET name = $1, description = $2, price = $3, category = $4, availability = $5
		WHERE id = $6 AND restaurant_id = $7
	`, dish.Name, dish.Description, dish.Price, dish.Category, dish.Available,
		dish.ID, dish.RestaurantID)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrDishNotFound
	}
	return nil
}

func (r *PostgresMenu) DeleteDish(restaurantID, dishID int) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM dishes WHERE id = $1 AND restaurant_id = $2", dishID, restaurantID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

type PostgresPartners struct {
	DB *sql.DB
}

func NewPostgresPartners(db *sql.DB) *PostgresPartners {
	return &PostgresPartners{DB: db}
}

// FindAvailablePartner returns a partner covering the pin code, or
// (nil, nil) when none is free right now.
func (r *PostgresPartners) FindAvailablePartner(pinCode string) (*domain.DeliveryPartner, error) {
	var partner domain.DeliveryPartner
	err := r.DB.QueryRow(`
		SELECT id, name, COALESCE(phone, ''), pin_code, availability
		FROM delivery_partners
		WHERE pin_code = $1 AND availability = TRUE
		ORDER BY id
		LIMIT 1
	`, pinCode).Scan(&partner.ID, &partner.Name, &partner.Phone, &partner.PinCode, &partner.Available)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &partner, nil
}

func (r *PostgresPartners) GetPartner(id int) (*domain.DeliveryPartner, error) {
	var partner domain.DeliveryPartner
	err := r.DB.QueryRow(`
		SELECT id, name, COALESCE(phone, ''), pin_code, availability
		FROM delivery_partners
		WHERE id = $1
	`, id).Scan(&partner.ID, &partner.Name, &partner.Phone, &partner.PinCode, &partner.Available)
	if err != nil {
		return nil, err
	}
	return &partner, nil
}

func (r *PostgresPartners) SetAvailability(partnerID int, available bool) error {
	_, err := r.DB.Exec("UPDATE delivery_partners SET availability = $1 WHERE id = $2", available, partnerID)
	return err
}
