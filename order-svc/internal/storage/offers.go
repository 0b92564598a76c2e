package storage

import (
	"database/sql"
	"log"

	"feastly/order-svc/internal/domain"
)

type PostgresOffers struct {
	DB *sql.DB
}

func NewPostgresOffers(db *sql.DB) *PostgresOffers {
	return &PostgresOffers{DB: db}
}

// GetOfferByCode matches case-insensitively; codes are stored upper-case
// but defensively matched with UPPER anyway. Unknown codes are (nil, nil).
func (r *PostgresOffers) GetOfferByCode(code string) (*domain.Offer, error) {
	var offer domain.Offer
	var restaurantID sql.NullInt64
	var validUntil sql.NullTime

	err := r.DB.QueryRow(`
		SELECT id, code, COALESCE(description, ''), discount_type, discount_value,
			min_order_value, COALESCE(max_discount, 0), restaurant_id, offer_type,
			valid_until, is_active
		FROM offers
		WHERE UPPER(code) = UPPER($1)
	`, code).Scan(&offer.ID, &offer.Code, &offer.Description, &offer.DiscountType,
		&offer.DiscountValue, &offer.MinOrderValue, &offer.MaxDiscount,
		&restaurantID, &offer.Scope, &validUntil, &offer.IsActive)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	offer.RestaurantID = int(restaurantID.Int64)
	if validUntil.Valid {
		offer.ValidUntil = validUntil.Time
	}
	return &offer, nil
}

func (r *PostgresOffers) CreateOffer(offer *domain.Offer) error {
	var restaurantID sql.NullInt64
	if offer.RestaurantID != 0 {
		restaurantID = sql.NullInt64{Int64: int64(offer.RestaurantID), Valid: true}
	}
	var validUntil sql.NullTime
	if !offer.ValidUntil.IsZero() {
		validUntil = sql.NullTime{Time: offer.ValidUntil, Valid: true}
	}

	return r.DB.QueryRow(`
		INSERT INTO offers (code, description, discount_type, discount_value,
			min_order_value, max_discount, restaurant_id, offer_type, valid_until, is_active)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, 0), $7, $8, $9, $10)
		RETURNING id
	`, offer.Code, offer.Description, string(offer.DiscountType), offer.DiscountValue,
		offer.MinOrderValue, offer.MaxDiscount, restaurantID, string(offer.Scope),
		validUntil, offer.IsActive).
		Scan(&offer.ID)
}

func (r *PostgresOffers) ListOffers(scope domain.OfferScope, restaurantID int) ([]domain.Offer, error) {
	query := `
		SELECT id, code, COALESCE(description, ''), discount_type, discount_value,
			min_order_value, COALESCE(max_discount, 0), restaurant_id, offer_type,
			valid_until, is_active
		FROM offers
		WHERE is_active = TRUE AND offer_type = $1`
	args := []interface{}{string(scope)}

	if restaurantID != 0 {
		args = append(args, restaurantID)
		query += " AND restaurant_id = $2"
	}
	query += " ORDER BY id DESC"

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	offers := []domain.Offer{}
	for rows.Next() {
		var offer domain.Offer
		var restID sql.NullInt64
		var validUntil sql.NullTime

		err := rows.Scan(&offer.ID, &offer.Code, &offer.Description, &offer.DiscountType,
			&offer.DiscountValue, &offer.MinOrderValue, &offer.MaxDiscount,
			&restID, &offer.Scope, &validUntil, &offer.IsActive)
		if err != nil {
			log.Printf("[order-svc] skipping offer row: %v", err)
			continue
		}

		offer.RestaurantID = int(restID.Int64)
		if validUntil.Valid {
			offer.ValidUntil = validUntil.Time
		}
		offers = append(offers, offer)
	}
	return offers, rows.Err()
}

// ActivePlatformFee returns the fee the PricingEngine should charge, or
// (nil, nil) when none is configured.
func (r *PostgresOffers) ActivePlatformFee() (*domain.PlatformFee, error) {
	var fee domain.PlatformFee
	err := r.DB.QueryRow(`
		SELECT id, fee_type, fee_value, is_percentage, COALESCE(description, ''), is_active
		FROM platform_fees
		WHERE is_active = TRUE
		ORDER BY id DESC
		LIMIT 1
	`).Scan(&fee.ID, &fee.FeeType, &fee.FeeValue, &fee.IsPercentage, &fee.Description, &fee.IsActive)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &fee, nil
}

func (r *PostgresOffers) CreatePlatformFee(fee *domain.PlatformFee) error {
	return r.DB.QueryRow(`
		INSERT INTO platform_fees (fee_type, fee_value, is_percentage, description, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, fee.FeeType, fee.FeeValue, fee.IsPercentage, fee.Description, fee.IsActive).
		Scan(&fee.ID)
}

func (r *PostgresOffers) ListPlatformFees() ([]domain.PlatformFee, error) {
	rows, err := r.DB.Query(`
		SELECT id, fee_type, fee_value, is_percentage, COALESCE(description, ''), is_active
		FROM platform_fees
		WHERE is_active = TRUE
		ORDER BY id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	fees := []domain.PlatformFee{}
	for rows.Next() {
		var fee domain.PlatformFee
		if err := rows.Scan(&fee.ID, &fee.FeeType, &fee.FeeValue, &fee.IsPercentage,
			&fee.Description, &fee.IsActive); err != nil {
			log.Printf("[order-svc] skipping platform fee row: %v", err)
			continue
		}
		fees = append(fees, fee)
	}
	return fees, rows.Err()
}
