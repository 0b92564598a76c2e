package main

import (
	"database/sql"
	"log"
	"time"

	"feastly/config"
	httpapi "feastly/order-svc/internal/api/http"
	"feastly/order-svc/internal/domain"
	"feastly/order-svc/internal/service"
	"feastly/order-svc/internal/storage"

	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// schemaDDL is every table the storage layer reads or writes. Column sets
// must stay in step with the queries in internal/storage; TestSchemaCoversRepositoryColumns
// diffs the two.
var schemaDDL = []string{
	`CREATE TABLE IF NOT EXISTS restaurants (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			address TEXT NOT NULL DEFAULT '',
			pin_code TEXT NOT NULL DEFAULT '',
			phone TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL DEFAULT 'active',
			owner_name TEXT NOT NULL DEFAULT '',
			owner_email TEXT NOT NULL DEFAULT '',
			restaurant_fees NUMERIC(10,2) NOT NULL DEFAULT 0,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
	`CREATE TABLE IF NOT EXISTS dishes (
			id SERIAL PRIMARY KEY,
			restaurant_id INT NOT NULL REFERENCES restaurants(id),
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			price NUMERIC(10,2) NOT NULL,
			category TEXT NOT NULL DEFAULT '',
			availability BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
	`CREATE TABLE IF NOT EXISTS delivery_partners (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			phone TEXT NOT NULL DEFAULT '',
			pin_code TEXT NOT NULL DEFAULT '',
			availability BOOLEAN NOT NULL DEFAULT TRUE
		)`,
	`CREATE TABLE IF NOT EXISTS orders (
			id SERIAL PRIMARY KEY,
			customer_id INT NOT NULL,
			restaurant_id INT NOT NULL REFERENCES restaurants(id),
			delivery_partner_id INT REFERENCES delivery_partners(id),
			subtotal NUMERIC(10,2) NOT NULL,
			delivery_charge NUMERIC(10,2) NOT NULL,
			platform_fee NUMERIC(10,2) NOT NULL,
			discount_amount NUMERIC(10,2) NOT NULL DEFAULT 0,
			final_amount NUMERIC(10,2) NOT NULL,
			offer_code TEXT,
			payment_mode TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'pending',
			delivery_address TEXT NOT NULL DEFAULT '',
			delivery_pin_code TEXT NOT NULL DEFAULT '',
			qr_code BYTEA,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			delivered_at TIMESTAMP
		)`,
	`CREATE TABLE IF NOT EXISTS order_items (
			id SERIAL PRIMARY KEY,
			order_id INT NOT NULL REFERENCES orders(id),
			dish_id INT NOT NULL,
			dish_name TEXT NOT NULL,
			quantity INT NOT NULL,
			unit_price NUMERIC(10,2) NOT NULL
		)`,
	`CREATE TABLE IF NOT EXISTS offers (
			id SERIAL PRIMARY KEY,
			code TEXT NOT NULL UNIQUE,
			description TEXT NOT NULL DEFAULT '',
			discount_type TEXT NOT NULL,
			discount_value NUMERIC(10,2) NOT NULL,
			min_order_value NUMERIC(10,2) NOT NULL DEFAULT 0,
			max_discount NUMERIC(10,2),
			offer_type TEXT NOT NULL DEFAULT 'platform',
			restaurant_id INT,
			valid_until TIMESTAMP,
			is_active BOOLEAN NOT NULL DEFAULT TRUE
		)`,
	`CREATE TABLE IF NOT EXISTS platform_fees (
			id SERIAL PRIMARY KEY,
			fee_type TEXT NOT NULL,
			fee_value NUMERIC(10,2) NOT NULL,
			is_percentage BOOLEAN NOT NULL DEFAULT TRUE,
			description TEXT NOT NULL DEFAULT '',
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
	`CREATE TABLE IF NOT EXISTS complaints (
			id SERIAL PRIMARY KEY,
			order_id INT NOT NULL REFERENCES orders(id),
			user_id INT NOT NULL,
			description TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'open',
			resolution_notes TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			resolved_at TIMESTAMP
		)`,
}

func ensureSchema(db *sql.DB) error {
	for _, stmt := range schemaDDL {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// loadPricingPolicy reads the active platform fee row, falling back to a
// 5% percentage fee when none is configured yet.
func loadPricingPolicy(offers service.OfferRepository) domain.PlatformFee {
	fee, err := offers.ActivePlatformFee()
	if err != nil {
		log.Printf("[order-svc] failed to load platform fee, using default: %v", err)
	}
	if fee == nil {
		return domain.PlatformFee{
			FeeType:      "service_fee",
			FeeValue:     decimal.NewFromInt(5),
			IsPercentage: true,
		}
	}
	return *fee
}

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	if err := ensureSchema(db); err != nil {
		log.Fatalf("[order-svc] failed to ensure schema: %v", err)
	}

	rdb := config.MustInitRedis()
	defer rdb.Close()

	kafkaWriter := config.NewKafkaWriter("order-events")
	defer kafkaWriter.Close()

	orders := storage.NewPostgresOrders(db)
	menu := storage.NewPostgresMenu(db)
	offers := storage.NewPostgresOffers(db)
	partners := storage.NewPostgresPartners(db)
	complaints := storage.NewPostgresComplaints(db)
	cartStore := storage.NewRedisCartStore(rdb, 24*time.Hour)
	publisher := storage.NewKafkaOrderEvents(kafkaWriter)

	engine := service.NewPricingEngine(
		config.MustDecimalEnv("DELIVERY_CHARGE", "40"),
		loadPricingPolicy(offers),
	)
	qr := service.NewTrackingQRGenerator(config.Getenv("TRACKING_BASE_URL", "http://localhost:8083"))

	handler := httpapi.NewHandler(
		service.NewCartService(menu, cartStore),
		service.NewOrderService(orders, menu, offers, partners, cartStore, engine, publisher, qr),
		service.NewOfferService(offers, engine),
		service.NewMenuService(menu),
		service.NewComplaintService(complaints, orders),
		service.NewPartnerService(partners),
	)

	addr := ":" + config.Getenv("PORT", "8081")
	httpapi.StartServer(addr, httpapi.NewRouter(handler))
}
