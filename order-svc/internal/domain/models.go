package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleCustomer        Role = "customer"
	RoleRestaurant      Role = "restaurant"
	RoleDeliveryPartner Role = "delivery_partner"
	RoleAdmin           Role = "admin"
	RoleSupport         Role = "customer_care"
)

// Actor identifies who is performing an operation. It is always passed in
// explicitly; nothing in this package reads identity from ambient state.
type Actor struct {
	ID   int
	Role Role
}

type PaymentMode string

const (
	PaymentCash PaymentMode = "cash"
	PaymentCard PaymentMode = "card"
	PaymentUPI  PaymentMode = "upi"
)

func (m PaymentMode) Valid() bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentUPI:
		return true
	}
	return false
}

type Restaurant struct {
	ID         int             `json:"id"`
	Name       string          `json:"name"`
	Address    string          `json:"address"`
	PinCode    string          `json:"pin_code"`
	Phone      string          `json:"phone"`
	Status     string          `json:"status"`
	OwnerName  string          `json:"owner_name,omitempty"`
	OwnerEmail string          `json:"owner_email,omitempty"`
	Fees       decimal.Decimal `json:"restaurant_fees"`
	CreatedAt  time.Time       `json:"created_at"`
}

type Dish struct {
	ID           int             `json:"id"`
	RestaurantID int             `json:"restaurant_id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	Category     string          `json:"category"`
	Available    bool            `json:"availability"`
	CreatedAt    time.Time       `json:"created_at"`
}

// CartItem is one line of a customer's cart. The dish name and unit price are
// copied in when the line is created so the cart can be rendered without
// another menu round trip; the authoritative price is re-read at checkout.
type CartItem struct {
	DishID       int             `json:"dish_id"`
	DishName     string          `json:"dish_name"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	RestaurantID int             `json:"restaurant_id"`
}

type Cart struct {
	Items    []CartItem      `json:"items"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFlat       DiscountType = "flat"
)

type OfferScope string

const (
	OfferPlatform   OfferScope = "platform"
	OfferRestaurant OfferScope = "restaurant"
)

type Offer struct {
	ID            int             `json:"id"`
	Code          string          `json:"code"`
	Description   string          `json:"description"`
	DiscountType  DiscountType    `json:"discount_type"`
	DiscountValue decimal.Decimal `json:"discount_value"`
	MinOrderValue decimal.Decimal `json:"min_order_value"`
	// MaxDiscount caps percentage discounts. Zero means no cap.
	MaxDiscount  decimal.Decimal `json:"max_discount"`
	RestaurantID int             `json:"restaurant_id,omitempty"`
	Scope        OfferScope      `json:"offer_type"`
	ValidUntil   time.Time       `json:"valid_until,omitempty"`
	IsActive     bool            `json:"is_active"`
}

// NormalizeOfferCode makes offer codes case-insensitive: "save20" and
// "SAVE20" are the same code.
func NormalizeOfferCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// OfferValidation is the outcome of checking a code against an order amount.
// An unusable offer is a result, not an error; the caller decides how hard
// to fail.
type OfferValidation struct {
	Valid          bool            `json:"valid"`
	Message        string          `json:"message,omitempty"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	FinalAmount    decimal.Decimal `json:"final_amount"`
}

type PlatformFee struct {
	ID           int             `json:"id"`
	FeeType      string          `json:"fee_type"`
	FeeValue     decimal.Decimal `json:"fee_value"`
	IsPercentage bool            `json:"is_percentage"`
	Description  string          `json:"description"`
	IsActive     bool            `json:"is_active"`
}

// PricingBreakdown is the full checkout price decomposition. Every field is
// kept, not just the final number, so receipts and refund disputes can be
// reconstructed line by line.
type PricingBreakdown struct {
	Subtotal       decimal.Decimal `json:"subtotal"`
	DeliveryCharge decimal.Decimal `json:"delivery_charge"`
	PlatformFee    decimal.Decimal `json:"platform_fee"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	FinalAmount    decimal.Decimal `json:"final_amount"`
}

type Order struct {
	ID                int              `json:"id"`
	CustomerID        int              `json:"customer_id"`
	RestaurantID      int              `json:"restaurant_id"`
	RestaurantName    string           `json:"restaurant_name,omitempty"`
	DeliveryPartnerID int              `json:"delivery_partner_id,omitempty"`
	Items             []OrderItem      `json:"items"`
	Subtotal          decimal.Decimal  `json:"subtotal"`
	DeliveryCharge    decimal.Decimal  `json:"delivery_charge"`
	PlatformFee       decimal.Decimal  `json:"platform_fee"`
	DiscountAmount    decimal.Decimal  `json:"discount_amount"`
	FinalAmount       decimal.Decimal  `json:"final_amount"`
	OfferCode         string           `json:"offer_code,omitempty"`
	PaymentMode       PaymentMode      `json:"payment_mode"`
	Status            OrderStatus      `json:"status"`
	DeliveryAddress   string           `json:"delivery_address"`
	DeliveryPinCode   string           `json:"delivery_pin_code"`
	QRCode            string           `json:"qr_code,omitempty"`
	CreatedAt         time.Time        `json:"created_at"`
	DeliveredAt       *time.Time       `json:"delivered_at,omitempty"`
}

// OrderItem is a snapshot taken at placement time. Later menu edits never
// touch it.
type OrderItem struct {
	DishID    int             `json:"dish_id"`
	DishName  string          `json:"dish_name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// Breakdown extracts the pricing snapshot committed on the order.
func (o *Order) Breakdown() PricingBreakdown {
	return PricingBreakdown{
		Subtotal:       o.Subtotal,
		DeliveryCharge: o.DeliveryCharge,
		PlatformFee:    o.PlatformFee,
		DiscountAmount: o.DiscountAmount,
		FinalAmount:    o.FinalAmount,
	}
}

type DeliveryPartner struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	PinCode   string `json:"pin_code"`
	Available bool   `json:"availability"`
}

type ComplaintStatus string

const (
	ComplaintOpen       ComplaintStatus = "open"
	ComplaintInProgress ComplaintStatus = "in_progress"
	ComplaintResolved   ComplaintStatus = "resolved"
	ComplaintClosed     ComplaintStatus = "closed"
)

func (s ComplaintStatus) Valid() bool {
	switch s {
	case ComplaintOpen, ComplaintInProgress, ComplaintResolved, ComplaintClosed:
		return true
	}
	return false
}

type Complaint struct {
	ID              int             `json:"id"`
	OrderID         int             `json:"order_id"`
	UserID          int             `json:"user_id"`
	Description     string          `json:"description"`
	Status          ComplaintStatus `json:"status"`
	ResolutionNotes string          `json:"resolution_notes,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	ResolvedAt      *time.Time      `json:"resolved_at,omitempty"`
}

// OrderFilter narrows order listings. Zero fields are ignored.
type OrderFilter struct {
	CustomerID        int
	RestaurantID      int
	DeliveryPartnerID int
	Statuses          []OrderStatus
}

const (
	EventOrderPlaced   = "order_placed"
	EventStatusChanged = "status_changed"
)

// OrderEvent is published to Kafka on order placement and on every
// successful status transition.
type OrderEvent struct {
	EventID      string      `json:"event_id"`
	Type         string      `json:"type"`
	OrderID      int         `json:"order_id"`
	RestaurantID int         `json:"restaurant_id"`
	CustomerID   int         `json:"customer_id"`
	Status       OrderStatus `json:"status"`
	Timestamp    time.Time   `json:"timestamp"`
}
