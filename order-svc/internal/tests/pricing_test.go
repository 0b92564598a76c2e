package tests

import (
	"testing"
	"time"

	"feastly/order-svc/internal/domain"
	"feastly/order-svc/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func newTestEngine() *service.PricingEngine {
	return service.NewPricingEngine(
		decimal.NewFromInt(40),
		domain.PlatformFee{FeeValue: decimal.NewFromInt(5), IsPercentage: true},
	)
}

func sampleCart() []domain.CartItem {
	return []domain.CartItem{
		{DishID: 1, DishName: "Paneer Tikka", Quantity: 2, UnitPrice: decimal.NewFromInt(200), RestaurantID: 10},
		{DishID: 2, DishName: "Garlic Naan", Quantity: 3, UnitPrice: decimal.NewFromInt(50), RestaurantID: 10},
	}
}

func TestPricingEngine_ComputeTotal(t *testing.T) {
	engine := newTestEngine()

	breakdown, err := engine.ComputeTotal(sampleCart(), nil)
	assert.NoError(t, err)
	assert.Equal(t, "550.00", breakdown.Subtotal.StringFixed(2))
	assert.Equal(t, "40.00", breakdown.DeliveryCharge.StringFixed(2))
	assert.Equal(t, "27.50", breakdown.PlatformFee.StringFixed(2))
	assert.Equal(t, "0.00", breakdown.DiscountAmount.StringFixed(2))
	assert.Equal(t, "617.50", breakdown.FinalAmount.StringFixed(2))
}

func TestPricingEngine_ComputeTotal_PercentageOffer(t *testing.T) {
	engine := newTestEngine()
	offer := &domain.Offer{
		Code:          "SAVE20",
		DiscountType:  domain.DiscountPercentage,
		DiscountValue: decimal.NewFromInt(20),
		Scope:         domain.OfferPlatform,
		IsActive:      true,
	}

	breakdown, err := engine.ComputeTotal(sampleCart(), offer)
	assert.NoError(t, err)
	assert.Equal(t, "110.00", breakdown.DiscountAmount.StringFixed(2))
	assert.Equal(t, "507.50", breakdown.FinalAmount.StringFixed(2))
}

func TestPricingEngine_ComputeTotal_FlatOfferClampedToSubtotal(t *testing.T) {
	engine := newTestEngine()
	offer := &domain.Offer{
		Code:          "FLAT1000",
		DiscountType:  domain.DiscountFlat,
		DiscountValue: decimal.NewFromInt(1000),
		Scope:         domain.OfferPlatform,
		IsActive:      true,
	}

	breakdown, err := engine.ComputeTotal(sampleCart(), offer)
	assert.NoError(t, err)
	// The discount can only cover the dishes, never the charges.
	assert.Equal(t, "550.00", breakdown.DiscountAmount.StringFixed(2))
	assert.Equal(t, "67.50", breakdown.FinalAmount.StringFixed(2))
}

func TestPricingEngine_ComputeTotal_Deterministic(t *testing.T) {
	engine := newTestEngine()

	first, err := engine.ComputeTotal(sampleCart(), nil)
	assert.NoError(t, err)
	second, err := engine.ComputeTotal(sampleCart(), nil)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestPricingEngine_ComputeTotal_Errors(t *testing.T) {
	engine := newTestEngine()

	tests := []struct {
		name          string
		items         []domain.CartItem
		offer         *domain.Offer
		expectedError error
	}{
		{
			name:          "empty_cart",
			items:         nil,
			expectedError: domain.ErrEmptyCart,
		},
		{
			name: "mixed_restaurants",
			items: []domain.CartItem{
				{DishID: 1, Quantity: 1, UnitPrice: decimal.NewFromInt(100), RestaurantID: 10},
				{DishID: 9, Quantity: 1, UnitPrice: decimal.NewFromInt(100), RestaurantID: 11},
			},
			expectedError: domain.ErrMixedRestaurants,
		},
		{
			name: "zero_quantity",
			items: []domain.CartItem{
				{DishID: 1, Quantity: 0, UnitPrice: decimal.NewFromInt(100), RestaurantID: 10},
			},
			expectedError: domain.ErrInvalidQuantity,
		},
		{
			name:  "inactive_offer",
			items: sampleCart(),
			offer: &domain.Offer{
				Code:          "OLD",
				DiscountType:  domain.DiscountFlat,
				DiscountValue: decimal.NewFromInt(50),
				IsActive:      false,
			},
			expectedError: domain.ErrInvalidOffer,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			_, err := engine.ComputeTotal(testCase.items, testCase.offer)
			assert.ErrorIs(t, err, testCase.expectedError)
		})
	}
}

func TestPricingEngine_ComputeTotal_FlatFeeMode(t *testing.T) {
	engine := service.NewPricingEngine(
		decimal.NewFromInt(40),
		domain.PlatformFee{FeeValue: decimal.NewFromInt(10), IsPercentage: false},
	)

	breakdown, err := engine.ComputeTotal(sampleCart(), nil)
	assert.NoError(t, err)
	assert.Equal(t, "10.00", breakdown.PlatformFee.StringFixed(2))
	assert.Equal(t, "600.00", breakdown.FinalAmount.StringFixed(2))
}

func TestPricingEngine_ValidateOffer(t *testing.T) {
	engine := newTestEngine()
	amount := decimal.NewFromInt(550)

	tests := []struct {
		name             string
		offer            *domain.Offer
		amount           decimal.Decimal
		restaurantID     int
		expectedValid    bool
		expectedMessage  string
		expectedDiscount string
	}{
		{
			name:          "nil_offer",
			offer:         nil,
			amount:        amount,
			expectedValid: false, expectedMessage: "invalid offer code",
		},
		{
			name: "inactive",
			offer: &domain.Offer{
				DiscountType: domain.DiscountFlat, DiscountValue: decimal.NewFromInt(50),
			},
			amount:        amount,
			expectedValid: false, expectedMessage: "invalid offer code",
		},
		{
			name: "expired",
			offer: &domain.Offer{
				DiscountType: domain.DiscountFlat, DiscountValue: decimal.NewFromInt(50),
				IsActive: true, ValidUntil: time.Now().Add(-time.Hour),
			},
			amount:        amount,
			expectedValid: false, expectedMessage: "offer has expired",
		},
		{
			name: "wrong_restaurant",
			offer: &domain.Offer{
				DiscountType: domain.DiscountFlat, DiscountValue: decimal.NewFromInt(50),
				IsActive: true, Scope: domain.OfferRestaurant, RestaurantID: 99,
			},
			amount: amount, restaurantID: 10,
			expectedValid: false, expectedMessage: "offer not valid for this restaurant",
		},
		{
			name: "below_minimum",
			offer: &domain.Offer{
				DiscountType: domain.DiscountFlat, DiscountValue: decimal.NewFromInt(50),
				IsActive: true, MinOrderValue: decimal.NewFromInt(1000),
			},
			amount:        amount,
			expectedValid: false, expectedMessage: "minimum order value is 1000.00",
		},
		{
			name: "percentage_applies",
			offer: &domain.Offer{
				DiscountType: domain.DiscountPercentage, DiscountValue: decimal.NewFromInt(20),
				IsActive: true,
			},
			amount:        amount,
			expectedValid: true, expectedDiscount: "110.00",
		},
		{
			name: "percentage_capped_by_max_discount",
			offer: &domain.Offer{
				DiscountType: domain.DiscountPercentage, DiscountValue: decimal.NewFromInt(20),
				MaxDiscount: decimal.NewFromInt(75), IsActive: true,
			},
			amount:        amount,
			expectedValid: true, expectedDiscount: "75.00",
		},
		{
			name: "flat_clamped_to_amount",
			offer: &domain.Offer{
				DiscountType: domain.DiscountFlat, DiscountValue: decimal.NewFromInt(1000),
				IsActive: true,
			},
			amount:        amount,
			expectedValid: true, expectedDiscount: "550.00",
		},
		{
			name: "restaurant_scope_matches",
			offer: &domain.Offer{
				DiscountType: domain.DiscountFlat, DiscountValue: decimal.NewFromInt(50),
				IsActive: true, Scope: domain.OfferRestaurant, RestaurantID: 10,
			},
			amount: amount, restaurantID: 10,
			expectedValid: true, expectedDiscount: "50.00",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			result := engine.ValidateOffer(testCase.offer, testCase.amount, testCase.restaurantID)
			assert.Equal(t, testCase.expectedValid, result.Valid)
			if testCase.expectedMessage != "" {
				assert.Equal(t, testCase.expectedMessage, result.Message)
			}
			if testCase.expectedDiscount != "" {
				assert.Equal(t, testCase.expectedDiscount, result.DiscountAmount.StringFixed(2))
			}
		})
	}
}

func TestPricingEngine_RoundingOnlyAtBoundary(t *testing.T) {
	engine := newTestEngine()

	items := []domain.CartItem{
		{DishID: 1, Quantity: 3, UnitPrice: decimal.RequireFromString("33.335"), RestaurantID: 10},
	}

	breakdown, err := engine.ComputeTotal(items, nil)
	assert.NoError(t, err)
	// 3 x 33.335 = 100.005; the unrounded subtotal feeds the 5% fee
	// (5.00025 -> 5.00) before either is rounded for display.
	assert.Equal(t, "100.01", breakdown.Subtotal.StringFixed(2))
	assert.Equal(t, "5.00", breakdown.PlatformFee.StringFixed(2))
}
