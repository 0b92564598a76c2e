package service

import (
	"fmt"
	"time"

	"feastly/order-svc/internal/domain"

	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// PricingEngine is the single place checkout totals are computed. The cart
// view, the offer validator and order placement all go through it, so the
// rounding and clamping rules cannot diverge between screens.
//
// All intermediate arithmetic stays unrounded; each field of the returned
// breakdown is rounded to 2 decimal places only at the end.
type PricingEngine struct {
	DeliveryCharge decimal.Decimal
	Fee            domain.PlatformFee
}

func NewPricingEngine(deliveryCharge decimal.Decimal, fee domain.PlatformFee) *PricingEngine {
	return &PricingEngine{DeliveryCharge: deliveryCharge, Fee: fee}
}

// ComputeTotal prices a cart, optionally with an offer already resolved by
// the caller. It is pure: identical inputs always produce the identical
// breakdown, and nothing is persisted. An offer that fails validation is a
// hard ErrInvalidOffer, never a silent zero discount.
func (e *PricingEngine) ComputeTotal(items []domain.CartItem, offer *domain.Offer) (*domain.PricingBreakdown, error) {
	if len(items) == 0 {
		return nil, domain.ErrEmptyCart
	}

	restaurantID := items[0].RestaurantID
	subtotal := decimal.Zero
	for _, item := range items {
		if item.RestaurantID != restaurantID {
			return nil, domain.ErrMixedRestaurants
		}
		if item.Quantity < 1 {
			return nil, domain.ErrInvalidQuantity
		}
		subtotal = subtotal.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	platformFee := e.platformFee(subtotal)

	discount := decimal.Zero
	if offer != nil {
		result := e.ValidateOffer(offer, subtotal, restaurantID)
		if !result.Valid {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidOffer, result.Message)
		}
		discount = result.DiscountAmount
	}

	final := subtotal.Add(e.DeliveryCharge).Add(platformFee).Sub(discount)
	if final.IsNegative() {
		final = decimal.Zero
	}

	return &domain.PricingBreakdown{
		Subtotal:       subtotal.Round(2),
		DeliveryCharge: e.DeliveryCharge.Round(2),
		PlatformFee:    platformFee.Round(2),
		DiscountAmount: discount.Round(2),
		FinalAmount:    final.Round(2),
	}, nil
}

// ValidateOffer checks a resolved offer against an order amount. It is
// read-only; the discount is only committed when an order is actually
// placed with the code. A nil or unusable offer comes back as an invalid
// result with a human-readable message, not an error.
func (e *PricingEngine) ValidateOffer(offer *domain.Offer, orderAmount decimal.Decimal, restaurantID int) domain.OfferValidation {
	switch {
	case offer == nil || !offer.IsActive:
		return domain.OfferValidation{Valid: false, Message: "invalid offer code"}
	case !offer.ValidUntil.IsZero() && time.Now().After(offer.ValidUntil):
		return domain.OfferValidation{Valid: false, Message: "offer has expired"}
	case offer.Scope == domain.OfferRestaurant && offer.RestaurantID != restaurantID:
		return domain.OfferValidation{Valid: false, Message: "offer not valid for this restaurant"}
	case orderAmount.LessThan(offer.MinOrderValue):
		return domain.OfferValidation{
			Valid:   false,
			Message: "minimum order value is " + offer.MinOrderValue.StringFixed(2),
		}
	}

	var discount decimal.Decimal
	if offer.DiscountType == domain.DiscountPercentage {
		discount = orderAmount.Mul(offer.DiscountValue).Div(oneHundred)
		if offer.MaxDiscount.IsPositive() && discount.GreaterThan(offer.MaxDiscount) {
			discount = offer.MaxDiscount
		}
	} else {
		discount = offer.DiscountValue
	}

	// A discount can reduce the order amount to zero, never below it.
	if discount.GreaterThan(orderAmount) {
		discount = orderAmount
	}

	return domain.OfferValidation{
		Valid:          true,
		DiscountAmount: discount.Round(2),
		FinalAmount:    orderAmount.Sub(discount).Round(2),
	}
}

func (e *PricingEngine) platformFee(subtotal decimal.Decimal) decimal.Decimal {
	if e.Fee.IsPercentage {
		return subtotal.Mul(e.Fee.FeeValue).Div(oneHundred)
	}
	return e.Fee.FeeValue
}

var _ PricingEngineInterface = (*PricingEngine)(nil)
