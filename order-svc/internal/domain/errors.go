package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyCart rejects a checkout with no line items.
	ErrEmptyCart = errors.New("cart has no items")

	// ErrMixedRestaurants rejects carts or orders spanning more than one
	// restaurant. Checkout is per restaurant.
	ErrMixedRestaurants = errors.New("all items must belong to one restaurant")

	// ErrInvalidOffer marks a checkout attempted with an unusable offer
	// code. The code is never silently dropped; the caller is told.
	ErrInvalidOffer = errors.New("invalid offer")

	// ErrNotAssigned rejects a pickup or delivery by a partner the order
	// is not assigned to.
	ErrNotAssigned = errors.New("order is not assigned to this delivery partner")

	// ErrConflict signals a lost compare-and-set race: another actor
	// already transitioned the order. Refetch and re-decide, do not
	// blindly retry.
	ErrConflict = errors.New("order status changed concurrently")

	// ErrForbidden rejects an actor touching an order that is not theirs.
	ErrForbidden = errors.New("actor may not access this order")

	ErrOrderNotFound      = errors.New("order not found")
	ErrDishNotFound       = errors.New("dish not found")
	ErrDishUnavailable    = errors.New("dish is not available")
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrRestaurantInactive = errors.New("restaurant is not accepting orders")
	ErrItemNotInCart      = errors.New("item not found in cart")
	ErrInvalidQuantity    = errors.New("quantity must be at least 1")
	ErrInvalidPaymentMode = errors.New("payment mode must be cash, card or upi")
	ErrOfferCodeTaken     = errors.New("offer code already exists")
	ErrInvalidDiscount    = errors.New("percentage discount must be in (0, 100]")
	ErrComplaintNotFound  = errors.New("complaint not found")
)

// InvalidTransitionError reports an illegal status change request: either
// the edge does not exist in the lifecycle table (wrong state) or it exists
// but belongs to another role (wrong actor).
type InvalidTransitionError struct {
	From       OrderStatus
	To         OrderStatus
	Role       Role
	WrongActor bool
	Reason     string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot change order from %q to %q as %s: %s",
		e.From, e.To, e.Role, e.Reason)
}
