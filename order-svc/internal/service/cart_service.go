package service

import (
	"context"
	"fmt"

	"feastly/order-svc/internal/domain"

	"github.com/shopspring/decimal"
)

type CartService struct {
	menu  MenuRepository
	store CartStore
}

func NewCartService(menu MenuRepository, store CartStore) *CartService {
	return &CartService{menu: menu, store: store}
}

// Add puts quantity of a dish into the cart, merging with any existing line.
// A negative quantity decrements; a line drained to zero or below is
// removed. Carts hold dishes from one restaurant at a time.
func (s *CartService) Add(ctx context.Context, userID, dishID, quantity int) (*domain.Cart, error) {
	dish, err := s.menu.GetDish(dishID)
	if err != nil {
		return nil, err
	}

	items, err := s.store.GetItems(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to read cart: %w", err)
	}

	existingQty := 0
	for _, item := range items {
		if item.RestaurantID != dish.RestaurantID {
			return nil, domain.ErrMixedRestaurants
		}
		if item.DishID == dishID {
			existingQty = item.Quantity
		}
	}

	newQty := existingQty + quantity
	if newQty <= 0 {
		if existingQty == 0 {
			return nil, domain.ErrInvalidQuantity
		}
		if err := s.store.RemoveItem(ctx, userID, dishID); err != nil {
			return nil, err
		}
		return s.Get(ctx, userID)
	}

	if !dish.Available {
		return nil, domain.ErrDishUnavailable
	}

	line := domain.CartItem{
		DishID:       dish.ID,
		DishName:     dish.Name,
		Quantity:     newQty,
		UnitPrice:    dish.Price,
		RestaurantID: dish.RestaurantID,
	}
	if err := s.store.SetItem(ctx, userID, line); err != nil {
		return nil, err
	}

	return s.Get(ctx, userID)
}

// Get returns the cart with a display subtotal. An empty cart is shown as
// zero; only checkout refuses it.
func (s *CartService) Get(ctx context.Context, userID int) (*domain.Cart, error) {
	items, err := s.store.GetItems(ctx, userID)
	if err != nil {
		return nil, err
	}

	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	if items == nil {
		items = []domain.CartItem{}
	}
	return &domain.Cart{Items: items, Subtotal: subtotal.Round(2)}, nil
}

func (s *CartService) Remove(ctx context.Context, userID, dishID int) error {
	return s.store.RemoveItem(ctx, userID, dishID)
}

var _ CartServiceInterface = (*CartService)(nil)
