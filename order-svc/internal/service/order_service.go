package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"feastly/order-svc/internal/domain"

	"github.com/google/uuid"
)

// PlaceOrderRequest carries everything checkout needs. Items reference
// dishes by id; names and unit prices are re-read from the menu so the
// client can never dictate its own prices.
type PlaceOrderRequest struct {
	RestaurantID    int                `json:"restaurant_id"`
	Items           []PlaceOrderItem   `json:"items"`
	DeliveryAddress string             `json:"delivery_address"`
	DeliveryPinCode string             `json:"delivery_pin_code"`
	PaymentMode     domain.PaymentMode `json:"payment_mode"`
	OfferCode       string             `json:"offer_code,omitempty"`
}

type PlaceOrderItem struct {
	DishID   int `json:"dish_id"`
	Quantity int `json:"quantity"`
}

type OrderService struct {
	orders    OrderRepository
	menu      MenuRepository
	offers    OfferRepository
	partners  PartnerRepository
	cart      CartStore
	engine    PricingEngineInterface
	publisher OrderEventPublisher
	qr        QRGenerator
}

func NewOrderService(
	orders OrderRepository,
	menu MenuRepository,
	offers OfferRepository,
	partners PartnerRepository,
	cart CartStore,
	engine PricingEngineInterface,
	publisher OrderEventPublisher,
	qr QRGenerator,
) *OrderService {
	return &OrderService{
		orders:    orders,
		menu:      menu,
		offers:    offers,
		partners:  partners,
		cart:      cart,
		engine:    engine,
		publisher: publisher,
		qr:        qr,
	}
}

// PlaceOrder creates an order in status pending with the item and pricing
// snapshot fixed at this moment. The snapshot never changes afterwards,
// whatever happens to the menu or the offer.
func (s *OrderService) PlaceOrder(ctx context.Context, customerID int, req PlaceOrderRequest) (*domain.Order, error) {
	if len(req.Items) == 0 {
		return nil, domain.ErrEmptyCart
	}
	if !req.PaymentMode.Valid() {
		return nil, domain.ErrInvalidPaymentMode
	}

	restaurant, err := s.menu.GetRestaurant(req.RestaurantID)
	if err != nil {
		return nil, err
	}
	if restaurant.Status != "active" {
		return nil, domain.ErrRestaurantInactive
	}

	snapshot := make([]domain.OrderItem, 0, len(req.Items))
	cartItems := make([]domain.CartItem, 0, len(req.Items))
	for _, reqItem := range req.Items {
		dish, err := s.menu.GetDish(reqItem.DishID)
		if err != nil {
			return nil, err
		}
		if dish.RestaurantID != req.RestaurantID {
			return nil, domain.ErrMixedRestaurants
		}
		if !dish.Available {
			return nil, fmt.Errorf("%w: %s", domain.ErrDishUnavailable, dish.Name)
		}
		snapshot = append(snapshot, domain.OrderItem{
			DishID:    dish.ID,
			DishName:  dish.Name,
			Quantity:  reqItem.Quantity,
			UnitPrice: dish.Price,
		})
		cartItems = append(cartItems, domain.CartItem{
			DishID:       dish.ID,
			Quantity:     reqItem.Quantity,
			UnitPrice:    dish.Price,
			RestaurantID: dish.RestaurantID,
		})
	}

	var offer *domain.Offer
	offerCode := ""
	if req.OfferCode != "" {
		offerCode = domain.NormalizeOfferCode(req.OfferCode)
		offer, err = s.offers.GetOfferByCode(offerCode)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve offer: %w", err)
		}
		if offer == nil {
			return nil, fmt.Errorf("%w: unknown code %q", domain.ErrInvalidOffer, offerCode)
		}
	}

	breakdown, err := s.engine.ComputeTotal(cartItems, offer)
	if err != nil {
		return nil, err
	}

	order := &domain.Order{
		CustomerID:      customerID,
		RestaurantID:    req.RestaurantID,
		Items:           snapshot,
		Subtotal:        breakdown.Subtotal,
		DeliveryCharge:  breakdown.DeliveryCharge,
		PlatformFee:     breakdown.PlatformFee,
		DiscountAmount:  breakdown.DiscountAmount,
		FinalAmount:     breakdown.FinalAmount,
		OfferCode:       offerCode,
		PaymentMode:     req.PaymentMode,
		Status:          domain.StatusPending,
		DeliveryAddress: req.DeliveryAddress,
		DeliveryPinCode: req.DeliveryPinCode,
	}

	// Pre-assign an available partner in the delivery area when one
	// exists. The order still enters the machine at pending; assignment
	// only matters once the restaurant marks it ready.
	if partner, err := s.partners.FindAvailablePartner(req.DeliveryPinCode); err == nil && partner != nil {
		order.DeliveryPartnerID = partner.ID
	}

	if err := s.orders.CreateOrder(order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if err := s.cart.Clear(ctx, customerID); err != nil {
		log.Printf("[order-svc] failed to clear cart for user %d: %v", customerID, err)
	}

	if s.qr != nil {
		if qr, err := s.qr.Generate(order.ID); err == nil {
			_ = s.orders.SaveQRCode(order.ID, qr)
		}
	}
	order.QRCode = fmt.Sprintf("/api/orders/%d/qrcode", order.ID)

	s.publish(ctx, domain.EventOrderPlaced, order)

	return order, nil
}

// Get enforces read scoping: the order's customer, its restaurant, its
// assigned partner, and support may see it. Reads never mutate.
func (s *OrderService) Get(orderID int, actor domain.Actor) (*domain.Order, error) {
	order, err := s.orders.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	if !canRead(order, actor) {
		return nil, domain.ErrForbidden
	}
	return order, nil
}

func canRead(order *domain.Order, actor domain.Actor) bool {
	switch actor.Role {
	case domain.RoleCustomer:
		return order.CustomerID == actor.ID
	case domain.RoleRestaurant:
		return order.RestaurantID == actor.ID
	case domain.RoleDeliveryPartner:
		return order.DeliveryPartnerID == actor.ID
	case domain.RoleSupport, domain.RoleAdmin:
		return true
	}
	return false
}

func (s *OrderService) List(actor domain.Actor, statuses []domain.OrderStatus) ([]domain.Order, error) {
	filter := domain.OrderFilter{Statuses: statuses}
	switch actor.Role {
	case domain.RoleCustomer:
		filter.CustomerID = actor.ID
	case domain.RoleRestaurant:
		filter.RestaurantID = actor.ID
	case domain.RoleDeliveryPartner:
		filter.DeliveryPartnerID = actor.ID
		if len(statuses) == 0 {
			// Partners care about the handoff window by default.
			filter.Statuses = []domain.OrderStatus{domain.StatusReady, domain.StatusPickedUp}
		}
	case domain.RoleSupport, domain.RoleAdmin:
		// unscoped
	default:
		return nil, domain.ErrForbidden
	}
	return s.orders.ListOrders(filter)
}

// TransitionStatus drives the lifecycle state machine. The caller states
// the status it believes the order is in; if the store no longer agrees the
// request fails with ErrConflict instead of overwriting another actor's
// transition. Nothing is partially applied: the event is only published
// after the compare-and-set commits.
func (s *OrderService) TransitionStatus(ctx context.Context, orderID int, expected, next domain.OrderStatus, actor domain.Actor) (*domain.Order, error) {
	if !expected.Valid() || !next.Valid() {
		return nil, &domain.InvalidTransitionError{From: expected, To: next, Role: actor.Role, Reason: "unknown status"}
	}

	order, err := s.orders.GetOrder(orderID)
	if err != nil {
		return nil, err
	}

	if order.Status != expected {
		return nil, domain.ErrConflict
	}

	if err := domain.CheckTransition(expected, next, actor.Role); err != nil {
		return nil, err
	}

	switch actor.Role {
	case domain.RoleRestaurant:
		if order.RestaurantID != actor.ID {
			return nil, domain.ErrForbidden
		}
	case domain.RoleDeliveryPartner:
		if order.DeliveryPartnerID != actor.ID {
			return nil, domain.ErrNotAssigned
		}
	}

	if err := s.orders.UpdateOrderStatus(orderID, expected, next); err != nil {
		return nil, err
	}

	order.Status = next
	if next == domain.StatusDelivered {
		now := time.Now()
		order.DeliveredAt = &now
	}

	s.publish(ctx, domain.EventStatusChanged, order)

	return order, nil
}

func (s *OrderService) QRCode(orderID int) ([]byte, error) {
	qr, err := s.orders.GetQRCode(orderID)
	if err != nil {
		return nil, err
	}
	if len(qr) == 0 && s.qr != nil {
		if regenerated, err := s.qr.Generate(orderID); err == nil {
			_ = s.orders.SaveQRCode(orderID, regenerated)
			return regenerated, nil
		}
	}
	return qr, nil
}

func (s *OrderService) publish(ctx context.Context, eventType string, order *domain.Order) {
	if s.publisher == nil {
		return
	}
	err := s.publisher.PublishOrderEvent(ctx, domain.OrderEvent{
		EventID:      uuid.NewString(),
		Type:         eventType,
		OrderID:      order.ID,
		RestaurantID: order.RestaurantID,
		CustomerID:   order.CustomerID,
		Status:       order.Status,
		Timestamp:    time.Now(),
	})
	if err != nil {
		log.Printf("[order-svc] failed to publish %s for order %d: %v", eventType, order.ID, err)
	}
}

var _ OrderServiceInterface = (*OrderService)(nil)
