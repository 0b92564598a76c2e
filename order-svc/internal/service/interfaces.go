package service

import (
	"context"

	"feastly/order-svc/internal/domain"

	"github.com/shopspring/decimal"
)

type OrderRepository interface {
	CreateOrder(order *domain.Order) error
	GetOrder(orderID int) (*domain.Order, error)
	ListOrders(filter domain.OrderFilter) ([]domain.Order, error)
	// UpdateOrderStatus applies a compare-and-set transition: the row is
	// updated only while its stored status still equals expected.
	// Returns domain.ErrConflict when the set was lost to another actor
	// and domain.ErrOrderNotFound when the order does not exist.
	UpdateOrderStatus(orderID int, expected, next domain.OrderStatus) error
	SaveQRCode(orderID int, qr []byte) error
	GetQRCode(orderID int) ([]byte, error)
}

type MenuRepository interface {
	CreateRestaurant(rest *domain.Restaurant) error
	GetRestaurant(id int) (*domain.Restaurant, error)
	ListRestaurants(pinCode string, activeOnly bool) ([]domain.Restaurant, error)
	UpdateRestaurant(rest *domain.Restaurant) error
	CreateDish(dish *domain.Dish) error
	GetDish(dishID int) (*domain.Dish, error)
	ListDishes(restaurantID int) ([]domain.Dish, error)
	UpdateDish(dish *domain.Dish) error
	DeleteDish(restaurantID, dishID int) (int64, error)
}

type OfferRepository interface {
	// GetOfferByCode looks up a normalized code. Unknown codes return
	// (nil, nil); storage errors are returned as errors.
	GetOfferByCode(code string) (*domain.Offer, error)
	CreateOffer(offer *domain.Offer) error
	ListOffers(scope domain.OfferScope, restaurantID int) ([]domain.Offer, error)
	ActivePlatformFee() (*domain.PlatformFee, error)
	CreatePlatformFee(fee *domain.PlatformFee) error
	ListPlatformFees() ([]domain.PlatformFee, error)
}

type PartnerRepository interface {
	FindAvailablePartner(pinCode string) (*domain.DeliveryPartner, error)
	GetPartner(id int) (*domain.DeliveryPartner, error)
	SetAvailability(partnerID int, available bool) error
}

type ComplaintRepository interface {
	CreateComplaint(c *domain.Complaint) error
	GetComplaint(id int) (*domain.Complaint, error)
	ListComplaints(status domain.ComplaintStatus, userID int) ([]domain.Complaint, error)
	UpdateComplaint(id int, status domain.ComplaintStatus, notes string) error
}

type CartStore interface {
	GetItems(ctx context.Context, userID int) ([]domain.CartItem, error)
	SetItem(ctx context.Context, userID int, item domain.CartItem) error
	RemoveItem(ctx context.Context, userID, dishID int) error
	Clear(ctx context.Context, userID int) error
}

type OrderEventPublisher interface {
	PublishOrderEvent(ctx context.Context, evt domain.OrderEvent) error
}

type QRGenerator interface {
	Generate(orderID int) ([]byte, error)
}

type PricingEngineInterface interface {
	ComputeTotal(items []domain.CartItem, offer *domain.Offer) (*domain.PricingBreakdown, error)
	ValidateOffer(offer *domain.Offer, orderAmount decimal.Decimal, restaurantID int) domain.OfferValidation
}

type CartServiceInterface interface {
	Add(ctx context.Context, userID, dishID, quantity int) (*domain.Cart, error)
	Get(ctx context.Context, userID int) (*domain.Cart, error)
	Remove(ctx context.Context, userID, dishID int) error
}

type OrderServiceInterface interface {
	PlaceOrder(ctx context.Context, customerID int, req PlaceOrderRequest) (*domain.Order, error)
	Get(orderID int, actor domain.Actor) (*domain.Order, error)
	List(actor domain.Actor, statuses []domain.OrderStatus) ([]domain.Order, error)
	TransitionStatus(ctx context.Context, orderID int, expected, next domain.OrderStatus, actor domain.Actor) (*domain.Order, error)
	QRCode(orderID int) ([]byte, error)
}

type OfferServiceInterface interface {
	Validate(code string, orderAmount decimal.Decimal, restaurantID int) (*domain.OfferValidation, error)
	CreateOffer(offer *domain.Offer) error
	ListOffers(scope domain.OfferScope, restaurantID int) ([]domain.Offer, error)
	CreatePlatformFee(fee *domain.PlatformFee) error
	ListPlatformFees() ([]domain.PlatformFee, error)
}

type MenuServiceInterface interface {
	BrowseRestaurants(pinCode string, actor domain.Actor) ([]domain.Restaurant, error)
	Menu(restaurantID int) (*domain.Restaurant, []domain.Dish, error)
	OnboardRestaurant(rest *domain.Restaurant) error
	UpdateRestaurant(rest *domain.Restaurant) error
	CreateDish(dish *domain.Dish) error
	ListDishes(restaurantID int) ([]domain.Dish, error)
	UpdateDish(dish *domain.Dish) error
	DeleteDish(restaurantID, dishID int) error
}

type ComplaintServiceInterface interface {
	Create(orderID, userID int, description string) (*domain.Complaint, error)
	ListForUser(userID int) ([]domain.Complaint, error)
	ListAll(status domain.ComplaintStatus) ([]domain.Complaint, error)
	Update(id int, status domain.ComplaintStatus, notes string) error
}

type PartnerServiceInterface interface {
	SetAvailability(partnerID int, available bool) error
}
