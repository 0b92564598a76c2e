package tests

import (
	"context"
	"testing"

	"feastly/order-svc/internal/domain"
	"feastly/order-svc/internal/mocks"
	"feastly/order-svc/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type orderServiceMocks struct {
	orders    *mocks.OrderRepository
	menu      *mocks.MenuRepository
	offers    *mocks.OfferRepository
	partners  *mocks.PartnerRepository
	cart      *mocks.CartStore
	engine    *mocks.PricingEngineInterface
	publisher *mocks.OrderEventPublisher
	qr        *mocks.QRGenerator
}

func setupOrderService(t *testing.T) (*service.OrderService, *orderServiceMocks) {
	t.Helper()
	deps := &orderServiceMocks{
		orders:    mocks.NewOrderRepository(t),
		menu:      mocks.NewMenuRepository(t),
		offers:    mocks.NewOfferRepository(t),
		partners:  mocks.NewPartnerRepository(t),
		cart:      mocks.NewCartStore(t),
		engine:    mocks.NewPricingEngineInterface(t),
		publisher: mocks.NewOrderEventPublisher(t),
		qr:        mocks.NewQRGenerator(t),
	}
	svc := service.NewOrderService(
		deps.orders, deps.menu, deps.offers, deps.partners,
		deps.cart, deps.engine, deps.publisher, deps.qr,
	)
	return svc, deps
}

func TestOrderService_PlaceOrder(t *testing.T) {
	svc, deps := setupOrderService(t)
	ctx := context.Background()

	deps.menu.On("GetRestaurant", 10).
		Return(&domain.Restaurant{ID: 10, Name: "Spice Route", Status: "active"}, nil).Once()
	deps.menu.On("GetDish", 1).
		Return(&domain.Dish{ID: 1, Name: "Paneer Tikka", Price: decimal.NewFromInt(200), RestaurantID: 10, Available: true}, nil).Once()
	deps.engine.On("ComputeTotal", mock.Anything, (*domain.Offer)(nil)).
		Return(&domain.PricingBreakdown{
			Subtotal:       decimal.NewFromInt(400),
			DeliveryCharge: decimal.NewFromInt(40),
			PlatformFee:    decimal.NewFromInt(20),
			DiscountAmount: decimal.Zero,
			FinalAmount:    decimal.NewFromInt(460),
		}, nil).Once()
	deps.partners.On("FindAvailablePartner", "560001").
		Return(&domain.DeliveryPartner{ID: 55, Name: "Ravi"}, nil).Once()
	deps.orders.On("CreateOrder", mock.Anything).
		Run(func(args mock.Arguments) {
			args.Get(0).(*domain.Order).ID = 101
		}).Return(nil).Once()
	deps.cart.On("Clear", ctx, 7).Return(nil).Once()
	deps.qr.On("Generate", 101).Return([]byte("png"), nil).Once()
	deps.orders.On("SaveQRCode", 101, []byte("png")).Return(nil).Once()
	deps.publisher.On("PublishOrderEvent", ctx, mock.MatchedBy(func(evt domain.OrderEvent) bool {
		return evt.Type == domain.EventOrderPlaced && evt.OrderID == 101
	})).Return(nil).Once()

	order, err := svc.PlaceOrder(ctx, 7, service.PlaceOrderRequest{
		RestaurantID:    10,
		Items:           []service.PlaceOrderItem{{DishID: 1, Quantity: 2}},
		DeliveryAddress: "12 MG Road",
		DeliveryPinCode: "560001",
		PaymentMode:     domain.PaymentUPI,
	})

	assert.NoError(t, err)
	assert.Equal(t, 101, order.ID)
	assert.Equal(t, domain.StatusPending, order.Status)
	assert.Equal(t, 55, order.DeliveryPartnerID)
	assert.Equal(t, "460", order.FinalAmount.String())
	assert.Len(t, order.Items, 1)
	assert.Equal(t, "Paneer Tikka", order.Items[0].DishName)
	assert.Equal(t, "/api/orders/101/qrcode", order.QRCode)
}

func TestOrderService_PlaceOrder_Validation(t *testing.T) {
	tests := []struct {
		name          string
		request       service.PlaceOrderRequest
		prepareMocks  func(deps *orderServiceMocks)
		expectedError error
	}{
		{
			name:          "empty_items",
			request:       service.PlaceOrderRequest{RestaurantID: 10, PaymentMode: domain.PaymentCash},
			prepareMocks:  func(deps *orderServiceMocks) {},
			expectedError: domain.ErrEmptyCart,
		},
		{
			name: "bad_payment_mode",
			request: service.PlaceOrderRequest{
				RestaurantID: 10,
				Items:        []service.PlaceOrderItem{{DishID: 1, Quantity: 1}},
				PaymentMode:  "cheque",
			},
			prepareMocks:  func(deps *orderServiceMocks) {},
			expectedError: domain.ErrInvalidPaymentMode,
		},
		{
			name: "inactive_restaurant",
			request: service.PlaceOrderRequest{
				RestaurantID: 10,
				Items:        []service.PlaceOrderItem{{DishID: 1, Quantity: 1}},
				PaymentMode:  domain.PaymentCash,
			},
			prepareMocks: func(deps *orderServiceMocks) {
				deps.menu.On("GetRestaurant", 10).
					Return(&domain.Restaurant{ID: 10, Status: "inactive"}, nil).Once()
			},
			expectedError: domain.ErrRestaurantInactive,
		},
		{
			name: "dish_from_other_restaurant",
			request: service.PlaceOrderRequest{
				RestaurantID: 10,
				Items:        []service.PlaceOrderItem{{DishID: 9, Quantity: 1}},
				PaymentMode:  domain.PaymentCash,
			},
			prepareMocks: func(deps *orderServiceMocks) {
				deps.menu.On("GetRestaurant", 10).
					Return(&domain.Restaurant{ID: 10, Status: "active"}, nil).Once()
				deps.menu.On("GetDish", 9).
					Return(&domain.Dish{ID: 9, RestaurantID: 11, Available: true}, nil).Once()
			},
			expectedError: domain.ErrMixedRestaurants,
		},
		{
			name: "unknown_offer_code",
			request: service.PlaceOrderRequest{
				RestaurantID: 10,
				Items:        []service.PlaceOrderItem{{DishID: 1, Quantity: 1}},
				PaymentMode:  domain.PaymentCash,
				OfferCode:    "nope",
			},
			prepareMocks: func(deps *orderServiceMocks) {
				deps.menu.On("GetRestaurant", 10).
					Return(&domain.Restaurant{ID: 10, Status: "active"}, nil).Once()
				deps.menu.On("GetDish", 1).
					Return(&domain.Dish{ID: 1, Price: decimal.NewFromInt(100), RestaurantID: 10, Available: true}, nil).Once()
				deps.offers.On("GetOfferByCode", "NOPE").Return(nil, nil).Once()
			},
			expectedError: domain.ErrInvalidOffer,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			svc, deps := setupOrderService(t)
			testCase.prepareMocks(deps)
			_, err := svc.PlaceOrder(context.Background(), 7, testCase.request)
			assert.ErrorIs(t, err, testCase.expectedError)
		})
	}
}

func TestOrderService_TransitionStatus(t *testing.T) {
	pendingOrder := func() *domain.Order {
		return &domain.Order{
			ID: 101, CustomerID: 7, RestaurantID: 10,
			DeliveryPartnerID: 55, Status: domain.StatusPending,
		}
	}

	t.Run("restaurant_confirms_pending", func(t *testing.T) {
		svc, deps := setupOrderService(t)
		deps.orders.On("GetOrder", 101).Return(pendingOrder(), nil).Once()
		deps.orders.On("UpdateOrderStatus", 101, domain.StatusPending, domain.StatusConfirmed).
			Return(nil).Once()
		deps.publisher.On("PublishOrderEvent", mock.Anything, mock.MatchedBy(func(evt domain.OrderEvent) bool {
			return evt.Type == domain.EventStatusChanged && evt.Status == domain.StatusConfirmed
		})).Return(nil).Once()

		order, err := svc.TransitionStatus(context.Background(), 101,
			domain.StatusPending, domain.StatusConfirmed,
			domain.Actor{ID: 10, Role: domain.RoleRestaurant})
		assert.NoError(t, err)
		assert.Equal(t, domain.StatusConfirmed, order.Status)
	})

	t.Run("partner_cannot_confirm", func(t *testing.T) {
		svc, deps := setupOrderService(t)
		deps.orders.On("GetOrder", 101).Return(pendingOrder(), nil).Once()

		_, err := svc.TransitionStatus(context.Background(), 101,
			domain.StatusPending, domain.StatusConfirmed,
			domain.Actor{ID: 55, Role: domain.RoleDeliveryPartner})
		transitionErr, ok := err.(*domain.InvalidTransitionError)
		assert.True(t, ok)
		assert.True(t, transitionErr.WrongActor)
	})

	t.Run("pending_to_picked_up_is_illegal", func(t *testing.T) {
		svc, deps := setupOrderService(t)
		deps.orders.On("GetOrder", 101).Return(pendingOrder(), nil).Once()

		_, err := svc.TransitionStatus(context.Background(), 101,
			domain.StatusPending, domain.StatusPickedUp,
			domain.Actor{ID: 55, Role: domain.RoleDeliveryPartner})
		transitionErr, ok := err.(*domain.InvalidTransitionError)
		assert.True(t, ok)
		assert.False(t, transitionErr.WrongActor)
	})

	t.Run("stale_expected_status_conflicts", func(t *testing.T) {
		svc, deps := setupOrderService(t)
		confirmed := pendingOrder()
		confirmed.Status = domain.StatusConfirmed
		deps.orders.On("GetOrder", 101).Return(confirmed, nil).Once()

		_, err := svc.TransitionStatus(context.Background(), 101,
			domain.StatusPending, domain.StatusConfirmed,
			domain.Actor{ID: 10, Role: domain.RoleRestaurant})
		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("lost_compare_and_set_surfaces_conflict", func(t *testing.T) {
		svc, deps := setupOrderService(t)
		deps.orders.On("GetOrder", 101).Return(pendingOrder(), nil).Once()
		deps.orders.On("UpdateOrderStatus", 101, domain.StatusPending, domain.StatusConfirmed).
			Return(domain.ErrConflict).Once()

		_, err := svc.TransitionStatus(context.Background(), 101,
			domain.StatusPending, domain.StatusConfirmed,
			domain.Actor{ID: 10, Role: domain.RoleRestaurant})
		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("unassigned_partner_rejected", func(t *testing.T) {
		svc, deps := setupOrderService(t)
		ready := pendingOrder()
		ready.Status = domain.StatusReady
		deps.orders.On("GetOrder", 101).Return(ready, nil).Once()

		// Partner 56 tries to pick up an order assigned to partner 55.
		_, err := svc.TransitionStatus(context.Background(), 101,
			domain.StatusReady, domain.StatusPickedUp,
			domain.Actor{ID: 56, Role: domain.RoleDeliveryPartner})
		assert.ErrorIs(t, err, domain.ErrNotAssigned)
	})

	t.Run("other_restaurant_forbidden", func(t *testing.T) {
		svc, deps := setupOrderService(t)
		deps.orders.On("GetOrder", 101).Return(pendingOrder(), nil).Once()

		_, err := svc.TransitionStatus(context.Background(), 101,
			domain.StatusPending, domain.StatusConfirmed,
			domain.Actor{ID: 11, Role: domain.RoleRestaurant})
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("delivered_sets_timestamp", func(t *testing.T) {
		svc, deps := setupOrderService(t)
		pickedUp := pendingOrder()
		pickedUp.Status = domain.StatusPickedUp
		deps.orders.On("GetOrder", 101).Return(pickedUp, nil).Once()
		deps.orders.On("UpdateOrderStatus", 101, domain.StatusPickedUp, domain.StatusDelivered).
			Return(nil).Once()
		deps.publisher.On("PublishOrderEvent", mock.Anything, mock.Anything).Return(nil).Once()

		order, err := svc.TransitionStatus(context.Background(), 101,
			domain.StatusPickedUp, domain.StatusDelivered,
			domain.Actor{ID: 55, Role: domain.RoleDeliveryPartner})
		assert.NoError(t, err)
		assert.Equal(t, domain.StatusDelivered, order.Status)
		assert.NotNil(t, order.DeliveredAt)
	})

	t.Run("unknown_status_rejected", func(t *testing.T) {
		svc, _ := setupOrderService(t)
		_, err := svc.TransitionStatus(context.Background(), 101,
			"limbo", domain.StatusConfirmed,
			domain.Actor{ID: 10, Role: domain.RoleRestaurant})
		var transitionErr *domain.InvalidTransitionError
		assert.ErrorAs(t, err, &transitionErr)
	})
}

func TestOrderService_Get_Scoping(t *testing.T) {
	order := &domain.Order{
		ID: 101, CustomerID: 7, RestaurantID: 10,
		DeliveryPartnerID: 55, Status: domain.StatusConfirmed,
	}

	tests := []struct {
		name          string
		actor         domain.Actor
		expectedError error
	}{
		{"owning_customer", domain.Actor{ID: 7, Role: domain.RoleCustomer}, nil},
		{"other_customer", domain.Actor{ID: 8, Role: domain.RoleCustomer}, domain.ErrForbidden},
		{"owning_restaurant", domain.Actor{ID: 10, Role: domain.RoleRestaurant}, nil},
		{"other_restaurant", domain.Actor{ID: 11, Role: domain.RoleRestaurant}, domain.ErrForbidden},
		{"assigned_partner", domain.Actor{ID: 55, Role: domain.RoleDeliveryPartner}, nil},
		{"other_partner", domain.Actor{ID: 56, Role: domain.RoleDeliveryPartner}, domain.ErrForbidden},
		{"support", domain.Actor{ID: 1, Role: domain.RoleSupport}, nil},
		{"admin", domain.Actor{ID: 1, Role: domain.RoleAdmin}, nil},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			svc, deps := setupOrderService(t)
			deps.orders.On("GetOrder", 101).Return(order, nil).Once()

			got, err := svc.Get(101, testCase.actor)
			if testCase.expectedError != nil {
				assert.ErrorIs(t, err, testCase.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, order, got)
		})
	}
}

func TestOrderService_List_ScopesByRole(t *testing.T) {
	t.Run("customer_scoped_to_own_orders", func(t *testing.T) {
		svc, deps := setupOrderService(t)
		deps.orders.On("ListOrders", domain.OrderFilter{CustomerID: 7}).
			Return([]domain.Order{{ID: 101}}, nil).Once()

		orders, err := svc.List(domain.Actor{ID: 7, Role: domain.RoleCustomer}, nil)
		assert.NoError(t, err)
		assert.Len(t, orders, 1)
	})

	t.Run("partner_defaults_to_handoff_window", func(t *testing.T) {
		svc, deps := setupOrderService(t)
		deps.orders.On("ListOrders", domain.OrderFilter{
			DeliveryPartnerID: 55,
			Statuses:          []domain.OrderStatus{domain.StatusReady, domain.StatusPickedUp},
		}).Return([]domain.Order{}, nil).Once()

		_, err := svc.List(domain.Actor{ID: 55, Role: domain.RoleDeliveryPartner}, nil)
		assert.NoError(t, err)
	})

	t.Run("support_unscoped", func(t *testing.T) {
		svc, deps := setupOrderService(t)
		deps.orders.On("ListOrders", domain.OrderFilter{}).
			Return([]domain.Order{{ID: 101}, {ID: 102}}, nil).Once()

		orders, err := svc.List(domain.Actor{ID: 1, Role: domain.RoleSupport}, nil)
		assert.NoError(t, err)
		assert.Len(t, orders, 2)
	})
}
