package tests

import (
	"testing"

	"feastly/order-svc/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestCheckTransition_AllowedEdges(t *testing.T) {
	tests := []struct {
		name string
		from domain.OrderStatus
		to   domain.OrderStatus
		role domain.Role
	}{
		{"restaurant_confirms", domain.StatusPending, domain.StatusConfirmed, domain.RoleRestaurant},
		{"restaurant_cancels_pending", domain.StatusPending, domain.StatusCancelled, domain.RoleRestaurant},
		{"restaurant_starts_preparing", domain.StatusConfirmed, domain.StatusPreparing, domain.RoleRestaurant},
		{"restaurant_cancels_confirmed", domain.StatusConfirmed, domain.StatusCancelled, domain.RoleRestaurant},
		{"restaurant_marks_ready", domain.StatusPreparing, domain.StatusReady, domain.RoleRestaurant},
		{"partner_picks_up", domain.StatusReady, domain.StatusPickedUp, domain.RoleDeliveryPartner},
		{"partner_delivers", domain.StatusPickedUp, domain.StatusDelivered, domain.RoleDeliveryPartner},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.NoError(t, domain.CheckTransition(testCase.from, testCase.to, testCase.role))
		})
	}
}

func TestCheckTransition_WrongActor(t *testing.T) {
	tests := []struct {
		name string
		from domain.OrderStatus
		to   domain.OrderStatus
		role domain.Role
	}{
		{"partner_cannot_confirm", domain.StatusPending, domain.StatusConfirmed, domain.RoleDeliveryPartner},
		{"customer_cannot_cancel", domain.StatusPending, domain.StatusCancelled, domain.RoleCustomer},
		{"restaurant_cannot_pick_up", domain.StatusReady, domain.StatusPickedUp, domain.RoleRestaurant},
		{"support_cannot_deliver", domain.StatusPickedUp, domain.StatusDelivered, domain.RoleSupport},
		{"admin_cannot_prepare", domain.StatusConfirmed, domain.StatusPreparing, domain.RoleAdmin},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			err := domain.CheckTransition(testCase.from, testCase.to, testCase.role)
			transitionErr, ok := err.(*domain.InvalidTransitionError)
			assert.True(t, ok)
			assert.True(t, transitionErr.WrongActor)
		})
	}
}

func TestCheckTransition_IllegalEdges(t *testing.T) {
	tests := []struct {
		name string
		from domain.OrderStatus
		to   domain.OrderStatus
		role domain.Role
	}{
		{"no_skipping_to_ready", domain.StatusPending, domain.StatusReady, domain.RoleRestaurant},
		{"no_skipping_to_delivered", domain.StatusPending, domain.StatusDelivered, domain.RoleDeliveryPartner},
		{"no_going_backwards", domain.StatusPreparing, domain.StatusConfirmed, domain.RoleRestaurant},
		{"no_cancel_after_preparing", domain.StatusPreparing, domain.StatusCancelled, domain.RoleRestaurant},
		{"no_cancel_after_pickup", domain.StatusPickedUp, domain.StatusCancelled, domain.RoleRestaurant},
		{"no_self_loop", domain.StatusPending, domain.StatusPending, domain.RoleRestaurant},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			err := domain.CheckTransition(testCase.from, testCase.to, testCase.role)
			transitionErr, ok := err.(*domain.InvalidTransitionError)
			assert.True(t, ok)
			assert.False(t, transitionErr.WrongActor)
		})
	}
}

func TestCheckTransition_TerminalStatesAreFinal(t *testing.T) {
	terminals := []domain.OrderStatus{domain.StatusDelivered, domain.StatusCancelled}
	roles := []domain.Role{
		domain.RoleCustomer, domain.RoleRestaurant, domain.RoleDeliveryPartner,
		domain.RoleAdmin, domain.RoleSupport,
	}

	for _, from := range terminals {
		for _, to := range domain.OrderStatuses {
			for _, role := range roles {
				err := domain.CheckTransition(from, to, role)
				assert.Error(t, err, "%s -> %s as %s must be rejected", from, to, role)
			}
		}
	}
}

func TestNextStatuses(t *testing.T) {
	assert.ElementsMatch(t,
		[]domain.OrderStatus{domain.StatusConfirmed, domain.StatusCancelled},
		domain.NextStatuses(domain.StatusPending, domain.RoleRestaurant))

	assert.ElementsMatch(t,
		[]domain.OrderStatus{domain.StatusPickedUp},
		domain.NextStatuses(domain.StatusReady, domain.RoleDeliveryPartner))

	assert.Empty(t, domain.NextStatuses(domain.StatusDelivered, domain.RoleRestaurant))
	assert.Empty(t, domain.NextStatuses(domain.StatusPending, domain.RoleCustomer))
}

func TestOrderStatus_Terminal(t *testing.T) {
	assert.True(t, domain.StatusDelivered.Terminal())
	assert.True(t, domain.StatusCancelled.Terminal())
	assert.False(t, domain.StatusPending.Terminal())
	assert.False(t, domain.StatusPickedUp.Terminal())
}
