package domain

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusPickedUp  OrderStatus = "picked_up"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

// OrderStatuses lists every status in lifecycle order.
var OrderStatuses = []OrderStatus{
	StatusPending, StatusConfirmed, StatusPreparing, StatusReady,
	StatusPickedUp, StatusDelivered, StatusCancelled,
}

func (s OrderStatus) Valid() bool {
	for _, known := range OrderStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Terminal statuses admit no further transitions, by anyone.
func (s OrderStatus) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

type transitionKey struct {
	from OrderStatus
	to   OrderStatus
}

// transitions is the single authoritative table of legal status changes and
// the one role allowed to perform each. The restaurant dashboard, the
// delivery dashboard and the customer tracker all observe this same machine;
// keeping one table here is what stops their rules from drifting apart.
var transitions = map[transitionKey]Role{
	{StatusPending, StatusConfirmed}:   RoleRestaurant,
	{StatusPending, StatusCancelled}:   RoleRestaurant,
	{StatusConfirmed, StatusPreparing}: RoleRestaurant,
	{StatusConfirmed, StatusCancelled}: RoleRestaurant,
	{StatusPreparing, StatusReady}:     RoleRestaurant,
	{StatusReady, StatusPickedUp}:      RoleDeliveryPartner,
	{StatusPickedUp, StatusDelivered}:  RoleDeliveryPartner,
}

// CheckTransition reports whether role may move an order from one status to
// another. It is a pure function of its inputs. The returned
// *InvalidTransitionError distinguishes an illegal edge from a legal edge
// attempted by the wrong role.
func CheckTransition(from, to OrderStatus, role Role) error {
	allowed, ok := transitions[transitionKey{from, to}]
	if !ok {
		reason := "no such transition"
		if from.Terminal() {
			reason = string(from) + " is a terminal status"
		}
		return &InvalidTransitionError{From: from, To: to, Role: role, Reason: reason}
	}
	if role != allowed {
		return &InvalidTransitionError{
			From: from, To: to, Role: role, WrongActor: true,
			Reason: "only the " + string(allowed) + " may perform this transition",
		}
	}
	return nil
}

// NextStatuses lists where role can legally take an order currently in
// status from. Used by the dashboards to render action buttons.
func NextStatuses(from OrderStatus, role Role) []OrderStatus {
	var next []OrderStatus
	for _, to := range OrderStatuses {
		if transitions[transitionKey{from, to}] == role && role != "" {
			next = append(next, to)
		}
	}
	return next
}
