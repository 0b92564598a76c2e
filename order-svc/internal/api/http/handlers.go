package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"feastly/order-svc/internal/domain"
	"feastly/order-svc/internal/service"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
)

type Handler struct {
	Carts      service.CartServiceInterface
	Orders     service.OrderServiceInterface
	Offers     service.OfferServiceInterface
	Menu       service.MenuServiceInterface
	Complaints service.ComplaintServiceInterface
	Partners   service.PartnerServiceInterface
}

func NewHandler(
	carts service.CartServiceInterface,
	orders service.OrderServiceInterface,
	offers service.OfferServiceInterface,
	menu service.MenuServiceInterface,
	complaints service.ComplaintServiceInterface,
	partners service.PartnerServiceInterface,
) *Handler {
	return &Handler{
		Carts:      carts,
		Orders:     orders,
		Offers:     offers,
		Menu:       menu,
		Complaints: complaints,
		Partners:   partners,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	// customer
	r.HandleFunc("/api/restaurants", h.browseRestaurants).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}/menu", h.getMenu).Methods("GET")
	r.HandleFunc("/api/cart", h.addToCart).Methods("POST")
	r.HandleFunc("/api/cart", h.getCart).Methods("GET")
	r.HandleFunc("/api/cart/{dishId}", h.removeFromCart).Methods("DELETE")
	r.HandleFunc("/api/offers/validate", h.validateOffer).Methods("POST")
	r.HandleFunc("/api/orders", h.placeOrder).Methods("POST")
	r.HandleFunc("/api/orders", h.listOrders).Methods("GET")
	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")
	r.HandleFunc("/api/complaints", h.createComplaint).Methods("POST")
	r.HandleFunc("/api/complaints", h.listComplaints).Methods("GET")

	// one transition endpoint for every role
	r.HandleFunc("/api/orders/{id}/status", h.updateOrderStatus).Methods("PUT")

	// restaurant
	r.HandleFunc("/api/restaurant/dishes", h.createDish).Methods("POST")
	r.HandleFunc("/api/restaurant/dishes", h.listOwnDishes).Methods("GET")
	r.HandleFunc("/api/restaurant/dishes/{dishId}", h.updateDish).Methods("PUT")
	r.HandleFunc("/api/restaurant/dishes/{dishId}", h.deleteDish).Methods("DELETE")
	r.HandleFunc("/api/restaurant/orders", h.listOrders).Methods("GET")
	r.HandleFunc("/api/restaurant/offers", h.createRestaurantOffer).Methods("POST")

	// delivery partner
	r.HandleFunc("/api/delivery/availability", h.setAvailability).Methods("PUT")
	r.HandleFunc("/api/delivery/orders", h.listOrders).Methods("GET")

	// admin
	r.HandleFunc("/api/admin/restaurants", h.onboardRestaurant).Methods("POST")
	r.HandleFunc("/api/admin/restaurants", h.browseRestaurants).Methods("GET")
	r.HandleFunc("/api/admin/restaurants/{id}", h.updateRestaurant).Methods("PUT")
	r.HandleFunc("/api/admin/platform-fees", h.createPlatformFee).Methods("POST")
	r.HandleFunc("/api/admin/platform-fees", h.listPlatformFees).Methods("GET")
	r.HandleFunc("/api/admin/offers", h.createPlatformOffer).Methods("POST")
	r.HandleFunc("/api/admin/offers", h.listPlatformOffers).Methods("GET")

	// support
	r.HandleFunc("/api/support/complaints", h.listAllComplaints).Methods("GET")
	r.HandleFunc("/api/support/complaints/{id}", h.updateComplaint).Methods("PUT")
	r.HandleFunc("/api/support/orders/{id}", h.getOrder).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "order-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// actorFromRequest reads the identity the auth layer in front of us
// establishes. The gateway forwards these headers verbatim.
func actorFromRequest(r *http.Request) (domain.Actor, bool) {
	id, err := strconv.Atoi(r.Header.Get("X-User-ID"))
	role := domain.Role(r.Header.Get("X-User-Role"))
	if err != nil || id <= 0 || role == "" {
		return domain.Actor{}, false
	}
	return domain.Actor{ID: id, Role: role}, true
}

func (h *Handler) requireActor(w http.ResponseWriter, r *http.Request, roles ...domain.Role) (domain.Actor, bool) {
	actor, ok := actorFromRequest(r)
	if !ok {
		http.Error(w, "missing actor identity", http.StatusUnauthorized)
		return domain.Actor{}, false
	}
	if len(roles) == 0 {
		return actor, true
	}
	for _, role := range roles {
		if actor.Role == role {
			return actor, true
		}
	}
	http.Error(w, "role not allowed", http.StatusForbidden)
	return domain.Actor{}, false
}

func writeJSON(w http.ResponseWriter, code int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(body)
}

// writeServiceError maps the error taxonomy onto HTTP statuses in one
// place so every endpoint reports failures identically.
func writeServiceError(w http.ResponseWriter, err error) {
	var transitionErr *domain.InvalidTransitionError
	switch {
	case errors.As(err, &transitionErr):
		code := http.StatusBadRequest
		if transitionErr.WrongActor {
			code = http.StatusForbidden
		}
		http.Error(w, transitionErr.Error(), code)
	case errors.Is(err, domain.ErrConflict):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, domain.ErrOfferCodeTaken):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, domain.ErrNotAssigned), errors.Is(err, domain.ErrForbidden):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, domain.ErrOrderNotFound),
		errors.Is(err, domain.ErrDishNotFound),
		errors.Is(err, domain.ErrRestaurantNotFound),
		errors.Is(err, domain.ErrComplaintNotFound),
		errors.Is(err, domain.ErrItemNotInCart):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, domain.ErrEmptyCart),
		errors.Is(err, domain.ErrMixedRestaurants),
		errors.Is(err, domain.ErrInvalidOffer),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrInvalidPaymentMode),
		errors.Is(err, domain.ErrInvalidDiscount),
		errors.Is(err, domain.ErrDishUnavailable),
		errors.Is(err, domain.ErrRestaurantInactive):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) browseRestaurants(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.requireActor(w, r)
	if !ok {
		return
	}

	restaurants, err := h.Menu.BrowseRestaurants(r.URL.Query().Get("pin_code"), actor)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"restaurants": restaurants})
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["id"])

	restaurant, dishes, err := h.Menu.Menu(restaurantID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"restaurant": restaurant,
		"dishes":     dishes,
	})
}

func (h *Handler) addToCart(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.requireActor(w, r, domain.RoleCustomer)
	if !ok {
		return
	}

	var payload struct {
		DishID   int `json:"dish_id"`
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	cart, err := h.Carts.Add(r.Context(), actor.ID, payload.DishID, payload.Quantity)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cart)
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.requireActor(w, r, domain.RoleCustomer)
	if !ok {
		return
	}

	cart, err := h.Carts.Get(r.Context(), actor.ID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cart)
}

func (h *Handler) removeFromCart(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.requireActor(w, r, domain.RoleCustomer)
	if !ok {
		return
	}

	dishID, _ := strconv.Atoi(mux.Vars(r)["dishId"])
	if err := h.Carts.Remove(r.Context(), actor.ID, dishID); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "item removed from cart"})
}

func (h *Handler) validateOffer(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireActor(w, r, domain.RoleCustomer); !ok {
		return
	}

	var payload struct {
		OfferCode    string          `json:"offer_code"`
		OrderAmount  decimal.Decimal `json:"order_amount"`
		RestaurantID int             `json:"restaurant_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.Offers.Validate(payload.OfferCode, payload.OrderAmount, payload.RestaurantID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.requireActor(w, r, domain.RoleCustomer)
	if !ok {
		return
	}

	var req service.PlaceOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	order, err := h.Orders.PlaceOrder(r.Context(), actor.ID, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.requireActor(w, r)
	if !ok {
		return
	}

	var statuses []domain.OrderStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		status := domain.OrderStatus(raw)
		if !status.Valid() {
			http.Error(w, "unknown status filter", http.StatusBadRequest)
			return
		}
		statuses = append(statuses, status)
	}

	orders, err := h.Orders.List(actor, statuses)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"orders": orders})
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.requireActor(w, r)
	if !ok {
		return
	}

	orderID, _ := strconv.Atoi(mux.Vars(r)["id"])
	order, err := h.Orders.Get(orderID, actor)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	orderID, _ := strconv.Atoi(mux.Vars(r)["id"])

	qr, err := h.Orders.QRCode(orderID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qr)
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.requireActor(w, r)
	if !ok {
		return
	}

	orderID, _ := strconv.Atoi(mux.Vars(r)["id"])

	var payload struct {
		ExpectedStatus domain.OrderStatus `json:"expected_status"`
		Status         domain.OrderStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	order, err := h.Orders.TransitionStatus(r.Context(), orderID, payload.ExpectedStatus, payload.Status, actor)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) createDish(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.requireActor(w, r, domain.RoleRestaurant)
	if !ok {
		return
	}

	var dish domain.Dish
	if err := json.NewDecoder(r.Body).Decode(&dish); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	dish.RestaurantID = actor.ID
	if err := h.Menu.CreateDish(&dish); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, dish)
}

func (h *Handler) listOwnDishes(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.requireActor(w, r, domain.RoleRestaurant)
	if !ok {
		return
	}

	dishes, err := h.Menu.ListDishes(actor.ID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"dishes": dishes})
}

func (h *Handler) updateDish(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.requireActor(w, r, domain.RoleRestaurant)
	if !ok {
		return
	}

	var dish domain.Dish
	if err := json.NewDecoder(r.Body).Decode(&dish); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	dish.ID, _ = strconv.Atoi(mux.Vars(r)["dishId"])
	dish.RestaurantID = actor.ID
	if err := h.Menu.UpdateDish(&dish); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dish)
}

func (h *Handler) deleteDish(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.requireActor(w, r, domain.RoleRestaurant)
	if !ok {
		return
	}

	dishID, _ := strconv.Atoi(mux.Vars(r)["dishId"])
	if err := h.Menu.DeleteDish(actor.ID, dishID); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) createRestaurantOffer(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.requireActor(w, r, domain.RoleRestaurant)
	if !ok {
		return
	}

	var offer domain.Offer
	if err := json.NewDecoder(r.Body).Decode(&offer); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	offer.Scope = domain.OfferRestaurant
	offer.RestaurantID = actor.ID
	if err := h.Offers.CreateOffer(&offer); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, offer)
}

func (h *Handler) setAvailability(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.requireActor(w, r, domain.RoleDeliveryPartner)
	if !ok {
		return
	}

	var payload struct {
		Availability bool `json:"availability"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Partners.SetAvailability(actor.ID, payload.Availability); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"availability": payload.Availability})
}

func (h *Handler) onboardRestaurant(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireActor(w, r, domain.RoleAdmin); !ok {
		return
	}

	var rest domain.Restaurant
	if err := json.NewDecoder(r.Body).Decode(&rest); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Menu.OnboardRestaurant(&rest); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rest)
}

func (h *Handler) updateRestaurant(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireActor(w, r, domain.RoleAdmin); !ok {
		return
	}

	var rest domain.Restaurant
	if err := json.NewDecoder(r.Body).Decode(&rest); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rest.ID, _ = strconv.Atoi(mux.Vars(r)["id"])
	if err := h.Menu.UpdateRestaurant(&rest); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "restaurant updated"})
}

func (h *Handler) createPlatformFee(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireActor(w, r, domain.RoleAdmin); !ok {
		return
	}

	var fee domain.PlatformFee
	if err := json.NewDecoder(r.Body).Decode(&fee); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Offers.CreatePlatformFee(&fee); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, fee)
}

func (h *Handler) listPlatformFees(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireActor(w, r, domain.RoleAdmin); !ok {
		return
	}

	fees, err := h.Offers.ListPlatformFees()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"fees": fees})
}

func (h *Handler) createPlatformOffer(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireActor(w, r, domain.RoleAdmin); !ok {
		return
	}

	var offer domain.Offer
	if err := json.NewDecoder(r.Body).Decode(&offer); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	offer.Scope = domain.OfferPlatform
	offer.RestaurantID = 0
	if err := h.Offers.CreateOffer(&offer); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, offer)
}

func (h *Handler) listPlatformOffers(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireActor(w, r, domain.RoleAdmin); !ok {
		return
	}

	offers, err := h.Offers.ListOffers(domain.OfferPlatform, 0)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"offers": offers})
}

func (h *Handler) createComplaint(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.requireActor(w, r, domain.RoleCustomer)
	if !ok {
		return
	}

	var payload struct {
		OrderID     int    `json:"order_id"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	complaint, err := h.Complaints.Create(payload.OrderID, actor.ID, payload.Description)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, complaint)
}

func (h *Handler) listComplaints(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.requireActor(w, r, domain.RoleCustomer)
	if !ok {
		return
	}

	complaints, err := h.Complaints.ListForUser(actor.ID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"complaints": complaints})
}

func (h *Handler) listAllComplaints(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireActor(w, r, domain.RoleSupport); !ok {
		return
	}

	complaints, err := h.Complaints.ListAll(domain.ComplaintStatus(r.URL.Query().Get("status")))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"complaints": complaints})
}

func (h *Handler) updateComplaint(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireActor(w, r, domain.RoleSupport); !ok {
		return
	}

	complaintID, _ := strconv.Atoi(mux.Vars(r)["id"])

	var payload struct {
		Status          domain.ComplaintStatus `json:"status"`
		ResolutionNotes string                 `json:"resolution_notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Complaints.Update(complaintID, payload.Status, payload.ResolutionNotes); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "complaint updated"})
}
