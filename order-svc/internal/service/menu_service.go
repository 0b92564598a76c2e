package service

import (
	"errors"

	"feastly/order-svc/internal/domain"
)

type MenuService struct {
	repo MenuRepository
}

func NewMenuService(repo MenuRepository) *MenuService {
	return &MenuService{repo: repo}
}

// BrowseRestaurants lists restaurants for the given actor. Customers only
// see active ones; admins see everything.
func (s *MenuService) BrowseRestaurants(pinCode string, actor domain.Actor) ([]domain.Restaurant, error) {
	activeOnly := actor.Role != domain.RoleAdmin
	return s.repo.ListRestaurants(pinCode, activeOnly)
}

func (s *MenuService) Menu(restaurantID int) (*domain.Restaurant, []domain.Dish, error) {
	restaurant, err := s.repo.GetRestaurant(restaurantID)
	if err != nil {
		return nil, nil, err
	}
	dishes, err := s.repo.ListDishes(restaurantID)
	if err != nil {
		return nil, nil, err
	}
	return restaurant, dishes, nil
}

func (s *MenuService) OnboardRestaurant(rest *domain.Restaurant) error {
	if rest.Name == "" || rest.PinCode == "" {
		return errors.New("restaurant name and pin code are required")
	}
	if rest.Status == "" {
		rest.Status = "active"
	}
	return s.repo.CreateRestaurant(rest)
}

func (s *MenuService) UpdateRestaurant(rest *domain.Restaurant) error {
	return s.repo.UpdateRestaurant(rest)
}

func (s *MenuService) CreateDish(dish *domain.Dish) error {
	if dish.Name == "" {
		return errors.New("dish name is required")
	}
	if dish.Price.IsNegative() {
		return errors.New("dish price must not be negative")
	}
	return s.repo.CreateDish(dish)
}

func (s *MenuService) ListDishes(restaurantID int) ([]domain.Dish, error) {
	return s.repo.ListDishes(restaurantID)
}

func (s *MenuService) UpdateDish(dish *domain.Dish) error {
	return s.repo.UpdateDish(dish)
}

func (s *MenuService) DeleteDish(restaurantID, dishID int) error {
	rows, err := s.repo.DeleteDish(restaurantID, dishID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrDishNotFound
	}
	return nil
}

var _ MenuServiceInterface = (*MenuService)(nil)
