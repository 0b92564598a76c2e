package service

import (
	"fmt"

	"feastly/order-svc/internal/domain"

	"github.com/shopspring/decimal"
)

type OfferService struct {
	repo   OfferRepository
	engine PricingEngineInterface
}

func NewOfferService(repo OfferRepository, engine PricingEngineInterface) *OfferService {
	return &OfferService{repo: repo, engine: engine}
}

// Validate checks a code against an order amount for the cart screen. An
// unknown or unusable code is a valid-false result; only storage failures
// are errors. Nothing is persisted here.
func (s *OfferService) Validate(code string, orderAmount decimal.Decimal, restaurantID int) (*domain.OfferValidation, error) {
	offer, err := s.repo.GetOfferByCode(domain.NormalizeOfferCode(code))
	if err != nil {
		return nil, fmt.Errorf("failed to look up offer: %w", err)
	}
	result := s.engine.ValidateOffer(offer, orderAmount, restaurantID)
	return &result, nil
}

// CreateOffer stores an admin or restaurant offer. Percentage discounts
// must sit in (0, 100]; flat discounts just have to be positive.
func (s *OfferService) CreateOffer(offer *domain.Offer) error {
	offer.Code = domain.NormalizeOfferCode(offer.Code)
	if offer.Code == "" {
		return fmt.Errorf("%w: empty code", domain.ErrInvalidOffer)
	}

	switch offer.DiscountType {
	case domain.DiscountPercentage:
		if !offer.DiscountValue.IsPositive() || offer.DiscountValue.GreaterThan(oneHundred) {
			return domain.ErrInvalidDiscount
		}
	case domain.DiscountFlat:
		if !offer.DiscountValue.IsPositive() {
			return domain.ErrInvalidDiscount
		}
	default:
		return fmt.Errorf("%w: unknown discount type %q", domain.ErrInvalidOffer, offer.DiscountType)
	}

	if offer.MinOrderValue.IsNegative() {
		return fmt.Errorf("%w: negative minimum order value", domain.ErrInvalidOffer)
	}

	existing, err := s.repo.GetOfferByCode(offer.Code)
	if err != nil {
		return fmt.Errorf("failed to check code: %w", err)
	}
	if existing != nil {
		return domain.ErrOfferCodeTaken
	}

	offer.IsActive = true
	return s.repo.CreateOffer(offer)
}

func (s *OfferService) ListOffers(scope domain.OfferScope, restaurantID int) ([]domain.Offer, error) {
	return s.repo.ListOffers(scope, restaurantID)
}

func (s *OfferService) CreatePlatformFee(fee *domain.PlatformFee) error {
	if fee.FeeValue.IsNegative() {
		return fmt.Errorf("platform fee value must not be negative")
	}
	if fee.IsPercentage && fee.FeeValue.GreaterThan(oneHundred) {
		return fmt.Errorf("percentage platform fee must not exceed 100")
	}
	fee.IsActive = true
	return s.repo.CreatePlatformFee(fee)
}

func (s *OfferService) ListPlatformFees() ([]domain.PlatformFee, error) {
	return s.repo.ListPlatformFees()
}

var _ OfferServiceInterface = (*OfferService)(nil)
