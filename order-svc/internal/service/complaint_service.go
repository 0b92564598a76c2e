package service

import (
	"errors"
	"fmt"

	"feastly/order-svc/internal/domain"
)

type ComplaintService struct {
	complaints ComplaintRepository
	orders     OrderRepository
}

func NewComplaintService(complaints ComplaintRepository, orders OrderRepository) *ComplaintService {
	return &ComplaintService{complaints: complaints, orders: orders}
}

// Create files a complaint against one of the customer's own orders.
func (s *ComplaintService) Create(orderID, userID int, description string) (*domain.Complaint, error) {
	if description == "" {
		return nil, errors.New("complaint description is required")
	}

	order, err := s.orders.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	if order.CustomerID != userID {
		return nil, domain.ErrForbidden
	}

	complaint := &domain.Complaint{
		OrderID:     orderID,
		UserID:      userID,
		Description: description,
		Status:      domain.ComplaintOpen,
	}
	if err := s.complaints.CreateComplaint(complaint); err != nil {
		return nil, fmt.Errorf("failed to create complaint: %w", err)
	}
	return complaint, nil
}

func (s *ComplaintService) ListForUser(userID int) ([]domain.Complaint, error) {
	return s.complaints.ListComplaints("", userID)
}

func (s *ComplaintService) ListAll(status domain.ComplaintStatus) ([]domain.Complaint, error) {
	if status != "" && !status.Valid() {
		return nil, fmt.Errorf("invalid complaint status %q", status)
	}
	return s.complaints.ListComplaints(status, 0)
}

// Update progresses a complaint. Complaints are append/update only; they
// are never deleted.
func (s *ComplaintService) Update(id int, status domain.ComplaintStatus, notes string) error {
	if !status.Valid() {
		return fmt.Errorf("invalid complaint status %q", status)
	}
	if _, err := s.complaints.GetComplaint(id); err != nil {
		return err
	}
	return s.complaints.UpdateComplaint(id, status, notes)
}

var _ ComplaintServiceInterface = (*ComplaintService)(nil)

type PartnerService struct {
	repo PartnerRepository
}

func NewPartnerService(repo PartnerRepository) *PartnerService {
	return &PartnerService{repo: repo}
}

func (s *PartnerService) SetAvailability(partnerID int, available bool) error {
	if _, err := s.repo.GetPartner(partnerID); err != nil {
		return err
	}
	return s.repo.SetAvailability(partnerID, available)
}

var _ PartnerServiceInterface = (*PartnerService)(nil)
