package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/expense_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker_app/internal/dto"
	"github.com/google/uuid"
)

type vendorService struct {
	BaseService
	vendorRepo portsrepo.VendorRepositoryFacade
}

func NewVendorService(vendorRepo portsrepo.VendorRepositoryFacade) portssvc.VendorSvcFacade {
	return &vendorService{vendorRepo: vendorRepo}
}

var _ portssvc.VendorSvcFacade = (*vendorService)(nil)

func (s *vendorService) CreateVendor(ctx context.Context, actor domain.Actor, req dto.CreateVendorRequest) (*domain.Vendor, error) {
	now := time.Now().UTC()
	vendor := domain.Vendor{
		VendorID:   uuid.NewString(),
		Title:      strings.TrimSpace(req.Title),
		UserID:     actor.UserID,
		Timestamps: domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}
	if err := s.vendorRepo.SaveVendor(ctx, vendor); err != nil {
		s.LogError(ctx, err, "Failed to save vendor")
		return nil, fmt.Errorf("failed to create vendor: %w", err)
	}
	return &vendor, nil
}

func (s *vendorService) GetVendorByID(ctx context.Context, actor domain.Actor, vendorID string) (*domain.Vendor, error) {
	vendor, err := s.vendorRepo.FindVendorByID(ctx, vendorID)
	if err != nil {
		return nil, fmt.Errorf("failed to get vendor %s: %w", vendorID, err)
	}
	if err := s.Authorize(ctx, actor, vendor.UserID, "vendor"); err != nil {
		return nil, err
	}
	return vendor, nil
}

func (s *vendorService) ListVendors(ctx context.Context, actor domain.Actor) ([]domain.Vendor, error) {
	vendors, err := s.vendorRepo.FindVendors(ctx, ownerScope(actor))
	if err != nil {
		return nil, fmt.Errorf("failed to list vendors: %w", err)
	}
	return vendors, nil
}
