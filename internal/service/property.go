package service

import (
	"context"
	"errors"
	"time"

	"homestay-booking-backend/internal/domain"
	"homestay-booking-backend/internal/repository"
)

type propertyService struct {
	propertyRepo repository.PropertyRepository
	availRepo    repository.AvailabilityRepository
}

func NewPropertyService(propertyRepo repository.PropertyRepository, availRepo repository.AvailabilityRepository) PropertyService {
	return &propertyService{
		propertyRepo: propertyRepo,
		availRepo:    availRepo,
	}
}

func (s *propertyService) AddProperty(ctx context.Context, p *domain.Property) error {
	if err := s.validate(p); err != nil {
		return err
	}
	if p.Status == "" {
		p.Status = domain.PropertyStatusActive
	}
	if p.CancellationPolicy == "" {
		p.CancellationPolicy = domain.CancellationPolicyModerate
	}
	return s.propertyRepo.Create(ctx, p)
}

func (s *propertyService) UpdateProperty(ctx context.Context, p *domain.Property) error {
	if err := s.validate(p); err != nil {
		return err
	}
	return s.propertyRepo.Update(ctx, p)
}

func (s *propertyService) validate(p *domain.Property) error {
	if p.Title == "" {
		return errors.New("property title is required")
	}
	if p.BasePricePerNightCents <= 0 {
		return errors.New("base price per night must be positive")
	}
	if p.WeekendPricePerNightCents < 0 || p.CleaningFeeCents < 0 || p.ServiceFeeCents < 0 || p.SecurityDepositCents < 0 {
		return errors.New("prices and fees cannot be negative")
	}
	return p.ValidateStayBounds()
}

func (s *propertyService) GetProperty(ctx context.Context, id int64) (*domain.Property, error) {
	return s.propertyRepo.GetByID(ctx, id)
}

func (s *propertyService) ListHostProperties(ctx context.Context, hostID int64, page, pageSize int32) ([]domain.Property, int32, error) {
	return s.propertyRepo.ListByHost(ctx, hostID, page, pageSize)
}

func (s *propertyService) SetAvailabilityOverride(ctx context.Context, o *domain.AvailabilityOverride) error {
	if _, err := s.propertyRepo.GetByID(ctx, o.PropertyID); err != nil {
		return err
	}
	if o.PriceOverrideCents < 0 || o.MinimumStayOverride < 0 {
		return errors.New("override values cannot be negative")
	}
	return s.availRepo.Upsert(ctx, o)
}

func (s *propertyService) GetCalendar(ctx context.Context, propertyID int64, from, to time.Time) ([]domain.AvailabilityOverride, error) {
	return s.availRepo.ListBetween(ctx, propertyID, from, to)
}
