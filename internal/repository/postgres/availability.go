package postgres

import (
	"context"
	"database/sql"
	"time"

	"homestay-booking-backend/internal/domain"
	"homestay-booking-backend/internal/repository"
)

type availabilityRepository struct {
	db *sql.DB
}

func NewAvailabilityRepository(db *sql.DB) repository.AvailabilityRepository {
	return &availabilityRepository{db: db}
}

func (r *availabilityRepository) Upsert(ctx context.Context, o *domain.AvailabilityOverride) error {
	// One calendar row per property per date.
	query := `INSERT INTO property_availabilities (property_id, date, is_available, price_override_cents, minimum_stay_override, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (property_id, date) DO UPDATE SET
			is_available = EXCLUDED.is_available,
			price_override_cents = EXCLUDED.price_override_cents,
			minimum_stay_override = EXCLUDED.minimum_stay_override,
			notes = EXCLUDED.notes
		RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		o.PropertyID, o.Date, o.IsAvailable, o.PriceOverrideCents, o.MinimumStayOverride, o.Notes,
	).Scan(&o.ID)
}

func (r *availabilityRepository) ListBetween(ctx context.Context, propertyID int64, from, to time.Time) ([]domain.AvailabilityOverride, error) {
	query := `SELECT id, property_id, date, is_available, price_override_cents, minimum_stay_override, notes
		FROM property_availabilities WHERE property_id = $1 AND date >= $2 AND date <= $3 ORDER BY date`
	rows, err := r.db.QueryContext(ctx, query, propertyID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var overrides []domain.AvailabilityOverride
	for rows.Next() {
		var o domain.AvailabilityOverride
		if err := rows.Scan(&o.ID, &o.PropertyID, &o.Date, &o.IsAvailable, &o.PriceOverrideCents, &o.MinimumStayOverride, &o.Notes); err != nil {
			return nil, err
		}
		overrides = append(overrides, o)
	}
	return overrides, rows.Err()
}
