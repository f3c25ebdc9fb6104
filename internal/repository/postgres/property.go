package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"homestay-booking-backend/internal/domain"
	"homestay-booking-backend/internal/repository"
)

type propertyRepository struct {
	db *sql.DB
}

func NewPropertyRepository(db *sql.DB) repository.PropertyRepository {
	return &propertyRepository{db: db}
}

const propertyColumns = `id, host_id, title, slug, city, region, max_guests,
	base_price_per_night_cents, weekend_price_per_night_cents, cleaning_fee_cents,
	service_fee_cents, security_deposit_cents, minimum_stay_nights, maximum_stay_nights,
	cancellation_policy, check_in_time, check_out_time, is_published, status, created_on, updated_on`

func scanProperty(row interface{ Scan(...interface{}) error }) (*domain.Property, error) {
	p := &domain.Property{}
	err := row.Scan(
		&p.ID, &p.HostID, &p.Title, &p.Slug, &p.City, &p.Region, &p.MaxGuests,
		&p.BasePricePerNightCents, &p.WeekendPricePerNightCents, &p.CleaningFeeCents,
		&p.ServiceFeeCents, &p.SecurityDepositCents, &p.MinimumStayNights, &p.MaximumStayNights,
		&p.CancellationPolicy, &p.CheckInTime, &p.CheckOutTime, &p.IsPublished, &p.Status, &p.CreatedOn, &p.UpdatedOn,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *propertyRepository) Create(ctx context.Context, p *domain.Property) error {
	query := `INSERT INTO properties (host_id, title, slug, city, region, max_guests,
		base_price_per_night_cents, weekend_price_per_night_cents, cleaning_fee_cents,
		service_fee_cents, security_deposit_cents, minimum_stay_nights, maximum_stay_nights,
		cancellation_policy, check_in_time, check_out_time, is_published, status, created_on, updated_on)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
		RETURNING id`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query,
		p.HostID, p.Title, p.Slug, p.City, p.Region, p.MaxGuests,
		p.BasePricePerNightCents, p.WeekendPricePerNightCents, p.CleaningFeeCents,
		p.ServiceFeeCents, p.SecurityDepositCents, p.MinimumStayNights, p.MaximumStayNights,
		p.CancellationPolicy, p.CheckInTime, p.CheckOutTime, p.IsPublished, p.Status, now, now,
	).Scan(&p.ID)
}

func (r *propertyRepository) GetByID(ctx context.Context, id int64) (*domain.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties WHERE id = $1`
	p, err := scanProperty(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, mapNotFound(err)
	}
	return p, nil
}

func (r *propertyRepository) Update(ctx context.Context, p *domain.Property) error {
	query := `UPDATE properties SET title=$1, slug=$2, city=$3, region=$4, max_guests=$5,
		base_price_per_night_cents=$6, weekend_price_per_night_cents=$7, cleaning_fee_cents=$8,
		service_fee_cents=$9, security_deposit_cents=$10, minimum_stay_nights=$11, maximum_stay_nights=$12,
		cancellation_policy=$13, check_in_time=$14, check_out_time=$15, is_published=$16, status=$17,
		updated_on=$18 WHERE id=$19`
	_, err := r.db.ExecContext(ctx, query,
		p.Title, p.Slug, p.City, p.Region, p.MaxGuests,
		p.BasePricePerNightCents, p.WeekendPricePerNightCents, p.CleaningFeeCents,
		p.ServiceFeeCents, p.SecurityDepositCents, p.MinimumStayNights, p.MaximumStayNights,
		p.CancellationPolicy, p.CheckInTime, p.CheckOutTime, p.IsPublished, p.Status,
		time.Now(), p.ID)
	return err
}

func (r *propertyRepository) ListByHost(ctx context.Context, hostID int64, page, pageSize int32) ([]domain.Property, int32, error) {
	offset := (page - 1) * pageSize

	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM properties WHERE host_id = $1`, hostID).Scan(&count); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`SELECT %s FROM properties WHERE host_id = $1 ORDER BY created_on DESC LIMIT $2 OFFSET $3`, propertyColumns)
	rows, err := r.db.QueryContext(ctx, query, hostID, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var properties []domain.Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, 0, err
		}
		properties = append(properties, *p)
	}
	return properties, count, rows.Err()
}
