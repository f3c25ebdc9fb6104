package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"homestay-booking-backend/internal/domain"
	"homestay-booking-backend/internal/engine"
	"homestay-booking-backend/internal/repository"
	"homestay-booking-backend/internal/repository/postgres"
)

var bookingTestColumns = []string{
	"id", "property_id", "guest_id", "booking_reference", "check_in_date", "check_out_date",
	"guests_adult", "guests_children", "guests_infants", "guests_pets",
	"total_nights", "base_price_cents", "weekend_nights", "weekend_price_cents",
	"cleaning_fee_cents", "service_fee_cents", "security_deposit_cents", "total_amount_cents", "currency",
	"status", "payment_status", "guest_name", "guest_email", "guest_phone", "special_requests",
	"confirmed_at", "cancelled_at", "cancellation_reason", "refund_amount_cents",
	"actual_check_in_time", "actual_check_out_time", "created_on", "updated_on",
}

func bookingRow(id int64, checkIn, checkOut time.Time) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(bookingTestColumns).AddRow(
		id, int64(2), int64(1), "KNJAAAABBBBCCCCD", checkIn, checkOut,
		int32(2), int32(0), int32(0), int32(0),
		int32(2), int64(1_000_000), int32(0), int64(0),
		int64(150_000), int64(100_000), int64(1_000_000), int64(1_250_000), "IDR",
		"confirmed", "paid", "Guest", "guest@test.com", "", "",
		nil, nil, "", int64(0),
		nil, nil, now, now,
	)
}

func testBooking() *domain.Booking {
	return &domain.Booking{
		PropertyID:           2,
		GuestID:              1,
		BookingReference:     "KNJAAAABBBBCCCCD",
		CheckInDate:          time.Date(2024, 8, 12, 0, 0, 0, 0, time.UTC),
		CheckOutDate:         time.Date(2024, 8, 14, 0, 0, 0, 0, time.UTC),
		GuestsAdult:          2,
		TotalNights:          2,
		BasePriceCents:       1_000_000,
		CleaningFeeCents:     150_000,
		ServiceFeeCents:      100_000,
		SecurityDepositCents: 1_000_000,
		TotalAmountCents:     1_250_000,
		Currency:             "IDR",
		Status:               domain.BookingStatusPending,
		PaymentStatus:        domain.PaymentStatusUnpaid,
		GuestName:            "Guest",
		GuestEmail:           "guest@test.com",
	}
}

func TestBookingRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewBookingRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO bookings").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))

		b := testBooking()
		err := repo.Create(ctx, b)
		assert.NoError(t, err)
		assert.Equal(t, int64(5), b.ID)
		assert.False(t, b.CreatedOn.IsZero())
	})

	t.Run("Duplicate Reference", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO bookings").
			WillReturnError(&pq.Error{Code: "23505"})

		err := repo.Create(ctx, testBooking())
		assert.ErrorIs(t, err, repository.ErrDuplicateReference)
	})
}

func TestBookingRepository_CreateIfAvailable(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewBookingRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT id FROM properties").
			WithArgs(int64(2)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))
		mock.ExpectQuery(`SELECT count\(\*\) FROM bookings`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectQuery("INSERT INTO bookings").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))
		mock.ExpectCommit()

		b := testBooking()
		err := repo.CreateIfAvailable(ctx, b)
		assert.NoError(t, err)
		assert.Equal(t, int64(5), b.ID)
	})

	t.Run("Dates Conflict", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT id FROM properties").
			WithArgs(int64(2)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))
		mock.ExpectQuery(`SELECT count\(\*\) FROM bookings`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
		mock.ExpectRollback()

		err := repo.CreateIfAvailable(ctx, testBooking())
		assert.ErrorIs(t, err, engine.ErrNotAvailable)
	})

	t.Run("Property Missing", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT id FROM properties").
			WithArgs(int64(2)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectRollback()

		err := repo.CreateIfAvailable(ctx, testBooking())
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestBookingRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewBookingRepository(db)
	ctx := context.Background()
	checkIn := time.Date(2024, 8, 12, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2024, 8, 14, 0, 0, 0, 0, time.UTC)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id").
			WithArgs(int64(5)).
			WillReturnRows(bookingRow(5, checkIn, checkOut))

		b, err := repo.GetByID(ctx, 5)
		assert.NoError(t, err)
		assert.Equal(t, "KNJAAAABBBBCCCCD", b.BookingReference)
		assert.Equal(t, domain.BookingStatusConfirmed, b.Status)
		assert.Equal(t, int64(1_250_000), b.TotalAmountCents)
	})

	t.Run("Not Found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id").
			WithArgs(int64(99)).
			WillReturnRows(sqlmock.NewRows(bookingTestColumns))

		b, err := repo.GetByID(ctx, 99)
		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.Nil(t, b)
	})
}

func TestBookingRepository_CancelAtomic(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewBookingRepository(db)
	ctx := context.Background()

	cancelled := testBooking()
	cancelled.ID = 5
	now := time.Now()
	cancelled.Status = domain.BookingStatusCancelled
	cancelled.PaymentStatus = domain.PaymentStatusRefunded
	cancelled.CancelledAt = &now
	cancelled.RefundAmountCents = 1_150_000

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("UPDATE bookings SET status='cancelled'").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.CancelAtomic(ctx, cancelled)
		assert.NoError(t, err)
	})

	t.Run("Already Terminal", func(t *testing.T) {
		mock.ExpectExec("UPDATE bookings SET status='cancelled'").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.CancelAtomic(ctx, cancelled)
		assert.ErrorIs(t, err, engine.ErrNotCancellable)
	})
}

func TestBookingRepository_ListOverlapping(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewBookingRepository(db)
	ctx := context.Background()
	checkIn := time.Date(2024, 8, 12, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2024, 8, 14, 0, 0, 0, 0, time.UTC)

	t.Run("Returns Matches", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM bookings").
			WithArgs(int64(2), checkIn, checkOut).
			WillReturnRows(bookingRow(5, checkIn, checkOut))

		bookings, err := repo.ListOverlapping(ctx, 2, checkIn, checkOut)
		assert.NoError(t, err)
		assert.Len(t, bookings, 1)
		assert.Equal(t, int64(5), bookings[0].ID)
	})

	t.Run("Empty", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM bookings").
			WithArgs(int64(2), checkIn, checkOut).
			WillReturnRows(sqlmock.NewRows(bookingTestColumns))

		bookings, err := repo.ListOverlapping(ctx, 2, checkIn, checkOut)
		assert.NoError(t, err)
		assert.Empty(t, bookings)
	})
}
