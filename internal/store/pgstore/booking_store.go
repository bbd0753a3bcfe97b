package pgstore

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/okunev/flightdesk/internal/domain"
	"github.com/okunev/flightdesk/internal/store"
)

type BookingStore struct {
	db *pgxpool.Pool
}

const bookingColumns = `id, flight_id, passenger_id, reference, booked_at`

func scanBooking(row pgx.Row) (*domain.Booking, error) {
	var b domain.Booking
	if err := row.Scan(&b.ID, &b.FlightID, &b.PassengerID, &b.Reference, &b.BookedAt); err != nil {
		return nil, mapErr(err)
	}
	return &b, nil
}

func (s *BookingStore) List(ctx context.Context) ([]domain.Booking, error) {
	rows, err := s.db.Query(ctx, `SELECT `+bookingColumns+` FROM bookings ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *b)
	}
	return bookings, rows.Err()
}

func (s *BookingStore) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	return scanBooking(s.db.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id=$1`, id))
}

func (s *BookingStore) Insert(ctx context.Context, input store.NewBooking) (*domain.Booking, error) {
	return scanBooking(s.db.QueryRow(ctx, `
		INSERT INTO bookings (id, flight_id, passenger_id, reference, booked_at)
		SELECT COALESCE(MAX(id), 0) + 1, $1, $2, $3, $4 FROM bookings
		RETURNING `+bookingColumns,
		input.FlightID, input.PassengerID, input.Reference, input.BookedAt))
}

func (s *BookingStore) Remove(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.Exec(ctx, `DELETE FROM bookings WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}

var _ store.BookingStore = (*BookingStore)(nil)
