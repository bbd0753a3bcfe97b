package pgstore

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/okunev/flightdesk/internal/domain"
	"github.com/okunev/flightdesk/internal/store"
)

type SeatStore struct {
	db *pgxpool.Pool
}

const seatColumns = `id, seat_number, seat_type, is_reserved, reserved_by, flight_id`

func scanSeat(row pgx.Row) (*domain.Seat, error) {
	var s domain.Seat
	if err := row.Scan(&s.ID, &s.SeatNumber, &s.SeatType, &s.IsReserved, &s.ReservedBy, &s.FlightID); err != nil {
		return nil, mapErr(err)
	}
	return &s, nil
}

func (s *SeatStore) collect(rows pgx.Rows) ([]domain.Seat, error) {
	defer rows.Close()
	seats := make([]domain.Seat, 0)
	for rows.Next() {
		seat, err := scanSeat(rows)
		if err != nil {
			return nil, err
		}
		seats = append(seats, *seat)
	}
	return seats, rows.Err()
}

func (s *SeatStore) List(ctx context.Context) ([]domain.Seat, error) {
	rows, err := s.db.Query(ctx, `SELECT `+seatColumns+` FROM seats ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return s.collect(rows)
}

func (s *SeatStore) ListByFlight(ctx context.Context, flightID int64) ([]domain.Seat, error) {
	rows, err := s.db.Query(ctx, `SELECT `+seatColumns+` FROM seats WHERE flight_id=$1 ORDER BY id`, flightID)
	if err != nil {
		return nil, err
	}
	return s.collect(rows)
}

func (s *SeatStore) GetByID(ctx context.Context, id int64) (*domain.Seat, error) {
	return scanSeat(s.db.QueryRow(ctx, `SELECT `+seatColumns+` FROM seats WHERE id=$1`, id))
}

func (s *SeatStore) FindByFlightAndNumber(ctx context.Context, flightID int64, seatNumber string) (*domain.Seat, error) {
	return scanSeat(s.db.QueryRow(ctx, `SELECT `+seatColumns+` FROM seats WHERE flight_id=$1 AND seat_number=$2`, flightID, seatNumber))
}

func (s *SeatStore) Insert(ctx context.Context, input store.NewSeat) (*domain.Seat, error) {
	return scanSeat(s.db.QueryRow(ctx, `
		INSERT INTO seats (id, seat_number, seat_type, is_reserved, reserved_by, flight_id)
		SELECT COALESCE(MAX(id), 0) + 1, $1, $2, FALSE, NULL, $3 FROM seats
		RETURNING `+seatColumns,
		input.SeatNumber, input.SeatType, input.FlightID))
}

func (s *SeatStore) Update(ctx context.Context, id int64, patch store.SeatPatch) (*domain.Seat, error) {
	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	current, err := scanSeat(tx.QueryRow(ctx, `SELECT `+seatColumns+` FROM seats WHERE id=$1 FOR UPDATE`, id))
	if err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return current, nil
	}

	seat := *current
	if patch.SeatNumber != nil {
		seat.SeatNumber = *patch.SeatNumber
	}
	if patch.SeatType != nil {
		seat.SeatType = *patch.SeatType
	}
	if patch.IsReserved != nil {
		seat.IsReserved = *patch.IsReserved
		if !seat.IsReserved {
			seat.ReservedBy = nil
		}
	}
	if patch.ReservedBy != nil && seat.IsReserved {
		passengerID := *patch.ReservedBy
		seat.ReservedBy = &passengerID
	}

	if _, err := tx.Exec(ctx, `
		UPDATE seats SET seat_number=$2, seat_type=$3, is_reserved=$4, reserved_by=$5 WHERE id=$1`,
		seat.ID, seat.SeatNumber, seat.SeatType, seat.IsReserved, seat.ReservedBy); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &seat, nil
}

func (s *SeatStore) Remove(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.Exec(ctx, `DELETE FROM seats WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}

var _ store.SeatStore = (*SeatStore)(nil)
