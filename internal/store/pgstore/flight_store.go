package pgstore

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/okunev/flightdesk/internal/domain"
	"github.com/okunev/flightdesk/internal/store"
)

type FlightStore struct {
	db *pgxpool.Pool
}

const flightColumns = `id, flight_number, origin, destination, departure_time, arrival_time, capacity, booked_seats, status`

func scanFlight(row pgx.Row) (*domain.Flight, error) {
	var f domain.Flight
	if err := row.Scan(&f.ID, &f.FlightNumber, &f.Origin, &f.Destination, &f.DepartureTime, &f.ArrivalTime, &f.Capacity, &f.BookedSeats, &f.Status); err != nil {
		return nil, mapErr(err)
	}
	return &f, nil
}

func (s *FlightStore) List(ctx context.Context) ([]domain.Flight, error) {
	rows, err := s.db.Query(ctx, `SELECT `+flightColumns+` FROM flights ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	flights := make([]domain.Flight, 0)
	for rows.Next() {
		f, err := scanFlight(rows)
		if err != nil {
			return nil, err
		}
		flights = append(flights, *f)
	}
	return flights, rows.Err()
}

func (s *FlightStore) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	return scanFlight(s.db.QueryRow(ctx, `SELECT `+flightColumns+` FROM flights WHERE id=$1`, id))
}

func (s *FlightStore) Insert(ctx context.Context, input store.NewFlight) (*domain.Flight, error) {
	return scanFlight(s.db.QueryRow(ctx, `
		INSERT INTO flights (id, flight_number, origin, destination, departure_time, arrival_time, capacity, booked_seats, status)
		SELECT COALESCE(MAX(id), 0) + 1, $1, $2, $3, $4, $5, $6, $7, $8 FROM flights
		RETURNING `+flightColumns,
		input.FlightNumber, input.Origin, input.Destination, input.DepartureTime, input.ArrivalTime, input.Capacity, input.BookedSeats, input.Status))
}

func (s *FlightStore) Update(ctx context.Context, id int64, patch store.FlightPatch) (*domain.Flight, error) {
	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	current, err := scanFlight(tx.QueryRow(ctx, `SELECT `+flightColumns+` FROM flights WHERE id=$1 FOR UPDATE`, id))
	if err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return current, nil
	}

	f := *current
	if patch.FlightNumber != nil {
		f.FlightNumber = *patch.FlightNumber
	}
	if patch.Origin != nil {
		f.Origin = *patch.Origin
	}
	if patch.Destination != nil {
		f.Destination = *patch.Destination
	}
	if patch.DepartureTime != nil {
		f.DepartureTime = *patch.DepartureTime
	}
	if patch.ArrivalTime != nil {
		f.ArrivalTime = *patch.ArrivalTime
	}
	if patch.Capacity != nil {
		f.Capacity = *patch.Capacity
	}
	if patch.BookedSeats != nil {
		f.BookedSeats = *patch.BookedSeats
	}
	if patch.Status != nil {
		f.Status = *patch.Status
	}

	if _, err := tx.Exec(ctx, `
		UPDATE flights SET flight_number=$2, origin=$3, destination=$4, departure_time=$5, arrival_time=$6, capacity=$7, booked_seats=$8, status=$9
		WHERE id=$1`,
		f.ID, f.FlightNumber, f.Origin, f.Destination, f.DepartureTime, f.ArrivalTime, f.Capacity, f.BookedSeats, f.Status); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &f, nil
}

func (s *FlightStore) Remove(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.Exec(ctx, `DELETE FROM flights WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}

var _ store.FlightStore = (*FlightStore)(nil)
