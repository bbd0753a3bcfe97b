package pgstore

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/okunev/flightdesk/internal/domain"
	"github.com/okunev/flightdesk/internal/store"
)

type PassengerStore struct {
	db *pgxpool.Pool
}

const passengerColumns = `id, name, age, passport_number`

func scanPassenger(row pgx.Row) (*domain.Passenger, error) {
	var p domain.Passenger
	if err := row.Scan(&p.ID, &p.Name, &p.Age, &p.PassportNumber); err != nil {
		return nil, mapErr(err)
	}
	return &p, nil
}

func (s *PassengerStore) List(ctx context.Context) ([]domain.Passenger, error) {
	rows, err := s.db.Query(ctx, `SELECT `+passengerColumns+` FROM passengers ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	passengers := make([]domain.Passenger, 0)
	for rows.Next() {
		p, err := scanPassenger(rows)
		if err != nil {
			return nil, err
		}
		passengers = append(passengers, *p)
	}
	return passengers, rows.Err()
}

func (s *PassengerStore) GetByID(ctx context.Context, id int64) (*domain.Passenger, error) {
	return scanPassenger(s.db.QueryRow(ctx, `SELECT `+passengerColumns+` FROM passengers WHERE id=$1`, id))
}

func (s *PassengerStore) Insert(ctx context.Context, input store.NewPassenger) (*domain.Passenger, error) {
	return scanPassenger(s.db.QueryRow(ctx, `
		INSERT INTO passengers (id, name, age, passport_number)
		SELECT COALESCE(MAX(id), 0) + 1, $1, $2, $3 FROM passengers
		RETURNING `+passengerColumns,
		input.Name, input.Age, input.PassportNumber))
}

func (s *PassengerStore) Update(ctx context.Context, id int64, patch store.PassengerPatch) (*domain.Passenger, error) {
	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	current, err := scanPassenger(tx.QueryRow(ctx, `SELECT `+passengerColumns+` FROM passengers WHERE id=$1 FOR UPDATE`, id))
	if err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return current, nil
	}

	p := *current
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Age != nil {
		p.Age = *patch.Age
	}
	if patch.PassportNumber != nil {
		p.PassportNumber = *patch.PassportNumber
	}

	if _, err := tx.Exec(ctx, `UPDATE passengers SET name=$2, age=$3, passport_number=$4 WHERE id=$1`,
		p.ID, p.Name, p.Age, p.PassportNumber); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *PassengerStore) Remove(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.Exec(ctx, `DELETE FROM passengers WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}

var _ store.PassengerStore = (*PassengerStore)(nil)
