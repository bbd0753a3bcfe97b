package bootstrap

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/okunev/flightdesk/config"
	"github.com/okunev/flightdesk/internal/store"
	"github.com/okunev/flightdesk/internal/store/filestore"
	"github.com/okunev/flightdesk/internal/store/memstore"
	"github.com/okunev/flightdesk/internal/store/pgstore"
)

// Stores is the backend-agnostic bundle the binaries run on. The close
// function releases whatever the selected driver holds open.
type Stores struct {
	Flights    store.FlightStore
	Seats      store.SeatStore
	Passengers store.PassengerStore
	Bookings   store.BookingStore
}

// OpenStores selects the record store backend from the config. Every binary
// must go through here so they never disagree on where the records live.
func OpenStores(ctx context.Context, cfg *config.Config) (*Stores, func(), error) {
	switch cfg.Storage.Driver {
	case "file":
		s, err := filestore.Open(cfg.Storage.Dir)
		if err != nil {
			return nil, nil, err
		}
		log.Printf("storage driver: file (%s)", cfg.Storage.Dir)
		return &Stores{s.Flights, s.Seats, s.Passengers, s.Bookings}, func() {}, nil
	case "postgres":
		pool, err := pgxpool.New(ctx, cfg.Database.DSN())
		if err != nil {
			return nil, nil, fmt.Errorf("connect postgres: %w", err)
		}
		s := pgstore.New(pool)
		log.Printf("storage driver: postgres (%s:%d/%s)", cfg.Database.Host, cfg.Database.Port, cfg.Database.Name)
		return &Stores{s.Flights, s.Seats, s.Passengers, s.Bookings}, pool.Close, nil
	case "memory":
		s := memstore.New()
		log.Printf("storage driver: memory")
		return &Stores{s.Flights, s.Seats, s.Passengers, s.Bookings}, func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
