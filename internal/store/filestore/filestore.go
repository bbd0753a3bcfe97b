// Package filestore persists each entity collection as one JSON file that is
// rewritten wholesale on every mutation. A missing file reads as an empty
// collection. Every read-modify-write cycle runs under the collection's
// mutex, and id assignment shares that critical section.
package filestore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

const (
	flightsFile    = "flights.json"
	seatsFile      = "seats.json"
	passengersFile = "passengers.json"
	bookingsFile   = "bookings.json"
)

// Stores bundles the four file-backed collections rooted at one directory.
type Stores struct {
	Flights    *FlightStore
	Seats      *SeatStore
	Passengers *PassengerStore
	Bookings   *BookingStore
}

func Open(dir string) (*Stores, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Stores{
		Flights:    NewFlightStore(filepath.Join(dir, flightsFile)),
		Seats:      NewSeatStore(filepath.Join(dir, seatsFile)),
		Passengers: NewPassengerStore(filepath.Join(dir, passengersFile)),
		Bookings:   NewBookingStore(filepath.Join(dir, bookingsFile)),
	}, nil
}

// collection guards one backing file. nextID is derived from the stored
// records on first use and stays monotonic for the life of the process.
type collection struct {
	mu     sync.Mutex
	path   string
	nextID int64
}

func readAll[T any](path string) ([]T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []T{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return items, nil
}

func writeAll[T any](path string, items []T) error {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func (c *collection) claimID(maxStored int64) int64 {
	if c.nextID <= maxStored {
		c.nextID = maxStored + 1
	}
	id := c.nextID
	c.nextID++
	return id
}
