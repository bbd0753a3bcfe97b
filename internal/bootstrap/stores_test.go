package bootstrap

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okunev/flightdesk/config"
)

func TestOpenStores_FileDriver(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "records")
	cfg := &config.Config{Storage: config.StorageConfig{Driver: "file", Dir: dir}}

	stores, closeStores, err := OpenStores(context.Background(), cfg)
	require.NoError(t, err)
	defer closeStores()

	flights, err := stores.Flights.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, flights)

	_, err = os.Stat(dir)
	assert.NoError(t, err)
}

func TestOpenStores_MemoryDriver(t *testing.T) {
	cfg := &config.Config{Storage: config.StorageConfig{Driver: "memory"}}

	stores, closeStores, err := OpenStores(context.Background(), cfg)
	require.NoError(t, err)
	defer closeStores()

	assert.NotNil(t, stores.Flights)
	assert.NotNil(t, stores.Seats)
	assert.NotNil(t, stores.Passengers)
	assert.NotNil(t, stores.Bookings)
}

func TestOpenStores_UnknownDriver(t *testing.T) {
	cfg := &config.Config{Storage: config.StorageConfig{Driver: "tape"}}

	_, _, err := OpenStores(context.Background(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tape")
}
