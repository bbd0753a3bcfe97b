package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/okunev/flightdesk/api"
	"github.com/okunev/flightdesk/config"
	"github.com/okunev/flightdesk/internal/bootstrap"
	"github.com/okunev/flightdesk/internal/cache"
	"github.com/okunev/flightdesk/internal/kafka"
	"github.com/okunev/flightdesk/internal/service/booking"
	"github.com/okunev/flightdesk/internal/service/flights"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, closeStores, err := bootstrap.OpenStores(ctx, cfg)
	if err != nil {
		log.Fatalf("open stores: %v", err)
	}
	defer closeStores()

	flightOpts := []flights.FlightServiceOption{
		flights.WithDepartingSoonWindow(time.Duration(cfg.Booking.DepartingSoonWindowMinutes) * time.Minute),
	}
	bookingOpts := []booking.BookingServiceOption{}

	if cfg.Redis.Enabled {
		redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Booking.FlightsCacheTTLSeconds)*time.Second)
		defer redisCache.Close()
		flightOpts = append(flightOpts, flights.WithCache(redisCache))
		bookingOpts = append(bookingOpts, booking.WithCache(redisCache, time.Duration(cfg.Booking.SeatLockTTLSeconds)*time.Second))
	}

	if cfg.Kafka.Enabled {
		producer := kafka.NewProducer(cfg.Kafka.Brokers)
		defer producer.Close()
		bookingOpts = append(bookingOpts, booking.WithProducer(producer, cfg.Kafka.BookingEventsTopic))
	}

	flightService := flights.NewFlightService(db.Flights, flightOpts...)
	bookingService := booking.NewBookingService(db.Flights, db.Seats, db.Passengers, db.Bookings, bookingOpts...)

	router := api.NewRouter(flightService, bookingService, db.Passengers, db.Seats)

	if err := bootstrap.Run(ctx, cfg, router); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
