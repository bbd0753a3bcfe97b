package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	kafkaGo "github.com/segmentio/kafka-go"

	"github.com/okunev/flightdesk/config"
	"github.com/okunev/flightdesk/internal/bootstrap"
	"github.com/okunev/flightdesk/internal/email"
	"github.com/okunev/flightdesk/internal/kafka"
	"github.com/okunev/flightdesk/internal/service/booking"
	"github.com/okunev/flightdesk/internal/service/flights"
)

// The worker consumes booking events for notifications and periodically
// reports flights departing within the configured window.
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

	flightService := flights.NewFlightService(db.Flights,
		flights.WithDepartingSoonWindow(time.Duration(cfg.Booking.DepartingSoonWindowMinutes)*time.Minute))

	if cfg.Kafka.Enabled {
		consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.BookingEventsTopic)
		defer consumer.Close()

		sender := email.NewSender()

		go func() {
			err := consumer.Consume(ctx, func(ctx context.Context, msg kafkaGo.Message) error {
				return handleEvent(ctx, sender, msg.Value)
			})
			if err != nil {
				log.Printf("consumer stopped: %v", err)
			}
		}()
	}

	sweep := cfg.Worker.DepartingSoonSweepMinutes
	if sweep <= 0 {
		sweep = 10
	}
	ticker := time.NewTicker(time.Duration(sweep) * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			soon, err := flightService.DepartingSoon(ctx)
			if err != nil {
				log.Printf("departing soon sweep: %v", err)
				continue
			}
			for _, f := range soon {
				log.Printf("flight %s departs at %s (%s -> %s)",
					f.FlightNumber, f.DepartureTime.Format(time.RFC3339), f.Origin, f.Destination)
			}
		case <-ctx.Done():
			log.Printf("shutting down")
			return
		}
	}
}

// handleEvent dispatches on the event envelope: booking events become
// notifications, seat events are audit-logged.
func handleEvent(ctx context.Context, sender *email.Sender, payload []byte) error {
	var envelope struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(payload, &envelope); err != nil {
		log.Printf("decode event: %v", err)
		return nil
	}

	switch envelope.Type {
	case "booking_created", "booking_cancelled":
		var event booking.BookingEvent
		if err := json.Unmarshal(payload, &event); err != nil {
			log.Printf("decode booking event: %v", err)
			return nil
		}
		return sender.Send(ctx, event)
	case "seat_reserved", "seat_released":
		var event booking.SeatEvent
		if err := json.Unmarshal(payload, &event); err != nil {
			log.Printf("decode seat event: %v", err)
			return nil
		}
		log.Printf("%s: flight %d seat %s", event.Type, event.FlightID, event.SeatNumber)
		return nil
	default:
		log.Printf("unknown event type %q", envelope.Type)
		return nil
	}
}
