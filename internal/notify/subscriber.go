// Package notify turns reservation events into client emails.
package notify

import (
	"encoding/json"

	"github.com/vitalis-app/vitalis-bookings/internal/catalog"
	"github.com/vitalis-app/vitalis-bookings/pkg/events"
	"github.com/vitalis-app/vitalis-bookings/pkg/logger"
)

type Subscriber struct {
	bus    events.Subscriber
	mailer Mailer
}

func NewSubscriber(bus events.Subscriber, mailer Mailer) *Subscriber {
	return &Subscriber{bus: bus, mailer: mailer}
}

// Start subscribes to reservation events. Delivery is best effort: a
// failed email is logged and dropped.
func (s *Subscriber) Start() error {
	if err := s.bus.QueueSubscribe(events.ReservationCreated, "notify", s.onCreated); err != nil {
		return err
	}
	return s.bus.QueueSubscribe(events.ReservationCancelled, "notify", s.onCancelled)
}

func (s *Subscriber) onCreated(msg *events.Message) {
	var event events.ReservationCreatedEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		logger.Error("Failed to decode reservation created event", "error", err)
		return
	}
	if event.Email == "" {
		return
	}

	businessName := event.BusinessID
	serviceName := event.ServiceID
	if business, ok := catalog.BusinessByID(event.BusinessID); ok {
		businessName = business.Name
	}
	if service, ok := catalog.ServiceByID(event.BusinessID, event.ServiceID); ok {
		serviceName = service.Name
	}

	if err := s.mailer.SendBookingConfirmed(event.Email, businessName, serviceName, event.Date, event.TimeSlot); err != nil {
		logger.Error("Failed to send booking confirmation", "error", err, "reservation_id", event.ReservationID)
	}
}

func (s *Subscriber) onCancelled(msg *events.Message) {
	var event events.ReservationCancelledEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		logger.Error("Failed to decode reservation cancelled event", "error", err)
		return
	}
	if event.Email == "" {
		return
	}

	businessName := event.BusinessID
	if business, ok := catalog.BusinessByID(event.BusinessID); ok {
		businessName = business.Name
	}

	if err := s.mailer.SendBookingCancelled(event.Email, businessName, event.Date, event.TimeSlot); err != nil {
		logger.Error("Failed to send cancellation notice", "error", err, "reservation_id", event.ReservationID)
	}
}
