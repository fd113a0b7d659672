package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/vitalis-app/vitalis-bookings/pkg/logger"
)

type Publisher interface {
	Publish(ctx context.Context, subject string, data interface{}) error
	Close() error
}

type Subscriber interface {
	Subscribe(subject string, handler func(msg *Message)) error
	QueueSubscribe(subject, queue string, handler func(msg *Message)) error
	Close() error
}

type EventBus interface {
	Publisher
	Subscriber
}

type Message struct {
	Subject   string
	Data      []byte
	Timestamp time.Time
	ID        string
}

type NATSEventBus struct {
	conn *nats.Conn
}

func NewNATSEventBus(url string) (*NATSEventBus, error) {
	conn, err := nats.Connect(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	return &NATSEventBus{conn: conn}, nil
}

func (n *NATSEventBus) Publish(ctx context.Context, subject string, data interface{}) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal event data: %w", err)
	}

	logger.DebugContext(ctx, "Publishing event", "subject", subject, "data", string(payload))

	return n.conn.Publish(subject, payload)
}

func (n *NATSEventBus) Subscribe(subject string, handler func(msg *Message)) error {
	_, err := n.conn.Subscribe(subject, func(msg *nats.Msg) {
		handler(&Message{
			Subject:   msg.Subject,
			Data:      msg.Data,
			Timestamp: time.Now(),
			ID:        fmt.Sprintf("%d", time.Now().UnixNano()),
		})
	})
	return err
}

func (n *NATSEventBus) QueueSubscribe(subject, queue string, handler func(msg *Message)) error {
	_, err := n.conn.QueueSubscribe(subject, queue, func(msg *nats.Msg) {
		handler(&Message{
			Subject:   msg.Subject,
			Data:      msg.Data,
			Timestamp: time.Now(),
			ID:        fmt.Sprintf("%d", time.Now().UnixNano()),
		})
	})
	return err
}

func (n *NATSEventBus) Close() error {
	n.conn.Close()
	return nil
}

// Event types and subjects
const (
	// Identity events
	IdentityMinted = "identity.minted"

	// Reservation events
	ReservationCreated   = "reservation.created"
	ReservationCancelled = "reservation.cancelled"
	ReservationCompleted = "reservation.completed"

	// Notification events
	NotifySend = "notify.send"
)

// Event payloads
type IdentityMintedEvent struct {
	ClientID    string `json:"client_id"`
	Wallet      string `json:"wallet"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	MintedAt    int64  `json:"minted_at"`
}

type ReservationCreatedEvent struct {
	ReservationID string `json:"reservation_id"`
	AppointmentID string `json:"appointment_id,omitempty"`
	BusinessID    string `json:"business_id"`
	ServiceID     string `json:"service_id"`
	ProviderName  string `json:"provider_name,omitempty"`
	Date          string `json:"date"`
	TimeSlot      string `json:"time_slot"`
	Email         string `json:"email,omitempty"`
	CreatedAt     int64  `json:"created_at"`
}

type ReservationCancelledEvent struct {
	ReservationID string `json:"reservation_id"`
	AppointmentID string `json:"appointment_id,omitempty"`
	BusinessID    string `json:"business_id"`
	Date          string `json:"date"`
	TimeSlot      string `json:"time_slot"`
	Email         string `json:"email,omitempty"`
	Reason        string `json:"reason"`
	CancelledAt   int64  `json:"cancelled_at"`
}

type ReservationCompletedEvent struct {
	ReservationID string `json:"reservation_id"`
	AppointmentID string `json:"appointment_id,omitempty"`
	CompletedAt   int64  `json:"completed_at"`
}

type NotifySendEvent struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}
