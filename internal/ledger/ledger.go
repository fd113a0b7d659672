// Package ledger is the boundary to the on-chain collaborator: minting
// identity tokens, recording and cancelling appointments, and looking up
// owned objects. Everything behind Client is external, asynchronous, and
// allowed to fail arbitrarily; responses are decoded defensively and
// unrecognized shapes are treated as "not found".
package ledger

import (
	"context"
	"errors"
	"fmt"
)

// AppointmentStatus mirrors the on-chain status codes.
type AppointmentStatus int

const (
	AppointmentBooked    AppointmentStatus = 0
	AppointmentCompleted AppointmentStatus = 1
	AppointmentCancelled AppointmentStatus = 2
)

var StatusLabels = map[AppointmentStatus]string{
	AppointmentBooked:    "Booked",
	AppointmentCompleted: "Completed",
	AppointmentCancelled: "Cancelled",
}

var (
	// ErrNotFound means the queried object does not exist on the ledger
	// or its shape was not recognized.
	ErrNotFound = errors.New("ledger object not found")

	// ErrNoWallet means no wallet address is configured or connected.
	ErrNoWallet = errors.New("wallet not connected")
)

// Client is the set of ledger operations the booking flows consume.
type Client interface {
	// MintClientIdentity records a client identity token for the current
	// wallet and returns its object identifier.
	MintClientIdentity(ctx context.Context, displayName string) (string, error)

	// FindOwnedObject returns the identifier of the most recent object of
	// the given struct type owned by the address, or ErrNotFound.
	FindOwnedObject(ctx context.Context, owner, structType string) (string, error)

	// CreateAppointment records an appointment and returns its identifier.
	// The identifier may be empty when the transaction succeeded but the
	// created object could not be extracted from the result.
	CreateAppointment(ctx context.Context, clientID, providerName string, start, end int64) (string, error)

	CancelAppointment(ctx context.Context, clientID, appointmentID string) error

	CompleteAppointment(ctx context.Context, providerID, appointmentID string) error

	// GetAppointmentStatus reads the current on-chain appointment status.
	GetAppointmentStatus(ctx context.Context, appointmentID string) (AppointmentStatus, error)
}

// Move call targets, relative to the configured package id.
const (
	identityModule     = "vitalis_identity"
	appointmentsModule = "vitalis_appointments"

	mintClientFn        = "mint_client_nft"
	createAppointmentFn = "create_appointment_light"
	cancelAppointmentFn = "cancel_appointment_light"
	completeFn          = "complete_appointment"
)

// Struct type suffixes used to recognize created objects in results.
const (
	ClientTypeSuffix           = "vitalis_identity::ClientNFT"
	AppointmentTypeSuffix      = "vitalis_appointments::Appointment"
	LightAppointmentTypeSuffix = "vitalis_appointments::LightAppointment"
)

// ClientStructType returns the fully qualified identity token type for a
// package id, used when querying owned objects.
func ClientStructType(packageID string) string {
	return fmt.Sprintf("%s::%s::ClientNFT", packageID, identityModule)
}
