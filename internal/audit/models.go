package audit

import (
	"time"

	"github.com/google/uuid"

	"aotearoa/internal/customer"
)

// Action labels the kind of record mutation being audited.
type Action string

const (
	ActionCustomerRegistered Action = "customer_registered"
	ActionCustomerEnrolled   Action = "customer_enrolled"
)

// Event is emitted from workflow commits to capture who changed what. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	ID         uuid.UUID
	Timestamp  time.Time
	Action     Action
	CustomerID customer.ID
	// Subject identifies the affected record: "NZ-South/2024-03-01" for an
	// enrollment, the customer's email for a registration.
	Subject string
}
