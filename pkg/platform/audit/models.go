package audit

import (
	"context"
	"time"

	"idverify/pkg/domain"
)

// EventCategory classifies audit events by their primary purpose.
// This enables different retention policies, storage backends, and routing.
type EventCategory string

const (
	// CategoryCompliance covers events with legal/regulatory significance.
	// A verification decision is a trust decision about a real person, so
	// these require tamper-proof storage and long retention.
	CategoryCompliance EventCategory = "compliance"

	// CategorySecurity covers events relevant to security monitoring,
	// e.g. repeated failed liveness checks from one device.
	CategorySecurity EventCategory = "security"

	// CategoryOperations covers events useful for debugging and operational
	// visibility. These can be sampled with shorter retention.
	CategoryOperations EventCategory = "operations"
)

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	Category  EventCategory
	Timestamp time.Time
	UserID    domain.UserID
	Action    string
	// Decision records the business verdict ("valid", "invalid", "passed",
	// "failed", "matched", "no_match") so rejected attempts stay auditable.
	Decision string
	// Reason carries the evidence behind a negative decision, e.g. the
	// validation error list or the confidence score that fell short.
	Reason string
	// RequestID correlates the event with the HTTP request that caused it.
	RequestID string
	// ClientIP and Device describe the caller for forensic review.
	ClientIP string
	Device   string
}

// AuditEvent names the verification pipeline's audit actions.
type AuditEvent string

const (
	EventDocumentProcessed      AuditEvent = "document_processed"
	EventLivenessSessionStarted AuditEvent = "liveness_session_started"
	EventLivenessVerified       AuditEvent = "liveness_verified"
	EventFacesCompared          AuditEvent = "faces_compared"
	EventVerificationCompleted  AuditEvent = "verification_completed"
)

// eventCategories maps each audit event to its category.
var eventCategories = map[AuditEvent]EventCategory{
	// The accept/reject decisions carry regulatory weight.
	EventDocumentProcessed:     CategoryCompliance,
	EventLivenessVerified:      CategoryCompliance,
	EventVerificationCompleted: CategoryCompliance,

	// Out-of-band re-checks and session churn feed security monitoring.
	EventFacesCompared:          CategorySecurity,
	EventLivenessSessionStarted: CategoryOperations,
}

// Category returns the category for this event, defaulting to operations
// for unmapped actions.
func (e AuditEvent) Category() EventCategory {
	if c, ok := eventCategories[e]; ok {
		return c
	}
	return CategoryOperations
}

// Store persists audit events.
type Store interface {
	Append(ctx context.Context, event Event) error
	List(ctx context.Context, userID domain.UserID) ([]Event, error)
}
