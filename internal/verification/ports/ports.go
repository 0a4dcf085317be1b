// Package ports defines the interfaces the verification orchestrator depends
// on. Collaborators (document analysis, liveness biometrics, face comparison,
// image storage) and the record store are injected at construction so tests
// can substitute fakes.
package ports

//go:generate mockgen -source=ports.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"idverify/internal/verification/models"
	"idverify/pkg/domain"
	audit "idverify/pkg/platform/audit"
	"idverify/pkg/requestcontext"
)

// FaceQuality carries the quality metrics of a detected face.
type FaceQuality struct {
	Brightness float64 `json:"brightness"`
	Sharpness  float64 `json:"sharpness"`
}

// FaceDetail describes one face detected in a document image.
type FaceDetail struct {
	Quality FaceQuality `json:"quality"`
}

// DocumentAnalysis is the structured output of the document-analysis
// collaborator: line-level text plus per-face quality metrics.
type DocumentAnalysis struct {
	TextLines []string
	Faces     []FaceDetail
}

// Text joins the extracted lines into one block for substring and regex
// matching.
func (a *DocumentAnalysis) Text() string {
	return strings.Join(a.TextLines, "\n")
}

// LivenessSession is the handle for a freshly created liveness capture
// session. ClientToken is the provider's opaque token; the orchestrator may
// replace it with its own signed token before returning it to the caller.
type LivenessSession struct {
	ID          string
	ClientToken string
}

// LivenessResult is a completed session's outcome. Confidence is nil when the
// provider could not produce a score; the evaluator fails closed on that.
type LivenessResult struct {
	Confidence        *float64
	ReferenceImageKey string
}

// ImageRef addresses an image either by object-store key or by raw bytes.
// Exactly one of the two should be set.
type ImageRef struct {
	Key   string
	Bytes []byte
}

// FaceMatchCandidate is one ranked match returned by the comparison service.
type FaceMatchCandidate struct {
	Similarity float64
}

// DocumentAnalyzer turns a stored document image into structured text and
// detected faces.
type DocumentAnalyzer interface {
	Analyze(ctx context.Context, imageKey string) (*DocumentAnalysis, error)
}

// LivenessProvider manages biometric liveness sessions.
type LivenessProvider interface {
	// CreateSession opens a capture session scoped to the user, retaining at
	// most auditImagesLimit audit captures.
	CreateSession(ctx context.Context, userID domain.UserID, auditImagesLimit int) (*LivenessSession, error)

	// SessionResult fetches the outcome of a completed session.
	SessionResult(ctx context.Context, sessionID domain.SessionID) (*LivenessResult, error)
}

// FaceComparer compares two face images and returns zero or more ranked
// match candidates. Zero candidates is a normal negative result.
type FaceComparer interface {
	Compare(ctx context.Context, source, target ImageRef, similarityThreshold float64) ([]FaceMatchCandidate, error)
}

// ImageStore fetches stored images by key.
type ImageStore interface {
	Fetch(ctx context.Context, key string) ([]byte, error)
}

// RecordStore persists verification records keyed by user. Mutations are
// typed field-merge patches; a liveness update can never erase previously
// stored document fields. Get wraps sentinel.ErrNotFound for unknown users.
type RecordStore interface {
	Get(ctx context.Context, userID domain.UserID) (*models.VerificationRecord, error)

	// ApplyDocument upserts: it creates the record on a user's first
	// document submission and merges on retries.
	ApplyDocument(ctx context.Context, userID domain.UserID, patch models.DocumentPatch, now time.Time) (*models.VerificationRecord, error)

	// ApplyLiveness and ApplyFaceMatch require an existing record and wrap
	// sentinel.ErrNotFound otherwise.
	ApplyLiveness(ctx context.Context, userID domain.UserID, patch models.LivenessPatch, now time.Time) (*models.VerificationRecord, error)
	ApplyFaceMatch(ctx context.Context, userID domain.UserID, patch models.FaceMatchPatch, now time.Time) (*models.VerificationRecord, error)
}

// AuditPublisher emits audit events for verification decisions.
type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// LogAudit logs a verification event and emits it to the audit publisher if
// one is configured. Request metadata from the context enriches the event.
func LogAudit(ctx context.Context, logger *slog.Logger, publisher AuditPublisher, userID domain.UserID, action audit.AuditEvent, decision, reason string) {
	if logger != nil {
		logger.InfoContext(ctx, string(action),
			"user_id", userID.String(),
			"decision", decision,
			"reason", reason,
			"request_id", requestcontext.RequestID(ctx),
			"log_type", "audit",
		)
	}

	if publisher == nil {
		return
	}
	event := audit.Event{
		Timestamp: requestcontext.Now(ctx),
		UserID:    userID,
		Action:    string(action),
		Decision:  decision,
		Reason:    reason,
		RequestID: requestcontext.RequestID(ctx),
		ClientIP:  requestcontext.ClientIP(ctx),
		Device:    requestcontext.Device(ctx),
	}
	if err := publisher.Emit(ctx, event); err != nil && logger != nil {
		logger.WarnContext(ctx, "failed to emit audit event", "event", string(action), "error", err)
	}
}
