package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the verification module.
type Metrics struct {
	// Document analysis outcomes by validity and document type
	DocumentsProcessed *prometheus.CounterVec

	// Liveness check outcomes
	LivenessChecks *prometheus.CounterVec

	// Face comparison outcomes
	FaceComparisons *prometheus.CounterVec

	// Verifications that reached a completed state
	VerificationsCompleted prometheus.Counter

	// End-to-end action latency by action
	ActionLatency *prometheus.HistogramVec
}

// New creates a new Metrics instance with all verification metrics registered.
func New() *Metrics {
	return &Metrics{
		DocumentsProcessed: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "idverify_documents_processed_total",
			Help: "Total documents analyzed by validity and document type",
		}, []string{"valid", "document_type"}),

		LivenessChecks: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "idverify_liveness_checks_total",
			Help: "Total liveness verifications by outcome",
		}, []string{"passed"}),

		FaceComparisons: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "idverify_face_comparisons_total",
			Help: "Total face comparisons by outcome",
		}, []string{"matched"}),

		VerificationsCompleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "idverify_verifications_completed_total",
			Help: "Total verifications that reached the completed state",
		}),

		ActionLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "idverify_action_duration_seconds",
			Help:    "Duration of verification actions including collaborator calls",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"action"}),
	}
}

// IncrementDocumentProcessed records a document analysis outcome.
func (m *Metrics) IncrementDocumentProcessed(valid bool, documentType string) {
	if m != nil {
		m.DocumentsProcessed.WithLabelValues(strconv.FormatBool(valid), documentType).Inc()
	}
}

// IncrementLivenessCheck records a liveness verification outcome.
func (m *Metrics) IncrementLivenessCheck(passed bool) {
	if m != nil {
		m.LivenessChecks.WithLabelValues(strconv.FormatBool(passed)).Inc()
	}
}

// IncrementFaceComparison records a face comparison outcome.
func (m *Metrics) IncrementFaceComparison(matched bool) {
	if m != nil {
		m.FaceComparisons.WithLabelValues(strconv.FormatBool(matched)).Inc()
	}
}

// IncrementVerificationCompleted records a verification reaching completion.
func (m *Metrics) IncrementVerificationCompleted() {
	if m != nil {
		m.VerificationsCompleted.Inc()
	}
}

// ObserveActionLatency records the duration of a dispatched action.
func (m *Metrics) ObserveActionLatency(action string, d time.Duration) {
	if m != nil {
		m.ActionLatency.WithLabelValues(action).Observe(d.Seconds())
	}
}
