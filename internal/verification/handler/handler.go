// Package handler exposes the verification pipeline over HTTP. The API is a
// single action-dispatch endpoint: POST /verify with an action field naming
// the operation, matching what the capture front end sends.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/go-chi/chi/v5"

	"idverify/internal/verification/metrics"
	"idverify/internal/verification/models"
	"idverify/pkg/domain"
	dErrors "idverify/pkg/domain-errors"
	"idverify/pkg/platform/httputil"
	"idverify/pkg/requestcontext"
)

// Service defines the verification operations the handler dispatches to.
type Service interface {
	ProcessDocument(ctx context.Context, req models.ProcessDocumentRequest) (*models.ProcessDocumentResult, error)
	StartLivenessSession(ctx context.Context, req models.StartLivenessSessionRequest) (*models.StartLivenessSessionResult, error)
	VerifyLiveness(ctx context.Context, req models.VerifyLivenessRequest) (*models.VerifyLivenessResult, error)
	CompareFaces(ctx context.Context, req models.CompareFacesRequest) (*models.CompareFacesResult, error)
}

// Handler wires the verification endpoint to the orchestrator service.
type Handler struct {
	service Service
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// New constructs a verification handler with its dependencies.
func New(service Service, logger *slog.Logger, metrics *metrics.Metrics) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
		metrics: metrics,
	}
}

// Register mounts the verification endpoint on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/verify", h.HandleVerify)
}

// envelope is the wire request. Which fields are required depends on the
// action; the per-action handlers enforce that.
type envelope struct {
	Action         string `json:"action"`
	UserID         string `json:"userId"`
	DocumentKey    string `json:"documentKey"`
	SessionID      string `json:"sessionId"`
	SourceImageKey string `json:"sourceImageKey"`
}

type successResponse struct {
	Success bool   `json:"success"`
	Action  string `json:"action"`
	Result  any    `json:"result"`
}

// HandleVerify handles POST /verify requests.
func (h *Handler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	var env envelope
	if err := json.NewDecoder(r.Body).Decode(&env); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "request body must be valid JSON"))
		return
	}

	action, err := models.ParseAction(env.Action)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	userID, err := domain.ParseUserID(env.UserID)
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "userId is invalid: "+err.Error()))
		return
	}

	var result any
	switch action {
	case models.ActionProcessDocument:
		result, err = h.handleProcessDocument(ctx, userID, env)
	case models.ActionStartLivenessSession:
		result, err = h.service.StartLivenessSession(ctx, models.StartLivenessSessionRequest{UserID: userID})
	case models.ActionVerifyLiveness:
		result, err = h.handleVerifyLiveness(ctx, userID, env)
	case models.ActionCompareFaces:
		result, err = h.handleCompareFaces(ctx, userID, env)
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "verification action failed",
			"request_id", requestID,
			"user_id", userID,
			"action", action.String(),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.metrics.ObserveActionLatency(action.String(), time.Since(start))
	h.logger.InfoContext(ctx, "verification action handled",
		"request_id", requestID,
		"user_id", userID,
		"action", action.String(),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, http.StatusOK, successResponse{
		Success: true,
		Action:  action.String(),
		Result:  result,
	})
}

func (h *Handler) handleProcessDocument(ctx context.Context, userID domain.UserID, env envelope) (any, error) {
	if err := requireImageKey("documentKey", env.DocumentKey); err != nil {
		return nil, err
	}
	return h.service.ProcessDocument(ctx, models.ProcessDocumentRequest{
		UserID:      userID,
		DocumentKey: env.DocumentKey,
	})
}

func (h *Handler) handleVerifyLiveness(ctx context.Context, userID domain.UserID, env envelope) (any, error) {
	sessionID, err := domain.ParseSessionID(env.SessionID)
	if err != nil {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "sessionId is invalid: "+err.Error())
	}
	return h.service.VerifyLiveness(ctx, models.VerifyLivenessRequest{
		UserID:    userID,
		SessionID: sessionID,
	})
}

func (h *Handler) handleCompareFaces(ctx context.Context, userID domain.UserID, env envelope) (any, error) {
	if err := requireImageKey("sourceImageKey", env.SourceImageKey); err != nil {
		return nil, err
	}
	return h.service.CompareFaces(ctx, models.CompareFacesRequest{
		UserID:         userID,
		SourceImageKey: env.SourceImageKey,
	})
}

func requireImageKey(field, value string) error {
	if value == "" {
		return dErrors.New(dErrors.CodeInvalidInput, field+" is required")
	}
	if !govalidator.IsPrintableASCII(value) {
		return dErrors.New(dErrors.CodeInvalidInput, field+" contains invalid characters")
	}
	return nil
}
