// Package service orchestrates the verification pipeline: document analysis,
// liveness evaluation and face matching. The service owns sequencing,
// preconditions and persistence; the judges under validator, liveness and
// facematch own the verdicts.
package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"idverify/internal/sessiontoken"
	"idverify/internal/verification/facematch"
	"idverify/internal/verification/liveness"
	"idverify/internal/verification/metrics"
	"idverify/internal/verification/models"
	"idverify/internal/verification/ports"
	"idverify/internal/verification/validator"
	"idverify/pkg/domain"
	dErrors "idverify/pkg/domain-errors"
	"idverify/pkg/platform/audit"
	"idverify/pkg/platform/sentinel"
	"idverify/pkg/requestcontext"
)

const tracerName = "idverify/internal/verification/service"

// Deps are the required collaborators. New rejects a missing dependency so a
// miswired server fails at startup, not on the first request.
type Deps struct {
	Records   ports.RecordStore
	Analyzer  ports.DocumentAnalyzer
	Liveness  ports.LivenessProvider
	Comparer  ports.FaceComparer
	Images    ports.ImageStore
	Evaluator *liveness.Evaluator
	Matcher   *facematch.Matcher
}

// Service coordinates the verification collaborators for one user at a time.
type Service struct {
	deps             Deps
	logger           *slog.Logger
	auditPublisher   ports.AuditPublisher
	metrics          *metrics.Metrics
	sessionTokens    *sessiontoken.Issuer
	auditImagesLimit int
	tracer           trace.Tracer
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithAuditPublisher(publisher ports.AuditPublisher) Option {
	return func(s *Service) {
		s.auditPublisher = publisher
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithSessionTokens makes the service replace the provider's opaque client
// token with a signed token binding the session to the user.
func WithSessionTokens(issuer *sessiontoken.Issuer) Option {
	return func(s *Service) {
		s.sessionTokens = issuer
	}
}

// WithAuditImagesLimit sets how many audit captures the liveness provider
// retains per session.
func WithAuditImagesLimit(limit int) Option {
	return func(s *Service) {
		s.auditImagesLimit = limit
	}
}

// New constructs a Service.
func New(deps Deps, opts ...Option) (*Service, error) {
	switch {
	case deps.Records == nil:
		return nil, errors.New("service: record store is required")
	case deps.Analyzer == nil:
		return nil, errors.New("service: document analyzer is required")
	case deps.Liveness == nil:
		return nil, errors.New("service: liveness provider is required")
	case deps.Comparer == nil:
		return nil, errors.New("service: face comparer is required")
	case deps.Images == nil:
		return nil, errors.New("service: image store is required")
	case deps.Evaluator == nil:
		return nil, errors.New("service: liveness evaluator is required")
	case deps.Matcher == nil:
		return nil, errors.New("service: face matcher is required")
	}

	s := &Service{
		deps:   deps,
		tracer: otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// ProcessDocument analyzes a stored document image, validates it, classifies
// its type and persists the outcome. An invalid document is persisted and
// reported as a normal result; only collaborator and store failures are
// errors, and on an analysis failure the record is left untouched.
func (s *Service) ProcessDocument(ctx context.Context, req models.ProcessDocumentRequest) (*models.ProcessDocumentResult, error) {
	ctx, span := s.tracer.Start(ctx, "verification.ProcessDocument",
		trace.WithAttributes(attribute.String("user_id", req.UserID.String())))
	defer span.End()

	analysis, err := s.deps.Analyzer.Analyze(ctx, req.DocumentKey)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "document analysis failed")
	}

	verdict := validator.Validate(analysis)
	text := analysis.Text()
	docType := validator.ClassifyDocumentType(text)
	fields := validator.ExtractKeyFields(text)

	record, err := s.deps.Records.ApplyDocument(ctx, req.UserID, models.DocumentPatch{
		DocumentKey:      req.DocumentKey,
		ExtractedFields:  fields,
		DocumentType:     docType,
		DocumentValid:    verdict.Valid,
		ValidationErrors: verdict.Errors,
	}, requestcontext.Now(ctx))
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to persist document outcome")
	}

	s.metrics.IncrementDocumentProcessed(verdict.Valid, docType.String())
	ports.LogAudit(ctx, s.logger, s.auditPublisher, req.UserID, audit.EventDocumentProcessed,
		documentDecision(verdict.Valid), strings.Join(verdict.Errors, "; "))

	return &models.ProcessDocumentResult{
		DocumentKey:      req.DocumentKey,
		IsValid:          verdict.Valid,
		DocumentType:     docType,
		ValidationErrors: verdict.Errors,
		Fields:           record.ExtractedFields,
	}, nil
}

// StartLivenessSession opens a capture session with the biometric provider.
// Nothing is persisted; a session only leaves a trace once it is verified.
func (s *Service) StartLivenessSession(ctx context.Context, req models.StartLivenessSessionRequest) (*models.StartLivenessSessionResult, error) {
	ctx, span := s.tracer.Start(ctx, "verification.StartLivenessSession",
		trace.WithAttributes(attribute.String("user_id", req.UserID.String())))
	defer span.End()

	session, err := s.deps.Liveness.CreateSession(ctx, req.UserID, s.auditImagesLimit)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "failed to create liveness session")
	}

	token := session.ClientToken
	if s.sessionTokens != nil {
		token, err = s.sessionTokens.Issue(domain.SessionID(session.ID), req.UserID, requestcontext.Now(ctx))
		if err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to sign session token")
		}
	}

	ports.LogAudit(ctx, s.logger, s.auditPublisher, req.UserID, audit.EventLivenessSessionStarted,
		"session_created", "")

	return &models.StartLivenessSessionResult{
		SessionID:    session.ID,
		SessionToken: token,
	}, nil
}

// VerifyLiveness evaluates a completed liveness session and, when liveness
// passes, matches the capture's reference face against the stored document.
// The document precondition is checked before any biometric call is made.
func (s *Service) VerifyLiveness(ctx context.Context, req models.VerifyLivenessRequest) (*models.VerifyLivenessResult, error) {
	ctx, span := s.tracer.Start(ctx, "verification.VerifyLiveness",
		trace.WithAttributes(attribute.String("user_id", req.UserID.String())))
	defer span.End()

	record, err := s.requireDocument(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	result, err := s.deps.Liveness.SessionResult(ctx, req.SessionID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "failed to fetch liveness session result")
	}

	outcome := s.deps.Evaluator.Evaluate(result.Confidence)
	if !outcome.Passed {
		if _, err := s.deps.Records.ApplyLiveness(ctx, req.UserID, models.LivenessPatch{
			Confidence: outcome.Confidence,
			Passed:     false,
		}, requestcontext.Now(ctx)); err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to persist liveness outcome")
		}
		s.metrics.IncrementLivenessCheck(false)
		ports.LogAudit(ctx, s.logger, s.auditPublisher, req.UserID, audit.EventLivenessVerified,
			"rejected", outcome.Reason)

		return &models.VerifyLivenessResult{
			IsLive:     false,
			Confidence: outcome.Confidence,
			Reason:     outcome.Reason,
		}, nil
	}

	// Liveness passed: match the provider's reference capture against the
	// stored document image.
	refBytes, err := s.deps.Images.Fetch(ctx, result.ReferenceImageKey)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "failed to fetch liveness reference image")
	}

	candidates, err := s.deps.Comparer.Compare(ctx,
		ports.ImageRef{Key: record.DocumentKey},
		ports.ImageRef{Bytes: refBytes},
		s.deps.Matcher.Threshold())
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "face comparison failed")
	}
	match := s.deps.Matcher.Decide(candidates)

	completed := match.Matched
	if _, err := s.deps.Records.ApplyLiveness(ctx, req.UserID, models.LivenessPatch{
		Confidence: outcome.Confidence,
		Passed:     true,
		Similarity: &match.Similarity,
		Matched:    match.Matched,
		Completed:  completed,
	}, requestcontext.Now(ctx)); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to persist liveness outcome")
	}

	s.metrics.IncrementLivenessCheck(true)
	s.metrics.IncrementFaceComparison(match.Matched)
	ports.LogAudit(ctx, s.logger, s.auditPublisher, req.UserID, audit.EventLivenessVerified, "accepted", "")
	ports.LogAudit(ctx, s.logger, s.auditPublisher, req.UserID, audit.EventFacesCompared,
		matchDecision(match.Matched), "")
	if completed {
		s.metrics.IncrementVerificationCompleted()
		ports.LogAudit(ctx, s.logger, s.auditPublisher, req.UserID, audit.EventVerificationCompleted, "completed", "")
	}

	return &models.VerifyLivenessResult{
		IsLive:     true,
		Confidence: outcome.Confidence,
		FaceMatch:  match.Matched,
		Similarity: match.Similarity,
		Completed:  completed,
	}, nil
}

// CompareFaces re-matches the stored document against an arbitrary second
// image. It updates match evidence only and never flips the completion flag.
func (s *Service) CompareFaces(ctx context.Context, req models.CompareFacesRequest) (*models.CompareFacesResult, error) {
	ctx, span := s.tracer.Start(ctx, "verification.CompareFaces",
		trace.WithAttributes(attribute.String("user_id", req.UserID.String())))
	defer span.End()

	record, err := s.requireDocument(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	candidates, err := s.deps.Comparer.Compare(ctx,
		ports.ImageRef{Key: req.SourceImageKey},
		ports.ImageRef{Key: record.DocumentKey},
		s.deps.Matcher.Threshold())
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "face comparison failed")
	}
	match := s.deps.Matcher.Decide(candidates)

	if _, err := s.deps.Records.ApplyFaceMatch(ctx, req.UserID, models.FaceMatchPatch{
		Similarity: match.Similarity,
		Matched:    match.Matched,
	}, requestcontext.Now(ctx)); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to persist face match outcome")
	}

	s.metrics.IncrementFaceComparison(match.Matched)
	ports.LogAudit(ctx, s.logger, s.auditPublisher, req.UserID, audit.EventFacesCompared,
		matchDecision(match.Matched), "")

	return &models.CompareFacesResult{
		Matched:    match.Matched,
		Similarity: match.Similarity,
	}, nil
}

// requireDocument enforces the shared precondition for the biometric actions:
// the user must have a processed document on file before any comparison.
func (s *Service) requireDocument(ctx context.Context, userID domain.UserID) (*models.VerificationRecord, error) {
	record, err := s.deps.Records.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodePreconditionFailed, "no document found for comparison")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load verification record")
	}
	if record.DocumentKey == "" {
		return nil, dErrors.New(dErrors.CodePreconditionFailed, "no document found for comparison")
	}
	return record, nil
}

func documentDecision(valid bool) string {
	if valid {
		return "valid"
	}
	return "invalid"
}

func matchDecision(matched bool) string {
	if matched {
		return "matched"
	}
	return "not_matched"
}
