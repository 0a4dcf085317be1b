package models

import (
	"idverify/pkg/domain"
	dErrors "idverify/pkg/domain-errors"
)

// Action discriminates the verification API's request variants. The handler
// dispatches on it with one typed handler per variant; adding an action means
// adding a constant here and a case there, keeping the switch exhaustive.
type Action string

const (
	ActionProcessDocument      Action = "process_document"
	ActionStartLivenessSession Action = "start_liveness_session"
	ActionVerifyLiveness       Action = "verify_liveness"
	ActionCompareFaces         Action = "compare_faces"
)

// ParseAction validates an action string from the wire.
func ParseAction(s string) (Action, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "action is required")
	}
	a := Action(s)
	if !a.IsValid() {
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid action: "+s)
	}
	return a, nil
}

// IsValid checks the action is one of the supported values.
func (a Action) IsValid() bool {
	switch a {
	case ActionProcessDocument, ActionStartLivenessSession, ActionVerifyLiveness, ActionCompareFaces:
		return true
	}
	return false
}

// String returns the string representation.
func (a Action) String() string {
	return string(a)
}

// ProcessDocumentRequest asks for analysis and validation of a document
// image already stored at DocumentKey.
type ProcessDocumentRequest struct {
	UserID      domain.UserID
	DocumentKey string
}

// StartLivenessSessionRequest asks the biometric provider for a fresh
// liveness session scoped to the user.
type StartLivenessSessionRequest struct {
	UserID domain.UserID
}

// VerifyLivenessRequest asks for evaluation of a completed liveness session
// and, on pass, a face match against the stored document.
type VerifyLivenessRequest struct {
	UserID    domain.UserID
	SessionID domain.SessionID
}

// CompareFacesRequest asks for an out-of-band re-match between the stored
// document and an arbitrary second image.
type CompareFacesRequest struct {
	UserID         domain.UserID
	SourceImageKey string
}
