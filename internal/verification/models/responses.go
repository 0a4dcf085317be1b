package models

// ProcessDocumentResult reports the document verdict with its evidence.
// An invalid document is a normal outcome, not an error.
type ProcessDocumentResult struct {
	DocumentKey      string            `json:"document_key"`
	IsValid          bool              `json:"is_valid"`
	DocumentType     DocumentType      `json:"document_type"`
	ValidationErrors []string          `json:"validation_errors,omitempty"`
	Fields           map[string]string `json:"fields,omitempty"`
}

// StartLivenessSessionResult carries the session handle the client needs to
// run the capture. The session is ephemeral until verified; nothing is
// persisted for it.
type StartLivenessSessionResult struct {
	SessionID    string `json:"session_id"`
	SessionToken string `json:"session_token"`
}

// VerifyLivenessResult reports the liveness verdict and, when liveness
// passed, the face-match verdict, always with the scores that produced them.
type VerifyLivenessResult struct {
	IsLive     bool    `json:"is_live"`
	Confidence float64 `json:"confidence"`
	FaceMatch  bool    `json:"face_match"`
	Similarity float64 `json:"similarity"`
	Completed  bool    `json:"verification_completed"`
	Reason     string  `json:"reason,omitempty"`
}

// CompareFacesResult reports an out-of-band re-match verdict.
type CompareFacesResult struct {
	Matched    bool    `json:"matched"`
	Similarity float64 `json:"similarity"`
}
