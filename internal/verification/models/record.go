package models

import (
	"time"

	"idverify/pkg/domain"
)

// DocumentType classifies the uploaded identity document.
type DocumentType string

const (
	DocumentTypePassport      DocumentType = "PASSPORT"
	DocumentTypeDriverLicense DocumentType = "DRIVER_LICENSE"
	DocumentTypeNationalID    DocumentType = "NATIONAL_ID"
	DocumentTypeUnknown       DocumentType = "UNKNOWN"
)

// IsValid checks if the document type is one of the supported enum values.
func (t DocumentType) IsValid() bool {
	switch t {
	case DocumentTypePassport, DocumentTypeDriverLicense, DocumentTypeNationalID, DocumentTypeUnknown:
		return true
	}
	return false
}

// String returns the string representation.
func (t DocumentType) String() string {
	return string(t)
}

// VerificationRecord is the durable per-user state tracking document,
// liveness, and face-match outcomes. One record per user, created on the
// first document submission and mutated in place by later actions; the
// pipeline never deletes it.
//
// LivenessConfidence and FaceSimilarity are pointers so "never measured" is
// distinguishable from a measured zero: the derived booleans
// (LivenessPassed, FaceMatched) are only ever set alongside their evidence.
type VerificationRecord struct {
	UserID domain.UserID `json:"user_id"`

	DocumentKey      string            `json:"document_key,omitempty"`
	ExtractedFields  map[string]string `json:"extracted_fields,omitempty"`
	DocumentType     DocumentType      `json:"document_type,omitempty"`
	DocumentValid    bool              `json:"document_valid"`
	ValidationErrors []string          `json:"validation_errors,omitempty"`

	LivenessConfidence *float64 `json:"liveness_confidence,omitempty"`
	LivenessPassed     bool     `json:"liveness_passed"`

	FaceSimilarity *float64 `json:"face_similarity,omitempty"`
	FaceMatched    bool     `json:"face_matched"`

	VerificationCompleted bool `json:"verification_completed"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewVerificationRecord creates an empty record for a user.
func NewVerificationRecord(userID domain.UserID, now time.Time) *VerificationRecord {
	return &VerificationRecord{
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ApplyDocument merges a document patch into the record. Liveness and match
// fields are untouched, so a re-upload cannot erase a prior biometric result.
func (r *VerificationRecord) ApplyDocument(p DocumentPatch, now time.Time) {
	r.DocumentKey = p.DocumentKey
	r.ExtractedFields = cloneFields(p.ExtractedFields)
	r.DocumentType = p.DocumentType
	r.DocumentValid = p.DocumentValid
	r.ValidationErrors = cloneErrors(p.ValidationErrors)
	r.UpdatedAt = now
}

// ApplyLiveness merges a liveness patch into the record. Document fields are
// untouched. VerificationCompleted only ever moves false to true.
func (r *VerificationRecord) ApplyLiveness(p LivenessPatch, now time.Time) {
	confidence := p.Confidence
	r.LivenessConfidence = &confidence
	r.LivenessPassed = p.Passed
	if p.Similarity != nil {
		similarity := *p.Similarity
		r.FaceSimilarity = &similarity
		r.FaceMatched = p.Matched
	}
	if p.Completed {
		r.VerificationCompleted = true
	}
	r.UpdatedAt = now
}

// ApplyFaceMatch merges an out-of-band re-match result into the record.
// It never touches VerificationCompleted.
func (r *VerificationRecord) ApplyFaceMatch(p FaceMatchPatch, now time.Time) {
	similarity := p.Similarity
	r.FaceSimilarity = &similarity
	r.FaceMatched = p.Matched
	r.UpdatedAt = now
}

// Clone returns a deep copy so stores can hand out records without sharing
// interior maps or slices with callers.
func (r *VerificationRecord) Clone() *VerificationRecord {
	if r == nil {
		return nil
	}
	out := *r
	out.ExtractedFields = cloneFields(r.ExtractedFields)
	out.ValidationErrors = cloneErrors(r.ValidationErrors)
	if r.LivenessConfidence != nil {
		v := *r.LivenessConfidence
		out.LivenessConfidence = &v
	}
	if r.FaceSimilarity != nil {
		v := *r.FaceSimilarity
		out.FaceSimilarity = &v
	}
	return &out
}

func cloneFields(in map[string]string) map[string]string {
	if in == nil {
		return nil
	}
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func cloneErrors(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
