package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"idverify/pkg/domain"
)

func TestDocumentType_IsValid(t *testing.T) {
	for _, dt := range []DocumentType{DocumentTypePassport, DocumentTypeDriverLicense, DocumentTypeNationalID, DocumentTypeUnknown} {
		assert.True(t, dt.IsValid(), dt)
	}
	assert.False(t, DocumentType("VOTER_CARD").IsValid())
	assert.False(t, DocumentType("").IsValid())
}

func TestApplyDocument_LeavesBiometricStateAlone(t *testing.T) {
	now := time.Now()
	r := NewVerificationRecord(domain.UserID("alice"), now)

	confidence := 95.0
	r.ApplyLiveness(LivenessPatch{Confidence: confidence, Passed: true, Completed: true}, now)

	r.ApplyDocument(DocumentPatch{
		DocumentKey:   "v2.jpg",
		DocumentType:  DocumentTypePassport,
		DocumentValid: true,
	}, now.Add(time.Minute))

	assert.Equal(t, "v2.jpg", r.DocumentKey)
	require.NotNil(t, r.LivenessConfidence)
	assert.Equal(t, 95.0, *r.LivenessConfidence)
	assert.True(t, r.LivenessPassed)
	assert.True(t, r.VerificationCompleted)
}

func TestApplyLiveness_CompletionIsMonotonic(t *testing.T) {
	now := time.Now()
	r := NewVerificationRecord(domain.UserID("alice"), now)

	similarity := 91.0
	r.ApplyLiveness(LivenessPatch{
		Confidence: 95.0,
		Passed:     true,
		Similarity: &similarity,
		Matched:    true,
		Completed:  true,
	}, now)
	assert.True(t, r.VerificationCompleted)

	// A later failed session records its evidence but cannot undo
	// completion, and without a similarity it leaves match state alone.
	r.ApplyLiveness(LivenessPatch{Confidence: 40.0, Passed: false}, now.Add(time.Minute))
	assert.False(t, r.LivenessPassed)
	assert.True(t, r.VerificationCompleted)
	require.NotNil(t, r.FaceSimilarity)
	assert.Equal(t, 91.0, *r.FaceSimilarity)
	assert.True(t, r.FaceMatched)
}

func TestApplyFaceMatch_NeverTouchesCompletion(t *testing.T) {
	now := time.Now()
	r := NewVerificationRecord(domain.UserID("alice"), now)
	r.VerificationCompleted = true

	r.ApplyFaceMatch(FaceMatchPatch{Similarity: 30.0, Matched: false}, now)
	assert.True(t, r.VerificationCompleted)
	assert.False(t, r.FaceMatched)
	require.NotNil(t, r.FaceSimilarity)
	assert.Equal(t, 30.0, *r.FaceSimilarity)
}

func TestClone_IsDeep(t *testing.T) {
	now := time.Now()
	r := NewVerificationRecord(domain.UserID("alice"), now)
	r.ApplyDocument(DocumentPatch{
		ExtractedFields:  map[string]string{"full_name": "Alice"},
		ValidationErrors: []string{"missing field: id number"},
	}, now)
	confidence := 95.0
	r.LivenessConfidence = &confidence

	clone := r.Clone()
	clone.ExtractedFields["full_name"] = "Mallory"
	clone.ValidationErrors[0] = "tampered"
	*clone.LivenessConfidence = 1.0

	assert.Equal(t, "Alice", r.ExtractedFields["full_name"])
	assert.Equal(t, "missing field: id number", r.ValidationErrors[0])
	assert.Equal(t, 95.0, *r.LivenessConfidence)
}

func TestClone_Nil(t *testing.T) {
	var r *VerificationRecord
	assert.Nil(t, r.Clone())
}

func TestParseAction(t *testing.T) {
	tests := []struct {
		input   string
		want    Action
		wantErr bool
	}{
		{"process_document", ActionProcessDocument, false},
		{"start_liveness_session", ActionStartLivenessSession, false},
		{"verify_liveness", ActionVerifyLiveness, false},
		{"compare_faces", ActionCompareFaces, false},
		{"", "", true},
		{"PROCESS_DOCUMENT", "", true},
		{"unknown", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAction(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
