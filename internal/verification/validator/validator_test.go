package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"idverify/internal/verification/models"
	"idverify/internal/verification/ports"
)

func goodFace() ports.FaceDetail {
	return ports.FaceDetail{Quality: ports.FaceQuality{Brightness: 100, Sharpness: 80}}
}

func completeText() []string {
	return []string{
		"PASSPORT",
		"Name: Alice Example",
		"Date of Birth: 1990-01-01",
		"ID Number: X1234567",
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		analysis   ports.DocumentAnalysis
		wantValid  bool
		wantErrors []string
	}{
		{
			name: "valid document",
			analysis: ports.DocumentAnalysis{
				TextLines: completeText(),
				Faces:     []ports.FaceDetail{goodFace()},
			},
			wantValid: true,
		},
		{
			name: "required fields matched case-insensitively",
			analysis: ports.DocumentAnalysis{
				TextLines: []string{"NAME: ALICE", "DATE OF BIRTH: 1990-01-01", "ID NUMBER: X1"},
				Faces:     []ports.FaceDetail{goodFace()},
			},
			wantValid: true,
		},
		{
			name: "missing fields are each reported",
			analysis: ports.DocumentAnalysis{
				TextLines: []string{"PASSPORT"},
				Faces:     []ports.FaceDetail{goodFace()},
			},
			wantValid: false,
			wantErrors: []string{
				"missing field: name",
				"missing field: date of birth",
				"missing field: id number",
			},
		},
		{
			name: "no face",
			analysis: ports.DocumentAnalysis{
				TextLines: completeText(),
			},
			wantValid:  false,
			wantErrors: []string{"document must contain exactly one face (found 0)"},
		},
		{
			name: "group photo",
			analysis: ports.DocumentAnalysis{
				TextLines: completeText(),
				Faces:     []ports.FaceDetail{goodFace(), goodFace()},
			},
			wantValid:  false,
			wantErrors: []string{"document must contain exactly one face (found 2)"},
		},
		{
			name: "too dark",
			analysis: ports.DocumentAnalysis{
				TextLines: completeText(),
				Faces:     []ports.FaceDetail{{Quality: ports.FaceQuality{Brightness: 49.9, Sharpness: 80}}},
			},
			wantValid:  false,
			wantErrors: []string{"face brightness out of range"},
		},
		{
			name: "too bright",
			analysis: ports.DocumentAnalysis{
				TextLines: completeText(),
				Faces:     []ports.FaceDetail{{Quality: ports.FaceQuality{Brightness: 150.1, Sharpness: 80}}},
			},
			wantValid:  false,
			wantErrors: []string{"face brightness out of range"},
		},
		{
			name: "brightness bounds are inclusive",
			analysis: ports.DocumentAnalysis{
				TextLines: completeText(),
				Faces:     []ports.FaceDetail{{Quality: ports.FaceQuality{Brightness: 50, Sharpness: 50}}},
			},
			wantValid: true,
		},
		{
			name: "blurry face",
			analysis: ports.DocumentAnalysis{
				TextLines: completeText(),
				Faces:     []ports.FaceDetail{{Quality: ports.FaceQuality{Brightness: 100, Sharpness: 49.9}}},
			},
			wantValid:  false,
			wantErrors: []string{"face image not sharp enough"},
		},
		{
			name: "all violations reported together",
			analysis: ports.DocumentAnalysis{
				TextLines: []string{"some unrelated text"},
			},
			wantValid: false,
			wantErrors: []string{
				"missing field: name",
				"missing field: date of birth",
				"missing field: id number",
				"document must contain exactly one face (found 0)",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Validate(&tt.analysis)
			assert.Equal(t, tt.wantValid, result.Valid)
			assert.ElementsMatch(t, tt.wantErrors, result.Errors)
		})
	}
}

func TestClassifyDocumentType(t *testing.T) {
	tests := []struct {
		name string
		text string
		want models.DocumentType
	}{
		{"passport english", "REPUBLIC PASSPORT", models.DocumentTypePassport},
		{"passport french", "passeport de la république", models.DocumentTypePassport},
		{"passport spanish", "PASAPORTE", models.DocumentTypePassport},
		{"driver license", "DRIVER LICENSE class B", models.DocumentTypeDriverLicense},
		{"permis de conduire", "Permis de Conduire", models.DocumentTypeDriverLicense},
		{"national id", "NATIONAL ID CARD", models.DocumentTypeNationalID},
		{"identity card", "identity card of the republic", models.DocumentTypeNationalID},
		{"accented identity", "carte d'identité", models.DocumentTypeNationalID},
		{"unknown", "library membership card", models.DocumentTypeUnknown},
		// Passport wins when several vocabularies match.
		{"passport beats license", "passport number / license", models.DocumentTypePassport},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyDocumentType(tt.text))
		})
	}
}

func TestExtractKeyFields(t *testing.T) {
	text := "PASSPORT\nName: Alice Example\nDate of Birth: 1990-01-01\nID: X1234567"

	fields := ExtractKeyFields(text)
	assert.Equal(t, "Alice Example", fields["full_name"])
	assert.Equal(t, "1990-01-01", fields["date_of_birth"])
	assert.Equal(t, "X1234567", fields["document_number"])
}

func TestExtractKeyFields_LabelPrefixIsCaptured(t *testing.T) {
	// The id pattern anchors on the first id/number/no token, so a
	// compound label leaks its remainder into the value.
	fields := ExtractKeyFields("ID Number: X1234567")
	assert.Equal(t, "Number: X1234567", fields["document_number"])
}

func TestExtractKeyFields_AbsentFieldsOmitted(t *testing.T) {
	fields := ExtractKeyFields("nothing useful here")
	assert.Empty(t, fields)
}

func TestExtractKeyFields_PartialDocument(t *testing.T) {
	fields := ExtractKeyFields("Name: Bob\nsome other line")
	assert.Equal(t, "Bob", fields["full_name"])
	assert.NotContains(t, fields, "date_of_birth")
}
