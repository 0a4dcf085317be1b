// Package validator judges whether extracted document content and detected
// faces meet the acceptance criteria. Everything here is a pure function over
// the analysis result; persistence belongs to the orchestrator.
package validator

import (
	"fmt"
	"regexp"
	"strings"

	"idverify/internal/verification/models"
	"idverify/internal/verification/ports"
)

// Quality bounds for the document face photo.
const (
	minBrightness = 50.0
	maxBrightness = 150.0
	minSharpness  = 50.0
)

// requiredFields must each appear (case-insensitive) in the extracted text.
var requiredFields = []string{"name", "date of birth", "id number"}

// Result is the document verdict with its evidence. All rule violations are
// reported, not just the first.
type Result struct {
	Valid  bool
	Errors []string
}

// Validate applies every acceptance rule independently and collects all
// violations. A rejected document is a normal outcome, never an error.
func Validate(analysis *ports.DocumentAnalysis) Result {
	var errs []string

	text := strings.ToLower(analysis.Text())
	for _, field := range requiredFields {
		if !strings.Contains(text, field) {
			errs = append(errs, "missing field: "+field)
		}
	}

	// Zero faces and group photos are rejected equally, naming the count.
	if len(analysis.Faces) != 1 {
		errs = append(errs, fmt.Sprintf("document must contain exactly one face (found %d)", len(analysis.Faces)))
	} else {
		quality := analysis.Faces[0].Quality
		if quality.Brightness < minBrightness || quality.Brightness > maxBrightness {
			errs = append(errs, "face brightness out of range")
		}
		if quality.Sharpness < minSharpness {
			errs = append(errs, "face image not sharp enough")
		}
	}

	return Result{Valid: len(errs) == 0, Errors: errs}
}

// Document-type vocabularies. Best effort: an unmatched document is UNKNOWN
// and that alone does not invalidate it.
var (
	passportPattern      = regexp.MustCompile(`(?i)passport|passeport|pasaporte`)
	driverLicensePattern = regexp.MustCompile(`(?i)driver|license|permis|conduire`)
	nationalIDPattern    = regexp.MustCompile(`(?i)national|id card|identity|identité`)
)

// ClassifyDocumentType derives the document type from the extracted text.
// Callers classify once per analysis and reuse the value for both persistence
// and the response.
func ClassifyDocumentType(text string) models.DocumentType {
	switch {
	case passportPattern.MatchString(text):
		return models.DocumentTypePassport
	case driverLicensePattern.MatchString(text):
		return models.DocumentTypeDriverLicense
	case nationalIDPattern.MatchString(text):
		return models.DocumentTypeNationalID
	default:
		return models.DocumentTypeUnknown
	}
}

// Key-field extraction patterns. Line-oriented: each captures the remainder
// of the line after its label.
var (
	namePattern = regexp.MustCompile(`(?i)name[\s:]*([^\n]+)`)
	dobPattern  = regexp.MustCompile(`(?i)date of birth[\s:]*([^\n]+)`)
	idPattern   = regexp.MustCompile(`(?i)(id|number|no)[\s:]*([^\n]+)`)
)

// ExtractKeyFields pulls the summary fields (full name, date of birth,
// document number) out of the extracted text. Absent fields are simply
// omitted; completeness is the validator's concern, not the extractor's.
func ExtractKeyFields(text string) map[string]string {
	fields := make(map[string]string)

	if m := namePattern.FindStringSubmatch(text); m != nil {
		fields["full_name"] = strings.TrimSpace(m[1])
	}
	if m := dobPattern.FindStringSubmatch(text); m != nil {
		fields["date_of_birth"] = strings.TrimSpace(m[1])
	}
	if m := idPattern.FindStringSubmatch(text); m != nil {
		fields["document_number"] = strings.TrimSpace(m[2])
	}

	return fields
}
