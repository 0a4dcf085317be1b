package models

// Typed patches name exactly the fields each action is allowed to touch.
// Stores apply them as field-level merges, never whole-record overwrites, so
// concurrent actions for the same user cannot clobber each other's fields.

// DocumentPatch is written by process_document.
type DocumentPatch struct {
	DocumentKey      string
	ExtractedFields  map[string]string
	DocumentType     DocumentType
	DocumentValid    bool
	ValidationErrors []string
}

// LivenessPatch is written by verify_liveness. Similarity is nil when the
// liveness check failed before any face comparison ran; Matched is only
// meaningful when Similarity is set. Completed true marks the record as
// fully verified; stores must treat the flag as monotonic and never write
// a false over a stored true.
type LivenessPatch struct {
	Confidence float64
	Passed     bool
	Similarity *float64
	Matched    bool
	Completed  bool
}

// FaceMatchPatch is written by compare_faces. It deliberately has no
// Completed field: an out-of-band re-check cannot change the completion
// status either way.
type FaceMatchPatch struct {
	Similarity float64
	Matched    bool
}
