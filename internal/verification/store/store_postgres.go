package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"idverify/internal/verification/models"
	"idverify/pkg/domain"
	"idverify/pkg/platform/sentinel"
)

// PostgresRecordStore persists verification records in PostgreSQL. Each typed
// patch maps onto an UPDATE of just its own columns; this store is pure I/O
// and all judgment logic stays in the service layer.
type PostgresRecordStore struct {
	db *sql.DB
}

// NewPostgresRecordStore constructs a PostgreSQL-backed record store.
func NewPostgresRecordStore(db *sql.DB) *PostgresRecordStore {
	return &PostgresRecordStore{db: db}
}

// Migrate creates the verification_records table if it does not exist.
func (s *PostgresRecordStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS verification_records (
			user_id                TEXT PRIMARY KEY,
			document_key           TEXT NOT NULL DEFAULT '',
			extracted_fields       JSONB,
			document_type          TEXT NOT NULL DEFAULT '',
			document_valid         BOOLEAN NOT NULL DEFAULT FALSE,
			validation_errors      JSONB,
			liveness_confidence    DOUBLE PRECISION,
			liveness_passed        BOOLEAN NOT NULL DEFAULT FALSE,
			face_similarity        DOUBLE PRECISION,
			face_matched           BOOLEAN NOT NULL DEFAULT FALSE,
			verification_completed BOOLEAN NOT NULL DEFAULT FALSE,
			created_at             TIMESTAMPTZ NOT NULL,
			updated_at             TIMESTAMPTZ NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("migrate verification_records: %w", err)
	}
	return nil
}

const recordColumns = `
	user_id, document_key, extracted_fields, document_type, document_valid,
	validation_errors, liveness_confidence, liveness_passed, face_similarity,
	face_matched, verification_completed, created_at, updated_at
`

func (s *PostgresRecordStore) Get(ctx context.Context, userID domain.UserID) (*models.VerificationRecord, error) {
	query := `SELECT ` + recordColumns + ` FROM verification_records WHERE user_id = $1`
	record, err := scanRecord(s.db.QueryRowContext(ctx, query, userID.String()))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("verification record for %s: %w", userID, sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("get verification record: %w", err)
	}
	return record, nil
}

// ApplyDocument upserts: ON CONFLICT only the document columns are updated,
// so retries keep any liveness and match state already on the record.
func (s *PostgresRecordStore) ApplyDocument(ctx context.Context, userID domain.UserID, patch models.DocumentPatch, now time.Time) (*models.VerificationRecord, error) {
	extracted, err := json.Marshal(patch.ExtractedFields)
	if err != nil {
		return nil, fmt.Errorf("marshal extracted fields: %w", err)
	}
	validationErrors, err := json.Marshal(patch.ValidationErrors)
	if err != nil {
		return nil, fmt.Errorf("marshal validation errors: %w", err)
	}

	query := `
		INSERT INTO verification_records (
			user_id, document_key, extracted_fields, document_type,
			document_valid, validation_errors, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		ON CONFLICT (user_id) DO UPDATE SET
			document_key      = EXCLUDED.document_key,
			extracted_fields  = EXCLUDED.extracted_fields,
			document_type     = EXCLUDED.document_type,
			document_valid    = EXCLUDED.document_valid,
			validation_errors = EXCLUDED.validation_errors,
			updated_at        = EXCLUDED.updated_at
		RETURNING ` + recordColumns
	record, err := scanRecord(s.db.QueryRowContext(ctx, query,
		userID.String(),
		patch.DocumentKey,
		extracted,
		patch.DocumentType.String(),
		patch.DocumentValid,
		validationErrors,
		now,
	))
	if err != nil {
		return nil, fmt.Errorf("apply document patch: %w", err)
	}
	return record, nil
}

// ApplyLiveness updates the liveness and match columns. The completed flag is
// ORed with its stored value so it never reverts to false.
func (s *PostgresRecordStore) ApplyLiveness(ctx context.Context, userID domain.UserID, patch models.LivenessPatch, now time.Time) (*models.VerificationRecord, error) {
	query := `
		UPDATE verification_records SET
			liveness_confidence    = $2,
			liveness_passed        = $3,
			face_similarity        = COALESCE($4, face_similarity),
			face_matched           = CASE WHEN $4 IS NULL THEN face_matched ELSE $5 END,
			verification_completed = verification_completed OR $6,
			updated_at             = $7
		WHERE user_id = $1
		RETURNING ` + recordColumns

	var similarity sql.NullFloat64
	if patch.Similarity != nil {
		similarity = sql.NullFloat64{Float64: *patch.Similarity, Valid: true}
	}

	record, err := scanRecord(s.db.QueryRowContext(ctx, query,
		userID.String(),
		patch.Confidence,
		patch.Passed,
		similarity,
		patch.Matched,
		patch.Completed,
		now,
	))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("verification record for %s: %w", userID, sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("apply liveness patch: %w", err)
	}
	return record, nil
}

func (s *PostgresRecordStore) ApplyFaceMatch(ctx context.Context, userID domain.UserID, patch models.FaceMatchPatch, now time.Time) (*models.VerificationRecord, error) {
	query := `
		UPDATE verification_records SET
			face_similarity = $2,
			face_matched    = $3,
			updated_at      = $4
		WHERE user_id = $1
		RETURNING ` + recordColumns
	record, err := scanRecord(s.db.QueryRowContext(ctx, query,
		userID.String(),
		patch.Similarity,
		patch.Matched,
		now,
	))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("verification record for %s: %w", userID, sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("apply face match patch: %w", err)
	}
	return record, nil
}

func scanRecord(row *sql.Row) (*models.VerificationRecord, error) {
	var (
		record           models.VerificationRecord
		userID           string
		documentType     string
		extracted        []byte
		validationErrors []byte
		confidence       sql.NullFloat64
		similarity       sql.NullFloat64
	)

	err := row.Scan(
		&userID,
		&record.DocumentKey,
		&extracted,
		&documentType,
		&record.DocumentValid,
		&validationErrors,
		&confidence,
		&record.LivenessPassed,
		&similarity,
		&record.FaceMatched,
		&record.VerificationCompleted,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	record.UserID = domain.UserID(userID)
	record.DocumentType = models.DocumentType(documentType)
	if len(extracted) > 0 {
		if err := json.Unmarshal(extracted, &record.ExtractedFields); err != nil {
			return nil, fmt.Errorf("decode extracted fields: %w", err)
		}
	}
	if len(validationErrors) > 0 {
		if err := json.Unmarshal(validationErrors, &record.ValidationErrors); err != nil {
			return nil, fmt.Errorf("decode validation errors: %w", err)
		}
	}
	if confidence.Valid {
		record.LivenessConfidence = &confidence.Float64
	}
	if similarity.Valid {
		record.FaceSimilarity = &similarity.Float64
	}

	return &record, nil
}
