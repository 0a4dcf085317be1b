package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"idverify/internal/verification/models"
	"idverify/pkg/domain"
	"idverify/pkg/platform/sentinel"
)

// RedisRecordStore persists verification records as Redis hashes, one hash
// per user. Typed patches map onto HSET of just their own fields, so the
// field-merge contract comes straight from the data model: a liveness update
// physically cannot erase document fields.
type RedisRecordStore struct {
	client *redis.Client
	prefix string
}

// NewRedisRecordStore creates a store on the given client.
func NewRedisRecordStore(client *redis.Client) *RedisRecordStore {
	return &RedisRecordStore{client: client, prefix: "verification:record:"}
}

func (s *RedisRecordStore) key(userID domain.UserID) string {
	return s.prefix + userID.String()
}

// Hash field names. created_at is written with HSETNX so retries keep the
// original creation time.
const (
	fieldUserID             = "user_id"
	fieldDocumentKey        = "document_key"
	fieldExtractedFields    = "extracted_fields"
	fieldDocumentType       = "document_type"
	fieldDocumentValid      = "document_valid"
	fieldValidationErrors   = "validation_errors"
	fieldLivenessConfidence = "liveness_confidence"
	fieldLivenessPassed     = "liveness_passed"
	fieldFaceSimilarity     = "face_similarity"
	fieldFaceMatched        = "face_matched"
	fieldCompleted          = "verification_completed"
	fieldCreatedAt          = "created_at"
	fieldUpdatedAt          = "updated_at"
)

func (s *RedisRecordStore) Get(ctx context.Context, userID domain.UserID) (*models.VerificationRecord, error) {
	fields, err := s.client.HGetAll(ctx, s.key(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("get verification record: %w", err)
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("verification record for %s: %w", userID, sentinel.ErrNotFound)
	}
	return recordFromHash(userID, fields)
}

func (s *RedisRecordStore) ApplyDocument(ctx context.Context, userID domain.UserID, patch models.DocumentPatch, now time.Time) (*models.VerificationRecord, error) {
	extracted, err := json.Marshal(patch.ExtractedFields)
	if err != nil {
		return nil, fmt.Errorf("marshal extracted fields: %w", err)
	}
	validationErrors, err := json.Marshal(patch.ValidationErrors)
	if err != nil {
		return nil, fmt.Errorf("marshal validation errors: %w", err)
	}

	key := s.key(userID)
	pipe := s.client.TxPipeline()
	pipe.HSetNX(ctx, key, fieldCreatedAt, now.Format(time.RFC3339Nano))
	pipe.HSet(ctx, key, map[string]any{
		fieldUserID:           userID.String(),
		fieldDocumentKey:      patch.DocumentKey,
		fieldExtractedFields:  string(extracted),
		fieldDocumentType:     patch.DocumentType.String(),
		fieldDocumentValid:    formatBool(patch.DocumentValid),
		fieldValidationErrors: string(validationErrors),
		fieldUpdatedAt:        now.Format(time.RFC3339Nano),
	})
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("apply document patch: %w", err)
	}

	return s.Get(ctx, userID)
}

func (s *RedisRecordStore) ApplyLiveness(ctx context.Context, userID domain.UserID, patch models.LivenessPatch, now time.Time) (*models.VerificationRecord, error) {
	key := s.key(userID)
	if err := s.requireRecord(ctx, key, userID); err != nil {
		return nil, err
	}

	fields := map[string]any{
		fieldLivenessConfidence: formatFloat(patch.Confidence),
		fieldLivenessPassed:     formatBool(patch.Passed),
		fieldUpdatedAt:          now.Format(time.RFC3339Nano),
	}
	if patch.Similarity != nil {
		fields[fieldFaceSimilarity] = formatFloat(*patch.Similarity)
		fields[fieldFaceMatched] = formatBool(patch.Matched)
	}
	// Completed is monotonic: only ever written as true.
	if patch.Completed {
		fields[fieldCompleted] = formatBool(true)
	}

	if err := s.client.HSet(ctx, key, fields).Err(); err != nil {
		return nil, fmt.Errorf("apply liveness patch: %w", err)
	}
	return s.Get(ctx, userID)
}

func (s *RedisRecordStore) ApplyFaceMatch(ctx context.Context, userID domain.UserID, patch models.FaceMatchPatch, now time.Time) (*models.VerificationRecord, error) {
	key := s.key(userID)
	if err := s.requireRecord(ctx, key, userID); err != nil {
		return nil, err
	}

	fields := map[string]any{
		fieldFaceSimilarity: formatFloat(patch.Similarity),
		fieldFaceMatched:    formatBool(patch.Matched),
		fieldUpdatedAt:      now.Format(time.RFC3339Nano),
	}
	if err := s.client.HSet(ctx, key, fields).Err(); err != nil {
		return nil, fmt.Errorf("apply face match patch: %w", err)
	}
	return s.Get(ctx, userID)
}

func (s *RedisRecordStore) requireRecord(ctx context.Context, key string, userID domain.UserID) error {
	exists, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("check verification record: %w", err)
	}
	if exists == 0 {
		return fmt.Errorf("verification record for %s: %w", userID, sentinel.ErrNotFound)
	}
	return nil
}

func recordFromHash(userID domain.UserID, fields map[string]string) (*models.VerificationRecord, error) {
	record := &models.VerificationRecord{UserID: userID}

	record.DocumentKey = fields[fieldDocumentKey]
	record.DocumentType = models.DocumentType(fields[fieldDocumentType])
	record.DocumentValid = fields[fieldDocumentValid] == "1"
	record.LivenessPassed = fields[fieldLivenessPassed] == "1"
	record.FaceMatched = fields[fieldFaceMatched] == "1"
	record.VerificationCompleted = fields[fieldCompleted] == "1"

	if raw := fields[fieldExtractedFields]; raw != "" && raw != "null" {
		if err := json.Unmarshal([]byte(raw), &record.ExtractedFields); err != nil {
			return nil, fmt.Errorf("decode extracted fields: %w", err)
		}
	}
	if raw := fields[fieldValidationErrors]; raw != "" && raw != "null" {
		if err := json.Unmarshal([]byte(raw), &record.ValidationErrors); err != nil {
			return nil, fmt.Errorf("decode validation errors: %w", err)
		}
	}

	var err error
	if record.LivenessConfidence, err = parseFloatField(fields, fieldLivenessConfidence); err != nil {
		return nil, err
	}
	if record.FaceSimilarity, err = parseFloatField(fields, fieldFaceSimilarity); err != nil {
		return nil, err
	}
	if record.CreatedAt, err = parseTimeField(fields, fieldCreatedAt); err != nil {
		return nil, err
	}
	if record.UpdatedAt, err = parseTimeField(fields, fieldUpdatedAt); err != nil {
		return nil, err
	}

	return record, nil
}

func parseFloatField(fields map[string]string, name string) (*float64, error) {
	raw, ok := fields[name]
	if !ok || raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return &v, nil
}

func parseTimeField(fields map[string]string, name string) (time.Time, error) {
	raw, ok := fields[name]
	if !ok || raw == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("decode %s: %w", name, err)
	}
	return t, nil
}

func formatBool(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
