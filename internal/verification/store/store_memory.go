package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"idverify/internal/verification/models"
	"idverify/pkg/domain"
	"idverify/pkg/platform/sentinel"
)

// InMemoryRecordStore keeps verification records in memory. It backs unit
// tests and single-process deployments; use the Redis or Postgres store for
// anything durable.
type InMemoryRecordStore struct {
	mu      sync.RWMutex
	records map[domain.UserID]*models.VerificationRecord
}

// NewInMemoryRecordStore creates an empty in-memory store.
func NewInMemoryRecordStore() *InMemoryRecordStore {
	return &InMemoryRecordStore{
		records: make(map[domain.UserID]*models.VerificationRecord),
	}
}

func (s *InMemoryRecordStore) Get(_ context.Context, userID domain.UserID) (*models.VerificationRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records[userID]
	if !ok {
		return nil, fmt.Errorf("verification record for %s: %w", userID, sentinel.ErrNotFound)
	}
	return record.Clone(), nil
}

// ApplyDocument upserts: the record is created on a user's first document
// submission and field-merged on retries.
func (s *InMemoryRecordStore) ApplyDocument(_ context.Context, userID domain.UserID, patch models.DocumentPatch, now time.Time) (*models.VerificationRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.records[userID]
	if !ok {
		record = models.NewVerificationRecord(userID, now)
		s.records[userID] = record
	}
	record.ApplyDocument(patch, now)
	return record.Clone(), nil
}

func (s *InMemoryRecordStore) ApplyLiveness(_ context.Context, userID domain.UserID, patch models.LivenessPatch, now time.Time) (*models.VerificationRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.records[userID]
	if !ok {
		return nil, fmt.Errorf("verification record for %s: %w", userID, sentinel.ErrNotFound)
	}
	record.ApplyLiveness(patch, now)
	return record.Clone(), nil
}

func (s *InMemoryRecordStore) ApplyFaceMatch(_ context.Context, userID domain.UserID, patch models.FaceMatchPatch, now time.Time) (*models.VerificationRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.records[userID]
	if !ok {
		return nil, fmt.Errorf("verification record for %s: %w", userID, sentinel.ErrNotFound)
	}
	record.ApplyFaceMatch(patch, now)
	return record.Clone(), nil
}
