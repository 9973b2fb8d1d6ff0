// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-face-keeper/models"
)

// memoryFaceStore keeps everything in process memory. Records do not
// survive a restart.
type memoryFaceStore struct {
	mu           sync.RWMutex
	records      map[string]models.FaceRecord
	terminations []models.TerminationRecord
	terminated   map[string]struct{}
}

// NewMemoryFaceStore constructs an empty in-memory [FaceStore].
func NewMemoryFaceStore() FaceStore {
	return &memoryFaceStore{
		records:    make(map[string]models.FaceRecord),
		terminated: make(map[string]struct{}),
	}
}

func (m *memoryFaceStore) GetFaceRecord(_ context.Context, userID string) (models.FaceRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.records[userID]
	if !ok {
		return models.FaceRecord{}, ErrFaceRecordNotFound
	}
	return cloneRecord(record), nil
}

func (m *memoryFaceStore) PutFaceRecord(_ context.Context, record models.FaceRecord) error {
	if record.UserID == "" {
		return ErrEmptyUserID
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.records[record.UserID] = cloneRecord(record)
	return nil
}

func (m *memoryFaceStore) DeleteFaceRecord(_ context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.records, userID)
	return nil
}

func (m *memoryFaceStore) ListFaceRecords(_ context.Context) ([]models.FaceRecord, error) {
	m.mu.RLock()
	records := make([]models.FaceRecord, 0, len(m.records))
	for _, r := range m.records {
		records = append(records, cloneRecord(r))
	}
	m.mu.RUnlock()

	slices.SortFunc(records, func(a, b models.FaceRecord) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return compareStrings(a.UserID, b.UserID)
	})
	return records, nil
}

func (m *memoryFaceStore) CountFaceRecords(_ context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records), nil
}

func (m *memoryFaceStore) MarkVerified(_ context.Context, userID string, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	record, ok := m.records[userID]
	if !ok {
		return ErrFaceRecordNotFound
	}
	record.LastVerifiedAt = &at
	m.records[userID] = record
	return nil
}

func (m *memoryFaceStore) TerminateAccount(_ context.Context, termination models.TerminationRecord) error {
	if termination.UserID == "" {
		return ErrEmptyUserID
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.records, termination.UserID)
	if _, ok := m.terminated[termination.UserID]; ok {
		return nil
	}
	m.terminated[termination.UserID] = struct{}{}
	m.terminations = append(m.terminations, termination)
	return nil
}

func (m *memoryFaceStore) IsTerminated(_ context.Context, userID string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.terminated[userID]
	return ok, nil
}

func (m *memoryFaceStore) ListTerminations(_ context.Context) ([]models.TerminationRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.terminations), nil
}

func (m *memoryFaceStore) CountTerminations(_ context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.terminations), nil
}

func (m *memoryFaceStore) Close() error {
	return nil
}

func cloneRecord(r models.FaceRecord) models.FaceRecord {
	if r.LastVerifiedAt != nil {
		at := *r.LastVerifiedAt
		r.LastVerifiedAt = &at
	}
	return r
}

func compareStrings(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
