package history

import (
	"context"
	"strings"
	"sync"
)

// MemoryStore keeps checks in process. Used when the database is disabled.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string][]Entry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string][]Entry)}
}

func (m *MemoryStore) Append(ctx context.Context, subjectID string, e Entry) (Entry, error) {
	e, err := prepare(subjectID, e)
	if err != nil {
		return Entry{}, err
	}
	e.Symptoms = append([]string{}, e.Symptoms...)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[e.SubjectID] = append(m.entries[e.SubjectID], e)
	return e, nil
}

func (m *MemoryStore) List(ctx context.Context, subjectID string, limit int) ([]Entry, error) {
	subjectID = strings.TrimSpace(subjectID)
	if subjectID == "" {
		return nil, ErrInvalidSubject
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	stored := m.entries[subjectID]
	out := make([]Entry, 0, len(stored))
	for i := len(stored) - 1; i >= 0; i-- {
		out = append(out, stored[i])
	}
	sortNewestFirst(out)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
