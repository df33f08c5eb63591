package history

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Skufu/vitalsense/internal/insights"
	"github.com/Skufu/vitalsense/internal/symptoms"
)

var ErrInvalidSubject = errors.New("subject id is required")

// Entry is a stored symptom check.
type Entry struct {
	ID        uuid.UUID            `json:"id"`
	SubjectID string               `json:"subjectId"`
	Vitals    *symptoms.VitalSigns `json:"vitals,omitempty"`
	insights.Record
}

// Store persists checks per subject. List returns newest first.
type Store interface {
	Append(ctx context.Context, subjectID string, e Entry) (Entry, error)
	List(ctx context.Context, subjectID string, limit int) ([]Entry, error)
}

// Records strips entries down to what the history analyzer reads.
func Records(entries []Entry) []insights.Record {
	out := make([]insights.Record, len(entries))
	for i, e := range entries {
		out[i] = e.Record
	}
	return out
}

func prepare(subjectID string, e Entry) (Entry, error) {
	subjectID = strings.TrimSpace(subjectID)
	if subjectID == "" {
		return Entry{}, ErrInvalidSubject
	}
	e.SubjectID = subjectID
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.Date.IsZero() {
		e.Date = time.Now().UTC()
	}
	if e.Symptoms == nil {
		e.Symptoms = []string{}
	}
	return e, nil
}

// sortNewestFirst orders by date descending and keeps the given order for
// equal dates.
func sortNewestFirst(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})
}
