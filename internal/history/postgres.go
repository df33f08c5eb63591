package history

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Skufu/vitalsense/internal/knowledge"
	"github.com/Skufu/vitalsense/internal/symptoms"
)

const schema = `
CREATE TABLE IF NOT EXISTS symptom_checks (
	id          UUID PRIMARY KEY,
	subject_id  TEXT NOT NULL,
	checked_at  TIMESTAMPTZ NOT NULL,
	symptoms    TEXT[] NOT NULL,
	risk_level  TEXT NOT NULL,
	condition   TEXT NOT NULL DEFAULT '',
	vitals      JSONB
);
CREATE INDEX IF NOT EXISTS symptom_checks_subject_idx
	ON symptom_checks (subject_id, checked_at DESC);`

const entryCols = `id, subject_id, checked_at, symptoms, risk_level, condition, vitals`

type queryable interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// PostgresStore keeps checks in the symptom_checks table.
type PostgresStore struct {
	db queryable
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: pool}
}

// EnsureSchema creates the table and index when missing.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) Append(ctx context.Context, subjectID string, e Entry) (Entry, error) {
	e, err := prepare(subjectID, e)
	if err != nil {
		return Entry{}, err
	}

	var vitals []byte
	if e.Vitals != nil {
		if vitals, err = json.Marshal(e.Vitals); err != nil {
			return Entry{}, fmt.Errorf("encode vitals: %w", err)
		}
	}

	_, err = s.db.Exec(ctx, `
		INSERT INTO symptom_checks (`+entryCols+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		e.ID, e.SubjectID, e.Date, e.Symptoms, string(e.Risk), e.Condition, vitals)
	if err != nil {
		return Entry{}, fmt.Errorf("insert check: %w", err)
	}
	return e, nil
}

func (s *PostgresStore) List(ctx context.Context, subjectID string, limit int) ([]Entry, error) {
	subjectID = strings.TrimSpace(subjectID)
	if subjectID == "" {
		return nil, ErrInvalidSubject
	}

	var lim any
	if limit > 0 {
		lim = limit
	}
	rows, err := s.db.Query(ctx, `
		SELECT `+entryCols+` FROM symptom_checks
		WHERE subject_id = $1
		ORDER BY checked_at DESC
		LIMIT $2`, subjectID, lim)
	if err != nil {
		return nil, fmt.Errorf("query checks: %w", err)
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read checks: %w", err)
	}
	return entries, nil
}

func scanEntry(row pgx.Row) (Entry, error) {
	var (
		e      Entry
		risk   string
		vitals []byte
	)
	if err := row.Scan(&e.ID, &e.SubjectID, &e.Date, &e.Symptoms, &risk, &e.Condition, &vitals); err != nil {
		return Entry{}, fmt.Errorf("scan check: %w", err)
	}
	e.Risk = knowledge.RiskTier(risk)
	if len(vitals) > 0 {
		e.Vitals = &symptoms.VitalSigns{}
		if err := json.Unmarshal(vitals, e.Vitals); err != nil {
			return Entry{}, fmt.Errorf("decode vitals: %w", err)
		}
	}
	return e, nil
}
