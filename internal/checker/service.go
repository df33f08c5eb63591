package checker

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Skufu/vitalsense/internal/history"
	"github.com/Skufu/vitalsense/internal/insights"
	"github.com/Skufu/vitalsense/internal/symptoms"
)

const DefaultHistoryLimit = 100

// Service runs symptom checks for subjects and keeps their history.
type Service struct {
	engine   *symptoms.Engine
	analyzer *insights.Analyzer
	store    history.Store
	logger   *zap.Logger
	limit    int
	now      func() time.Time
}

type Config struct {
	Engine       *symptoms.Engine
	Analyzer     *insights.Analyzer
	Store        history.Store
	Logger       *zap.Logger
	HistoryLimit int
}

func NewService(cfg Config) *Service {
	if cfg.Analyzer == nil {
		cfg.Analyzer = insights.NewAnalyzer()
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = DefaultHistoryLimit
	}
	return &Service{
		engine:   cfg.Engine,
		analyzer: cfg.Analyzer,
		store:    cfg.Store,
		logger:   cfg.Logger,
		limit:    cfg.HistoryLimit,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) Engine() *symptoms.Engine {
	return s.engine
}

// Analyze runs a check without storing it.
func (s *Service) Analyze(selected []string, vitals *symptoms.VitalSigns) symptoms.AnalysisResult {
	return s.engine.Analyze(selected, vitals)
}

// Check analyses the symptoms and records the outcome in the subject's
// history.
func (s *Service) Check(ctx context.Context, subjectID string, selected []string, vitals *symptoms.VitalSigns) (symptoms.AnalysisResult, history.Entry, error) {
	result := s.engine.Analyze(selected, vitals)

	entry, err := s.store.Append(ctx, subjectID, history.Entry{
		Vitals: vitals,
		Record: insights.Record{
			Date:      s.now(),
			Symptoms:  symptoms.Normalize(selected),
			Risk:      result.Risk,
			Condition: result.Leading(),
		},
	})
	if err != nil {
		return symptoms.AnalysisResult{}, history.Entry{}, fmt.Errorf("store check: %w", err)
	}

	s.logger.Info("symptom check recorded",
		zap.String("subject", entry.SubjectID),
		zap.String("check_id", entry.ID.String()),
		zap.String("risk", string(result.Risk)),
		zap.Int("candidates", len(result.Candidates)),
	)
	return result, entry, nil
}

// History returns the subject's stored checks, newest first.
func (s *Service) History(ctx context.Context, subjectID string) ([]history.Entry, error) {
	entries, err := s.store.List(ctx, subjectID, s.limit)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	return entries, nil
}

// Insights analyses the subject's most recent checks.
func (s *Service) Insights(ctx context.Context, subjectID string) (insights.Result, error) {
	entries, err := s.History(ctx, subjectID)
	if err != nil {
		return insights.Result{}, err
	}
	res := s.analyzer.Analyze(history.Records(entries))
	s.logger.Debug("history analysed",
		zap.String("subject", subjectID),
		zap.Int("records", res.Records),
		zap.Int("alerts", len(res.Alerts)),
	)
	return res, nil
}
