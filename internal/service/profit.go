package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/guttosm/mateprofit/internal/domain/models"
	"github.com/guttosm/mateprofit/internal/ledger"
	"github.com/guttosm/mateprofit/internal/logger"
	"github.com/guttosm/mateprofit/internal/metrics"
	"github.com/guttosm/mateprofit/internal/storage"
)

var (
	// ErrRunNotFound is returned when no journaled run has the requested id.
	ErrRunNotFound = errors.New("run not found")

	// ErrJournalDisabled is returned by journal reads when no repository is wired.
	ErrJournalDisabled = errors.New("run journal disabled")
)

// SourceAPI labels runs computed from an HTTP request body.
const SourceAPI = "api"

// ProfitService runs profit calculations and keeps their journal.
type ProfitService interface {
	Calculate(ctx context.Context, source string, trades []models.Trade) (*models.Run, error)
	Record(ctx context.Context, source string, report ledger.Report) (*models.Run, error)
	GetRun(ctx context.Context, id string) (*models.Run, error)
	ListRuns(ctx context.Context, limit int) ([]models.Run, error)
}

type profitService struct {
	repo    storage.RunsRepository // nil disables the journal
	metrics *metrics.Recorder
	now     func() time.Time
	newID   func() string
}

// NewProfitService wires the ledger to an optional journal and metrics recorder.
// Either dependency may be nil.
func NewProfitService(repo storage.RunsRepository, rec *metrics.Recorder) ProfitService {
	return &profitService{
		repo:    repo,
		metrics: rec,
		now:     func() time.Time { return time.Now().UTC() },
		newID:   uuid.NewString,
	}
}

// Calculate folds trades and journals the outcome.
// Invalid trades return an error wrapping ledger.ErrParse and are never journaled.
func (s *profitService) Calculate(ctx context.Context, source string, trades []models.Trade) (*models.Run, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	totals, err := ledger.Accumulate(trades)
	if err != nil {
		s.metrics.ObserveCalculation(source, metrics.StatusInvalid, len(trades), time.Since(start))
		return nil, err
	}

	run, err := s.record(source, ledger.Report{Result: totals.Result(), TradeCount: len(trades)})
	if err != nil {
		s.metrics.ObserveCalculation(source, metrics.StatusError, len(trades), time.Since(start))
		return nil, err
	}
	s.metrics.ObserveCalculation(source, metrics.StatusOK, len(trades), time.Since(start))
	return run, nil
}

// Record journals a calculation already performed elsewhere (the file path).
// Its duration is taken from report.Elapsed.
func (s *profitService) Record(ctx context.Context, source string, report ledger.Report) (*models.Run, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	run, err := s.record(source, report)
	status := metrics.StatusOK
	if err != nil {
		status = metrics.StatusError
	}
	s.metrics.ObserveCalculation(source, status, report.TradeCount, report.Elapsed)
	return run, err
}

func (s *profitService) record(source string, report ledger.Report) (*models.Run, error) {
	run := models.Run{
		ID:              s.newID(),
		Source:          source,
		TradeCount:      report.TradeCount,
		EarnedMoney:     report.Result.EarnedMoney,
		MatecoinAccount: report.Result.MatecoinAccount,
		CreatedAt:       s.now(),
	}

	if s.repo != nil {
		if err := s.repo.InsertRun(run); err != nil {
			return nil, fmt.Errorf("record run %s: %w", run.ID, err)
		}
	}

	logger.L().Debug().
		Str("run_id", run.ID).
		Str("source", source).
		Int("trades", run.TradeCount).
		Bool("journaled", s.repo != nil).
		Msg("profit calculated")
	return &run, nil
}

func (s *profitService) GetRun(ctx context.Context, id string) (*models.Run, error) {
	if s.repo == nil {
		return nil, ErrJournalDisabled
	}
	run, err := s.repo.GetRun(id)
	if err != nil {
		return nil, fmt.Errorf("get run %s: %w", id, err)
	}
	if run == nil {
		return nil, ErrRunNotFound
	}
	return run, nil
}

func (s *profitService) ListRuns(ctx context.Context, limit int) ([]models.Run, error) {
	if s.repo == nil {
		return nil, ErrJournalDisabled
	}
	runs, err := s.repo.ListRecentRuns(limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return runs, nil
}
