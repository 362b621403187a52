package storage

import (
	"database/sql"
	"errors"
	"time"

	"github.com/guttosm/mateprofit/internal/domain/models"
)

// RunsRepository defines contract for the profit run journal.
type RunsRepository interface {
	InsertRun(run models.Run) error
	GetRun(id string) (*models.Run, error)
	ListRecentRuns(limit int) ([]models.Run, error)
	Ping() error
}

type runsRepository struct {
	db *sql.DB
}

func NewRunsRepository(db *sql.DB) RunsRepository {
	return &runsRepository{db: db}
}

// InsertRun stores one calculation. Decimal totals travel as text so NUMERIC
// keeps every digit.
func (r *runsRepository) InsertRun(run models.Run) error {
	_, err := r.db.Exec(`
		INSERT INTO profit_runs (id, source, trade_count, earned_money, matecoin_account, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, run.ID, run.Source, run.TradeCount, run.EarnedMoney, run.MatecoinAccount, run.CreatedAt)
	return err
}

// GetRun returns the run with the given id, or nil when it does not exist.
func (r *runsRepository) GetRun(id string) (*models.Run, error) {
	row := r.db.QueryRow(`
		SELECT id, source, trade_count, earned_money::text, matecoin_account::text, created_at
		FROM profit_runs
		WHERE id = $1
	`, id)

	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &run, nil
}

// ListRecentRuns returns up to limit runs, newest first.
func (r *runsRepository) ListRecentRuns(limit int) ([]models.Run, error) {
	rows, err := r.db.Query(`
		SELECT id, source, trade_count, earned_money::text, matecoin_account::text, created_at
		FROM profit_runs
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	runs := make([]models.Run, 0, limit)
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return runs, nil
}

// Ping checks database connectivity (used by the readiness probe).
func (r *runsRepository) Ping() error {
	return r.db.Ping()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(s rowScanner) (models.Run, error) {
	var (
		run       models.Run
		createdAt time.Time
	)
	if err := s.Scan(&run.ID, &run.Source, &run.TradeCount, &run.EarnedMoney, &run.MatecoinAccount, &createdAt); err != nil {
		return models.Run{}, err
	}
	run.CreatedAt = createdAt.UTC()
	return run, nil
}
