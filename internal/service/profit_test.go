package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/mateprofit/internal/domain/models"
	"github.com/guttosm/mateprofit/internal/ledger"
	"github.com/guttosm/mateprofit/internal/metrics"
	"github.com/guttosm/mateprofit/internal/storage"
)

type fakeRepo struct {
	inserted  []models.Run
	insertErr error
	runs      map[string]models.Run
	getErr    error
	listErr   error
	lastLimit int
}

func (f *fakeRepo) InsertRun(run models.Run) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.inserted = append(f.inserted, run)
	return nil
}

func (f *fakeRepo) GetRun(id string) (*models.Run, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	r, ok := f.runs[id]
	if !ok {
		return nil, nil
	}
	return &r, nil
}

func (f *fakeRepo) ListRecentRuns(limit int) ([]models.Run, error) {
	f.lastLimit = limit
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.inserted, nil
}

func (f *fakeRepo) Ping() error { return nil }

var _ storage.RunsRepository = (*fakeRepo)(nil)

func s(v string) *string { return &v }

func newTestService(repo storage.RunsRepository, rec *metrics.Recorder) *profitService {
	svc := NewProfitService(repo, rec).(*profitService)
	svc.now = func() time.Time { return time.Date(2025, 9, 12, 10, 0, 0, 0, time.UTC) }
	svc.newID = func() string { return "run-1" }
	return svc
}

func exampleTrades() []models.Trade {
	return []models.Trade{
		{Bought: s("100"), MatecoinPrice: s("1.5")},
		{Sold: s("40"), MatecoinPrice: s("2.0")},
	}
}

func TestCalculate_JournalsRun(t *testing.T) {
	repo := &fakeRepo{}
	rec := metrics.New()
	svc := newTestService(repo, rec)

	run, err := svc.Calculate(context.Background(), SourceAPI, exampleTrades())
	require.NoError(t, err)

	want := models.Run{
		ID:              "run-1",
		Source:          SourceAPI,
		TradeCount:      2,
		EarnedMoney:     "-70",
		MatecoinAccount: "60",
		CreatedAt:       time.Date(2025, 9, 12, 10, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, want, *run)
	require.Len(t, repo.inserted, 1)
	assert.Equal(t, want, repo.inserted[0])

	n, err := testutil.GatherAndCount(rec.Registry(), "mateprofit_calculations_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestCalculate_InvalidTradeNotJournaled(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo, metrics.New())

	_, err := svc.Calculate(context.Background(), SourceAPI, []models.Trade{{Bought: s("abc")}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ledger.ErrParse))
	assert.Empty(t, repo.inserted)
}

func TestCalculate_InsertFailure(t *testing.T) {
	repo := &fakeRepo{insertErr: errors.New("db down")}
	svc := newTestService(repo, nil)

	_, err := svc.Calculate(context.Background(), SourceAPI, exampleTrades())
	require.Error(t, err)
	assert.False(t, errors.Is(err, ledger.ErrParse))
	assert.Contains(t, err.Error(), "db down")
}

func TestCalculate_WithoutJournal(t *testing.T) {
	svc := newTestService(nil, nil)
	run, err := svc.Calculate(context.Background(), "cli", nil)
	require.NoError(t, err)
	assert.Equal(t, "0", run.EarnedMoney)
	assert.Equal(t, "0", run.MatecoinAccount)
	assert.Equal(t, 0, run.TradeCount)
}

func TestCalculate_CanceledContext(t *testing.T) {
	svc := newTestService(&fakeRepo{}, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := svc.Calculate(ctx, SourceAPI, exampleTrades())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRecord(t *testing.T) {
	repo := &fakeRepo{}
	rec := metrics.New()
	svc := newTestService(repo, rec)

	run, err := svc.Record(context.Background(), "trades.json", ledger.Report{
		Result:     models.Result{EarnedMoney: "-70", MatecoinAccount: "60"},
		TradeCount: 2,
		Elapsed:    3 * time.Millisecond,
	})
	require.NoError(t, err)
	assert.Equal(t, "trades.json", run.Source)
	require.Len(t, repo.inserted, 1)
	assert.Equal(t, "-70", repo.inserted[0].EarnedMoney)

	w := httptest.NewRecorder()
	rec.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, w.Body.String(), "mateprofit_calculation_duration_seconds_sum 0.003")
}

func TestGetRun(t *testing.T) {
	stored := models.Run{ID: "abc", Source: SourceAPI}
	cases := []struct {
		name    string
		repo    storage.RunsRepository
		id      string
		wantErr error
	}{
		{name: "found", repo: &fakeRepo{runs: map[string]models.Run{"abc": stored}}, id: "abc"},
		{name: "not found", repo: &fakeRepo{}, id: "zzz", wantErr: ErrRunNotFound},
		{name: "journal disabled", repo: nil, id: "abc", wantErr: ErrJournalDisabled},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := newTestService(tc.repo, nil)
			run, err := svc.GetRun(context.Background(), tc.id)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, run)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, stored, *run)
		})
	}

	t.Run("repository error", func(t *testing.T) {
		svc := newTestService(&fakeRepo{getErr: errors.New("boom")}, nil)
		_, err := svc.GetRun(context.Background(), "abc")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrRunNotFound)
	})
}

func TestListRuns(t *testing.T) {
	repo := &fakeRepo{inserted: []models.Run{{ID: "a"}, {ID: "b"}}}
	svc := newTestService(repo, nil)

	runs, err := svc.ListRuns(context.Background(), 5)
	require.NoError(t, err)
	assert.Len(t, runs, 2)
	assert.Equal(t, 5, repo.lastLimit)

	_, err = newTestService(nil, nil).ListRuns(context.Background(), 5)
	assert.ErrorIs(t, err, ErrJournalDisabled)

	_, err = newTestService(&fakeRepo{listErr: errors.New("boom")}, nil).ListRuns(context.Background(), 5)
	assert.Error(t, err)
}
