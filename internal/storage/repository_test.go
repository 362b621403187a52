package storage

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/guttosm/mateprofit/internal/domain/models"
)

type dummyErr struct{}

func (dummyErr) Error() string { return "dummy" }

var runColumns = []string{"id", "source", "trade_count", "earned_money", "matecoin_account", "created_at"}

func newMockRepo(t *testing.T) (*runsRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	repo := &runsRepository{db: db}
	cleanup := func() { _ = db.Close() }
	return repo, mock, cleanup
}

func TestInsertRun_SQLMock(t *testing.T) {
	created := time.Date(2025, 9, 11, 10, 0, 0, 0, time.UTC)
	run := models.Run{ID: "0b9f4c1e-8f57-4c1e-9a55-1a2b3c4d5e6f", Source: "trades.json", TradeCount: 2, EarnedMoney: "-70", MatecoinAccount: "60", CreatedAt: created}

	cases := []struct {
		name    string
		execErr error
		wantErr bool
	}{
		{name: "ok"},
		{name: "db error", execErr: dummyErr{}, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, done := newMockRepo(t)
			defer done()

			exp := mock.ExpectExec(regexp.QuoteMeta("INSERT INTO profit_runs")).
				WithArgs(run.ID, run.Source, run.TradeCount, run.EarnedMoney, run.MatecoinAccount, created)
			if tc.execErr != nil {
				exp.WillReturnError(tc.execErr)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(0, 1))
			}

			err := repo.InsertRun(run)
			if tc.wantErr != (err != nil) {
				t.Fatalf("wantErr=%v got %v", tc.wantErr, err)
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Fatalf("unmet expectations: %v", err)
			}
		})
	}
}

func TestGetRun_SQLMock(t *testing.T) {
	selectRegex := `SELECT id, source, trade_count, earned_money::text, matecoin_account::text, created_at FROM profit_runs WHERE id = \$1`
	created := time.Date(2025, 9, 12, 8, 30, 0, 0, time.UTC)

	cases := []struct {
		name    string
		rows    *sqlmock.Rows
		err     error
		wantNil bool
		wantErr bool
	}{
		{
			name: "found",
			rows: sqlmock.NewRows(runColumns).AddRow("abc", "api", int64(3), "12.5", "-3.25", created),
		},
		{name: "not found", rows: sqlmock.NewRows(runColumns), wantNil: true},
		{name: "db error", err: dummyErr{}, wantNil: true, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, done := newMockRepo(t)
			defer done()

			exp := mock.ExpectQuery(selectRegex).WithArgs("abc")
			if tc.err != nil {
				exp.WillReturnError(tc.err)
			} else {
				exp.WillReturnRows(tc.rows)
			}

			out, err := repo.GetRun("abc")
			if tc.wantErr != (err != nil) {
				t.Fatalf("wantErr=%v got %v", tc.wantErr, err)
			}
			if tc.wantNil {
				if out != nil {
					t.Fatalf("want nil run, got %+v", out)
				}
			} else {
				if out == nil {
					t.Fatalf("want run, got nil")
				}
				want := models.Run{ID: "abc", Source: "api", TradeCount: 3, EarnedMoney: "12.5", MatecoinAccount: "-3.25", CreatedAt: created}
				if *out != want {
					t.Fatalf("got %+v, want %+v", *out, want)
				}
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Fatalf("unmet expectations: %v", err)
			}
		})
	}
}

func TestListRecentRuns_SQLMock(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	t1 := time.Date(2025, 9, 12, 0, 0, 0, 0, time.UTC)
	t0 := t1.Add(-time.Hour)
	mock.ExpectQuery(`FROM profit_runs ORDER BY created_at DESC LIMIT \$1`).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows(runColumns).
			AddRow("b", "api", int64(1), "1", "2", t1).
			AddRow("a", "trades.json", int64(5), "-70", "60", t0))

	runs, err := repo.ListRecentRuns(2)
	if err != nil {
		t.Fatalf("ListRecentRuns: %v", err)
	}
	if len(runs) != 2 || runs[0].ID != "b" || runs[1].EarnedMoney != "-70" || runs[1].TradeCount != 5 {
		t.Fatalf("unexpected runs: %+v", runs)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestListRecentRuns_Errors(t *testing.T) {
	t.Run("query error", func(t *testing.T) {
		repo, mock, done := newMockRepo(t)
		defer done()
		mock.ExpectQuery(`FROM profit_runs`).WillReturnError(dummyErr{})
		if _, err := repo.ListRecentRuns(10); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("row error", func(t *testing.T) {
		repo, mock, done := newMockRepo(t)
		defer done()
		rows := sqlmock.NewRows(runColumns).
			AddRow("a", "api", int64(1), "1", "1", time.Now()).
			RowError(0, dummyErr{})
		mock.ExpectQuery(`FROM profit_runs`).WillReturnRows(rows)
		_, err := repo.ListRecentRuns(10)
		if !errors.Is(err, dummyErr{}) {
			t.Fatalf("expected row error, got %v", err)
		}
	})
}

func TestPing_SQLMock(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	mock.ExpectPing()
	if err := repo.Ping(); err != nil {
		t.Fatalf("ping: %v", err)
	}
	mock.ExpectPing().WillReturnError(dummyErr{})
	if err := repo.Ping(); err == nil {
		t.Fatalf("expected ping error")
	}
}
