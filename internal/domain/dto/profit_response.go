package dto

import (
	"time"

	"github.com/guttosm/mateprofit/internal/domain/models"
)

// ProfitResponse represents the JSON structure returned by POST /api/v1/profit.
type ProfitResponse struct {
	RunID           string `json:"run_id" example:"6f1c2b8e-1d2a-4a4e-9c61-0c1f1a2b3c4d"`
	EarnedMoney     string `json:"earned_money" example:"-70"`
	MatecoinAccount string `json:"matecoin_account" example:"60"`
	TradeCount      int    `json:"trade_count" example:"2"`
}

// RunResponse represents one journaled run.
type RunResponse struct {
	ID              string    `json:"id"`
	Source          string    `json:"source" example:"api"`
	TradeCount      int       `json:"trade_count" example:"2"`
	EarnedMoney     string    `json:"earned_money" example:"-70"`
	MatecoinAccount string    `json:"matecoin_account" example:"60"`
	CreatedAt       time.Time `json:"created_at"`
}

// RunListResponse is returned by GET /api/v1/runs.
type RunListResponse struct {
	Runs []RunResponse `json:"runs"`
}

func NewProfitResponse(run models.Run) ProfitResponse {
	return ProfitResponse{
		RunID:           run.ID,
		EarnedMoney:     run.EarnedMoney,
		MatecoinAccount: run.MatecoinAccount,
		TradeCount:      run.TradeCount,
	}
}

func NewRunResponse(run models.Run) RunResponse {
	return RunResponse{
		ID:              run.ID,
		Source:          run.Source,
		TradeCount:      run.TradeCount,
		EarnedMoney:     run.EarnedMoney,
		MatecoinAccount: run.MatecoinAccount,
		CreatedAt:       run.CreatedAt,
	}
}

func NewRunListResponse(runs []models.Run) RunListResponse {
	out := RunListResponse{Runs: make([]RunResponse, 0, len(runs))}
	for _, r := range runs {
		out.Runs = append(out.Runs, NewRunResponse(r))
	}
	return out
}
