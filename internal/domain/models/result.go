package models

import "time"

// Result is the document written to profit.json.
//
// Both values are exact decimals rendered without exponent notation.
type Result struct {
	EarnedMoney     string `json:"earned_money" example:"-70"`
	MatecoinAccount string `json:"matecoin_account" example:"60"`
}

// Run is one journaled profit calculation.
//
// Source is the input file name for CLI runs and "api" for HTTP runs.
type Run struct {
	ID              string
	Source          string
	TradeCount      int
	EarnedMoney     string
	MatecoinAccount string
	CreatedAt       time.Time
}
