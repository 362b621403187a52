package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/guttosm/mateprofit/internal/domain/models"
)

// Totals holds the two running accumulators of a profit calculation.
// The zero value is a valid starting point (both totals exactly zero).
type Totals struct {
	EarnedMoney decimal.Decimal // currency gained (positive) or spent (negative)
	CoinBalance decimal.Decimal // coin units held
}

// Apply folds one trade into the totals.
//
// The price is parsed first (nil means zero), then each present quantity is
// applied independently:
//
//	bought: coin += b, earned -= b*price
//	sold:   coin -= s, earned += s*price
//
// On error the totals are left unchanged.
func (t *Totals) Apply(tr models.Trade) error {
	price, err := ParseDecimal(tr.MatecoinPrice)
	if err != nil {
		return fmt.Errorf("matecoin_price: %w", err)
	}

	earned, coins := t.EarnedMoney, t.CoinBalance

	if tr.Bought != nil {
		b, err := ParseDecimal(tr.Bought)
		if err != nil {
			return fmt.Errorf("bought: %w", err)
		}
		coins = coins.Add(b)
		earned = earned.Sub(b.Mul(price))
	}

	if tr.Sold != nil {
		s, err := ParseDecimal(tr.Sold)
		if err != nil {
			return fmt.Errorf("sold: %w", err)
		}
		coins = coins.Sub(s)
		earned = earned.Add(s.Mul(price))
	}

	t.EarnedMoney, t.CoinBalance = earned, coins
	return nil
}

// Result renders the totals as the profit.json document.
func (t Totals) Result() models.Result {
	return models.Result{
		EarnedMoney:     FormatDecimal(t.EarnedMoney),
		MatecoinAccount: FormatDecimal(t.CoinBalance),
	}
}

// Accumulate folds trades in order starting from zero totals.
// The first invalid trade aborts the fold; its position is reported as "trade #i" (0-based).
func Accumulate(trades []models.Trade) (Totals, error) {
	var t Totals
	for i, tr := range trades {
		if err := t.Apply(tr); err != nil {
			return Totals{}, fmt.Errorf("trade #%d: %w", i, err)
		}
	}
	return t, nil
}
