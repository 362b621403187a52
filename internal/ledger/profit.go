package ledger

import (
	"time"

	"github.com/guttosm/mateprofit/internal/domain/models"
)

// OutputFile is where CalculateProfit writes its result, relative to the
// working directory.
const OutputFile = "profit.json"

// Report summarizes one processed trade file.
type Report struct {
	Result     models.Result
	TradeCount int
	Elapsed    time.Duration // load and fold time, excluding the write
}

// CalculateProfit reads the trades in filename, computes earned money and
// the coin balance, and writes both to OutputFile as decimal strings.
//
// Any error aborts the run before the output file is touched, except a
// failure while writing the output itself. Errors wrap ErrIO or ErrParse.
func CalculateProfit(filename string) error {
	_, err := ProcessFile(filename, OutputFile)
	return err
}

// ProcessFile is CalculateProfit with an explicit output path. It returns
// the written result together with the number of trades folded.
func ProcessFile(input, output string) (Report, error) {
	start := time.Now()
	trades, err := LoadTrades(input)
	if err != nil {
		return Report{}, err
	}

	totals, err := Accumulate(trades)
	if err != nil {
		return Report{}, err
	}

	rep := Report{Result: totals.Result(), TradeCount: len(trades), Elapsed: time.Since(start)}
	if err := WriteResult(output, rep.Result); err != nil {
		return Report{}, err
	}
	return rep, nil
}
