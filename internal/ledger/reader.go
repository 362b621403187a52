package ledger

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/guttosm/mateprofit/internal/domain/models"
)

// LoadTrades reads the whole trade file and decodes it.
//
// The file is read to completion and closed before decoding starts.
// It fails with:
//   - ErrIO if the file cannot be opened or read.
//   - ErrParse if the content is not a JSON array of objects, or a field
//     holds something other than a string or null.
func LoadTrades(path string) ([]models.Trade, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrIO, path, err)
	}
	return DecodeTrades(data)
}

// DecodeTrades decodes a JSON array of trade objects.
//
// Keys are matched exactly: "Bought" or "SOLD" are unknown keys and, like
// any other unknown key, ignored whatever their value.
func DecodeTrades(data []byte) ([]models.Trade, error) {
	// A null element decodes to a nil map, an empty object to an empty one.
	var raw []map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: decode trades: %w", ErrParse, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: expected a JSON array of trades", ErrParse)
	}

	trades := make([]models.Trade, 0, len(raw))
	for i, obj := range raw {
		if obj == nil {
			return nil, fmt.Errorf("%w: trade #%d is not an object", ErrParse, i)
		}
		tr, err := decodeTrade(obj)
		if err != nil {
			return nil, fmt.Errorf("%w: trade #%d: %w", ErrParse, i, err)
		}
		trades = append(trades, tr)
	}
	return trades, nil
}

func decodeTrade(obj map[string]json.RawMessage) (models.Trade, error) {
	var tr models.Trade
	fields := []struct {
		key string
		dst **string
	}{
		{"matecoin_price", &tr.MatecoinPrice},
		{"bought", &tr.Bought},
		{"sold", &tr.Sold},
	}
	for _, f := range fields {
		raw, ok := obj[f.key]
		if !ok || len(raw) == 0 {
			continue
		}
		if err := json.Unmarshal(raw, f.dst); err != nil {
			return models.Trade{}, fmt.Errorf("%s: %w", f.key, err)
		}
	}
	return tr, nil
}
