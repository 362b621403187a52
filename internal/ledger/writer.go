package ledger

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/guttosm/mateprofit/internal/domain/models"
)

// EncodeResult renders res as two-space indented JSON without HTML escaping
// and without a trailing newline. Non-ASCII text is emitted as-is.
func EncodeResult(res models.Result) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		return nil, fmt.Errorf("encode result: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// WriteResult creates (or truncates) path and writes res into it.
// The write is not atomic: a crash mid-write may leave a partial file.
func WriteResult(path string, res models.Result) (err error) {
	data, err := EncodeResult(res)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: create %s: %w", ErrIO, path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: close %s: %w", ErrIO, path, cerr)
		}
	}()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("%w: write %s: %w", ErrIO, path, err)
	}
	return nil
}
