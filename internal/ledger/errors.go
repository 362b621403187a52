package ledger

import "errors"

// Error classes returned by the ledger. Callers match them with errors.Is;
// the underlying cause stays wrapped alongside.
var (
	// ErrIO covers an unreadable input file or an unwritable output file.
	ErrIO = errors.New("io error")

	// ErrParse covers malformed JSON, a document that is not an array of
	// objects, a non-string decimal field and an invalid decimal string.
	ErrParse = errors.New("parse error")
)
