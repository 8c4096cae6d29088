package store

import (
	"errors"
	"fmt"
)

// Store errors.
var (
	ErrMissingDocID    = errors.New("record missing doc_id")
	ErrIndexExhausted  = errors.New("no free filename index")
	ErrInvalidFilename = errors.New("rendered filename is not a plain file name")
	errNotObject       = errors.New("record is not a JSON object")
	errTrailingData    = errors.New("unexpected data after record")
)

// ParseError reports a record file that could not be decoded.
type ParseError struct {
	File string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing record %s: %v", e.File, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
