package normalizer

import (
	"errors"

	"chomp/internal/models"
)

// Validation errors.
var (
	ErrNilRecord         = errors.New("record is nil")
	ErrMissingDocID      = errors.New("record missing doc_id")
	ErrMissingSearchTerm = errors.New("record missing search_term")
	ErrMissingPubShort   = errors.New("record missing pub_short")
)

// Validator checks that a record carries the fields the store names files by.
type Validator struct{}

// NewValidator creates a new validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate checks if the record meets requirements.
func (v *Validator) Validate(rec models.Record) error {
	if rec == nil {
		return ErrNilRecord
	}

	if _, ok := rec.DocID(); !ok {
		return ErrMissingDocID
	}

	// Presence only; an empty term still slugs to "".
	if _, ok := rec[models.FieldSearchTerm]; !ok {
		return ErrMissingSearchTerm
	}

	if _, ok := rec[models.FieldPubShort]; !ok {
		return ErrMissingPubShort
	}

	return nil
}
