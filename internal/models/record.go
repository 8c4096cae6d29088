// Package models defines data structures for scraped article records.
package models

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Field names used by the store and the scraper.
const (
	FieldDocID      = "doc_id"
	FieldContent    = "content"
	FieldSearchTerm = "search_term"
	FieldPubShort   = "pub_short"
)

// Record is one scraped article. Fields beyond the ones named above are
// carried through load and save untouched.
type Record map[string]any

// DocID returns the canonical text form of doc_id and whether it is set.
func (r Record) DocID() (string, bool) {
	v, ok := r[FieldDocID]
	if !ok || v == nil {
		return "", false
	}

	return stringify(v), true
}

// Content returns the scraped body, or "" when missing or null.
func (r Record) Content() string {
	return r.String(FieldContent)
}

// SearchTerm returns the search term the record was found with.
func (r Record) SearchTerm() string {
	return r.String(FieldSearchTerm)
}

// PubShort returns the short publication code.
func (r Record) PubShort() string {
	return r.String(FieldPubShort)
}

// IsProcessed reports whether the record already has content.
func (r Record) IsProcessed() bool {
	return r.Content() != ""
}

// String returns the named field as text.
func (r Record) String(key string) string {
	v, ok := r[key]
	if !ok || v == nil {
		return ""
	}

	return stringify(v)
}

// SameDoc reports whether both records carry the same doc_id.
func (r Record) SameDoc(other Record) bool {
	a, okA := r.DocID()
	b, okB := other.DocID()

	return okA && okB && a == b
}

// Clone returns a shallow copy of the record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}

	return out
}

func stringify(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case json.Number:
		return val.String()
	case float64:
		// Decoded without UseNumber; 42.0 must still match "42".
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprint(val)
	}
}
