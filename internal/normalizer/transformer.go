package normalizer

import "chomp/internal/models"

// Transformer cleans the text fields of a record.
type Transformer struct {
	cleaner *Cleaner
	fields  []string
}

// NewTransformer creates a transformer that cleans fields with cleaner.
// With no fields given it cleans content only.
func NewTransformer(cleaner *Cleaner, fields ...string) *Transformer {
	if cleaner == nil {
		cleaner = defaultCleaner
	}

	if len(fields) == 0 {
		fields = []string{models.FieldContent}
	}

	return &Transformer{
		cleaner: cleaner,
		fields:  fields,
	}
}

// Transform returns a copy of rec with its string fields cleaned. Missing
// and non-string fields are left alone.
func (t *Transformer) Transform(rec models.Record) models.Record {
	out := rec.Clone()

	for _, field := range t.fields {
		if s, ok := out[field].(string); ok {
			out[field] = t.cleaner.Clean(s)
		}
	}

	return out
}
