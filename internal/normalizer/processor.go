package normalizer

import (
	"fmt"

	"chomp/internal/models"
)

// Processor validates a scraped record and cleans its text.
type Processor struct {
	validator   *Validator
	transformer *Transformer
}

// NewProcessor creates a new processor instance.
func NewProcessor(cleaner *Cleaner, fields ...string) *Processor {
	return &Processor{
		validator:   NewValidator(),
		transformer: NewTransformer(cleaner, fields...),
	}
}

// Process returns a cleaned copy of rec; rec itself is not modified.
func (p *Processor) Process(rec models.Record) (models.Record, error) {
	if err := p.validator.Validate(rec); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return p.transformer.Transform(rec), nil
}
