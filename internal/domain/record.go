package domain

import (
	"fmt"
	"strings"
)

// Record is one corpus row (immutable value object). Identity is positional:
// records carry no key beyond their place in the corpus.
type Record struct {
	text     string
	category Label
}

// NewRecord validates and creates a Record.
// Text: non-blank. Category: member of the closed label set.
func NewRecord(text string, category Label) (Record, error) {
	if strings.TrimSpace(text) == "" {
		return Record{}, fmt.Errorf("record text is required")
	}
	if !category.IsValid() {
		return Record{}, fmt.Errorf("record category %q: %w", category, ErrUnknownLabel)
	}
	return Record{text: text, category: category}, nil
}

// ReconstructRecord creates a Record without validation (storage hydration).
func ReconstructRecord(text string, category Label) Record {
	return Record{text: text, category: category}
}

// Text returns the raw snippet.
func (r *Record) Text() string { return r.text }

// Category returns the record label.
func (r *Record) Category() Label { return r.category }

// CleanedRecord is the normalized form of a Record: the token sequence the
// feature encoder consumes, paired with the unchanged label.
type CleanedRecord struct {
	tokens   []string
	category Label
}

// NewCleanedRecord creates a CleanedRecord. An empty token slice is legal:
// normalization of noise-only text yields no tokens but keeps the row.
func NewCleanedRecord(tokens []string, category Label) (CleanedRecord, error) {
	if !category.IsValid() {
		return CleanedRecord{}, fmt.Errorf("cleaned record category %q: %w", category, ErrUnknownLabel)
	}
	return CleanedRecord{tokens: cloneTokens(tokens), category: category}, nil
}

// ReconstructCleanedRecord creates a CleanedRecord without validation.
func ReconstructCleanedRecord(tokens []string, category Label) CleanedRecord {
	return CleanedRecord{tokens: tokens, category: category}
}

// Tokens returns the normalized token sequence.
func (c *CleanedRecord) Tokens() []string { return c.tokens }

// Category returns the record label.
func (c *CleanedRecord) Category() Label { return c.category }

func cloneTokens(t []string) []string {
	if t == nil {
		return nil
	}
	c := make([]string, len(t))
	copy(c, t)
	return c
}
