// Package corpus persists the labeled corpus as CSV files: the raw
// scraped snippets and their normalized (tokenized) form.
package corpus

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/thehickorykampala/hickory/internal/domain"
)

const (
	rawFile     = "hickory_dataset.csv"
	cleanedFile = "hickory_dataset_clean.csv"
)

// Repo reads and writes corpus CSV files under one directory.
type Repo struct {
	dir string
}

// New creates a corpus repository rooted at dir.
func New(dir string) *Repo {
	return &Repo{dir: dir}
}

// RawPath returns the raw corpus file path.
func (r *Repo) RawPath() string { return filepath.Join(r.dir, rawFile) }

// CleanedPath returns the cleaned corpus file path.
func (r *Repo) CleanedPath() string { return filepath.Join(r.dir, cleanedFile) }

// Save writes records as CSV rows {text, category}, deduplicating on
// case-insensitive text. An empty record set is rejected.
func (r *Repo) Save(records []domain.Record) error {
	if len(records) == 0 {
		return domain.ErrEmptyCorpus
	}
	rows := [][]string{{"text", "category"}}
	seen := make(map[string]struct{}, len(records))
	for _, rec := range records {
		key := strings.ToLower(strings.TrimSpace(rec.Text()))
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		rows = append(rows, []string{rec.Text(), rec.Category().String()})
	}
	return r.writeCSV(r.RawPath(), rows)
}

// Load reads the raw corpus. Rows with categories outside the closed label
// set fail the load rather than slipping into training.
func (r *Repo) Load() ([]domain.Record, error) {
	rows, err := r.readCSV(r.RawPath())
	if err != nil {
		return nil, err
	}

	records := make([]domain.Record, 0, len(rows))
	for i, row := range rows {
		label, err := domain.ParseLabel(row[1])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		records = append(records, domain.ReconstructRecord(row[0], label))
	}
	if len(records) == 0 {
		return nil, domain.ErrEmptyCorpus
	}
	return records, nil
}

// SaveCleaned writes cleaned records as CSV rows {tokens, category} with
// tokens space-joined. Empty token rows are kept: the split between kept
// and dropped rows is the normalizer's call, not storage's.
func (r *Repo) SaveCleaned(records []domain.CleanedRecord) error {
	if len(records) == 0 {
		return domain.ErrEmptyCorpus
	}
	rows := [][]string{{"text", "category"}}
	for _, rec := range records {
		rows = append(rows, []string{strings.Join(rec.Tokens(), " "), rec.Category().String()})
	}
	return r.writeCSV(r.CleanedPath(), rows)
}

// LoadCleaned reads the cleaned corpus.
func (r *Repo) LoadCleaned() ([]domain.CleanedRecord, error) {
	rows, err := r.readCSV(r.CleanedPath())
	if err != nil {
		return nil, err
	}

	records := make([]domain.CleanedRecord, 0, len(rows))
	for i, row := range rows {
		label, err := domain.ParseLabel(row[1])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		records = append(records, domain.ReconstructCleanedRecord(strings.Fields(row[0]), label))
	}
	if len(records) == 0 {
		return nil, domain.ErrEmptyCorpus
	}
	return records, nil
}

func (r *Repo) writeCSV(path string, rows [][]string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create corpus dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

// readCSV returns the data rows of a two-column corpus file, header stripped.
func (r *Repo) readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", path, domain.ErrEmptyCorpus)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = 2
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: %w", path, domain.ErrEmptyCorpus)
	}
	if rows[0][0] == "text" && rows[0][1] == "category" {
		rows = rows[1:]
	}
	return rows, nil
}
