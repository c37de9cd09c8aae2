package corpus

import (
	"errors"
	"os"
	"testing"

	"github.com/thehickorykampala/hickory/internal/domain"
)

func TestRepo_SaveLoadRoundTrip(t *testing.T) {
	repo := New(t.TempDir())
	records := []domain.Record{
		domain.ReconstructRecord("Grilled pork chops, with \"mushroom\" sauce", domain.LabelFood),
		domain.ReconstructRecord("Cuban classic with rum and mint", domain.LabelDrinks),
	}
	if err := repo.Save(records); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != len(records) {
		t.Fatalf("loaded %d records, want %d", len(got), len(records))
	}
	for i := range records {
		if got[i].Text() != records[i].Text() || got[i].Category() != records[i].Category() {
			t.Errorf("record %d = (%q, %q), want (%q, %q)",
				i, got[i].Text(), got[i].Category(), records[i].Text(), records[i].Category())
		}
	}
}

func TestRepo_SaveDeduplicates(t *testing.T) {
	repo := New(t.TempDir())
	records := []domain.Record{
		domain.ReconstructRecord("Same snippet", domain.LabelFood),
		domain.ReconstructRecord("SAME SNIPPET", domain.LabelFood),
		domain.ReconstructRecord("Different snippet", domain.LabelDrinks),
	}
	if err := repo.Save(records); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := repo.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("loaded %d records, want 2 after dedupe", len(got))
	}
}

func TestRepo_SaveEmpty(t *testing.T) {
	repo := New(t.TempDir())
	if err := repo.Save(nil); !errors.Is(err, domain.ErrEmptyCorpus) {
		t.Errorf("save(nil) = %v, want ErrEmptyCorpus", err)
	}
}

func TestRepo_LoadMissingFile(t *testing.T) {
	repo := New(t.TempDir())
	if _, err := repo.Load(); !errors.Is(err, domain.ErrEmptyCorpus) {
		t.Errorf("load = %v, want ErrEmptyCorpus", err)
	}
}

func TestRepo_LoadRejectsUnknownCategory(t *testing.T) {
	dir := t.TempDir()
	repo := New(dir)
	csv := "text,category\nsome snippet,desserts\n"
	if err := os.WriteFile(repo.RawPath(), []byte(csv), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := repo.Load(); !errors.Is(err, domain.ErrUnknownLabel) {
		t.Errorf("load = %v, want ErrUnknownLabel", err)
	}
}

func TestRepo_CleanedRoundTrip(t *testing.T) {
	repo := New(t.TempDir())
	records := []domain.CleanedRecord{
		domain.ReconstructCleanedRecord([]string{"grilled", "pork", "chop"}, domain.LabelFood),
		domain.ReconstructCleanedRecord(nil, domain.LabelHome),
	}
	if err := repo.SaveCleaned(records); err != nil {
		t.Fatalf("save cleaned: %v", err)
	}

	got, err := repo.LoadCleaned()
	if err != nil {
		t.Fatalf("load cleaned: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("loaded %d cleaned records, want 2", len(got))
	}
	if tokens := got[0].Tokens(); len(tokens) != 3 || tokens[0] != "grilled" {
		t.Errorf("tokens = %v", tokens)
	}
	if tokens := got[1].Tokens(); len(tokens) != 0 {
		t.Errorf("empty row tokens = %v, want none", tokens)
	}
	if got[1].Category() != domain.LabelHome {
		t.Errorf("empty row category = %q", got[1].Category())
	}
}
