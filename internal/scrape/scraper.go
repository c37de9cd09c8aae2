package scrape

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/thehickorykampala/hickory/internal/domain"
)

// page is one site page to harvest.
type page struct {
	label     domain.Label
	path      string
	selectors string
}

// pages lists the site map in harvest order. Selectors follow page layout:
// menu pages carry content in paragraphs and list items, the home page in
// paragraphs and pull quotes, the contact page in paragraphs and address
// blocks.
var pages = []page{
	{domain.LabelHome, "/", "p,blockquote"},
	{domain.LabelFood, "/food/", "p,li"},
	{domain.LabelDrinks, "/drinks/", "p,li"},
	{domain.LabelWines, "/wines/", "p,li"},
	{domain.LabelCake, "/cake/", "p,li"},
	{domain.LabelEvents, "/category/events/", "p,li"},
	{domain.LabelContact, "/contact-us/", "p,address"},
}

// Scraper harvests the site page by page and merges the curated seed
// records into one deduplicated corpus.
type Scraper struct {
	client  *Client
	baseURL string
	logger  *zap.Logger
}

// NewScraper creates a Scraper. An empty baseURL falls back to the live site.
func NewScraper(client *Client, baseURL string, logger *zap.Logger) *Scraper {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Scraper{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger,
	}
}

// Run fetches every site page, extracts and filters its text blocks, labels
// each block with the page it came from, merges the seed records and
// deduplicates. Per-page failures are logged and skipped so one broken page
// never loses the run; only context cancellation aborts.
func (s *Scraper) Run(ctx context.Context) ([]domain.Record, error) {
	var harvested []domain.Record
	for _, p := range pages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		records, err := s.scrapePage(ctx, p)
		if err != nil {
			s.logger.Warn("page scrape failed, skipping",
				zap.String("page", string(p.label)),
				zap.String("path", p.path),
				zap.Error(err))
			continue
		}
		s.logger.Info("page scraped",
			zap.String("page", string(p.label)),
			zap.Int("blocks", len(records)))
		harvested = append(harvested, records...)
	}

	corpus := dedupe(append(harvested, SeedRecords()...))
	s.logger.Info("corpus assembled",
		zap.Int("harvested", len(harvested)),
		zap.Int("total", len(corpus)))
	return corpus, nil
}

func (s *Scraper) scrapePage(ctx context.Context, p page) ([]domain.Record, error) {
	body, contentType, err := s.client.Fetch(ctx, s.baseURL+p.path)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	blocks, err := ExtractBlocks(body, contentType, p.selectors)
	if err != nil {
		return nil, err
	}

	var records []domain.Record
	for _, block := range blocks {
		if IsNoise(block) {
			continue
		}
		records = append(records, domain.ReconstructRecord(block, p.label))
	}
	return records, nil
}

// dedupe drops repeated snippets (case-insensitive) and snippets too short
// to carry signal, preserving first-seen order.
func dedupe(records []domain.Record) []domain.Record {
	seen := make(map[string]struct{}, len(records))
	out := make([]domain.Record, 0, len(records))
	for _, r := range records {
		text := strings.TrimSpace(r.Text())
		if len(text) <= 5 {
			continue
		}
		key := strings.ToLower(text)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, r)
	}
	return out
}
