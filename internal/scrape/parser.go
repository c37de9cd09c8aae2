package scrape

import (
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/charset"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// smartQuotes maps typographic punctuation to its plain ASCII form.
var smartQuotes = strings.NewReplacer(
	"’", "'", "‘", "'",
	"“", `"`, "”", `"`,
	"–", "-", "—", "-",
)

// ExtractBlocks decodes one fetched page to UTF-8 and returns its cleaned
// candidate text blocks in document order. selectors is a comma-separated
// goquery selector ("p,li" for menu pages, "p,blockquote" for home,
// "p,address" for contact). Blocks inside nav, footer or header elements,
// or elements with navigation-style classes, are skipped.
func ExtractBlocks(r io.Reader, contentType, selectors string) ([]string, error) {
	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, r); err != nil {
		return nil, fmt.Errorf("read page: %w", err)
	}
	data := buf.Bytes()

	enc, _, _ := charset.DetermineEncoding(data, contentType)
	utf8data, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		if !utf8.Valid(data) {
			return nil, fmt.Errorf("decode page: %w", err)
		}
		utf8data = data
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(utf8data))
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}

	doc.Find("script,noscript,style").Each(func(_ int, s *goquery.Selection) {
		s.Remove()
	})

	var blocks []string
	doc.Find(selectors).Each(func(_ int, s *goquery.Selection) {
		if s.ParentsFiltered("nav,footer,header").Length() > 0 {
			return
		}
		if hasNavClass(s) {
			return
		}
		if text := CleanText(s.Text()); text != "" {
			blocks = append(blocks, text)
		}
	})
	return blocks, nil
}

func hasNavClass(s *goquery.Selection) bool {
	classes := strings.ToLower(s.AttrOr("class", ""))
	for _, skip := range []string{"nav", "footer", "menu-item", "widget"} {
		if strings.Contains(classes, skip) {
			return true
		}
	}
	return false
}

// CleanText fixes smart quotes and collapses whitespace.
func CleanText(text string) string {
	text = smartQuotes.Replace(text)
	text = whitespaceRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
