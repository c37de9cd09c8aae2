package scrape

import (
	"regexp"
	"strings"
)

// minBlockLen rejects very short blocks, which are almost always
// navigation labels or stray fragments.
const minBlockLen = 15

// noisePatterns match navigation bars, placeholder copy, boilerplate and
// other non-content blocks the site templates repeat on every page.
var noisePatterns = []string{
	`^lorem ipsum`,
	`^food drinks wines`,
	`^drinks wines`,
	`^wines all drinks`,
	`^cake events`,
	`^food / food`,
	`^drinks / drinks`,
	`^wines / wines`,
	`^cake / cake`,
	`^contact us sed`,
	`^/ (food|drinks|wines|cake|events)`,
	`^follow us$`,
	`^view menu$`,
	`^see more$`,
	`^all drinks$`,
	`^events$`,
	`^gallery$`,
	`^contact us$`,
	`^food menu$`,
	`^drinks menu$`,
	`^cake menu$`,
	`^exquisite recipes$`,
	`^specials$`,
	`^cocktail$`,
	`^o'clock$`,
	`^search$`,
	`^menu$`,
	`^home$`,
	`^food$`,
	`^drinks$`,
	`^wines$`,
	`^cake$`,
	`^designed by`,
	`^copyright`,
	`©`,
	`designed by fortitude`,
	`^sed tincidunt`,
	`^get in touch`,
	`^opening hours`,
	`^reservation$`,
	`^book a table`,
	`^make a reservation`,
	`^\d+$`,
}

var noiseRe = compileNoise()

func compileNoise() []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(noisePatterns))
	for i, p := range noisePatterns {
		out[i] = regexp.MustCompile(`(?i)` + p)
	}
	return out
}

// repeatedNavbar is the site's navigation strip, which leaks into content
// containers on some pages.
const repeatedNavbar = "Food Drinks Wines All Drinks Cake Events"

// IsNoise reports whether a cleaned text block is navigation, placeholder
// or other non-content noise.
func IsNoise(text string) bool {
	if len(text) < minBlockLen {
		return true
	}
	for _, re := range noiseRe {
		if re.MatchString(text) {
			return true
		}
	}
	return strings.Contains(text, repeatedNavbar)
}
