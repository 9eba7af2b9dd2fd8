package scrape

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// expectedHeaders is the fixed header set identifying the actions table.
// Table IDs change between publishes and header capitalization varies, so
// candidates are matched by their lowercased header text set instead.
var expectedHeaders = map[string]struct{}{
	"actions":                    {},
	"description":                {},
	"access level":               {},
	"resource types (*required)": {},
	"condition keys":             {},
	"dependent actions":          {},
}

// FindActionsTable locates the one table whose header row matches the
// expected six-column set exactly. Extra or missing headers both disqualify
// a candidate. Returns false when no table on the page qualifies.
func FindActionsTable(doc *goquery.Document) (*goquery.Selection, bool) {
	var found *goquery.Selection

	doc.Find("table").EachWithBreak(func(_ int, table *goquery.Selection) bool {
		headers := make(map[string]struct{})
		count := 0
		table.Find("th").Each(func(_ int, th *goquery.Selection) {
			headers[strings.ToLower(NormalizeWhitespace(th.Text()))] = struct{}{}
			count++
		})
		if count != len(expectedHeaders) || len(headers) != len(expectedHeaders) {
			return true
		}
		for h := range expectedHeaders {
			if _, ok := headers[h]; !ok {
				return true
			}
		}
		found = table
		return false
	})

	return found, found != nil
}
