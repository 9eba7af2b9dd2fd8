package scrape

import (
	"github.com/PuerkitoBio/goquery"

	"github.com/docwolf/actionmap/internal/diag"
)

// Harvester runs the locate, flatten, and build stages over one page.
type Harvester struct {
	flattener *Flattener
}

// NewHarvester creates a harvester with the default flattener.
func NewHarvester() *Harvester {
	return &Harvester{flattener: NewFlattener()}
}

// Harvest extracts all action records from one page's parsed document.
//
// A page without a qualifying table contributes zero records and one warning.
// Any ErrShape or ErrVocabulary from the later stages discards the whole
// page's contribution: once the table structure or vocabulary is in doubt,
// no row from that page can be trusted. Other pages are unaffected.
func (h *Harvester) Harvest(doc *goquery.Document, pageID string) (map[string]ActionRecord, []diag.Diagnostic) {
	table, ok := FindActionsTable(doc)
	if !ok {
		return map[string]ActionRecord{}, []diag.Diagnostic{
			diag.Warningf("Page missing actions table: %s", pageID),
		}
	}

	rows, err := h.flattener.Flatten(table)
	if err != nil {
		return map[string]ActionRecord{}, []diag.Diagnostic{
			diag.Fatalf("Page %s discarded: %v", pageID, err),
		}
	}

	records := make(map[string]ActionRecord, len(rows))
	for _, row := range rows {
		record, err := BuildRecord(row)
		if err != nil {
			return map[string]ActionRecord{}, []diag.Diagnostic{
				diag.Fatalf("Page %s discarded: %v", pageID, err),
			}
		}
		// Keep the first occurrence within a page.
		if _, ok := records[record.Action]; !ok {
			records[record.Action] = record
		}
	}

	return records, nil
}
