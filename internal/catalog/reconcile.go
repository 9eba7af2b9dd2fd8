package catalog

import (
	"github.com/docwolf/actionmap/internal/diag"
	"github.com/docwolf/actionmap/internal/scrape"
)

// NotDocumented is the description given to synthesized placeholder records.
const NotDocumented = "Not Documented by AWS"

// Reconcile merges one service's per-page record maps, in configured page
// order, and diffs the result against the service's authoritative action
// set.
//
// The merge keeps the first documented record for each action. Duplicate
// documentation across regional and variant pages is expected, so later
// duplicates are dropped silently. Every authoritative action missing from
// all pages is synthesized as an orphan record with an Undocumented access
// level, so the output always covers the full authoritative set.
func Reconcile(service string, pages []map[string]scrape.ActionRecord, authoritative []string) (map[string]scrape.ActionRecord, []diag.Diagnostic) {
	var diags []diag.Diagnostic

	if len(pages) == 0 {
		diags = append(diags, diag.Warningf("Service missing URL map: %s", service))
	}

	merged := make(map[string]scrape.ActionRecord)
	for _, page := range pages {
		for action, record := range page {
			if _, ok := merged[action]; !ok {
				merged[action] = record
			}
		}
	}

	for _, action := range authoritative {
		if _, ok := merged[action]; ok {
			continue
		}
		merged[action] = scrape.ActionRecord{
			AccessLevel:   scrape.AccessUndocumented,
			Action:        action,
			ConditionKeys: []string{},
			Description:   NotDocumented,
			Orphan:        true,
			Resources:     []string{},
		}
		diags = append(diags, diag.Warningf("Undocumented action found: %s:%s", service, action))
	}

	return merged, diags
}
