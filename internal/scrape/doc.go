// Package scrape extracts permission-action records from AWS service
// authorization reference pages.
//
// The package is organized by pipeline stage:
//   - locate: find the actions table by its fixed header set
//   - flatten: resolve rowspan-compressed markup into uniform 6-column rows
//   - record: build validated ActionRecord values from flattened rows
//   - harvest: run the full pipeline over one page with page-level isolation
//
// Built on specialized libraries:
//   - goquery: jQuery-like CSS selectors
//   - chardet: character encoding detection
//
// All stages are pure with respect to their inputs; documents are parsed
// upstream and injected, so the pipeline is testable without any network.
package scrape
