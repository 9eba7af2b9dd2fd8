package scrape

import "errors"

var (
	// ErrShape reports a table whose physical structure broke the six-column
	// rowspan assumptions. The page it came from cannot be trusted.
	ErrShape = errors.New("table shape violation")

	// ErrVocabulary reports an access-level cell outside the closed
	// enumeration, meaning the upstream table vocabulary has changed.
	// Never coerced; the whole page is discarded.
	ErrVocabulary = errors.New("unknown access level")
)
