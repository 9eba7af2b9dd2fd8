// Package servicemap holds the static mapping from service name to
// documentation page identifiers, and loads the per-service authoritative
// action sets supplied by the caller.
//
// The URL map is flat configuration data, kept as an embedded YAML asset
// rather than code so the scraping engine stays testable independent of the
// provider's current catalog.
package servicemap

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

//go:embed urlmap.yaml
var rawURLMap []byte

// URLMap returns the service-to-page-identifier map. Page order within a
// service is significant: earlier pages win merge conflicts.
func URLMap() (map[string][]string, error) {
	urlMap := make(map[string][]string)
	if err := yaml.Unmarshal(rawURLMap, &urlMap); err != nil {
		return nil, fmt.Errorf("parse url map: %w", err)
	}
	return urlMap, nil
}

// LoadAuthoritative reads a file mapping service name to its known action
// names, typically exported from an SDK's service definitions. JSON and
// YAML both parse.
func LoadAuthoritative(path string) (map[string][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read services file: %w", err)
	}
	services := make(map[string][]string)
	if err := yaml.Unmarshal(data, &services); err != nil {
		return nil, fmt.Errorf("parse services file: %w", err)
	}
	return services, nil
}
