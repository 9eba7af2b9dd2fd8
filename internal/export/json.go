// Package export serializes build output and notifies about run results.
package export

import (
	"encoding/json"
	"fmt"
	"os"
)

// WriteJSON writes v to path. Map keys serialize sorted and ActionRecord
// fields serialize in declaration order, so repeated runs over identical
// inputs produce byte-identical files.
func WriteJSON(path string, v interface{}, indent bool) error {
	var (
		data []byte
		err  error
	)
	if indent {
		data, err = json.MarshalIndent(v, "", " ")
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
