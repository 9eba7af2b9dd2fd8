package diag

import (
	"fmt"
	"sort"
)

// Severity classifies how much of the run a diagnostic invalidated.
type Severity string

const (
	// SeverityWarning marks a recoverable gap; processing continued.
	SeverityWarning Severity = "warning"
	// SeverityFatal marks a page whose contribution was discarded.
	SeverityFatal Severity = "fatal"
)

// Diagnostic records one anomaly observed during a catalog build.
type Diagnostic struct {
	Severity Severity
	Message  string
}

// Warningf creates a warning diagnostic.
func Warningf(format string, args ...interface{}) Diagnostic {
	return Diagnostic{Severity: SeverityWarning, Message: fmt.Sprintf(format, args...)}
}

// Fatalf creates a fatal diagnostic.
func Fatalf(format string, args ...interface{}) Diagnostic {
	return Diagnostic{Severity: SeverityFatal, Message: fmt.Sprintf(format, args...)}
}

// Sort orders diagnostics lexicographically by message so the final list is
// independent of fetch completion order.
func Sort(ds []Diagnostic) {
	sort.Slice(ds, func(i, j int) bool { return ds[i].Message < ds[j].Message })
}

// Messages returns the sorted message strings for serialization.
func Messages(ds []Diagnostic) []string {
	out := make([]string, len(ds))
	for i, d := range ds {
		out[i] = d.Message
	}
	sort.Strings(out)
	return out
}
