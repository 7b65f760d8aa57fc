// Package diagnostics accumulates non-fatal warnings produced during
// assembly and solution (skipped degenerate members, asymmetric K*, small
// pivots) so callers can inspect them without the solver aborting.
//
// The teacher reaches for gosl/io.Pf to print such notices straight to the
// terminal; a library embedded in a browser host cannot do that, so this
// type plays the same "one-line notice, keep going" role but as an
// in-memory, inspectable log instead of stdout.
package diagnostics

import "fmt"

// Log collects warnings in emission order.
type Log struct {
	entries []string
}

// Warnf records a formatted warning.
func (l *Log) Warnf(format string, args ...interface{}) {
	l.entries = append(l.entries, fmt.Sprintf(format, args...))
}

// Entries returns the accumulated warnings in emission order. The returned
// slice is owned by the caller; Log keeps its own copy.
func (l *Log) Entries() []string {
	out := make([]string, len(l.entries))
	copy(out, l.entries)
	return out
}

// Empty reports whether no warnings have been recorded.
func (l *Log) Empty() bool {
	return len(l.entries) == 0
}
