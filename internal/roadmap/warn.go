package roadmap

import (
	"fmt"
	"log/slog"
)

// maxShownWarnings caps how many per-file warnings a run logs in full.
const maxShownWarnings = 10

// Warnings collects non-fatal per-file problems during a stage run.
// The stage continues; the collector reports at the end.
type Warnings struct {
	items []string
}

// Addf records a formatted warning.
func (w *Warnings) Addf(format string, args ...any) {
	w.items = append(w.items, fmt.Sprintf(format, args...))
}

// Count returns the number of collected warnings.
func (w *Warnings) Count() int { return len(w.items) }

// Report logs the first few warnings and a count of the rest.
func (w *Warnings) Report() {
	if len(w.items) == 0 {
		return
	}
	shown := w.items
	if len(shown) > maxShownWarnings {
		shown = shown[:maxShownWarnings]
	}
	for _, msg := range shown {
		slog.Warn("parse warning", slog.String("detail", msg))
	}
	if rest := len(w.items) - len(shown); rest > 0 {
		slog.Warn("additional warnings suppressed", slog.Int("count", rest))
	}
}
