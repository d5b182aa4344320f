package folio

import (
	"fmt"
	"os"
	"time"
)

// frameStats holds per-frame timing and draw counters.
// Timings are only printed when the gallery is in debug mode.
type frameStats struct {
	frame      uint64
	stepTime   time.Duration
	drawTime   time.Duration
	draws      int
	skipped    int
	drawErrors int
}

// debugLog prints timing and view stats to stderr.
func (g *Gallery) debugLog(stats frameStats) {
	if !g.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[folio] frame: %d | step: %v | draw: %v | draws: %d | skipped: %d | errors: %d\n",
		stats.frame, stats.stepTime, stats.drawTime, stats.draws, stats.skipped, stats.drawErrors)
	_, _ = fmt.Fprintf(os.Stderr,
		"[folio] offset: (%.3f, %.3f) | zoom: %.3f | state: %s\n",
		g.view.Offset.X, g.view.Offset.Y, g.view.Zoom, g.input.State())
}

// Stats returns the number of frames run, draws issued and draws skipped
// since the gallery was created.
func (g *Gallery) Stats() (frames uint64, draws, skipped int) {
	return g.stats.frame, g.stats.draws, g.stats.skipped
}
