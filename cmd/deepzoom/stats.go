package main

import (
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/deepzoom"
)

// printStats reports the render with numbers grouped for tag.
func printStats(w io.Writer, tag language.Tag, cfg config, sec *deepzoom.Section) {
	p := message.NewPrinter(tag)

	escaped := 0
	for _, e := range sec.Escaped {
		if e {
			escaped++
		}
	}
	pixels := len(sec.Escaped)

	p.Fprintf(w, "%s: %d x %d pixels, %d escaped (%.1f%%)\n",
		cfg.output, sec.Width, sec.Height, escaped, 100*float64(escaped)/float64(pixels))
	p.Fprintf(w, "%d batch steps, %d iterations per pixel at most\n",
		sec.Stats.Steps, cfg.iter)
	if sec.Stats.ClampedVelocities > 0 {
		p.Fprintf(w, "%d escape velocities clamped\n", sec.Stats.ClampedVelocities)
	}
	if !sec.Complete {
		done := 0
		for _, c := range sec.BlocksCompleted {
			if c {
				done++
			}
		}
		p.Fprintf(w, "interrupted: %d of %d blocks finished\n", done, len(sec.BlocksCompleted))
	}
}
