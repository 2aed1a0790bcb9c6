package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Faultbox/domesim/internal/engine"
	"github.com/Faultbox/domesim/internal/engine/alignment"
	"github.com/Faultbox/domesim/internal/engine/dome"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// statusText is the display label, with "no alignment" for None.
func statusText(s alignment.Status) string {
	if s == alignment.None {
		return "no alignment"
	}
	return s.Label()
}

func printFrame(w io.Writer, f engine.Frame) {
	fmt.Fprintln(w, f.Time)
	printBody(w, "sun", f.Sun)
	printBody(w, "moon", f.Moon)
	fmt.Fprintf(w, "angle diff %d°, spot distance %.1f\n",
		f.Alignment.RoundedAngleDiff(), f.Alignment.SpotDistance)
	fmt.Fprintf(w, "status: %s\n", statusText(f.Alignment.Status))
}

func printBody(w io.Writer, name string, b engine.BodyState) {
	fmt.Fprintf(w, "%-5s orbit (%9.1f, %9.1f, %7.1f) r=%.1f\n",
		name, b.Position.X, b.Position.Y, b.Position.Z, b.Position.Radius)
	fmt.Fprintf(w, "      dome  (%9.1f, %9.1f, %7.1f) elevation %.1f°\n",
		b.Dome.X, b.Dome.Y, b.Dome.Z, dome.ElevationDeg(b.Dome))
	fmt.Fprintf(w, "      spot  (%9.1f, %9.1f, %7.1f)\n", b.Spot.X, b.Spot.Y, b.Spot.Z)
}
