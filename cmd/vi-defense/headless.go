package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/vi-defense/engine"
)

// runHeadless steps the world without pacing and prints the final checksum and status metrics
// Stops early when ctx is cancelled; the summary is printed either way
func runHeadless(ctx context.Context, w *engine.World, ticks int, runID uuid.UUID, out io.Writer) error {
	start := time.Now()
	rate := w.Status.Floats.Get("headless.ticks_per_sec")

	stepped := 0
loop:
	for stepped < ticks {
		select {
		case <-ctx.Done():
			log.Printf("[HEADLESS] interrupted after %d ticks", stepped)
			break loop
		default:
		}
		w.Step()
		stepped++
	}

	if elapsed := time.Since(start).Seconds(); elapsed > 0 {
		rate.Set(float64(stepped) / elapsed)
	}

	sum, err := w.State.Checksum()
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "run      %s\n", runID)
	fmt.Fprintf(out, "level    %s\n", w.Level.Name)
	fmt.Fprintf(out, "checksum %016x\n", sum)
	for _, m := range w.Status.Snapshot() {
		fmt.Fprintf(out, "%-24s %s\n", m.Key, m.Value)
	}
	return nil
}
