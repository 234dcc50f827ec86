// Package report prints a computed skyline.
package report

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"skyline/internal/types"
)

// Write prints the point count followed by one line per point, numbered
// from 1, in the order given.
func Write(w io.Writer, points []types.Point) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "Skyline consists of %d points:\n", len(points))
	for i, p := range points {
		fmt.Fprintf(bw, "Point %d: %s\n", i+1, p)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// WriteElapsed prints the elapsed wall-clock time in whole milliseconds.
func WriteElapsed(w io.Writer, elapsed time.Duration) error {
	if _, err := fmt.Fprintf(w, "Total execution time: %dms.\n", elapsed.Milliseconds()); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
