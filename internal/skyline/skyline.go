// Package skyline computes the skyline of a set of 2D integer points: the
// points not dominated by any other point, where a dominates b when a is no
// greater than b on both axes and strictly smaller on one.
//
// Every entry point requires its input to be sorted by ascending X (see
// types.SortByX). The split is purely positional, so that ordering is what
// guarantees every left-half point has X no greater than any right-half
// point. The result is ordered by strictly ascending X and strictly
// descending Y.
package skyline

import (
	"skyline/internal/types"
)

// Find returns the skyline of points, which must be sorted by X.
// points is not modified. Inputs of length 0 or 1 are returned as is.
func Find(points []types.Point) []types.Point {
	return sequential.solveRecursive(points, 0)
}

var sequential = NewSolver(Options{Strategy: StrategyRecursive}, nil)

// merge combines the skylines of two adjacent x-sorted halves into a new
// slice. Neither input is modified.
func merge(left, right []types.Point) []types.Point {
	minY := minYOf(left)

	out := make([]types.Point, 0, len(left)+len(right))
	out = append(out, left...)
	for _, p := range right {
		if p.Y < minY {
			out = append(out, p)
		}
	}

	return collapseEqualX(out)
}

// minYOf returns the smallest Y in points, which must be non-empty.
func minYOf(points []types.Point) int {
	minY := points[0].Y
	for _, p := range points[1:] {
		if p.Y < minY {
			minY = p.Y
		}
	}
	return minY
}

// collapseEqualX compacts runs of adjacent equal-X points down to the point
// with the smallest Y, keeping the earlier one on a Y tie. It works in place
// and returns the shortened slice.
func collapseEqualX(points []types.Point) []types.Point {
	if len(points) < 2 {
		return points
	}

	w := 1
	for _, p := range points[1:] {
		last := &points[w-1]
		if last.X == p.X {
			if p.Y < last.Y {
				*last = p
			}
			continue
		}
		points[w] = p
		w++
	}
	return points[:w]
}
