// Package types provides the point model shared by the loader, the solver
// and the reporter. Types in this package are plain values with no
// dependencies beyond the standard library.
package types

import (
	"cmp"
	"fmt"
	"slices"
)

// =============================================================================
// POINT
// =============================================================================

// Point is an immutable 2D integer coordinate pair. Two points with the same
// coordinates are interchangeable.
type Point struct {
	X int
	Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// String renders the point the way the report prints it: (x,y).
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Dominates reports whether p dominates q: p is no greater than q on both
// axes and strictly smaller on at least one.
func (p Point) Dominates(q Point) bool {
	if p.X > q.X || p.Y > q.Y {
		return false
	}
	return p.X < q.X || p.Y < q.Y
}

// =============================================================================
// SEQUENCE HELPERS
// =============================================================================

// CompareX orders points by X only.
func CompareX(a, b Point) int {
	return cmp.Compare(a.X, b.X)
}

// SortByX sorts points by ascending X in place. The sort is stable, so points
// sharing an X keep their input order.
func SortByX(points []Point) {
	slices.SortStableFunc(points, CompareX)
}

// IsSortedByX reports whether points are in ascending X order.
func IsSortedByX(points []Point) bool {
	return slices.IsSortedFunc(points, CompareX)
}

// Clone returns a copy of points that shares no backing array with it.
func Clone(points []Point) []Point {
	if points == nil {
		return nil
	}
	return slices.Clone(points)
}
