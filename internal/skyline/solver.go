package skyline

import (
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"skyline/internal/types"
)

// Strategy selects how the solver manages memory across recursion levels.
type Strategy string

const (
	// StrategyRecursive builds a fresh slice at every merge and never
	// modifies its input.
	StrategyRecursive Strategy = "recursive"

	// StrategyInPlace works on index ranges of the input's backing array.
	// Each level compacts its skyline into the prefix of its range, so the
	// input is consumed and the result aliases it.
	StrategyInPlace Strategy = "inplace"
)

// Options configures a Solver.
type Options struct {
	Strategy Strategy

	// ParallelDepth is the number of top recursion levels whose two halves
	// are solved on separate goroutines. Zero keeps the solver on the
	// calling goroutine.
	ParallelDepth int
}

// Solver runs the divide-and-conquer skyline algorithm.
// A Solver holds no per-call state and is safe for concurrent use.
type Solver struct {
	opts   Options
	logger *zap.Logger
}

// NewSolver creates a solver. A nil logger disables logging.
func NewSolver(opts Options, logger *zap.Logger) *Solver {
	if opts.Strategy == "" {
		opts.Strategy = StrategyRecursive
	}
	if opts.ParallelDepth < 0 {
		opts.ParallelDepth = 0
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Solver{opts: opts, logger: logger}
}

// Options returns the effective options.
func (s *Solver) Options() Options {
	return s.opts
}

// Solve returns the skyline of points, which must be sorted by X.
// With StrategyInPlace the contents of points are overwritten and the result
// is a prefix of points.
func (s *Solver) Solve(points []types.Point) []types.Point {
	var out []types.Point
	switch s.opts.Strategy {
	case StrategyInPlace:
		out = points[:s.solveInPlace(points, 0)]
	default:
		out = s.solveRecursive(points, 0)
	}

	s.logger.Debug("skyline solved",
		zap.String("strategy", string(s.opts.Strategy)),
		zap.Int("parallel_depth", s.opts.ParallelDepth),
		zap.Int("input", len(points)),
		zap.Int("output", len(out)),
	)
	return out
}

func (s *Solver) solveRecursive(points []types.Point, depth int) []types.Point {
	if len(points) <= 1 {
		return points
	}

	mid := len(points) / 2
	var left, right []types.Point
	s.fork(depth,
		func() { left = s.solveRecursive(points[:mid], depth+1) },
		func() { right = s.solveRecursive(points[mid:], depth+1) },
	)

	return merge(left, right)
}

// solveInPlace compacts the skyline of points into points[:k] and returns k.
func (s *Solver) solveInPlace(points []types.Point, depth int) int {
	n := len(points)
	if n <= 1 {
		return n
	}

	mid := n / 2
	var nl, nr int
	s.fork(depth,
		func() { nl = s.solveInPlace(points[:mid], depth+1) },
		func() { nr = s.solveInPlace(points[mid:], depth+1) },
	)

	// The left skyline sits in points[:nl] and the right one in
	// points[mid:mid+nr]. Survivors of the filter slide down to follow the
	// left block; the write index never passes the read index.
	minY := minYOf(points[:nl])
	w := nl
	for _, p := range points[mid : mid+nr] {
		if p.Y < minY {
			points[w] = p
			w++
		}
	}

	return len(collapseEqualX(points[:w]))
}

// fork runs left and right, concurrently while depth is below the configured
// parallel depth. Both have returned when fork returns.
func (s *Solver) fork(depth int, left, right func()) {
	if depth >= s.opts.ParallelDepth {
		left()
		right()
		return
	}

	var g errgroup.Group
	g.Go(func() error {
		left()
		return nil
	})
	right()
	_ = g.Wait()
}
