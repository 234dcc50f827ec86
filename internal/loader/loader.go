// Package loader reads point sets from whitespace-delimited text.
//
// The first token declares a point count. The count is advisory: it only
// sizes the initial allocation, and the remaining tokens are read as (x, y)
// pairs until the input is exhausted, whatever the count said.
package loader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"go.uber.org/zap"

	"skyline/internal/types"
)

// Options configures a Loader.
type Options struct {
	// CoordinateBits is the signed integer width each coordinate must fit.
	CoordinateBits int

	// MaxCapacityHint caps the allocation made from the declared count.
	MaxCapacityHint int
}

// DefaultOptions reads 16-bit coordinates.
func DefaultOptions() Options {
	return Options{CoordinateBits: 16, MaxCapacityHint: 1 << 20}
}

// PointSet is a parsed input file.
type PointSet struct {
	Source   string        // path actually opened; empty for Read
	Declared int           // count announced by the first token
	Points   []types.Point // points in input order
}

// Loader parses point sets.
type Loader struct {
	opts   Options
	logger *zap.Logger
}

// New creates a loader. Zero option fields take their defaults.
func New(opts Options, logger *zap.Logger) *Loader {
	def := DefaultOptions()
	if opts.CoordinateBits == 0 {
		opts.CoordinateBits = def.CoordinateBits
	}
	if opts.MaxCapacityHint == 0 {
		opts.MaxCapacityHint = def.MaxCapacityHint
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{opts: opts, logger: logger}
}

// LoadFile opens path (falling back to path+".txt") and parses it.
func (l *Loader) LoadFile(path string) (*PointSet, error) {
	f, resolved, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if resolved != path {
		l.logger.Debug("input resolved with .txt suffix", zap.String("path", path), zap.String("resolved", resolved))
	}

	set, err := l.Read(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", resolved, err)
	}
	set.Source = resolved
	return set, nil
}

// Read parses a point set from r. Nothing is returned on error.
func (l *Loader) Read(r io.Reader) (*PointSet, error) {
	tok := newTokenizer(r)

	countTok, ok, err := tok.next()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &ParseError{Index: 1, Err: ErrMissingCount}
	}
	declared, err := strconv.ParseInt(countTok, 10, 32)
	if err != nil {
		return nil, &ParseError{Token: countTok, Index: tok.index, Err: err}
	}

	points := make([]types.Point, 0, l.capacityHint(int(declared)))
	for {
		x, ok, err := l.coordinate(tok)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}

		y, ok, err := l.coordinate(tok)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, &ParseError{Index: tok.index + 1, Err: ErrIncompletePair}
		}

		points = append(points, types.Pt(x, y))
	}

	if int(declared) != len(points) {
		l.logger.Warn("declared point count does not match input",
			zap.Int64("declared", declared),
			zap.Int("read", len(points)),
		)
	}
	l.logger.Debug("points loaded", zap.Int("count", len(points)))

	return &PointSet{Declared: int(declared), Points: points}, nil
}

// coordinate reads the next token as a coordinate. ok is false at the end of
// input.
func (l *Loader) coordinate(tok *tokenizer) (int, bool, error) {
	s, ok, err := tok.next()
	if err != nil || !ok {
		return 0, ok, err
	}
	v, err := strconv.ParseInt(s, 10, l.opts.CoordinateBits)
	if err != nil {
		return 0, false, &ParseError{Token: s, Index: tok.index, Err: err}
	}
	return int(v), true, nil
}

func (l *Loader) capacityHint(declared int) int {
	if declared < 0 {
		return 0
	}
	return min(declared, l.opts.MaxCapacityHint)
}

// Open opens path for reading. If that fails, it retries with a ".txt"
// suffix. Directories count as failures. The returned string is the path
// that was opened.
func Open(path string) (*os.File, string, error) {
	f, err := openRegular(path)
	if err == nil {
		return f, path, nil
	}

	alt := path + ".txt"
	f, altErr := openRegular(alt)
	if altErr == nil {
		return f, alt, nil
	}

	return nil, "", fmt.Errorf("%w: %v; %v", ErrFileNotFound, err, altErr)
}

func openRegular(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if info.IsDir() {
		f.Close()
		return nil, fmt.Errorf("open %s: is a directory", path)
	}
	return f, nil
}

// tokenizer splits input on whitespace and counts tokens.
type tokenizer struct {
	sc    *bufio.Scanner
	index int
}

func newTokenizer(r io.Reader) *tokenizer {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return &tokenizer{sc: sc}
}

// next returns the next token. ok is false once input is exhausted; err is
// set only for read failures.
func (t *tokenizer) next() (string, bool, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return "", false, fmt.Errorf("failed to read input: %w", err)
		}
		return "", false, nil
	}
	t.index++
	return t.sc.Text(), true, nil
}
