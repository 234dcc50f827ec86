package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointString(t *testing.T) {
	assert.Equal(t, "(3,4)", Pt(3, 4).String())
	assert.Equal(t, "(-1,0)", Pt(-1, 0).String())
}

func TestDominates(t *testing.T) {
	tests := []struct {
		name string
		p, q Point
		want bool
	}{
		{"smaller on both axes", Pt(1, 1), Pt(2, 2), true},
		{"equal x smaller y", Pt(2, 1), Pt(2, 3), true},
		{"smaller x equal y", Pt(1, 5), Pt(2, 5), true},
		{"identical points", Pt(3, 4), Pt(3, 4), false},
		{"incomparable", Pt(1, 5), Pt(2, 3), false},
		{"reverse", Pt(2, 2), Pt(1, 1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.p.Dominates(tt.q))
		})
	}
}

func TestSortByXIsStable(t *testing.T) {
	points := []Point{Pt(3, 1), Pt(1, 9), Pt(3, 0), Pt(2, 2), Pt(1, 4)}

	SortByX(points)

	require.True(t, IsSortedByX(points))
	assert.Equal(t, []Point{Pt(1, 9), Pt(1, 4), Pt(2, 2), Pt(3, 1), Pt(3, 0)}, points)
}

func TestIsSortedByX(t *testing.T) {
	assert.True(t, IsSortedByX(nil))
	assert.True(t, IsSortedByX([]Point{Pt(1, 5), Pt(1, 2), Pt(4, 0)}))
	assert.False(t, IsSortedByX([]Point{Pt(2, 5), Pt(1, 2)}))
}

func TestClone(t *testing.T) {
	assert.Nil(t, Clone(nil))

	src := []Point{Pt(1, 2), Pt(3, 4)}
	dup := Clone(src)
	dup[0] = Pt(9, 9)
	assert.Equal(t, Pt(1, 2), src[0])
}
