package engine

import (
	"math/rand"
	"testing"

	"roguecore/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkLine(t *testing.T, a, b domain.Point, line []domain.Point) {
	t.Helper()
	require.Len(t, line, a.Chebyshev(b)+1, "%v -> %v", a, b)
	assert.Equal(t, a, line[0])
	assert.Equal(t, b, line[len(line)-1])
	for i := 1; i < len(line); i++ {
		assert.True(t, line[i-1].IsAdjacent(line[i]), "%v -> %v: gap or repeat at %d", a, b, i)
	}
}

func TestTraceLine_Cases(t *testing.T) {
	cases := []struct {
		name string
		a, b domain.Point
		want []domain.Point
	}{
		{"degenerate", domain.Pt(3, 3), domain.Pt(3, 3), []domain.Point{domain.Pt(3, 3)}},
		{"horizontal", domain.Pt(0, 0), domain.Pt(3, 0), []domain.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}}},
		{"vertical up", domain.Pt(1, 3), domain.Pt(1, 0), []domain.Point{{X: 1, Y: 3}, {X: 1, Y: 2}, {X: 1, Y: 1}, {X: 1, Y: 0}}},
		{"diagonal", domain.Pt(0, 0), domain.Pt(2, 2), []domain.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}}},
		{"shallow", domain.Pt(0, 0), domain.Pt(4, 1), []domain.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 1}, {X: 3, Y: 1}, {X: 4, Y: 1}}},
		{"steep", domain.Pt(0, 0), domain.Pt(1, 4), []domain.Point{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 2}, {X: 1, Y: 3}, {X: 1, Y: 4}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := TraceLine(tc.a, tc.b)
			assert.Equal(t, tc.want, got)
			checkLine(t, tc.a, tc.b, got)
		})
	}
}

func TestTraceLine_Symmetry(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 2000; i++ {
		a := domain.Pt(rng.Intn(41)-20, rng.Intn(41)-20)
		b := domain.Pt(rng.Intn(41)-20, rng.Intn(41)-20)

		ab := TraceLine(a, b)
		ba := TraceLine(b, a)
		checkLine(t, a, b, ab)
		checkLine(t, b, a, ba)

		require.Equal(t, len(ab), len(ba))
		for j := range ab {
			if ab[j] != ba[len(ba)-1-j] {
				t.Fatalf("trace %v -> %v is not the reverse of %v -> %v: %v vs %v", a, b, b, a, ab, ba)
			}
		}
	}
}

func TestMap_TraceLine(t *testing.T) {
	m := NewMap("t", 10, 10, domain.Grass)
	n := NewMap("n", 10, 10, domain.Grass)

	line := m.TraceLine(At(m, 0, 0), At(m, 9, 3))
	require.Len(t, line, 10)
	assert.True(t, line[0].Equal(At(m, 0, 0)))
	assert.True(t, line[9].Equal(At(m, 9, 3)))
	assert.Same(t, m, line[5].Map())

	assert.Panics(t, func() { m.TraceLine(At(m, 0, 0), At(n, 1, 1)) })
	assert.Panics(t, func() { m.TraceLine(At(m, 0, 0), At(m, 10, 1)) })
}
