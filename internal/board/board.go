// Package board tracks which cells of a rectangular game board are free.
// It is the piece that lets food placement pick a random unoccupied cell in
// O(1): free cells live in a randmap.Map, so marking a cell occupied is a
// constant-time delete and picking a spawn point is a constant-time random
// draw, with no grid scanning.
package board

import (
	"math/rand"

	"github.com/slavikme/snake-game/internal/core"
	"github.com/slavikme/snake-game/internal/randmap"
)

// Tracker maintains the set of free cells of a W x H board.
// A cell is either free or occupied (by a wall or a snake segment); the
// tracker does not care which. Out-of-bounds points are ignored by mutators
// and reported as not free by queries.
type Tracker struct {
	width  int
	height int
	free   *randmap.Map[core.Point, struct{}]
}

// New creates a tracker for a width x height board with every cell free.
// The rng drives random free-cell selection; pass a seeded generator for
// deterministic behavior.
func New(width, height int, rng *rand.Rand) *Tracker {
	t := &Tracker{
		width:  width,
		height: height,
	}
	var opts []randmap.Option[core.Point, struct{}]
	if rng != nil {
		opts = append(opts, randmap.WithRand[core.Point, struct{}](rng))
	}
	t.free = randmap.New(opts...)
	t.fill()
	return t
}

// fill marks every cell free.
func (t *Tracker) fill() {
	for y := 0; y < t.height; y++ {
		for x := 0; x < t.width; x++ {
			t.free.Set(core.Point{X: x, Y: y}, struct{}{})
		}
	}
}

// Width returns the board width in cells.
func (t *Tracker) Width() int {
	return t.width
}

// Height returns the board height in cells.
func (t *Tracker) Height() int {
	return t.height
}

// InBounds returns true if p lies on the board.
func (t *Tracker) InBounds(p core.Point) bool {
	return p.X >= 0 && p.X < t.width && p.Y >= 0 && p.Y < t.height
}

// Occupy marks a cell as occupied. Returns false if the cell was already
// occupied or out of bounds.
func (t *Tracker) Occupy(p core.Point) bool {
	return t.free.Delete(p)
}

// Release marks a cell as free again. Out-of-bounds points are ignored.
func (t *Tracker) Release(p core.Point) {
	if !t.InBounds(p) {
		return
	}
	t.free.Set(p, struct{}{})
}

// IsFree returns true if the cell is on the board and unoccupied.
func (t *Tracker) IsFree(p core.Point) bool {
	return t.free.Has(p)
}

// FreeCount returns the number of free cells.
func (t *Tracker) FreeCount() int {
	return t.free.Len()
}

// RandomFree returns a uniformly-random free cell. Returns false when the
// board is fully occupied; a full board is an expected state (the snake can
// cover everything), not an error.
func (t *Tracker) RandomFree() (core.Point, bool) {
	p, _, ok := t.free.Random()
	return p, ok
}

// Reset returns every cell to the free state.
func (t *Tracker) Reset() {
	t.free.Clear()
	t.fill()
}
