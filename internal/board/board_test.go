package board

import (
	"math/rand"
	"testing"

	"github.com/slavikme/snake-game/internal/core"
)

func TestNewAllFree(t *testing.T) {
	tr := New(5, 4, rand.New(rand.NewSource(1)))

	if tr.FreeCount() != 20 {
		t.Errorf("FreeCount() = %d, expected 20", tr.FreeCount())
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 5; x++ {
			if !tr.IsFree(core.P(x, y)) {
				t.Errorf("cell (%d,%d) should start free", x, y)
			}
		}
	}
}

func TestOccupyRelease(t *testing.T) {
	tr := New(5, 5, rand.New(rand.NewSource(1)))
	p := core.P(2, 3)

	if !tr.Occupy(p) {
		t.Fatal("Occupy on a free cell should return true")
	}
	if tr.IsFree(p) {
		t.Error("cell should not be free after Occupy")
	}
	if tr.FreeCount() != 24 {
		t.Errorf("FreeCount() = %d, expected 24", tr.FreeCount())
	}

	if tr.Occupy(p) {
		t.Error("Occupy on an occupied cell should return false")
	}
	if tr.FreeCount() != 24 {
		t.Error("repeated Occupy must not change the free count")
	}

	tr.Release(p)
	if !tr.IsFree(p) {
		t.Error("cell should be free after Release")
	}
	if tr.FreeCount() != 25 {
		t.Errorf("FreeCount() = %d after Release, expected 25", tr.FreeCount())
	}
}

func TestOutOfBounds(t *testing.T) {
	tr := New(3, 3, rand.New(rand.NewSource(1)))

	if tr.Occupy(core.P(-1, 0)) {
		t.Error("Occupy out of bounds should return false")
	}
	if tr.IsFree(core.P(3, 0)) {
		t.Error("IsFree out of bounds should return false")
	}

	tr.Release(core.P(5, 5)) // must not grow the free set
	if tr.FreeCount() != 9 {
		t.Errorf("FreeCount() = %d after out-of-bounds Release, expected 9", tr.FreeCount())
	}
}

func TestRandomFreeNeverReturnsOccupied(t *testing.T) {
	tr := New(4, 4, rand.New(rand.NewSource(7)))

	// Occupy a diagonal band
	occupied := []core.Point{core.P(0, 0), core.P(1, 1), core.P(2, 2), core.P(3, 3)}
	for _, p := range occupied {
		tr.Occupy(p)
	}

	for i := 0; i < 200; i++ {
		p, ok := tr.RandomFree()
		if !ok {
			t.Fatal("RandomFree reported full board")
		}
		if !tr.InBounds(p) {
			t.Fatalf("RandomFree returned out-of-bounds cell %v", p)
		}
		for _, o := range occupied {
			if p == o {
				t.Fatalf("RandomFree returned occupied cell %v", p)
			}
		}
	}
}

func TestRandomFreeFullBoard(t *testing.T) {
	tr := New(2, 2, rand.New(rand.NewSource(3)))

	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			tr.Occupy(core.P(x, y))
		}
	}

	if tr.FreeCount() != 0 {
		t.Fatalf("FreeCount() = %d, expected 0", tr.FreeCount())
	}
	if _, ok := tr.RandomFree(); ok {
		t.Error("RandomFree on a full board should return false")
	}
}

func TestRandomFreeSingleCell(t *testing.T) {
	tr := New(3, 1, rand.New(rand.NewSource(11)))
	tr.Occupy(core.P(0, 0))
	tr.Occupy(core.P(2, 0))

	for i := 0; i < 20; i++ {
		p, ok := tr.RandomFree()
		if !ok || p != core.P(1, 0) {
			t.Fatalf("RandomFree = (%v, %v), expected the only free cell (1,0)", p, ok)
		}
	}
}

func TestReset(t *testing.T) {
	tr := New(3, 3, rand.New(rand.NewSource(5)))
	tr.Occupy(core.P(0, 0))
	tr.Occupy(core.P(1, 1))

	tr.Reset()

	if tr.FreeCount() != 9 {
		t.Errorf("FreeCount() = %d after Reset, expected 9", tr.FreeCount())
	}
	if !tr.IsFree(core.P(0, 0)) {
		t.Error("occupied cell should be free after Reset")
	}
}

func TestSnakeMovementPattern(t *testing.T) {
	// Simulate the game's bookkeeping: occupy the head cell, release the
	// tail cell, over a long walk. The free count must stay constant.
	tr := New(10, 10, rand.New(rand.NewSource(9)))

	body := []core.Point{core.P(5, 5), core.P(4, 5), core.P(3, 5)}
	for _, p := range body {
		tr.Occupy(p)
	}
	want := 100 - len(body)

	head := body[0]
	for step := 0; step < 50; step++ {
		head = core.P((head.X+1)%10, head.Y)
		if !tr.IsFree(head) {
			// walked into own body in this toy walk; skip the move
			continue
		}
		tr.Occupy(head)
		body = append([]core.Point{head}, body...)

		tail := body[len(body)-1]
		body = body[:len(body)-1]
		tr.Release(tail)

		if tr.FreeCount() != want {
			t.Fatalf("FreeCount() = %d at step %d, expected %d", tr.FreeCount(), step, want)
		}
	}
}
