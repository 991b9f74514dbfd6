package randmap

import (
	"fmt"
	"math/rand"
	"testing"
)

// checkInvariants verifies that the three internal structures agree: equal
// sizes, every key's recorded position points at its slot, and the dense
// list holds no duplicates.
func checkInvariants[K comparable, V any](t *testing.T, m *Map[K, V]) {
	t.Helper()

	if len(m.keys) != len(m.entries) || len(m.keys) != len(m.index) {
		t.Fatalf("structure sizes diverged: keys=%d entries=%d index=%d",
			len(m.keys), len(m.entries), len(m.index))
	}

	seen := make(map[K]bool, len(m.keys))
	for pos, key := range m.keys {
		if seen[key] {
			t.Fatalf("duplicate key %v in dense list", key)
		}
		seen[key] = true

		if got, ok := m.index[key]; !ok || got != pos {
			t.Fatalf("index for key %v = %d (present=%v), expected %d", key, got, ok, pos)
		}
		if _, ok := m.entries[key]; !ok {
			t.Fatalf("key %v in dense list but not in primary map", key)
		}
	}
}

func TestSetGetRoundTrip(t *testing.T) {
	m := New[string, int]()

	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("c", 3)

	if m.Len() != 3 {
		t.Errorf("Len() = %d, expected 3", m.Len())
	}

	for key, want := range map[string]int{"a": 1, "b": 2, "c": 3} {
		if !m.Has(key) {
			t.Errorf("Has(%q) = false, expected true", key)
		}
		got, ok := m.Get(key)
		if !ok || got != want {
			t.Errorf("Get(%q) = (%d, %v), expected (%d, true)", key, got, ok, want)
		}
	}

	if _, ok := m.Get("missing"); ok {
		t.Error("Get on absent key should report false")
	}
	checkInvariants(t, m)
}

func TestSetOverwrite(t *testing.T) {
	m := New[string, int]()

	m.Set("a", 1)
	m.Set("a", 2)

	if m.Len() != 1 {
		t.Errorf("Len() = %d after overwrite, expected 1", m.Len())
	}
	if got, _ := m.Get("a"); got != 2 {
		t.Errorf("Get(\"a\") = %d, expected 2", got)
	}
	checkInvariants(t, m)
}

func TestDelete(t *testing.T) {
	m := New[string, int]()
	m.Set("a", 1)
	m.Set("b", 2)

	if !m.Delete("a") {
		t.Error("Delete(\"a\") = false, expected true")
	}
	if m.Has("a") {
		t.Error("Has(\"a\") = true after delete")
	}
	if _, ok := m.Get("a"); ok {
		t.Error("Get(\"a\") should report absent after delete")
	}
	if !m.Has("b") {
		t.Error("Has(\"b\") = false, delete removed the wrong key")
	}
	if m.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", m.Len())
	}
	checkInvariants(t, m)
}

func TestDeleteAbsent(t *testing.T) {
	m := New[string, int]()

	if m.Delete("x") {
		t.Error("Delete on empty map should return false")
	}
	if m.Len() != 0 {
		t.Errorf("Len() = %d after failed delete, expected 0", m.Len())
	}

	m.Set("a", 1)
	if m.Delete("x") {
		t.Error("Delete of absent key should return false")
	}
	if m.Len() != 1 {
		t.Error("failed delete must leave the map unchanged")
	}
	if got, _ := m.Get("a"); got != 1 {
		t.Error("failed delete must not disturb other entries")
	}
	checkInvariants(t, m)
}

func TestDeleteMiddleMovesLast(t *testing.T) {
	m := New[string, int]()
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("c", 3)

	// "a" sits at position 0; deleting it must move "c" into its slot.
	if !m.Delete("a") {
		t.Fatal("Delete(\"a\") failed")
	}
	checkInvariants(t, m)

	// The moved key must still be fully reachable.
	if got, ok := m.Get("c"); !ok || got != 3 {
		t.Errorf("Get(\"c\") = (%d, %v) after swap, expected (3, true)", got, ok)
	}
	if !m.Delete("c") {
		t.Error("moved key could not be deleted; its position was not updated")
	}
	checkInvariants(t, m)
}

func TestClear(t *testing.T) {
	m := New[string, int]()
	for i := 0; i < 10; i++ {
		m.Set(fmt.Sprintf("key%d", i), i)
	}

	m.Clear()

	if m.Len() != 0 {
		t.Errorf("Len() = %d after Clear, expected 0", m.Len())
	}
	if m.Has("key0") {
		t.Error("Has should report false after Clear")
	}
	checkInvariants(t, m)

	// The map must remain usable after clearing.
	m.Set("a", 1)
	if m.Len() != 1 {
		t.Error("map unusable after Clear")
	}
	checkInvariants(t, m)
}

func TestRandomEmpty(t *testing.T) {
	m := New[string, int]()

	for i := 0; i < 5; i++ {
		key, value, ok := m.Random()
		if ok {
			t.Fatalf("Random() on empty map returned (%q, %d, true)", key, value)
		}
		if key != "" || value != 0 {
			t.Errorf("Random() on empty map should return zero values, got (%q, %d)", key, value)
		}
	}
}

func TestRandomSingleEntry(t *testing.T) {
	m := New[string, int]()
	m.Set("a", 1)
	m.Set("b", 2)
	m.Delete("a")

	for i := 0; i < 20; i++ {
		key, value, ok := m.Random()
		if !ok || key != "b" || value != 2 {
			t.Fatalf("Random() = (%q, %d, %v), expected (\"b\", 2, true)", key, value, ok)
		}
	}
}

func TestRandomReturnsPresentEntries(t *testing.T) {
	m := New(WithRand[string, int](rand.New(rand.NewSource(7))))
	want := map[string]int{"a": 1, "b": 2, "c": 3}
	for k, v := range want {
		m.Set(k, v)
	}

	for i := 0; i < 100; i++ {
		key, value, ok := m.Random()
		if !ok {
			t.Fatal("Random() reported empty on a populated map")
		}
		if expected, present := want[key]; !present || expected != value {
			t.Fatalf("Random() returned (%q, %d), not a present entry", key, value)
		}
	}
}

func TestRandomUniformity(t *testing.T) {
	const (
		keyCount = 8
		trials   = 100000
	)

	m := New(WithRand[int, string](rand.New(rand.NewSource(42))))
	for i := 0; i < keyCount; i++ {
		m.Set(i, fmt.Sprintf("value%d", i))
	}

	counts := make(map[int]int, keyCount)
	for i := 0; i < trials; i++ {
		key, _, ok := m.Random()
		if !ok {
			t.Fatal("Random() reported empty")
		}
		counts[key]++
	}

	// Each key should land near trials/keyCount. A 10% band is far looser
	// than the expected sampling error at this trial count, so a biased
	// selection (e.g. weighted by insertion order) fails reliably.
	expected := float64(trials) / float64(keyCount)
	for key := 0; key < keyCount; key++ {
		got := float64(counts[key])
		if got < expected*0.9 || got > expected*1.1 {
			t.Errorf("key %d selected %d times, expected about %.0f", key, counts[key], expected)
		}
	}
}

func TestChurnPreservesInvariants(t *testing.T) {
	m := New(WithRand[int, int](rand.New(rand.NewSource(99))))
	rng := rand.New(rand.NewSource(1234))

	present := make(map[int]bool)
	for i := 0; i < 5000; i++ {
		key := rng.Intn(200)
		if rng.Intn(3) == 0 {
			removed := m.Delete(key)
			if removed != present[key] {
				t.Fatalf("Delete(%d) = %v, expected %v", key, removed, present[key])
			}
			delete(present, key)
		} else {
			m.Set(key, i)
			present[key] = true
		}

		if m.Len() != len(present) {
			t.Fatalf("Len() = %d, expected %d after %d operations", m.Len(), len(present), i+1)
		}
	}

	checkInvariants(t, m)
	for key := range present {
		if !m.Has(key) {
			t.Errorf("key %d lost during churn", key)
		}
	}
}

func TestBulkInsertThenDeleteHalf(t *testing.T) {
	m := New[int, int]()
	for i := 0; i < 1000; i++ {
		m.Set(i, i*i)
	}

	// Delete every other key, in an order unrelated to insertion.
	rng := rand.New(rand.NewSource(5))
	toDelete := rng.Perm(1000)[:500]
	deleted := make(map[int]bool, 500)
	for _, key := range toDelete {
		if !m.Delete(key) {
			t.Fatalf("Delete(%d) failed on a present key", key)
		}
		deleted[key] = true
	}

	if m.Len() != 500 {
		t.Fatalf("Len() = %d, expected 500", m.Len())
	}
	for i := 0; i < 1000; i++ {
		value, ok := m.Get(i)
		if deleted[i] {
			if ok {
				t.Errorf("deleted key %d still present", i)
			}
		} else if !ok || value != i*i {
			t.Errorf("Get(%d) = (%d, %v), expected (%d, true)", i, value, ok, i*i)
		}
	}
	checkInvariants(t, m)
}

func TestNewFrom(t *testing.T) {
	m := NewFrom([]Entry[string, int]{
		{Key: "a", Value: 1},
		{Key: "b", Value: 2},
		{Key: "a", Value: 3}, // duplicate key: last write wins
	})

	if m.Len() != 2 {
		t.Errorf("Len() = %d, expected 2", m.Len())
	}
	if got, _ := m.Get("a"); got != 3 {
		t.Errorf("Get(\"a\") = %d, expected 3", got)
	}
	checkInvariants(t, m)
}

func TestKeys(t *testing.T) {
	m := New[string, int]()
	m.Set("a", 1)
	m.Set("b", 2)

	keys := m.Keys()
	if len(keys) != 2 {
		t.Fatalf("Keys() returned %d keys, expected 2", len(keys))
	}

	// Mutating the returned slice must not affect the container.
	keys[0] = "zzz"
	checkInvariants(t, m)
	if !m.Has("a") || !m.Has("b") {
		t.Error("Keys() must return a copy")
	}
}
