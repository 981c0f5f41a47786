package wbtree

import "testing"

func TestCursorWalksInOrder(t *testing.T) {
	tree := newIntTree(t)
	for _, key := range []int{8, 3, 11, 1, 5, 9, 14} {
		tree = tree.Set(key, "v")
	}
	want := []int{1, 3, 5, 8, 9, 11, 14}
	cursor := tree.Cursor()
	for i, key := range want {
		entry, next, ok := cursor.Next()
		if !ok {
			t.Fatalf("cursor exhausted after %d entries", i)
		}
		if entry.Key != key {
			t.Fatalf("entry %d: got key %d, want %d", i, entry.Key, key)
		}
		cursor = next
	}
	if _, _, ok := cursor.Next(); ok {
		t.Fatalf("cursor should be exhausted")
	}
	if !cursor.Done() {
		t.Fatalf("Done should report exhaustion")
	}
}

func TestCursorOnEmptyTree(t *testing.T) {
	tree := newIntTree(t)
	cursor := tree.Cursor()
	if !cursor.Done() {
		t.Fatalf("cursor on empty tree should be exhausted")
	}
	if _, _, ok := cursor.Next(); ok {
		t.Fatalf("Next on empty tree should report exhaustion")
	}
}

func TestCursorAtSeeksFirstKeyNotBelow(t *testing.T) {
	tree := newIntTree(t)
	const n = 1000
	for i := 1; i <= n; i++ {
		tree = tree.Set(i, "v")
	}
	cursor := tree.CursorAt(500)
	for want := 500; want <= n; want++ {
		entry, next, ok := cursor.Next()
		if !ok {
			t.Fatalf("cursor exhausted before key %d", want)
		}
		if entry.Key != want {
			t.Fatalf("got key %d, want %d", entry.Key, want)
		}
		cursor = next
	}
	if _, _, ok := cursor.Next(); ok {
		t.Fatalf("cursor should be exhausted after key %d", n)
	}
}

func TestCursorAtBetweenKeys(t *testing.T) {
	tree := newIntTree(t)
	for i := 1; i <= 100; i++ {
		tree = tree.Set(i*2, "v") // keys 2, 4, ..., 200
	}
	entry, _, ok := tree.CursorAt(31).Next()
	if !ok || entry.Key != 32 {
		t.Fatalf("CursorAt(31) should start at 32, got %d, %v", entry.Key, ok)
	}
	entry, _, ok = tree.CursorAt(2).Next()
	if !ok || entry.Key != 2 {
		t.Fatalf("CursorAt(2) should start at 2, got %d, %v", entry.Key, ok)
	}
	if cursor := tree.CursorAt(201); !cursor.Done() {
		t.Fatalf("CursorAt past the largest key should be exhausted")
	}
}

// Advancing a cursor must not disturb copies of its earlier positions.
func TestCursorCopiesAreIndependent(t *testing.T) {
	tree := newIntTree(t)
	for i := 1; i <= 32; i++ {
		tree = tree.Set(i, "v")
	}
	fork := tree.Cursor()
	cursor := fork
	for i := 0; i < 10; i++ {
		_, next, ok := cursor.Next()
		if !ok {
			t.Fatalf("cursor exhausted early")
		}
		cursor = next
	}
	entry, _, ok := fork.Next()
	if !ok || entry.Key != 1 {
		t.Fatalf("forked cursor moved: got key %d, %v", entry.Key, ok)
	}
	entry, _, ok = cursor.Next()
	if !ok || entry.Key != 11 {
		t.Fatalf("advanced cursor at wrong position: got key %d, %v", entry.Key, ok)
	}
}

// A cursor belongs to one tree version and keeps traversing it even when
// newer versions have long replaced it.
func TestCursorSurvivesNewerVersions(t *testing.T) {
	tree := newIntTree(t).Set(1, "a").Set(2, "b").Set(3, "c")
	cursor := tree.Cursor()
	newer := tree.Set(2, "B").Set(4, "d")
	var err error
	newer, err = newer.Delete(1)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	want := []Entry[int, string]{{1, "a"}, {2, "b"}, {3, "c"}}
	for i, wantEntry := range want {
		entry, next, ok := cursor.Next()
		if !ok {
			t.Fatalf("cursor exhausted after %d entries", i)
		}
		if entry != wantEntry {
			t.Fatalf("entry %d: got %v, want %v", i, entry, wantEntry)
		}
		cursor = next
	}
	if newer.Len() != 3 {
		t.Fatalf("unexpected newer version size: %d", newer.Len())
	}
}

func TestCursorFullWalkVisitsEverything(t *testing.T) {
	tree := newIntTree(t)
	const n = 4096
	for i := 0; i < n; i++ {
		tree = tree.Set(i, "v")
	}
	count := 0
	for cursor := tree.Cursor(); ; {
		_, next, ok := cursor.Next()
		if !ok {
			break
		}
		count++
		cursor = next
	}
	if count != n {
		t.Fatalf("cursor walk visited %d of %d entries", count, n)
	}
}
