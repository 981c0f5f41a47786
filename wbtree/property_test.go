package wbtree

import (
	"cmp"
	"math/rand"
	"slices"
	"strconv"
	"testing"
)

// How to run:
//   - Deterministic randomized property test:
//     go test ./wbtree -run TestTreeRandomizedProperty -count=1
//   - Fuzz test for this file:
//     go test ./wbtree -run '^$' -fuzz FuzzTreeRandomizedProperty -fuzztime=10s
//   - Replay a specific saved failing input:
//     go test ./wbtree -run 'FuzzTreeRandomizedProperty/<id>'

// treeModel mirrors the tree under test with a plain map.
type treeModel struct {
	bindings map[int]string
}

func (m *treeModel) sortedEntries() []Entry[int, string] {
	keys := make([]int, 0, len(m.bindings))
	for key := range m.bindings {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	entries := make([]Entry[int, string], 0, len(keys))
	for _, key := range keys {
		entries = append(entries, Entry[int, string]{Key: key, Val: m.bindings[key]})
	}
	return entries
}

func assertTreeMatchesModel(t *testing.T, tree *Tree[int, string], model *treeModel, balanced bool) {
	t.Helper()
	if balanced {
		if err := tree.CheckBalanced(); err != nil {
			t.Fatalf("balance invariants lost: %v", err)
		}
	} else if err := tree.Check(); err != nil {
		t.Fatalf("structural invariants lost: %v", err)
	}
	want := model.sortedEntries()
	got := tree.Entries()
	if len(got) != len(want) {
		t.Fatalf("model length mismatch: got=%d want=%d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("model mismatch at %d: got=%v want=%v", i, got[i], want[i])
		}
	}
	if tree.Len() != len(want) {
		t.Fatalf("Len mismatch: got=%d want=%d", tree.Len(), len(want))
	}
}

func runRandomTreeSequence(t *testing.T, seed uint64, steps int) {
	t.Helper()
	r := rand.New(rand.NewSource(int64(seed)))
	tree, err := New[int, string](Config[int]{Compare: cmp.Compare[int]})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	model := &treeModel{bindings: make(map[int]string)}
	// Deletions are allowed to leave the weight criterion violated, so the
	// strict balance check only applies before the first deletion and again
	// after every full rebuild.
	balanced := true

	for i := 0; i < steps; i++ {
		key := r.Intn(64)
		val := strconv.Itoa(r.Intn(1000))
		switch r.Intn(8) {
		case 0, 1:
			tree = tree.Set(key, val)
			model.bindings[key] = val
		case 2:
			inserted, err := tree.Insert(key, val)
			if _, present := model.bindings[key]; present {
				if err == nil {
					t.Fatalf("Insert(%d) should have failed on duplicate", key)
				}
			} else {
				if err != nil {
					t.Fatalf("Insert(%d) failed: %v", key, err)
				}
				tree = inserted
				model.bindings[key] = val
			}
		case 3:
			updated, err := tree.Update(key, val)
			if _, present := model.bindings[key]; present {
				if err != nil {
					t.Fatalf("Update(%d) failed: %v", key, err)
				}
				tree = updated
				model.bindings[key] = val
			} else if err == nil {
				t.Fatalf("Update(%d) should have failed on absent key", key)
			}
		case 4:
			deleted, err := tree.Delete(key)
			if _, present := model.bindings[key]; present {
				if err != nil {
					t.Fatalf("Delete(%d) failed: %v", key, err)
				}
				tree = deleted
				delete(model.bindings, key)
				balanced = false
			} else if err == nil {
				t.Fatalf("Delete(%d) should have failed on absent key", key)
			}
		case 5:
			taken, rest, ok := tree.TakeIfPresent(key)
			if wantVal, present := model.bindings[key]; present {
				if !ok || taken != wantVal {
					t.Fatalf("TakeIfPresent(%d) = %q, %v; want %q", key, taken, ok, wantVal)
				}
				tree = rest
				delete(model.bindings, key)
				balanced = false
			} else if ok {
				t.Fatalf("TakeIfPresent(%d) should report absence", key)
			}
		case 6:
			entry, rest, err := tree.TakeSmallest()
			if len(model.bindings) == 0 {
				if err == nil {
					t.Fatalf("TakeSmallest should fail on empty tree")
				}
			} else {
				if err != nil {
					t.Fatalf("TakeSmallest failed: %v", err)
				}
				want := model.sortedEntries()[0]
				if entry != want {
					t.Fatalf("TakeSmallest = %v, want %v", entry, want)
				}
				tree = rest
				delete(model.bindings, entry.Key)
				balanced = false
			}
		case 7:
			tree = tree.Rebalance()
			balanced = true
		}
		assertTreeMatchesModel(t, tree, model, balanced)
	}
}

func TestTreeRandomizedProperty(t *testing.T) {
	seeds := []uint64{1, 2, 3, 7, 42, 99, 31337, 123456789}
	for _, seed := range seeds {
		t.Run("seed_"+strconv.FormatUint(seed, 10), func(t *testing.T) {
			runRandomTreeSequence(t, seed, 120)
		})
	}
}

func FuzzTreeRandomizedProperty(f *testing.F) {
	f.Add(uint64(1), uint8(32))
	f.Add(uint64(7), uint8(64))
	f.Add(uint64(42), uint8(96))
	f.Fuzz(func(t *testing.T, seed uint64, steps uint8) {
		runRandomTreeSequence(t, seed, int(steps%150)+1)
	})
}
