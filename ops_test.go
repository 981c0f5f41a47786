package ordmap

import (
	"errors"
	"testing"

	"github.com/npillmayer/ordmap/wbtree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSetLeavesOldVersionIntact(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordmap")
	defer teardown()

	m1 := From(
		wbtree.Entry[string, int]{Key: "a", Val: 1},
		wbtree.Entry[string, int]{Key: "b", Val: 2},
	)
	m2 := m1.Set("c", 3)
	m3 := m2.Set("a", 99)
	if m1.Len() != 2 || m1.Has("c") {
		t.Fatalf("old version changed by Set: %v", m1)
	}
	if val, _ := m2.Lookup("a"); val != 1 {
		t.Fatalf("version 2 changed by re-binding in version 3: got=%d want=1", val)
	}
	if val, _ := m3.Lookup("a"); val != 99 {
		t.Fatalf("re-binding did not take: got=%d want=99", val)
	}
}

func TestInsertRejectsDuplicateKey(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordmap")
	defer teardown()

	m, err := Map[int, string]{}.Insert(1, "a")
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	dup, err := m.Insert(1, "b")
	if !errors.Is(err, wbtree.ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey, got %v", err)
	}
	if !dup.IsEmpty() {
		t.Fatalf("failed Insert should not yield a map version")
	}
	if val, _ := m.Lookup(1); val != "a" {
		t.Fatalf("failed Insert changed the map: got=%q want=%q", val, "a")
	}
}

func TestUpdateRequiresPresentKey(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordmap")
	defer teardown()

	m := Map[int, string]{}.Set(1, "a")
	updated, err := m.Update(1, "A")
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if val, _ := updated.Lookup(1); val != "A" {
		t.Fatalf("Update did not take: got=%q want=%q", val, "A")
	}
	if _, err := m.Update(2, "b"); !errors.Is(err, wbtree.ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound, got %v", err)
	}
}

func TestDeleteTwiceReportsKeyNotFound(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordmap")
	defer teardown()

	m := Map[int, string]{}.Set(1, "a").Set(2, "b")
	m1, err := m.Delete(1)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if m1.Has(1) || m1.Len() != 1 {
		t.Fatalf("Delete did not remove the entry: %v", m1)
	}
	if _, err := m1.Delete(1); !errors.Is(err, wbtree.ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound, got %v", err)
	}
	if !m.Has(1) {
		t.Fatalf("old version changed by Delete")
	}
}

func TestDeleteIfPresentIsTotal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordmap")
	defer teardown()

	m := Map[int, string]{}.Set(1, "a")
	unchanged := m.DeleteIfPresent(42)
	if unchanged.tree != m.tree {
		t.Fatalf("removing an absent key should return the receiver version")
	}
	removed := m.DeleteIfPresent(1)
	if !removed.IsEmpty() {
		t.Fatalf("DeleteIfPresent did not remove the entry: %v", removed)
	}
}

func TestTakeReturnsValueAndNewVersion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordmap")
	defer teardown()

	m := Map[string, int]{}.Set("a", 1).Set("b", 2)
	val, m1, err := m.Take("a")
	if err != nil || val != 1 {
		t.Fatalf("unexpected Take result: %d (err=%v)", val, err)
	}
	if m1.Has("a") || m1.Len() != 1 {
		t.Fatalf("Take did not remove the entry: %v", m1)
	}
	if _, _, err := m1.Take("a"); !errors.Is(err, wbtree.ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound, got %v", err)
	}
}

func TestTakeIfPresentMissReturnsReceiver(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordmap")
	defer teardown()

	m := Map[string, int]{}.Set("a", 1)
	val, same, ok := m.TakeIfPresent("z")
	if ok || val != 0 {
		t.Fatalf("unexpected hit for absent key: val=%d ok=%v", val, ok)
	}
	if same.tree != m.tree {
		t.Fatalf("miss should return the receiver version")
	}
	val, removed, ok := m.TakeIfPresent("a")
	if !ok || val != 1 || removed.Has("a") {
		t.Fatalf("unexpected take: val=%d ok=%v removed=%v", val, ok, removed)
	}
}

func TestTakeSmallestAndLargestDrain(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordmap")
	defer teardown()

	m := FromGoMap(map[int]string{1: "a", 2: "b", 3: "c"})
	entry, m1, err := m.TakeSmallest()
	if err != nil || entry.Key != 1 {
		t.Fatalf("unexpected smallest: %v (err=%v)", entry, err)
	}
	entry, m2, err := m1.TakeLargest()
	if err != nil || entry.Key != 3 {
		t.Fatalf("unexpected largest: %v (err=%v)", entry, err)
	}
	entry, m3, err := m2.TakeSmallest()
	if err != nil || entry.Key != 2 || !m3.IsEmpty() {
		t.Fatalf("unexpected final take: %v (err=%v)", entry, err)
	}
	if _, _, err := m3.TakeSmallest(); !errors.Is(err, wbtree.ErrEmptyTree) {
		t.Fatalf("expected ErrEmptyTree, got %v", err)
	}
}

func TestRebalanceCompactsAfterDeletions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordmap")
	defer teardown()

	var m Map[int, int]
	for key := 0; key < 64; key++ {
		m = m.Set(key, key)
	}
	for key := 0; key < 56; key++ {
		m = m.DeleteIfPresent(key)
	}
	if m.Len() != 8 {
		t.Fatalf("unexpected length after deletions: got=%d want=8", m.Len())
	}
	compact := m.Rebalance()
	if compact.Len() != 8 || compact.Height() > 4 {
		t.Fatalf("rebalanced map not compact: len=%d height=%d", compact.Len(), compact.Height())
	}
	if compact.Height() > m.Height() {
		t.Fatalf("rebalancing grew the tree: %d -> %d", m.Height(), compact.Height())
	}
}

func TestMapValuesTransformsValues(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordmap")
	defer teardown()

	prices := FromGoMap(map[string]int{"tea": 3, "coffee": 4})
	doubled := MapValues(prices, func(cents int) int { return 2 * cents })
	if val, _ := doubled.Lookup("coffee"); val != 8 {
		t.Fatalf("unexpected transformed value: got=%d want=8", val)
	}
	if val, _ := prices.Lookup("coffee"); val != 4 {
		t.Fatalf("source map changed by MapValues: got=%d want=4", val)
	}
	labels := MapValues(prices, func(cents int) string {
		if cents > 3 {
			return "pricey"
		}
		return "cheap"
	})
	if val, _ := labels.Lookup("tea"); val != "cheap" {
		t.Fatalf("unexpected label: got=%q want=%q", val, "cheap")
	}
}
