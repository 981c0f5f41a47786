package ordmap

import (
	"slices"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestRangeEntryVisitsAllInOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordmap")
	defer teardown()

	m := FromGoMap(map[int]string{2: "b", 1: "a", 3: "c"})
	var keys []int
	var vals []string
	for key, val := range m.RangeEntry() {
		keys = append(keys, key)
		vals = append(vals, val)
	}
	if !slices.Equal(keys, []int{1, 2, 3}) {
		t.Fatalf("unexpected keys: %v", keys)
	}
	if !slices.Equal(vals, []string{"a", "b", "c"}) {
		t.Fatalf("unexpected values: %v", vals)
	}
}

func TestRangeEntryFromStartsAtLowerBound(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordmap")
	defer teardown()

	var m Map[int, string]
	for key := 10; key <= 100; key += 10 {
		m = m.Set(key, "")
	}
	var keys []int
	for key := range m.RangeEntryFrom(45) {
		keys = append(keys, key)
	}
	if !slices.Equal(keys, []int{50, 60, 70, 80, 90, 100}) {
		t.Fatalf("unexpected keys: %v", keys)
	}
}

func TestRangeEntryMayBeAbandonedAndReused(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordmap")
	defer teardown()

	var m Map[int, string]
	for key := 1; key <= 9; key++ {
		m = m.Set(key, "")
	}
	seq := m.RangeEntry()
	count := 0
	for key := range seq {
		count++
		if key == 3 {
			break
		}
	}
	if count != 3 {
		t.Fatalf("unexpected visit count before break: got=%d want=3", count)
	}
	count = 0
	for range seq {
		count++
	}
	if count != 9 {
		t.Fatalf("second ranging should start over: got=%d want=9", count)
	}
}

func TestRangeKeyAndRangeValue(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordmap")
	defer teardown()

	m := FromGoMap(map[string]int{"b": 2, "a": 1})
	keys := slices.Collect(m.RangeKey())
	if !slices.Equal(keys, []string{"a", "b"}) {
		t.Fatalf("unexpected keys: %v", keys)
	}
	vals := slices.Collect(m.RangeValue())
	if !slices.Equal(vals, []int{1, 2}) {
		t.Fatalf("unexpected values: %v", vals)
	}
}
