package arr_test

import (
	"cmp"
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/hasbyte1/go-stdx/arr"
)

func assertSlice[T comparable](t *testing.T, got, want []T) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("slice length: got %d want %d  (got=%v want=%v)", len(got), len(want), got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %v want %v", i, got[i], want[i])
		}
	}
}

// ─── FirstFunc / LastFunc ─────────────────────────────────────────────────────

func TestFirstFunc(t *testing.T) {
	v, ok := arr.FirstFunc([]int{10, 20, 30})
	if !ok || v != 10 {
		t.Fatalf("FirstFunc = %v, %v; want 10, true", v, ok)
	}
	if _, ok := arr.FirstFunc([]int{}); ok {
		t.Fatal("FirstFunc on empty should return false")
	}
	v, ok = arr.FirstFunc([]int{1, 2, 3, 4}, func(n int) bool { return n > 2 })
	if !ok || v != 3 {
		t.Fatalf("FirstFunc predicate = %v, %v; want 3, true", v, ok)
	}
	if _, ok := arr.FirstFunc([]int{1}, func(n int) bool { return n > 5 }); ok {
		t.Fatal("FirstFunc without a match should return false")
	}
}

func TestLastFunc(t *testing.T) {
	v, ok := arr.LastFunc([]int{10, 20, 30})
	if !ok || v != 30 {
		t.Fatalf("LastFunc = %v, %v; want 30, true", v, ok)
	}
	v, ok = arr.LastFunc([]int{1, 2, 3, 4}, func(n int) bool { return n < 3 })
	if !ok || v != 2 {
		t.Fatalf("LastFunc predicate = %v, %v; want 2, true", v, ok)
	}
	if _, ok := arr.LastFunc([]string{}); ok {
		t.Fatal("LastFunc on empty should return false")
	}
}

// ─── Contains / Index ─────────────────────────────────────────────────────────

func TestContains(t *testing.T) {
	if !arr.Contains([]int{1, 2, 3}, func(n int) bool { return n == 2 }) {
		t.Fatal("Contains should be true")
	}
	if arr.Contains([]int{1, 2, 3}, func(n int) bool { return n == 99 }) {
		t.Fatal("Contains should be false")
	}
}

func TestContainsValueAndIndexOf(t *testing.T) {
	if !arr.ContainsValue([]string{"a", "b", "c"}, "b") {
		t.Fatal("ContainsValue should be true")
	}
	if arr.ContainsValue([]string{"a", "b"}, "z") {
		t.Fatal("ContainsValue should be false")
	}
	if i := arr.IndexOf([]int{10, 20, 30}, 20); i != 1 {
		t.Fatalf("IndexOf = %d; want 1", i)
	}
	if i := arr.Search([]string{"go", "rust"}, func(s string) bool { return strings.HasPrefix(s, "r") }); i != 1 {
		t.Fatalf("Search = %d; want 1", i)
	}
	if i := arr.Search([]int{1}, func(n int) bool { return n > 1 }); i != -1 {
		t.Fatalf("Search missing = %d; want -1", i)
	}
}

// ─── Transformation ───────────────────────────────────────────────────────────

func TestMapFuncFilterReject(t *testing.T) {
	got := arr.MapFunc([]int{1, 2, 3}, func(n, i int) string { return strings.Repeat("x", n+i) })
	assertSlice(t, got, []string{"x", "xxx", "xxxxx"})

	even := func(n, _ int) bool { return n%2 == 0 }
	assertSlice(t, arr.Filter([]int{1, 2, 3, 4}, even), []int{2, 4})
	assertSlice(t, arr.Reject([]int{1, 2, 3, 4}, even), []int{1, 3})
}

func TestReduce(t *testing.T) {
	sum := arr.Reduce([]int{1, 2, 3}, func(acc, n, _ int) int { return acc + n }, 10)
	if sum != 16 {
		t.Fatalf("Reduce = %d; want 16", sum)
	}
}

func TestFlatMapAndPluckFunc(t *testing.T) {
	got := arr.FlatMap([]string{"a b", "c"}, func(s string, _ int) []string { return strings.Fields(s) })
	assertSlice(t, got, []string{"a", "b", "c"})

	type user struct{ name string }
	names := arr.PluckFunc([]user{{"ann"}, {"bob"}}, func(u user) string { return u.name })
	assertSlice(t, names, []string{"ann", "bob"})
}

// ─── Set operations ───────────────────────────────────────────────────────────

func TestUnique(t *testing.T) {
	assertSlice(t, arr.Unique([]int{3, 1, 3, 2, 1}), []int{3, 1, 2})

	hosts := []any{"a", "b", "a"}
	assertSlice(t, arr.Unique(hosts), []any{"a", "b"})
}

func TestUniqueBy(t *testing.T) {
	got := arr.UniqueBy([]string{"Go", "go", "Rust"}, strings.ToLower)
	assertSlice(t, got, []string{"Go", "Rust"})
}

func TestDiffIntersect(t *testing.T) {
	assertSlice(t, arr.Diff([]int{1, 2, 3, 4}, []int{2, 4}), []int{1, 3})
	assertSlice(t, arr.Intersect([]int{1, 2, 3, 4}, []int{4, 2, 9}), []int{2, 4})
	assertSlice(t, arr.Diff([]int{}, []int{1}), []int{})
}

// ─── Slicing & restructuring ──────────────────────────────────────────────────

func TestChunk(t *testing.T) {
	chunks := arr.Chunk([]int{1, 2, 3, 4, 5}, 2)
	if len(chunks) != 3 {
		t.Fatalf("Chunk count = %d; want 3", len(chunks))
	}
	assertSlice(t, chunks[0], []int{1, 2})
	assertSlice(t, chunks[2], []int{5})

	src := []int{1, 2}
	arr.Chunk(src, 1)[0][0] = 9
	if src[0] != 1 {
		t.Fatal("Chunk must copy its groups")
	}
	if got := arr.Chunk([]int{1}, 0); len(got) != 0 {
		t.Fatalf("Chunk size 0 = %v; want empty", got)
	}
}

func TestCollapseReversePrependWrap(t *testing.T) {
	assertSlice(t, arr.Collapse([][]int{{1}, {}, {2, 3}}), []int{1, 2, 3})

	src := []int{1, 2, 3}
	assertSlice(t, arr.Reverse(src), []int{3, 2, 1})
	assertSlice(t, src, []int{1, 2, 3})

	assertSlice(t, arr.Prepend([]int{3}, 1, 2), []int{1, 2, 3})
	assertSlice(t, arr.Wrap("x"), []string{"x"})
}

func TestPartition(t *testing.T) {
	pass, fail := arr.Partition([]int{1, 2, 3, 4}, func(n int) bool { return n > 2 })
	assertSlice(t, pass, []int{3, 4})
	assertSlice(t, fail, []int{1, 2})
}

func TestZipCombine(t *testing.T) {
	pairs := arr.Zip([]string{"a", "b", "c"}, []int{1, 2})
	assertSlice(t, pairs, []arr.Pair[string, int]{{First: "a", Second: 1}, {First: "b", Second: 2}})

	m, err := arr.Combine([]string{"a", "b"}, []int{1, 2})
	if err != nil || m["a"] != 1 || m["b"] != 2 {
		t.Fatalf("Combine = %v, %v", m, err)
	}
	if _, err := arr.Combine([]string{"a"}, []int{}); !errors.Is(err, arr.ErrMismatchedLengths) {
		t.Fatalf("err = %v; want ErrMismatchedLengths", err)
	}
}

func TestGroupByKeyBy(t *testing.T) {
	words := []string{"apple", "avocado", "banana"}
	groups := arr.GroupBy(words, func(s string) byte { return s[0] })
	assertSlice(t, groups['a'], []string{"apple", "avocado"})
	assertSlice(t, groups['b'], []string{"banana"})

	byLen := arr.KeyBy(words, func(s string) int { return len(s) })
	if byLen[6] != "banana" || byLen[7] != "avocado" {
		t.Fatalf("KeyBy = %v", byLen)
	}
}

// ─── Sorting & randomisation ──────────────────────────────────────────────────

func TestSortIsStable(t *testing.T) {
	words := []string{"bb", "a", "cc", "d"}
	got := arr.Sort(words, func(a, b string) int { return cmp.Compare(len(a), len(b)) })
	assertSlice(t, got, []string{"a", "d", "bb", "cc"})
	assertSlice(t, words, []string{"bb", "a", "cc", "d"})
}

func TestShuffleAndSample(t *testing.T) {
	src := []int{1, 2, 3, 4, 5}
	shuffled := arr.Shuffle(src)
	slices.Sort(shuffled)
	assertSlice(t, shuffled, src)

	sample := arr.Sample(src, 2)
	if len(sample) != 2 {
		t.Fatalf("Sample len = %d; want 2", len(sample))
	}
	for _, v := range sample {
		if !slices.Contains(src, v) {
			t.Fatalf("Sample returned foreign value %d", v)
		}
	}
	if got := arr.Sample(src, 10); len(got) != 5 {
		t.Fatalf("Sample beyond len = %v; want all items", got)
	}
	if got := arr.Sample(src, -1); len(got) != 0 {
		t.Fatalf("Sample negative = %v; want empty", got)
	}
}

// ─── Aggregation ──────────────────────────────────────────────────────────────

func TestSumMinMax(t *testing.T) {
	type item struct {
		name  string
		price float64
	}
	items := []item{{"a", 3}, {"b", 1.5}, {"c", 4}}
	price := func(i item) float64 { return i.price }

	if s := arr.Sum(items, price); s != 8.5 {
		t.Fatalf("Sum = %v; want 8.5", s)
	}
	if m, ok := arr.Min(items, price); !ok || m.name != "b" {
		t.Fatalf("Min = %v, %v; want b", m, ok)
	}
	if m, ok := arr.Max(items, price); !ok || m.name != "c" {
		t.Fatalf("Max = %v, %v; want c", m, ok)
	}
	if _, ok := arr.Max([]item{}, price); ok {
		t.Fatal("Max on empty should return false")
	}
}

// ─── Wildcard results ─────────────────────────────────────────────────────────

func TestSliceHelpersOnWildcardResults(t *testing.T) {
	cfg := map[string]any{"servers": []any{
		map[string]any{"host": "a", "port": 80},
		map[string]any{"host": "b", "port": 443},
		map[string]any{"host": "a", "port": 8080},
	}}
	hosts, ok := arr.Get(cfg, "servers.*.host").([]any)
	if !ok {
		t.Fatal("wildcard should yield a list")
	}
	assertSlice(t, arr.Unique(hosts), []any{"a", "b"})

	servers := arr.Get(cfg, "servers").([]any)
	secure, _ := arr.Partition(servers, func(s any) bool { return arr.Get(s, "port") == 443 })
	if len(secure) != 1 || arr.Get(secure[0], "host") != "b" {
		t.Fatalf("Partition = %v", secure)
	}
}
