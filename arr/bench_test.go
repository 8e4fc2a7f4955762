package arr_test

import (
	"strconv"
	"testing"

	"github.com/hasbyte1/go-stdx/arr"
)

// makeWide creates {"items": [{"id": 0, "tags": {"k": "v"}}, ...]} of size n.
func makeWide(n int) map[string]any {
	items := make([]any, n)
	for i := range items {
		items[i] = map[string]any{"id": i, "tags": map[string]any{"k": "v" + strconv.Itoa(i)}}
	}
	return map[string]any{"items": items}
}

func BenchmarkGet(b *testing.B) {
	m := makeWide(100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		arr.Get(m, "items.42.tags.k")
	}
}

func BenchmarkGetWildcard(b *testing.B) {
	m := makeWide(1_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		arr.Get(m, "items.*.tags.k")
	}
}

func BenchmarkSet(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m := map[string]any{}
		_ = arr.Set(m, "a.b.c.d", i)
	}
}

func BenchmarkDot(b *testing.B) {
	m := makeWide(1_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		arr.Dot(m)
	}
}

func BenchmarkUniqueWildcard(b *testing.B) {
	m := makeWide(1_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tags := arr.Get(m, "items.*.tags.k").([]any)
		arr.Unique(tags)
	}
}
