package cmd

import (
	"cmp"
	"fmt"

	"github.com/hasbyte1/go-stdx/arr"
)

// shaping reorders and reduces wildcard results after filtering.
type shaping struct {
	unique    bool
	sort      bool
	reverse   bool
	aggregate string
}

func (s shaping) apply(v any) (any, error) {
	items, isList := v.([]any)
	if !isList {
		if s.aggregate != "" {
			items = arr.Wrap(v)
		} else {
			return v, nil
		}
	}

	if s.unique {
		items = arr.UniqueBy(items, inline)
	}
	if s.sort {
		items = arr.Sort(items, compareValues)
	}
	if s.reverse {
		items = arr.Reverse(items)
	}

	switch s.aggregate {
	case "":
		return items, nil
	case "count":
		return len(items), nil
	}

	nums, rest := arr.Partition(items, func(item any) bool {
		_, ok := number(item)
		return ok
	})
	if len(rest) > 0 {
		return nil, fmt.Errorf("--aggregate %s: %s is not a number", s.aggregate, inline(rest[0]))
	}
	value := func(item any) float64 {
		f, _ := number(item)
		return f
	}
	switch s.aggregate {
	case "sum":
		return arr.Sum(nums, value), nil
	case "min":
		m, _ := arr.Min(nums, value)
		return m, nil
	case "max":
		m, _ := arr.Max(nums, value)
		return m, nil
	}
	return nil, fmt.Errorf("unknown --aggregate %q (want count, sum, min or max)", s.aggregate)
}

// compareValues orders numbers numerically before everything else, which is
// ordered by its inline rendering.
func compareValues(a, b any) int {
	af, aNum := number(a)
	bf, bNum := number(b)
	switch {
	case aNum && bNum:
		return cmp.Compare(af, bf)
	case aNum:
		return -1
	case bNum:
		return 1
	}
	return cmp.Compare(inline(a), inline(b))
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
