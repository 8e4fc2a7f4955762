package cmd

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/hasbyte1/go-stdx/arr"
)

// whereFilter keeps the values for which a boolean expression holds. The
// expression sees the candidate as `value` and its position as `index`:
//
//	value.age >= 18 && index < 10
type whereFilter struct {
	program *vm.Program
}

func compileWhere(src string) (*whereFilter, error) {
	program, err := expr.Compile(src, expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compiling --where: %w", err)
	}
	return &whereFilter{program: program}, nil
}

func (f *whereFilter) match(value any, index int) (bool, error) {
	out, err := expr.Run(f.program, map[string]any{
		"value": arr.Plain(value),
		"index": index,
	})
	if err != nil {
		return false, fmt.Errorf("evaluating --where: %w", err)
	}
	ok, _ := out.(bool)
	return ok, nil
}

// apply filters a wildcard result list. A single value is kept or replaced by
// def.
func (f *whereFilter) apply(v, def any) (any, error) {
	items, isList := v.([]any)
	if !isList {
		ok, err := f.match(v, 0)
		if err != nil || ok {
			return v, err
		}
		return def, nil
	}

	out := make([]any, 0, len(items))
	for i, item := range items {
		ok, err := f.match(item, i)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, item)
		}
	}
	return out, nil
}
