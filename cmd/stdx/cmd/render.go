package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/hasbyte1/go-stdx/arr"
	"github.com/hasbyte1/go-stdx/internal/document"
)

// render prints v: scalars on one line, mappings and lists encoded in the
// configured output format. TOML cannot hold a bare list, so those fall back
// to JSON.
func (a *app) render(w io.Writer, v any) error {
	if !arr.IsMapping(v) {
		_, err := fmt.Fprintln(w, a.colors.value.Sprint(inline(v)))
		return err
	}
	out, err := document.Encode(v, a.outputFormat(), a.cfg.Output.Indent)
	if errors.Is(err, document.ErrNotTable) {
		out, err = document.Encode(v, document.JSON, a.cfg.Output.Indent)
	}
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

// inline formats a value for a single output line. Strings are printed
// as-is, everything else as compact JSON.
func inline(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	b, err := json.Marshal(arr.Plain(v))
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}
