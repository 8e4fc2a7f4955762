package cmd

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-stdx/arr"
	"github.com/hasbyte1/go-stdx/internal/document"
)

func newPathCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Read and modify documents with dot paths",
		Long: `Address nested values of a JSON, YAML or TOML document with dot paths.

A "*" segment fans out over every child of a mapping or list:

  stdx path get config.yaml servers.*.host`,
	}
	cmd.AddCommand(
		newPathGetCmd(a),
		newPathSetCmd(a),
		newPathHasCmd(a),
		newPathDeleteCmd(a),
		newPathFlattenCmd(a),
	)
	return cmd
}

func (a *app) load(file string) (any, document.Format, error) {
	v, f, err := document.ReadFile(file, a.inputFormat())
	if err != nil {
		return nil, "", err
	}
	a.log.Debug("decoded document", slog.String("file", file), slog.String("format", string(f)))
	return v, f, nil
}

// save writes the document back to file, or prints it when write is false.
func (a *app) save(cmd *cobra.Command, file string, v any, f document.Format, write bool) error {
	if !write {
		out, err := document.Encode(v, f, a.cfg.Output.Indent)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	}
	if err := document.WriteFile(file, v, f, a.cfg.Output.Indent); err != nil {
		return err
	}
	a.log.Info("wrote document", slog.String("file", file), slog.String("format", string(f)))
	return nil
}

func newPathGetCmd(a *app) *cobra.Command {
	var (
		def    string
		strict bool
		where  string
		shape  shaping
	)
	cmd := &cobra.Command{
		Use:   "get FILE PATH",
		Short: "Print the value at PATH",
		Example: `  stdx path get app.json user.name
  stdx path get app.yaml users.*.email --where 'value.active'
  stdx path get app.toml server.port --default 8080
  stdx path get app.yaml users.*.age --aggregate max`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, _, err := a.load(args[0])
			if err != nil {
				return err
			}

			var fallback any
			if cmd.Flags().Changed("default") {
				fallback = document.ParseValue(def)
			}
			res, err := arr.Lookup(v, args[1], fallback, !strict)
			if err != nil {
				return err
			}

			if where != "" {
				filter, err := compileWhere(where)
				if err != nil {
					return err
				}
				if res, err = filter.apply(res, fallback); err != nil {
					return err
				}
			}
			if res, err = shape.apply(res); err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().StringVar(&def, "default", "", "value printed when PATH does not resolve (parsed as YAML)")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail on missing segments instead of skipping them")
	cmd.Flags().StringVar(&where, "where", "", "expression filtering wildcard results, e.g. 'value.age > 30'")
	cmd.Flags().BoolVar(&shape.unique, "unique", false, "drop repeated wildcard results")
	cmd.Flags().BoolVar(&shape.sort, "sort", false, "sort wildcard results, numbers first")
	cmd.Flags().BoolVar(&shape.reverse, "reverse", false, "reverse wildcard results")
	cmd.Flags().StringVar(&shape.aggregate, "aggregate", "", "reduce wildcard results: count, sum, min or max")
	return cmd
}

func newPathSetCmd(a *app) *cobra.Command {
	var write bool
	cmd := &cobra.Command{
		Use:   "set FILE PATH VALUE",
		Short: "Set PATH to VALUE, creating intermediate mappings",
		Long: `Set PATH to VALUE. VALUE is parsed as YAML, so 42 is a number, true a
boolean and [a, b] a list. Missing or non-mapping intermediate values are
replaced by empty mappings.

The updated document is printed unless --write is given.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, f, err := a.load(args[0])
			if err != nil {
				return err
			}
			if err := arr.Set(v, args[1], document.ParseValue(args[2])); err != nil {
				return err
			}
			return a.save(cmd, args[0], v, f, write)
		},
	}
	cmd.Flags().BoolVarP(&write, "write", "w", false, "write the result back to FILE")
	return cmd
}

func newPathHasCmd(a *app) *cobra.Command {
	var anyOf bool
	cmd := &cobra.Command{
		Use:   "has FILE PATH...",
		Short: "Report whether every PATH exists",
		Long: `Report whether every PATH exists; with --any, whether at least one does.
Wildcards are not expanded. The command exits non-zero when the answer is
false.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, _, err := a.load(args[0])
			if err != nil {
				return err
			}
			paths := args[1:]
			ok := arr.HasAll(v, paths...)
			if anyOf {
				ok = arr.HasAny(v, paths...)
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), a.colors.fail.Sprint("false"))
				return errFalse
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.colors.ok.Sprint("true"))
			return nil
		},
	}
	cmd.Flags().BoolVar(&anyOf, "any", false, "succeed when any PATH exists")
	return cmd
}

func newPathDeleteCmd(a *app) *cobra.Command {
	var write bool
	cmd := &cobra.Command{
		Use:     "delete FILE PATH...",
		Aliases: []string{"rm"},
		Short:   "Remove each PATH from the document",
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, f, err := a.load(args[0])
			if err != nil {
				return err
			}
			for _, p := range args[1:] {
				if !arr.Delete(v, p) {
					return fmt.Errorf("cannot delete %q", p)
				}
				a.log.Debug("deleted path", slog.String("path", p))
			}
			return a.save(cmd, args[0], v, f, write)
		},
	}
	cmd.Flags().BoolVarP(&write, "write", "w", false, "write the result back to FILE")
	return cmd
}

func newPathFlattenCmd(a *app) *cobra.Command {
	var sep string
	cmd := &cobra.Command{
		Use:   "flatten FILE",
		Short: "Print every leaf as PATH=VALUE",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, _, err := a.load(args[0])
			if err != nil {
				return err
			}
			flat := arr.DotWith(v, sep)
			w := cmd.OutOrStdout()
			for _, k := range slices.Sorted(maps.Keys(flat)) {
				fmt.Fprintf(w, "%s=%s\n", a.colors.key.Sprint(k), a.colors.value.Sprint(inline(flat[k])))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&sep, "separator", arr.Delimiter, "separator placed between path segments")
	return cmd
}
