package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-stdx/str"
)

func newStrCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "str",
		Short: "String helpers",
	}

	// one-shot conversions; all arguments are joined with spaces
	for _, c := range []struct {
		use, short string
		fn         func(string) string
	}{
		{"title", "Title-case the text", func(s string) string { return str.Title(s) }},
		{"snake", "Convert to snake_case", str.Snake},
		{"kebab", "Convert to kebab-case", str.Kebab},
		{"camel", "Convert to camelCase", str.Camel},
		{"studly", "Convert to StudlyCase", str.Studly},
		{"reverse", "Reverse the characters", str.Reverse},
		{"hex", "Encode as upper-case hexadecimal", str.ToHex},
	} {
		cmd.AddCommand(&cobra.Command{
			Use:   c.use + " TEXT...",
			Short: c.short,
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.printValue(cmd, c.fn(strings.Join(args, " ")))
			},
		})
	}

	cmd.AddCommand(
		newStrSlugCmd(a),
		newStrMaskCmd(a),
		newStrLimitCmd(a),
		newStrRandomCmd(a),
		newStrPluralCmd(a),
	)
	return cmd
}

func (a *app) printValue(cmd *cobra.Command, s string) error {
	_, err := fmt.Fprintln(cmd.OutOrStdout(), a.colors.value.Sprint(s))
	return err
}

func newStrSlugCmd(a *app) *cobra.Command {
	var sep string
	cmd := &cobra.Command{
		Use:   "slug TEXT...",
		Short: "Turn text into a URL slug",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := str.SlugOptions{
				Separator:    a.cfg.Slug.Separator,
				Replacements: a.cfg.Slug.Replacements,
			}
			if sep != "" {
				opts.Separator = sep
			}
			return a.printValue(cmd, str.NewSlugger(opts).Slug(strings.Join(args, " ")))
		},
	}
	cmd.Flags().StringVar(&sep, "separator", "", "word separator (default from config, else \"-\")")
	return cmd
}

func newStrMaskCmd(a *app) *cobra.Command {
	var (
		visible int
		mask    string
	)
	cmd := &cobra.Command{
		Use:   "mask TEXT",
		Short: "Hide all but the last characters of TEXT",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.printValue(cmd, str.Mask(args[0], visible, mask))
		},
	}
	cmd.Flags().IntVar(&visible, "visible", 4, "number of trailing characters left visible")
	cmd.Flags().StringVar(&mask, "char", "*", "mask character(s)")
	return cmd
}

func newStrLimitCmd(a *app) *cobra.Command {
	var (
		words, chars int
		suffix       string
	)
	cmd := &cobra.Command{
		Use:   "limit TEXT...",
		Short: "Truncate text to a number of words or characters",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			switch {
			case words > 0:
				text = str.LimitWords(text, words, suffix)
			case chars > 0:
				text = str.LimitChars(text, chars, suffix)
			default:
				return fmt.Errorf("one of --words or --chars is required")
			}
			return a.printValue(cmd, text)
		},
	}
	cmd.Flags().IntVar(&words, "words", 0, "keep this many words")
	cmd.Flags().IntVar(&chars, "chars", 0, "keep this many characters")
	cmd.Flags().StringVar(&suffix, "suffix", "...", "appended when text was cut")
	cmd.MarkFlagsMutuallyExclusive("words", "chars")
	return cmd
}

func newStrRandomCmd(a *app) *cobra.Command {
	var (
		length int
		pool   string
	)
	cmd := &cobra.Command{
		Use:   "random",
		Short: "Print a cryptographically random string",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := str.Random(pool, length)
			if err != nil {
				return err
			}
			return a.printValue(cmd, s)
		},
	}
	cmd.Flags().IntVarP(&length, "length", "n", str.DefaultRandomLength, "number of characters")
	cmd.Flags().StringVar(&pool, "pool", "", "characters to draw from (default: letters and digits)")
	return cmd
}

func newStrPluralCmd(a *app) *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "plural NOUN",
		Short: "Pluralize an English noun, or agree it with --count",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("count") {
				return a.printValue(cmd, str.Pluralized(args[0], count))
			}
			return a.printValue(cmd, str.Pluralize(args[0]))
		},
	}
	cmd.Flags().IntVar(&count, "count", 2, "quantity the noun must agree with")
	return cmd
}
