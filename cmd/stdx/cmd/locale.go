package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-stdx/locale"
)

func newLocaleCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "locale",
		Short: "Locale, country and timezone tables",
	}
	cmd.AddCommand(
		newLocaleListCmd(a),
		newLocaleNameCmd(a),
		newLocaleMatchCmd(a),
		newLocaleTimeCmd(a),
	)
	return cmd
}

var localeTables = map[string]func() []locale.Option{
	"locales":   locale.Locales,
	"countries": locale.Countries,
	"timezones": locale.Timezones,
}

func newLocaleListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "list locales|countries|timezones",
		Short:     "Print a table as CODE<TAB>NAME lines",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"locales", "countries", "timezones"},
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for _, o := range localeTables[args[0]]() {
				fmt.Fprintf(w, "%s\t%s\n", a.colors.key.Sprint(o.Code), o.Name)
			}
			return nil
		},
	}
}

func newLocaleNameCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "name CODE",
		Short: "Print the display name of a locale, country or timezone code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, lookup := range []func(string) (string, bool){
				locale.LocaleName,
				locale.CountryName,
				locale.TimezoneName,
			} {
				if name, ok := lookup(args[0]); ok {
					return a.printValue(cmd, name)
				}
			}
			return fmt.Errorf("unknown code %q", args[0])
		},
	}
}

func newLocaleMatchCmd(a *app) *cobra.Command {
	var fallback string
	cmd := &cobra.Command{
		Use:   "match ACCEPT-LANGUAGE",
		Short: "Pick the best supported locale for an Accept-Language header",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if fallback == "" {
				fallback = a.cfg.Locale.Default
			}
			return a.printValue(cmd, locale.Match(args[0], fallback))
		},
	}
	cmd.Flags().StringVar(&fallback, "fallback", "", "locale used when nothing matches (default from config)")
	return cmd
}

func newLocaleTimeCmd(a *app) *cobra.Command {
	var layout string
	cmd := &cobra.Command{
		Use:   "time TIMEZONE",
		Short: "Print the current time in a timezone from the table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := locale.LoadTimezone(args[0])
			if err != nil {
				return err
			}
			return a.printValue(cmd, time.Now().In(loc).Format(layout))
		},
	}
	cmd.Flags().StringVar(&layout, "layout", time.RFC3339, "Go time layout")
	return cmd
}
