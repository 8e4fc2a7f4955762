// Package locale provides static lookup tables for locales, countries and
// timezones, suitable for populating select inputs, plus helpers that
// resolve table entries against golang.org/x/text/language and the time
// package.
//
// # Tables
//
// [Locales], [Countries] and [Timezones] return the entries in display
// order. Each call returns a fresh copy, so callers may sort or filter the
// result freely:
//
//	for _, c := range locale.Countries() {
//	    fmt.Printf("<option value=%q>%s</option>\n", c.Code, c.Name)
//	}
//
// # Lookups
//
//	locale.CountryName("de")      // → "Germany", true
//	locale.LocaleName("pt_BR")    // → "Portuguese (Brazil)", true
//	locale.Match("fr-CA,fr;q=0.8", "en-US") // → "fr-CA"
//
// All tables are read-only; every function is safe for concurrent use.
package locale
