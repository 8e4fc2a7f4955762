package locale

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// Option is a single table entry: a machine code and its display name.
type Option struct {
	Code string
	Name string
}

// DefaultLocale is the fallback used by the CLI when nothing matches.
const DefaultLocale = "en-US"

var (
	localeIndex   = indexBy(locales, normalizeLocale)
	countryIndex  = indexBy(countries, strings.ToUpper)
	timezoneIndex = indexBy(timezones, func(s string) string { return s })

	supportedTags = tagsOf(locales)
	matcher       = language.NewMatcher(supportedTags)
)

func indexBy(opts []Option, key func(string) string) map[string]int {
	idx := make(map[string]int, len(opts))
	for i, o := range opts {
		idx[key(o.Code)] = i
	}
	return idx
}

func tagsOf(opts []Option) []language.Tag {
	tags := make([]language.Tag, len(opts))
	for i, o := range opts {
		tags[i] = language.MustParse(o.Code)
	}
	return tags
}

// normalizeLocale maps "pt_br", "PT-BR" and "pt-BR" to the same key.
func normalizeLocale(code string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(code), "_", "-"))
}

// ─────────────────────────────────────────────────────────────────────────────
// Tables
// ─────────────────────────────────────────────────────────────────────────────

// Locales returns the supported locales ordered by code.
func Locales() []Option { return slices.Clone(locales) }

// Countries returns the ISO 3166-1 countries ordered by display name.
func Countries() []Option { return slices.Clone(countries) }

// Timezones returns the supported IANA timezones ordered by UTC offset.
func Timezones() []Option { return slices.Clone(timezones) }

// ─────────────────────────────────────────────────────────────────────────────
// Lookups
// ─────────────────────────────────────────────────────────────────────────────

// LocaleName returns the display name of a locale code. Case and the
// separator ("-" or "_") are ignored.
func LocaleName(code string) (string, bool) {
	return lookup(locales, localeIndex, normalizeLocale(code))
}

// CountryName returns the display name of an ISO 3166-1 alpha-2 code,
// ignoring case.
func CountryName(code string) (string, bool) {
	return lookup(countries, countryIndex, strings.ToUpper(strings.TrimSpace(code)))
}

// TimezoneName returns the display name of an IANA timezone identifier.
func TimezoneName(id string) (string, bool) {
	return lookup(timezones, timezoneIndex, id)
}

func lookup(opts []Option, idx map[string]int, key string) (string, bool) {
	i, ok := idx[key]
	if !ok {
		return "", false
	}
	return opts[i].Name, true
}

// ─────────────────────────────────────────────────────────────────────────────
// Resolution
// ─────────────────────────────────────────────────────────────────────────────

// ParseTag parses a BCP 47 language tag, accepting "_" as a separator.
func ParseTag(s string) (language.Tag, error) {
	tag, err := language.Parse(strings.ReplaceAll(strings.TrimSpace(s), "_", "-"))
	if err != nil {
		return language.Und, fmt.Errorf("%w: %q", ErrInvalidTag, s)
	}
	return tag, nil
}

// Match picks the supported locale that best satisfies an HTTP
// Accept-Language header and returns its code. fallback is returned when the
// header is empty, malformed or matches nothing.
//
//	Match("de-CH, de;q=0.9, en;q=0.5", "en-US") → "de-CH"
func Match(acceptLanguage, fallback string) string {
	if strings.TrimSpace(acceptLanguage) == "" {
		return fallback
	}
	prefs, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(prefs) == 0 {
		return fallback
	}
	_, i, conf := matcher.Match(prefs...)
	if conf == language.No {
		return fallback
	}
	return locales[i].Code
}

// LoadTimezone resolves a timezone from the table to a *time.Location.
// Identifiers outside the table are rejected with ErrUnknownTimezone.
func LoadTimezone(id string) (*time.Location, error) {
	if _, ok := timezoneIndex[id]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTimezone, id)
	}
	loc, err := time.LoadLocation(id)
	if err != nil {
		return nil, fmt.Errorf("locale: loading %q: %w", id, err)
	}
	return loc, nil
}
