package str

import (
	"cmp"
	"slices"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultSlugSeparator joins the words of a slug.
const DefaultSlugSeparator = "-"

// letters that do not decompose into ASCII under NFKD
var foldLetters = map[rune]string{
	'ß': "ss", 'ẞ': "SS",
	'æ': "ae", 'Æ': "AE",
	'œ': "oe", 'Œ': "OE",
	'ø': "o", 'Ø': "O",
	'đ': "d", 'Đ': "D",
	'ð': "d", 'Ð': "D",
	'ł': "l", 'Ł': "L",
	'þ': "th", 'Þ': "TH",
	'ı': "i",
}

// SlugOptions configures a [Slugger].
type SlugOptions struct {
	// Separator joins words. Defaults to DefaultSlugSeparator.
	Separator string

	// Replacements are applied to the raw input before transliteration,
	// e.g. {"&": "and", "@": "at"}.
	Replacements map[string]string

	// KeepCase disables lower-casing.
	KeepCase bool
}

// Slugger turns arbitrary text into URL-friendly slugs. A Slugger is
// immutable after construction and safe for concurrent use.
type Slugger struct {
	sep      string
	keepCase bool
	replacer *strings.Replacer
}

// NewSlugger creates a Slugger from opts.
func NewSlugger(opts SlugOptions) *Slugger {
	s := &Slugger{
		sep:      opts.Separator,
		keepCase: opts.KeepCase,
	}
	if s.sep == "" {
		s.sep = DefaultSlugSeparator
	}
	if len(opts.Replacements) > 0 {
		// longest first so "&&" wins over "&"
		keys := make([]string, 0, len(opts.Replacements))
		for k := range opts.Replacements {
			keys = append(keys, k)
		}
		slices.SortFunc(keys, func(a, b string) int {
			if n := cmp.Compare(len(b), len(a)); n != 0 {
				return n
			}
			return cmp.Compare(a, b)
		})
		pairs := make([]string, 0, 2*len(keys))
		for _, k := range keys {
			pairs = append(pairs, k, " "+opts.Replacements[k]+" ")
		}
		s.replacer = strings.NewReplacer(pairs...)
	}
	return s
}

// Slug converts text using the configured separator.
//
//	NewSlugger(SlugOptions{}).Slug("Hello, Wörld!") → "hello-world"
func (s *Slugger) Slug(text string) string {
	return s.SlugWith(text, s.sep)
}

// SlugWith converts text using sep instead of the configured separator.
func (s *Slugger) SlugWith(text, sep string) string {
	if s.replacer != nil {
		text = s.replacer.Replace(text)
	}
	text = Transliterate(text)
	if !s.keepCase {
		text = strings.ToLower(text)
	}

	words := strings.FieldsFunc(text, func(r rune) bool {
		return r > unicode.MaxASCII || !(unicode.IsLetter(r) || unicode.IsDigit(r))
	})
	return strings.Join(words, sep)
}

// Slug is shorthand for a default Slugger with the given separator.
func Slug(text string, sep ...string) string {
	opts := SlugOptions{}
	if len(sep) > 0 {
		opts.Separator = sep[0]
	}
	return NewSlugger(opts).Slug(text)
}

// Transliterate strips diacritics and folds ligatures so that Latin text
// reduces to ASCII where possible. Characters without an ASCII form are
// kept.
func Transliterate(text string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if out, _, err := transform.String(t, text); err == nil {
		text = out
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if folded, ok := foldLetters[r]; ok {
			b.WriteString(folded)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
