package str

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Words splits s into words at separators (anything that is not a letter or
// digit) and at case boundaries:
//
//	Words("helloWorld")        → ["hello", "World"]
//	Words("HTTPServer_v2 ok")  → ["HTTP", "Server", "v2", "ok"]
func Words(s string) []string {
	var (
		words []string
		cur   []rune
	)
	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = cur[:0]
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush()
			continue
		}
		if unicode.IsUpper(r) && len(cur) > 0 {
			prev := cur[len(cur)-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			// fooBar | HTTPServer
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				flush()
			}
		}
		cur = append(cur, r)
	}
	flush()
	return words
}

// Snake converts s to snake_case.
func Snake(s string) string {
	return joinLower(Words(s), "_")
}

// Kebab converts s to kebab-case.
func Kebab(s string) string {
	return joinLower(Words(s), "-")
}

// Camel converts s to camelCase.
//
//	Camel("user_id") → "userId"
func Camel(s string) string {
	words := Words(s)
	if len(words) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(strings.ToLower(words[0]))
	for _, w := range words[1:] {
		b.WriteString(ucfirst(strings.ToLower(w)))
	}
	return b.String()
}

// Studly converts s to StudlyCase (PascalCase).
func Studly(s string) string {
	var b strings.Builder
	for _, w := range Words(s) {
		b.WriteString(ucfirst(strings.ToLower(w)))
	}
	return b.String()
}

// Title splits s into words (including camelCase boundaries) and title-cases
// them using the casing rules of tag, or language.Und when none is given.
//
//	Title("helloWorld")   → "Hello World"
//	Title("user_id")      → "User Id"
func Title(s string, tag ...language.Tag) string {
	t := language.Und
	if len(tag) > 0 {
		t = tag[0]
	}
	return cases.Title(t).String(strings.Join(Words(s), " "))
}

// Upper converts s to upper case.
func Upper(s string) string { return strings.ToUpper(s) }

// Lower converts s to lower case.
func Lower(s string) string { return strings.ToLower(s) }

// Ucfirst upper-cases the first character of s.
func Ucfirst(s string) string { return ucfirst(s) }

func ucfirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func joinLower(words []string, sep string) string {
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return strings.Join(words, sep)
}
