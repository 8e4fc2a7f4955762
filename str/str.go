package str

import (
	"math/big"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ─────────────────────────────────────────────────────────────────────────────
// Line breaks
// ─────────────────────────────────────────────────────────────────────────────

var (
	htmlBreaks  = strings.NewReplacer("\r\n", "<br>", "\n\r", "<br>", "\n", "<br>", "\r", "<br>")
	xhtmlBreaks = strings.NewReplacer("\r\n", "<br />", "\n\r", "<br />", "\n", "<br />", "\r", "<br />")
	newlines    = strings.NewReplacer("<br>", "\n", "<br/>", "\n", "<br />", "\n")
)

// Nl2br replaces every newline sequence with <br>, or <br /> when xhtml is
// set.
func Nl2br(s string, xhtml bool) string {
	if xhtml {
		return xhtmlBreaks.Replace(s)
	}
	return htmlBreaks.Replace(s)
}

// Br2nl replaces <br>, <br/> and <br /> with a newline.
func Br2nl(s string) string {
	return newlines.Replace(s)
}

// ─────────────────────────────────────────────────────────────────────────────
// Length, truncation & masking
// ─────────────────────────────────────────────────────────────────────────────

// Length returns the number of characters in s.
func Length(s string) int { return utf8.RuneCountInString(s) }

// LimitChars truncates s to n characters, trims the cut and appends suffix.
// Strings of at most n characters are returned unchanged.
func LimitChars(s string, n int, suffix string) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return strings.TrimSpace(string(r[:max(n, 0)])) + suffix
}

// LimitWords keeps the first n words of s and appends suffix when anything
// was cut.
func LimitWords(s string, n int, suffix string) string {
	if n < 1 {
		return s
	}
	end, words, inWord := 0, 0, false
	for i, r := range s {
		if unicode.IsSpace(r) {
			if inWord && words == n {
				break
			}
			inWord = false
		} else if !inWord {
			if words == n {
				break
			}
			inWord = true
			words++
		}
		end = i + utf8.RuneLen(r)
	}
	if strings.TrimSpace(s[end:]) == "" {
		return s
	}
	return strings.TrimSpace(s[:end]) + suffix
}

// Mask hides all but the last visible characters of s behind mask. A
// multi-character mask is repeated and cut to fit.
//
//	Mask("4111111111111111", 4, "*") → "************1111"
//	Mask("secret", 0, "#")            → "######"
func Mask(s string, visible int, mask string) string {
	r := []rune(s)
	m := []rune(mask)
	if len(m) == 0 {
		return s
	}
	visible = min(max(visible, 0), len(r))
	hidden := len(r) - visible

	out := make([]rune, 0, len(r))
	for i := 0; i < hidden; i++ {
		out = append(out, m[i%len(m)])
	}
	out = append(out, r[hidden:]...)
	return string(out)
}

// ─────────────────────────────────────────────────────────────────────────────
// Searching & matching
// ─────────────────────────────────────────────────────────────────────────────

// StartsWith reports whether s starts with any non-empty needle.
func StartsWith(s string, needles ...string) bool {
	for _, n := range needles {
		if n != "" && strings.HasPrefix(s, n) {
			return true
		}
	}
	return false
}

// EndsWith reports whether s ends with any non-empty needle.
func EndsWith(s string, needles ...string) bool {
	for _, n := range needles {
		if n != "" && strings.HasSuffix(s, n) {
			return true
		}
	}
	return false
}

// Contains reports whether s contains any non-empty needle.
func Contains(s string, needles ...string) bool {
	for _, n := range needles {
		if n != "" && strings.Contains(s, n) {
			return true
		}
	}
	return false
}

// Finish caps s with exactly one trailing instance of cap.
//
//	Finish("path///", "/") → "path/"
func Finish(s, cap string) string {
	if cap == "" {
		return s
	}
	for strings.HasSuffix(s, cap) {
		s = strings.TrimSuffix(s, cap)
	}
	return s + cap
}

// Is reports whether value matches pattern, where "*" matches any run of
// characters (other than newlines).
//
//	Is("library/*", "library/arr") → true
func Is(pattern, value string) bool {
	if pattern == value {
		return true
	}
	expr := strings.ReplaceAll(regexp.QuoteMeta(pattern), `\*`, ".*")
	ok, err := regexp.MatchString(`^`+expr+`\z`, value)
	return err == nil && ok
}

// Index returns the character position of the first needle in s at or after
// the character offset, or -1.
func Index(s, needle string, offset ...int) int {
	r := []rune(s)
	start := 0
	if len(offset) > 0 {
		start = offset[0]
		if start < 0 {
			start = max(len(r)+start, 0)
		}
	}
	if start > len(r) {
		return -1
	}
	tail := string(r[start:])
	i := strings.Index(tail, needle)
	if i < 0 {
		return -1
	}
	return start + utf8.RuneCountInString(tail[:i])
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing & rewriting
// ─────────────────────────────────────────────────────────────────────────────

// Substr returns the characters of s starting at offset. A negative offset
// counts from the end. The optional length limits the result; a negative
// length leaves that many characters off the end.
func Substr(s string, offset int, length ...int) string {
	r := []rune(s)
	n := len(r)
	if offset < 0 {
		offset = max(n+offset, 0)
	}
	if offset > n {
		return ""
	}
	end := n
	if len(length) > 0 {
		if l := length[0]; l < 0 {
			end = n + l
		} else {
			end = offset + l
		}
	}
	end = min(max(end, offset), n)
	return string(r[offset:end])
}

// Reverse returns s with its characters in reverse order.
func Reverse(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}

// Increment appends sep+start to s, or bumps an existing numeric suffix.
//
//	Increment("file", 1, "_")     → "file_1"
//	Increment("file_9", 1, "_")   → "file_10"
func Increment(s string, start int, sep string) string {
	re := regexp.MustCompile(`^(.+)` + regexp.QuoteMeta(sep) + `([0-9]+)$`)
	m := re.FindStringSubmatch(s)
	if m == nil {
		return s + sep + big.NewInt(int64(start)).String()
	}
	n, _ := new(big.Int).SetString(m[2], 10)
	return m[1] + sep + n.Add(n, big.NewInt(1)).String()
}
