package str

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Character pools for [Random].
const (
	Digits       = "0123456789"
	LowerLetters = "abcdefghijklmnopqrstuvwxyz"
	UpperLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Alnum        = Digits + LowerLetters + UpperLetters
	HexDigits    = "0123456789abcdef"
)

// DefaultRandomLength is a sensible length for tokens built with [Random].
const DefaultRandomLength = 32

// Random returns length characters drawn uniformly from pool using
// crypto/rand. An empty pool means [Alnum]. Multi-byte characters in pool
// are drawn as whole characters.
func Random(pool string, length int) (string, error) {
	if length <= 0 {
		return "", nil
	}
	if pool == "" {
		pool = Alnum
	}
	chars := []rune(pool)
	size := big.NewInt(int64(len(chars)))

	out := make([]rune, length)
	for i := range out {
		n, err := rand.Int(rand.Reader, size)
		if err != nil {
			return "", fmt.Errorf("str: reading random source: %w", err)
		}
		out[i] = chars[n.Int64()]
	}
	return string(out), nil
}

// RandomBytes returns n cryptographically secure random bytes.
func RandomBytes(n int) ([]byte, error) {
	if n < 0 {
		n = 0
	}
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, fmt.Errorf("str: reading random source: %w", err)
	}
	return b, nil
}

// Alternator cycles through a fixed list of strings, e.g. for striped table
// rows. It is not safe for concurrent use.
type Alternator struct {
	items []string
	next  int
}

// NewAlternator creates an Alternator over items.
//
//	a := str.NewAlternator("odd", "even")
//	a.Next() // "odd"
//	a.Next() // "even"
//	a.Next() // "odd"
func NewAlternator(items ...string) *Alternator {
	return &Alternator{items: append([]string(nil), items...)}
}

// Next returns the next item, wrapping around. It returns "" when the
// Alternator is empty.
func (a *Alternator) Next() string {
	if len(a.items) == 0 {
		return ""
	}
	item := a.items[a.next%len(a.items)]
	a.next++
	return item
}

// Reset starts the cycle again from the first item.
func (a *Alternator) Reset() { a.next = 0 }
