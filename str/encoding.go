package str

import (
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
)

var (
	serializedCompound     = regexp.MustCompile(`^[aOs]:[0-9]+:`)
	serializedScalar       = regexp.MustCompile(`^[bid]:[0-9.E-]+;`)
	serializedScalarStrict = regexp.MustCompile(`^[bid]:[0-9.E-]+;$`)
)

// IsSerialized reports whether data looks like the output of PHP's
// serialize(). With strict, the value must end exactly where the
// serialized form does.
//
//	IsSerialized(`a:1:{i:0;s:1:"x";}`, true) → true
//	IsSerialized(`i:42;`, true)              → true
//	IsSerialized(`hello`, true)              → false
func IsSerialized(data string, strict bool) bool {
	data = strings.TrimSpace(data)
	if data == "N;" {
		return true
	}
	if len(data) < 4 || data[1] != ':' {
		return false
	}

	if strict {
		if last := data[len(data)-1]; last != ';' && last != '}' {
			return false
		}
	} else {
		semicolon := strings.IndexByte(data, ';')
		brace := strings.IndexByte(data, '}')
		if semicolon == -1 && brace == -1 {
			return false
		}
		if semicolon != -1 && semicolon < 3 {
			return false
		}
		if brace != -1 && brace < 4 {
			return false
		}
	}

	switch data[0] {
	case 's':
		if strict {
			if data[len(data)-2] != '"' {
				return false
			}
		} else if !strings.Contains(data, `"`) {
			return false
		}
		return serializedCompound.MatchString(data)
	case 'a', 'O':
		return serializedCompound.MatchString(data)
	case 'b', 'i', 'd':
		if strict {
			return serializedScalarStrict.MatchString(data)
		}
		return serializedScalar.MatchString(data)
	}
	return false
}

// ToHex encodes s as upper-case hexadecimal.
func ToHex(s string) string {
	return strings.ToUpper(hex.EncodeToString([]byte(s)))
}

// FromHex decodes a hexadecimal string (either case) produced by [ToHex].
func FromHex(s string) (string, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return "", fmt.Errorf("str: decoding hex: %w", err)
	}
	return string(b), nil
}
