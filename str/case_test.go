package str_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/hasbyte1/go-stdx/str"
)

func TestWords(t *testing.T) {
	cases := map[string][]string{
		"helloWorld":       {"hello", "World"},
		"HTTPServer_v2 ok": {"HTTP", "Server", "v2", "ok"},
		"user-id":          {"user", "id"},
		"  spaced  out ":   {"spaced", "out"},
		"ÉtéCoucou":        {"Été", "Coucou"},
	}
	for in, want := range cases {
		assert.Equal(t, want, str.Words(in), in)
	}
	assert.Empty(t, str.Words("--__"))
}

func TestCaseConversion(t *testing.T) {
	tests := []struct {
		in                         string
		snake, kebab, camel, studly string
	}{
		{"HTTPServerError", "http_server_error", "http-server-error", "httpServerError", "HttpServerError"},
		{"user_id", "user_id", "user-id", "userId", "UserId"},
		{"hello world", "hello_world", "hello-world", "helloWorld", "HelloWorld"},
		{"", "", "", "", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.snake, str.Snake(tt.in), "Snake(%q)", tt.in)
		assert.Equal(t, tt.kebab, str.Kebab(tt.in), "Kebab(%q)", tt.in)
		assert.Equal(t, tt.camel, str.Camel(tt.in), "Camel(%q)", tt.in)
		assert.Equal(t, tt.studly, str.Studly(tt.in), "Studly(%q)", tt.in)
	}
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Hello World", str.Title("helloWorld"))
	assert.Equal(t, "User Id", str.Title("user_id"))
	assert.Equal(t, "Istanbul Ili", str.Title("istanbul ili", language.English))
}

func TestUpperLowerUcfirst(t *testing.T) {
	assert.Equal(t, "ÄPFEL", str.Upper("äpfel"))
	assert.Equal(t, "äpfel", str.Lower("ÄPFEL"))
	assert.Equal(t, "Äpfel", str.Ucfirst("äpfel"))
	assert.Equal(t, "", str.Ucfirst(""))
}
