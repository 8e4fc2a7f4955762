package cmd_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-stdx/cmd/stdx/cmd"
	"github.com/hasbyte1/go-stdx/internal/config"
)

const usersYAML = `users:
  - name: ann
    age: 34
    active: true
  - name: bob
    age: 19
    active: false
server:
  port: 8080
`

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv(config.EnvVar, "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	root := cmd.NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--no-color"}, args...))
	err := root.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

// ─── path ────────────────────────────────────────────────────────────────────

func TestPathGet(t *testing.T) {
	file := writeFile(t, "users.yaml", usersYAML)

	out, err := run(t, "path", "get", file, "server.port")
	require.NoError(t, err)
	assert.Equal(t, "8080\n", out)

	out, err = run(t, "path", "get", file, "users.0.name")
	require.NoError(t, err)
	assert.Equal(t, "ann\n", out)

	out, err = run(t, "path", "get", file, "users.*.name")
	require.NoError(t, err)
	assert.JSONEq(t, `["ann", "bob"]`, out)
}

func TestPathGetDefaultAndStrict(t *testing.T) {
	file := writeFile(t, "users.yaml", usersYAML)

	out, err := run(t, "path", "get", file, "missing", "--default", "42")
	require.NoError(t, err)
	assert.Equal(t, "42\n", out)

	out, err = run(t, "path", "get", file, "missing")
	require.NoError(t, err)
	assert.Equal(t, "null\n", out)

	_, err = run(t, "path", "get", file, "server.missing", "--strict")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestPathGetWhere(t *testing.T) {
	file := writeFile(t, "users.yaml", usersYAML)

	out, err := run(t, "path", "get", file, "users.*", "--where", "value.age > 30")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"name": "ann", "age": 34, "active": true}]`, out)

	out, err = run(t, "path", "get", file, "users.*.name", "--where", "index == 1")
	require.NoError(t, err)
	assert.JSONEq(t, `["bob"]`, out)

	_, err = run(t, "path", "get", file, "users.*", "--where", "value.age >")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "compiling --where")
}

func TestPathGetOutputFormat(t *testing.T) {
	file := writeFile(t, "users.yaml", usersYAML)

	out, err := run(t, "-o", "yaml", "path", "get", file, "server")
	require.NoError(t, err)
	assert.Equal(t, "port: 8080\n", out)

	out, err = run(t, "-o", "toml", "path", "get", file, "users.*.name")
	require.NoError(t, err)
	assert.JSONEq(t, `["ann", "bob"]`, out)

	_, err = run(t, "-o", "xml", "path", "get", file, "server")
	require.Error(t, err)
}

func TestPathSet(t *testing.T) {
	file := writeFile(t, "app.json", `{"name": "stdx"}`)

	out, err := run(t, "path", "set", file, "build.tags", "[a, b]")
	require.NoError(t, err)
	assert.JSONEq(t, `{"name": "stdx", "build": {"tags": ["a", "b"]}}`, out)

	raw, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name": "stdx"}`, string(raw), "file must be untouched without --write")

	_, err = run(t, "path", "set", file, "build.os", "linux", "--write")
	require.NoError(t, err)
	raw, err = os.ReadFile(file)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name": "stdx", "build": {"os": "linux"}}`, string(raw))
}

func TestPathSetGrowsList(t *testing.T) {
	file := writeFile(t, "doc.json", `{"servers": ["a", "b"]}`)

	out, err := run(t, "path", "set", file, "servers.2.host", "x")
	require.NoError(t, err)
	assert.JSONEq(t, `{"servers": ["a", "b", {"host": "x"}]}`, out)

	out, err = run(t, "path", "delete", file, "servers.0")
	require.NoError(t, err)
	assert.JSONEq(t, `{"servers": {"1": "b"}}`, out)
}

func TestPathGetShaping(t *testing.T) {
	file := writeFile(t, "users.yaml", usersYAML)

	out, err := run(t, "path", "get", file, "users.*.age", "--aggregate", "sum")
	require.NoError(t, err)
	assert.Equal(t, "53\n", out)

	out, err = run(t, "path", "get", file, "users.*.age", "--aggregate", "min")
	require.NoError(t, err)
	assert.Equal(t, "19\n", out)

	out, err = run(t, "path", "get", file, "users.*.name", "--sort", "--reverse")
	require.NoError(t, err)
	assert.JSONEq(t, `["bob", "ann"]`, out)

	out, err = run(t, "path", "get", file, "users.*", "--aggregate", "count")
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)

	_, err = run(t, "path", "get", file, "users.*.name", "--aggregate", "sum")
	require.Error(t, err)
}

func TestPathSetTOML(t *testing.T) {
	file := writeFile(t, "app.toml", "title = \"stdx\"\n")

	_, err := run(t, "path", "set", file, "server.port", "9090", "-w")
	require.NoError(t, err)

	out, err := run(t, "path", "get", file, "server.port")
	require.NoError(t, err)
	assert.Equal(t, "9090\n", out)
}

func TestPathHas(t *testing.T) {
	file := writeFile(t, "users.yaml", usersYAML)

	out, err := run(t, "path", "has", file, "server.port", "users.1.name")
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)

	out, err = run(t, "path", "has", file, "server.port", "server.host")
	require.Error(t, err)
	assert.Equal(t, "false\n", out)

	_, err = run(t, "path", "has", "--any", file, "server.port", "server.host")
	require.NoError(t, err)
}

func TestPathDelete(t *testing.T) {
	file := writeFile(t, "app.json", `{"a": {"b": 1, "c": 2}, "d": 3}`)

	out, err := run(t, "path", "delete", file, "a.b", "d")
	require.NoError(t, err)
	assert.JSONEq(t, `{"a": {"c": 2}}`, out)

	_, err = run(t, "path", "delete", file, "d.x")
	require.Error(t, err)
}

func TestPathFlatten(t *testing.T) {
	file := writeFile(t, "app.json", `{"b": {"c": [1, "x"]}, "a": true}`)

	out, err := run(t, "path", "flatten", file)
	require.NoError(t, err)
	assert.Equal(t, "a=true\nb.c.0=1\nb.c.1=x\n", out)

	out, err = run(t, "path", "flatten", file, "--separator", "/")
	require.NoError(t, err)
	assert.Contains(t, out, "b/c/0=1\n")
}

func TestPathFormatOverride(t *testing.T) {
	file := writeFile(t, "app.conf", "name: stdx\n")

	_, err := run(t, "path", "get", file, "name")
	require.Error(t, err)

	out, err := run(t, "--format", "yaml", "path", "get", file, "name")
	require.NoError(t, err)
	assert.Equal(t, "stdx\n", out)
}

// ─── str ─────────────────────────────────────────────────────────────────────

func TestStr(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"str", "snake", "HTTPServerError"}, "http_server_error"},
		{[]string{"str", "camel", "user", "id"}, "userId"},
		{[]string{"str", "title", "hello", "world"}, "Hello World"},
		{[]string{"str", "slug", "Crème", "Brûlée"}, "creme-brulee"},
		{[]string{"str", "slug", "--separator", "_", "Hello World"}, "hello_world"},
		{[]string{"str", "mask", "4111111111111111"}, "************1111"},
		{[]string{"str", "mask", "--visible", "2", "--char", "#", "secret"}, "####et"},
		{[]string{"str", "limit", "--words", "2", "one two three"}, "one two..."},
		{[]string{"str", "limit", "--chars", "3", "--suffix", "!", "abcdef"}, "abc!"},
		{[]string{"str", "plural", "person"}, "people"},
		{[]string{"str", "plural", "--count", "1", "posts"}, "post"},
		{[]string{"str", "hex", "Go"}, "476F"},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args[1:], " "), func(t *testing.T) {
			out, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want+"\n", out)
		})
	}
}

func TestStrLimitRequiresMode(t *testing.T) {
	_, err := run(t, "str", "limit", "text")
	require.Error(t, err)
}

func TestStrRandom(t *testing.T) {
	out, err := run(t, "str", "random", "-n", "12", "--pool", "ab")
	require.NoError(t, err)
	out = strings.TrimSuffix(out, "\n")
	assert.Len(t, out, 12)
	assert.Empty(t, strings.Trim(out, "ab"))
}

func TestStrSlugFromConfig(t *testing.T) {
	cfg := writeFile(t, "config.toml", "[slug]\nseparator = \".\"\n[slug.replacements]\n\"&\" = \"and\"\n")
	out, err := run(t, "--config", cfg, "str", "slug", "Salt & Pepper")
	require.NoError(t, err)
	assert.Equal(t, "salt.and.pepper\n", out)
}

// ─── locale ──────────────────────────────────────────────────────────────────

func TestLocaleList(t *testing.T) {
	out, err := run(t, "locale", "list", "countries")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "AF\tAfghanistan\n"))
	assert.Contains(t, out, "DE\tGermany\n")

	_, err = run(t, "locale", "list", "planets")
	require.Error(t, err)
}

func TestLocaleName(t *testing.T) {
	out, err := run(t, "locale", "name", "de")
	require.NoError(t, err)
	assert.Equal(t, "Germany\n", out)

	out, err = run(t, "locale", "name", "pt_BR")
	require.NoError(t, err)
	assert.Equal(t, "Portuguese (Brazil)\n", out)

	_, err = run(t, "locale", "name", "nowhere")
	require.Error(t, err)
}

func TestLocaleMatch(t *testing.T) {
	out, err := run(t, "locale", "match", "fr-CA,fr;q=0.8")
	require.NoError(t, err)
	assert.Equal(t, "fr-CA\n", out)

	out, err = run(t, "locale", "match", "")
	require.NoError(t, err)
	assert.Equal(t, "en-US\n", out)

	out, err = run(t, "locale", "match", "--fallback", "de-DE", "")
	require.NoError(t, err)
	assert.Equal(t, "de-DE\n", out)
}

func TestLocaleTime(t *testing.T) {
	out, err := run(t, "locale", "time", "--layout", "MST", "Etc/GMT")
	require.NoError(t, err)
	assert.Equal(t, "GMT\n", out)

	_, err = run(t, "locale", "time", "Mars/Base")
	require.Error(t, err)
}

// ─── root ────────────────────────────────────────────────────────────────────

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "stdx v"+cmd.Version)
}

func TestMissingConfig(t *testing.T) {
	_, err := run(t, "--config", filepath.Join(t.TempDir(), "none.toml"), "version")
	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrNotFound))
}
