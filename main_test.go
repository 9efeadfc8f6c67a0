package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heathj/minibrowse/parser"
	"github.com/heathj/minibrowse/url"
)

func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return stdout.String(), err
}

func TestRun(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		out   string
	}{
		{"tokens", "ab", nil, "Char('a')\nChar('b')\nEndOfInput\n"},
		{"html", "<P>x</P>", []string{"--format", "html"}, "<p>x</p>\n"},
		{"script element", "<SCRIPT>a</b></script>", []string{"-f", "html"}, "<script>a</b></script>\n"},
		{"http body", "HTTP/1.1 200 OK\nContent-Type: text/html\n\n<b>x</b>", []string{"--http", "-f", "html"}, "<b>x</b>\n"},
		{"context", "a</script>", []string{"--context", "script", "-f", "html"}, "a</script>\n"},
		{"state", "<b>", []string{"--state", "script-data"}, "Char('<')\nChar('b')\nChar('>')\nEndOfInput\n"},
		{"url", "", []string{"--url", "http://example.com:8888/index.html?a=123&b=456"},
			"host: example.com\nport: 8888\npath: index.html\nsearchpart: a=123&b=456\n"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out, err := runCLI(t, tt.stdin, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.out, out)
		})
	}
}

func TestRunInputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.html")
	require.NoError(t, os.WriteFile(path, []byte("<p id=a>b</p>"), 0o644))

	out, err := runCLI(t, "", "-f", "html", path)
	require.NoError(t, err)
	assert.Equal(t, "<p id=\"a\">b</p>\n", out)

	_, err = runCLI(t, "", filepath.Join(t.TempDir(), "missing.html"))
	assert.Error(t, err)
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
	}{
		{"format", "", []string{"--format", "json"}},
		{"state", "", []string{"--state", "bogus"}},
		{"builder state", "abc", []string{"--state", "tag-name"}},
		{"log level", "", []string{"--log-level", "loud"}},
		{"flag", "", []string{"--nope"}},
		{"http", "HTTP/1.1 200 OK", []string{"--http"}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out, err := runCLI(t, tt.stdin, tt.args...)
			assert.Error(t, err)
			assert.Empty(t, out)
		})
	}

	_, err := runCLI(t, "", "--url", "https://example.com")
	assert.Equal(t, url.ErrUnsupportedScheme, errors.Cause(err))
}

func TestParseState(t *testing.T) {
	tests := []struct {
		name  string
		state parser.TokenizerState
	}{
		{"data", parser.DataState},
		{"script-data", parser.ScriptDataState},
		{"script_data", parser.ScriptDataState},
		{"ScriptDataState", parser.ScriptDataState},
		{"Data", parser.DataState},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			state, err := parseState(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.state, state)
		})
	}

	_, err := parseState("comment")
	assert.EqualError(t, err, `unknown tokenizer state "comment"`)

	for _, name := range []string{"tag-name", "self-closing-start-tag", "temporary-buffer", "script-data-end-tag-name"} {
		_, err := parseState(name)
		assert.Error(t, err, name)
	}
	_, err = parseState("tag-name")
	assert.EqualError(t, err, "tokenizer cannot start in TagNameState")
}
