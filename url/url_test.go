package url

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		host       string
		port       string
		path       string
		searchpart string
	}{
		{"host", "http://example.com", "example.com", "80", "", ""},
		{"host port", "http://example.com:8888", "example.com", "8888", "", ""},
		{"host port path", "http://example.com:8888/index.html", "example.com", "8888", "index.html", ""},
		{"host path", "http://example.com/index.html", "example.com", "80", "index.html", ""},
		{"host port path searchpart", "http://example.com:8888/index.html?a=123&b=456", "example.com", "8888", "index.html", "a=123&b=456"},
		{"host path searchpart", "http://localhost/a/b?q", "localhost", "80", "a/b", "q"},
		{"trailing slash", "http://example.com/", "example.com", "80", "", ""},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			u, err := Parse(tt.url)
			require.NoError(t, err)
			assert.Equal(t, tt.host, u.Host())
			assert.Equal(t, tt.port, u.Port())
			assert.Equal(t, tt.path, u.Path())
			assert.Equal(t, tt.searchpart, u.SearchPart())
			assert.Equal(t, tt.url, u.String())
		})
	}
}

func TestParseUnsupportedScheme(t *testing.T) {
	for _, raw := range []string{
		"example.com",
		"https://example.com:8888/index.html?a=123&b=456",
		"ftp://example.com",
		"",
	} {
		u, err := Parse(raw)
		assert.Nil(t, u)
		assert.Equal(t, ErrUnsupportedScheme, errors.Cause(err), raw)
		assert.EqualError(t, err, "Only HTTP scheme is supported.")
	}
}
