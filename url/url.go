// Package url splits http:// URLs into the parts the browser needs to
// open a connection and request a document.
package url

import (
	"strings"

	"github.com/pkg/errors"
)

const (
	httpScheme  = "http://"
	defaultPort = "80"
)

// ErrUnsupportedScheme is returned for any URL that is not http://.
var ErrUnsupportedScheme = errors.New("Only HTTP scheme is supported.")

// URL is a parsed http:// URL.
type URL struct {
	url        string
	host       string
	port       string
	path       string
	searchpart string
}

// Parse splits raw into host, port, path and search part. The port
// defaults to 80, the path and search part to the empty string.
func Parse(raw string) (*URL, error) {
	if !strings.HasPrefix(raw, httpScheme) {
		return nil, ErrUnsupportedScheme
	}

	u := &URL{url: raw, port: defaultPort}
	hostPort, rest, hasPath := strings.Cut(strings.TrimPrefix(raw, httpScheme), "/")
	if host, port, ok := strings.Cut(hostPort, ":"); ok {
		u.host, u.port = host, port
	} else {
		u.host = hostPort
	}
	if hasPath {
		u.path, u.searchpart, _ = strings.Cut(rest, "?")
	}

	return u, nil
}

func (u *URL) Host() string {
	return u.host
}

func (u *URL) Port() string {
	return u.port
}

// Path is the path without its leading slash.
func (u *URL) Path() string {
	return u.path
}

// SearchPart is the query string without the '?'.
func (u *URL) SearchPart() string {
	return u.searchpart
}

// String returns the URL as it was given to Parse.
func (u *URL) String() string {
	return u.url
}
