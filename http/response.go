// Package http parses raw HTTP/1.1 responses into a status line,
// headers and a body.
package http

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

const defaultStatusCode = 404

var (
	// ErrNoStatusLine is returned when the response has no line break.
	ErrNoStatusLine = errors.New("invalid http response")
	// ErrMalformedStatusLine is returned when the status line does not
	// hold a version, a status code and a reason.
	ErrMalformedStatusLine = errors.New("malformed status line")
	// ErrMalformedHeader is returned for a header line without a colon.
	ErrMalformedHeader = errors.New("malformed header")
	// ErrHeaderNotFound is returned by HeaderValue.
	ErrHeaderNotFound = errors.New("header not found")
)

// Header is a single response header.
type Header struct {
	name  string
	value string
}

// NewHeader creates a header.
func NewHeader(name, value string) Header {
	return Header{name: name, value: value}
}

func (h Header) Name() string {
	return h.name
}

func (h Header) Value() string {
	return h.value
}

// Response is a parsed HTTP response.
type Response struct {
	version    string
	statusCode int
	reason     string
	headers    []Header
	body       string
}

// ParseResponse parses a raw response. Line endings are normalized to
// "\n" first. A status code that is not a number is reported as 404.
func ParseResponse(raw string) (*Response, error) {
	preprocessed := strings.ReplaceAll(strings.TrimLeftFunc(raw, unicode.IsSpace), "\r\n", "\n")

	statusLine, remaining, ok := strings.Cut(preprocessed, "\n")
	if !ok {
		return nil, errors.Wrapf(ErrNoStatusLine, "%q", preprocessed)
	}

	statuses := strings.SplitN(statusLine, " ", 3)
	if len(statuses) < 3 {
		return nil, errors.Wrapf(ErrMalformedStatusLine, "%q", statusLine)
	}
	statusCode, err := strconv.Atoi(statuses[1])
	if err != nil {
		statusCode = defaultStatusCode
	}

	res := &Response{
		version:    statuses[0],
		statusCode: statusCode,
		reason:     statuses[2],
		headers:    []Header{},
	}

	var headerBlock string
	if strings.HasPrefix(remaining, "\n") {
		res.body = remaining[1:]
	} else if block, body, found := strings.Cut(remaining, "\n\n"); found {
		headerBlock, res.body = block, body
	} else {
		res.body = remaining
	}

	if headerBlock == "" {
		return res, nil
	}
	for _, line := range strings.Split(headerBlock, "\n") {
		name, value, ok := strings.Cut(line, ":")
		if !ok {
			return nil, errors.Wrapf(ErrMalformedHeader, "%q", line)
		}
		res.headers = append(res.headers, NewHeader(strings.TrimSpace(name), strings.TrimSpace(value)))
	}

	return res, nil
}

func (r *Response) Version() string {
	return r.version
}

func (r *Response) StatusCode() int {
	return r.statusCode
}

func (r *Response) Reason() string {
	return r.reason
}

// Headers returns a copy of the headers in the order they were sent.
func (r *Response) Headers() []Header {
	return append([]Header(nil), r.headers...)
}

func (r *Response) Body() string {
	return r.body
}

// HeaderValue returns the value of the first header called name. The
// name is matched case-sensitively.
func (r *Response) HeaderValue(name string) (string, error) {
	for _, h := range r.headers {
		if h.name == name {
			return h.value, nil
		}
	}
	return "", errors.Wrapf(ErrHeaderNotFound, "failed to find %s in headers", name)
}
