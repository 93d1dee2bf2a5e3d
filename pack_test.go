package pack

import (
	"bytes"
	"io"
	"net/http"
	"strconv"
	"strings"
	"testing"

	"github.com/go-pack/pack/internal/tests"
)

// staticBody is a comparable BodyWriter, so tests can check whether
// Apply swapped the body out.
type staticBody struct {
	b []byte
}

func (s *staticBody) WriteBody(w io.Writer) error {
	_, err := w.Write(s.b)
	return err
}

func newTestResponse(body, contentEncoding string) *Response {
	h := make(http.Header)
	h.Set("Content-Length", strconv.Itoa(len(body)))
	if contentEncoding != "" {
		h.Set("Content-Encoding", contentEncoding)
	}
	return &Response{StatusCode: http.StatusOK, Header: h, Body: &staticBody{b: []byte(body)}}
}

func acceptHeader(value string) http.Header {
	h := make(http.Header)
	if value != "" {
		h.Set("Accept-Encoding", value)
	}
	return h
}

func tm() *Middleware {
	return New().SetLogger(nil)
}

func TestApplyCompresses(t *testing.T) {
	body := strings.Repeat("a", 1000)
	resp := newTestResponse(body, "")
	tm().Apply(acceptHeader("gzip"), resp)

	tests.AssertEqual(t, "gzip", resp.Header.Get("Content-Encoding"))
	tests.AssertEqual(t, "", resp.Header.Get("Content-Length"))

	var sink bytes.Buffer
	tests.AssertNoError(t, resp.Body.WriteBody(&sink))
	tests.AssertEqual(t, body, string(decodeBody(t, "gzip", sink.Bytes())))
}

func TestApplyPassthrough(t *testing.T) {
	body := strings.Repeat("a", 1000)
	cases := []struct {
		name            string
		acceptEncoding  string
		body            string
		contentEncoding string
	}{
		{"no accept encoding", "", body, ""},
		{"small body", "gzip", "aaaaaaaaaa", ""},
		{"already encoded", "gzip", body, "chunked"},
		{"unsupported coding", "chunked", body, ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			resp := newTestResponse(c.body, c.contentEncoding)
			origBody := resp.Body
			wantHeader := resp.Header.Clone()
			tm().Apply(acceptHeader(c.acceptEncoding), resp)

			tests.AssertEqual(t, wantHeader, resp.Header)
			if resp.Body != origBody {
				t.Error("pass-through response body was replaced")
			}
		})
	}
}

func TestApplyNilBody(t *testing.T) {
	resp := &Response{StatusCode: http.StatusNoContent, Header: make(http.Header)}
	tm().Apply(acceptHeader("gzip"), resp)
	tests.AssertEqual(t, "", resp.Header.Get("Content-Encoding"))
	tm().Apply(acceptHeader("gzip"), nil) // must not panic
}

func TestApplyIsIdempotent(t *testing.T) {
	resp := newTestResponse(strings.Repeat("a", 1000), "")
	m := tm()
	m.Apply(acceptHeader("gzip"), resp)
	wantHeader := resp.Header.Clone()
	wrapped := resp.Body

	m.Apply(acceptHeader("gzip"), resp)
	tests.AssertEqual(t, wantHeader, resp.Header)
	if resp.Body != wrapped {
		t.Error("second Apply wrapped the body again")
	}
}

func TestSetMinLength(t *testing.T) {
	body := strings.Repeat("a", 100)
	resp := newTestResponse(body, "")
	tm().SetMinLength(10).Apply(acceptHeader("gzip"), resp)
	tests.AssertEqual(t, "gzip", resp.Header.Get("Content-Encoding"))
}

func TestSetPriority(t *testing.T) {
	resp := newTestResponse(strings.Repeat("a", 1000), "")
	tm().SetPriority(Deflate, Gzip).Apply(acceptHeader("gzip, deflate"), resp)
	tests.AssertEqual(t, "deflate", resp.Header.Get("Content-Encoding"))
}
