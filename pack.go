package pack

import (
	"net/http"

	"github.com/go-pack/pack/internal/header"
)

// DefaultMinLength is the smallest declared Content-Length worth
// compressing; tiny payloads tend to grow instead of shrink.
const DefaultMinLength = 860

// DefaultPriority is the server-side tie-break order, best compression
// ratio first.
var DefaultPriority = []Encoding{Brotli, Gzip, Deflate}

// Middleware negotiates a content-coding per response and swaps the
// response body for one that streams through the chosen encoder.
// Configure it with the chainable Set* methods before serving; a
// Middleware must not be reconfigured while in use. The zero-cost
// common path is pass-through: any failed eligibility gate leaves the
// response untouched.
type Middleware struct {
	minLength int64
	priority  []Encoding
	log       Logger
}

// New create a Middleware with the default policy: threshold
// DefaultMinLength, priority DefaultPriority.
func New() *Middleware {
	return &Middleware{
		minLength: DefaultMinLength,
		priority:  DefaultPriority,
		log:       createDefaultLogger(),
	}
}

// SetMinLength set the smallest declared Content-Length that will be
// compressed.
func (m *Middleware) SetMinLength(n int64) *Middleware {
	m.minLength = n
	return m
}

// SetPriority set the server-side tie-break order. Encodings left out
// are never selected.
func (m *Middleware) SetPriority(priority ...Encoding) *Middleware {
	m.priority = priority
	return m
}

// SetLogger set the logger for the middleware's error and debug
// output, e.g. zap.SugaredLogger. Pass nil to disable logging.
func (m *Middleware) SetLogger(log Logger) *Middleware {
	if log == nil {
		m.log = &disableLogger{}
		return m
	}
	m.log = log
	return m
}

// Negotiate reports the encoding that would be applied to a response
// carrying the given headers, or ok=false for pass-through. It is pure
// and safe for concurrent use.
func (m *Middleware) Negotiate(reqHeader, respHeader http.Header) (Encoding, bool) {
	return negotiate(reqHeader, respHeader, m.minLength, m.priority)
}

// Apply is the post-response hook. On a successful negotiation it sets
// Content-Encoding, drops Content-Length (the compressed size is not
// known up front) and replaces the body with the encoding wrapper.
// Apply never fails: its worst case is an untouched response. Applying
// twice equals applying once, the second run stops at the
// already-encoded gate.
func (m *Middleware) Apply(reqHeader http.Header, resp *Response) {
	if resp == nil || resp.Body == nil {
		return
	}
	enc, ok := m.Negotiate(reqHeader, resp.Header)
	if !ok {
		return
	}
	resp.Header.Set(header.ContentEncoding, enc.Token())
	resp.Header.Del(header.ContentLength)
	resp.Body = &compressedBody{enc: enc, body: resp.Body}
	m.log.Debugf("compressing response body with %s", enc.Token())
}
