package pack

import (
	"net/http"

	"github.com/go-pack/pack/internal/compress"
	"github.com/go-pack/pack/internal/header"
)

// WrapHandler returns an http.Handler that applies the middleware to
// every response produced by next. Negotiation runs once, against the
// headers the handler has set by the time it first writes; handlers
// that never declare a Content-Length fall through uncompressed.
func (m *Middleware) WrapHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cw := &compressWriter{rw: w, m: m, reqHeader: r.Header}
		defer cw.close()
		next.ServeHTTP(cw, r)
	})
}

// compressWriter is an http.ResponseWriter that decides on the first
// write whether to insert an encoder between the handler and the
// underlying writer.
type compressWriter struct {
	rw        http.ResponseWriter
	m         *Middleware
	reqHeader http.Header
	cw        compress.Writer // non-nil once an encoder is inserted
	decided   bool
}

func (c *compressWriter) Header() http.Header {
	return c.rw.Header()
}

func (c *compressWriter) WriteHeader(statusCode int) {
	c.decide()
	c.rw.WriteHeader(statusCode)
}

func (c *compressWriter) Write(p []byte) (int, error) {
	c.decide()
	if c.cw != nil {
		return c.cw.Write(p)
	}
	return c.rw.Write(p)
}

// Flush forwards buffered encoder output and flushes the underlying
// writer when it implements http.Flusher.
func (c *compressWriter) Flush() {
	c.decide()
	if c.cw != nil {
		c.cw.Flush()
	}
	if f, ok := c.rw.(http.Flusher); ok {
		f.Flush()
	}
}

// decide runs negotiation exactly once, before the header section is
// committed.
func (c *compressWriter) decide() {
	if c.decided {
		return
	}
	c.decided = true
	enc, ok := c.m.Negotiate(c.reqHeader, c.rw.Header())
	if !ok {
		return
	}
	h := c.rw.Header()
	h.Set(header.ContentEncoding, enc.Token())
	h.Del(header.ContentLength)
	c.cw = enc.newWriter(c.rw)
	c.m.log.Debugf("compressing response body with %s", enc.Token())
}

// close finalizes the encoder after the handler returns. A write error
// latched earlier suppresses the trailer; the truncated stream is the
// expected failure mode since Content-Length is already gone.
func (c *compressWriter) close() {
	if c.cw == nil {
		return
	}
	if err := c.cw.Close(); err != nil {
		c.m.log.Errorf("finalize %s response body: %v", c.rw.Header().Get(header.ContentEncoding), err)
	}
}
