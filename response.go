package pack

import (
	"io"
	"net/http"
)

// BodyWriter is a one-shot body producer: WriteBody streams the entire
// body into w. It is consumed by a single serialization pass.
type BodyWriter interface {
	WriteBody(w io.Writer) error
}

// BodyFunc adapts a function to the BodyWriter interface.
type BodyFunc func(w io.Writer) error

func (f BodyFunc) WriteBody(w io.Writer) error {
	return f(w)
}

// BytesBody returns a BodyWriter over an in-memory byte slice.
func BytesBody(b []byte) BodyWriter {
	return BodyFunc(func(w io.Writer) error {
		_, err := w.Write(b)
		return err
	})
}

// Response is the pipeline host's view of an outgoing response:
// mutable headers plus a replaceable body producer.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       BodyWriter
}

// compressedBody decorates a body producer with an encoder: bytes flow
// from the wrapped body through the encoder into the destination sink,
// never buffered whole. It owns the wrapped body and is single-use.
type compressedBody struct {
	enc  Encoding
	body BodyWriter
}

func (cb *compressedBody) WriteBody(w io.Writer) error {
	cw := cb.enc.newWriter(w)
	if err := cb.body.WriteBody(cw); err != nil {
		// Abandon the stream: no flush, no trailer after a failed write.
		return err
	}
	return cw.Close()
}
