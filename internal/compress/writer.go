package compress

import "io"

// Writer is an encoder adapter over a downstream writer: bytes written
// in come out encoded on the wrapped writer. Close flushes any buffered
// residue and writes the stream trailer exactly once.
type Writer interface {
	io.WriteCloser
	Flush() error
}

func NewCompressWriter(w io.Writer, contentEncoding string) Writer {
	switch contentEncoding {
	case "gzip":
		return NewGzipWriter(w)
	case "deflate":
		return NewDeflateWriter(w)
	case "br":
		return NewBrotliWriter(w)
	}
	return nil
}
