package compress

import (
	"io"
	"io/fs"

	"github.com/klauspost/compress/gzip"
)

// GzipWriter compresses everything written to it and forwards the
// output to the downstream writer. Default compression parameters,
// standard header flags.
type GzipWriter struct {
	zw   *gzip.Writer
	werr error // sticky error
}

func NewGzipWriter(w io.Writer) *GzipWriter {
	return &GzipWriter{zw: gzip.NewWriter(w)}
}

func (gz *GzipWriter) Write(p []byte) (n int, err error) {
	if gz.werr != nil {
		return 0, gz.werr
	}
	n, err = gz.zw.Write(p)
	if err != nil {
		gz.werr = err
	}
	return
}

func (gz *GzipWriter) Flush() error {
	if gz.werr != nil {
		return gz.werr
	}
	if err := gz.zw.Flush(); err != nil {
		gz.werr = err
		return err
	}
	return nil
}

// Close flushes buffered data and writes the gzip trailer. It finalizes
// exactly once; after a write error no trailer is emitted.
func (gz *GzipWriter) Close() error {
	if gz.werr != nil {
		return gz.werr
	}
	gz.werr = fs.ErrClosed
	return gz.zw.Close()
}
