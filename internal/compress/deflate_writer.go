package compress

import (
	"io"
	"io/fs"

	"github.com/klauspost/compress/flate"
)

// DeflateWriter produces a raw deflate stream, no zlib wrapper.
type DeflateWriter struct {
	fw   *flate.Writer
	werr error // sticky error
}

func NewDeflateWriter(w io.Writer) *DeflateWriter {
	fw, err := flate.NewWriter(w, flate.DefaultCompression)
	return &DeflateWriter{fw: fw, werr: err}
}

func (df *DeflateWriter) Write(p []byte) (n int, err error) {
	if df.werr != nil {
		return 0, df.werr
	}
	n, err = df.fw.Write(p)
	if err != nil {
		df.werr = err
	}
	return
}

func (df *DeflateWriter) Flush() error {
	if df.werr != nil {
		return df.werr
	}
	if err := df.fw.Flush(); err != nil {
		df.werr = err
		return err
	}
	return nil
}

func (df *DeflateWriter) Close() error {
	if df.werr != nil {
		return df.werr
	}
	df.werr = fs.ErrClosed
	return df.fw.Close()
}
