package compress

import (
	"io"
	"io/fs"

	"github.com/andybalholm/brotli"
)

// Brotli encoder parameters. The sliding window is 2^brotliLGWin bytes.
const (
	brotliQuality = 8
	brotliLGWin   = 20
)

type BrotliWriter struct {
	bw   *brotli.Writer
	werr error // sticky error
}

func NewBrotliWriter(w io.Writer) *BrotliWriter {
	return &BrotliWriter{
		bw: brotli.NewWriterOptions(w, brotli.WriterOptions{
			Quality: brotliQuality,
			LGWin:   brotliLGWin,
		}),
	}
}

func (bw *BrotliWriter) Write(p []byte) (n int, err error) {
	if bw.werr != nil {
		return 0, bw.werr
	}
	n, err = bw.bw.Write(p)
	if err != nil {
		bw.werr = err
	}
	return
}

func (bw *BrotliWriter) Flush() error {
	if bw.werr != nil {
		return bw.werr
	}
	if err := bw.bw.Flush(); err != nil {
		bw.werr = err
		return err
	}
	return nil
}

// Close finalizes the brotli stream. After a write error nothing more
// reaches the downstream writer.
func (bw *BrotliWriter) Close() error {
	if bw.werr != nil {
		return bw.werr
	}
	bw.werr = fs.ErrClosed
	return bw.bw.Close()
}
