package pack

import (
	"io"

	"github.com/go-pack/pack/internal/compress"
	"github.com/go-pack/pack/internal/header"
)

// Encoding identifies a supported content-coding.
type Encoding int

const (
	Brotli Encoding = iota
	Gzip
	Deflate
)

// Token returns the content-coding token the encoding announces in
// Content-Encoding.
func (e Encoding) Token() string {
	switch e {
	case Brotli:
		return header.TokenBrotli
	case Gzip:
		return header.TokenGzip
	case Deflate:
		return header.TokenDeflate
	}
	return ""
}

func (e Encoding) String() string {
	return e.Token()
}

// newWriter wraps w with the encoder for e.
func (e Encoding) newWriter(w io.Writer) compress.Writer {
	return compress.NewCompressWriter(w, e.Token())
}

// accepts reports whether an Accept-Encoding token offers this
// encoding. The wildcard maps to gzip by server policy.
func (e Encoding) accepts(token string) bool {
	switch e {
	case Brotli:
		return token == header.TokenBrotli
	case Deflate:
		return token == header.TokenDeflate
	case Gzip:
		return token == header.TokenGzip || token == header.TokenWildcard
	}
	return false
}
