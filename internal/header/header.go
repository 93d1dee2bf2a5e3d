package header

const (
	AcceptEncoding  = "Accept-Encoding"
	ContentEncoding = "Content-Encoding"
	ContentLength   = "Content-Length"
	ContentType     = "Content-Type"

	// Content-coding tokens, per the IANA HTTP Content Coding registry.
	TokenBrotli   = "br"
	TokenGzip     = "gzip"
	TokenDeflate  = "deflate"
	TokenWildcard = "*"
)
