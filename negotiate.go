package pack

import (
	"net/http"
	"strconv"

	"github.com/go-pack/pack/internal/header"
)

// negotiate decides whether and how a response should be compressed.
// It is a pure function of the request headers, the response headers
// produced upstream, the minimum compressable length and the
// server-side priority order. ok is false when the response must pass
// through untouched.
func negotiate(reqHeader, respHeader http.Header, minLength int64, priority []Encoding) (enc Encoding, ok bool) {
	// An already-encoded response is never transformed again,
	// whatever its coding.
	if respHeader.Get(header.ContentEncoding) != "" {
		return 0, false
	}

	// The declared size decides eligibility; a response without a
	// Content-Length is not compressed.
	length, err := strconv.ParseInt(respHeader.Get(header.ContentLength), 10, 64)
	if err != nil || length < minLength {
		return 0, false
	}

	accepted := parseAcceptEncoding(reqHeader.Get(header.AcceptEncoding))
	if len(accepted) == 0 {
		return 0, false
	}

	// The client's top preference wins; the priority order only breaks
	// ties among items sharing the maximum quality. Zero-quality items
	// are refusals and never match.
	qmax := 0
	for _, ae := range accepted {
		if ae.quality > qmax {
			qmax = ae.quality
		}
	}
	if qmax == 0 {
		return 0, false
	}
	for _, s := range priority {
		for _, ae := range accepted {
			if ae.quality == qmax && s.accepts(ae.token) {
				return s, true
			}
		}
	}
	return 0, false
}
