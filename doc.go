/*
Package pack compresses HTTP response bodies.

It negotiates a content-coding (brotli, gzip or deflate) from the
client's Accept-Encoding header and the server's priority order, then
streams the response body through the chosen encoder so the original
body is never buffered in full.

Plug it into net/http:

	m := pack.New()
	http.ListenAndServe(":3000", m.WrapHandler(mux))

Or drive the post-response hook from a custom pipeline host:

	resp := &pack.Response{Header: respHeader, Body: body}
	m.Apply(req.Header, resp)

A response is compressed only when it is not already encoded, declares
a Content-Length of at least pack.DefaultMinLength bytes, and the
client offers an acceptable encoding with non-zero quality.
*/
package pack
