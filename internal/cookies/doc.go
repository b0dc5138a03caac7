package cookies

// Package cookies implements best-effort extraction of authentication
// cookies for the target media platform. Input is a raw Cookie header string
// or a Netscape cookies.txt export; only cookies on a fixed allow-list are
// kept. HttpOnly cookies are invisible to this layer by design, so what can
// be extracted is inherently partial.
