package cookies

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/renbkna/yt-dlp-ui/internal/model"
)

// Defaults applied to extracted cookie records
const (
	DefaultDomain = "youtube.com"
	DefaultPath   = "/"
)

// targetDomains are domain fragments that mark a cookie as relevant
var targetDomains = []string{
	"youtube.com",
	"youtu.be",
	"google.com",
}

// importantCookieNames are the known YouTube/Google authentication cookies
var importantCookieNames = []string{
	"LOGIN_INFO",
	"SID",
	"HSID",
	"SSID",
	"APISID",
	"SAPISID",
	"CONSENT",
	"__Secure-1PSID",
	"__Secure-3PSID",
	"__Secure-1PAPISID",
	"__Secure-3PAPISID",
	"YSC",
	"VISITOR_INFO1_LIVE",
}

// registrar uploads a cookie set to the backend
type registrar interface {
	RegisterCookies(ctx context.Context, cookies []model.ClientCookie) (*model.CookieStatus, error)
}

// Extractor filters raw cookie material down to authentication cookies and
// registers the result with the backend
type Extractor struct {
	backend registrar
}

// NewExtractor creates an extractor registering through the given backend
func NewExtractor(backend registrar) *Extractor {
	return &Extractor{backend: backend}
}

// isRelevantName checks the allow-list and target domain fragments
func isRelevantName(name string) bool {
	for _, known := range importantCookieNames {
		if name == known {
			return true
		}
	}
	for _, domain := range targetDomains {
		if strings.Contains(name, domain) {
			return true
		}
	}
	return false
}

// newClientCookie builds a cookie record with the platform defaults.
// HTTPOnly is always false: an HttpOnly cookie could never have been read.
func newClientCookie(name, value string) model.ClientCookie {
	return model.ClientCookie{
		Domain:   DefaultDomain,
		Name:     name,
		Value:    value,
		Path:     DefaultPath,
		Secure:   true,
		HTTPOnly: false,
	}
}

// ParseCookieHeader parses a raw "name=value; name2=value2" cookie string
// and keeps only authentication-relevant cookies
func ParseCookieHeader(raw string) []model.ClientCookie {
	var out []model.ClientCookie

	for _, pair := range strings.Split(raw, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}

		name, value, found := strings.Cut(pair, "=")
		name = strings.TrimSpace(name)
		if !found || name == "" || value == "" {
			continue
		}
		if !isRelevantName(name) {
			continue
		}

		out = append(out, newClientCookie(name, value))
	}

	return out
}

// ParseNetscapeFile parses a cookies.txt export (the format written by
// browser extensions and yt-dlp itself) and keeps only relevant cookies.
// Lines are: domain, include-subdomains, path, secure, expiry, name, value.
func ParseNetscapeFile(r io.Reader) ([]model.ClientCookie, error) {
	var out []model.ClientCookie

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) != 7 {
			continue
		}

		domain := strings.TrimPrefix(fields[0], ".")
		name := fields[5]
		value := fields[6]
		if name == "" || value == "" {
			continue
		}

		relevantDomain := false
		for _, target := range targetDomains {
			if strings.HasSuffix(domain, target) {
				relevantDomain = true
				break
			}
		}
		if !relevantDomain && !isRelevantName(name) {
			continue
		}

		cookie := newClientCookie(name, value)
		if expiry, err := strconv.ParseFloat(fields[4], 64); err == nil && expiry > 0 {
			cookie.ExpirationDate = expiry
		}
		out = append(out, cookie)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read cookie file: %v", err)
	}
	return out, nil
}

// Register uploads the extracted set to the backend. Registration failure is
// non-fatal: downloads proceed with whatever authentication material is
// available, so the error is returned for display as a soft warning only.
func (e *Extractor) Register(ctx context.Context, extracted []model.ClientCookie) (*model.CookieStatus, error) {
	if len(extracted) == 0 {
		return nil, fmt.Errorf("no authentication cookies found")
	}

	status, err := e.backend.RegisterCookies(ctx, extracted)
	if err != nil {
		log.Printf("cookie registration failed (continuing without): %v", err)
		return nil, fmt.Errorf("failed to register cookies with the server: %v", err)
	}
	return status, nil
}
