package cookies

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/renbkna/yt-dlp-ui/internal/model"
)

func TestParseCookieHeader(t *testing.T) {
	raw := "SID=abc123; HSID=def456; random_tracker=zzz; __Secure-1PSID=ghi789"

	cookies := ParseCookieHeader(raw)
	if len(cookies) != 3 {
		t.Fatalf("Expected 3 relevant cookies, got %d", len(cookies))
	}

	byName := map[string]model.ClientCookie{}
	for _, c := range cookies {
		byName[c.Name] = c
	}
	if _, ok := byName["random_tracker"]; ok {
		t.Error("Expected unknown cookie to be filtered out")
	}
	if byName["SID"].Value != "abc123" {
		t.Errorf("Expected SID value abc123, got %s", byName["SID"].Value)
	}

	// Extracted records carry the platform defaults
	sid := byName["SID"]
	if sid.Domain != DefaultDomain {
		t.Errorf("Expected domain %s, got %s", DefaultDomain, sid.Domain)
	}
	if sid.Path != DefaultPath {
		t.Errorf("Expected path %s, got %s", DefaultPath, sid.Path)
	}
	if !sid.Secure {
		t.Error("Expected secure default")
	}
	if sid.HTTPOnly {
		t.Error("Expected httpOnly false on extracted cookies")
	}
}

func TestParseCookieHeaderMalformed(t *testing.T) {
	cases := []string{
		"",
		";;;",
		"SID",
		"SID=",
		"=abc",
	}
	for _, raw := range cases {
		if cookies := ParseCookieHeader(raw); len(cookies) != 0 {
			t.Errorf("Expected no cookies from %q, got %d", raw, len(cookies))
		}
	}
}

func TestParseNetscapeFile(t *testing.T) {
	file := strings.Join([]string{
		"# Netscape HTTP Cookie File",
		"# This is a generated file! Do not edit.",
		"",
		".youtube.com\tTRUE\t/\tTRUE\t1756000000\tSID\tabc123",
		".youtube.com\tTRUE\t/\tTRUE\t0\tYSC\tsession",
		".example.com\tTRUE\t/\tFALSE\t1756000000\ttracker\tzzz",
		"malformed line without tabs",
	}, "\n")

	cookies, err := ParseNetscapeFile(strings.NewReader(file))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(cookies) != 2 {
		t.Fatalf("Expected 2 cookies, got %d", len(cookies))
	}

	if cookies[0].Name != "SID" || cookies[0].Value != "abc123" {
		t.Errorf("Expected SID=abc123 first, got %s=%s", cookies[0].Name, cookies[0].Value)
	}
	if cookies[0].ExpirationDate != 1756000000 {
		t.Errorf("Expected expiry carried over, got %v", cookies[0].ExpirationDate)
	}

	// A zero expiry means a session cookie and is left unset
	if cookies[1].Name != "YSC" {
		t.Errorf("Expected YSC second, got %s", cookies[1].Name)
	}
	if cookies[1].ExpirationDate != 0 {
		t.Errorf("Expected no expiry on session cookie, got %v", cookies[1].ExpirationDate)
	}
}

// fakeRegistrar records registration attempts
type fakeRegistrar struct {
	err      error
	received []model.ClientCookie
}

func (f *fakeRegistrar) RegisterCookies(ctx context.Context, cookies []model.ClientCookie) (*model.CookieStatus, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.received = cookies
	return &model.CookieStatus{ClientCookiesSupported: true, Message: "registered"}, nil
}

func TestRegister(t *testing.T) {
	backend := &fakeRegistrar{}
	extractor := NewExtractor(backend)

	cookies := ParseCookieHeader("SID=abc123")
	status, err := extractor.Register(context.Background(), cookies)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !status.ClientCookiesSupported {
		t.Error("Expected backend status passed through")
	}
	if len(backend.received) != 1 {
		t.Errorf("Expected 1 cookie registered, got %d", len(backend.received))
	}
}

func TestRegisterEmptySet(t *testing.T) {
	extractor := NewExtractor(&fakeRegistrar{})
	if _, err := extractor.Register(context.Background(), nil); err == nil {
		t.Error("Expected error for empty cookie set")
	}
}

func TestRegisterBackendFailureIsSoft(t *testing.T) {
	backend := &fakeRegistrar{err: fmt.Errorf("backend down")}
	extractor := NewExtractor(backend)

	cookies := ParseCookieHeader("SID=abc123")
	_, err := extractor.Register(context.Background(), cookies)
	if err == nil {
		t.Fatal("Expected a warning error")
	}
	// The message is a displayable warning, not a transport dump
	if !strings.Contains(err.Error(), "failed to register cookies") {
		t.Errorf("Expected registration warning, got %q", err.Error())
	}
}
