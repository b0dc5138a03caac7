package model

// ClientCookie is one authentication cookie forwarded to the backend.
// Only non-HttpOnly cookies can ever be collected client-side, so HTTPOnly
// is always false on extracted records.
type ClientCookie struct {
	Domain         string  `json:"domain"`
	Name           string  `json:"name"`
	Value          string  `json:"value"`
	Path           string  `json:"path"`
	Secure         bool    `json:"secure"`
	HTTPOnly       bool    `json:"httpOnly"`
	ExpirationDate float64 `json:"expirationDate,omitempty"` // unix seconds
}

// CookieStatus is the backend's view of available authentication material
type CookieStatus struct {
	BrowserCookiesAvailable bool   `json:"browser_cookies_available"`
	ClientCookiesSupported  bool   `json:"client_cookies_supported"`
	CookieFilePath          string `json:"cookie_file_path,omitempty"`
	Message                 string `json:"message"`
}

// BrowserStatus reports whether the backend can read a local browser profile
type BrowserStatus struct {
	Browser     string `json:"browser"`
	IsAvailable bool   `json:"is_available"`
	Message     string `json:"message"`
}
