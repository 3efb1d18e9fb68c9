package rest

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"strings"
	"testing"
)

func TestSignedURL(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		url      string
		key      string
		nonce    int64
		expected string
	}{
		{
			name:     "no query string",
			url:      "https://api.example.com/v1/market",
			key:      "K1",
			nonce:    1700000000000,
			expected: "https://api.example.com/v1/market?apikey=K1&nonce=1700000000000",
		},
		{
			name:     "existing query string",
			url:      "https://bittrex.com/api/v1.1/market/getopenorders?market=BTC-LTC",
			key:      "K1",
			nonce:    1700000000000,
			expected: "https://bittrex.com/api/v1.1/market/getopenorders?market=BTC-LTC&apikey=K1&nonce=1700000000000",
		},
		{
			name:     "existing parameters are not reordered",
			url:      "https://bittrex.com/api/v1.1/account/getorderhistory?z=1&a=2",
			key:      "abc",
			nonce:    42,
			expected: "https://bittrex.com/api/v1.1/account/getorderhistory?z=1&a=2&apikey=abc&nonce=42",
		},
		{
			name:     "key is not escaped",
			url:      "https://api.example.com/v1/market",
			key:      "a+b/c",
			nonce:    1,
			expected: "https://api.example.com/v1/market?apikey=a+b/c&nonce=1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SignedURL(tt.url, tt.key, tt.nonce)
			if err != nil {
				t.Fatalf("SignedURL(%q) unexpected error: %v", tt.url, err)
			}
			if got != tt.expected {
				t.Fatalf("SignedURL(%q) = %q, want %q", tt.url, got, tt.expected)
			}
		})
	}
}

func TestSignedURLInvalid(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		url  string
	}{
		{
			name: "unparseable",
			url:  "http://[::1]:namedport",
		},
		{
			name: "control character",
			url:  "https://api.example.com/\x7f",
		},
		{
			name: "relative",
			url:  "/v1/market",
		},
		{
			name: "empty",
			url:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SignedURL(tt.url, "K1", 1)
			if err == nil {
				t.Fatalf("SignedURL(%q) expected error, got nil", tt.url)
			}

			var urlErr *URLError
			if !errors.As(err, &urlErr) {
				t.Fatalf("expected URLError, got %T", err)
			}
			if urlErr.URL != tt.url {
				t.Errorf("expected URL %q, got %q", tt.url, urlErr.URL)
			}
		})
	}
}

func TestSignScenario(t *testing.T) {
	t.Parallel()
	signedURL := "https://api.example.com/v1/market?apikey=K1&nonce=1700000000000"

	mac := hmac.New(sha512.New, []byte("S1"))
	mac.Write([]byte(signedURL))
	expected := strings.ToUpper(hex.EncodeToString(mac.Sum(nil)))

	got := Sign("S1", signedURL)
	if got != expected {
		t.Fatalf("Sign() = %q, want %q", got, expected)
	}

	if len(got) != 128 {
		t.Errorf("expected 128 hex characters, got %d", len(got))
	}

	if got != strings.ToUpper(got) {
		t.Errorf("expected uppercase hex, got %q", got)
	}
}

func TestSignDeterminism(t *testing.T) {
	t.Parallel()
	base := func(url, secret string, nonce int64) string {
		signed, err := SignedURL(url, "K1", nonce)
		if err != nil {
			t.Fatalf("SignedURL(%q) unexpected error: %v", url, err)
		}
		return Sign(secret, signed)
	}

	reference := base("https://api.example.com/v1/market", "S1", 1700000000000)

	if again := base("https://api.example.com/v1/market", "S1", 1700000000000); again != reference {
		t.Fatalf("expected identical signatures, got %q and %q", reference, again)
	}

	variants := map[string]string{
		"url":    base("https://api.example.com/v1/markets", "S1", 1700000000000),
		"secret": base("https://api.example.com/v1/market", "S2", 1700000000000),
		"nonce":  base("https://api.example.com/v1/market", "S1", 1700000000001),
	}

	for field, sig := range variants {
		if sig == reference {
			t.Errorf("expected signature to change when %s changes", field)
		}
	}
}
