package utils

import (
	"encoding/hex"
	"net/http"
	"strconv"
	"strings"
)

// UpperHex encodes b as uppercase hexadecimal pairs with no separators
func UpperHex(b []byte) string {
	return strings.ToUpper(hex.EncodeToString(b))
}

// ReasonPhrase extracts the reason phrase from an HTTP status line such as
// "404 Not Found". If the line carries no phrase the standard text for the
// code is used instead.
func ReasonPhrase(status string, code int) string {
	phrase := strings.TrimSpace(status)
	phrase = strings.TrimPrefix(phrase, strconv.Itoa(code))
	phrase = strings.TrimSpace(phrase)

	if phrase == "" {
		return http.StatusText(code)
	}
	return phrase
}
