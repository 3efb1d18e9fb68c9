package rest

import (
	"crypto/hmac"
	"crypto/sha512"
	"errors"
	"net/url"
	"strconv"

	"github.com/banky/go-bittrex/constants"
	"github.com/banky/go-bittrex/internal/utils"
)

var errRelativeURL = errors.New("url is not absolute")

// SignedURL appends the apikey and nonce parameters to rawURL. The
// result is built by plain concatenation, never re-encoded, because the
// server signs the exact same string. rawURL must already be in canonical
// form: the transport re-encodes non-canonical paths before sending, and
// the server then signs different bytes than were signed here.
func SignedURL(rawURL string, apiKey string, nonce int64) (string, error) {
	u, err := parseURL(rawURL)
	if err != nil {
		return "", err
	}

	separator := "&"
	if u.RawQuery == "" {
		separator = "?"
	}

	return rawURL +
		separator + constants.API_KEY_PARAM + "=" + apiKey +
		"&" + constants.NONCE_PARAM + "=" + strconv.FormatInt(nonce, 10), nil
}

// Sign returns the uppercase hex HMAC-SHA512 of signedURL keyed by secret
func Sign(secret string, signedURL string) string {
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write([]byte(signedURL))
	return utils.UpperHex(mac.Sum(nil))
}

func parseURL(rawURL string) (*url.URL, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, &URLError{URL: rawURL, Err: err}
	}
	if !u.IsAbs() {
		return nil, &URLError{URL: rawURL, Err: errRelativeURL}
	}
	return u, nil
}
