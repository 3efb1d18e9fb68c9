// Package credentials resolves the API key and secret used to sign
// authenticated Bittrex requests from an ordered list of stores.
package credentials

import (
	"errors"
	"strings"

	"github.com/banky/go-bittrex/constants"
)

// ErrCredentialsNotFound is returned when no source supplies both an
// API key and an API secret.
var ErrCredentialsNotFound = errors.New("ApiKey/ApiSecret not specified")

// Pair is an API key and secret. Both must be non-empty to be usable.
type Pair struct {
	APIKey    string
	APISecret string
}

// Valid reports whether both the key and the secret are set.
func (p Pair) Valid() bool {
	return p.APIKey != "" && p.APISecret != ""
}

// Source is a single credential store. A store that does not exist
// returns an empty Pair and a nil error; an error means the store exists
// but could not be read.
type Source interface {
	Lookup() (Pair, error)
}

// SourceFunc adapts a plain function to the Source interface.
type SourceFunc func() (Pair, error)

// Lookup calls f.
func (f SourceFunc) Lookup() (Pair, error) {
	return f()
}

// Resolver tries its sources in order and returns the first complete Pair.
type Resolver struct {
	sources []Source
}

// NewResolver creates a Resolver that consults sources in the given order.
func NewResolver(sources ...Source) *Resolver {
	return &Resolver{sources: sources}
}

// Default returns a Resolver over the machine-scoped store followed by the
// user-scoped store for the current platform.
func Default() *Resolver {
	return NewResolver(DefaultSources()...)
}

// Resolve returns the first valid Pair. Values are never merged across
// sources: a source with only a key or only a secret is skipped entirely.
func (r *Resolver) Resolve() (Pair, error) {
	for _, source := range r.sources {
		pair, err := source.Lookup()
		if err != nil {
			return Pair{}, err
		}
		if pair.Valid() {
			return pair, nil
		}
	}

	return Pair{}, ErrCredentialsNotFound
}

// configKey maps a value name onto the dotted key path used inside
// credential files, e.g. "Software.Bittrex.ApiKey".
func configKey(name string) string {
	return strings.ReplaceAll(constants.CREDENTIALS_PATH, "/", ".") + "." + name
}
