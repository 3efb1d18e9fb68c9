//go:build windows

package credentials

import (
	"errors"
	"fmt"
	"strings"

	"github.com/banky/go-bittrex/constants"
	"golang.org/x/sys/windows/registry"
)

// RegistrySource reads ApiKey and ApiSecret string values from a
// Software\Bittrex registry key.
type RegistrySource struct {
	root     registry.Key
	rootName string
	path     string
}

// MachineRegistrySource reads HKEY_LOCAL_MACHINE\Software\Bittrex.
func MachineRegistrySource() *RegistrySource {
	return &RegistrySource{
		root:     registry.LOCAL_MACHINE,
		rootName: "HKLM",
		path:     registryPath(),
	}
}

// UserRegistrySource reads HKEY_CURRENT_USER\Software\Bittrex.
func UserRegistrySource() *RegistrySource {
	return &RegistrySource{
		root:     registry.CURRENT_USER,
		rootName: "HKCU",
		path:     registryPath(),
	}
}

// DefaultSources returns the machine registry key followed by the user one.
func DefaultSources() []Source {
	return []Source{MachineRegistrySource(), UserRegistrySource()}
}

func (s *RegistrySource) Lookup() (Pair, error) {
	k, err := registry.OpenKey(s.root, s.path, registry.QUERY_VALUE)
	if errors.Is(err, registry.ErrNotExist) {
		return Pair{}, nil
	}
	if err != nil {
		return Pair{}, fmt.Errorf("failed to open registry key %s\\%s: %w", s.rootName, s.path, err)
	}
	defer k.Close()

	apiKey, err := stringValue(k, constants.API_KEY_NAME)
	if err != nil {
		return Pair{}, fmt.Errorf("failed to read %s\\%s: %w", s.rootName, s.path, err)
	}
	apiSecret, err := stringValue(k, constants.API_SECRET_NAME)
	if err != nil {
		return Pair{}, fmt.Errorf("failed to read %s\\%s: %w", s.rootName, s.path, err)
	}

	return Pair{APIKey: apiKey, APISecret: apiSecret}, nil
}

// stringValue treats a missing or non-string value as empty.
func stringValue(k registry.Key, name string) (string, error) {
	v, _, err := k.GetStringValue(name)
	if errors.Is(err, registry.ErrNotExist) || errors.Is(err, registry.ErrUnexpectedType) {
		return "", nil
	}
	return v, err
}

func registryPath() string {
	return strings.ReplaceAll(constants.CREDENTIALS_PATH, "/", `\`)
}
