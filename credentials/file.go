package credentials

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/banky/go-bittrex/constants"
	"github.com/spf13/viper"
)

// MachineConfigDir holds the credentials file shared by every user of
// the machine.
const MachineConfigDir = "/etc/bittrex"

const defaultConfigName = "credentials"

// FileSource reads ApiKey and ApiSecret from a config file under the
// Software.Bittrex section. Any format viper understands (yaml, json,
// toml, ...) may be used.
type FileSource struct {
	file string
	name string
	dirs []string
}

// NewFileSource searches dirs, in order, for a config file called name
// with any supported extension.
func NewFileSource(name string, dirs ...string) *FileSource {
	return &FileSource{name: name, dirs: dirs}
}

// NewFileSourceAt reads exactly the file at path.
func NewFileSourceAt(path string) *FileSource {
	return &FileSource{file: path}
}

// MachineFileSource reads /etc/bittrex/credentials.*.
func MachineFileSource() *FileSource {
	return NewFileSource(defaultConfigName, MachineConfigDir)
}

// UserFileSource reads credentials.* from the bittrex directory under the
// user's config directory. If no config directory can be determined the
// source is always empty.
func UserFileSource() *FileSource {
	dir, err := os.UserConfigDir()
	if err != nil {
		return NewFileSource(defaultConfigName)
	}
	return NewFileSource(defaultConfigName, filepath.Join(dir, "bittrex"))
}

// Lookup reads the file fresh on every call.
func (s *FileSource) Lookup() (Pair, error) {
	v := viper.New()
	if s.file != "" {
		v.SetConfigFile(s.file)
	} else {
		v.SetConfigName(s.name)
		for _, dir := range s.dirs {
			v.AddConfigPath(dir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return Pair{}, nil
		}
		return Pair{}, fmt.Errorf("failed to read credentials file: %w", err)
	}

	return Pair{
		APIKey:    v.GetString(configKey(constants.API_KEY_NAME)),
		APISecret: v.GetString(configKey(constants.API_SECRET_NAME)),
	}, nil
}
