package credentials

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/banky/go-bittrex/constants"
	"github.com/joho/godotenv"
)

// EnvSource reads BITTREX_API_KEY and BITTREX_API_SECRET from the process
// environment, falling back to the given .env files. The process
// environment is never modified.
type EnvSource struct {
	files []string
}

// NewEnvSource creates an EnvSource. Files that do not exist are ignored.
func NewEnvSource(files ...string) *EnvSource {
	return &EnvSource{files: files}
}

func (s *EnvSource) Lookup() (Pair, error) {
	fileValues := map[string]string{}
	for _, file := range s.files {
		values, err := godotenv.Read(file)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return Pair{}, fmt.Errorf("failed to read env file %s: %w", file, err)
		}
		for k, v := range values {
			// earlier files win, matching godotenv.Load
			if _, ok := fileValues[k]; !ok {
				fileValues[k] = v
			}
		}
	}

	lookup := func(name string) string {
		if v := os.Getenv(name); v != "" {
			return v
		}
		return fileValues[name]
	}

	return Pair{
		APIKey:    lookup(constants.API_KEY_ENV),
		APISecret: lookup(constants.API_SECRET_ENV),
	}, nil
}
