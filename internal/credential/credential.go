// Package credential resolves the HuggingFace API token from the process
// environment, optionally seeded from a local dotfile.
package credential

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
)

// EnvVar is the environment variable holding the bearer token.
const EnvVar = "HF_TOKEN"

// ErrMissing means no token could be resolved. The token is read once at
// startup and is never logged or persisted.
var ErrMissing = errors.Newf("%s is not set: export it, or add it to a .env file in the working directory", EnvVar)

// Resolve loads a .env file from the working directory when present, then
// reads the token from the environment. Variables already set in the process
// environment always win over the file.
func Resolve() (string, error) {
	return ResolveFrom(".")
}

// ResolveFrom behaves like Resolve but looks for the dotfile in dir.
func ResolveFrom(dir string) (string, error) {
	// godotenv.Load never overwrites variables that are already set.
	_ = godotenv.Load(filepath.Join(dir, ".env"))

	token := os.Getenv(EnvVar)
	if token == "" {
		return "", ErrMissing
	}

	return token, nil
}
