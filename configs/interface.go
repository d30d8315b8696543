package configs

import "github.com/cockroachdb/errors"

// ErrConfigNotFound is returned by a ConfigSource not carrying a key.
var ErrConfigNotFound = errors.New("config not found")

// ConfigSource defines the interface for configuration sources.
type ConfigSource interface {
	Name() string
	Get(key string) (string, error)
	Set(key, value string) error
}
