package configs

import "os"

const (
	// EnvOutputFormat is the environment variable for global output format
	EnvOutputFormat = "TRADEPOST_OUTPUT_FORMAT"
)

// GetGlobalOutputFormat resolves the global output format name from:
// 1. Environment variable TRADEPOST_OUTPUT_FORMAT (highest priority)
// 2. Config file OutputFormat setting
// 3. Default to empty string (caller should use default format)
func (c *Config) GetGlobalOutputFormat() string {
	if envFormat := os.Getenv(EnvOutputFormat); envFormat != "" {
		return envFormat
	}

	if c != nil && c.OutputFormat != "" {
		return c.OutputFormat
	}

	return ""
}
