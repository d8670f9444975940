package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const configTemplate = `# Stocko Configuration

[data]
# JSON data file holding the portfolio, watch list, and archive.
# Empty means stocko_data.json next to the executable.
file = ""
# Keep a SQLite journal of applied orders (backs 'stocko export orders')
journal = true

[quotes]
# Alpha Vantage base URL override (leave empty for the public API)
base_url = ""
# Reuse same-day closes from the journal instead of refetching
cache = true

[ui]
# Enable colored output
color_enabled = true
`

const credentialsTemplate = `# Stocko Credentials
# WARNING: Keep this file secure! Do not commit to version control.
# The key can also be supplied via the ALPHAVANTAGE_API_KEY environment variable.

[alphavantage]
api_key = ""
`

func createTemplateConfig(configDir string) error {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	path := filepath.Join(configDir, "config.toml")
	if err := os.WriteFile(path, []byte(configTemplate), 0644); err != nil {
		return fmt.Errorf("writing config template: %w", err)
	}

	return nil
}

func createTemplateCredentials(configDir string) error {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	path := filepath.Join(configDir, "credentials.toml")
	// Use restricted permissions for credentials file
	if err := os.WriteFile(path, []byte(credentialsTemplate), 0600); err != nil {
		return fmt.Errorf("writing credentials template: %w", err)
	}

	return nil
}
