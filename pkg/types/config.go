package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "paper-notes/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// FetchConfig holds settings for the metadata and citation fetch stages.
type FetchConfig struct {
	HTTPConfig `yaml:",inline"`

	// SemanticScholarAPIKey is an optional API key for higher rate limits
	// on the citation endpoint.
	SemanticScholarAPIKey string `json:"semantic_scholar_api_key,omitempty" yaml:"semantic_scholar_api_key,omitempty"`
}

// VaultConfig holds settings for the note vault.
type VaultConfig struct {
	// Dir is the vault root directory.
	Dir string `json:"dir" yaml:"dir"`

	// NotesDir is the vault-relative directory for generated notes
	// (default "papers").
	NotesDir string `json:"notes_dir" yaml:"notes_dir"`
}

// Config groups all stage configurations.
type Config struct {
	Fetch FetchConfig `json:"fetch" yaml:"fetch"`
	Vault VaultConfig `json:"vault" yaml:"vault"`
}
