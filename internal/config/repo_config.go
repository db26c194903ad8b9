// Package config provides repository configuration management,
// including reading and writing gitty configuration files.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const configFileName = ".gitty_config"

// RepoConfig represents the repository configuration
type RepoConfig struct {
	DefaultRemote *string `json:"defaultRemote,omitempty"`
	LogLimit      *int    `json:"logLimit,omitempty"`
	Debug         *bool   `json:"debug,omitempty"`
}

// GetRepoConfig reads the repository configuration. A missing config file is
// not an error; defaults apply.
func GetRepoConfig(repoRoot string) (*RepoConfig, error) {
	configPath := filepath.Join(repoRoot, ".git", configFileName)

	data, err := os.ReadFile(configPath)
	if err != nil {
		return &RepoConfig{}, nil
	}

	var config RepoConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse repo config: %w", err)
	}

	return &config, nil
}

// SetRepoConfig writes the repository configuration
func SetRepoConfig(repoRoot string, config *RepoConfig) error {
	configPath := filepath.Join(repoRoot, ".git", configFileName)

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal repo config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write repo config: %w", err)
	}

	return nil
}

// GetDefaultRemote returns the configured default remote, or "origin"
func GetDefaultRemote(repoRoot string) (string, error) {
	config, err := GetRepoConfig(repoRoot)
	if err != nil {
		return "", err
	}

	if config.DefaultRemote != nil && *config.DefaultRemote != "" {
		return *config.DefaultRemote, nil
	}

	return "origin", nil
}

// GetDebug returns whether debug logging is enabled for the repository
func GetDebug(repoRoot string) (bool, error) {
	config, err := GetRepoConfig(repoRoot)
	if err != nil {
		return false, err
	}

	return config.Debug != nil && *config.Debug, nil
}

// GetLogLimit returns the configured log entry limit, or 0 for unlimited
func GetLogLimit(repoRoot string) (int, error) {
	config, err := GetRepoConfig(repoRoot)
	if err != nil {
		return 0, err
	}

	if config.LogLimit != nil && *config.LogLimit > 0 {
		return *config.LogLimit, nil
	}

	return 0, nil
}
