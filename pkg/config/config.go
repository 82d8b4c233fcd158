/*
Package config manages TOML config for the cselect finder, server and CLI.
*/
package config

import (
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/omar-hanafy/country-selector/internal/utils"
	"github.com/omar-hanafy/country-selector/pkg/scan"
	"github.com/omar-hanafy/country-selector/pkg/search"
	"github.com/omar-hanafy/country-selector/pkg/similarity"
)

// Config holds the entire config structure
type Config struct {
	Finder     FinderConfig     `toml:"finder"`
	Similarity SimilarityConfig `toml:"similarity"`
	Server     ServerConfig     `toml:"server"`
	CLI        CliConfig        `toml:"cli"`
}

// FinderConfig has result and strict-stage options.
type FinderConfig struct {
	MaxResults      int    `toml:"max_results"`
	StrictAlgorithm string `toml:"strict_algorithm"`
}

// SimilarityConfig holds fuzzy metric options.
type SimilarityConfig struct {
	NgramSize     int `toml:"ngram_size"`
	CacheCapacity int `toml:"cache_capacity"`
}

// ServerConfig has IPC server related options.
type ServerConfig struct {
	MaxQueryLen  int `toml:"max_query_len"`
	DefaultLimit int `toml:"default_limit"`
}

// CliConfig holds cli interface options.
type CliConfig struct {
	DefaultLimit int `toml:"default_limit"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Finder: FinderConfig{
			MaxResults:      search.DefaultMaxResults,
			StrictAlgorithm: string(scan.BoyerMoore),
		},
		Similarity: SimilarityConfig{
			NgramSize:     similarity.DefaultNgramSize,
			CacheCapacity: similarity.DefaultCacheCapacity,
		},
		Server: ServerConfig{
			MaxQueryLen:  60,
			DefaultLimit: 10,
		},
		CLI: CliConfig{
			DefaultLimit: 10,
		},
	}
}

// SearchConfig converts the finder and similarity sections into the search
// package's construction options.
func (c *Config) SearchConfig() search.Config {
	return search.Config{
		MaxResults:              c.Finder.MaxResults,
		StrictAlgorithm:         scan.Algorithm(c.Finder.StrictAlgorithm),
		NgramSize:               c.Similarity.NgramSize,
		SimilarityCacheCapacity: c.Similarity.CacheCapacity,
	}
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. Default path under the user config dir
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath, defaultPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if utils.FileExists(customConfigPath) {
			config, err := LoadConfig(customConfigPath)
			if err != nil {
				log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
			} else {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
		} else {
			log.Warnf("Custom config file not found at %s. Trying default path...", customConfigPath)
		}
	}

	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		log.Warnf("Failed to load config from %s: %v. Using built-in defaults...", configPath, err)
		return DefaultConfig(), nil
	}
	return config, nil
}

// LoadConfig loads from a TOML file
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	return config, nil
}

// tryPartialParse salvages whatever sections of a broken TOML file decode
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if finderSection, ok := utils.ExtractSection(tempConfig, "finder"); ok {
		extractFinderConfig(finderSection, &config.Finder)
	}
	if simSection, ok := utils.ExtractSection(tempConfig, "similarity"); ok {
		extractSimilarityConfig(simSection, &config.Similarity)
	}
	if serverSection, ok := utils.ExtractSection(tempConfig, "server"); ok {
		extractServerConfig(serverSection, &config.Server)
	}
	if cliSection, ok := utils.ExtractSection(tempConfig, "cli"); ok {
		extractCliConfig(cliSection, &config.CLI)
	}
	return config, nil
}

func extractFinderConfig(data map[string]any, finder *FinderConfig) {
	if val, ok := utils.ExtractInt64(data, "max_results"); ok {
		finder.MaxResults = val
	}
	if val, ok := utils.ExtractString(data, "strict_algorithm"); ok {
		finder.StrictAlgorithm = val
	}
}

func extractSimilarityConfig(data map[string]any, sim *SimilarityConfig) {
	if val, ok := utils.ExtractInt64(data, "ngram_size"); ok {
		sim.NgramSize = val
	}
	if val, ok := utils.ExtractInt64(data, "cache_capacity"); ok {
		sim.CacheCapacity = val
	}
}

func extractServerConfig(data map[string]any, server *ServerConfig) {
	if val, ok := utils.ExtractInt64(data, "max_query_len"); ok {
		server.MaxQueryLen = val
	}
	if val, ok := utils.ExtractInt64(data, "default_limit"); ok {
		server.DefaultLimit = val
	}
}

func extractCliConfig(data map[string]any, cli *CliConfig) {
	if val, ok := utils.ExtractInt64(data, "default_limit"); ok {
		cli.DefaultLimit = val
	}
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}

// GetActiveConfigPath returns the absolute path of loaded config file
func GetActiveConfigPath(configPath string) string {
	return utils.GetAbsolutePath(configPath)
}
