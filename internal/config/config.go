package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// FileName is the project config file at the project root.
const FileName = "electrotech.yaml"

// Config represents the top-level electrotech.yaml configuration.
type Config struct {
	Company  CompanyConfig  `yaml:"company"`
	Database DatabaseConfig `yaml:"database"`
	Import   ImportConfig   `yaml:"import"`
	Rules    RulesConfig    `yaml:"rules"`
}

// CompanyConfig identifies the business.
type CompanyConfig struct {
	Name    string `yaml:"name"`
	Country string `yaml:"country,omitempty"`
}

// DatabaseConfig locates the sqlite file, relative to the project root.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// ImportConfig controls the statement inbox.
type ImportConfig struct {
	Dir           string `yaml:"dir"`
	ProcessedDir  string `yaml:"processed_dir"`
	MaxFileBytes  int64  `yaml:"max_file_bytes"`
	DefaultFormat string `yaml:"default_format"`
}

// RulesConfig locates the user categorization rules.
type RulesConfig struct {
	Path string `yaml:"path"`
}

// Environment overrides.
const (
	EnvDatabasePath = "ELECTROTECH_DB_PATH"
	EnvImportDir    = "ELECTROTECH_IMPORT_DIR"
	EnvMaxFileBytes = "ELECTROTECH_MAX_FILE_BYTES"
)

// Load reads an electrotech.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default("")
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// LoadProject reads <root>/.env when present, then <root>/electrotech.yaml,
// then applies environment overrides.
func LoadProject(root string) (*Config, error) {
	if err := godotenv.Load(filepath.Join(root, ".env")); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}
	cfg, err := Load(filepath.Join(root, FileName))
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overlays environment variables on cfg.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv(EnvDatabasePath); v != "" {
		c.Database.Path = v
	}
	if v := os.Getenv(EnvImportDir); v != "" {
		c.Import.Dir = v
	}
	if v := os.Getenv(EnvMaxFileBytes); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", EnvMaxFileBytes, err)
		}
		c.Import.MaxFileBytes = n
	}
	return nil
}

// Resolve returns p joined to root unless it is already absolute.
func Resolve(root, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(root, p)
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project.
func Default(companyName string) *Config {
	return &Config{
		Company: CompanyConfig{
			Name: companyName,
		},
		Database: DatabaseConfig{
			Path: filepath.Join("data", "electrotech.db"),
		},
		Import: ImportConfig{
			Dir:           "import",
			ProcessedDir:  filepath.Join("import", "processed"),
			MaxFileBytes:  10 << 20,
			DefaultFormat: "generic",
		},
		Rules: RulesConfig{
			Path: filepath.Join("rules", "categorization-rules.yaml"),
		},
	}
}
