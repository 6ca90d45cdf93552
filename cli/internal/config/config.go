package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// AppFs is the filesystem used for config, .env and schema lookups.
var AppFs = afero.NewOsFs()

// ErrSchemaNotFound is returned when no schema file exists at any candidate path.
var ErrSchemaNotFound = errors.New("schema file not found")

// FileName is the config file name, without extension.
const FileName = ".pslcheck"

// EnvPrefix prefixes the environment variables overriding config keys.
const EnvPrefix = "PSLCHECK"

// Output formats.
const (
	FormatPretty = "pretty"
	FormatJSON   = "json"
	FormatShort  = "short"
)

// Config holds the application configuration
type Config struct {
	SchemaPath      string   `mapstructure:"schema_path"`
	Provider        string   `mapstructure:"provider"`
	PreviewFeatures []string `mapstructure:"preview_features"`
	Jobs            int      `mapstructure:"jobs"`
	Format          string   `mapstructure:"format"`
	Probe           bool     `mapstructure:"probe"`
	Debug           bool     `mapstructure:"debug"`
	NoColor         bool     `mapstructure:"no_color"`
}

// schemaCandidates are tried in order when no schema path is configured.
var schemaCandidates = []string{"schema.prisma", filepath.Join("prisma", "schema.prisma")}

// New returns a viper instance with pslcheck's search paths, env binding and
// defaults. configFile, when set, is used instead of the search paths.
func New(configFile string) (*viper.Viper, error) {
	v := viper.New()
	v.SetFs(AppFs)

	if configFile == "" {
		found, err := findConfigFile()
		if err != nil {
			return nil, err
		}
		configFile = found
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	v.SetDefault("schema_path", "")
	v.SetDefault("provider", "")
	v.SetDefault("preview_features", []string{})
	v.SetDefault("jobs", 0)
	v.SetDefault("format", FormatPretty)
	v.SetDefault("probe", false)
	v.SetDefault("debug", false)
	v.SetDefault("no_color", false)

	if configFile == "" {
		return v, nil
	}
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return v, nil
}

// findConfigFile returns the first .pslcheck.yaml in the working directory,
// $HOME or $HOME/.config/pslcheck, or "" when there is none. The lookup
// goes through AppFs with relative paths kept relative.
func findConfigFile() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("failed to find home directory: %w", err)
	}
	name := FileName + ".yaml"
	for _, dir := range []string{".", home, filepath.Join(home, ".config", "pslcheck")} {
		path := filepath.Join(dir, name)
		info, err := AppFs.Stat(path)
		if err == nil && !info.IsDir() {
			return path, nil
		}
	}
	return "", nil
}

// Load decodes the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	switch cfg.Format {
	case FormatPretty, FormatJSON, FormatShort:
	default:
		return nil, fmt.Errorf("unknown output format %q (expected pretty, json or short)", cfg.Format)
	}
	return &cfg, nil
}

// LoadEnv loads .env and then .env.local, which wins, from dir into the
// process environment so env("...") datasource urls resolve.
func LoadEnv(dir string) error {
	for _, name := range []string{".env", ".env.local"} {
		path := filepath.Join(dir, name)
		f, err := AppFs.Open(path)
		if err != nil {
			continue
		}
		values, err := godotenv.Parse(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}
		for key, value := range values {
			if _, set := os.LookupEnv(key); set && name == ".env" {
				// real environment beats .env
				continue
			}
			os.Setenv(key, value)
		}
	}
	return nil
}

// ResolveSchemaPath returns the schema to check: the explicit path if given,
// else the configured one, else the first default candidate that exists.
func ResolveSchemaPath(explicit string, cfg *Config) (string, error) {
	candidates := schemaCandidates
	switch {
	case explicit != "":
		candidates = []string{explicit}
	case cfg != nil && cfg.SchemaPath != "":
		candidates = []string{cfg.SchemaPath}
	}
	for _, path := range candidates {
		if _, err := AppFs.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: tried %v", ErrSchemaNotFound, candidates)
}

// ReadFile reads a file through AppFs.
func ReadFile(path string) (string, error) {
	data, err := afero.ReadFile(AppFs, path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

// SaveConfig writes cfg to path as YAML.
func SaveConfig(cfg *Config, path string) error {
	v := viper.New()
	v.SetFs(AppFs)
	v.Set("schema_path", cfg.SchemaPath)
	v.Set("provider", cfg.Provider)
	v.Set("preview_features", cfg.PreviewFeatures)
	v.Set("jobs", cfg.Jobs)
	v.Set("format", cfg.Format)
	v.Set("probe", cfg.Probe)

	if dir := filepath.Dir(path); dir != "." {
		if err := AppFs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
