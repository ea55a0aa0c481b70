package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/conduit-lang/fastapi-gen/internal/scaffold"
)

// EnvPrefix prefixes every environment variable override, e.g.
// FASTAPI_GEN_CONTROLLER_AUTH=user
const EnvPrefix = "FASTAPI_GEN"

// Config represents the generator configuration
type Config struct {
	OutputDir  string           `mapstructure:"output_dir"`
	Controller ControllerConfig `mapstructure:"controller"`
	CRUD       CRUDConfig       `mapstructure:"crud"`
}

// ControllerConfig represents the optional parts of generated controllers
type ControllerConfig struct {
	Auth          string `mapstructure:"auth"`
	ConflictCheck bool   `mapstructure:"conflict_check"`
	NaturalKey    string `mapstructure:"natural_key"`
	Import        bool   `mapstructure:"import"`
	Export        bool   `mapstructure:"export"`
	PerPage       int    `mapstructure:"per_page"`
}

// CRUDConfig represents the optional parts of generated CRUD classes
type CRUDConfig struct {
	BulkUpload bool `mapstructure:"bulk_upload"`
}

// flagKeys maps command-line flags onto configuration keys
var flagKeys = map[string]string{
	"out":            "output_dir",
	"auth":           "controller.auth",
	"conflict-check": "controller.conflict_check",
	"natural-key":    "controller.natural_key",
	"with-import":    "controller.import",
	"with-export":    "controller.export",
	"per-page":       "controller.per_page",
	"bulk-upload":    "crud.bulk_upload",
}

// Load loads the configuration. Values are resolved in order of precedence:
// explicitly set flags, FASTAPI_GEN_* environment variables, the config file,
// then defaults. When path is empty fastapi-gen.yaml is looked up in the
// working directory and may be absent; an explicit path must exist.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("output_dir", ".")
	v.SetDefault("controller.auth", string(scaffold.AuthSuperuser))
	v.SetDefault("controller.conflict_check", false)
	v.SetDefault("controller.natural_key", scaffold.DefaultNaturalKey)
	v.SetDefault("controller.import", false)
	v.SetDefault("controller.export", false)
	v.SetDefault("controller.per_page", 20)
	v.SetDefault("crud.bulk_upload", true)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("fastapi-gen")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("failed to bind flag --%s: %w", name, err)
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || path != "" {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found - use defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// ControllerOptions converts the controller section into renderer options
func (c *Config) ControllerOptions() scaffold.ControllerOptions {
	return scaffold.ControllerOptions{
		Auth:          scaffold.AuthMode(c.Controller.Auth),
		ConflictCheck: c.Controller.ConflictCheck,
		NaturalKey:    c.Controller.NaturalKey,
		Import:        c.Controller.Import,
		Export:        c.Controller.Export,
		PerPage:       c.Controller.PerPage,
	}
}

// CRUDOptions converts the crud section into renderer options. The slug is
// derived from the same natural key the controller checks for conflicts.
func (c *Config) CRUDOptions() scaffold.CRUDOptions {
	return scaffold.CRUDOptions{
		BulkUpload: c.CRUD.BulkUpload,
		SlugSource: c.Controller.NaturalKey,
	}
}

// validateConfig validates the configuration
func validateConfig(cfg *Config) error {
	switch scaffold.AuthMode(cfg.Controller.Auth) {
	case scaffold.AuthSuperuser, scaffold.AuthUser:
	default:
		return fmt.Errorf("controller.auth must be %q or %q, got: %s",
			scaffold.AuthSuperuser, scaffold.AuthUser, cfg.Controller.Auth)
	}

	if cfg.Controller.PerPage < 1 || cfg.Controller.PerPage > 100 {
		return fmt.Errorf("controller.per_page must be between 1 and 100, got: %d", cfg.Controller.PerPage)
	}

	if cfg.Controller.Import && !cfg.CRUD.BulkUpload {
		return fmt.Errorf("controller.import requires crud.bulk_upload: the import route schedules the bulk_upload method")
	}

	if cfg.Controller.ConflictCheck && strings.TrimSpace(cfg.Controller.NaturalKey) == "" {
		return fmt.Errorf("controller.natural_key must be set when controller.conflict_check is enabled")
	}

	if strings.TrimSpace(cfg.OutputDir) == "" {
		cfg.OutputDir = "."
	}

	return nil
}
