package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conduit-lang/fastapi-gen/internal/scaffold"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	oldWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(oldWd) })
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "fastapi-gen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func newFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("out", ".", "")
	flags.String("auth", "superuser", "")
	flags.Bool("conflict-check", false, "")
	flags.String("natural-key", "name", "")
	flags.Bool("with-import", false, "")
	flags.Bool("with-export", false, "")
	flags.Int("per-page", 20, "")
	flags.Bool("bulk-upload", true, "")
	return flags
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, ".", cfg.OutputDir)
	assert.Equal(t, "superuser", cfg.Controller.Auth)
	assert.False(t, cfg.Controller.ConflictCheck)
	assert.Equal(t, "name", cfg.Controller.NaturalKey)
	assert.False(t, cfg.Controller.Import)
	assert.False(t, cfg.Controller.Export)
	assert.Equal(t, 20, cfg.Controller.PerPage)
	assert.True(t, cfg.CRUD.BulkUpload)
}

func TestLoadWithConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	chdir(t, tmpDir)

	writeConfig(t, tmpDir, `
output_dir: app
controller:
  auth: user
  conflict_check: true
  natural_key: title
  export: true
  per_page: 50
crud:
  bulk_upload: false
`)

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, "app", cfg.OutputDir)
	assert.Equal(t, "user", cfg.Controller.Auth)
	assert.True(t, cfg.Controller.ConflictCheck)
	assert.Equal(t, "title", cfg.Controller.NaturalKey)
	assert.True(t, cfg.Controller.Export)
	assert.Equal(t, 50, cfg.Controller.PerPage)
	assert.False(t, cfg.CRUD.BulkUpload)
}

func TestLoadExplicitPath(t *testing.T) {
	chdir(t, t.TempDir())
	path := writeConfig(t, t.TempDir(), "controller:\n  per_page: 10\n")

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Controller.PerPage)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.ErrorContains(t, err, "failed to read config file")
}

func TestLoadEnvironmentOverridesFile(t *testing.T) {
	tmpDir := t.TempDir()
	chdir(t, tmpDir)
	writeConfig(t, tmpDir, "controller:\n  auth: superuser\n")

	t.Setenv("FASTAPI_GEN_CONTROLLER_AUTH", "user")
	t.Setenv("FASTAPI_GEN_OUTPUT_DIR", "backend/app")

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "user", cfg.Controller.Auth)
	assert.Equal(t, "backend/app", cfg.OutputDir)
}

func TestLoadFlagsOverrideEverything(t *testing.T) {
	tmpDir := t.TempDir()
	chdir(t, tmpDir)
	writeConfig(t, tmpDir, "controller:\n  per_page: 50\n  export: false\n")
	t.Setenv("FASTAPI_GEN_CONTROLLER_PER_PAGE", "30")

	flags := newFlags()
	require.NoError(t, flags.Parse([]string{"--per-page=75", "--with-export", "--out=gen"}))

	cfg, err := Load("", flags)
	require.NoError(t, err)
	assert.Equal(t, 75, cfg.Controller.PerPage)
	assert.True(t, cfg.Controller.Export)
	assert.Equal(t, "gen", cfg.OutputDir)
}

func TestLoadUnchangedFlagsDoNotMaskFile(t *testing.T) {
	tmpDir := t.TempDir()
	chdir(t, tmpDir)
	writeConfig(t, tmpDir, "controller:\n  auth: user\n")

	flags := newFlags()
	require.NoError(t, flags.Parse(nil))

	cfg, err := Load("", flags)
	require.NoError(t, err)
	assert.Equal(t, "user", cfg.Controller.Auth)
}

func TestLoadIgnoresFlagsThatAreNotDefined(t *testing.T) {
	chdir(t, t.TempDir())

	flags := pflag.NewFlagSet("partial", pflag.ContinueOnError)
	flags.Bool("with-export", false, "")
	require.NoError(t, flags.Parse([]string{"--with-export"}))

	cfg, err := Load("", flags)
	require.NoError(t, err)
	assert.True(t, cfg.Controller.Export)
	assert.Equal(t, 20, cfg.Controller.PerPage)
}

func TestValidateConfig(t *testing.T) {
	valid := func() Config {
		return Config{
			OutputDir: ".",
			Controller: ControllerConfig{
				Auth:       "superuser",
				NaturalKey: "name",
				PerPage:    20,
			},
			CRUD: CRUDConfig{BulkUpload: true},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"unknown auth", func(c *Config) { c.Controller.Auth = "admin" }, "controller.auth"},
		{"per page zero", func(c *Config) { c.Controller.PerPage = 0 }, "controller.per_page"},
		{"per page too large", func(c *Config) { c.Controller.PerPage = 101 }, "controller.per_page"},
		{"import without bulk upload", func(c *Config) {
			c.Controller.Import = true
			c.CRUD.BulkUpload = false
		}, "controller.import requires crud.bulk_upload"},
		{"conflict check without key", func(c *Config) {
			c.Controller.ConflictCheck = true
			c.Controller.NaturalKey = " "
		}, "controller.natural_key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := validateConfig(&cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestValidateConfigDefaultsEmptyOutputDir(t *testing.T) {
	cfg := Config{
		Controller: ControllerConfig{Auth: "user", PerPage: 5},
	}
	require.NoError(t, validateConfig(&cfg))
	assert.Equal(t, ".", cfg.OutputDir)
}

func TestOptions(t *testing.T) {
	cfg := Config{
		Controller: ControllerConfig{
			Auth:          "user",
			ConflictCheck: true,
			NaturalKey:    "title",
			Import:        true,
			Export:        true,
			PerPage:       40,
		},
		CRUD: CRUDConfig{BulkUpload: true},
	}

	assert.Equal(t, scaffold.ControllerOptions{
		Auth:          scaffold.AuthUser,
		ConflictCheck: true,
		NaturalKey:    "title",
		Import:        true,
		Export:        true,
		PerPage:       40,
	}, cfg.ControllerOptions())

	assert.Equal(t, scaffold.CRUDOptions{BulkUpload: true, SlugSource: "title"}, cfg.CRUDOptions())
}
