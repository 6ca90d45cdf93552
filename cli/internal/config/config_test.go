package config

import (
	"errors"
	"os"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useMemFs(t *testing.T) afero.Fs {
	t.Helper()
	prev := AppFs
	fs := afero.NewMemMapFs()
	AppFs = fs
	t.Cleanup(func() { AppFs = prev })
	return fs
}

func TestLoad_ConfigFile(t *testing.T) {
	fs := useMemFs(t)
	require.NoError(t, afero.WriteFile(fs, "/work/.pslcheck.yaml", []byte(`
schema_path: db/schema.prisma
provider: mysql
preview_features:
  - fullTextIndex
jobs: 4
format: json
`), 0o644))

	v, err := New("/work/.pslcheck.yaml")
	require.NoError(t, err)
	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "db/schema.prisma", cfg.SchemaPath)
	assert.Equal(t, "mysql", cfg.Provider)
	assert.Equal(t, []string{"fullTextIndex"}, cfg.PreviewFeatures)
	assert.Equal(t, 4, cfg.Jobs)
	assert.Equal(t, FormatJSON, cfg.Format)
	assert.False(t, cfg.Probe)
}

func TestLoad_SearchPaths(t *testing.T) {
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })
	t.Setenv("HOME", "/home/tester")

	tests := []struct {
		name     string
		files    map[string]string
		provider string
	}{
		{
			name:     "working directory",
			files:    map[string]string{".pslcheck.yaml": "provider: mysql\n"},
			provider: "mysql",
		},
		{
			name: "working directory beats home",
			files: map[string]string{
				".pslcheck.yaml":              "provider: mysql\n",
				"/home/tester/.pslcheck.yaml": "provider: sqlite\n",
			},
			provider: "mysql",
		},
		{
			name:     "home",
			files:    map[string]string{"/home/tester/.pslcheck.yaml": "provider: sqlite\n"},
			provider: "sqlite",
		},
		{
			name:     "xdg style config dir",
			files:    map[string]string{"/home/tester/.config/pslcheck/.pslcheck.yaml": "provider: cockroachdb\n"},
			provider: "cockroachdb",
		},
		{
			name:     "none",
			provider: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := useMemFs(t)
			for name, content := range tt.files {
				require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0o644))
			}

			v, err := New("")
			require.NoError(t, err)
			cfg, err := Load(v)
			require.NoError(t, err)
			assert.Equal(t, tt.provider, cfg.Provider)
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	useMemFs(t)
	t.Setenv("HOME", "/home/nobody")

	v, err := New("")
	require.NoError(t, err)
	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, FormatPretty, cfg.Format)
	assert.Equal(t, 0, cfg.Jobs)
	assert.Empty(t, cfg.SchemaPath)
}

func TestLoad_EnvOverride(t *testing.T) {
	useMemFs(t)
	t.Setenv("HOME", "/home/nobody")
	t.Setenv("PSLCHECK_PROVIDER", "sqlite")

	v, err := New("")
	require.NoError(t, err)
	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Provider)
}

func TestLoad_BadFormat(t *testing.T) {
	fs := useMemFs(t)
	require.NoError(t, afero.WriteFile(fs, "/c.yaml", []byte("format: xml\n"), 0o644))

	v, err := New("/c.yaml")
	require.NoError(t, err)
	_, err = Load(v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"xml"`)
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	useMemFs(t)
	want := &Config{
		SchemaPath:      "prisma/schema.prisma",
		Provider:        "postgresql",
		PreviewFeatures: []string{"extendedIndexes"},
		Jobs:            2,
		Format:          FormatShort,
	}
	require.NoError(t, SaveConfig(want, "/proj/.pslcheck.yaml"))

	v, err := New("/proj/.pslcheck.yaml")
	require.NoError(t, err)
	got, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestResolveSchemaPath(t *testing.T) {
	fs := useMemFs(t)

	_, err := ResolveSchemaPath("", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSchemaNotFound))

	require.NoError(t, afero.WriteFile(fs, "prisma/schema.prisma", []byte("model A {}"), 0o644))
	path, err := ResolveSchemaPath("", nil)
	require.NoError(t, err)
	assert.Equal(t, "prisma/schema.prisma", path)

	require.NoError(t, afero.WriteFile(fs, "other.prisma", []byte(""), 0o644))
	path, err = ResolveSchemaPath("", &Config{SchemaPath: "other.prisma"})
	require.NoError(t, err)
	assert.Equal(t, "other.prisma", path)

	_, err = ResolveSchemaPath("missing.prisma", nil)
	assert.True(t, errors.Is(err, ErrSchemaNotFound))
}

func TestLoadEnv(t *testing.T) {
	fs := useMemFs(t)
	require.NoError(t, afero.WriteFile(fs, "/app/.env", []byte("PSLCHECK_TEST_URL=from-env\nPSLCHECK_TEST_ONLY=env\n"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/app/.env.local", []byte("PSLCHECK_TEST_URL=from-local\n"), 0o644))
	t.Setenv("PSLCHECK_TEST_URL", "")
	t.Setenv("PSLCHECK_TEST_ONLY", "")
	os.Unsetenv("PSLCHECK_TEST_URL")
	os.Unsetenv("PSLCHECK_TEST_ONLY")

	require.NoError(t, LoadEnv("/app"))
	assert.Equal(t, "from-local", os.Getenv("PSLCHECK_TEST_URL"))
	assert.Equal(t, "env", os.Getenv("PSLCHECK_TEST_ONLY"))
}
