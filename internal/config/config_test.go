package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"ENV", "STORE_NAME", "CATALOG_FILE"} {
		// godotenv never overrides a variable that is present, even when empty
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, DefaultStoreName, cfg.StoreName)
	assert.Empty(t, cfg.CatalogFile)
}

func TestLoad_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENV", "PROD")
	t.Setenv("STORE_NAME", "Corner Shop")
	t.Setenv("CATALOG_FILE", "catalog.yaml")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "Corner Shop", cfg.StoreName)
	assert.Equal(t, "catalog.yaml", cfg.CatalogFile)
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "store.env")
	require.NoError(t, os.WriteFile(path, []byte("STORE_NAME=File Shop\nCATALOG_FILE=/tmp/c.yaml\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "File Shop", cfg.StoreName)
	assert.Equal(t, "/tmp/c.yaml", cfg.CatalogFile)
}

func TestLoad_MissingEnvFile(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestLoad_UnknownEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENV", "staging")

	_, err := Load("")
	assert.ErrorContains(t, err, "staging")
}
