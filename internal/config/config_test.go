package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default("Volt & Zonen")
	cfg.Company.Country = "NL"
	cfg.Import.MaxFileBytes = 2048

	path := filepath.Join(t.TempDir(), FileName)
	err := Save(path, cfg)
	require.NoError(t, err)

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, cfg, got)
}

func TestDefaults(t *testing.T) {
	cfg := Default("My Company")

	assert.Equal(t, "My Company", cfg.Company.Name)
	assert.Equal(t, filepath.Join("data", "electrotech.db"), cfg.Database.Path)
	assert.Equal(t, "import", cfg.Import.Dir)
	assert.Equal(t, filepath.Join("import", "processed"), cfg.Import.ProcessedDir)
	assert.Equal(t, int64(10<<20), cfg.Import.MaxFileBytes)
	assert.Equal(t, "generic", cfg.Import.DefaultFormat)
	assert.Equal(t, filepath.Join("rules", "categorization-rules.yaml"), cfg.Rules.Path)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("company:\n  name: Spark BV\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Spark BV", cfg.Company.Name)
	assert.Equal(t, "generic", cfg.Import.DefaultFormat)
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestYAMLFormat(t *testing.T) {
	cfg := Default("Test Biz")
	path := filepath.Join(t.TempDir(), FileName)
	err := Save(path, cfg)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "name: Test Biz")
	assert.Contains(t, contents, "default_format: generic")
	assert.Contains(t, contents, "max_file_bytes: 10485760")
	assert.NotContains(t, contents, "country")
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvDatabasePath, "/var/lib/electrotech.db")
	t.Setenv(EnvImportDir, "")
	t.Setenv(EnvMaxFileBytes, "512")

	cfg := Default("x")
	require.NoError(t, cfg.ApplyEnv())
	assert.Equal(t, "/var/lib/electrotech.db", cfg.Database.Path)
	assert.Equal(t, "import", cfg.Import.Dir)
	assert.Equal(t, int64(512), cfg.Import.MaxFileBytes)
}

func TestApplyEnv_BadNumber(t *testing.T) {
	t.Setenv(EnvMaxFileBytes, "lots")
	err := Default("x").ApplyEnv()
	assert.ErrorContains(t, err, EnvMaxFileBytes)
}

func TestLoadProject_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Save(filepath.Join(dir, FileName), Default("Spark BV")))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(EnvImportDir+"=inbox\n"), 0o644))
	// godotenv does not override variables that are already set; make sure
	// it starts unset and is cleaned up afterwards.
	t.Setenv(EnvImportDir, "")
	require.NoError(t, os.Unsetenv(EnvImportDir))

	cfg, err := LoadProject(dir)
	require.NoError(t, err)
	assert.Equal(t, "inbox", cfg.Import.Dir)
}

func TestLoadProject_NoDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Save(filepath.Join(dir, FileName), Default("Spark BV")))

	cfg, err := LoadProject(dir)
	require.NoError(t, err)
	assert.Equal(t, "Spark BV", cfg.Company.Name)
}

func TestResolve(t *testing.T) {
	assert.Equal(t, filepath.Join("/srv/proj", "data", "x.db"), Resolve("/srv/proj", filepath.Join("data", "x.db")))
	assert.Equal(t, "/abs/x.db", Resolve("/srv/proj", "/abs/x.db"))
}
