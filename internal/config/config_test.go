package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// resetOptions restores the package defaults between tests, since Parse
// mutates shared state.
func resetOptions() {
	options = &Options{
		VaultPath: "gadgets.vault",
		LogLevel:  "info",
		Config:    "config.json",
	}
}

// chtemp moves the test into an empty directory so stray config.json or
// .env files cannot leak in.
func chtemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	cwd, _ := os.Getwd()
	t.Cleanup(func() { _ = os.Chdir(cwd) })
	require.NoError(t, os.Chdir(dir))
	return dir
}

func TestParse_Defaults(t *testing.T) {
	chtemp(t)
	resetOptions()

	got := Parse()
	require.Equal(t, "gadgets.vault", got.VaultPath)
	require.Equal(t, "info", got.LogLevel)
}

func TestParse_EnvOverrides(t *testing.T) {
	chtemp(t)
	resetOptions()
	t.Setenv("GADGETKEEPER_VAULT", "/tmp/other.vault")
	t.Setenv("GADGETKEEPER_LOG_LEVEL", "debug")

	got := Parse()
	require.Equal(t, "/tmp/other.vault", got.VaultPath)
	require.Equal(t, "debug", got.LogLevel)
}

func TestParse_ConfigFile(t *testing.T) {
	dir := chtemp(t)
	resetOptions()

	body := `{"VaultPath": "from-file.vault", "LogLevel": "warn"}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte(body), 0644))

	got := Parse()
	require.Equal(t, "from-file.vault", got.VaultPath)
	require.Equal(t, "warn", got.LogLevel)
}

func TestParse_EnvBeatsFile(t *testing.T) {
	dir := chtemp(t)
	resetOptions()

	body := `{"VaultPath": "from-file.vault"}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte(body), 0644))
	t.Setenv("GADGETKEEPER_VAULT", "from-env.vault")

	got := Parse()
	require.Equal(t, "from-env.vault", got.VaultPath)
}

func TestParse_ConfigPathFromEnv(t *testing.T) {
	dir := chtemp(t)
	resetOptions()

	alt := filepath.Join(dir, "alt.json")
	require.NoError(t, os.WriteFile(alt, []byte(`{"LogLevel": "error"}`), 0644))
	t.Setenv("GADGETKEEPER_CONFIG", alt)

	got := Parse()
	require.Equal(t, "error", got.LogLevel)
}

func TestParse_DotEnv(t *testing.T) {
	dir := chtemp(t)
	resetOptions()

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("GADGETKEEPER_VAULT=dotenv.vault\n"), 0644))
	// godotenv sets real process env; undo it so later runs start clean
	t.Cleanup(func() { _ = os.Unsetenv("GADGETKEEPER_VAULT") })

	got := Parse()
	require.Equal(t, "dotenv.vault", got.VaultPath)
}
