package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnvironmentFromExportedVar(t *testing.T) {
	// No .env file anywhere near the working directory.
	t.Chdir(t.TempDir())
	t.Setenv("VOICEGUARD_API_KEY", "sekrit")

	v := viper.New()
	loadEnvironment(v)

	assert.Equal(t, "sekrit", v.GetString("server.api_key"))
}

func TestLoadEnvironmentFromDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("VOICEGUARD_API_KEY=from-dotenv\n"), 0600))
	t.Chdir(dir)
	// godotenv does not override variables that are already set.
	t.Setenv("VOICEGUARD_API_KEY", "")
	require.NoError(t, os.Unsetenv("VOICEGUARD_API_KEY"))

	v := viper.New()
	loadEnvironment(v)

	assert.Equal(t, "from-dotenv", v.GetString("server.api_key"))
}

func TestLoadEnvironmentNoKey(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("VOICEGUARD_API_KEY", "")
	require.NoError(t, os.Unsetenv("VOICEGUARD_API_KEY"))

	v := viper.New()
	loadEnvironment(v)

	assert.False(t, v.IsSet("server.api_key"))
}
