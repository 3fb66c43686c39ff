package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("APP_ENV", "")
	t.Setenv("CONFIG_DIR", "")
	t.Setenv("DB_PATH", "")
	t.Setenv("RENDER_SCALE", "")
	chdir(t, t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.True(t, cfg.IsLocal())
	assert.Equal(t, 10, cfg.RenderScale)
	assert.Equal(t, filepath.Join(home, ".codekeeper"), cfg.ConfigDir)
	assert.Equal(t, filepath.Join(home, ".codekeeper", "barcodes.db"), cfg.DBPath)
}

func TestLoad_Env(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("APP_ENV", "PROD")
	t.Setenv("CONFIG_DIR", dir)
	t.Setenv("DB_PATH", filepath.Join(dir, "custom.db"))
	t.Setenv("RENDER_SCALE", "4")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.True(t, cfg.IsProd())
	assert.False(t, cfg.IsDev())
	assert.Equal(t, 4, cfg.RenderScale)
	assert.Equal(t, filepath.Join(dir, "custom.db"), cfg.DBPath)
}

func TestLoad_DotEnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("RENDER_SCALE=6\nAPP_ENV=dev\n"), 0o600))

	// godotenv не перезаписывает уже заданные переменные
	t.Setenv("APP_ENV", "")
	t.Setenv("RENDER_SCALE", "")
	require.NoError(t, os.Unsetenv("APP_ENV"))
	require.NoError(t, os.Unsetenv("RENDER_SCALE"))
	t.Setenv("CONFIG_DIR", dir)

	cfg, err := Load(envFile)
	require.NoError(t, err)
	assert.True(t, cfg.IsDev())
	assert.Equal(t, 6, cfg.RenderScale)
}

func TestLoad_MissingEnvFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.env"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "ok", cfg: Config{Env: EnvLocal, DBPath: "x.db", RenderScale: 10}},
		{name: "unknown env", cfg: Config{Env: "stage", DBPath: "x.db", RenderScale: 10}, wantErr: true},
		{name: "empty db path", cfg: Config{Env: EnvDev, RenderScale: 10}, wantErr: true},
		{name: "zero scale", cfg: Config{Env: EnvDev, DBPath: "x.db"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestLoad_InvalidScale(t *testing.T) {
	t.Setenv("CONFIG_DIR", t.TempDir())
	t.Setenv("RENDER_SCALE", "-1")

	_, err := Load("")
	assert.Error(t, err)
}

func TestLoad_YAMLFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(file, []byte("app_env: dev\nrender_scale: 3\noutput_dir: /tmp/out\n"), 0o600))

	t.Setenv("APP_ENV", "")
	t.Setenv("RENDER_SCALE", "")
	t.Setenv("OUTPUT_DIR", "")
	t.Setenv("CONFIG_DIR", dir)

	cfg, err := Load(file)
	require.NoError(t, err)
	assert.True(t, cfg.IsDev())
	assert.Equal(t, 3, cfg.RenderScale)
	assert.Equal(t, "/tmp/out", cfg.OutputDir)

	// переменная окружения важнее файла
	t.Setenv("RENDER_SCALE", "7")
	cfg, err = Load(file)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.RenderScale)
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
