package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

const (
	defaultEnv         = EnvLocal
	defaultConfigDir   = ".codekeeper"
	defaultDBFile      = "barcodes.db"
	defaultRenderScale = 10
)

type Config struct {
	Env         string `mapstructure:"app_env"`
	LogLevel    string `mapstructure:"log_level"`
	ConfigDir   string `mapstructure:"config_dir"`
	DBPath      string `mapstructure:"db_path"`
	RenderScale int    `mapstructure:"render_scale"`
	OutputDir   string `mapstructure:"output_dir"`
}

// Load читает переменные окружения и файл настроек.
// file - это .env или yaml/json/toml; если пустой, ищем .env в текущей
// и родительской директории. Переменные окружения важнее файла.
func Load(file string) (*Config, error) {
	v := viper.New()

	if isConfigFile(file) {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("чтение %s: %w", file, err)
		}
	} else if err := loadDotEnv(file); err != nil {
		return nil, err
	}

	v.AutomaticEnv()

	v.SetDefault("APP_ENV", defaultEnv)
	v.SetDefault("CONFIG_DIR", defaultConfigDir)
	v.SetDefault("RENDER_SCALE", defaultRenderScale)
	v.SetDefault("OUTPUT_DIR", ".")

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	configDir := v.GetString("CONFIG_DIR")
	if configDir == defaultConfigDir {
		configDir = filepath.Join(homeDir, configDir)
	}

	dbPath := v.GetString("DB_PATH")
	if dbPath == "" {
		dbPath = filepath.Join(configDir, defaultDBFile)
	}

	cfg := &Config{
		Env:         strings.ToLower(v.GetString("APP_ENV")),
		LogLevel:    v.GetString("LOG_LEVEL"),
		ConfigDir:   configDir,
		DBPath:      dbPath,
		RenderScale: v.GetInt("RENDER_SCALE"),
		OutputDir:   v.GetString("OUTPUT_DIR"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func isConfigFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json", ".toml":
		return true
	}
	return false
}

func loadDotEnv(envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("загрузка %s: %w", envFile, err)
		}
		return nil
	}

	for _, p := range []string{".env", "../.env"} {
		if _, err := os.Stat(p); err == nil {
			if err := godotenv.Load(p); err != nil {
				return fmt.Errorf("загрузка %s: %w", p, err)
			}
			return nil
		}
	}
	return nil
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	switch c.Env {
	case EnvLocal, EnvDev, EnvProd, "":
	default:
		return fmt.Errorf("неизвестное окружение app_env=%q", c.Env)
	}
	if c.DBPath == "" {
		return fmt.Errorf("db_path не может быть пустым")
	}
	if c.RenderScale < 1 {
		return fmt.Errorf("render_scale должен быть положительным, получено %d", c.RenderScale)
	}
	return nil
}

// IsProd проверяет, prod ли окружение
func (c *Config) IsProd() bool {
	return c.Env == EnvProd
}

// IsDev проверяет, dev ли окружение
func (c *Config) IsDev() bool {
	return c.Env == EnvDev
}

// IsLocal проверяет, local ли окружение
func (c *Config) IsLocal() bool {
	return c.Env == EnvLocal || c.Env == ""
}
