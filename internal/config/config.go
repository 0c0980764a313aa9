package config

import (
	"fmt"
	"os"
	"time"

	"github.com/DanRulev/quizmeon/pkg/validator"
	"github.com/spf13/viper"
)

type Config struct {
	App    AppConfig    `mapstructure:"app" validate:"required"`
	HTTP   HTTPConfig   `mapstructure:"http" validate:"required"`
	Gemini GeminiConfig `mapstructure:"gemini" validate:"required"`
	DB     DBConfig     `mapstructure:"db" validate:"required"`
	Env    string       `mapstructure:"env" validate:"oneof=development production staging"`
}

type AppConfig struct {
	Timeout      time.Duration `mapstructure:"timeout" validate:"min=1"`
	MaxQuestions int           `mapstructure:"max_questions" validate:"min=1,max=200"`
}

type HTTPConfig struct {
	Addr              string        `mapstructure:"addr" validate:"required"`
	PublicURL         string        `mapstructure:"public_url" validate:"omitempty,url"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout" validate:"min=0"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout" validate:"min=0"`
	CORSOrigins       []string      `mapstructure:"cors_origins"`
}

type GeminiConfig struct {
	APIKey      string  `mapstructure:"api_key" validate:"required"`
	Model       string  `mapstructure:"model" validate:"required"`
	Temperature float32 `mapstructure:"temperature" validate:"min=0,max=2"`
}

type DBConfig struct {
	URL string `mapstructure:"url" validate:"required"`
	Cfg DBCfg  `mapstructure:"cfg"`
}

type DBCfg struct {
	MaxOpenConns    int           `mapstructure:"max_open_conns" validate:"min=1,max=1000"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns" validate:"min=0,max=100"`
	ConnMaxLifeTime time.Duration `mapstructure:"conn_max_life_time" validate:"min=0"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time" validate:"min=0"`
}

func Init() (*Config, error) {
	v := viper.New()

	v.AutomaticEnv()

	configName := os.Getenv("CONFIG_NAME")
	if configName == "" {
		configName = "default"
	}
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs"
	}

	v.AddConfigPath(configPath)
	v.SetConfigName(configName)

	bindings := map[string]string{
		"env":             "ENV",
		"http.addr":       "HTTP_ADDR",
		"http.public_url": "PUBLIC_URL",
		"gemini.api_key":  "GEMINI_API_KEY",
		"gemini.model":    "GEMINI_MODEL",
		"db.url":          "DB_URL",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Config{}

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.ValidateStruct(cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
