package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	DefaultEnvironment  = "production"
	DefaultLogLevel     = "info"
	DefaultMaxTokenSize = 1 << 20
)

type Config struct {
	Environment string        `mapstructure:"environment"`
	Logging     LoggingConfig `mapstructure:"logging"`
	Input       InputConfig   `mapstructure:"input"`
}

type LoggingConfig struct {
	LogLevel string `mapstructure:"log_level"`
	LogFile  string `mapstructure:"log_file"`
}

// InputConfig controls how puzzle input is tokenized.
type InputConfig struct {
	// MaxTokenSize is the longest single token (an integer or a digit
	// string) the reader accepts, in bytes.
	MaxTokenSize int `mapstructure:"max_token_size"`
}

// Load reads the configuration file at configPath, if any, and overlays
// PUZZLEKIT_* environment variables. An empty path yields the defaults.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("environment", DefaultEnvironment)
	v.SetDefault("logging.log_level", DefaultLogLevel)
	v.SetDefault("logging.log_file", "")
	v.SetDefault("input.max_token_size", DefaultMaxTokenSize)

	if configPath != "" {
		v.SetConfigFile(configPath)
		// 读取配置文件
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
	}

	// 绑定环境变量
	v.SetEnvPrefix("PUZZLEKIT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if cfg.Input.MaxTokenSize <= 0 {
		return nil, fmt.Errorf("input.max_token_size must be positive, got %d", cfg.Input.MaxTokenSize)
	}

	return &cfg, nil
}
