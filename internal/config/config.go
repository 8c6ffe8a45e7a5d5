package config

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/viper"
)

// Config carries the tool-level settings. Decoding itself is pure; these
// only shape how the CLI drives it.
type Config struct {
	// Workers bounds concurrent file decoding. 0 means auto-detect.
	Workers int `mapstructure:"workers"`

	// Network selects the address flavor for display purposes
	// ("mainnet" or "testnet").
	Network string `mapstructure:"network"`

	// Pretty enables indented JSON output.
	Pretty bool `mapstructure:"pretty"`
}

// Load reads configuration in priority order: defaults, then an optional
// config file, then XRPLTX_-prefixed environment variables.
func Load(configFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	v.SetEnvPrefix("XRPLTX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("workers", 0) // 0 means auto-detect
	v.SetDefault("network", "mainnet")
	v.SetDefault("pretty", false)
}

func validate(cfg *Config) error {
	switch cfg.Network {
	case "mainnet", "testnet":
		return nil
	default:
		return fmt.Errorf("unknown network %q", cfg.Network)
	}
}
