package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/tabzen/internal/adapters/host/cdp"
	"github.com/bnema/tabzen/internal/adapters/logging"
	"github.com/bnema/tabzen/internal/application"
	"github.com/spf13/viper"
)

const (
	configDirName = "tabzen"
	envPrefix     = "TZ"

	hostDriverCDP    = "cdp"
	hostDriverMemory = "memory"
)

// loadConfig reads ~/.config/tabzen/config.toml when present. Every key can be
// overridden from the environment, e.g. TZ_HOST_DRIVER for host.driver.
func loadConfig() (*viper.Viper, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	configDir := filepath.Join(homeDir, ".config", configDirName)

	cfg := viper.New()
	cfg.SetConfigName("config")
	cfg.SetConfigType("toml")
	cfg.AddConfigPath(configDir)
	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	cfg.SetDefault("policy.interval", application.DefaultPassInterval)
	cfg.SetDefault("host.driver", hostDriverCDP)
	cfg.SetDefault("host.cdp.url", cdp.DefaultControlURL)
	cfg.SetDefault("host.cdp.extension_id", "")
	cfg.SetDefault("host.cdp.bridge_path", cdp.DefaultBridgePath)
	cfg.SetDefault("host.cdp.timeout", cdp.DefaultTimeout)
	cfg.SetDefault("host.memory.fixture", filepath.Join(configDir, "tabs.yaml"))
	cfg.SetDefault("log.path", filepath.Join(configDir, "tabzen.log"))
	cfg.SetDefault("log.level", "info")
	cfg.SetDefault("log.max_size_mb", logging.DefaultMaxSizeMB)
	cfg.SetDefault("log.max_backups", logging.DefaultMaxBackups)

	if err := cfg.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	return cfg, nil
}

func passInterval(cfg *viper.Viper) time.Duration {
	interval := cfg.GetDuration("policy.interval")
	if interval <= 0 {
		return application.DefaultPassInterval
	}
	return interval
}
