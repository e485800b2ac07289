package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rileyhilliard/sysmon/internal/errors"
	"github.com/spf13/viper"
)

const (
	// ConfigFileName is the project-local config file name.
	ConfigFileName = ".sysmon.yaml"
	// GlobalConfigDir is the directory for global config, relative to $HOME.
	GlobalConfigDir = ".config/system-monitor"
	// GlobalConfigFile is the global config file name.
	GlobalConfigFile = "config.yaml"
	// PathEnv names an explicit config file.
	PathEnv = "SYSMON_CONFIG"
	// EnvPrefix prefixes per-key environment overrides (SYSMON_INTERVAL, ...).
	EnvPrefix = "SYSMON"
)

// Load reads config from path. An empty path loads defaults plus environment
// overrides only.
func Load(path string) (*Config, error) {
	v := newViper()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			if os.IsNotExist(err) {
				return nil, errors.WrapWithCode(err, errors.ErrConfig,
					"Config file not found: "+path,
					"Check the path in "+PathEnv+" or remove the variable")
			}
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to read config file",
				"Check the file exists and is valid YAML")
		}
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		source := path
		if source == "" {
			source = "the " + EnvPrefix + "_* environment variables"
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid config format",
			"Check the values in "+source)
	}

	cfg.Color = strings.ToLower(strings.TrimSpace(cfg.Color))
	cfg.Format = strings.ToLower(strings.TrimSpace(cfg.Format))
	return cfg, nil
}

// newViper returns a viper instance with defaults and env bindings set.
// Every key needs a default so AutomaticEnv can see it during Unmarshal.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")

	def := DefaultConfig()
	v.SetDefault("interval", def.Interval)
	v.SetDefault("color", def.Color)
	v.SetDefault("format", def.Format)
	v.SetDefault("disks.all", def.Disks.All)
	v.SetDefault("disks.exclude", def.Disks.Exclude)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Find locates the config file using the search order:
// 1. $SYSMON_CONFIG
// 2. .sysmon.yaml in the current directory
// 3. ~/.config/system-monitor/config.yaml
//
// Returns an empty path when nothing is found.
func Find() (string, error) {
	if explicit := os.Getenv(PathEnv); explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot access config file: "+explicit,
				"Check the path in "+PathEnv)
		}
		return explicit, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot determine current directory",
			"Check directory permissions")
	}
	local := filepath.Join(cwd, ConfigFileName)
	if _, err := os.Stat(local); err == nil {
		return local, nil
	}

	if home, err := os.UserHomeDir(); err == nil && home != "" {
		global := filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
		if _, err := os.Stat(global); err == nil {
			return global, nil
		}
	}

	return "", nil
}

// LoadOrDefault loads the config file Find locates, or defaults (with env
// overrides) when there is none.
func LoadOrDefault() (*Config, error) {
	path, err := Find()
	if err != nil {
		return nil, err
	}
	return Load(path)
}
