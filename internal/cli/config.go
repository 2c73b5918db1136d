package cli

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/clients/internal/paths"
	"github.com/mesh-intelligence/clients/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	envPrefix      = "CLIENTS"

	cfgKeyBackend  = "backend"
	cfgKeyCapacity = "capacity"
	cfgKeyEviction = "eviction"
	cfgKeyLogLevel = "log_level"

	defaultLogLevel = "warn"
)

// configFile holds the structure written to config.yaml by init.
type configFile struct {
	Backend  string `yaml:"backend"`
	Capacity int    `yaml:"capacity"`
	Eviction string `yaml:"eviction"`
	LogLevel string `yaml:"log_level"`
}

func defaultConfigFile() configFile {
	return configFile{
		Backend:  types.BackendBounded,
		Capacity: types.DefaultCapacity,
		Eviction: types.EvictionLagged,
		LogLevel: defaultLogLevel,
	}
}

// loadConfig reads config.yaml from configDir using Viper. Values may be
// overridden with CLIENTS_* environment variables. A missing config.yaml is
// not an error; defaults apply.
func loadConfig(configDir string) (*viper.Viper, error) {
	def := defaultConfigFile()

	v := viper.New()
	v.SetDefault(cfgKeyBackend, def.Backend)
	v.SetDefault(cfgKeyCapacity, def.Capacity)
	v.SetDefault(cfgKeyEviction, def.Eviction)
	v.SetDefault(cfgKeyLogLevel, def.LogLevel)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}

// writeConfigIfMissing creates config.yaml with default values if the file
// does not exist. It reports whether a file was written.
func writeConfigIfMissing(configDir string) (bool, error) {
	path := paths.ConfigFile(configDir)
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat config file: %w", err)
	}

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return false, fmt.Errorf("create config directory: %w", err)
	}

	def := defaultConfigFile()
	data, err := yaml.Marshal(&def)
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, err
	}
	return true, nil
}
