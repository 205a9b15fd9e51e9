// Package config handles loading and access of the tool configuration.
package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Default configuration values
const (
	DefaultConfigFile = "/etc/tcpconnect/config.yml"
	DefaultLogLevel   = "info"
	DefaultTimeout    = 10
	DefaultNetwork    = "tcp"
)

// Config holds the tool configuration
type Config struct {
	DefaultTimeout int    `mapstructure:"default_timeout" yaml:"default_timeout"`
	Network        string `mapstructure:"network" yaml:"network"`
	LogLevel       string `mapstructure:"log_level" yaml:"log_level"`
	LogFile        string `mapstructure:"log_file" yaml:"log_file"`
}

// Manager handles configuration loading and access
type Manager struct {
	v          *viper.Viper
	config     *Config
	configFile string
}

// New creates a new configuration manager with defaults applied
func New() *Manager {
	v := viper.New()
	v.SetDefault("default_timeout", DefaultTimeout)
	v.SetDefault("network", DefaultNetwork)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("log_file", "")

	return &Manager{
		v: v,
		config: &Config{
			DefaultTimeout: DefaultTimeout,
			Network:        DefaultNetwork,
			LogLevel:       DefaultLogLevel,
		},
		configFile: DefaultConfigFile,
	}
}

// SetConfigFile sets the config file path
func (m *Manager) SetConfigFile(path string) {
	m.configFile = path
}

// GetConfigFile returns the config file path
func (m *Manager) GetConfigFile() string {
	return m.configFile
}

// GetConfig returns the current configuration
func (m *Manager) GetConfig() *Config {
	return m.config
}

// LoadConfig reads the YAML config file. A missing file is not an error;
// the defaults stay in effect.
func (m *Manager) LoadConfig() error {
	m.v.SetConfigFile(m.configFile)
	m.v.SetConfigType("yaml")

	if err := m.v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := m.v.Unmarshal(m.config); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	return nil
}
