// Config loading for the tome CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/tomebase/tome/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// Environment override for the configuration directory.
	envConfigDir = "TOME_CONFIG_DIR"

	// Default configuration directory relative to the working directory.
	defaultConfigDir = ".tome"

	// Config keys.
	cfgKeyDBFile     = "db_file"
	cfgKeyListenAddr = "listen_addr"
	cfgKeySiteTitle  = "site_title"
	cfgKeyPrivate    = "private"
	cfgKeyDebug      = "debug"
)

// resolveConfigDir returns the configuration directory with precedence:
// --config-dir flag > TOME_CONFIG_DIR env > $(CWD)/.tome.
func resolveConfigDir() string {
	if flagConfigDir != "" {
		return flagConfigDir
	}
	if dir := os.Getenv(envConfigDir); dir != "" {
		return dir
	}
	return defaultConfigDir
}

// loadConfig reads config.yaml from the resolved config directory using Viper.
// It creates the config directory and a default config.yaml on first run.
// A missing config.yaml is not an error; defaults apply.
func loadConfig(configDir string) (types.Config, error) {
	if err := ensureConfigDir(configDir); err != nil {
		return types.Config{}, fmt.Errorf("ensure config dir: %w", err)
	}

	if err := ensureDefaultConfigFile(configDir); err != nil {
		return types.Config{}, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyDBFile, types.DefaultDBFile)
	v.SetDefault(cfgKeyListenAddr, types.DefaultListenAddr)
	v.SetDefault(cfgKeySiteTitle, types.DefaultSiteTitle)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return types.Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	return types.Config{
		DBFile:     v.GetString(cfgKeyDBFile),
		ListenAddr: v.GetString(cfgKeyListenAddr),
		SiteTitle:  v.GetString(cfgKeySiteTitle),
		Private:    v.GetBool(cfgKeyPrivate),
		Debug:      v.GetBool(cfgKeyDebug),
	}, nil
}

// ensureConfigDir creates the config directory if it does not exist.
func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
}

// ensureDefaultConfigFile writes a config.yaml with the default settings if
// the file does not exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		// File already exists.
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	data, err := yaml.Marshal(types.Config{}.WithDefaults())
	if err != nil {
		return fmt.Errorf("marshal default config: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}
