// Config loading for the shelf CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/bookshelf/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"
	envFileName    = ".env"
	envPrefix      = "SHELF"

	// Config keys.
	cfgKeyFormat   = "format"
	cfgKeyDataDir  = "data_dir"
	cfgKeyFile     = "file"
	cfgKeyLogLevel = "log_level"
	cfgKeyOutput   = "output"

	defaultFormat   = types.FormatLines
	defaultLogLevel = "warn"
)

// configFile is the structure written to a fresh config.yaml.
type configFile struct {
	Format   string `yaml:"format"`
	DataDir  string `yaml:"data_dir,omitempty"`
	File     string `yaml:"file,omitempty"`
	LogLevel string `yaml:"log_level"`
}

const configHeader = `# shelf configuration
# format: lines | jsonl | sqlite
# data_dir: directory holding the catalog (default: current directory)
# file: storage file name override (default depends on format)
`

// loadEnvFile loads .env from the working directory if present. Variables
// already set in the environment win.
func loadEnvFile() error {
	if err := godotenv.Load(envFileName); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("load %s: %w", envFileName, err)
	}
	return nil
}

// loadConfig reads config.yaml from configDir using Viper, creating the
// directory and a default file on first run. SHELF_FORMAT, SHELF_LOG_LEVEL
// and SHELF_OUTPUT override the file.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := ensureConfigDir(configDir); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}
	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyFormat, defaultFormat)
	v.SetDefault(cfgKeyLogLevel, defaultLogLevel)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	v.SetEnvPrefix(envPrefix)
	for _, key := range []string{cfgKeyFormat, cfgKeyLogLevel, cfgKeyOutput} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
}

// ensureDefaultConfigFile writes a default config.yaml if none exists.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	data, err := yaml.Marshal(&configFile{
		Format:   defaultFormat,
		LogLevel: defaultLogLevel,
	})
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, append([]byte(configHeader), data...), 0o644)
}
