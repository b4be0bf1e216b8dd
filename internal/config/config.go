package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hamidzr/movebox/constant"
	"github.com/hamidzr/movebox/model"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"
)

const configFileName = "config.yaml"

// getConfigPaths returns the config directory paths in priority order
// prefers ~/.config over macos application support dir
func getConfigPaths() []string {
	var paths []string

	if homeDir, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(homeDir, ".config", constant.ProjectName))
		paths = append(paths, filepath.Join(homeDir, "."+constant.ProjectName))
	}
	if configDir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(configDir, constant.ProjectName))
	}
	paths = append(paths, ".")

	return paths
}

// getPreferredConfigDir returns the preferred config directory for writing
func getPreferredConfigDir() (string, error) {
	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".config", constant.ProjectName), nil
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(userConfigDir, constant.ProjectName), nil
	}

	return "", fmt.Errorf("unable to determine config directory")
}

// InitConfig initializes Viper configuration with proper priority:
// 1. CLI flags (highest priority)
// 2. Environment variables
// 3. Config file
// 4. Defaults
func InitConfig(cmd *cobra.Command) (*model.Config, error) {
	return loadConfig(cmd, getConfigPaths())
}

func loadConfig(cmd *cobra.Command, paths []string) (*model.Config, error) {
	v := viper.New()

	// look for config.yaml to avoid conflicts with cache files
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, path := range paths {
		v.AddConfigPath(path)
	}

	SetViperEnvSettings(v)
	SetViperDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// config file not found is ok, we'll use defaults + env vars + flags
	}
	if err := validateConfigFileKeys(v.ConfigFileUsed()); err != nil {
		return nil, err
	}
	registerConfigKeyAliases(v)

	if err := bindFlagKeys(v, cmd); err != nil {
		return nil, err
	}

	var config model.Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if _, err := config.OverlapPolicy(); err != nil {
		return nil, err
	}

	return &config, nil
}

// InitConfigFile generates and saves a default config file to the appropriate location
func InitConfigFile() (string, error) {
	configDir, err := getPreferredConfigDir()
	if err != nil {
		return "", err
	}
	return writeDefaultConfig(configDir)
}

func writeDefaultConfig(configDir string) (string, error) {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", errors.Wrapf(err, "failed to create config directory %s", configDir)
	}

	configPath := filepath.Join(configDir, configFileName)

	if _, err := os.Stat(configPath); err == nil {
		return "", fmt.Errorf("config file already exists at %s", configPath)
	}

	yamlData, err := yaml.Marshal(model.DefaultConfig())
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal config to YAML")
	}

	header := `# movebox configuration file
# Generated automatically - customize as needed
#
# easing: linear, ease-in, ease-out, ease-in-out
# overlap: restart, ignore, race
# sizes are in pixels; terminal mode scales them down to columns
#

`

	if err := os.WriteFile(configPath, []byte(header+string(yamlData)), 0644); err != nil {
		return "", errors.Wrapf(err, "failed to write config file %s", configPath)
	}

	return configPath, nil
}
