package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	yamlv3 "gopkg.in/yaml.v3"
)

type configKeyVariant struct {
	canonical string
	camel     string
	flag      string
}

var configKeyVariants = []configKeyVariant{
	{canonical: "title", flag: "title"},
	{canonical: "duration_ms", camel: "durationMs", flag: "duration"},
	{canonical: "easing", flag: "easing"},
	{canonical: "overlap", flag: "overlap"},
	{canonical: "element_width", camel: "elementWidth", flag: "element-width"},
	{canonical: "element_height", camel: "elementHeight", flag: "element-height"},
	{canonical: "padding_left", camel: "paddingLeft", flag: "padding-left"},
	{canonical: "padding_right", camel: "paddingRight", flag: "padding-right"},
	{canonical: "window_width", camel: "windowWidth", flag: "window-width"},
	{canonical: "window_height", camel: "windowHeight", flag: "window-height"},
	{canonical: "terminal_mode", camel: "terminalMode", flag: "terminal"},
	{canonical: "log_level", camel: "logLevel", flag: "log-level"},
	{canonical: "remember_window", camel: "rememberWindow", flag: "remember-window"},
}

var canonicalByKey = func() map[string]string {
	m := make(map[string]string, len(configKeyVariants)*2)
	for _, variant := range configKeyVariants {
		m[variant.canonical] = variant.canonical
		if variant.camel != "" {
			m[variant.camel] = variant.canonical
		}
	}
	return m
}()

// registerConfigKeyAliases must run after the config file is read; viper
// only moves values already present under an alias at registration time.
func registerConfigKeyAliases(v *viper.Viper) {
	for _, variant := range configKeyVariants {
		if variant.camel != "" {
			v.RegisterAlias(variant.camel, variant.canonical)
		}
	}
}

func validateConfigFileKeys(configPath string) error {
	if configPath == "" {
		return nil
	}

	displayPath := configFileDisplayPath(configPath)

	data, err := os.ReadFile(configPath)
	if err != nil {
		return errors.Wrapf(err, "error reading config file %s", displayPath)
	}

	if len(data) == 0 {
		return nil
	}

	var raw map[string]interface{}
	if err := yamlv3.Unmarshal(data, &raw); err != nil {
		return errors.Wrapf(err, "error parsing config file %s", displayPath)
	}

	seen := make(map[string]string, len(raw))
	for key := range raw {
		canonical, ok := canonicalByKey[key]
		if !ok {
			return errors.Errorf("config file %s contains invalid key %q", displayPath, key)
		}
		if previous, exists := seen[canonical]; exists && previous != key {
			return errors.Errorf("config file %s contains both %q (%s) and %q (%s); use one naming style for %q", displayPath, previous, keyStyle(previous), key, keyStyle(key), canonical)
		}
		seen[canonical] = key
	}

	return nil
}

func keyStyle(key string) string {
	if strings.Contains(key, "_") {
		return "snake_case"
	}
	if strings.Contains(key, "-") {
		return "kebab-case"
	}
	if len(key) == 0 {
		return "unknown style"
	}
	return "camelCase"
}

func configFileDisplayPath(path string) string {
	if path == "" {
		return path
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
