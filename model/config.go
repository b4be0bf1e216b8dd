package model

import "time"

// Config holds all configuration for the application
type Config struct {
	// app settings
	Title        string `mapstructure:"title" yaml:"title"`
	TerminalMode bool   `mapstructure:"terminal_mode" yaml:"terminal_mode"`
	LogLevel     string `mapstructure:"log_level" yaml:"log_level"`
	// animation settings
	DurationMs int    `mapstructure:"duration_ms" yaml:"duration_ms"`
	Easing     string `mapstructure:"easing" yaml:"easing"`
	Overlap    string `mapstructure:"overlap" yaml:"overlap"`
	// geometry settings
	ElementWidth  float32 `mapstructure:"element_width" yaml:"element_width"`
	ElementHeight float32 `mapstructure:"element_height" yaml:"element_height"`
	PaddingLeft   float32 `mapstructure:"padding_left" yaml:"padding_left"`
	PaddingRight  float32 `mapstructure:"padding_right" yaml:"padding_right"`
	WindowWidth   float32 `mapstructure:"window_width" yaml:"window_width"`
	WindowHeight  float32 `mapstructure:"window_height" yaml:"window_height"`
	// RememberWindow persists the last window size in the cache dir.
	RememberWindow bool `mapstructure:"remember_window" yaml:"remember_window"`
}

// DefaultConfig returns a config with default values
func DefaultConfig() *Config {
	return &Config{
		Title:          "Move the box",
		TerminalMode:   false,
		LogLevel:       "info",
		DurationMs:     1000,
		Easing:         "ease-in-out",
		Overlap:        string(OverlapRestart),
		ElementWidth:   100,
		ElementHeight:  100,
		PaddingLeft:    16,
		PaddingRight:   16,
		WindowWidth:    480,
		WindowHeight:   320,
		RememberWindow: true,
	}
}

// Duration returns the configured animation duration, falling back to the default for non-positive values.
func (c *Config) Duration() time.Duration {
	if c == nil || c.DurationMs <= 0 {
		return DefaultDuration
	}
	return time.Duration(c.DurationMs) * time.Millisecond
}

// OverlapPolicy parses the configured overlap policy.
func (c *Config) OverlapPolicy() (OverlapPolicy, error) {
	if c == nil || c.Overlap == "" {
		return OverlapRestart, nil
	}
	return ParseOverlapPolicy(c.Overlap)
}
