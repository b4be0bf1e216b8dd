package config

import (
	"strings"

	"github.com/hamidzr/movebox/constant"
	"github.com/hamidzr/movebox/model"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// BindFlags binds CLI flags to the cobra command
func BindFlags(cmd *cobra.Command) {
	defaults := model.DefaultConfig()

	cmd.PersistentFlags().StringP("title", "t", defaults.Title, "Title of the window")
	cmd.PersistentFlags().IntP("duration", "d", defaults.DurationMs, "Duration of one move in milliseconds")
	cmd.PersistentFlags().StringP("easing", "e", defaults.Easing, "Easing curve: linear, ease-in, ease-out, ease-in-out")
	cmd.PersistentFlags().String("overlap", defaults.Overlap, "What a trigger does while a move runs: restart, ignore, race")
	cmd.PersistentFlags().Float32("element-width", defaults.ElementWidth, "Width of the box")
	cmd.PersistentFlags().Float32("element-height", defaults.ElementHeight, "Height of the box")
	cmd.PersistentFlags().Float32("padding-left", defaults.PaddingLeft, "Left padding of the track")
	cmd.PersistentFlags().Float32("padding-right", defaults.PaddingRight, "Right padding of the track")
	cmd.PersistentFlags().Float32("window-width", defaults.WindowWidth, "Initial window width")
	cmd.PersistentFlags().Float32("window-height", defaults.WindowHeight, "Initial window height")
	cmd.PersistentFlags().Bool("terminal", defaults.TerminalMode, "Run in terminal-only mode without GUI")
	cmd.PersistentFlags().String("log-level", defaults.LogLevel, "Log level: trace, debug, info, warn, error")
	cmd.PersistentFlags().Bool("remember-window", defaults.RememberWindow, "Restore the last window size")
	cmd.PersistentFlags().Bool("init-config", false, "Generate and save default config file")
}

// bindFlagKeys maps each flag onto its canonical config key. Flag names are
// kebab-case while config keys are snake_case, so BindPFlags alone is not enough.
func bindFlagKeys(v *viper.Viper, cmd *cobra.Command) error {
	for _, variant := range configKeyVariants {
		flag := lookupFlag(cmd, variant.flag)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(variant.canonical, flag); err != nil {
			return errors.Wrapf(err, "error binding flag %s", variant.flag)
		}
	}
	return nil
}

// lookupFlag also checks the persistent set, which cobra only merges into
// Flags() once the command has parsed its arguments.
func lookupFlag(cmd *cobra.Command, name string) *pflag.Flag {
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag
	}
	return cmd.PersistentFlags().Lookup(name)
}

// SetViperDefaults sets default values in viper configuration
func SetViperDefaults(v *viper.Viper) {
	defaults := model.DefaultConfig()
	v.SetDefault("title", defaults.Title)
	v.SetDefault("duration_ms", defaults.DurationMs)
	v.SetDefault("easing", defaults.Easing)
	v.SetDefault("overlap", defaults.Overlap)
	v.SetDefault("element_width", defaults.ElementWidth)
	v.SetDefault("element_height", defaults.ElementHeight)
	v.SetDefault("padding_left", defaults.PaddingLeft)
	v.SetDefault("padding_right", defaults.PaddingRight)
	v.SetDefault("window_width", defaults.WindowWidth)
	v.SetDefault("window_height", defaults.WindowHeight)
	v.SetDefault("terminal_mode", defaults.TerminalMode)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("remember_window", defaults.RememberWindow)
}

// SetViperEnvSettings configures viper environment variable settings
func SetViperEnvSettings(v *viper.Viper) {
	v.SetEnvPrefix(constant.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
}
