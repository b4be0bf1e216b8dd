package cli

import (
	"context"
	"fmt"
	"os"

	"fyne.io/fyne/v2/app"
	"github.com/hamidzr/movebox/constant"
	"github.com/hamidzr/movebox/core"
	"github.com/hamidzr/movebox/internal/config"
	"github.com/hamidzr/movebox/internal/logger"
	"github.com/hamidzr/movebox/model"
	"github.com/hamidzr/movebox/store"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const appID = "com.hamidzr." + constant.ProjectName

func InitCLI() *cobra.Command {
	RootCmd := &cobra.Command{
		Use:           constant.ProjectName,
		Short:         "movebox animates a box back and forth across a track",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// check if user wants to initialize config
			initConfig, _ := cmd.Flags().GetBool("init-config")
			if initConfig {
				configPath, err := config.InitConfigFile()
				if err != nil {
					return fmt.Errorf("failed to initialize config: %w", err)
				}
				fmt.Printf("✅ Config file created successfully at: %s\n", configPath)
				fmt.Printf("📝 Edit the file to customize your settings\n")
				return nil
			}

			// initialize configuration with proper priority handling
			cfg, err := config.InitConfig(cmd)
			if err != nil {
				return fmt.Errorf("failed to initialize config: %w", err)
			}
			if err := logger.Configure(cfg.LogLevel, cfg.TerminalMode); err != nil {
				return err
			}

			return run(cmd.Context(), cfg)
		},
	}

	// bind all flags using the new config system
	config.BindFlags(RootCmd)

	return RootCmd
}

func run(ctx context.Context, cfg *model.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if cfg.TerminalMode {
		logrus.Debug("Running in terminal mode")
		return core.RunTerminal(ctx, cfg, os.Stdin, os.Stdout)
	}

	moveBox, err := core.NewMoveBox(app.NewWithID(appID), cfg, windowCache(cfg))
	if err != nil {
		return fmt.Errorf("failed to create movebox: %w", err)
	}
	if err := moveBox.RunAppForever(); err != nil {
		logrus.WithError(err).Error("run() err")
		return err
	}
	return nil
}

// windowCache returns nil when the size should not be remembered or the
// cache dir is unusable; the window then opens at the configured size.
func windowCache(cfg *model.Config) store.Store[store.WindowCache] {
	if !cfg.RememberWindow {
		return nil
	}
	dir, err := store.CacheDir()
	if err != nil {
		logrus.WithError(err).Warn("window size will not be remembered")
		return nil
	}
	fileStore, err := store.NewFileStore[store.WindowCache](dir, "yaml")
	if err != nil {
		logrus.WithError(err).Warn("window size will not be remembered")
		return nil
	}
	return fileStore
}
