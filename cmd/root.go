package cmd

import (
	"io"
	"path/filepath"

	"github.com/misterclayt0n/ratlog/internal/config"
	"github.com/misterclayt0n/ratlog/internal/logging"
	"github.com/spf13/cobra"
)

var (
	cfgFile   string
	cfg       *config.Config
	logCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:           "ratlog",
	Short:         "Local-first strength training log",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadConfig()
		}
		if err != nil {
			return err
		}

		logCloser = logging.Setup(logging.LoggerSetupParams{
			LogFileName:   cfg.Log.File,
			LogLevel:      cfg.Log.Level,
			LogFormatJSON: cfg.Log.JSON,
		})
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if logCloser != nil {
			return logCloser.Close()
		}
		return nil
	},
}

// stateDir is where the snapshot lives: next to the config file.
func stateDir() (string, error) {
	if cfgFile != "" {
		return filepath.Dir(cfgFile), nil
	}
	return config.GetConfigDir()
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default ~/.config/ratlog/config.toml)")
}
