package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/misterclayt0n/ratlog/internal/config"
	"github.com/misterclayt0n/ratlog/internal/storage"
	"github.com/spf13/cobra"
)

var initLocalDB bool

var initSetupCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file and create the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfgFile
		if path == "" {
			var err error
			if path, err = config.GetConfigPath(); err != nil {
				return err
			}
		}

		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			fresh := config.Default()
			if initLocalDB {
				fresh.DB.ConnectionString = "file:" + filepath.Join(filepath.Dir(path), "ratlog.db")
			}
			if err := writeConfig(path, fresh); err != nil {
				return err
			}
			fmt.Printf("✅ Wrote config to %s\n", path)

			cfg.DB.ConnectionString = fresh.DB.ConnectionString
		} else {
			fmt.Printf("Config already exists at %s\n", path)
		}

		if !cfg.HasDatabase() {
			fmt.Println(yellow("No database configured; workouts stay local until you set one."))
			return nil
		}

		st, err := storage.New(cfg.DB.ConnectionString, nil)
		if err != nil {
			return err
		}
		defer st.Close()

		fmt.Println("✅ Database initialized successfully")
		return nil
	},
}

func writeConfig(path string, c *config.Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("Failed to create config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("Failed to create config file: %w", err)
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(c)
}

func init() {
	initSetupCmd.Flags().BoolVar(&initLocalDB, "local-db", false, "Use a sqlite file next to the config as the database")
	rootCmd.AddCommand(initSetupCmd)
}
