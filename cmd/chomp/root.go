package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"chomp/internal/config"
	"chomp/internal/logger"
	"chomp/internal/store"
)

const defaultConfigPath = "configs/chomp.yaml"

var version = "dev"

var (
	flagConfig   string
	flagDir      string
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:          "chomp",
	Short:        "Manage scraped article records and clean their text",
	Long:         "chomp keeps scraped articles as one JSON file each and normalizes their text for topic modeling.",
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "chomp %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file (default "+defaultConfigPath+" if present)")
	rootCmd.PersistentFlags().StringVar(&flagDir, "dir", "", "record directory (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "debug, info, warn or error (overrides config)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(slugifyCmd)
	rootCmd.AddCommand(saveCmd)
	rootCmd.AddCommand(initCmd)
}

// loadConfig reads --config, falls back to the default path, then to
// built-in defaults over the current directory. Flags win over the file,
// and validation runs once they are applied. The returned logger writes to
// the command's stderr at the configured level.
func loadConfig(cmd *cobra.Command) (*config.Config, *logger.Logger, error) {
	path, err := configPath()
	if err != nil {
		return nil, nil, err
	}

	cfg := config.Default(".")

	if path != "" {
		loaded, err := config.ReadConfig(path)
		if err != nil {
			return nil, nil, fmt.Errorf("loading config: %w", err)
		}

		cfg = loaded
	}

	if flagDir != "" {
		cfg.Store.OutputDir = flagDir
	}

	if flagLogLevel != "" {
		cfg.Logging.Level = flagLogLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	log := logger.NewWithWriter(cfg.Logging.Level, cmd.ErrOrStderr())
	log.Debug("configuration loaded", "path", path, "config", cfg.String())

	return cfg, log, nil
}

// configPath returns --config, or the default path when that file exists,
// or "" for built-in defaults.
func configPath() (string, error) {
	if flagConfig != "" {
		return flagConfig, nil
	}

	if _, err := os.Stat(defaultConfigPath); err == nil {
		return defaultConfigPath, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("checking default config: %w", err)
	}

	return "", nil
}

func openStore(cfg *config.Config, log *logger.Logger) *store.Store {
	return store.New(cfg.Store, store.WithLogger(log.With("dir", cfg.Store.OutputDir)))
}
