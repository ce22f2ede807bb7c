// Package cli implements the cocograph command line.
package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/agenthands/cocograph/internal/config"
	"github.com/agenthands/cocograph/internal/logging"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	cfg *config.Config
	log zerolog.Logger
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "cocograph",
		Short:         "Translate connectivity datasets into a common brain map",
		Long:          "cocograph translates connectivity reported in many literature maps into one target map and merges the results with controversy scores.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	root.PersistentFlags().String("config", "", "config file (default $CONFIG_PATH)")
	root.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	root.PersistentFlags().String("env-file", ".env", "dotenv file to load if present")

	root.AddCommand(newTranslateCmd(a), newImportCmd(a), newCatalogCmd(a))
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	if envFile, _ := cmd.Flags().GetString("env-file"); envFile != "" {
		_ = godotenv.Load(envFile)
	}

	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	cfg, err := config.LoadOrDefault(path)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.ApplyEnv(); err != nil {
		return err
	}
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.Log.Level = level
	}

	a.cfg = cfg
	a.log = logging.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
	logging.SetDefault(a.log)
	cmd.SetContext(logging.WithLogger(cmd.Context(), &a.log))
	return nil
}
