package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/pagekit/config"
	"github.com/randalmurphal/pagekit/tabstate"
)

type rootOptions struct {
	configPath string
	language   string
	verbose    bool
	cfg        config.Config

	// state holds the session preferences, seeded from cfg and overridden by
	// flags. Commands read the language and backend from here.
	state *tabstate.Store
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "pagekit",
		Short:         "Bound page text for the answering backend and structure its answers",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level := slog.LevelInfo
			if opts.verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

			cfg, err := loadConfig(opts.configPath)
			if err != nil {
				return err
			}
			opts.cfg = cfg

			opts.state = tabstate.New()
			opts.state.Seed(cfg)
			if opts.language != "" {
				return opts.state.SetLanguage(opts.language)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to a TOML or YAML config file")
	cmd.PersistentFlags().StringVarP(&opts.language, "language", "l", "", "answer language (pt-BR, pt-PT, en, es); overrides the config")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(
		newEstimateCmd(opts),
		newTruncateCmd(opts),
		newParseCmd(),
		newSchemaCmd(),
		newPrepareCmd(opts),
	)

	return cmd
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		cfg := config.FromEnv()
		return cfg, cfg.Validate()
	}
	return config.Load(path)
}

// readInput reads the file named by args[0], or stdin when no file is given.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}
