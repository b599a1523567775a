package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/billel/trivia/internal/app"
	"github.com/billel/trivia/internal/config"
	"github.com/billel/trivia/internal/logger"
	"github.com/billel/trivia/internal/opentdb"
	"github.com/billel/trivia/internal/quiz"
)

var rootCmd = &cobra.Command{
	Use:          "trivia",
	Short:        "Terminal trivia quiz",
	Long:         "Billel Quiz: pick a category, answer a question from the Open Trivia Database, play again.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup(cmd)
		if err != nil {
			return err
		}
		defer env.close()

		return app.Run(env.appOptions())
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file (default ./trivia.yaml)")
	rootCmd.PersistentFlags().String("base-url", "", "Trivia API root (overrides TRIVIA_BASE_URL)")
	rootCmd.PersistentFlags().String("log-file", "", "Write logs to this file (overrides TRIVIA_LOG_FILE)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(versionCmd)
}

// environment holds what every command needs: config, logger and client.
type environment struct {
	cfg    *config.Config
	logger *zap.Logger
	client *opentdb.Client
}

// setup loads .env, the config file and environment, applies flag
// overrides, and builds the logger and API client.
func setup(cmd *cobra.Command) (*environment, error) {
	if err := config.LoadDotEnv(); err != nil {
		return nil, err
	}

	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	applyFlags(cmd, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	log, err := logger.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	client := opentdb.New(
		opentdb.WithBaseURL(cfg.BaseURL),
		opentdb.WithTimeout(cfg.Timeout),
		opentdb.WithDifficulty(cfg.Difficulty),
	)

	log.Info("trivia starting",
		zap.String("version", version),
		zap.String("base_url", client.BaseURL()),
		zap.String("difficulty", cfg.Difficulty))

	return &environment{cfg: cfg, logger: log, client: client}, nil
}

// applyFlags lets explicitly set flags win over env and file values.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	if f := cmd.Flags().Lookup("base-url"); f != nil && f.Changed {
		cfg.BaseURL = f.Value.String()
	}
	if f := cmd.Flags().Lookup("log-file"); f != nil && f.Changed {
		cfg.Log.File = f.Value.String()
	}
}

func (e *environment) appOptions() app.Options {
	return app.Options{
		Categories: e.client,
		Questions:  quiz.WithLogging(e.client, e.logger),
		Logger:     e.logger,
	}
}

func (e *environment) close() {
	_ = e.logger.Sync()
}
