// Package main is the interactive initiative tracker.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cory-johannsen/initracker/internal/config"
	"github.com/cory-johannsen/initracker/internal/console"
	"github.com/cory-johannsen/initracker/internal/game/command"
	"github.com/cory-johannsen/initracker/internal/game/dice"
	"github.com/cory-johannsen/initracker/internal/game/initiative"
	"github.com/cory-johannsen/initracker/internal/observability"
)

var (
	configPath  string
	importPaths []string
)

var rootCmd = &cobra.Command{
	Use:   "initracker",
	Short: "Interactive initiative tracker for tabletop combat",
	Long: `initracker keeps combatants in initiative order, cycles through turns,
and tracks hit points, temporary hit points and armor class.
Type "help" at the prompt for the list of commands.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "path to a YAML configuration file")
	rootCmd.Flags().StringArrayVar(&importPaths, "import", nil, "record file to import at start-up (repeatable)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()
	logger = logger.With(zap.String("session_id", uuid.NewString()))

	scoreDice, err := dice.Parse(cfg.Tracker.ScoreDice)
	if err != nil {
		return fmt.Errorf("parsing score dice: %w", err)
	}
	roller := dice.NewLoggedRoller(dice.NewCryptoSource(), logger)

	out := cmd.OutOrStdout()
	prompter := console.NewPrompter(cmd.InOrStdin(), out, roller, scoreDice)
	session := console.NewSession(
		console.Options{Prompt: cfg.Tracker.Prompt, Banner: cfg.Tracker.Banner},
		initiative.NewRoster(logger),
		command.DefaultRegistry(),
		prompter,
		console.Renderer{MinWidth: cfg.Tracker.PanelMinWidth, Color: cfg.Tracker.Color},
		out,
		logger,
	)

	for _, path := range importPaths {
		if err := session.Import(path); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("importing %s: %w", path, err)
		}
	}
	return session.Run(cmd.Context())
}
