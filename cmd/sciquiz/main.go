package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"sciquiz/internal/bootstrap"
	"sciquiz/internal/platform/clock"
	"sciquiz/internal/platform/config"
	"sciquiz/internal/platform/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "sciquiz",
		Short:         "Unlimited chemistry, physics and maths quiz",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/sciquiz/config.yaml)")

	root.AddCommand(newTUICmd(&configPath))
	root.AddCommand(newPlayCmd(&configPath))
	root.AddCommand(newAskCmd(&configPath))
	root.AddCommand(newHistoryCmd(&configPath))
	root.AddCommand(newConfigCmd(&configPath))
	return root
}

// loadApp wires the application. The returned cleanup closes stores and the
// log file and is always non-nil.
func loadApp(configPath string) (*bootstrap.App, config.Config, func(), error) {
	noop := func() {}
	cfg, err := config.New(configPath)
	if err != nil {
		return nil, config.Config{}, noop, err
	}
	log, closeLog, err := logging.New(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return nil, config.Config{}, noop, err
	}
	app, err := bootstrap.New(cfg, log)
	if err != nil {
		_ = closeLog()
		return nil, config.Config{}, noop, err
	}
	return app, cfg, func() {
		_ = app.Close()
		_ = closeLog()
	}, nil
}

func newTUICmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the full-screen quiz",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, cleanup, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			defer cleanup()
			return bootstrap.RunTUI(cmd.Context(), app)
		},
	}
}

func newPlayCmd(configPath *string) *cobra.Command {
	var subject, difficulty, uiMode string
	var count int

	play := &cobra.Command{
		Use:   "play",
		Short: "Play one quiz session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, cfg, cleanup, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			defer cleanup()

			if difficulty == "" {
				difficulty = cfg.Defaults.Difficulty
			}
			if count == 0 {
				count = cfg.Defaults.Questions
			}
			decision, err := resolveUIMode(uiMode, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if decision.warning != "" {
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), decision.warning)
			}
			if decision.useLive {
				return bootstrap.RunQuiz(cmd.Context(), app, subject, difficulty, count)
			}
			return runPlain(cmd.Context(), app.SessionCLI, clock.SystemClock{}, cmd.InOrStdin(), cmd.OutOrStdout(), subject, difficulty, count)
		},
	}
	play.Flags().StringVar(&subject, "subject", "maths", "subject: chemistry|physics|maths")
	play.Flags().StringVar(&difficulty, "difficulty", "", "difficulty: easy|medium|hard (default from config)")
	play.Flags().IntVar(&count, "count", 0, "number of questions (default from config)")
	play.Flags().StringVar(&uiMode, "ui", "auto", "ui mode: auto|live|plain")
	return play
}

func newAskCmd(configPath *string) *cobra.Command {
	var subject, difficulty string
	var reveal bool

	ask := &cobra.Command{
		Use:   "ask",
		Short: "Print one generated question",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, cleanup, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			defer cleanup()

			q, err := app.QuestionCLI.Generate(cmd.Context(), subject, difficulty)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "[%s · %s]\n%s\n\n", q.Subject, q.Difficulty, q.Prompt)
			for _, opt := range q.Options {
				_, _ = fmt.Fprintf(out, "  %s) %s\n", opt.Label, opt.Text)
			}
			if reveal {
				_, _ = fmt.Fprintf(out, "\nAnswer: %s) %s\n", q.CorrectLabel, q.Correct)
			}
			return nil
		},
	}
	ask.Flags().StringVar(&subject, "subject", "maths", "subject: chemistry|physics|maths")
	ask.Flags().StringVar(&difficulty, "difficulty", "medium", "difficulty: easy|medium|hard")
	ask.Flags().BoolVar(&reveal, "reveal", false, "print the correct answer")
	return ask
}

func newHistoryCmd(configPath *string) *cobra.Command {
	var limit int

	history := &cobra.Command{
		Use:   "history",
		Short: "List finished sessions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, cleanup, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			defer cleanup()

			results, err := app.SessionCLI.History(cmd.Context(), limit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(results) == 0 {
				_, _ = fmt.Fprintln(out, "no results")
				return nil
			}
			for _, r := range results {
				_, _ = fmt.Fprintf(out, "%s  %-9s %-6s %2d/%-2d %5.1f%%  %s\n",
					r.EndedAt.Local().Format("2006-01-02 15:04"),
					r.Subject, r.Difficulty, r.Score, r.Total, r.Percent, r.Grade)
			}
			return nil
		},
	}
	history.Flags().IntVar(&limit, "limit", 10, "max results (0 for all)")
	return history
}

func newConfigCmd(configPath *string) *cobra.Command {
	cfgCmd := &cobra.Command{Use: "config", Short: "Configuration commands"}
	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.New(*configPath)
			if err != nil {
				return err
			}
			rendered, err := cfg.Render()
			if err != nil {
				return err
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), strings.TrimRight(rendered, "\n")+"\n")
			return nil
		},
	})
	return cfgCmd
}
