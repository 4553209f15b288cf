package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	questioninadapter "sciquiz/internal/modules/question/adapter/in"
	questionoutadapter "sciquiz/internal/modules/question/adapter/out"
	questiondomain "sciquiz/internal/modules/question/domain"
	questionservice "sciquiz/internal/modules/question/service"
	questionusecase "sciquiz/internal/modules/question/usecase"
	sessioninadapter "sciquiz/internal/modules/session/adapter/in"
	sessionoutadapter "sciquiz/internal/modules/session/adapter/out"
	sessiondomain "sciquiz/internal/modules/session/domain"
	sessionout "sciquiz/internal/modules/session/port/out"
	sessionservice "sciquiz/internal/modules/session/service"
	sessionusecase "sciquiz/internal/modules/session/usecase"
	"sciquiz/internal/platform/clock"
	"sciquiz/internal/platform/config"
	"sciquiz/internal/platform/id"
	uiapp "sciquiz/internal/ui/app"
)

type App struct {
	QuestionCLI questioninadapter.CLIHandler
	SessionCLI  sessioninadapter.CLIHandler
	SessionTUI  sessioninadapter.TUIHandler

	closers []func() error
}

func New(cfg config.Config, log *slog.Logger) (*App, error) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	clk := clock.SystemClock{}
	ids := id.UUID{}

	rules, err := Rules(cfg)
	if err != nil {
		return nil, err
	}

	questionUC := questionusecase.NewInteractor(questionservice.NewQuestionService(
		questionoutadapter.NewSource(cfg.Seed, clk),
	))

	app := &App{}
	var results sessionout.ResultStore
	if cfg.History.Enabled {
		store, err := sessionoutadapter.NewSQLiteResultStore(cfg.History.DBPath)
		if err != nil {
			return nil, fmt.Errorf("new result store: %w", err)
		}
		results = store
		app.closers = append(app.closers, store.Close)
		log.Debug("result history enabled", "db", cfg.History.DBPath)
	}

	sessionUC := sessionusecase.NewInteractor(sessionservice.NewSessionService(
		clk,
		ids,
		sessionoutadapter.NewGeneratedQuestionSource(questionUC),
		results,
		rules,
		log,
	))

	app.QuestionCLI = questioninadapter.NewCLIHandler(questionUC)
	app.SessionCLI = sessioninadapter.NewCLIHandler(sessionUC)
	app.SessionTUI = sessioninadapter.NewTUIHandler(sessionUC)
	return app, nil
}

// Rules converts the configured bounds and limits into session rules.
func Rules(cfg config.Config) (sessiondomain.Rules, error) {
	difficulty, err := questiondomain.ParseDifficulty(cfg.Defaults.Difficulty)
	if err != nil {
		return sessiondomain.Rules{}, fmt.Errorf("default difficulty: %w", err)
	}
	rules := sessiondomain.Rules{
		MinQuestions:      cfg.Questions.Min,
		MaxQuestions:      cfg.Questions.Max,
		DefaultQuestions:  cfg.Defaults.Questions,
		DefaultDifficulty: difficulty,
		TimeLimits: map[questiondomain.Difficulty]int{
			questiondomain.DifficultyEasy:   cfg.TimeLimits.Easy,
			questiondomain.DifficultyMedium: cfg.TimeLimits.Medium,
			questiondomain.DifficultyHard:   cfg.TimeLimits.Hard,
		},
	}
	if err := rules.Validate(); err != nil {
		return sessiondomain.Rules{}, err
	}
	return rules, nil
}

// Close releases stores opened by New.
func (a *App) Close() error {
	var first error
	for _, c := range a.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func RunTUI(ctx context.Context, app *App) error {
	model, err := newModel(ctx, app)
	if err != nil {
		return err
	}
	return run(ctx, model)
}

// RunQuiz opens the TUI directly on the first question of a new quiz.
func RunQuiz(ctx context.Context, app *App, subject, difficulty string, total int) error {
	model, err := newModel(ctx, app)
	if err != nil {
		return err
	}
	return run(ctx, model.WithQuickStart(subject, difficulty, total))
}

func newModel(ctx context.Context, app *App) (uiapp.Model, error) {
	catalog, err := app.QuestionCLI.Catalog(ctx)
	if err != nil {
		return uiapp.Model{}, err
	}
	return uiapp.NewModel(app.SessionTUI, catalog.Subjects), nil
}

func run(ctx context.Context, model uiapp.Model) error {
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}
