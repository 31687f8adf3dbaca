package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	credentialapp "github.com/muhammadheryan/femnest/application/credential"
	profileapp "github.com/muhammadheryan/femnest/application/profile"
	questionapp "github.com/muhammadheryan/femnest/application/question"
	"github.com/muhammadheryan/femnest/cmd/config"
	questionRepo "github.com/muhammadheryan/femnest/repository/question"
	"github.com/muhammadheryan/femnest/ui"
	"github.com/muhammadheryan/femnest/utils/logger"
	validatorx "github.com/muhammadheryan/femnest/utils/validator"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	fast        bool
	environment string
)

var rootCmd = &cobra.Command{
	Use:   "femnest",
	Short: "FemNest - roommate matching in the terminal",
	Long: `Runs the FemNest forms in the terminal: sign in or sign up, get suggested
profile questions, then fill in your personal details.

The demo account is read from DEMO_EMAIL / DEMO_PASSWORD (.env is loaded if present).`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().BoolVar(&fast, "fast", false, "Skip the simulated round-trip delays")
	rootCmd.Flags().StringVar(&environment, "env", "", "Override APP_ENV (development or production)")
}

func run(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	if environment != "" {
		cfg.Environment = environment
	}
	if fast {
		cfg.Simulation = config.SimulationConfig{}
	}

	// the screen belongs to the program; logs go to LOG_FILE or nowhere
	logOpts := []logger.Option{logger.WithDiscard()}
	if cfg.LogFile != "" {
		logOpts = []logger.Option{logger.WithOutputPath(cfg.LogFile)}
	}
	if err := logger.Init(cfg.Environment, logOpts...); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Close()

	validatorx.Init()

	QuestionRepo, err := questionRepo.NewQuestionRepository()
	if err != nil {
		return fmt.Errorf("load question catalogue: %w", err)
	}
	CredentialApp, err := credentialapp.NewCredentialApp(cfg)
	if err != nil {
		return fmt.Errorf("init credential app: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	model := ui.New(ctx, ui.Deps{
		Credential: CredentialApp,
		Question:   questionapp.NewQuestionApp(cfg, QuestionRepo),
		Profile:    profileapp.NewProfileApp(cfg),
		ToastTTL:   cfg.UI.ToastTTL,
	})

	logger.Info("Starting terminal client", zap.String("env", cfg.Environment), zap.Bool("fast", fast))
	_, err = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
