package cmd

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizdeck/internal/app"
	"github.com/abhisek/quizdeck/internal/bank"
	"github.com/abhisek/quizdeck/internal/config"
	"github.com/abhisek/quizdeck/internal/logger"
	"github.com/abhisek/quizdeck/internal/quiz"
)

// runApp loads config and the question bank, builds dependencies, and
// launches the TUI. A non-nil start skips the menus and opens mid-quiz.
func runApp(cmd *cobra.Command, start *app.StartOptions) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logger.New(cfg)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer log.Sync()

	bankPath := resolveBankPath(cmd, cfg)
	created, err := bank.EnsureFile(bankPath)
	if err != nil {
		return err
	}
	if created {
		fmt.Fprintf(os.Stderr, "Created sample question bank at %s\n", bankPath)
	}

	bnk, err := bank.LoadFile(bankPath)
	if err != nil {
		return err
	}

	seed, _ := cmd.Flags().GetInt64("seed")
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	opts := app.Options{
		Bank: bnk,
		Settings: quiz.Settings{
			TimeLimit:    cfg.Quiz.QuestionTimeLimit,
			QuickWindow:  cfg.Quiz.QuickAnswerWindow,
			MaxQuestions: cfg.Quiz.MaxQuestions,
		},
		Logger:    log,
		Rand:      rand.New(rand.NewSource(seed)),
		AutoStart: start,
	}
	return app.Run(opts)
}
