package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizdeck/internal/app"
	"github.com/abhisek/quizdeck/internal/bank"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a quiz straight away",
	Long:  "Start a quiz immediately with the given filters, skipping the menu screens.",
	RunE: func(cmd *cobra.Command, args []string) error {
		start := &app.StartOptions{}
		start.Category, _ = cmd.Flags().GetString("category")

		// An unknown difficulty is played unfiltered rather than refused;
		// the interactive setup screen is where the three levels are a
		// forced choice.
		if raw, _ := cmd.Flags().GetString("difficulty"); raw != "" {
			level, ok := bank.ParseDifficulty(raw)
			if !ok {
				fmt.Fprintf(os.Stderr, "Unknown difficulty %q, playing all difficulties.\n", raw)
			}
			start.Difficulty = level
		}

		n, _ := cmd.Flags().GetInt("questions")
		if n < 0 {
			return fmt.Errorf("questions must not be negative, got %d", n)
		}
		start.Questions = n

		return runApp(cmd, start)
	},
}

func init() {
	playCmd.Flags().String("category", "", "Only ask questions from this category")
	playCmd.Flags().String("difficulty", "", "Only ask questions of this difficulty (easy, medium, hard)")
	playCmd.Flags().Int("questions", 0, "Number of questions to ask (0 uses the configured default)")
}
