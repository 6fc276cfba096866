package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/quizdeck/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "quizdeck",
	Short: "Timed multiple-choice quiz for the terminal",
	Long:  "Quizdeck is an arcade-styled terminal quiz with categories, difficulty levels, and a countdown on every question.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, nil)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("bank", "", "Path to the question bank JSON file (overrides QUIZDECK_BANK env var)")
	rootCmd.PersistentFlags().Int64("seed", 0, "Random seed for question selection (0 uses the clock)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveBankPath returns the question bank path using the --bank flag
// (highest priority), then the QUIZDECK_BANK env var or config file.
func resolveBankPath(cmd *cobra.Command, cfg *config.Config) string {
	if p, _ := cmd.Flags().GetString("bank"); p != "" {
		return p
	}
	return cfg.BankPath
}
