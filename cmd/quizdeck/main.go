package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/abhisek/quizdeck/cmd"
)

func main() {
	// Pick up QUIZDECK_* variables from a local .env file when one exists.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
