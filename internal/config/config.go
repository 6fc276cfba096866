// Package config loads application configuration from an optional YAML file
// and QUIZDECK_* environment variables, with sane defaults for everything.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration loaded from files and environment
// variables.
type Config struct {
	Env      string `mapstructure:"env"`       // current application environment (local, production)
	BankPath string `mapstructure:"bank_path"` // path to the question bank JSON file
	LogFile  string `mapstructure:"log_file"`  // log destination; empty disables logging
	Quiz     Quiz   `mapstructure:"quiz"`      // quiz engine parameters
}

// Quiz contains the quiz engine's tunable parameters.
type Quiz struct {
	QuestionTimeLimit time.Duration `mapstructure:"question_time_limit"` // per-question deadline
	QuickAnswerWindow time.Duration `mapstructure:"quick_answer_window"` // quick bonus window
	MaxQuestions      int           `mapstructure:"max_questions"`       // session size cap, 0 for no cap
}

// Load reads configuration from config files and environment variables.
// A missing config file is fine; the defaults carry the stock game.
func Load() (*Config, error) {
	// Initialize Viper instance and base config options.
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	// Set default values for configuration keys.
	v.SetDefault("env", "local")
	v.SetDefault("bank_path", "questions.json")
	v.SetDefault("log_file", "")
	v.SetDefault("quiz.question_time_limit", "10s")
	v.SetDefault("quiz.quick_answer_window", "5s")
	v.SetDefault("quiz.max_questions", 10)

	// Configure environment variable handling and key mapping.
	v.SetEnvPrefix("quizdeck")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("env", "QUIZDECK_ENV")
	_ = v.BindEnv("bank_path", "QUIZDECK_BANK")
	_ = v.BindEnv("log_file", "QUIZDECK_LOG_FILE")

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// Unmarshal configuration into strongly typed struct.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.BankPath == "" {
		return errors.New("config: bank_path must not be empty")
	}
	if c.Quiz.QuestionTimeLimit <= 0 {
		return fmt.Errorf("config: quiz.question_time_limit must be positive, got %s", c.Quiz.QuestionTimeLimit)
	}
	if c.Quiz.QuickAnswerWindow < 0 {
		return fmt.Errorf("config: quiz.quick_answer_window must not be negative, got %s", c.Quiz.QuickAnswerWindow)
	}
	if c.Quiz.MaxQuestions < 0 {
		return fmt.Errorf("config: quiz.max_questions must not be negative, got %d", c.Quiz.MaxQuestions)
	}
	return nil
}
