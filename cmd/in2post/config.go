package main

import (
	"flag"
	"fmt"
	"log/slog"
)

type cliConfig struct {
	Prompt   string
	LogLevel string
}

func parseFlags() cliConfig {
	cfg := cliConfig{}

	flag.StringVar(&cfg.Prompt, "prompt", "auto", "Prompt mode: auto (only on a terminal), always, or never")
	flag.StringVar(&cfg.LogLevel, "log-level", "warn", "Log level: debug, info, warn, or error")

	flag.Parse()
	return cfg
}

func (c cliConfig) level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// showPrompt resolves the prompt mode against whether stdin is interactive.
func (c cliConfig) showPrompt(interactive bool) (bool, error) {
	switch c.Prompt {
	case "auto":
		return interactive, nil
	case "always":
		return true, nil
	case "never":
		return false, nil
	default:
		return false, fmt.Errorf("invalid prompt mode %q", c.Prompt)
	}
}
