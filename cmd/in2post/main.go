// Command in2post reads infix expressions line by line, prints their postfix
// form and evaluates them.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/DjordjeVuckovic/in2post/internal/calc"
	"github.com/DjordjeVuckovic/in2post/internal/repl"
	"golang.org/x/term"
)

func main() {
	cfg := parseFlags()

	level, err := cfg.level()
	if err != nil {
		slog.Error("Invalid flags", "error", err)
		os.Exit(2)
	}
	slog.SetLogLoggerLevel(level)

	showPrompt, err := cfg.showPrompt(term.IsTerminal(int(os.Stdin.Fd())))
	if err != nil {
		slog.Error("Invalid flags", "error", err)
		os.Exit(2)
	}

	var opts []repl.Option
	if !showPrompt {
		opts = append(opts, repl.WithPrompt(""))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Unblock the pending read on interrupt.
	go func() {
		<-ctx.Done()
		_ = os.Stdin.Close()
	}()

	session := repl.NewSession(calc.New(), opts...)
	stats, err := session.Run(ctx, os.Stdin, os.Stdout, os.Stderr)
	slog.Info("Session finished", "lines", stats.Lines, "ok", stats.OK, "failed", stats.Failed)
	if err != nil && ctx.Err() == nil {
		slog.Error("Session failed", "error", err)
		os.Exit(1)
	}
}
