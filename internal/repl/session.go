package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/DjordjeVuckovic/in2post/internal/calc"
)

const (
	DefaultPrompt = "Enter an infix expression (or 'exit' to quit): "
	ExitCommand   = "exit"
)

// Stats counts what a session processed.
type Stats struct {
	Lines  int
	OK     int
	Failed int
}

// Session reads one expression per line, prints its postfix form and value,
// and reports failures without stopping.
type Session struct {
	calc   *calc.Calculator
	prompt string
}

type Option func(*Session)

// WithPrompt sets the prompt written before each line. An empty prompt
// disables it.
func WithPrompt(prompt string) Option {
	return func(s *Session) {
		s.prompt = prompt
	}
}

func NewSession(c *calc.Calculator, opts ...Option) *Session {
	s := &Session{calc: c, prompt: DefaultPrompt}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run processes lines from in until a line reading exactly "exit", end of
// input or ctx is done.
// Results go to out and error messages to errOut.
func (s *Session) Run(ctx context.Context, in io.Reader, out, errOut io.Writer) (Stats, error) {
	var stats Stats
	scanner := bufio.NewScanner(in)

	for {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		if s.prompt != "" {
			fmt.Fprint(out, s.prompt)
		}
		if !scanner.Scan() {
			break
		}

		line := strings.TrimRight(scanner.Text(), "\r")
		if line == ExitCommand {
			slog.Debug("Exit requested")
			break
		}

		stats.Lines++
		if strings.TrimSpace(line) == "" {
			stats.Failed++
			fmt.Fprintln(errOut, "Error: Empty input. Please enter a valid expression.")
			continue
		}

		res, err := s.calc.Calculate(line)
		if err != nil {
			stats.Failed++
			slog.Debug("Expression rejected", "expression", line, "error", err)
			fmt.Fprintf(errOut, "Error: %v\n", err)
			continue
		}

		stats.OK++
		fmt.Fprintf(out, "Postfix: %s\n", res.Postfix)
		fmt.Fprintf(out, "Result: %s\n", res.FormatValue())
	}

	if err := scanner.Err(); err != nil {
		return stats, fmt.Errorf("read input: %w", err)
	}
	return stats, nil
}
