package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minhyannv/medchat-go/pkg/chatbot"
	loggerpkg "github.com/minhyannv/medchat-go/pkg/logger"
)

const (
	exitSentinel = "exit"
	maxLineBytes = 1024 * 1024
)

// exchanger runs one stateless chat exchange.
type exchanger interface {
	Exchange(ctx context.Context, input string) chatbot.Exchange
}

// replOptions configures REPL behavior.
type replOptions struct {
	Logger loggerpkg.Logger
}

// runREPL reads one line per turn and prints exactly one reply or error line for it.
// It returns nil when the operator types the exit sentinel or input ends.
func runREPL(ctx context.Context, bot exchanger, opts replOptions, in io.Reader, out io.Writer) error {
	if bot == nil {
		return fmt.Errorf("chatbot is required")
	}
	if in == nil {
		return fmt.Errorf("input reader is required")
	}
	if out == nil {
		out = io.Discard
	}
	if ctx == nil {
		ctx = context.Background()
	}

	loggerpkg.Debug(opts.Logger, "repl start", nil)

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	printWelcome(out)

	for {
		_, _ = fmt.Fprint(out, "You: ")
		if !scanner.Scan() {
			break
		}

		input := scanner.Text()
		if isExit(input) {
			loggerpkg.Debug(opts.Logger, "exit requested", nil)
			return nil
		}

		ex := bot.Exchange(ctx, input)
		if !ex.OK() {
			_, _ = fmt.Fprintf(out, "Bot: Sorry, I had an issue talking to the API: %v\n\n", ex.Err)
			continue
		}
		_, _ = fmt.Fprintf(out, "Bot: %s\n\n", ex.Reply)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}

func isExit(input string) bool {
	return strings.EqualFold(input, exitSentinel)
}

func printWelcome(out io.Writer) {
	_, _ = fmt.Fprintln(out, "Medical Chatbot (type 'exit' to quit)")
	_, _ = fmt.Fprintln(out)
}
