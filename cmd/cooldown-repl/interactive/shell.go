package interactive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// Shell drives a Session from a readline prompt
type Shell struct {
	rl *readline.Instance
}

// NewShell creates the readline instance
func NewShell() (*Shell, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "cooldown> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete:    completer(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}
	return &Shell{rl: rl}, nil
}

// Stdout returns a writer that coordinates with the prompt
func (sh *Shell) Stdout() io.Writer {
	return sh.rl.Stdout()
}

// Stderr returns a writer that coordinates with the prompt, used for logs
func (sh *Shell) Stderr() io.Writer {
	return sh.rl.Stderr()
}

// Run reads commands until quit, EOF or ctx is done
func (sh *Shell) Run(ctx context.Context, s *Session) {
	defer sh.rl.Close()

	fmt.Fprintln(sh.rl.Stdout(), "Type 'help' for commands")

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := sh.rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			fmt.Fprintln(sh.rl.Stdout(), "Exiting...")
			return
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		quit, err := s.Exec(input)
		if err != nil {
			fmt.Fprintf(sh.rl.Stdout(), "Error: %v\n", err)
		}
		if quit {
			fmt.Fprintln(sh.rl.Stdout(), "Exiting...")
			return
		}
	}
}

func completer() *readline.PrefixCompleter {
	items := make([]readline.PrefixCompleterInterface, 0, len(commands)+1)
	for _, name := range sortedCommands() {
		items = append(items, readline.PcItem(name))
	}
	items = append(items, readline.PcItem("quit"))
	return readline.NewPrefixCompleter(items...)
}
