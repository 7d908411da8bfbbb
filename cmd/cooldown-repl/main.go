// Command cooldown-repl is an interactive shell for creating, inspecting and
// comparing cooldown timers.
//
// Usage:
//
//	cooldown-repl [flags]
//
// Flags:
//
//	-profile string    YAML profile with cooldowns and lerps to preload
//	-log-level string  Log level: debug, info, warn, error (overrides the profile)
//	-mock              Use a manual clock stepped with the advance command
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lixenwraith/cooldown/clock"
	"github.com/lixenwraith/cooldown/cmd/cooldown-repl/interactive"
	"github.com/lixenwraith/cooldown/config"
	"github.com/lixenwraith/cooldown/logger"
)

func main() {
	profilePath := flag.String("profile", "", "YAML profile to preload")
	logLevel := flag.String("log-level", "", "log level: debug, info, warn, error")
	mock := flag.Bool("mock", false, "use a manual clock stepped with 'advance'")
	flag.Parse()

	if err := run(*profilePath, *logLevel, *mock); err != nil {
		fmt.Fprintf(os.Stderr, "cooldown-repl: %v\n", err)
		os.Exit(1)
	}
}

func run(profilePath, logLevel string, mock bool) error {
	profile := &config.Profile{LogLevel: "info"}
	if profilePath != "" {
		p, err := config.Load(profilePath)
		if err != nil {
			return err
		}
		profile = p
	}
	if logLevel != "" {
		profile.LogLevel = logLevel
	}
	level, err := logger.ParseLevel(profile.LogLevel)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}

	var clk clock.Clock = clock.NewSystem()
	if mock {
		clk = clock.NewMock(time.Now())
	}

	sh, err := interactive.NewShell()
	if err != nil {
		return err
	}

	log := logger.Configure(sh.Stderr(), level)
	session := interactive.NewSession(sh.Stdout(), clk, *log)
	session.Load(profile.Build(clk, *log))

	log.Debug().
		Str("profile", profilePath).
		Int("cooldowns", len(profile.Cooldowns)).
		Int("lerps", len(profile.Lerps)).
		Bool("mock", mock).
		Msg("session ready")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sh.Run(ctx, session)
	return nil
}
