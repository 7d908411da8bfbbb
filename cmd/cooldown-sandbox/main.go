// Command cooldown-sandbox shows a profile's cooldowns as live bars in the
// terminal, with a chime whenever one comes off cooldown.
//
// Usage:
//
//	cooldown-sandbox [-profile file.yaml] [-log file] [-mute]
//
// Keys: 1-9 or a profile key select, space fires the selection, r resets,
// w resets with wrap, p pauses the selection, P pauses everything, q quits.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/cooldown/audio"
	"github.com/lixenwraith/cooldown/clock"
	"github.com/lixenwraith/cooldown/config"
	"github.com/lixenwraith/cooldown/logger"
)

const frameInterval = 16 * time.Millisecond // ~60 FPS

func main() {
	profilePath := flag.String("profile", "", "YAML profile, built-in demo when empty")
	logPath := flag.String("log", "", "write JSON logs to this file")
	mute := flag.Bool("mute", false, "disable sound")
	flag.Parse()

	if err := run(*profilePath, *logPath, *mute); err != nil {
		fmt.Fprintf(os.Stderr, "cooldown-sandbox: %v\n", err)
		os.Exit(1)
	}
}

func run(profilePath, logPath string, mute bool) error {
	profile := config.Default()
	if profilePath != "" {
		p, err := config.Load(profilePath)
		if err != nil {
			return err
		}
		profile = p
	}
	if mute {
		profile.Audio.Enabled = false
	}

	var logOut io.Writer = io.Discard
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	log := logger.NewFile(logOut, profile.Level())

	player := audio.NewPlayer(profile.Audio)
	if err := player.Init(); err != nil {
		// Non-fatal, the sandbox runs silent
		log.Warn().Err(err).Msg("audio initialization failed")
	}
	defer player.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.HideCursor()

	sb := NewSandbox(profile, clock.NewPausable(clock.NewSystem()), player, log)
	log.Info().
		Int("cooldowns", len(sb.slots)).
		Int("lerps", len(sb.gauges)).
		Bool("audio", player.Enabled()).
		Msg("sandbox started")

	loop(screen, sb, log)
	return nil
}

func loop(screen tcell.Screen, sb *Sandbox, log zerolog.Logger) {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go pumpEvents(screen.PollEvent, eventChan, done)

	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !sb.HandleKey(ev) {
					log.Info().Msg("sandbox stopped")
					return
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-ticker.C:
			sb.Tick()
			sb.Draw(screen)
		}
	}
}

// pumpEvents forwards polled events to out until poll returns nil or done is
// closed
func pumpEvents(poll func() tcell.Event, out chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := poll()
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		case <-done:
			return
		}
	}
}
