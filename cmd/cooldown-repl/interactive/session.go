// Package interactive provides the command interpreter behind the
// cooldown REPL.
//
// A Session owns a set of named cooldowns and lerp gauges and executes
// one text command at a time, writing results to an io.Writer. It has no
// terminal dependency; the readline front end lives in Shell.
package interactive

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/cooldown/clock"
	"github.com/lixenwraith/cooldown/config"
	"github.com/lixenwraith/cooldown/cooldown"
	"github.com/lixenwraith/cooldown/lerp"
)

// Sentinel errors
var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrUsage          = errors.New("usage")
	ErrNotFound       = errors.New("no such timer")
	ErrExists         = errors.New("name already in use")
)

// Session executes REPL commands against its own timers
type Session struct {
	out   io.Writer
	clock clock.Clock
	log   zerolog.Logger

	cooldowns map[string]*cooldown.Cooldown
	gauges    map[string]*lerp.Thing
}

// NewSession creates an empty session writing to out
func NewSession(out io.Writer, clk clock.Clock, log zerolog.Logger) *Session {
	if clk == nil {
		clk = clock.Default
	}
	return &Session{
		out:       out,
		clock:     clk,
		log:       log,
		cooldowns: make(map[string]*cooldown.Cooldown),
		gauges:    make(map[string]*lerp.Thing),
	}
}

// Load adds the timers of a built profile
func (s *Session) Load(set *config.Set) {
	for _, n := range set.Cooldowns {
		s.cooldowns[n.Name] = n.Value
	}
	for _, n := range set.Lerps {
		s.gauges[n.Name] = n.Value
	}
}

// Cooldown returns a named cooldown, nil if absent
func (s *Session) Cooldown(name string) *cooldown.Cooldown {
	return s.cooldowns[name]
}

// Exec runs one command line; quit is true when the session should end
func (s *Session) Exec(line string) (quit bool, err error) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return false, nil
	}
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "quit", "exit", "q":
		return true, nil
	}

	c, ok := commands[cmd]
	if !ok {
		return false, fmt.Errorf("%w: %s (type 'help' for commands)", ErrUnknownCommand, cmd)
	}
	if len(args) < c.min || (c.max >= 0 && len(args) > c.max) {
		return false, fmt.Errorf("%w: %s %s", ErrUsage, cmd, c.usage)
	}
	return false, c.run(s, args)
}

func (s *Session) lookup(name string) (*cooldown.Cooldown, error) {
	cd, ok := s.cooldowns[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return cd, nil
}

func (s *Session) lookupGauge(name string) (*lerp.Thing, error) {
	th, ok := s.gauges[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return th, nil
}

func (s *Session) claim(name string) error {
	_, cd := s.cooldowns[name]
	_, g := s.gauges[name]
	if cd || g {
		return fmt.Errorf("%w: %q", ErrExists, name)
	}
	return nil
}

func (s *Session) names() []string {
	names := make([]string, 0, len(s.cooldowns))
	for name := range s.cooldowns {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (s *Session) gaugeNames() []string {
	names := make([]string, 0, len(s.gauges))
	for name := range s.gauges {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func sortedCommands() []string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (s *Session) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}
