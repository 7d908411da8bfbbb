package interactive

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/cast"

	"github.com/lixenwraith/cooldown/clock"
	"github.com/lixenwraith/cooldown/cooldown"
	"github.com/lixenwraith/cooldown/lerp"
	"github.com/lixenwraith/cooldown/vmath"
)

// ErrNoMockClock is returned by advance on a real-time session
var ErrNoMockClock = errors.New("advance needs a session started with -mock")

type command struct {
	min, max int // Argument bounds, max < 0 is unbounded
	usage    string
	run      func(s *Session, args []string) error
}

var commands = map[string]command{
	"new":     {2, 5, "<name> <seconds> [wrap] [cold] [paused]", (*Session).cmdNew},
	"copy":    {2, 2, "<src> <dst>", (*Session).cmdCopy},
	"reset":   {1, 3, "<name> [seconds] [wrap|nowrap]", (*Session).cmdReset},
	"pause":   {1, 1, "<name>", (*Session).cmdPause},
	"start":   {1, 1, "<name>", (*Session).cmdStart},
	"show":    {1, 1, "<name>", (*Session).cmdShow},
	"list":    {0, 0, "", (*Session).cmdList},
	"get":     {2, 2, "<name> <property>", (*Session).cmdGet},
	"set":     {3, 3, "<name> <property> <value>", (*Session).cmdSet},
	"cmp":     {3, 3, "<name> <op> <value|name>", (*Session).cmdCmp},
	"poll":    {1, 1, "<name>", (*Session).cmdPoll},
	"setto":   {2, 2, "<name> <seconds>", (*Session).cmdSetTo},
	"setcold": {1, 1, "<name>", (*Session).cmdSetCold},
	"lerp":    {0, -1, "<a> <b> <t>", helperCmd("lerp")},
	"invlerp": {0, -1, "<a> <b> <v>", helperCmd("invlerp")},
	"remap":   {0, -1, "<a> <b> <c> <d> <v>", helperCmd("remap")},
	"gauge":   {4, 7, "<name> <from> <to> <seconds> [ease] [repeat] [loops]", (*Session).cmdGauge},
	"value":   {1, 1, "<gauge>", (*Session).cmdValue},
	"advance": {1, 1, "<seconds>", (*Session).cmdAdvance},
	"help":    {0, 0, "", (*Session).cmdHelp},
	"?":       {0, 0, "", (*Session).cmdHelp},
}

const helpText = `Cooldown REPL Commands:
  Timers:
    new <name> <s> [wrap] [cold] [paused] - Create a cooldown
    copy <src> <dst>                      - Duplicate a cooldown
    reset <name> [s] [wrap|nowrap]        - Restart, optionally with a new duration
    pause <name> / start <name>           - Freeze or resume
    show <name>                           - Print every reading
    list                                  - List timers and gauges
    get <name> <prop>                     - Read a property
    set <name> <prop> <value>             - Write a property
    cmp <name> <op> <value|name>          - Compare (<, <=, ==, !=, >, >=)
    poll <name>                           - Next iteration step
    setto <name> <s>                      - Deprecated SetTo
    setcold <name>                        - Deprecated SetCold

  Gauges:
    gauge <name> <from> <to> <s> [ease] [repeat] [loops]
    value <gauge>                         - Current lerped value

  Math:
    lerp <a> <b> <t>
    invlerp <a> <b> <v>
    remap <a> <b> <c> <d> <v>

  General:
    advance <s>                           - Step the mock clock
    help                                  - Show this help
    quit                                  - Exit

  Properties: duration wrap paused temperature remaining normalized cold hot`

func num(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strconv.FormatFloat(math.Round(v*1000)/1000, 'f', -1, 64)
}

func parseNum(arg string) (float64, error) {
	v, err := cast.ToFloat64E(arg)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", cooldown.ErrConversion, arg)
	}
	return v, nil
}

func (s *Session) cmdNew(args []string) error {
	name := args[0]
	if err := s.claim(name); err != nil {
		return err
	}
	d, err := parseNum(args[1])
	if err != nil {
		return err
	}

	opts := []cooldown.Option{
		cooldown.WithClock(s.clock),
		cooldown.WithLogger(s.log.With().Str("cooldown", name).Logger()),
	}
	for _, flag := range args[2:] {
		switch flag {
		case "wrap":
			opts = append(opts, cooldown.WithWrap(true))
		case "cold":
			opts = append(opts, cooldown.WithCold(true))
		case "paused":
			opts = append(opts, cooldown.WithPaused(true))
		default:
			return fmt.Errorf("%w: unknown flag %q, want wrap, cold or paused", ErrUsage, flag)
		}
	}

	cd := cooldown.New(d, opts...)
	s.cooldowns[name] = cd
	s.printf("%s = %s\n", name, cd)
	return nil
}

func (s *Session) cmdCopy(args []string) error {
	src, err := s.lookup(args[0])
	if err != nil {
		return err
	}
	if err := s.claim(args[1]); err != nil {
		return err
	}
	s.cooldowns[args[1]] = cooldown.Copy(src)
	s.printf("%s = %s\n", args[1], src)
	return nil
}

func (s *Session) cmdReset(args []string) error {
	cd, err := s.lookup(args[0])
	if err != nil {
		return err
	}

	var opts []cooldown.ResetOption
	for _, arg := range args[1:] {
		switch arg {
		case "wrap":
			opts = append(opts, cooldown.ResetWrap(true))
		case "nowrap":
			opts = append(opts, cooldown.ResetWrap(false))
		default:
			d, err := parseNum(arg)
			if err != nil {
				return err
			}
			opts = append(opts, cooldown.ResetTo(d))
		}
	}

	cd.Reset(opts...)
	s.printf("%s\n", num(cd.Temperature()))
	return nil
}

func (s *Session) cmdPause(args []string) error {
	cd, err := s.lookup(args[0])
	if err != nil {
		return err
	}
	cd.Pause()
	s.printf("paused at %s\n", num(cd.Temperature()))
	return nil
}

func (s *Session) cmdStart(args []string) error {
	cd, err := s.lookup(args[0])
	if err != nil {
		return err
	}
	cd.Start()
	s.printf("running from %s\n", num(cd.Temperature()))
	return nil
}

func (s *Session) cmdShow(args []string) error {
	cd, err := s.lookup(args[0])
	if err != nil {
		return err
	}
	st := cd.State()
	s.printf("%s: %s\n", args[0], cd)
	s.printf("  temperature  %s\n", num(st.Temperature))
	s.printf("  remaining    %s\n", num(st.Remaining))
	s.printf("  normalized   %s\n", num(st.Normalized))
	s.printf("  cold         %t\n", st.Cold)
	return nil
}

func (s *Session) cmdList(_ []string) error {
	for _, name := range s.names() {
		cd := s.cooldowns[name]
		state := "hot"
		if cd.IsPaused() {
			state = "paused"
		} else if cd.Cold() {
			state = "cold"
		}
		s.printf("  %-12s %8s  %s\n", name, num(cd.Temperature()), state)
	}
	for _, name := range s.gaugeNames() {
		s.printf("  %-12s %8s  gauge\n", name, num(s.gauges[name].Value()))
	}
	return nil
}

func (s *Session) cmdGet(args []string) error {
	cd, err := s.lookup(args[0])
	if err != nil {
		return err
	}

	switch args[1] {
	case "duration":
		s.printf("%s\n", num(cd.Duration()))
	case "wrap":
		s.printf("%t\n", cd.Wrap())
	case "paused":
		s.printf("%t\n", cd.Paused())
	case "temperature":
		s.printf("%s\n", num(cd.Temperature()))
	case "remaining":
		s.printf("%s\n", num(cd.Remaining()))
	case "normalized":
		s.printf("%s\n", num(cd.Normalized()))
	case "cold":
		s.printf("%t\n", cd.Cold())
	case "hot":
		s.printf("%t\n", cd.Hot())
	default:
		return fmt.Errorf("%w: unknown property %q", ErrUsage, args[1])
	}
	return nil
}

func (s *Session) cmdSet(args []string) error {
	cd, err := s.lookup(args[0])
	if err != nil {
		return err
	}
	prop, raw := args[1], args[2]

	switch prop {
	case "wrap", "paused":
		b, err := cast.ToBoolE(raw)
		if err != nil {
			return fmt.Errorf("%w: %q is not a bool", ErrUsage, raw)
		}
		if prop == "wrap" {
			cd.SetWrap(b)
		} else {
			cd.SetPaused(b)
		}
		return nil
	}

	v, err := parseNum(raw)
	if err != nil {
		return err
	}
	switch prop {
	case "duration":
		cd.SetDuration(v)
	case "temperature":
		cd.SetTemperature(v)
	case "remaining":
		cd.SetRemaining(v)
	case "normalized":
		cd.SetNormalized(v)
	default:
		return fmt.Errorf("%w: %q is read-only or unknown", ErrUsage, prop)
	}
	return nil
}

func (s *Session) cmdCmp(args []string) error {
	cd, err := s.lookup(args[0])
	if err != nil {
		return err
	}
	op, err := cooldown.ParseOp(args[1])
	if err != nil {
		return err
	}

	var other any = args[2]
	if o, ok := s.cooldowns[args[2]]; ok {
		other = o
	}
	ok, err := cd.Compare(op, other)
	if err != nil {
		return err
	}
	s.printf("%t\n", ok)
	return nil
}

func (s *Session) cmdPoll(args []string) error {
	cd, err := s.lookup(args[0])
	if err != nil {
		return err
	}
	if t, ok := cd.Next(); ok {
		s.printf("%s\n", num(t))
	} else {
		s.printf("cold\n")
	}
	return nil
}

func (s *Session) cmdSetTo(args []string) error {
	cd, err := s.lookup(args[0])
	if err != nil {
		return err
	}
	v, err := parseNum(args[1])
	if err != nil {
		return err
	}
	return cd.SetTo(v)
}

func (s *Session) cmdSetCold(args []string) error {
	cd, err := s.lookup(args[0])
	if err != nil {
		return err
	}
	cd.SetCold()
	return nil
}

func helperCmd(name string) func(*Session, []string) error {
	return func(s *Session, args []string) error {
		vals := make([]float64, len(args))
		for i, arg := range args {
			v, err := parseNum(arg)
			if err != nil {
				return err
			}
			vals[i] = v
		}
		v, err := vmath.Call(name, vals...)
		if err != nil {
			return err
		}
		s.printf("%s\n", num(v))
		return nil
	}
}

func (s *Session) cmdGauge(args []string) error {
	name := args[0]
	if err := s.claim(name); err != nil {
		return err
	}

	var vals [3]float64
	for i, arg := range args[1:4] {
		v, err := parseNum(arg)
		if err != nil {
			return err
		}
		vals[i] = v
	}

	opts := []lerp.Option{lerp.WithClock(s.clock)}
	if len(args) > 4 {
		ease, ok := vmath.EaseByName(args[4])
		if !ok {
			return fmt.Errorf("%w: unknown ease %q", ErrUsage, args[4])
		}
		opts = append(opts, lerp.WithEase(ease))
	}
	if len(args) > 5 {
		mode, err := lerp.ParseRepeat(args[5])
		if err != nil {
			return err
		}
		opts = append(opts, lerp.WithRepeat(mode))
	}
	if len(args) > 6 {
		n, err := cast.ToIntE(args[6])
		if err != nil {
			return fmt.Errorf("%w: loops %q", ErrUsage, args[6])
		}
		opts = append(opts, lerp.WithLoops(n))
	}

	th := lerp.New(vals[0], vals[1], vals[2], opts...)
	s.gauges[name] = th
	s.printf("%s = %s\n", name, num(th.Value()))
	return nil
}

func (s *Session) cmdValue(args []string) error {
	th, err := s.lookupGauge(args[0])
	if err != nil {
		return err
	}
	s.printf("%s\n", num(th.Value()))
	return nil
}

func (s *Session) cmdAdvance(args []string) error {
	m, ok := s.clock.(*clock.Mock)
	if !ok {
		return ErrNoMockClock
	}
	v, err := parseNum(args[0])
	if err != nil {
		return err
	}
	m.AdvanceSeconds(v)
	return nil
}

func (s *Session) cmdHelp(_ []string) error {
	s.printf("%s\n", helpText)
	return nil
}
