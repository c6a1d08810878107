// Package config loads the runtime settings of a cellgrid application from
// TOML and turns them into engine, terminal and theme options.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/cellgrid/engine"
	"github.com/lixenwraith/cellgrid/event"
	"github.com/lixenwraith/cellgrid/frame"
	"github.com/lixenwraith/cellgrid/style"
	"github.com/lixenwraith/cellgrid/terminal"
	"github.com/lixenwraith/cellgrid/widget"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

// Backend names
const (
	BackendANSI  = "ansi"
	BackendTcell = "tcell"
)

// Bell modes
const (
	BellNone     = "none"
	BellTerminal = "terminal"
	BellTone     = "tone"
)

// Config is the on-disk application configuration
type Config struct {
	Title   string `toml:"title"`
	Backend string `toml:"backend"`

	// ColorMode is "auto", "none", "16", "256" or "truecolor"
	ColorMode  string `toml:"color_mode"`
	Foreground string `toml:"foreground"`
	Background string `toml:"background"`
	// Border is the root frame line: single, double, rounded, heavy or none
	Border string `toml:"border"`

	TickRate       time.Duration `toml:"tick_rate"`
	Mouse          bool          `toml:"mouse"`
	AltScreen      bool          `toml:"alt_screen"`
	FocusReporting bool          `toml:"focus_reporting"`

	QueueSize            int      `toml:"queue_size"`
	MaxEventsPerTick     int      `toml:"max_events_per_tick"`
	MaxConsecutiveErrors int      `toml:"max_consecutive_errors"`
	FocusTraversal       bool     `toml:"focus_traversal"`
	QuitKeys             []string `toml:"quit_keys"`

	// LogFile receives the log; empty discards it
	LogFile string `toml:"log_file"`

	Bell Bell `toml:"bell"`
}

// Bell configures the feedback played when input is refused
type Bell struct {
	Mode      string        `toml:"mode"`
	Frequency float64       `toml:"frequency"`
	Duration  time.Duration `toml:"duration"`
	Volume    float64       `toml:"volume"`
	// Interval is the minimum gap between two rings
	Interval time.Duration `toml:"interval"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Title:                "cellgrid",
		Backend:              BackendANSI,
		ColorMode:            "auto",
		Foreground:           "white",
		Background:           "black",
		Border:               "rounded",
		TickRate:             engine.DefaultTickInterval,
		Mouse:                true,
		AltScreen:            true,
		QueueSize:            event.DefaultQueueSize,
		MaxConsecutiveErrors: 10,
		FocusTraversal:       true,
		QuitKeys:             []string{"ctrl+c", "ctrl+q"},
		Bell: Bell{
			Mode:      BellTerminal,
			Frequency: 880,
			Duration:  50 * time.Millisecond,
			Volume:    0.5,
			Interval:  100 * time.Millisecond,
		},
	}
}

// Load reads path over the defaults. A missing file is reported with an error
// matching os.ErrNotExist so callers can fall back to Default
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), err
	}
	cfg, err := Parse(string(data))
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML over the defaults and validates the result.
// Unknown keys are rejected
func Parse(data string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return Default(), err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Default(), fmt.Errorf("%w: unknown keys %s", ErrInvalid, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// Write encodes cfg as TOML
func (c Config) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// Validate reports every invalid field at once
func (c Config) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	switch c.Backend {
	case BackendANSI, BackendTcell:
	default:
		fail("backend %q", c.Backend)
	}
	if c.ColorMode != "auto" {
		if _, ok := terminal.ParseColorMode(c.ColorMode); !ok {
			fail("color_mode %q", c.ColorMode)
		}
	}
	if _, err := style.ParseColor(c.Foreground); err != nil {
		fail("foreground: %v", err)
	}
	if _, err := style.ParseColor(c.Background); err != nil {
		fail("background: %v", err)
	}
	if _, ok := frame.ParseLineType(c.Border); !ok {
		fail("border %q", c.Border)
	}
	if c.TickRate <= 0 || c.TickRate > time.Second {
		fail("tick_rate %s outside (0, 1s]", c.TickRate)
	}
	if c.QueueSize <= 0 {
		fail("queue_size %d", c.QueueSize)
	}
	if c.MaxEventsPerTick < 0 {
		fail("max_events_per_tick %d", c.MaxEventsPerTick)
	}
	if c.MaxConsecutiveErrors < 0 {
		fail("max_consecutive_errors %d", c.MaxConsecutiveErrors)
	}
	for _, k := range c.QuitKeys {
		if _, err := event.ParseBinding(k); err != nil {
			fail("quit_keys: %v", err)
		}
	}

	switch c.Bell.Mode {
	case BellNone, BellTerminal:
	case BellTone:
		if c.Bell.Frequency < 20 || c.Bell.Frequency > 20000 {
			fail("bell.frequency %g outside [20, 20000]", c.Bell.Frequency)
		}
		if c.Bell.Duration <= 0 {
			fail("bell.duration %s", c.Bell.Duration)
		}
		if c.Bell.Volume < 0 || c.Bell.Volume > 1 {
			fail("bell.volume %g outside [0, 1]", c.Bell.Volume)
		}
	default:
		fail("bell.mode %q", c.Bell.Mode)
	}
	if c.Bell.Interval < 0 {
		fail("bell.interval %s", c.Bell.Interval)
	}

	return errors.Join(errs...)
}

// QuitBindings parses QuitKeys; call after Validate
func (c Config) QuitBindings() ([]event.Binding, error) {
	out := make([]event.Binding, 0, len(c.QuitKeys))
	for _, k := range c.QuitKeys {
		b, err := event.ParseBinding(k)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

// EngineOptions maps the loop settings onto engine.Options
func (c Config) EngineOptions() (engine.Options, error) {
	quit, err := c.QuitBindings()
	if err != nil {
		return engine.Options{}, err
	}
	return engine.Options{
		TickInterval:         c.TickRate,
		QueueSize:            c.QueueSize,
		MaxEventsPerTick:     c.MaxEventsPerTick,
		MaxConsecutiveErrors: c.MaxConsecutiveErrors,
		QuitKeys:             quit,
		FocusTraversal:       c.FocusTraversal,
	}, nil
}

// MouseMode is the reporting mode for the ANSI backend: clicks, drags and
// motion for hover when enabled
func (c Config) MouseMode() terminal.MouseMode {
	if !c.Mouse {
		return terminal.MouseModeNone
	}
	return terminal.MouseModeAll
}

// SessionOptions maps the display settings onto terminal.Options
func (c Config) SessionOptions() terminal.Options {
	return terminal.Options{
		AltScreen:      c.AltScreen,
		Mouse:          c.MouseMode(),
		FocusReporting: c.FocusReporting,
		Color:          c.ColorMode,
	}
}

// BorderLine returns the configured line set, rounded when unknown
func (c Config) BorderLine() frame.LineType {
	if lt, ok := frame.ParseLineType(c.Border); ok {
		return lt
	}
	return frame.LineRounded
}

// Theme derives the widget theme from the configured colors
func (c Config) Theme() widget.Theme {
	fg, err := style.ParseColor(c.Foreground)
	if err != nil {
		fg = style.White
	}
	bg, err := style.ParseColor(c.Background)
	if err != nil {
		bg = style.Black
	}
	return widget.ThemeFrom(fg, bg)
}
