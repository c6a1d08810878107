// Command griddemo runs a calculator on the cellgrid runtime
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/cellgrid/bell"
	"github.com/lixenwraith/cellgrid/config"
	"github.com/lixenwraith/cellgrid/engine"
	"github.com/lixenwraith/cellgrid/frame"
	"github.com/lixenwraith/cellgrid/terminal"
	"github.com/lixenwraith/cellgrid/terminal/tcellterm"
)

type flags struct {
	configPath string
	backend    string
	color      string
	logFile    string
	noMouse    bool
	dumpConfig bool
}

func main() {
	// Restore the terminal before printing a crash
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mgriddemo crashed: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	cmd := &cobra.Command{
		Use:          "griddemo",
		Short:        "Calculator demo for the cellgrid terminal runtime",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}
			if f.dumpConfig {
				return cfg.Write(cmd.OutOrStdout())
			}
			return run(cmd.Context(), cfg)
		},
	}
	bindFlags(cmd, f)
	return cmd
}

func bindFlags(cmd *cobra.Command, f *flags) {
	fl := cmd.Flags()
	fl.StringVarP(&f.configPath, "config", "c", "", "TOML config file")
	fl.StringVar(&f.backend, "backend", "", "Output backend: ansi or tcell")
	fl.StringVar(&f.color, "color", "", "Color mode: auto, none, 16, 256, truecolor")
	fl.StringVar(&f.logFile, "log", "", "Write the log to this file")
	fl.BoolVar(&f.noMouse, "no-mouse", false, "Disable mouse reporting")
	fl.BoolVar(&f.dumpConfig, "dump-config", false, "Print the effective config and exit")
}

// loadConfig reads the config file, then applies flags that were set explicitly
func loadConfig(cmd *cobra.Command, f *flags) (config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		var err error
		if cfg, err = config.Load(f.configPath); err != nil {
			return cfg, err
		}
	}

	fl := cmd.Flags()
	if fl.Changed("backend") {
		cfg.Backend = f.backend
	}
	if fl.Changed("color") {
		cfg.ColorMode = f.color
	}
	if fl.Changed("log") {
		cfg.LogFile = f.logFile
	}
	if f.noMouse {
		cfg.Mouse = false
	}
	return cfg, cfg.Validate()
}

// setupLogging sends the log to path, or discards it; the screen owns stdout
func setupLogging(path string) (io.Closer, error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	log.SetOutput(f)
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds)
	return f, nil
}

// screen is one backend: a frame sink, an input pump and its teardown
type screen struct {
	sink  frame.Sink
	pump  func(ctx context.Context, c *engine.Compositor) error
	bell  bell.Bell
	close func()
}

func openScreen(cfg config.Config) (*screen, error) {
	switch cfg.Backend {
	case config.BackendTcell:
		s, err := tcellterm.Open(tcellterm.Options{Mouse: cfg.Mouse, Focus: cfg.FocusReporting})
		if err != nil {
			return nil, err
		}
		return &screen{
			sink: s,
			pump: func(ctx context.Context, c *engine.Compositor) error {
				return s.Pump(ctx, c.Queue())
			},
			bell:  bell.Func(s.Beep),
			close: s.Close,
		}, nil
	default:
		sess, err := terminal.Open(cfg.SessionOptions())
		if err != nil {
			return nil, err
		}
		log.Printf("terminal %s color, mouse %s", sess.ColorMode(), sess.MouseMode())
		return &screen{
			sink: sess.Writer(),
			pump: func(ctx context.Context, c *engine.Compositor) error {
				return sess.Reader(c.Queue()).Run(ctx)
			},
			bell:  bell.Terminal{W: os.Stdout},
			close: func() { sess.Close() },
		}, nil
	}
}

func newBell(cfg config.Bell, term bell.Bell) (bell.Bell, func()) {
	var b bell.Bell
	done := func() {}
	switch cfg.Mode {
	case config.BellNone:
		b = bell.None{}
	case config.BellTone:
		tone := bell.NewTone(cfg.Frequency, cfg.Duration, cfg.Volume)
		b, done = tone, tone.Close
	default:
		b = term
	}
	return bell.Limit(b, cfg.Interval), done
}

func run(ctx context.Context, cfg config.Config) error {
	logs, err := setupLogging(cfg.LogFile)
	if err != nil {
		return err
	}
	defer logs.Close()

	opts, err := cfg.EngineOptions()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	scr, err := openScreen(cfg)
	if err != nil {
		return fmt.Errorf("open %s backend: %w", cfg.Backend, err)
	}
	defer scr.close()

	b, closeBell := newBell(cfg.Bell, scr.bell)
	defer closeBell()

	d := newDemo(cfg.Title, cfg.BorderLine(), cfg.Theme(), b)
	comp := engine.New(d.root, scr.sink, opts)
	comp.AddTimer(clockTimer, time.Second)

	g, gctx := errgroup.WithContext(ctx)
	loopCtx, cancelLoop := context.WithCancel(gctx)
	defer cancelLoop()

	g.Go(func() error {
		err := scr.pump(loopCtx, comp)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})
	g.Go(func() (err error) {
		// A clean quit stops the input pump too
		defer cancelLoop()
		defer func() {
			if r := recover(); r != nil {
				terminal.EmergencyReset(os.Stdout)
				log.Printf("compositor panic: %v\n%s", r, debug.Stack())
				err = fmt.Errorf("compositor panic: %v", r)
			}
		}()
		err = comp.Run(loopCtx)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})

	err = g.Wait()
	log.Printf("exit after %d frames: %v", comp.Frames(), err)
	log.Printf("stats: %s", strings.Join(comp.Metrics().Snapshot(), " "))
	return err
}
