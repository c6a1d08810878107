package terminal

import (
	"errors"
	"io"
	"os"
	"sync"
)

// ErrClosed is returned by operations on a closed Session
var ErrClosed = errors.New("terminal: session closed")

// Options configures Open
type Options struct {
	// In and Out default to os.Stdin and os.Stdout
	In  *os.File
	Out *os.File

	AltScreen bool
	Mouse     MouseMode

	// FocusReporting enables FocusGained/FocusLost events
	FocusReporting bool

	// Color is a ColorMode name; "" or "auto" detects from the environment
	Color string
}

// Session is the scoped terminal state: raw mode, alternate screen, hidden
// cursor, auto-wrap off and optional mouse reporting. Close restores all of it
type Session struct {
	backend Backend
	writer  *Writer
	opts    Options

	mu     sync.Mutex
	closed bool
	mouse  MouseMode
}

// Open enters raw mode and prepares the screen for frame output
func Open(opts Options) (*Session, error) {
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	return open(newBackend(opts.In, opts.Out), opts)
}

func open(b Backend, opts Options) (*Session, error) {
	mode, ok := ParseColorMode(opts.Color)
	if !ok {
		var out io.Writer = io.Discard
		if opts.Out != nil {
			out = opts.Out
		}
		mode = DetectColorMode(out)
	}

	if err := b.Init(); err != nil {
		return nil, err
	}

	s := &Session{
		backend: b,
		writer:  NewWriter(b, mode, b.Size),
		opts:    opts,
	}

	seqs := [][]byte{}
	if opts.AltScreen {
		seqs = append(seqs, csiAltScreenEnter)
	}
	seqs = append(seqs, csiCursorHide, csiAutoWrapOff)
	if opts.FocusReporting {
		seqs = append(seqs, csiFocusOn)
	}
	err := s.writer.writeRaw(seqs...)
	if err == nil {
		err = s.writer.Clear()
	}
	if err == nil {
		err = s.setMouseMode(opts.Mouse)
	}
	if err != nil {
		b.Fini()
		return nil, err
	}
	return s, nil
}

// Writer returns the frame sink for this session; it must be used from one goroutine
func (s *Session) Writer() *Writer { return s.writer }

func (s *Session) Size() (int, int) { return s.backend.Size() }

func (s *Session) ColorMode() ColorMode { return s.writer.ColorMode() }

// MouseMode returns the active reporting mode
func (s *Session) MouseMode() MouseMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mouse
}

// SetMouseMode switches mouse reporting, writing only the mode changes
func (s *Session) SetMouseMode(mode MouseMode) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	return s.setMouseMode(mode)
}

func (s *Session) setMouseMode(mode MouseMode) error {
	old := s.mouse
	if old == mode {
		return nil
	}
	s.mouse = mode

	var seqs [][]byte
	// Disable in reverse order of enable
	if old&MouseModeMotion != 0 && mode&MouseModeMotion == 0 {
		seqs = append(seqs, csiMouseMotionOff)
	}
	if old&MouseModeDrag != 0 && mode&MouseModeDrag == 0 {
		seqs = append(seqs, csiMouseDragOff)
	}
	if old&MouseModeClick != 0 && mode&MouseModeClick == 0 {
		seqs = append(seqs, csiMouseClickOff)
	}
	if mode == MouseModeNone {
		seqs = append(seqs, csiMouseSGROff)
	}

	if old == MouseModeNone {
		seqs = append(seqs, csiMouseSGROn)
	}
	if mode&MouseModeClick != 0 && old&MouseModeClick == 0 {
		seqs = append(seqs, csiMouseClickOn)
	}
	if mode&MouseModeDrag != 0 && old&MouseModeDrag == 0 {
		seqs = append(seqs, csiMouseDragOn)
	}
	if mode&MouseModeMotion != 0 && old&MouseModeMotion == 0 {
		seqs = append(seqs, csiMouseMotionOn)
	}
	return s.writer.writeRaw(seqs...)
}

// Close restores the terminal. Safe to call multiple times
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true

	err := s.setMouseMode(MouseModeNone)

	seqs := [][]byte{csiSGR0, csiCursorShow}
	if s.opts.FocusReporting {
		seqs = append(seqs, csiFocusOff)
	}
	if s.opts.AltScreen {
		seqs = append(seqs, csiAltScreenExit)
	}
	// Re-enable wrapping after leaving the alternate screen so the main buffer has it
	seqs = append(seqs, csiAutoWrapOn)
	if werr := s.writer.writeRaw(seqs...); err == nil {
		err = werr
	}

	s.backend.Fini()
	return err
}

// EmergencyReset restores a sane terminal from a panic path where the Session
// may be unreachable: mouse and focus reporting off, cursor shown, main screen,
// attributes reset, cooked mode
func EmergencyReset(w io.Writer) {
	w.Write(csiMouseMotionOff)
	w.Write(csiMouseDragOff)
	w.Write(csiMouseClickOff)
	w.Write(csiMouseSGROff)
	w.Write(csiFocusOff)

	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)
	w.Write(csiRIS)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	resetTerminalMode()
}
