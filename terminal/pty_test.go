//go:build linux || darwin

package terminal

import (
	"errors"
	"io"
	"os"
	"testing"

	"github.com/creack/pty"
	"golang.org/x/sys/unix"
)

func TestSessionOnPty(t *testing.T) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	defer ptmx.Close()
	defer tty.Close()

	if err := pty.Setsize(ptmx, &pty.Winsize{Cols: 100, Rows: 30}); err != nil {
		t.Fatal(err)
	}
	// Drain output so writes never block on a full pty buffer
	go io.Copy(io.Discard, ptmx)

	s, err := Open(Options{In: tty, Out: tty, AltScreen: true, Mouse: MouseModeAll, Color: "truecolor"})
	if err != nil {
		t.Fatal(err)
	}

	if w, h := s.Size(); w != 100 || h != 30 {
		t.Errorf("Expected 100x30, got %dx%d", w, h)
	}
	if w, h := s.Writer().Size(); w != 100 || h != 30 {
		t.Errorf("Writer size: expected 100x30, got %dx%d", w, h)
	}

	termios, err := unix.IoctlGetTermios(int(tty.Fd()), ioctlGetTermios)
	if err != nil {
		t.Fatal(err)
	}
	if termios.Lflag&(unix.ICANON|unix.ECHO) != 0 {
		t.Error("Expected raw mode while the session is open")
	}

	if err := s.Close(); err != nil {
		t.Fatal(err)
	}
	termios, err = unix.IoctlGetTermios(int(tty.Fd()), ioctlGetTermios)
	if err != nil {
		t.Fatal(err)
	}
	if termios.Lflag&unix.ICANON == 0 || termios.Lflag&unix.ECHO == 0 {
		t.Error("Expected cooked mode restored after Close")
	}
}

func TestOpenRejectsNonTerminal(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	defer w.Close()

	if _, err := Open(Options{In: r, Out: w}); !errors.Is(err, ErrNotTerminal) {
		t.Errorf("Expected ErrNotTerminal, got %v", err)
	}
}
