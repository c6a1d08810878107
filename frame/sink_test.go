package frame

import (
	"errors"

	"github.com/lixenwraith/cellgrid/style"
	"github.com/mattn/go-runewidth"
)

type point struct{ X, Y int }

// recordSink tracks the cursor like a terminal and logs every cell written
type recordSink struct {
	w, h    int
	x, y    int
	style   style.Style
	written map[point]rune
	styles  map[point]style.Style
	moves   int
	changes int
	flushes int
	failOn  int // fail the Nth WriteRune (1-based), 0 disables
	writes  int
}

func newRecordSink(w, h int) *recordSink {
	s := &recordSink{w: w, h: h}
	s.reset()
	return s
}

func (s *recordSink) reset() {
	s.written = make(map[point]rune)
	s.styles = make(map[point]style.Style)
	s.moves, s.changes, s.flushes, s.writes = 0, 0, 0, 0
}

func (s *recordSink) Size() (int, int) { return s.w, s.h }

func (s *recordSink) MoveTo(x, y int) error {
	s.x, s.y = x, y
	s.moves++
	return nil
}

func (s *recordSink) SetStyle(st style.Style) error {
	s.style = st
	s.changes++
	return nil
}

var errSinkBroken = errors.New("sink broken")

func (s *recordSink) WriteRune(r rune) error {
	s.writes++
	if s.failOn > 0 && s.writes == s.failOn {
		return errSinkBroken
	}
	p := point{s.x, s.y}
	s.written[p] = r
	s.styles[p] = s.style
	s.x += max(runewidth.RuneWidth(r), 1)
	return nil
}

func (s *recordSink) Flush() error {
	s.flushes++
	return nil
}

// screen replays the sink onto a grid so tests can compare against the buffer
type screen map[point]rune

func (sc screen) apply(s *recordSink) {
	for p, r := range s.written {
		sc[p] = r
	}
}
