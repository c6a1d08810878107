package tcellterm

import (
	"context"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/cellgrid/event"
)

var keyMap = map[tcell.Key]event.Key{
	tcell.KeyEnter:      event.KeyEnter,
	tcell.KeyTab:        event.KeyTab,
	tcell.KeyBacktab:    event.KeyBacktab,
	tcell.KeyEscape:     event.KeyEscape,
	tcell.KeyBackspace:  event.KeyBackspace,
	tcell.KeyBackspace2: event.KeyBackspace,
	tcell.KeyDelete:     event.KeyDelete,
	tcell.KeyInsert:     event.KeyInsert,
	tcell.KeyUp:         event.KeyUp,
	tcell.KeyDown:       event.KeyDown,
	tcell.KeyLeft:       event.KeyLeft,
	tcell.KeyRight:      event.KeyRight,
	tcell.KeyHome:       event.KeyHome,
	tcell.KeyEnd:        event.KeyEnd,
	tcell.KeyPgUp:       event.KeyPageUp,
	tcell.KeyPgDn:       event.KeyPageDown,

	tcell.KeyCtrlSpace:      event.KeyCtrlSpace,
	tcell.KeyCtrlBackslash:  event.KeyCtrlBackslash,
	tcell.KeyCtrlRightSq:    event.KeyCtrlBracketRight,
	tcell.KeyCtrlCarat:      event.KeyCtrlCaret,
	tcell.KeyCtrlUnderscore: event.KeyCtrlUnderscore,
}

func init() {
	for i := 0; i < 12; i++ {
		keyMap[tcell.KeyF1+tcell.Key(i)] = event.KeyF1 + event.Key(i)
	}
	// Ctrl+H, I and M share codes with Backspace, Tab and Enter and keep those names
	for k := tcell.KeyCtrlA; k <= tcell.KeyCtrlZ; k++ {
		if _, ok := keyMap[k]; !ok {
			keyMap[k] = event.KeyCtrlA + event.Key(k-tcell.KeyCtrlA)
		}
	}
}

func toMods(m tcell.ModMask) event.Modifier {
	var mods event.Modifier
	if m&tcell.ModShift != 0 {
		mods |= event.ModShift
	}
	if m&tcell.ModAlt != 0 {
		mods |= event.ModAlt
	}
	if m&tcell.ModCtrl != 0 {
		mods |= event.ModCtrl
	}
	if m&tcell.ModMeta != 0 {
		mods |= event.ModMeta
	}
	return mods
}

// convertKey maps a tcell key event; ok is false for keys with no equivalent
func convertKey(ev *tcell.EventKey) (event.Event, bool) {
	mods := toMods(ev.Modifiers())

	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		// The rune already carries shift
		mods &^= event.ModShift
		if mods.Has(event.ModCtrl) {
			if k, ok := event.CtrlLetter(r); ok {
				return event.NewKey(k, mods&^event.ModCtrl), true
			}
		}
		if r == ' ' {
			return event.NewKey(event.KeySpace, mods), true
		}
		return event.NewRune(r, mods), true
	}

	k, ok := keyMap[ev.Key()]
	if !ok {
		return event.Event{}, false
	}
	switch {
	case k >= event.KeyCtrlA && k <= event.KeyCtrlUnderscore:
		mods &^= event.ModCtrl
	case k == event.KeyBacktab:
		mods &^= event.ModShift
	}
	return event.NewKey(k, mods), true
}

const buttonMask = tcell.Button1 | tcell.Button2 | tcell.Button3

// mouseState turns tcell's button-mask snapshots into press, release, click and move
type mouseState struct {
	buttons tcell.ButtonMask
	pressed event.MouseButton
	pressX  int
	pressY  int
}

func toButton(b tcell.ButtonMask) event.MouseButton {
	switch {
	case b&tcell.Button1 != 0:
		return event.ButtonLeft
	case b&tcell.Button3 != 0:
		return event.ButtonMiddle
	case b&tcell.Button2 != 0:
		return event.ButtonRight
	}
	return event.ButtonNone
}

func (m *mouseState) convert(ev *tcell.EventMouse, emit func(event.Event)) {
	x, y := ev.Position()
	mods := toMods(ev.Modifiers())
	btns := ev.Buttons()

	for _, w := range [...]struct {
		mask tcell.ButtonMask
		dir  event.ScrollDirection
	}{
		{tcell.WheelUp, event.ScrollUp},
		{tcell.WheelDown, event.ScrollDown},
		{tcell.WheelLeft, event.ScrollLeft},
		{tcell.WheelRight, event.ScrollRight},
	} {
		if btns&w.mask != 0 {
			sc := event.NewScroll(w.dir, x, y)
			sc.Mods = mods
			emit(sc)
		}
	}

	held := btns & buttonMask
	prev := m.buttons
	m.buttons = held

	switch {
	case held&^prev != 0:
		b := toButton(held &^ prev)
		m.pressed, m.pressX, m.pressY = b, x, y
		emit(event.NewMouse(event.MousePress, b, x, y, mods))
	case prev&^held != 0:
		b := toButton(prev &^ held)
		emit(event.NewMouse(event.MouseRelease, b, x, y, mods))
		if b == m.pressed && x == m.pressX && y == m.pressY {
			emit(event.NewMouse(event.MouseClick, b, x, y, mods))
		}
		m.pressed = event.ButtonNone
	case btns&(tcell.WheelUp|tcell.WheelDown|tcell.WheelLeft|tcell.WheelRight) == 0:
		emit(event.NewMouse(event.MouseMove, toButton(held), x, y, mods))
	}
}

// convert maps one tcell event, emitting zero or more events
func (s *Screen) convert(tev tcell.Event, emit func(event.Event)) {
	switch ev := tev.(type) {
	case *tcell.EventKey:
		if e, ok := convertKey(ev); ok {
			emit(e)
		}
	case *tcell.EventMouse:
		s.mouse.convert(ev, emit)
	case *tcell.EventResize:
		w, h := ev.Size()
		emit(event.NewResize(w, h))
	case *tcell.EventFocus:
		if ev.Focused {
			emit(event.New(event.FocusGained))
		} else {
			emit(event.New(event.FocusLost))
		}
	}
}

// Pump forwards screen events into q until ctx is cancelled or the screen is finalized
func (s *Screen) Pump(ctx context.Context, q *event.Queue) error {
	ch := make(chan tcell.Event, event.DefaultQueueSize)
	go s.screen.ChannelEvents(ch, ctx.Done())

	push := func(ev event.Event) { q.Push(ev) }
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case tev, ok := <-ch:
			if !ok {
				return nil
			}
			s.convert(tev, push)
		}
	}
}
