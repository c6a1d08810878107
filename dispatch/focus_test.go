package dispatch

import (
	"testing"

	"github.com/lixenwraith/cellgrid/component"
	"github.com/lixenwraith/cellgrid/layout"
)

func TestFocusCycle(t *testing.T) {
	a := focusProbe{newProbe("a", layout.Rect{}, false, nil)}
	b := focusProbe{newProbe("b", layout.Rect{}, false, nil)}
	plain := newProbe("plain", layout.Rect{}, false, nil)
	c := focusProbe{newProbe("c", layout.Rect{}, false, nil)}
	root := rootWith(a, plain, b, c)

	want := []string{"a", "b", "c", "a"}
	for i, id := range want {
		got := FocusNext(root)
		if got == nil || got.ID() != id {
			t.Fatalf("step %d: expected %s, got %v", i, id, got)
		}
	}
	if Focused(root).ID() != "a" {
		t.Errorf("Expected a focused, got %s", Focused(root).ID())
	}
	if b.focused || c.focused {
		t.Error("Only one component may hold focus")
	}

	if got := FocusPrev(root); got.ID() != "c" {
		t.Errorf("FocusPrev: expected c, got %s", got.ID())
	}

	c.SetVisible(false)
	if got := FocusNext(root); got.ID() != "a" {
		t.Errorf("Hidden focusables are skipped: expected a, got %s", got.ID())
	}
}

func TestFocusByID(t *testing.T) {
	a := focusProbe{newProbe("a", layout.Rect{}, false, nil)}
	b := focusProbe{newProbe("b", layout.Rect{}, false, nil)}
	root := rootWith(a, b)

	if !Focus(root, "b") || !b.focused {
		t.Fatal("Expected b focused")
	}
	if !Focus(root, "a") || b.focused || !a.focused {
		t.Error("Focus should move exclusively to a")
	}
	if Focus(root, "root") {
		t.Error("Container is not focusable")
	}
	if Focus(root, "nope") {
		t.Error("Missing id should fail")
	}

	Blur(root)
	if Focused(root) != nil {
		t.Error("Expected no focus after Blur")
	}
}

func TestFocusNextEmpty(t *testing.T) {
	if FocusNext(component.NewContainer("empty", layout.Vertical)) != nil {
		t.Error("Expected nil on tree without focusables")
	}
}
