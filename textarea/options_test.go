package textarea

import (
	"errors"
	"testing"

	"github.com/dshills/editkit/style"
)

func TestSetTabStringValid(t *testing.T) {
	ta := New()

	if err := ta.SetTabString("  "); err != nil {
		t.Fatalf("two spaces should be accepted: %v", err)
	}
	if ta.TabString() != "  " {
		t.Errorf("expected two-space tab, got %q", ta.TabString())
	}
}

func TestSetTabStringRejectsNonSpaces(t *testing.T) {
	ta := New()

	for _, bad := range []string{"\t", " a ", "••"} {
		err := ta.SetTabString(bad)
		if err == nil {
			t.Errorf("SetTabString(%q) should fail", bad)
			continue
		}
		if !errors.Is(err, ErrTabNotSpaces) {
			t.Errorf("SetTabString(%q) error should wrap ErrTabNotSpaces, got %v", bad, err)
		}
	}

	// A rejected tab string must not be applied.
	if ta.TabString() != defaultTab {
		t.Errorf("failed set should leave the tab unchanged, got %q", ta.TabString())
	}
}

func TestWithTabWidth(t *testing.T) {
	ta := New(WithTabWidth(2))
	if ta.TabString() != "  " {
		t.Errorf("expected two spaces, got %q", ta.TabString())
	}

	ta = New(WithTabWidth(0))
	if ta.TabString() != defaultTab {
		t.Errorf("non-positive width should be ignored, got %q", ta.TabString())
	}
}

func TestWithStyle(t *testing.T) {
	s := style.New(style.ColorGreen).Bold()
	ta := New(WithStyle(s))

	if !ta.Style().Equals(s) {
		t.Error("WithStyle should store the style unmodified")
	}
}

func TestBlockConfiguration(t *testing.T) {
	b := NewBlock("editor").WithStyle(style.New(style.ColorGray))
	ta := New(WithBlock(b))

	if ta.Block() != b {
		t.Error("WithBlock should store the frame")
	}
	if ta.Block().Borders.TopLeft != '┌' {
		t.Errorf("default borders expected, got %q", ta.Block().Borders.TopLeft)
	}

	ta.RemoveBlock()
	if ta.Block() != nil {
		t.Error("RemoveBlock should clear the frame")
	}

	ta.SetBlock(b)
	if ta.Block() != b {
		t.Error("SetBlock should restore the frame")
	}
}
