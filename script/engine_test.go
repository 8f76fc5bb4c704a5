package script

import (
	"strings"
	"testing"

	"github.com/dshills/editkit/textarea"
)

func newTestEngine(t *testing.T) (*Engine, *textarea.TextArea) {
	t.Helper()
	e := NewEngine()
	t.Cleanup(e.Close)

	ta := textarea.New()
	id := e.Attach(ta)
	e.SetGlobal("id", id)
	return e, ta
}

func TestEvalInsert(t *testing.T) {
	e, ta := newTestEngine(t)

	if err := e.Eval(`ek.insert(id, "hello")`); err != nil {
		t.Fatalf("eval failed: %v", err)
	}

	if got := ta.Lines()[0]; got != "hello" {
		t.Errorf("expected %q, got %q", "hello", got)
	}
	row, col := ta.Cursor()
	if row != 0 || col != 5 {
		t.Errorf("expected cursor (0,5), got (%d,%d)", row, col)
	}
}

func TestEvalInsertMultiline(t *testing.T) {
	e, ta := newTestEngine(t)

	if err := e.Eval(`ek.insert(id, "one\ntwo\nthree")`); err != nil {
		t.Fatalf("eval failed: %v", err)
	}

	got := ta.Lines()
	if len(got) != 3 || got[0] != "one" || got[1] != "two" || got[2] != "three" {
		t.Errorf("expected three lines, got %q", got)
	}
}

func TestEvalEditing(t *testing.T) {
	e, ta := newTestEngine(t)

	script := `
		ek.insert(id, "ab")
		ek.newline(id)
		ek.insert(id, "cd")
		ek.backspace(id)
	`
	if err := e.Eval(script); err != nil {
		t.Fatalf("eval failed: %v", err)
	}

	got := ta.Lines()
	if len(got) != 2 || got[0] != "ab" || got[1] != "c" {
		t.Errorf("expected [ab c], got %q", got)
	}
}

func TestEvalMove(t *testing.T) {
	e, ta := newTestEngine(t)

	script := `
		ek.insert(id, "abc")
		ek.move(id, "home")
		ek.move(id, "right")
	`
	if err := e.Eval(script); err != nil {
		t.Fatalf("eval failed: %v", err)
	}

	row, col := ta.Cursor()
	if row != 0 || col != 1 {
		t.Errorf("expected (0,1), got (%d,%d)", row, col)
	}

	if err := e.Eval(`ek.move(id, "end")`); err != nil {
		t.Fatalf("eval failed: %v", err)
	}
	if _, col = ta.Cursor(); col != 3 {
		t.Errorf("end should move to column 3, got %d", col)
	}
}

func TestEvalMoveInvalidDirection(t *testing.T) {
	e, _ := newTestEngine(t)

	err := e.Eval(`ek.move(id, "sideways")`)
	if err == nil {
		t.Fatal("unknown direction should raise an error")
	}
}

func TestEvalQueries(t *testing.T) {
	e, _ := newTestEngine(t)

	script := `
		ek.insert(id, "one\ntwo")
		got_text = ek.text(id)
		got_line = ek.line(id, 1)
		got_count = ek.line_count(id)
		got_row, got_col = ek.cursor(id)
	`
	if err := e.Eval(script); err != nil {
		t.Fatalf("eval failed: %v", err)
	}

	checks := `
		assert(got_text == "one\ntwo", "text: " .. got_text)
		assert(got_line == "one", "line: " .. got_line)
		assert(got_count == 2, "count: " .. got_count)
		assert(got_row == 1 and got_col == 3, "cursor: " .. got_row .. "," .. got_col)
	`
	if err := e.Eval(checks); err != nil {
		t.Errorf("query results wrong: %v", err)
	}
}

func TestEvalTab(t *testing.T) {
	e, ta := newTestEngine(t)

	if err := e.Eval(`ek.tab(id)`); err != nil {
		t.Fatalf("eval failed: %v", err)
	}
	if _, col := ta.Cursor(); col != 4 {
		t.Errorf("tab should indent to column 4, got %d", col)
	}
}

func TestEvalLineOutOfRange(t *testing.T) {
	e, _ := newTestEngine(t)

	if err := e.Eval(`ek.line(id, 5)`); err == nil {
		t.Error("out-of-range line number should raise an error")
	}
}

func TestEvalUnknownHandle(t *testing.T) {
	e := NewEngine()
	t.Cleanup(e.Close)

	err := e.Eval(`ek.insert("nope", "x")`)
	if err == nil {
		t.Fatal("unknown handle should raise an error")
	}
	if !strings.Contains(err.Error(), "nope") {
		t.Errorf("error should name the handle, got %v", err)
	}
}

func TestDetach(t *testing.T) {
	e, ta := newTestEngine(t)
	e.Detach(ta.ID())

	if err := e.Eval(`ek.insert(id, "x")`); err == nil {
		t.Error("detached textarea should no longer be scriptable")
	}
}
