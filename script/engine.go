package script

import (
	"strings"
	"sync"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/editkit/textarea"
)

// Engine runs Lua scripts against attached textareas.
type Engine struct {
	mu    sync.Mutex
	state *lua.LState
	areas map[string]*textarea.TextArea
}

// NewEngine creates a Lua engine with the ek module registered.
func NewEngine() *Engine {
	e := &Engine{
		state: lua.NewState(),
		areas: make(map[string]*textarea.TextArea),
	}
	e.register()
	return e
}

// Close releases the Lua state. The engine must not be used afterward.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state.Close()
}

// Attach makes a textarea scriptable and returns its handle, which is
// the widget ID.
func (e *Engine) Attach(ta *textarea.TextArea) string {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.areas[ta.ID()] = ta
	return ta.ID()
}

// Detach removes a textarea from the registry.
func (e *Engine) Detach(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.areas, id)
}

// Eval runs a Lua script.
func (e *Engine) Eval(src string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.DoString(src)
}

// EvalFile runs a Lua script from a file.
func (e *Engine) EvalFile(path string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.DoFile(path)
}

// SetGlobal exposes a string value to scripts, typically a handle.
func (e *Engine) SetGlobal(name, value string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state.SetGlobal(name, lua.LString(value))
}

// register installs the ek module into the Lua state.
func (e *Engine) register() {
	mod := e.state.NewTable()

	e.state.SetField(mod, "insert", e.state.NewFunction(e.insert))
	e.state.SetField(mod, "newline", e.state.NewFunction(e.newline))
	e.state.SetField(mod, "backspace", e.state.NewFunction(e.backspace))
	e.state.SetField(mod, "tab", e.state.NewFunction(e.tab))
	e.state.SetField(mod, "move", e.state.NewFunction(e.move))
	e.state.SetField(mod, "text", e.state.NewFunction(e.text))
	e.state.SetField(mod, "line", e.state.NewFunction(e.line))
	e.state.SetField(mod, "line_count", e.state.NewFunction(e.lineCount))
	e.state.SetField(mod, "cursor", e.state.NewFunction(e.cursor))

	e.state.SetGlobal("ek", mod)
}

// area resolves a handle or raises a Lua error.
func (e *Engine) area(L *lua.LState, id string) *textarea.TextArea {
	ta, ok := e.areas[id]
	if !ok {
		L.RaiseError("no textarea attached with id %q", id)
		return nil
	}
	return ta
}

// insert(id, text)
// Inserts text at the cursor. Line breaks in the text become newline
// insertions, so scripts can paste multi-line content.
func (e *Engine) insert(L *lua.LState) int {
	id := L.CheckString(1)
	text := L.CheckString(2)

	ta := e.area(L, id)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	for i, seg := range strings.Split(text, "\n") {
		if i > 0 {
			ta.InsertNewline()
		}
		ta.InsertString(seg)
	}
	return 0
}

// newline(id)
func (e *Engine) newline(L *lua.LState) int {
	e.area(L, L.CheckString(1)).InsertNewline()
	return 0
}

// backspace(id)
func (e *Engine) backspace(L *lua.LState) int {
	e.area(L, L.CheckString(1)).DeleteChar()
	return 0
}

// tab(id)
func (e *Engine) tab(L *lua.LState) int {
	e.area(L, L.CheckString(1)).InsertTab()
	return 0
}

// move(id, dir) with dir one of left, right, up, down, home, end.
func (e *Engine) move(L *lua.LState) int {
	id := L.CheckString(1)
	dir := L.CheckString(2)

	ta := e.area(L, id)
	switch dir {
	case "left":
		ta.CursorBack()
	case "right":
		ta.CursorForward()
	case "up":
		ta.CursorUp()
	case "down":
		ta.CursorDown()
	case "home":
		ta.CursorStart()
	case "end":
		ta.CursorEnd()
	default:
		L.ArgError(2, "direction must be left, right, up, down, home or end")
	}
	return 0
}

// text(id) -> string
// Returns the logical buffer content joined with newlines.
func (e *Engine) text(L *lua.LState) int {
	ta := e.area(L, L.CheckString(1))
	L.Push(lua.LString(strings.Join(ta.Lines(), "\n")))
	return 1
}

// line(id, n) -> string
// Returns the text of a specific line (1-indexed).
func (e *Engine) line(L *lua.LState) int {
	id := L.CheckString(1)
	n := L.CheckInt(2)

	ta := e.area(L, id)
	if n < 1 || n > ta.LineCount() {
		L.ArgError(2, "line number out of range")
		return 0
	}
	L.Push(lua.LString(ta.Line(n - 1)))
	return 1
}

// line_count(id) -> number
func (e *Engine) lineCount(L *lua.LState) int {
	ta := e.area(L, L.CheckString(1))
	L.Push(lua.LNumber(ta.LineCount()))
	return 1
}

// cursor(id) -> row, col (0-indexed)
func (e *Engine) cursor(L *lua.LState) int {
	ta := e.area(L, L.CheckString(1))
	row, col := ta.Cursor()
	L.Push(lua.LNumber(row))
	L.Push(lua.LNumber(col))
	return 2
}
