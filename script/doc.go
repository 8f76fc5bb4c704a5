// Package script exposes textarea operations to Lua.
//
// An Engine owns a Lua state and a registry of attached textareas keyed
// by widget ID. Scripts drive editing through the global `ek` module:
//
//	ek.insert(id, "hello")
//	ek.newline(id)
//	ek.move(id, "home")
//	print(ek.text(id))
//
// Invalid handles and arguments surface as Lua errors, which Eval
// returns as Go errors.
package script
