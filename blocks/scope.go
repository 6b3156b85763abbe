package blocks

import (
	"maps"
	"reflect"

	"go.starlark.net/starlark"
)

// Scope is the pair of mutable name-to-value mappings a block runs
// against. Locals shadow Globals on lookup; names bound at the top
// level of a block land in Locals. A nil Locals means Locals is the
// same mapping as Globals, mirroring single-mapping evaluation.
//
// Both mappings are caller-owned and outlive the call: all scope
// propagation happens through ordinary mutation of these maps, never
// through call-stack introspection. A Scope is not safe for
// concurrent use without caller-imposed locking.
type Scope struct {
	Globals starlark.StringDict
	Locals  starlark.StringDict
}

// NewScope returns a scope whose globals and locals are one fresh
// mapping.
func NewScope() *Scope {
	env := make(starlark.StringDict)
	return &Scope{
		Globals: env,
		Locals:  env,
	}
}

// Bind seeds a name with a native Go value, converted with ToStarlark.
func (s *Scope) Bind(name string, value any) *Scope {
	s.normalize()
	s.Globals[name] = ToStarlark(value)
	return s
}

func (s *Scope) normalize() {
	if s.Globals == nil {
		if s.Locals != nil {
			s.Globals = s.Locals
		} else {
			s.Globals = make(starlark.StringDict)
		}
	}
	if s.Locals == nil {
		s.Locals = s.Globals
	}
}

func (s *Scope) isShared() bool {
	return reflect.ValueOf(s.Globals).Pointer() ==
		reflect.ValueOf(s.Locals).Pointer()
}

// Env returns the mapping execution and evaluation run against: the
// shared mapping itself when globals and locals are one, otherwise a
// merged copy with locals shadowing globals.
func (s *Scope) Env() starlark.StringDict {
	s.normalize()
	if s.isShared() {
		return s.Globals
	}
	env := make(starlark.StringDict, len(s.Globals)+len(s.Locals))
	maps.Copy(env, s.Globals)
	maps.Copy(env, s.Locals)
	return env
}

// absorb copies the given bound names from an execution env back into
// Locals. When the env is the shared mapping itself this is an
// identity write.
func (s *Scope) absorb(env starlark.StringDict, bound []string) {
	s.normalize()
	for _, name := range bound {
		if value, ok := env[name]; ok {
			s.Locals[name] = value
		}
	}
}
