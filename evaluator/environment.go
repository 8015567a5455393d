package evaluator

import "github.com/mithra-lang/mithra/object"

// Environment is a scoped set of variable bindings. Lookup walks from the
// innermost scope to the global scope; assignment always writes into the
// innermost scope.
type Environment struct {
	bindings map[string]object.Object
	parent   *Environment
}

// NewEnvironment creates an environment with an optional parent scope.
// Pass nil to create a global environment.
func NewEnvironment(parent *Environment) *Environment {
	return &Environment{
		bindings: make(map[string]object.Object),
		parent:   parent,
	}
}

// Get looks up a variable by name, traversing parent scopes.
func (e *Environment) Get(name string) (object.Object, bool) {
	if value, ok := e.bindings[name]; ok {
		return value, true
	}
	if e.parent != nil {
		return e.parent.Get(name)
	}
	return nil, false
}

// Set binds a variable in this scope, shadowing any binding of the same
// name in a parent scope.
func (e *Environment) Set(name string, value object.Object) {
	e.bindings[name] = value
}

// Names returns the names bound directly in this scope.
func (e *Environment) Names() []string {
	names := make([]string, 0, len(e.bindings))
	for name := range e.bindings {
		names = append(names, name)
	}
	return names
}
