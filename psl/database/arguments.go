package database

import (
	"github.com/satishbabariya/pslcheck/psl/diagnostics"
	"github.com/satishbabariya/pslcheck/psl/parsing/ast"
)

// arguments walks the arguments of one attribute. Every argument must be
// visited exactly once; whatever is left is reported by validateVisited.
type arguments struct {
	attr    AttributeNode
	tag     string
	diags   *diagnostics.Diagnostics
	pending []*ast.Argument
}

func newArguments(attr AttributeNode, tag string, diags *diagnostics.Diagnostics) *arguments {
	a := &arguments{attr: attr, tag: tag, diags: diags}
	seen := make(map[string]bool)
	for _, arg := range attr.Args().Iter() {
		if arg.IsNamed() {
			if seen[arg.GetName()] {
				diags.PushError(diagnostics.NewDuplicateArgumentError(arg.GetName(), arg.Span()))
				continue
			}
			seen[arg.GetName()] = true
		}
		a.pending = append(a.pending, arg)
	}
	return a
}

func (a *arguments) take(match func(*ast.Argument) bool) *ast.Argument {
	for i, arg := range a.pending {
		if match(arg) {
			a.pending = append(a.pending[:i], a.pending[i+1:]...)
			return arg
		}
	}
	return nil
}

// defaultArg returns the argument given either by name or as the first
// positional argument. Reports an error if it is missing or given twice.
func (a *arguments) defaultArg(name string) (ast.Expression, bool) {
	named := a.take(func(arg *ast.Argument) bool { return arg.GetName() == name })
	unnamed := a.take(func(arg *ast.Argument) bool { return !arg.IsNamed() })

	switch {
	case named != nil && unnamed != nil:
		a.diags.PushError(diagnostics.NewDuplicateArgumentError(name, named.Span()))
		return nil, false
	case named != nil:
		return named.Value, true
	case unnamed != nil:
		return unnamed.Value, true
	default:
		a.diags.PushError(diagnostics.NewAttributeArgumentNotFoundError(name, a.tag, a.attr.Span()))
		return nil, false
	}
}

// optionalArg returns the named argument if present.
func (a *arguments) optionalArg(name string) (ast.Expression, bool) {
	arg := a.take(func(arg *ast.Argument) bool { return arg.GetName() == name })
	if arg == nil {
		return nil, false
	}
	return arg.Value, true
}

// optionalString returns the named string argument if present and well typed.
func (a *arguments) optionalString(name string) *string {
	expr, ok := a.optionalArg(name)
	if !ok {
		return nil
	}
	s, ok := CoerceString(expr, a.diags)
	if !ok {
		return nil
	}
	return &s
}

// mapArg returns the `map` argument, rejecting empty names.
func (a *arguments) mapArg() *string {
	name := a.optionalString("map")
	if name != nil && *name == "" {
		a.pushError("The `map` argument cannot be an empty string.")
		return nil
	}
	return name
}

func (a *arguments) optionalBool(name string) *bool {
	expr, ok := a.optionalArg(name)
	if !ok {
		return nil
	}
	b, ok := CoerceBool(expr, a.diags)
	if !ok {
		return nil
	}
	return &b
}

// discard drops every unvisited argument without reporting it.
func (a *arguments) discard() {
	a.pending = nil
}

// validateVisited reports every argument that was not consumed.
func (a *arguments) validateVisited() {
	for _, arg := range a.pending {
		name := arg.GetName()
		if name == "" {
			name = arg.Value.String()
		}
		a.diags.PushError(diagnostics.NewUnusedArgumentError(name, arg.Span()))
	}
	a.pending = nil
}

func (a *arguments) pushError(message string) {
	a.diags.PushError(diagnostics.NewAttributeValidationError(message, a.tag, a.attr.Span()))
}
