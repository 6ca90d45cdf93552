package database

import (
	"strconv"

	"github.com/satishbabariya/pslcheck/psl/diagnostics"
	"github.com/satishbabariya/pslcheck/psl/parsing/ast"
)

// CoerceString coerces an expression to a string.
func CoerceString(expr ast.Expression, diags *diagnostics.Diagnostics) (string, bool) {
	if s, ok := expr.(*ast.StringValue); ok {
		return s.Value, true
	}
	diags.PushError(diagnostics.NewValueParserError("string", expr.Describe(), expr.Span()))
	return "", false
}

// CoerceConstant coerces an expression to a constant such as `Desc` or `Hash`.
func CoerceConstant(expr ast.Expression, diags *diagnostics.Diagnostics) (string, bool) {
	if c, ok := expr.(*ast.ConstantValue); ok {
		return c.Value, true
	}
	diags.PushError(diagnostics.NewValueParserError("constant", expr.Describe(), expr.Span()))
	return "", false
}

// CoerceBool coerces an expression to true or false.
func CoerceBool(expr ast.Expression, diags *diagnostics.Diagnostics) (bool, bool) {
	if c, ok := expr.(*ast.ConstantValue); ok {
		switch c.Value {
		case "true":
			return true, true
		case "false":
			return false, true
		}
	}
	diags.PushError(diagnostics.NewValueParserError("boolean", expr.Describe(), expr.Span()))
	return false, false
}

// CoerceUint32 coerces an expression to a non-negative 32-bit integer.
func CoerceUint32(expr ast.Expression, diags *diagnostics.Diagnostics) (uint32, bool) {
	n, ok := expr.(*ast.NumericValue)
	if !ok {
		diags.PushError(diagnostics.NewValueParserError("numeric", expr.String(), expr.Span()))
		return 0, false
	}
	v, err := strconv.ParseUint(n.Value, 10, 32)
	if err != nil {
		// numeric, but negative, fractional or too large
		diags.PushError(diagnostics.NewValueParserError("a non-negative 32-bit integer", n.Value, expr.Span()))
		return 0, false
	}
	return uint32(v), true
}

// CoerceArray returns the elements of an array expression. A single
// non-array value is treated as a one element array.
func CoerceArray(expr ast.Expression) []ast.Expression {
	if arr, ok := expr.(*ast.ArrayExpression); ok {
		return arr.Elements
	}
	return []ast.Expression{expr}
}

// CoerceFieldReference splits `name` or `name(arg: value, ...)` into the
// field name and its arguments.
func CoerceFieldReference(expr ast.Expression, diags *diagnostics.Diagnostics) (string, *ast.ArgumentsList, bool) {
	switch e := expr.(type) {
	case *ast.ConstantValue:
		return e.Value, nil, true
	case *ast.FunctionCall:
		return e.Name, e.Arguments, true
	default:
		diags.PushError(diagnostics.NewValueParserError("field reference", expr.Describe(), expr.Span()))
		return "", nil, false
	}
}
