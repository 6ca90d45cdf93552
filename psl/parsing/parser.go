// Package parsing parses Prisma schema source into an AST using Participle.
package parsing

import (
	"errors"
	"strings"

	"github.com/alecthomas/participle/v2"

	"github.com/satishbabariya/pslcheck/internal/debug"
	"github.com/satishbabariya/pslcheck/psl/diagnostics"
	"github.com/satishbabariya/pslcheck/psl/parsing/ast"
)

// rawSchema is the parse tree that matches the grammar. It is converted to
// ast.SchemaAst after parsing.
type rawSchema struct {
	Items []*topLevelItem `@@*`
}

// topLevelItem is a union of all possible top-level declarations.
type topLevelItem struct {
	Model         *ast.Model           `  @@`
	Enum          *ast.Enum            `| @@`
	CompositeType *ast.CompositeType   `| @@`
	Datasource    *ast.SourceConfig    `| @@`
	Generator     *ast.GeneratorConfig `| @@`
}

func (t *topLevelItem) toTop() ast.Top {
	switch {
	case t.Model != nil:
		t.Model.Split()
		return t.Model
	case t.Enum != nil:
		return t.Enum
	case t.CompositeType != nil:
		return t.CompositeType
	case t.Datasource != nil:
		return t.Datasource
	case t.Generator != nil:
		return t.Generator
	default:
		return nil
	}
}

var parser = participle.MustBuild[rawSchema](
	participle.Lexer(PrismaLexer),
	participle.Elide("Whitespace", "Newline", "Comment", "DocComment", "MultiLineComment"),
	participle.Unquote("String"),
	participle.UseLookahead(10),
	participle.Union[ast.Expression](
		&ast.FunctionCall{},
		&ast.ArrayExpression{},
		&ast.StringValue{},
		&ast.NumericValue{},
		&ast.ConstantValue{},
	),
)

// ParseSchema parses a schema. Syntax errors are reported as a single
// DatamodelError in diags; the returned AST is empty in that case.
func ParseSchema(fileName, source string, diags *diagnostics.Diagnostics) *ast.SchemaAst {
	raw, err := parser.ParseString(fileName, source)
	if err != nil {
		diags.PushError(parseError(err, len(source)))
		debug.Debug("Schema failed to parse", "file", fileName, "error", err)
		return &ast.SchemaAst{}
	}

	schema := &ast.SchemaAst{Tops: make([]ast.Top, 0, len(raw.Items))}
	for _, item := range raw.Items {
		if top := item.toTop(); top != nil {
			schema.Tops = append(schema.Tops, top)
		}
	}
	debug.Debug("Parsed schema", "file", fileName, "tops", len(schema.Tops))
	return schema
}

func parseError(err error, sourceLen int) diagnostics.DatamodelError {
	var perr participle.Error
	if !errors.As(err, &perr) {
		return diagnostics.NewParserError(err.Error(), diagnostics.NewSpan(0, sourceLen, diagnostics.FileIDZero))
	}
	pos := perr.Position()
	start := min(pos.Offset, sourceLen)
	return diagnostics.NewParserError(
		strings.TrimSpace(perr.Message()),
		diagnostics.NewSpan(start, start, diagnostics.FileIDZero),
	)
}
