package bridge

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// listAssignment is `name=\left[payload\right]`
type listAssignment struct {
	Name  string   `parser:"@Ident Eq"`
	Items []string `parser:"ListOpen @Text* ListClose"`
}

// manifestDefinition is `fn\left(\right)=target\to\left[a,b,c\right]`
type manifestDefinition struct {
	Func   string   `parser:"@Ident ParenOpen ParenClose Eq"`
	Target string   `parser:"@Ident To"`
	Fields []string `parser:"ListOpen @Text* ListClose"`
}

// Внутри списка пробелы значимы, поэтому содержимое лексится отдельным состоянием
var latexLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{Name: "whitespace", Pattern: `\s+`, Action: nil},
		{Name: "ListOpen", Pattern: `\\left\[`, Action: lexer.Push("List")},
		{Name: "ParenOpen", Pattern: `\\left\(`, Action: nil},
		{Name: "ParenClose", Pattern: `\\right\)`, Action: nil},
		{Name: "To", Pattern: `\\to`, Action: nil},
		{Name: "Ident", Pattern: `[a-zA-Z](?:_\{[a-zA-Z0-9]*\}|_[a-zA-Z0-9])?`, Action: nil},
		{Name: "Eq", Pattern: `=`, Action: nil},
	},
	"List": {
		{Name: "ListClose", Pattern: `\\right\]`, Action: lexer.Pop()},
		{Name: "Text", Pattern: `[^\\\[\]]+|\\`, Action: nil},
	},
})

var (
	listParser = participle.MustBuild[listAssignment](
		participle.Lexer(latexLexer),
		participle.Elide("whitespace"),
	)
	manifestParser = participle.MustBuild[manifestDefinition](
		participle.Lexer(latexLexer),
		participle.Elide("whitespace"),
	)
)

// parseList разбирает присваивание списка и возвращает имя переменной и содержимое скобок
func parseList(latex string) (string, string, error) {
	ast, err := listParser.ParseString("", latex)
	if err != nil {
		return "", "", fmt.Errorf("failed to parse list %q: %w", latex, err)
	}
	return ast.Name, strings.Join(ast.Items, ""), nil
}

// formatList is the inverse of parseList
func formatList(name, payload string) string {
	return name + `=\left[` + payload + `\right]`
}

// parseManifest returns the manifest function name, the target list variable
// and the ordered field identifiers.
func parseManifest(latex string) (*manifestDefinition, []string, error) {
	ast, err := manifestParser.ParseString("", latex)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse manifest %q: %w", latex, err)
	}

	body := strings.Join(ast.Fields, "")
	if strings.TrimSpace(body) == "" {
		return ast, nil, nil
	}

	// Пустые элементы сохраняем: они держат позиции остальных полей
	parts := strings.Split(body, ",")
	fields := make([]string, 0, len(parts))
	for _, p := range parts {
		fields = append(fields, strings.TrimSpace(p))
	}
	return ast, fields, nil
}

// formatManifest is the inverse of parseManifest
func formatManifest(fn, target string, fields []string) string {
	return fn + `\left(\right)=` + target + `\to\left[` + strings.Join(fields, ",") + `\right]`
}

// splitAssignment returns the left-hand identifier and right-hand value of a
// field expression such as `m_{oney}=12`.
func splitAssignment(latex string) (string, string, bool) {
	lhs, rhs, ok := strings.Cut(latex, "=")
	if !ok {
		return "", "", false
	}
	return strings.TrimSpace(lhs), rhs, true
}

// formatAssignment is the inverse of splitAssignment
func formatAssignment(name, value string) string {
	return name + "=" + value
}
