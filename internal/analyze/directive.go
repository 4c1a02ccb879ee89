package analyze

import (
	"go/ast"
	"go/token"
	"strings"
)

// DirectivePrefix starts every tuplegen source directive.
const DirectivePrefix = "tuplegen:"

// directive is a parsed tuplegen comment directive.
type directive struct {
	Strategy Strategy // zero when the directive value is unknown
	Raw      string   // directive text without the "//" marker
	Pos      token.Pos
}

// findDirective scans a doc comment group for a tuplegen directive.
// Directives follow the //go:generate convention: no space after "//",
// so regular prose never collides with them.
func findDirective(doc *ast.CommentGroup) (directive, bool) {
	if doc == nil {
		return directive{}, false
	}

	for _, comment := range doc.List {
		text := strings.TrimPrefix(comment.Text, "//")
		if !strings.HasPrefix(text, DirectivePrefix) {
			continue
		}

		dir := directive{
			Raw: strings.TrimSpace(text),
			Pos: comment.Pos(),
		}

		switch strings.TrimSpace(strings.TrimPrefix(text, DirectivePrefix)) {
		case "heterogeneous":
			dir.Strategy = StrategyHeterogeneous
		case "positional":
			dir.Strategy = StrategyPositional
		}

		return dir, true
	}

	return directive{}, false
}
