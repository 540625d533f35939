// Copyright © 2025 The Tanuki authors

package hostfn

import "github.com/tanukilang/tanuki/token"

// LiteralExpr is a minimal Expr carrying raw source text.  The scripting
// front end supplies its own AST nodes; LiteralExpr exists for tooling that
// has only flat call text to hand to expression parameters (the call-line
// REPL, call-script files, and tests).
type LiteralExpr struct {
	Text     string
	Location *token.Location
}

// Literal returns a LiteralExpr for text at loc.
func Literal(text string, loc *token.Location) *LiteralExpr {
	return &LiteralExpr{Text: text, Location: loc}
}

func (e *LiteralExpr) Pos() *token.Location {
	return e.Location
}

func (e *LiteralExpr) String() string {
	return e.Text
}
