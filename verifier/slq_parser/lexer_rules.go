package slq_parser

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Token rules for SLQ queries. Order matters: quoted identifiers and
// keywords are tried before the generic word rule, multi-character symbols
// before their one-character prefixes. Word-form keywords and the
// probability quantifier are case-insensitive; the one-letter operators
// A E F G U X are upper case only, so the lower-case letters stay usable
// as variable names. Identifier words are maximal runs of letters, digits
// and dots; whether a run is an integer constant or a name is decided when
// the tree is built.
var SLQLexerRules = []lexer.SimpleRule{
	{Name: "QuotedIdent", Pattern: `"[a-zA-Z0-9.]+"|'[a-zA-Z0-9.]+'`},

	{Name: "True", Pattern: `(?i)\btrue\b`},
	{Name: "False", Pattern: `(?i)\bfalse\b`},
	{Name: "DeadlockKw", Pattern: `(?i)\bdeadlock\b`},
	{Name: "AndKw", Pattern: `(?i)\band\b`},
	{Name: "OrKw", Pattern: `(?i)\bor\b`},
	{Name: "NotKw", Pattern: `(?i)\bnot\b`},
	{Name: "NextKw", Pattern: `(?i:\bnext\b)|X\b`},
	{Name: "UntilKw", Pattern: `(?i:\buntil\b)|U\b`},
	{Name: "ImpliesKw", Pattern: `(?i)\bimplies\b`},
	{Name: "Forall", Pattern: `A\b`},
	{Name: "Exists", Pattern: `E\b`},
	{Name: "Proba", Pattern: `(?i)\bpr?\b`},
	{Name: "Finally", Pattern: `F\b`},
	{Name: "Globally", Pattern: `G\b`},

	{Name: "Diamond", Pattern: `<>`},
	{Name: "Ge", Pattern: `>=`},
	{Name: "Le", Pattern: `<=`},
	{Name: "Deq", Pattern: `==`},
	{Name: "Implies", Pattern: `=>`},
	{Name: "Neq", Pattern: `!=|/=`},
	{Name: "Eq", Pattern: `=`},
	{Name: "Gt", Pattern: `>`},
	{Name: "Lt", Pattern: `<`},
	{Name: "And", Pattern: `&&?`},
	{Name: "Or", Pattern: `\|\|?`},
	{Name: "Not", Pattern: `!`},

	{Name: "Lbracket", Pattern: `\[`},
	{Name: "Rbracket", Pattern: `\]`},
	{Name: "Ob", Pattern: `\(`},
	{Name: "Cb", Pattern: `\)`},
	{Name: "Hash", Pattern: `#`},

	{Name: "Plus", Pattern: `\+`},
	{Name: "Minus", Pattern: `-`},
	{Name: "Star", Pattern: `\*`},
	{Name: "Percent", Pattern: `%`},
	{Name: "Caret", Pattern: `\^`},

	{Name: "Word", Pattern: `[a-zA-Z0-9.]+`},

	{Name: "space", Pattern: `\s+`},
}

var SLQLexerDefinition = lexer.MustSimple(SLQLexerRules)
