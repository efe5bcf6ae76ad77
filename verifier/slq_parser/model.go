package slq_parser

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Surface grammar of an SLQ query. The three prefixes are independently
// optional and accept no reordering; the condition is mandatory. Chains at
// the connective and arithmetic levels are kept flat here and folded
// left-to-right by the builder, preserving the grammar's single precedence
// level per layer.
type QueryScript struct {
	Pos        lexer.Position
	Quantifier string          `parser:"@(Forall|Exists|Proba)?"`
	Modality   *ModalityPrefix `parser:"@@?"`
	Bound      *BoundClause    `parser:"@@?"`
	Cond       *LogicChain     `parser:"@@"`
}

// ModalityPrefix accepts the letter and symbol spellings: F or <> for
// finally, G or [] for globally.
type ModalityPrefix struct {
	Pos      lexer.Position
	Finally  string `parser:"( @Finally | @Diamond"`
	Globally string `parser:"| @Globally | @(Lbracket Rbracket) )"`
}

// BoundClause is '[' (t | # | name) '<=' int ']'. Which kind of bound the
// key denotes is decided by the builder: t is model time, # is a step
// count, anything else names a state variable.
type BoundClause struct {
	Pos   lexer.Position
	Steps string `parser:"Lbracket ( @Hash"`
	Var   string `parser:"        | @Word )"`
	Max   Num    `parser:"Le @@ Rbracket"`
}

type Num struct {
	Pos  lexer.Position
	Text string `parser:"@Word"`
}

type LogicChain struct {
	Pos  lexer.Position
	Head *LogicAtom `parser:"@@"`
	Tail []*LogicOp `parser:"@@*"`
}

type LogicOp struct {
	Pos lexer.Position
	Op  string     `parser:"@(AndKw|And|OrKw|Or|UntilKw|ImpliesKw|Implies)"`
	RHS *LogicAtom `parser:"@@"`
}

// LogicAtom is an optionally prefixed primary condition. A prefix captures
// exactly this one primary, never the chain continuing after it.
type LogicAtom struct {
	Pos      lexer.Position
	Not      string       `parser:"( @(NotKw|Not)"`
	Next     string       `parser:"| @NextKw )?"`
	True     bool         `parser:"( @True"`
	False    bool         `parser:"| @False"`
	Deadlock bool         `parser:"| @DeadlockKw"`
	Cmp      *Proposition `parser:"| @@ )"`
}

// Proposition is an expression optionally related to a second expression.
// Without a relational operator it is a bare-expression condition, or a
// parenthesized condition if the expression turns out to be one.
type Proposition struct {
	Pos   lexer.Position
	Left  *ExprChain `parser:"@@"`
	Op    string     `parser:"( @(Deq|Eq|Neq|Le|Ge|Lt|Gt)"`
	Right *ExprChain `parser:"  @@ )?"`
}

type ExprChain struct {
	Pos  lexer.Position
	Head *ExprAtom  `parser:"@@"`
	Tail []*ArithOp `parser:"@@*"`
}

type ArithOp struct {
	Pos lexer.Position
	Op  string    `parser:"@(Plus|Minus|Star|Percent|Caret)"`
	RHS *ExprAtom `parser:"@@"`
}

// ExprAtom is an optionally negated primary. Unary minus binds this one
// primary only.
type ExprAtom struct {
	Pos   lexer.Position
	Minus string   `parser:"@Minus?"`
	Prim  *Primary `parser:"@@"`
}

// Primary is a word (integer constant or name), a quoted name, or a
// parenthesized group. The group is parsed at the condition level and
// classified by the builder as Paren(Expr) or Paren(Condition).
type Primary struct {
	Pos    lexer.Position
	Word   string      `parser:"( @Word"`
	Quoted string      `parser:"| @QuotedIdent"`
	Paren  *LogicChain `parser:"| Ob @@ Cb )"`
}
