package query

// RelOp is a relational operator between two expressions. RelNone marks a
// bare-expression condition: the grammar accepts a lone expression where a
// comparison may stand, and its boolean meaning is the engine's concern.
type RelOp int

const (
	RelNone RelOp = iota
	RelEQ
	RelNE
	RelLS
	RelLE
	RelGS
	RelGE
)

func (o RelOp) String() string {
	switch o {
	case RelEQ:
		return "="
	case RelNE:
		return "!="
	case RelLS:
		return "<"
	case RelLE:
		return "<="
	case RelGS:
		return ">"
	case RelGE:
		return ">="
	}
	return ""
}

// LogicOp is a binary condition connective. The four connectives share a
// single precedence level and fold left-to-right.
type LogicOp int

const (
	LogicAnd LogicOp = iota
	LogicOr
	LogicUntil
	LogicImplies
)

func (o LogicOp) String() string {
	switch o {
	case LogicAnd:
		return "&&"
	case LogicOr:
		return "||"
	case LogicUntil:
		return "U"
	case LogicImplies:
		return "=>"
	}
	return "?"
}

// Condition is a propositional/temporal formula over expressions.
type Condition interface {
	String() string
	condition()
}

type BoolLiteral struct {
	Value bool
}

// Deadlock is the reserved predicate holding on states with no outgoing
// transition.
type Deadlock struct{}

// Comparison relates two expressions. Op == RelNone (and Right == nil)
// encodes a bare expression used as a condition.
type Comparison struct {
	Left  Expr
	Op    RelOp
	Right Expr
}

type Not struct {
	Inner Condition
}

// Next shifts a condition one transition forward along the path.
type Next struct {
	Inner Condition
}

type BinaryCondition struct {
	Op    LogicOp
	Left  Condition
	Right Condition
}

type ParenCondition struct {
	Inner Condition
}

func (BoolLiteral) condition()     {}
func (Deadlock) condition()        {}
func (Comparison) condition()      {}
func (Not) condition()             {}
func (Next) condition()            {}
func (BinaryCondition) condition() {}
func (ParenCondition) condition()  {}

func (c BoolLiteral) String() string {
	if c.Value {
		return "true"
	}
	return "false"
}

func (Deadlock) String() string {
	return "deadlock"
}

func (c Comparison) String() string {
	if c.Op == RelNone {
		return c.Left.String()
	}
	return c.Left.String() + " " + c.Op.String() + " " + c.Right.String()
}

func (c Not) String() string {
	return "! " + c.Inner.String()
}

func (c Next) String() string {
	return "X " + c.Inner.String()
}

func (c BinaryCondition) String() string {
	return c.Left.String() + " " + c.Op.String() + " " + c.Right.String()
}

func (c ParenCondition) String() string {
	return "(" + c.Inner.String() + ")"
}

// ContainsUntil reports whether an until connective occurs anywhere in the
// condition tree.
func ContainsUntil(c Condition) bool {
	switch n := c.(type) {
	case BinaryCondition:
		return n.Op == LogicUntil || ContainsUntil(n.Left) || ContainsUntil(n.Right)
	case Not:
		return ContainsUntil(n.Inner)
	case Next:
		return ContainsUntil(n.Inner)
	case ParenCondition:
		return ContainsUntil(n.Inner)
	}
	return false
}

// IsPure reports whether the condition is a pure state formula, free of the
// path operators next and until. Pure conditions can be evaluated on a
// single state without lookahead.
func IsPure(c Condition) bool {
	switch n := c.(type) {
	case Next:
		return false
	case BinaryCondition:
		return n.Op != LogicUntil && IsPure(n.Left) && IsPure(n.Right)
	case Not:
		return IsPure(n.Inner)
	case ParenCondition:
		return IsPure(n.Inner)
	}
	return true
}

func conditionNames(c Condition, into map[string]bool) {
	switch n := c.(type) {
	case Comparison:
		exprNames(n.Left, into)
		if n.Right != nil {
			exprNames(n.Right, into)
		}
	case Not:
		conditionNames(n.Inner, into)
	case Next:
		conditionNames(n.Inner, into)
	case BinaryCondition:
		conditionNames(n.Left, into)
		conditionNames(n.Right, into)
	case ParenCondition:
		conditionNames(n.Inner, into)
	}
}
