package slq_parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sallyverif/slq/verifier/query"
)

// Build lowers the surface tree into the typed AST. Operator chains fold
// strictly left-to-right, parenthesized groups are classified as expression
// or condition groups, and integer literals are range-checked here.
func (s *QueryScript) Build() (*query.Query, error) {
	q := &query.Query{}

	switch strings.ToLower(s.Quantifier) {
	case "":
	case "a":
		q.Quantifier = query.Quantifier{Kind: query.QuantifierForAll}
	case "e":
		q.Quantifier = query.Quantifier{Kind: query.QuantifierExists}
	case "p":
		q.Quantifier = query.Quantifier{Kind: query.QuantifierProbability}
	case "pr":
		q.Quantifier = query.Quantifier{Kind: query.QuantifierProbability, ExplicitR: true}
	}

	if s.Modality != nil {
		if s.Modality.Finally != "" {
			q.Modality = query.ModalityFinally
		} else {
			q.Modality = query.ModalityGlobally
		}
	}

	if s.Bound != nil {
		bound, err := s.Bound.build()
		if err != nil {
			return nil, err
		}
		q.Bound = bound
	}

	cond, err := buildCond(s.Cond)
	if err != nil {
		return nil, err
	}
	q.Condition = cond
	return q, nil
}

func (b *BoundClause) build() (query.RunBound, error) {
	max, err := b.Max.uint32()
	if err != nil {
		return query.RunBound{}, err
	}
	switch {
	case b.Steps != "":
		return query.RunBound{Kind: query.BoundSteps, Max: max}, nil
	case b.Var == "t":
		return query.RunBound{Kind: query.BoundTime, Max: max}, nil
	case allDigits(b.Var):
		return query.RunBound{}, &Error{
			Kind: ErrSyntax,
			Pos:  b.Pos,
			Msg:  fmt.Sprintf("run bound key must be t, # or a variable name, found %q", b.Var),
		}
	default:
		return query.RunBound{Kind: query.BoundVar, Max: max, Var: b.Var}, nil
	}
}

func (n Num) uint32() (uint32, error) {
	if !allDigits(n.Text) {
		return 0, &Error{
			Kind: ErrSyntax,
			Pos:  n.Pos,
			Msg:  fmt.Sprintf("expected integer run bound, found %q", n.Text),
		}
	}
	v, err := strconv.ParseUint(n.Text, 10, 32)
	if err != nil {
		return 0, &Error{
			Kind: ErrValue,
			Pos:  n.Pos,
			Msg:  fmt.Sprintf("run bound %s out of range", n.Text),
		}
	}
	return uint32(v), nil
}

func buildCond(chain *LogicChain) (query.Condition, error) {
	left, err := buildAtom(chain.Head)
	if err != nil {
		return nil, err
	}
	for _, t := range chain.Tail {
		right, err := buildAtom(t.RHS)
		if err != nil {
			return nil, err
		}
		left = query.BinaryCondition{Op: logicOp(t.Op), Left: left, Right: right}
	}
	return left, nil
}

func buildAtom(a *LogicAtom) (query.Condition, error) {
	inner, err := buildPrimaryCond(a)
	if err != nil {
		return nil, err
	}
	switch {
	case a.Not != "":
		return query.Not{Inner: inner}, nil
	case a.Next != "":
		return query.Next{Inner: inner}, nil
	}
	return inner, nil
}

func buildPrimaryCond(a *LogicAtom) (query.Condition, error) {
	switch {
	case a.True:
		return query.BoolLiteral{Value: true}, nil
	case a.False:
		return query.BoolLiteral{Value: false}, nil
	case a.Deadlock:
		return query.Deadlock{}, nil
	}
	return buildProposition(a.Cmp)
}

func buildProposition(p *Proposition) (query.Condition, error) {
	if p.Op == "" {
		if group := condGroup(p.Left); group != nil {
			inner, err := buildCond(group)
			if err != nil {
				return nil, err
			}
			return query.ParenCondition{Inner: inner}, nil
		}
		left, err := buildExpr(p.Left)
		if err != nil {
			return nil, err
		}
		return query.Comparison{Left: left, Op: query.RelNone}, nil
	}
	left, err := buildExpr(p.Left)
	if err != nil {
		return nil, err
	}
	right, err := buildExpr(p.Right)
	if err != nil {
		return nil, err
	}
	return query.Comparison{Left: left, Op: relOp(p.Op), Right: right}, nil
}

// condGroup returns the inner chain when the proposition is exactly one
// unprefixed parenthesized group holding a real condition, i.e. the
// '(' cond ')' alternative of the grammar. A group that reduces to a plain
// expression stays on the expression path instead.
func condGroup(ec *ExprChain) *LogicChain {
	if len(ec.Tail) != 0 || ec.Head.Minus != "" || ec.Head.Prim.Paren == nil {
		return nil
	}
	if isExprOnly(ec.Head.Prim.Paren) {
		return nil
	}
	return ec.Head.Prim.Paren
}

// isExprOnly reports whether a parenthesized chain is a pure arithmetic
// expression: no connective, no prefix, no literal keyword, no relational
// operator, looking through nested parentheses.
func isExprOnly(c *LogicChain) bool {
	if len(c.Tail) > 0 {
		return false
	}
	a := c.Head
	if a.Not != "" || a.Next != "" || a.True || a.False || a.Deadlock {
		return false
	}
	if a.Cmp.Op != "" {
		return false
	}
	ec := a.Cmp.Left
	if len(ec.Tail) == 0 && ec.Head.Minus == "" && ec.Head.Prim.Paren != nil {
		return isExprOnly(ec.Head.Prim.Paren)
	}
	return true
}

func buildExpr(ec *ExprChain) (query.Expr, error) {
	left, err := buildExprAtom(ec.Head)
	if err != nil {
		return nil, err
	}
	for _, t := range ec.Tail {
		right, err := buildExprAtom(t.RHS)
		if err != nil {
			return nil, err
		}
		left = query.BinaryExpr{Op: arithOp(t.Op), Left: left, Right: right}
	}
	return left, nil
}

func buildExprAtom(a *ExprAtom) (query.Expr, error) {
	prim, err := buildPrimary(a.Prim)
	if err != nil {
		return nil, err
	}
	if a.Minus != "" {
		return query.Negative{Inner: prim}, nil
	}
	return prim, nil
}

func buildPrimary(p *Primary) (query.Expr, error) {
	switch {
	case p.Paren != nil:
		if !isExprOnly(p.Paren) {
			return nil, &Error{
				Kind: ErrSyntax,
				Pos:  p.Pos,
				Msg:  "condition used as an arithmetic operand, expected expression inside parentheses",
			}
		}
		inner, err := buildExpr(p.Paren.Head.Cmp.Left)
		if err != nil {
			return nil, err
		}
		return query.ParenExpr{Inner: inner}, nil
	case p.Quoted != "":
		return query.Name{Value: p.Quoted[1 : len(p.Quoted)-1]}, nil
	case allDigits(p.Word):
		v, err := strconv.ParseInt(p.Word, 10, 32)
		if err != nil {
			return nil, &Error{
				Kind: ErrValue,
				Pos:  p.Pos,
				Msg:  fmt.Sprintf("integer constant %s out of range", p.Word),
			}
		}
		return query.IntConstant{Value: int32(v)}, nil
	default:
		return query.Name{Value: p.Word}, nil
	}
}

func logicOp(s string) query.LogicOp {
	switch strings.ToLower(s) {
	case "&", "&&", "and":
		return query.LogicAnd
	case "|", "||", "or":
		return query.LogicOr
	case "u", "until":
		return query.LogicUntil
	default:
		return query.LogicImplies
	}
}

func relOp(s string) query.RelOp {
	switch s {
	case "=", "==":
		return query.RelEQ
	case "!=", "/=":
		return query.RelNE
	case "<":
		return query.RelLS
	case "<=":
		return query.RelLE
	case ">":
		return query.RelGS
	case ">=":
		return query.RelGE
	}
	return query.RelNone
}

func arithOp(s string) query.ArithOp {
	switch s {
	case "+":
		return query.OpAdd
	case "-":
		return query.OpSub
	case "*":
		return query.OpMul
	case "%":
		return query.OpMod
	default:
		return query.OpPow
	}
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
