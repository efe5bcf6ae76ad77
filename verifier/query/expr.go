package query

import (
	"strconv"
	"strings"
)

// ArithOp is a binary arithmetic operator. All five share one precedence
// level and fold left-to-right; the parser never builds a tree that
// contradicts that.
type ArithOp int

const (
	OpAdd ArithOp = iota
	OpSub
	OpMul
	OpMod
	OpPow
)

func (o ArithOp) String() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpMod:
		return "%"
	case OpPow:
		return "^"
	}
	return "?"
}

// Expr is an arithmetic expression over integer constants and named state
// variables. Expressions are immutable once built and own their subtrees.
type Expr interface {
	String() string
	expr()
}

type IntConstant struct {
	Value int32
}

type Name struct {
	Value string
}

type Negative struct {
	Inner Expr
}

type BinaryExpr struct {
	Op    ArithOp
	Left  Expr
	Right Expr
}

type ParenExpr struct {
	Inner Expr
}

func (IntConstant) expr() {}
func (Name) expr()        {}
func (Negative) expr()    {}
func (BinaryExpr) expr()  {}
func (ParenExpr) expr()   {}

func (e IntConstant) String() string {
	return strconv.FormatInt(int64(e.Value), 10)
}

func (e Name) String() string {
	if nameNeedsQuotes(e.Value) {
		return `"` + e.Value + `"`
	}
	return e.Value
}

func (e Negative) String() string {
	return "-" + e.Inner.String()
}

func (e BinaryExpr) String() string {
	return e.Left.String() + " " + e.Op.String() + " " + e.Right.String()
}

func (e ParenExpr) String() string {
	return "(" + e.Inner.String() + ")"
}

// reservedWords are spellings the lexer claims for itself. A variable
// carrying one of these names must be written quoted.
var reservedWords = map[string]bool{
	"true": true, "false": true, "deadlock": true,
	"and": true, "or": true, "not": true,
	"next": true, "until": true, "implies": true,
	"p": true, "pr": true,
}

var reservedLetters = map[string]bool{
	"A": true, "E": true, "F": true, "G": true, "U": true, "X": true,
}

func nameNeedsQuotes(s string) bool {
	if s == "" {
		return true
	}
	if reservedWords[strings.ToLower(s)] || reservedLetters[s] {
		return true
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	// digits only would re-parse as an integer constant
	return true
}

func exprNames(e Expr, into map[string]bool) {
	switch n := e.(type) {
	case Name:
		into[n.Value] = true
	case Negative:
		exprNames(n.Inner, into)
	case BinaryExpr:
		exprNames(n.Left, into)
		exprNames(n.Right, into)
	case ParenExpr:
		exprNames(n.Inner, into)
	}
}
