package slq_parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseErr(t *testing.T, text string) *Error {
	t.Helper()
	_, err := Parse(text)
	require.Error(t, err, "query: %s", text)
	var pErr *Error
	require.True(t, errors.As(err, &pErr), "expected *slq_parser.Error, got %T: %v", err, err)
	return pErr
}

func TestTrailingInputFails(t *testing.T) {
	e := parseErr(t, "A x=1 extra")
	assert.Equal(t, ErrSyntax, e.Kind)
	assert.Equal(t, 1, e.Pos.Line)
	assert.Equal(t, 7, e.Pos.Column)
}

func TestUnmatchedParenthesis(t *testing.T) {
	e := parseErr(t, "A (x=1")
	assert.Equal(t, ErrSyntax, e.Kind)
	assert.Equal(t, 1, e.Pos.Line)
	assert.Equal(t, 7, e.Pos.Column)
}

func TestUnterminatedQuote(t *testing.T) {
	e := parseErr(t, `A "x`)
	assert.Equal(t, ErrLexical, e.Kind)
	assert.Equal(t, 1, e.Pos.Line)
	assert.Equal(t, 3, e.Pos.Column)
}

func TestMissingComparisonOperand(t *testing.T) {
	e := parseErr(t, "x =")
	assert.Equal(t, ErrSyntax, e.Kind)
}

func TestMissingCondition(t *testing.T) {
	e := parseErr(t, "A F [t<=10]")
	assert.Equal(t, ErrSyntax, e.Kind)
}

func TestEmptyInput(t *testing.T) {
	e := parseErr(t, "")
	assert.Equal(t, ErrSyntax, e.Kind)
}

func TestBoundBeforeQuantifierRejected(t *testing.T) {
	// optional prefixes accept no reordering
	e := parseErr(t, "[t<=10] A F x")
	assert.Equal(t, ErrSyntax, e.Kind)
}

func TestLowerCaseQuantifierRejected(t *testing.T) {
	// lower-case a is a name, so nothing may follow it but a connective
	e := parseErr(t, "a<>[t<=100]x>5")
	assert.Equal(t, ErrSyntax, e.Kind)
	assert.Equal(t, 2, e.Pos.Column)

	e = parseErr(t, "e f [t<=10] x")
	assert.Equal(t, ErrSyntax, e.Kind)
}

func TestKeywordAsComparisonOperandRejected(t *testing.T) {
	e := parseErr(t, "true = 1")
	assert.Equal(t, ErrSyntax, e.Kind)
}

func TestConditionInArithmeticContext(t *testing.T) {
	e := parseErr(t, "(x=1)+2 = 3")
	assert.Equal(t, ErrSyntax, e.Kind)

	e = parseErr(t, "-(x=1)")
	assert.Equal(t, ErrSyntax, e.Kind)

	e = parseErr(t, "1 + (x=1 & y=2)")
	assert.Equal(t, ErrSyntax, e.Kind)
}

func TestIntegerOverflow(t *testing.T) {
	e := parseErr(t, "x = 99999999999")
	assert.Equal(t, ErrValue, e.Kind)
	assert.Equal(t, 5, e.Pos.Column)

	e = parseErr(t, "A F [t<=99999999999] x")
	assert.Equal(t, ErrValue, e.Kind)
}

func TestMalformedBound(t *testing.T) {
	e := parseErr(t, "E F [t<=abc] x")
	assert.Equal(t, ErrSyntax, e.Kind)

	e = parseErr(t, "E F [12<=3] x")
	assert.Equal(t, ErrSyntax, e.Kind)

	e = parseErr(t, "E F [t<100] x")
	assert.Equal(t, ErrSyntax, e.Kind)
}

func TestNoPartialResult(t *testing.T) {
	q, err := Parse("A x=1 &")
	assert.Error(t, err)
	assert.Nil(t, q)
}
