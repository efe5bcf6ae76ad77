package slq_parser

import (
	"errors"
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

type ErrorKind int

const (
	// ErrLexical: malformed token, e.g. an unterminated quoted identifier.
	ErrLexical ErrorKind = iota
	// ErrSyntax: grammar violation, unmatched parenthesis, trailing input.
	ErrSyntax
	// ErrValue: well-formed integer literal outside the supported range.
	ErrValue
)

func (k ErrorKind) String() string {
	switch k {
	case ErrLexical:
		return "lexical"
	case ErrSyntax:
		return "syntax"
	case ErrValue:
		return "value"
	}
	return "unknown"
}

// Error describes the first point of failure in a query. Pos carries the
// byte offset as well as line and column. Parsing never returns a partial
// tree next to an Error.
type Error struct {
	Kind ErrorKind
	Pos  lexer.Position
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s error at %d:%d: %s", e.Kind, e.Pos.Line, e.Pos.Column, e.Msg)
}

func wrapParticipleError(err error) error {
	var lexErr *lexer.Error
	if errors.As(err, &lexErr) {
		return &Error{Kind: ErrLexical, Pos: lexErr.Position(), Msg: lexErr.Message()}
	}
	var parseErr participle.Error
	if errors.As(err, &parseErr) {
		return &Error{Kind: ErrSyntax, Pos: parseErr.Position(), Msg: parseErr.Message()}
	}
	return err
}
