// Package slq_parser parses SLQ, the textual query language of the sally
// model checker. Parsing is pure and synchronous: one input string in, one
// immutable query.Query (or one position-carrying error) out.
package slq_parser

import (
	"github.com/alecthomas/participle/v2"

	"github.com/sallyverif/slq/verifier/query"
)

// Parse parses a complete query. The whole input must be consumed: leftover
// text after a valid prefix is a syntax error, not a success.
func Parse(str string) (*query.Query, error) {
	script, err := ParseScript(str)
	if err != nil {
		return nil, err
	}
	return script.Build()
}

// ParseScript stops after the surface grammar, returning the raw parse tree
// before it is lowered into the typed AST.
func ParseScript(str string) (*QueryScript, error) {
	parser, err := participle.Build[QueryScript](
		participle.Lexer(SLQLexerDefinition),
		participle.UseLookahead(2),
	)
	if err != nil {
		return nil, err
	}
	res, err := parser.ParseString("", str)
	if err != nil {
		return nil, wrapParticipleError(err)
	}
	return res, nil
}
