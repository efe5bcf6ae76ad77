package service

import (
	"github.com/pkg/errors"

	"github.com/sallyverif/slq/verifier/query"
	"github.com/sallyverif/slq/verifier/slq_parser"
)

// QueryService parses query text and prepares it for a solving engine:
// typed AST, canonical surface form, and the engine-side combination
// issues. The service is stateless and safe for concurrent use.
type QueryService struct{}

type ParseResult struct {
	Query     *query.Query
	Canonical string
	Issues    []string
}

// ParseQuery parses text into a query. With strict set, combination issues
// the solving engine would reject (see query.Validate) fail the call too.
func (qs *QueryService) ParseQuery(text string, strict bool) (*ParseResult, error) {
	q, err := slq_parser.Parse(text)
	if err != nil {
		return nil, errors.Wrap(err, "parse query")
	}
	res := &ParseResult{
		Query:     q,
		Canonical: q.String(),
		Issues:    q.Issues(),
	}
	if strict {
		if err := q.Validate(); err != nil {
			return nil, errors.Wrap(err, "validate query")
		}
	}
	return res, nil
}
