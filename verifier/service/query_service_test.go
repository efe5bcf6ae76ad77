package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sallyverif/slq/verifier/query"
	"github.com/sallyverif/slq/verifier/slq_parser"
)

func TestParseQuery(t *testing.T) {
	qs := &QueryService{}
	res, err := qs.ParseQuery("A<>[t<=100]x>5", false)
	require.NoError(t, err)
	assert.Equal(t, "A F [t<=100] x > 5", res.Canonical)
	assert.Empty(t, res.Issues)
	assert.Equal(t, query.ModalityFinally, res.Query.Modality)
}

func TestParseQuerySyntaxError(t *testing.T) {
	qs := &QueryService{}
	res, err := qs.ParseQuery("A (x=1", false)
	require.Error(t, err)
	assert.Nil(t, res)

	var perr *slq_parser.Error
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, slq_parser.ErrSyntax, perr.Kind)
}

func TestParseQueryNonStrictReportsIssues(t *testing.T) {
	qs := &QueryService{}
	res, err := qs.ParseQuery("P x", false)
	require.NoError(t, err)
	assert.Len(t, res.Issues, 2)
}

func TestParseQueryStrictRejectsIssues(t *testing.T) {
	qs := &QueryService{}
	res, err := qs.ParseQuery("P x", true)
	require.Error(t, err)
	assert.Nil(t, res)

	var verr *query.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Issues, 2)
}
