package query

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComparisonJSON(t *testing.T) {
	c := Comparison{
		Left:  BinaryExpr{Op: OpAdd, Left: Name{Value: "x"}, Right: IntConstant{Value: 1}},
		Op:    RelEQ,
		Right: IntConstant{Value: 2},
	}
	enc, err := json.Marshal(c)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"type":"cmp",
		  "left":{"type":"binop","op":"+","left":{"type":"name","name":"x"},"right":{"type":"int","value":1}},
		  "op":"=",
		  "right":{"type":"int","value":2}}`,
		string(enc))
}

func TestBareComparisonJSON(t *testing.T) {
	c := Comparison{Left: Name{Value: "x"}, Op: RelNone}
	enc, err := json.Marshal(c)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"cmp","left":{"type":"name","name":"x"},"op":null}`, string(enc))
}

func TestQueryJSON(t *testing.T) {
	q := &Query{
		Quantifier: Quantifier{Kind: QuantifierExists},
		Modality:   ModalityFinally,
		Bound:      RunBound{Kind: BoundTime, Max: 100},
		Condition:  Not{Inner: Deadlock{}},
	}
	enc, err := json.Marshal(q)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"quantifier":"E",
		  "modality":"F",
		  "bound":{"kind":"time","max":100},
		  "condition":{"type":"not","cond":{"type":"deadlock"}}}`,
		string(enc))
}

func TestQueryJSONNullDefaults(t *testing.T) {
	q := &Query{Condition: BoolLiteral{Value: false}}
	enc, err := json.Marshal(q)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"quantifier":null,"modality":null,"bound":null,
		  "condition":{"type":"bool","value":false}}`,
		string(enc))
}

func TestLogicAndParenJSON(t *testing.T) {
	c := BinaryCondition{
		Op:    LogicUntil,
		Left:  ParenCondition{Inner: BoolLiteral{Value: true}},
		Right: Next{Inner: Comparison{Left: ParenExpr{Inner: Negative{Inner: Name{Value: "y"}}}, Op: RelNone}},
	}
	enc, err := json.Marshal(c)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"type":"logic","op":"until",
		  "left":{"type":"paren_cond","cond":{"type":"bool","value":true}},
		  "right":{"type":"next","cond":{"type":"cmp","op":null,
		    "left":{"type":"paren_expr","expr":{"type":"neg","expr":{"type":"name","name":"y"}}}}}}`,
		string(enc))
}
