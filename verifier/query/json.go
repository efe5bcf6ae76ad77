package query

import "encoding/json"

// JSON rendering of the tree for the HTTP endpoint and for engines living
// in other processes. Every node carries a "type" discriminator since Expr
// and Condition are interface-valued.

func (e IntConstant) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type  string `json:"type"`
		Value int32  `json:"value"`
	}{"int", e.Value})
}

func (e Name) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string `json:"type"`
		Name string `json:"name"`
	}{"name", e.Value})
}

func (e Negative) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string `json:"type"`
		Expr Expr   `json:"expr"`
	}{"neg", e.Inner})
}

func (e BinaryExpr) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type  string `json:"type"`
		Op    string `json:"op"`
		Left  Expr   `json:"left"`
		Right Expr   `json:"right"`
	}{"binop", e.Op.String(), e.Left, e.Right})
}

func (e ParenExpr) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string `json:"type"`
		Expr Expr   `json:"expr"`
	}{"paren_expr", e.Inner})
}

func (c BoolLiteral) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type  string `json:"type"`
		Value bool   `json:"value"`
	}{"bool", c.Value})
}

func (Deadlock) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string `json:"type"`
	}{"deadlock"})
}

func (c Comparison) MarshalJSON() ([]byte, error) {
	var op *string
	if c.Op != RelNone {
		s := c.Op.String()
		op = &s
	}
	return json.Marshal(struct {
		Type  string  `json:"type"`
		Left  Expr    `json:"left"`
		Op    *string `json:"op"`
		Right Expr    `json:"right,omitempty"`
	}{"cmp", c.Left, op, c.Right})
}

func (c Not) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string    `json:"type"`
		Cond Condition `json:"cond"`
	}{"not", c.Inner})
}

func (c Next) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string    `json:"type"`
		Cond Condition `json:"cond"`
	}{"next", c.Inner})
}

func (c BinaryCondition) MarshalJSON() ([]byte, error) {
	var op string
	switch c.Op {
	case LogicAnd:
		op = "and"
	case LogicOr:
		op = "or"
	case LogicUntil:
		op = "until"
	case LogicImplies:
		op = "implies"
	}
	return json.Marshal(struct {
		Type  string    `json:"type"`
		Op    string    `json:"op"`
		Left  Condition `json:"left"`
		Right Condition `json:"right"`
	}{"logic", op, c.Left, c.Right})
}

func (c ParenCondition) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string    `json:"type"`
		Cond Condition `json:"cond"`
	}{"paren_cond", c.Inner})
}

func (b RunBound) MarshalJSON() ([]byte, error) {
	if b.Kind == BoundNone {
		return []byte("null"), nil
	}
	var kind string
	switch b.Kind {
	case BoundTime:
		kind = "time"
	case BoundSteps:
		kind = "steps"
	case BoundVar:
		kind = "var"
	}
	return json.Marshal(struct {
		Kind string `json:"kind"`
		Max  uint32 `json:"max"`
		Var  string `json:"var,omitempty"`
	}{kind, b.Max, b.Var})
}

func (q *Query) MarshalJSON() ([]byte, error) {
	var quant, mod *string
	if s := q.Quantifier.String(); s != "" {
		quant = &s
	}
	if s := q.Modality.String(); s != "" {
		mod = &s
	}
	return json.Marshal(struct {
		Quantifier *string   `json:"quantifier"`
		Modality   *string   `json:"modality"`
		Bound      RunBound  `json:"bound"`
		Condition  Condition `json:"condition"`
	}{quant, mod, q.Bound, q.Condition})
}
