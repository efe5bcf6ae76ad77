// Package query defines the abstract syntax tree of SLQ, the sally
// model-checking query language. A Query is built once by the parser, is
// immutable afterwards, and owns its whole subtree, so it can be read
// concurrently by any number of solver workers without synchronization.
package query

import (
	"sort"
	"strconv"
	"strings"
)

type QuantifierKind int

const (
	QuantifierNone QuantifierKind = iota
	QuantifierForAll
	QuantifierExists
	QuantifierProbability
)

// Quantifier selects the interpretation of the property over the set of
// runs. ExplicitR records the "Pr" surface spelling of the probability
// quantifier; the two spellings are otherwise identical.
type Quantifier struct {
	Kind      QuantifierKind
	ExplicitR bool
}

func (q Quantifier) String() string {
	switch q.Kind {
	case QuantifierForAll:
		return "A"
	case QuantifierExists:
		return "E"
	case QuantifierProbability:
		if q.ExplicitR {
			return "Pr"
		}
		return "P"
	}
	return ""
}

// Modality is the temporal operator applied along a run.
type Modality int

const (
	ModalityNone Modality = iota
	ModalityFinally
	ModalityGlobally
)

func (m Modality) String() string {
	switch m {
	case ModalityFinally:
		return "F"
	case ModalityGlobally:
		return "G"
	}
	return ""
}

type BoundKind int

const (
	BoundNone BoundKind = iota
	BoundTime
	BoundSteps
	BoundVar
)

// RunBound limits verification effort on a single run: elapsed model time,
// discrete step count, or the value of a named state variable. The kinds
// are mutually exclusive.
type RunBound struct {
	Kind BoundKind
	Max  uint32
	Var  string
}

func (b RunBound) String() string {
	switch b.Kind {
	case BoundTime:
		return "[t<=" + strconv.FormatUint(uint64(b.Max), 10) + "]"
	case BoundSteps:
		return "[#<=" + strconv.FormatUint(uint64(b.Max), 10) + "]"
	case BoundVar:
		return "[" + b.Var + "<=" + strconv.FormatUint(uint64(b.Max), 10) + "]"
	}
	return ""
}

// Query is the root of a parsed property. Condition is always present;
// quantifier, modality and bound are independently optional, and no
// combination rule between them is enforced here (see Validate).
type Query struct {
	Quantifier Quantifier
	Modality   Modality
	Bound      RunBound
	Condition  Condition
}

// String renders the canonical surface form. Parsing the canonical form
// yields a structurally identical Query.
func (q *Query) String() string {
	parts := make([]string, 0, 4)
	if s := q.Quantifier.String(); s != "" {
		parts = append(parts, s)
	}
	if s := q.Modality.String(); s != "" {
		parts = append(parts, s)
	}
	if s := q.Bound.String(); s != "" {
		parts = append(parts, s)
	}
	parts = append(parts, q.Condition.String())
	return strings.Join(parts, " ")
}

// Names returns the sorted set of state-variable names mentioned anywhere
// in the query, including a variable run bound. The downstream engine must
// resolve every one of them to a location in its state representation.
func (q *Query) Names() []string {
	set := map[string]bool{}
	if q.Bound.Kind == BoundVar {
		set[q.Bound.Var] = true
	}
	conditionNames(q.Condition, set)
	names := make([]string, 0, len(set))
	for n := range set {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
