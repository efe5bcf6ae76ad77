package query

// The grammar deliberately accepts any combination of quantifier, modality
// and bound; which combinations are meaningful is a property of the solving
// engine, not of the syntax. Validate is that engine-side pass, kept here
// so every consumer applies the same rules. The parser never calls it.

// Issues returns every combination problem found, in a stable order. An
// empty slice means the query is acceptable to the solving engine.
func (q *Query) Issues() []string {
	var issues []string
	if q.Quantifier.Kind != QuantifierNone && q.Modality == ModalityNone {
		issues = append(issues, "a quantifier requires a temporal modality (F or G)")
	}
	if q.Quantifier.Kind == QuantifierProbability && q.Bound.Kind == BoundNone {
		issues = append(issues, "a probability query requires a run bound, statistical runs must terminate")
	}
	if q.Bound.Kind != BoundNone && q.Modality == ModalityNone && q.Quantifier.Kind != QuantifierProbability {
		issues = append(issues, "a run bound requires a temporal modality or a probability quantifier")
	}
	return issues
}

// Validate reports the first combination problem as an error, or nil.
func (q *Query) Validate() error {
	if issues := q.Issues(); len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}

type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	s := "invalid query: " + e.Issues[0]
	if len(e.Issues) > 1 {
		s += " (and more)"
	}
	return s
}
