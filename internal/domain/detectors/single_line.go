package detectors

import (
	m "repattern.dev/pkg/repattern/internal/model"
)

// DetectSingleLine records singleLine once when every operation resolves to the same
// pre-existing statement and that statement spans one line.
func DetectSingleLine(s *m.EditScript, patterns *m.RepairPatterns) {
	if len(s.Operations) == 0 {
		return
	}

	var target *m.Node

	for _, op := range s.Operations {
		stmt := anchoredStatement(s, s.Node(op.Node))
		if stmt == nil {
			return
		}

		if target != nil && target.ID != stmt.ID {
			return
		}

		target = stmt
	}

	if target.Span.SingleLine() {
		patterns.IncrementFeatureCounter(m.PatternSingleLine, s.Operations[0], evidence(s, target))
	}
}

// anchoredStatement returns the enclosing statement of n, mapped to the before tree when
// the differencer matched it.
func anchoredStatement(s *m.EditScript, n *m.Node) *m.Node {
	if n == nil {
		return nil
	}

	stmt := EnclosingStatement(s, n)
	if stmt == nil {
		return nil
	}

	if stmt.Side == m.After {
		if partner := s.Node(stmt.Partner); partner != nil {
			return partner
		}
	}

	return stmt
}
