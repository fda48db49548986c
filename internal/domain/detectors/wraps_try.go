package detectors

import (
	m "repattern.dev/pkg/repattern/internal/model"
)

func detectWrapsTryCatch(s *m.EditScript, patterns *m.RepairPatterns) {
	for _, r := range constructs(s, m.OpInsert, m.KindExceptionHandler) {
		try := r.node
		if !IsNewlyInsertedConstruct(try) || !OnlyNewCatchClauses(s.ChildrenWithRole(try.ID, m.RoleCatch)) {
			continue
		}

		body := s.Child(try.ID, m.RoleBody)

		if wrapped := preexisting(StatementsOf(s, body)); len(wrapped) > 0 {
			patterns.IncrementFeatureCounter(m.PatternWrapsTryCatch, r.op, evidence(s, wrapped...))
			continue
		}

		// the differencer may report relocated statements as a Move into a new body
		if op, ok := firstOpInto(s, body, m.OpMove); ok {
			patterns.IncrementFeatureCounter(m.PatternWrapsTryCatch, r.op, evidence(s, s.Node(op.Dst)))
		}
	}
}

func detectUnwrapTryCatch(s *m.EditScript, patterns *m.RepairPatterns) {
	for _, r := range constructs(s, m.OpDelete, m.KindExceptionHandler) {
		try := r.node
		if !try.IsDeleted() {
			continue
		}

		body := s.Child(try.ID, m.RoleBody)
		if HasPreexistingStatement(StatementsOf(s, body)) || HasMoveOutOf(s, body) {
			patterns.IncrementFeatureCounter(m.PatternUnwrapTryCatch, r.op, evidence(s, try))
		}
	}
}
