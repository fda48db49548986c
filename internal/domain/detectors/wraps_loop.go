package detectors

import (
	m "repattern.dev/pkg/repattern/internal/model"
)

// detectWrapsLoop reports new for, for-each and while loops around old code. Do loops
// are not considered.
func detectWrapsLoop(s *m.EditScript, patterns *m.RepairPatterns) {
	for _, r := range constructs(s, m.OpInsert, m.KindFor, m.KindForEach, m.KindWhile) {
		loop := r.node
		if !IsNewlyInsertedConstruct(loop) {
			continue
		}

		body := s.Child(loop.ID, m.RoleBody)

		if wrapped := preexisting(StatementsOf(s, body)); len(wrapped) > 0 {
			patterns.IncrementFeatureCounter(m.PatternWrapsLoop, r.op, evidence(s, wrapped...))
			continue
		}

		if op, ok := firstOpInto(s, loop, m.OpUpdate); ok {
			patterns.IncrementFeatureCounter(m.PatternWrapsLoop, r.op, evidence(s, s.Node(op.Node)))
			continue
		}

		if op, ok := firstOpInto(s, body, m.OpMove); ok {
			patterns.IncrementFeatureCounter(m.PatternWrapsLoop, r.op, evidence(s, s.Node(op.Node)))
		}
	}
}
