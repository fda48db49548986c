package detectors

import (
	m "repattern.dev/pkg/repattern/internal/model"
)

// DetectCodeMove records statements relocated within existing code. Moves into a new
// construct are wraps, not code moves.
func DetectCodeMove(s *m.EditScript, patterns *m.RepairPatterns) {
	for _, op := range s.Operations {
		if op.Kind != m.OpMove {
			continue
		}

		src, dst := s.Node(op.Node), s.Node(op.Dst)
		if src == nil || dst == nil || !src.Kind.IsStatement() || s.Parent(dst.ID) == nil {
			continue
		}

		if underNewConstruct(s, dst) {
			continue
		}

		patterns.IncrementFeatureCounter(m.PatternCodeMove, op, evidence(s, src))
	}
}

func underNewConstruct(s *m.EditScript, n *m.Node) bool {
	for _, a := range s.Ancestors(n.ID) {
		if a.IsNew() {
			return true
		}

		if a.Kind == m.KindMethod || a.Kind == m.KindClass {
			return false
		}
	}

	return false
}
