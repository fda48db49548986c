package detectors

import (
	m "repattern.dev/pkg/repattern/internal/model"
)

// DetectWrongReference records a variable/field reference or a method call swapped for
// another one in the same position.
func DetectWrongReference(s *m.EditScript, patterns *m.RepairPatterns) {
	usedInserts := make(map[int]bool)

	for _, op := range s.Operations {
		switch op.Kind {
		case m.OpUpdate:
			detectUpdatedReference(s, op, patterns)
		case m.OpDelete:
			detectReplacedReference(s, op, usedInserts, patterns)
		case m.OpInsert, m.OpMove:
		}
	}
}

func isVariableLike(n *m.Node) bool {
	return n.Kind == m.KindVariableReference || n.Kind == m.KindFieldReference
}

func detectUpdatedReference(s *m.EditScript, op m.Operation, patterns *m.RepairPatterns) {
	src, dst := s.Node(op.Node), s.Node(op.Dst)
	if src == nil || dst == nil || src.Label == dst.Label {
		return
	}

	parent := s.Parent(src.ID)
	if parent == nil || parent.IsMoved() {
		return
	}

	switch {
	case isVariableLike(src) && !IsConstantReference(src) && dst.Kind.IsReference():
		patterns.IncrementFeatureCounter(m.PatternWrongVarRef, op, evidence(s, src))
	case src.Kind == m.KindInvocation && dst.Kind == m.KindInvocation:
		patterns.IncrementFeatureCounter(m.PatternWrongMethodRef, op, evidence(s, src))
	}
}

// detectReplacedReference pairs a deleted reference or call with an insert of the same
// kind in the same slot.
func detectReplacedReference(s *m.EditScript, op m.Operation, usedInserts map[int]bool, patterns *m.RepairPatterns) {
	deleted := s.Node(op.Node)
	if deleted == nil || s.Parent(deleted.ID) == nil {
		return
	}

	var pattern m.PatternName

	switch {
	case isVariableLike(deleted) && !IsConstantReference(deleted):
		pattern = m.PatternWrongVarRef
	case deleted.Kind == m.KindInvocation:
		pattern = m.PatternWrongMethodRef
	default:
		return
	}

	for i, other := range s.Operations {
		if other.Kind != m.OpInsert || usedInserts[i] {
			continue
		}

		inserted := s.Node(other.Node)
		if inserted == nil || !SameSlot(s, deleted, inserted) || inserted.Label == deleted.Label {
			continue
		}

		if !replacesReference(s, deleted, inserted) {
			continue
		}

		usedInserts[i] = true
		patterns.IncrementFeatureCounter(pattern, op, evidence(s, deleted))

		return
	}
}

func replacesReference(s *m.EditScript, deleted, inserted *m.Node) bool {
	if isVariableLike(deleted) {
		return isVariableLike(inserted) && !IsConstantReference(inserted)
	}

	if inserted.Kind != m.KindInvocation {
		return false
	}

	// a new call that contains the old one wraps it rather than replacing it
	for _, n := range s.Subtree(inserted.ID) {
		if n.ID != inserted.ID && structurallyEqual(s, deleted, n) {
			return false
		}
	}

	return true
}
