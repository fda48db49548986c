package detectors

import (
	m "repattern.dev/pkg/repattern/internal/model"
)

// DetectConstantChange records constChange for literals or constant references that were
// replaced by another literal or constant-like reference.
func DetectConstantChange(s *m.EditScript, patterns *m.RepairPatterns) {
	usedInserts := make(map[int]bool)

	for _, op := range s.Operations {
		switch op.Kind {
		case m.OpUpdate:
			detectUpdatedConstant(s, op, patterns)
		case m.OpDelete:
			detectReplacedLiteral(s, op, usedInserts, patterns)
		case m.OpInsert, m.OpMove:
		}
	}
}

func detectUpdatedConstant(s *m.EditScript, op m.Operation, patterns *m.RepairPatterns) {
	src := s.Node(op.Node)
	if src == nil {
		return
	}

	parent := s.Parent(src.ID)
	if parent == nil || parent.IsNew() || parent.IsMoved() {
		return
	}

	if src.Kind == m.KindLiteral || IsConstantReference(src) {
		patterns.IncrementFeatureCounter(m.PatternConstChange, op, evidence(s, src))
	}
}

// detectReplacedLiteral pairs a deleted literal with an insert of a constant-like node
// under the same parent, which is how the differencer reports a replacement it did not match.
func detectReplacedLiteral(s *m.EditScript, op m.Operation, usedInserts map[int]bool, patterns *m.RepairPatterns) {
	deleted := s.Node(op.Node)
	if deleted == nil || deleted.Kind != m.KindLiteral || s.Parent(deleted.ID) == nil {
		return
	}

	for i, other := range s.Operations {
		if other.Kind != m.OpInsert || usedInserts[i] {
			continue
		}

		inserted := s.Node(other.Node)
		if inserted == nil || !IsConstantLike(inserted) {
			continue
		}

		if SameParent(s, deleted, inserted) {
			usedInserts[i] = true
			patterns.IncrementFeatureCounter(m.PatternConstChange, op, evidence(s, deleted))

			return
		}
	}
}
