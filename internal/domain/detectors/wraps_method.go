package detectors

import (
	m "repattern.dev/pkg/repattern/internal/model"
)

func detectWrapsMethod(s *m.EditScript, patterns *m.RepairPatterns) {
	for _, r := range constructs(s, m.OpInsert, m.KindInvocation) {
		inv := r.node
		if !IsNewlyInsertedConstruct(inv) || s.Parent(inv.ID) == nil {
			continue
		}

		if faulty := wrappedArgument(s, inv); faulty != nil {
			patterns.IncrementFeatureCounter(m.PatternWrapsMethod, r.op, evidence(s, faulty))
		}
	}
}

// wrappedArgument returns the pre-existing code that became an argument of the new call
// inv: a moved argument, or a node deleted from the call's own slot that the argument
// reproduces.
func wrappedArgument(s *m.EditScript, inv *m.Node) *m.Node {
	args := s.ChildrenWithRole(inv.ID, m.RoleArgument)

	for _, arg := range args {
		if arg.IsMoved() || arg.Tags.Has(m.TagMovingDestination) {
			return arg
		}
	}

	for _, op := range s.Operations {
		if op.Kind != m.OpDelete {
			continue
		}

		deleted := s.Node(op.Node)
		if deleted == nil || !SameParent(s, deleted, inv) {
			continue
		}

		for _, arg := range args {
			if structurallyEqual(s, deleted, arg) {
				return deleted
			}
		}
	}

	return nil
}

func detectUnwrapMethod(s *m.EditScript, patterns *m.RepairPatterns) {
	for _, r := range constructs(s, m.OpDelete, m.KindInvocation) {
		inv := r.node
		if !inv.IsDeleted() {
			continue
		}

		parent := s.Parent(inv.ID)
		if parent == nil || parent.IsDeleted() {
			continue
		}

		if faulty := unwrappedArgument(s, inv); faulty != nil {
			patterns.IncrementFeatureCounter(m.PatternUnwrapMethod, r.op, evidence(s, faulty))
		}
	}
}

// unwrappedArgument mirrors wrappedArgument for a removed call.
func unwrappedArgument(s *m.EditScript, inv *m.Node) *m.Node {
	args := s.ChildrenWithRole(inv.ID, m.RoleArgument)

	for _, arg := range args {
		if arg.IsMoved() || arg.Tags.Has(m.TagMovingSource) {
			return arg
		}
	}

	for _, op := range s.Operations {
		if op.Kind != m.OpInsert {
			continue
		}

		inserted := s.Node(op.Node)
		if inserted == nil || !SameParent(s, inv, inserted) {
			continue
		}

		for _, arg := range args {
			if structurallyEqual(s, arg, inserted) {
				return arg
			}
		}
	}

	return nil
}
