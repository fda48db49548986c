package detectors

import (
	m "repattern.dev/pkg/repattern/internal/model"
)

var (
	logicalOperators    = map[string]bool{"&&": true, "||": true}
	relationalOperators = map[string]bool{"==": true, "!=": true, "<": true, ">": true, "<=": true, ">=": true}
	arithmeticOperators = map[string]bool{"+": true, "-": true, "*": true, "/": true, "%": true}
)

func isConditionOperator(n *m.Node) bool {
	return n.Kind == m.KindBinaryOperator && (logicalOperators[n.Label] || relationalOperators[n.Label])
}

func isArithmeticOperator(n *m.Node) bool {
	return n.Kind == m.KindBinaryOperator && arithmeticOperators[n.Label]
}

func isLogicalOperator(n *m.Node) bool {
	return n.Kind == m.KindBinaryOperator && logicalOperators[n.Label]
}

// DetectExpressionFix records modified logical and arithmetic expressions: operators
// swapped in place, and logical clauses added around or removed from old operands.
func DetectExpressionFix(s *m.EditScript, patterns *m.RepairPatterns) {
	for _, op := range s.Operations {
		switch op.Kind {
		case m.OpUpdate:
			detectOperatorSwap(s, op, patterns)
		case m.OpInsert:
			detectOperatorAdded(s, op, patterns)
		case m.OpDelete:
			detectOperatorRemoved(s, op, patterns)
		case m.OpMove:
		}
	}
}

func detectOperatorSwap(s *m.EditScript, op m.Operation, patterns *m.RepairPatterns) {
	src, dst := s.Node(op.Node), s.Node(op.Dst)
	if src == nil || dst == nil || src.Label == dst.Label {
		return
	}

	switch {
	case isConditionOperator(src) && isConditionOperator(dst):
		patterns.IncrementFeatureCounter(m.PatternExpLogicMod, op, evidence(s, src))
	case isArithmeticOperator(src) && isArithmeticOperator(dst):
		patterns.IncrementFeatureCounter(m.PatternExpArithMod, op, evidence(s, src))
	}
}

func detectOperatorAdded(s *m.EditScript, op m.Operation, patterns *m.RepairPatterns) {
	n := s.Node(op.Node)
	if n == nil || !n.IsNew() || n.Kind != m.KindBinaryOperator {
		return
	}

	parent := s.Parent(n.ID)
	if parent == nil || parent.IsNew() {
		return
	}

	kept := preexisting(s.Children(n.ID))
	if len(kept) == 0 {
		return
	}

	switch {
	case isLogicalOperator(n):
		patterns.IncrementFeatureCounter(m.PatternExpLogicExpand, op, evidence(s, kept...))
	case isArithmeticOperator(n):
		patterns.IncrementFeatureCounter(m.PatternExpArithMod, op, evidence(s, kept...))
	}
}

func detectOperatorRemoved(s *m.EditScript, op m.Operation, patterns *m.RepairPatterns) {
	n := s.Node(op.Node)
	if n == nil || !n.IsDeleted() || !isLogicalOperator(n) {
		return
	}

	parent := s.Parent(n.ID)
	if parent == nil || parent.IsDeleted() {
		return
	}

	if len(preexisting(s.Children(n.ID))) > 0 {
		patterns.IncrementFeatureCounter(m.PatternExpLogicReduce, op, evidence(s, n))
	}
}
