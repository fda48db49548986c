package detectors

import (
	m "repattern.dev/pkg/repattern/internal/model"
)

const nullLiteral = "null"

// DetectMissNullCheck records null checks added to a condition: missNullCheckP for
// "x != null" guards and missNullCheckN for "x == null" ones.
func DetectMissNullCheck(s *m.EditScript, patterns *m.RepairPatterns) {
	for _, r := range constructs(s, m.OpInsert, m.KindBinaryOperator) {
		cmp := r.node
		if !cmp.IsNew() || !underCondition(s, cmp) {
			continue
		}

		checked := nullCheckedOperand(s, cmp)
		if checked == nil {
			continue
		}

		switch cmp.Label {
		case "!=":
			patterns.IncrementFeatureCounter(m.PatternMissNullCheckP, r.op, evidence(s, checked))
		case "==":
			patterns.IncrementFeatureCounter(m.PatternMissNullCheckN, r.op, evidence(s, checked))
		}
	}
}

// nullCheckedOperand returns the operand compared against null, or nil.
func nullCheckedOperand(s *m.EditScript, cmp *m.Node) *m.Node {
	var (
		hasNull bool
		checked *m.Node
	)

	for _, operand := range s.Children(cmp.ID) {
		if operand.Kind == m.KindLiteral && operand.Label == nullLiteral {
			hasNull = true
		} else {
			checked = operand
		}
	}

	if !hasNull {
		return nil
	}

	return checked
}

// underCondition reports whether n sits in the condition of its enclosing construct.
func underCondition(s *m.EditScript, n *m.Node) bool {
	for cur := n; cur != nil; cur = s.Parent(cur.ID) {
		if cur.Role == m.RoleCondition {
			return true
		}

		if cur.Kind.IsStatement() {
			return false
		}
	}

	return false
}
