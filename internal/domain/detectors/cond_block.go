package detectors

import (
	m "repattern.dev/pkg/repattern/internal/model"
)

// DetectCondBlock records conditional blocks added or removed wholesale, i.e. around new
// code only. Added blocks are classified by what their then-branch does.
func DetectCondBlock(s *m.EditScript, patterns *m.RepairPatterns) {
	for _, r := range constructs(s, m.OpInsert, m.KindConditional) {
		c := r.node
		if !IsNewlyInsertedConstruct(c) || insideChanged(s, c, (*m.Node).IsNew) {
			continue
		}

		b := ConditionalBranches(s, c)
		if b.ThenPreexisting || b.ElsePreexisting {
			continue
		}

		patterns.IncrementFeatureCounter(classifyCondBlock(s, b.Then), r.op, evidence(s, s.Parent(c.ID)))
	}

	for _, r := range constructs(s, m.OpDelete, m.KindConditional) {
		c := r.node
		if !c.IsDeleted() || insideChanged(s, c, (*m.Node).IsDeleted) {
			continue
		}

		b := ConditionalBranches(s, c)
		if b.ThenPreexisting || b.ElsePreexisting {
			continue
		}

		patterns.IncrementFeatureCounter(m.PatternCondBlockRem, r.op, evidence(s, c))
	}
}

// insideChanged reports whether the statement enclosing n's parent matches changed,
// which means n is part of a larger added or removed construct.
func insideChanged(s *m.EditScript, n *m.Node, changed func(*m.Node) bool) bool {
	parent := s.Parent(n.ID)
	if parent == nil {
		return false
	}

	stmt := EnclosingStatement(s, parent)

	return stmt != nil && changed(stmt)
}

func classifyCondBlock(s *m.EditScript, then *m.Node) m.PatternName {
	statements := StatementsOf(s, then)

	for _, stmt := range statements {
		if stmt.Kind == m.KindReturn {
			return m.PatternCondBlockRetAdd
		}
	}

	for _, stmt := range statements {
		if stmt.Kind == m.KindThrow {
			return m.PatternCondBlockExcAdd
		}
	}

	return m.PatternCondBlockOthers
}
