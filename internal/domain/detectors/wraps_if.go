package detectors

import (
	m "repattern.dev/pkg/repattern/internal/model"
)

func detectWrapsIf(s *m.EditScript, patterns *m.RepairPatterns) {
	for _, r := range constructs(s, m.OpInsert, m.KindConditional, m.KindTernary) {
		switch {
		case r.node.Kind == m.KindTernary:
			detectWrapsTernary(s, r, patterns)
		case IsNewlyInsertedConstruct(r.node):
			detectWrapsNewIf(s, r, patterns)
		default:
			detectWrapsElse(s, r, patterns)
		}
	}
}

func detectWrapsNewIf(s *m.EditScript, r reached, patterns *m.RepairPatterns) {
	b := ConditionalBranches(s, r.node)

	wrapped := preexisting(append(StatementsOf(s, b.Then), StatementsOf(s, b.Else)...))

	switch {
	case !b.HasElse() && b.ThenPreexisting:
		patterns.IncrementFeatureCounter(m.PatternWrapsIf, r.op, evidence(s, wrapped...))
	case b.HasElse() && (b.ThenPreexisting || b.ElsePreexisting):
		patterns.IncrementFeatureCounter(m.PatternWrapsIfElse, r.op, evidence(s, wrapped...))
	}
}

// detectWrapsElse handles an old if whose branch block was replaced by a new one while
// the opposite branch kept pre-existing statements.
func detectWrapsElse(s *m.EditScript, r reached, patterns *m.RepairPatterns) {
	c := r.node

	before := s.Partner(c.ID)
	if before == nil {
		return
	}

	for _, role := range []m.Role{m.RoleThen, m.RoleElse} {
		branch := s.Child(c.ID, role)
		if branch == nil || branch.Kind != m.KindBlock || !branch.IsNew() {
			continue
		}

		if len(StatementsOf(s, s.Child(before.ID, role))) == 0 {
			continue
		}

		kept := preexisting(StatementsOf(s, s.Child(c.ID, oppositeBranch(role))))
		if len(kept) == 0 {
			continue
		}

		patterns.IncrementFeatureCounter(m.PatternWrapsElse, r.op, evidence(s, kept...))

		return
	}
}

func oppositeBranch(role m.Role) m.Role {
	if role == m.RoleThen {
		return m.RoleElse
	}

	return m.RoleThen
}

// detectWrapsTernary reports a new ternary that keeps an old expression in one branch.
// When both branches are new it only counts if the ternary sits in an old statement and
// its condition was already there; a wholly new ternary is not a wrap.
func detectWrapsTernary(s *m.EditScript, r reached, patterns *m.RepairPatterns) {
	t := r.node
	if !IsNewlyInsertedConstruct(t) {
		return
	}

	b := ConditionalBranches(s, t)
	if b.ThenPreexisting || b.ElsePreexisting {
		patterns.IncrementFeatureCounter(m.PatternWrapsIfElse, r.op, evidence(s, preexisting([]*m.Node{b.Then, b.Else})...))
		return
	}

	stmt := EnclosingStatement(s, t)
	cond := s.Child(t.ID, m.RoleCondition)

	if stmt != nil && !stmt.IsNew() && isPreexisting(cond) {
		patterns.IncrementFeatureCounter(m.PatternWrapsIfElse, r.op, evidence(s, cond))
	}
}

func detectUnwrapIf(s *m.EditScript, patterns *m.RepairPatterns) {
	for _, r := range constructs(s, m.OpDelete, m.KindConditional, m.KindTernary) {
		c := r.node
		if !c.IsDeleted() {
			continue
		}

		if c.Kind == m.KindTernary {
			stmt := EnclosingStatement(s, c)
			if stmt == nil || stmt.IsDeleted() {
				continue
			}
		}

		b := ConditionalBranches(s, c)
		if b.ThenPreexisting || b.ElsePreexisting {
			patterns.IncrementFeatureCounter(m.PatternUnwrapIfElse, r.op, evidence(s, c))
		}
	}
}
