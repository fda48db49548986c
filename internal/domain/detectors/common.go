// Package detectors holds the repair-pattern detectors. Each detector is a stateless
// function that scans a whole edit script and records matches into an aggregate.
package detectors

import (
	m "repattern.dev/pkg/repattern/internal/model"
)

// IsConstantReference reports whether n is a variable, type or field reference that the
// semantic model resolved to a constant.
func IsConstantReference(n *m.Node) bool {
	if n == nil {
		return false
	}

	return n.Kind.IsReference() && n.Constant
}

// IsConstantLike reports whether n is a literal or a constant reference.
func IsConstantLike(n *m.Node) bool {
	if n == nil {
		return false
	}

	return n.Kind == m.KindLiteral || IsConstantReference(n)
}

// isPreexisting reports whether n survives the patch: after-side nodes must not be new,
// before-side nodes must not be deleted.
func isPreexisting(n *m.Node) bool {
	if n == nil {
		return false
	}

	if n.Side == m.After {
		return !n.IsNew()
	}

	return !n.IsDeleted()
}

// ContainsOnlyPreexistingStatements reports whether statements is non-empty and none of
// its entries is new code.
func ContainsOnlyPreexistingStatements(statements []*m.Node) bool {
	if len(statements) == 0 {
		return false
	}

	for _, stmt := range statements {
		if !isPreexisting(stmt) {
			return false
		}
	}

	return true
}

// HasPreexistingStatement reports whether at least one statement was not fabricated by
// the patch.
func HasPreexistingStatement(statements []*m.Node) bool {
	for _, stmt := range statements {
		if isPreexisting(stmt) {
			return true
		}
	}

	return false
}

// IsNewlyInsertedConstruct reports whether the construct header of n (not merely its
// body) is new.
func IsNewlyInsertedConstruct(n *m.Node) bool {
	if n == nil || !n.IsNew() {
		return false
	}

	switch n.Kind {
	case m.KindConditional, m.KindExceptionHandler, m.KindTernary, m.KindInvocation,
		m.KindFor, m.KindForEach, m.KindWhile, m.KindDo:
		return true
	case m.KindStatement, m.KindLiteral, m.KindVariableReference, m.KindTypeReference,
		m.KindFieldReference, m.KindCatchClause, m.KindBlock, m.KindAssignment,
		m.KindBinaryOperator, m.KindUnaryOperator, m.KindReturn, m.KindThrow,
		m.KindMethod, m.KindClass:
		return false
	default:
		return false
	}
}

// Branches describes the then/else content of a conditional or ternary.
type Branches struct {
	Then            *m.Node
	Else            *m.Node
	ThenPreexisting bool
	ElsePreexisting bool
}

// HasElse reports whether an else branch exists.
func (b Branches) HasElse() bool { return b.Else != nil }

// ConditionalBranches inspects the branches of a conditional (statement bodies) or a
// ternary (expression operands).
func ConditionalBranches(s *m.EditScript, n *m.Node) Branches {
	b := Branches{
		Then: s.Child(n.ID, m.RoleThen),
		Else: s.Child(n.ID, m.RoleElse),
	}

	if n.Kind == m.KindTernary {
		b.ThenPreexisting = isPreexisting(b.Then)
		b.ElsePreexisting = isPreexisting(b.Else)

		return b
	}

	b.ThenPreexisting = HasPreexistingStatement(StatementsOf(s, b.Then))
	b.ElsePreexisting = HasPreexistingStatement(StatementsOf(s, b.Else))

	return b
}

// OnlyNewCatchClauses reports whether every catch clause is new.
func OnlyNewCatchClauses(catches []*m.Node) bool {
	for _, c := range catches {
		if !c.IsNew() {
			return false
		}
	}

	return true
}

// StatementsOf returns the statements held by a body: the children of a block, or the
// body itself when it is a lone statement.
func StatementsOf(s *m.EditScript, body *m.Node) []*m.Node {
	if body == nil {
		return nil
	}

	if body.Kind == m.KindBlock {
		return s.Children(body.ID)
	}

	return []*m.Node{body}
}

// SameParent reports whether a and b sit under the same parent, either literally or
// through the differencer's before/after mapping.
func SameParent(s *m.EditScript, a, b *m.Node) bool {
	pa, pb := s.Node(a.Parent), s.Node(b.Parent)
	if pa == nil || pb == nil {
		return false
	}

	return pa.ID == pb.ID || pa.Partner == pb.ID || pb.Partner == pa.ID
}

// SameSlot reports whether a and b share parent and role.
func SameSlot(s *m.EditScript, a, b *m.Node) bool {
	return a.Role == b.Role && SameParent(s, a, b)
}

// EnclosingStatement returns the nearest statement containing n (n itself included).
func EnclosingStatement(s *m.EditScript, n *m.Node) *m.Node {
	for cur := n; cur != nil; cur = s.Parent(cur.ID) {
		if isStandaloneStatement(s, cur) {
			return cur
		}
	}

	return nil
}

func isStandaloneStatement(s *m.EditScript, n *m.Node) bool {
	if !n.Kind.IsStatement() {
		return false
	}

	parent := s.Parent(n.ID)
	if parent == nil {
		return true
	}

	switch parent.Kind {
	case m.KindBlock, m.KindMethod, m.KindClass:
		return true
	}

	switch n.Role {
	case m.RoleThen, m.RoleElse, m.RoleBody, m.RoleStatement:
		return true
	}

	return false
}

// EnclosingMethod returns the nearest method or class above n, or the tree root.
func EnclosingMethod(s *m.EditScript, n *m.Node) *m.Node {
	last := n

	for cur := s.Parent(n.ID); cur != nil; cur = s.Parent(cur.ID) {
		if cur.Kind == m.KindMethod || cur.Kind == m.KindClass {
			return cur
		}

		last = cur
	}

	return last
}

// firstOpInto returns the first operation of kind whose destination lies strictly
// inside root.
func firstOpInto(s *m.EditScript, root *m.Node, kind m.OpKind) (m.Operation, bool) {
	if root == nil {
		return m.Operation{}, false
	}

	for _, op := range s.Operations {
		if op.Kind == kind && s.IsAncestor(root.ID, op.Dst) {
			return op, true
		}
	}

	return m.Operation{}, false
}

// HasMoveOutOf reports whether a Move leaves from strictly inside root.
func HasMoveOutOf(s *m.EditScript, root *m.Node) bool {
	if root == nil {
		return false
	}

	for _, op := range s.Operations {
		if op.Kind == m.OpMove && s.IsAncestor(root.ID, op.Node) {
			return true
		}
	}

	return false
}

// touched returns the nodes an Insert or Delete operation affects: the whole subtree of
// the node plus its direct parent.
func touched(s *m.EditScript, op m.Operation) []*m.Node {
	nodes := s.Subtree(op.Node)
	if parent := s.Parent(op.Node); parent != nil {
		nodes = append(nodes, parent)
	}

	return nodes
}

// reached is a construct together with the operation that touched it.
type reached struct {
	node *m.Node
	op   m.Operation
}

// constructs collects, once each, the nodes of the given kinds reachable from every
// operation of opKind. The order follows the operation list.
func constructs(s *m.EditScript, opKind m.OpKind, kinds ...m.Kind) []reached {
	wanted := make(map[m.Kind]bool, len(kinds))
	for _, k := range kinds {
		wanted[k] = true
	}

	index := make(map[m.NodeID]int)

	var out []reached

	for _, op := range s.Operations {
		if op.Kind != opKind {
			continue
		}

		for _, n := range touched(s, op) {
			if !wanted[n.Kind] {
				continue
			}

			i, seen := index[n.ID]
			if !seen {
				index[n.ID] = len(out)
				out = append(out, reached{node: n, op: op})
			} else if op.Node == n.ID {
				// prefer the operation on the construct itself
				out[i].op = op
			}
		}
	}

	return out
}

// structurallyEqual compares two subtrees by kind, role and label.
func structurallyEqual(s *m.EditScript, a, b *m.Node) bool {
	if a.Kind != b.Kind || a.Label != b.Label {
		return false
	}

	ca, cb := s.Children(a.ID), s.Children(b.ID)
	if len(ca) != len(cb) {
		return false
	}

	for i := range ca {
		if ca[i].Role != cb[i].Role || !structurallyEqual(s, ca[i], cb[i]) {
			return false
		}
	}

	return true
}

// evidence builds the evidence for faulty nodes, locating the enclosing pre-existing
// statement on the before side when the differencer mapped it.
func evidence(s *m.EditScript, faulty ...*m.Node) m.Evidence {
	ev := m.Evidence{Statement: m.NoNode}

	for _, f := range faulty {
		if f != nil {
			ev.Faulty = append(ev.Faulty, f.ID)
		}
	}

	if len(ev.Faulty) == 0 {
		return ev
	}

	anchor := s.Node(ev.Faulty[0])
	if anchor.Side == m.After {
		if partner := s.Node(anchor.Partner); partner != nil {
			anchor = partner
		}
	}

	if stmt := EnclosingStatement(s, anchor); stmt != nil {
		ev.Statement = stmt.ID
		ev.Line = stmt.Span
	} else {
		ev.Line = anchor.Span
	}

	return ev
}
