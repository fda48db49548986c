package detectors

import (
	"testing"

	"github.com/stretchr/testify/require"

	m "repattern.dev/pkg/repattern/internal/model"
)

// treeBuilder assembles synthetic edit scripts the way the differencer would hand them over.
type treeBuilder struct {
	s *m.EditScript
}

func newTree() *treeBuilder {
	return &treeBuilder{s: &m.EditScript{ID: "test", File: "Foo.java"}}
}

func (b *treeBuilder) add(side m.Side, kind m.Kind, parent m.NodeID, role m.Role, label string, tags ...m.Tags) m.NodeID {
	id := m.NodeID(len(b.s.Nodes))

	var all m.Tags
	for _, t := range tags {
		all |= t
	}

	line := int(id) + 1
	b.s.Nodes = append(b.s.Nodes, m.Node{
		ID:      id,
		Kind:    kind,
		Role:    role,
		Label:   label,
		Side:    side,
		Parent:  parent,
		Partner: m.NoNode,
		Tags:    all,
		Span:    m.Span{File: "Foo.java", StartLine: line, EndLine: line},
	})

	if parent != m.NoNode {
		b.s.Nodes[parent].Children = append(b.s.Nodes[parent].Children, id)
	}

	return id
}

func (b *treeBuilder) before(kind m.Kind, parent m.NodeID, role m.Role, label string, tags ...m.Tags) m.NodeID {
	return b.add(m.Before, kind, parent, role, label, tags...)
}

func (b *treeBuilder) after(kind m.Kind, parent m.NodeID, role m.Role, label string, tags ...m.Tags) m.NodeID {
	return b.add(m.After, kind, parent, role, label, tags...)
}

func (b *treeBuilder) pair(before, after m.NodeID) {
	b.s.Nodes[before].Partner = after
	b.s.Nodes[after].Partner = before
}

func (b *treeBuilder) constant(id m.NodeID) {
	b.s.Nodes[id].Constant = true
}

func (b *treeBuilder) lines(id m.NodeID, start, end int) {
	b.s.Nodes[id].Span.StartLine = start
	b.s.Nodes[id].Span.EndLine = end
}

func (b *treeBuilder) op(kind m.OpKind, node, dst m.NodeID) {
	b.s.Operations = append(b.s.Operations, m.Operation{
		Index: len(b.s.Operations),
		Kind:  kind,
		Node:  node,
		Dst:   dst,
	})
}

func (b *treeBuilder) insert(id m.NodeID)       { b.op(m.OpInsert, id, m.NoNode) }
func (b *treeBuilder) delete(id m.NodeID)       { b.op(m.OpDelete, id, m.NoNode) }
func (b *treeBuilder) update(src, dst m.NodeID) { b.op(m.OpUpdate, src, dst) }
func (b *treeBuilder) move(src, dst m.NodeID)   { b.op(m.OpMove, src, dst) }

// moved links a relocated node on both sides with the differencer's move tags.
func (b *treeBuilder) moved(kind m.Kind, beforeParent, afterParent m.NodeID, role m.Role, label string) (m.NodeID, m.NodeID) {
	src := b.before(kind, beforeParent, role, label, m.TagMoved, m.TagMovingSource)
	dst := b.after(kind, afterParent, role, label, m.TagMoved, m.TagMovingDestination)
	b.pair(src, dst)
	b.move(src, dst)

	return src, dst
}

// methodBody creates a matched method with a body block on both sides.
func (b *treeBuilder) methodBody() (m.NodeID, m.NodeID) {
	beforeMethod := b.before(m.KindMethod, m.NoNode, m.RoleNone, "foo")
	afterMethod := b.after(m.KindMethod, m.NoNode, m.RoleNone, "foo")
	b.pair(beforeMethod, afterMethod)

	beforeBody := b.before(m.KindBlock, beforeMethod, m.RoleBody, "")
	afterBody := b.after(m.KindBlock, afterMethod, m.RoleBody, "")
	b.pair(beforeBody, afterBody)

	return beforeBody, afterBody
}

// unchanged adds a matched, untagged node on both sides.
func (b *treeBuilder) unchanged(kind m.Kind, beforeParent, afterParent m.NodeID, role m.Role, label string) (m.NodeID, m.NodeID) {
	src := b.before(kind, beforeParent, role, label)
	dst := b.after(kind, afterParent, role, label)
	b.pair(src, dst)

	return src, dst
}

func (b *treeBuilder) script(t *testing.T) *m.EditScript {
	t.Helper()
	require.NoError(t, b.s.Validate())

	return b.s
}

func run(t *testing.T, detect func(*m.EditScript, *m.RepairPatterns), s *m.EditScript) *m.RepairPatterns {
	t.Helper()

	patterns := m.NewRepairPatterns()
	detect(s, patterns)

	return patterns
}
