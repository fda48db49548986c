package domain_test

import (
	m "repattern.dev/pkg/repattern/internal/model"
)

// constantUpdateScript is "x = 0;" becoming "x = 1;" on a single line.
func constantUpdateScript(id string) *m.EditScript {
	node := func(nid m.NodeID, side m.Side, kind m.Kind, role m.Role, label string, parent, partner m.NodeID, children ...m.NodeID) m.Node {
		return m.Node{
			ID:       nid,
			Kind:     kind,
			Role:     role,
			Label:    label,
			Side:     side,
			Parent:   parent,
			Children: children,
			Partner:  partner,
			Span:     m.Span{File: "Foo.java", StartLine: 3, EndLine: 3},
		}
	}

	return &m.EditScript{
		ID:   id,
		File: "Foo.java",
		Nodes: []m.Node{
			node(0, m.Before, m.KindMethod, m.RoleNone, "foo", m.NoNode, 5, 1),
			node(1, m.Before, m.KindBlock, m.RoleBody, "", 0, 6, 2),
			node(2, m.Before, m.KindAssignment, m.RoleStatement, "=", 1, 7, 3, 4),
			node(3, m.Before, m.KindVariableReference, m.RoleTarget, "x", 2, 8),
			node(4, m.Before, m.KindLiteral, m.RoleExpression, "0", 2, 9),
			node(5, m.After, m.KindMethod, m.RoleNone, "foo", m.NoNode, 0, 6),
			node(6, m.After, m.KindBlock, m.RoleBody, "", 5, 1, 7),
			node(7, m.After, m.KindAssignment, m.RoleStatement, "=", 6, 2, 8, 9),
			node(8, m.After, m.KindVariableReference, m.RoleTarget, "x", 7, 3),
			node(9, m.After, m.KindLiteral, m.RoleExpression, "1", 7, 4),
		},
		Operations: []m.Operation{
			{Index: 0, Kind: m.OpUpdate, Node: 4, Dst: 9},
		},
	}
}
