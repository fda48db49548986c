package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidScript is returned by EditScript.Validate for structurally broken input.
var ErrInvalidScript = errors.New("invalid edit script")

// OpKind is the type of an edit operation.
type OpKind uint8

const (
	OpInsert OpKind = iota
	OpDelete
	OpUpdate
	OpMove
)

var opKindNames = [...]string{
	OpInsert: "insert",
	OpDelete: "delete",
	OpUpdate: "update",
	OpMove:   "move",
}

func (k OpKind) String() string {
	if int(k) < len(opKindNames) {
		return opKindNames[k]
	}

	return fmt.Sprintf("OpKind(%d)", k)
}

// ParseOpKind resolves an operation type name case-insensitively.
func ParseOpKind(name string) (OpKind, error) {
	for k, n := range opKindNames {
		if strings.EqualFold(n, name) {
			return OpKind(k), nil
		}
	}

	return OpInsert, fmt.Errorf("unknown operation type %q", name)
}

// Operation is one step of a tree-edit script.
// Insert and Delete touch Node only; Update and Move go from Node (before) to Dst (after).
type Operation struct {
	Index int    `json:"index" yaml:"index" msgpack:"index"`
	Kind  OpKind `json:"kind" yaml:"kind" msgpack:"kind"`
	Node  NodeID `json:"node" yaml:"node" msgpack:"node"`
	Dst   NodeID `json:"dst" yaml:"dst" msgpack:"dst"`
}

func (o Operation) String() string {
	if o.Kind == OpUpdate || o.Kind == OpMove {
		return fmt.Sprintf("%s(%d -> %d)", o.Kind, o.Node, o.Dst)
	}

	return fmt.Sprintf("%s(%d)", o.Kind, o.Node)
}

// EditScript is one change-set: the node arena of both trees plus the ordered operations.
// It is read-only once built.
type EditScript struct {
	ID         string
	File       Path
	Nodes      []Node
	Operations []Operation
}

// Node returns the node with the given id, or nil when id is out of range.
func (s *EditScript) Node(id NodeID) *Node {
	if s == nil || id < 0 || int(id) >= len(s.Nodes) {
		return nil
	}

	return &s.Nodes[id]
}

// Parent returns the parent of id, or nil for roots and unknown ids.
func (s *EditScript) Parent(id NodeID) *Node {
	n := s.Node(id)
	if n == nil {
		return nil
	}

	return s.Node(n.Parent)
}

// Partner returns the matched node in the other tree, or nil.
func (s *EditScript) Partner(id NodeID) *Node {
	n := s.Node(id)
	if n == nil {
		return nil
	}

	return s.Node(n.Partner)
}

// Children returns the children of id in order.
func (s *EditScript) Children(id NodeID) []*Node {
	n := s.Node(id)
	if n == nil {
		return nil
	}

	children := make([]*Node, 0, len(n.Children))
	for _, c := range n.Children {
		if child := s.Node(c); child != nil {
			children = append(children, child)
		}
	}

	return children
}

// ChildrenWithRole returns the children of id filling role, in order.
func (s *EditScript) ChildrenWithRole(id NodeID, role Role) []*Node {
	var out []*Node

	for _, c := range s.Children(id) {
		if c.Role == role {
			out = append(out, c)
		}
	}

	return out
}

// Child returns the first child of id filling role, or nil.
func (s *EditScript) Child(id NodeID, role Role) *Node {
	for _, c := range s.Children(id) {
		if c.Role == role {
			return c
		}
	}

	return nil
}

// Subtree returns id and all of its descendants in preorder.
func (s *EditScript) Subtree(id NodeID) []*Node {
	root := s.Node(id)
	if root == nil {
		return nil
	}

	out := []*Node{root}
	stack := []*Node{root}

	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		children := s.Children(n.ID)
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}

		if n != root {
			out = append(out, n)
		}
	}

	return out
}

// Ancestors returns the proper ancestors of id, nearest first.
func (s *EditScript) Ancestors(id NodeID) []*Node {
	var out []*Node

	for p := s.Parent(id); p != nil; p = s.Parent(p.ID) {
		out = append(out, p)
		if len(out) > len(s.Nodes) {
			break
		}
	}

	return out
}

// IsAncestor reports whether ancestor is a proper ancestor of id.
func (s *EditScript) IsAncestor(ancestor, id NodeID) bool {
	for _, a := range s.Ancestors(id) {
		if a.ID == ancestor {
			return true
		}
	}

	return false
}

// Validate checks arena consistency: ids match positions, references resolve, the
// parent relation is acyclic and tag combinations are coherent. Detectors rely on it.
func (s *EditScript) Validate() error {
	if s == nil {
		return fmt.Errorf("%w: nil script", ErrInvalidScript)
	}

	for i := range s.Nodes {
		if err := s.validateNode(NodeID(i)); err != nil {
			return err
		}
	}

	if err := s.validateAcyclic(); err != nil {
		return err
	}

	for i, op := range s.Operations {
		if err := s.validateOperation(i, op); err != nil {
			return err
		}
	}

	return nil
}

func (s *EditScript) validateNode(id NodeID) error {
	n := &s.Nodes[id]
	if n.ID != id {
		return fmt.Errorf("%w: node at %d has id %d", ErrInvalidScript, id, n.ID)
	}

	if n.Parent != NoNode {
		p := s.Node(n.Parent)
		if p == nil {
			return fmt.Errorf("%w: node %d has unknown parent %d", ErrInvalidScript, id, n.Parent)
		}

		if p.Side != n.Side {
			return fmt.Errorf("%w: node %d and its parent %d are on different sides", ErrInvalidScript, id, n.Parent)
		}
	}

	if n.Partner != NoNode && s.Node(n.Partner) == nil {
		return fmt.Errorf("%w: node %d has unknown partner %d", ErrInvalidScript, id, n.Partner)
	}

	for _, c := range n.Children {
		child := s.Node(c)
		if child == nil || child.Parent != id {
			return fmt.Errorf("%w: node %d lists %d as child without back-reference", ErrInvalidScript, id, c)
		}
	}

	return validateTags(n)
}

func validateTags(n *Node) error {
	switch {
	case n.IsNew() && n.IsDeleted():
		return fmt.Errorf("%w: node %d is tagged both new and deleted", ErrInvalidScript, n.ID)
	case n.IsNew() && n.Side == Before:
		return fmt.Errorf("%w: before-side node %d is tagged new", ErrInvalidScript, n.ID)
	case n.IsDeleted() && n.Side == After:
		return fmt.Errorf("%w: after-side node %d is tagged deleted", ErrInvalidScript, n.ID)
	case n.Tags.Has(TagMovingSource) && n.Side != Before:
		return fmt.Errorf("%w: moving source %d is not on the before side", ErrInvalidScript, n.ID)
	case n.Tags.Has(TagMovingDestination) && n.Side != After:
		return fmt.Errorf("%w: moving destination %d is not on the after side", ErrInvalidScript, n.ID)
	}

	return nil
}

func (s *EditScript) validateAcyclic() error {
	// 0 unvisited, 1 on current path, 2 known to reach a root
	state := make([]uint8, len(s.Nodes))

	for i := range s.Nodes {
		var path []NodeID

		id := NodeID(i)
		for id != NoNode && state[id] == 0 {
			state[id] = 1
			path = append(path, id)
			id = s.Nodes[id].Parent
		}

		if id != NoNode && state[id] == 1 {
			return fmt.Errorf("%w: parent cycle through node %d", ErrInvalidScript, id)
		}

		for _, p := range path {
			state[p] = 2
		}
	}

	return nil
}

func (s *EditScript) validateOperation(i int, op Operation) error {
	n := s.Node(op.Node)
	if n == nil {
		return fmt.Errorf("%w: operation %d references unknown node %d", ErrInvalidScript, i, op.Node)
	}

	switch op.Kind {
	case OpInsert:
		if n.Side != After {
			return fmt.Errorf("%w: insert %d targets before-side node %d", ErrInvalidScript, i, op.Node)
		}
	case OpDelete:
		if n.Side != Before {
			return fmt.Errorf("%w: delete %d targets after-side node %d", ErrInvalidScript, i, op.Node)
		}
	case OpUpdate, OpMove:
		dst := s.Node(op.Dst)
		if dst == nil {
			return fmt.Errorf("%w: %s %d has unknown destination %d", ErrInvalidScript, op.Kind, i, op.Dst)
		}

		if n.Side != Before || dst.Side != After {
			return fmt.Errorf("%w: %s %d must go from before to after", ErrInvalidScript, op.Kind, i)
		}
	default:
		return fmt.Errorf("%w: operation %d has unknown kind %d", ErrInvalidScript, i, op.Kind)
	}

	return nil
}
