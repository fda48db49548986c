// Package model defines the data structures consumed and produced by repair-pattern detection.
package model

import (
	"fmt"
	"strings"
)

// NodeID indexes a node in an EditScript arena.
type NodeID int

// NoNode marks an absent node reference (root parent, unmatched partner, unused operand).
const NoNode NodeID = -1

// Kind is the syntactic category of a node.
type Kind uint8

const (
	// KindStatement is any statement without a more specific kind (declarations, breaks, ...).
	KindStatement Kind = iota
	KindLiteral
	KindVariableReference
	KindTypeReference
	KindFieldReference
	KindConditional
	KindExceptionHandler
	KindCatchClause
	KindFor
	KindForEach
	KindWhile
	KindDo
	KindBlock
	KindTernary
	KindInvocation
	KindAssignment
	KindBinaryOperator
	KindUnaryOperator
	KindReturn
	KindThrow
	KindMethod
	KindClass
)

var kindNames = [...]string{
	KindStatement:         "Statement",
	KindLiteral:           "Literal",
	KindVariableReference: "VariableReference",
	KindTypeReference:     "TypeReference",
	KindFieldReference:    "FieldReference",
	KindConditional:       "Conditional",
	KindExceptionHandler:  "ExceptionHandler",
	KindCatchClause:       "CatchClause",
	KindFor:               "For",
	KindForEach:           "ForEach",
	KindWhile:             "While",
	KindDo:                "Do",
	KindBlock:             "Block",
	KindTernary:           "Ternary",
	KindInvocation:        "Invocation",
	KindAssignment:        "Assignment",
	KindBinaryOperator:    "BinaryOperator",
	KindUnaryOperator:     "UnaryOperator",
	KindReturn:            "Return",
	KindThrow:             "Throw",
	KindMethod:            "Method",
	KindClass:             "Class",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return fmt.Sprintf("Kind(%d)", k)
}

// ParseKind resolves a kind name case-insensitively.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if strings.EqualFold(n, name) {
			return Kind(k), nil
		}
	}

	return KindStatement, fmt.Errorf("unknown node kind %q", name)
}

// IsLoop reports whether k is one of the loop kinds.
func (k Kind) IsLoop() bool {
	switch k {
	case KindFor, KindForEach, KindWhile, KindDo:
		return true
	default:
		return false
	}
}

// IsReference reports whether k names a variable, type or field.
func (k Kind) IsReference() bool {
	switch k {
	case KindVariableReference, KindTypeReference, KindFieldReference:
		return true
	default:
		return false
	}
}

// IsStatement reports whether nodes of kind k can stand as a statement.
func (k Kind) IsStatement() bool {
	switch k {
	case KindStatement, KindConditional, KindExceptionHandler,
		KindFor, KindForEach, KindWhile, KindDo,
		KindInvocation, KindAssignment, KindReturn, KindThrow:
		return true
	case KindLiteral, KindVariableReference, KindTypeReference, KindFieldReference,
		KindCatchClause, KindBlock, KindTernary, KindBinaryOperator, KindUnaryOperator,
		KindMethod, KindClass:
		return false
	default:
		return false
	}
}

// Role is the slot a node fills under its parent.
type Role string

const (
	RoleNone       Role = ""
	RoleCondition  Role = "condition"
	RoleThen       Role = "then"
	RoleElse       Role = "else"
	RoleBody       Role = "body"
	RoleCatch      Role = "catch"
	RoleFinally    Role = "finally"
	RoleArgument   Role = "argument"
	RoleTarget     Role = "target"
	RoleExpression Role = "expression"
	RoleLeft       Role = "left"
	RoleRight      Role = "right"
	RoleStatement  Role = "statement"
)

// Roles lists every accepted role.
var Roles = []Role{
	RoleNone, RoleCondition, RoleThen, RoleElse, RoleBody, RoleCatch, RoleFinally,
	RoleArgument, RoleTarget, RoleExpression, RoleLeft, RoleRight, RoleStatement,
}

// Side tells which version of the file a node belongs to.
type Side uint8

const (
	// Before is the pre-patch tree.
	Before Side = iota
	// After is the post-patch tree.
	After
)

func (s Side) String() string {
	if s == After {
		return "after"
	}

	return "before"
}

// Tags are the differencer's markers on a node. A node without tags is unchanged.
type Tags uint8

const (
	TagNew Tags = 1 << iota
	TagDeleted
	TagMoved
	TagMovingSource
	TagMovingDestination
)

var tagNames = []struct {
	tag  Tags
	name string
}{
	{TagNew, "new"},
	{TagDeleted, "deleted"},
	{TagMoved, "moved"},
	{TagMovingSource, "movingSource"},
	{TagMovingDestination, "movingDestination"},
}

// Has reports whether every bit of t is set.
func (tags Tags) Has(t Tags) bool {
	return tags&t == t
}

// ParseTag resolves a tag name case-insensitively.
func ParseTag(name string) (Tags, error) {
	for _, tn := range tagNames {
		if strings.EqualFold(tn.name, name) {
			return tn.tag, nil
		}
	}

	return 0, fmt.Errorf("unknown tag %q", name)
}

// Names returns the tag names in declaration order.
func (tags Tags) Names() []string {
	var names []string

	for _, tn := range tagNames {
		if tags.Has(tn.tag) {
			names = append(names, tn.name)
		}
	}

	return names
}

// Span locates a node in its originating file. Reporting only.
type Span struct {
	File      Path `json:"file,omitempty" yaml:"file,omitempty" msgpack:"file,omitempty"`
	StartLine int  `json:"start_line" yaml:"start_line" msgpack:"start_line"`
	EndLine   int  `json:"end_line" yaml:"end_line" msgpack:"end_line"`
}

// SingleLine reports whether the span is known and covers exactly one line.
func (s Span) SingleLine() bool {
	return s.StartLine > 0 && s.StartLine == s.EndLine
}

// Node is one position in the before- or after-tree.
type Node struct {
	ID       NodeID
	Kind     Kind
	Role     Role
	Label    string // identifier, literal text or operator
	Side     Side
	Parent   NodeID
	Children []NodeID
	Partner  NodeID // matched node in the other tree
	Span     Span
	Tags     Tags
	Constant bool // constant-ness oracle supplied by the semantic model
}

func (n *Node) IsNew() bool     { return n.Tags.Has(TagNew) }
func (n *Node) IsDeleted() bool { return n.Tags.Has(TagDeleted) }
func (n *Node) IsMoved() bool   { return n.Tags.Has(TagMoved) }

func (n *Node) String() string {
	if n.Label == "" {
		return fmt.Sprintf("%s#%d", n.Kind, n.ID)
	}

	return fmt.Sprintf("%s#%d(%s)", n.Kind, n.ID, n.Label)
}
