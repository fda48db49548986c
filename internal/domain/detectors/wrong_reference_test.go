package detectors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "repattern.dev/pkg/repattern/internal/model"
)

func TestDetectWrongReference_Update(t *testing.T) {
	tests := []struct {
		name     string
		kind     m.Kind
		dstKind  m.Kind
		constant bool
		to       string
		pattern  m.PatternName
		want     int
	}{
		{"variable renamed", m.KindVariableReference, m.KindVariableReference, false, "y", m.PatternWrongVarRef, 1},
		{"field renamed", m.KindFieldReference, m.KindFieldReference, false, "y", m.PatternWrongVarRef, 1},
		{"variable to field", m.KindVariableReference, m.KindFieldReference, false, "y", m.PatternWrongVarRef, 1},
		{"constant reference", m.KindVariableReference, m.KindVariableReference, true, "y", m.PatternWrongVarRef, 0},
		{"same label", m.KindVariableReference, m.KindVariableReference, false, "x", m.PatternWrongVarRef, 0},
		{"variable to literal", m.KindVariableReference, m.KindLiteral, false, "1", m.PatternWrongVarRef, 0},
		{"call renamed", m.KindInvocation, m.KindInvocation, false, "y", m.PatternWrongMethodRef, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTree()
			beforeBody, afterBody := b.methodBody()

			beforeAssign, afterAssign := b.unchanged(m.KindAssignment, beforeBody, afterBody, m.RoleStatement, "=")
			src := b.before(tt.kind, beforeAssign, m.RoleRight, "x")
			dst := b.after(tt.dstKind, afterAssign, m.RoleRight, tt.to)
			b.pair(src, dst)
			b.update(src, dst)

			if tt.constant {
				b.constant(src)
			}

			patterns := run(t, DetectWrongReference, b.script(t))
			assert.Equal(t, tt.want, patterns.FeatureCounter(tt.pattern))

			if tt.want > 0 {
				instance := patterns.Instances(tt.pattern)[0]
				assert.Equal(t, []m.NodeID{src}, instance.Faulty)
				assert.Equal(t, beforeAssign, instance.Statement)
			}
		})
	}
}

func TestDetectWrongReference_UpdateUnderMovedParent(t *testing.T) {
	b := newTree()
	beforeBody, afterBody := b.methodBody()

	beforeCall, afterCall := b.moved(m.KindInvocation, beforeBody, afterBody, m.RoleStatement, "log")
	src := b.before(m.KindVariableReference, beforeCall, m.RoleArgument, "x")
	dst := b.after(m.KindVariableReference, afterCall, m.RoleArgument, "y")
	b.pair(src, dst)
	b.update(src, dst)

	patterns := run(t, DetectWrongReference, b.script(t))
	assert.Zero(t, patterns.FeatureCounter(m.PatternWrongVarRef))
}

func TestDetectWrongReference_DeleteInsert(t *testing.T) {
	tests := []struct {
		name    string
		kind    m.Kind
		newKind m.Kind
		newRole m.Role
		label   string
		pattern m.PatternName
		want    int
	}{
		{"variable replaced", m.KindVariableReference, m.KindVariableReference, m.RoleRight, "y", m.PatternWrongVarRef, 1},
		{"variable in another slot", m.KindVariableReference, m.KindVariableReference, m.RoleLeft, "y", m.PatternWrongVarRef, 0},
		{"variable replaced by literal", m.KindVariableReference, m.KindLiteral, m.RoleRight, "1", m.PatternWrongVarRef, 0},
		{"call replaced", m.KindInvocation, m.KindInvocation, m.RoleRight, "y", m.PatternWrongMethodRef, 1},
		{"same call", m.KindInvocation, m.KindInvocation, m.RoleRight, "x", m.PatternWrongMethodRef, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTree()
			beforeBody, afterBody := b.methodBody()

			beforeAssign, afterAssign := b.unchanged(m.KindAssignment, beforeBody, afterBody, m.RoleStatement, "=")
			old := b.before(tt.kind, beforeAssign, m.RoleRight, "x", m.TagDeleted)
			b.delete(old)
			b.insert(b.after(tt.newKind, afterAssign, tt.newRole, tt.label, m.TagNew))

			patterns := run(t, DetectWrongReference, b.script(t))
			assert.Equal(t, tt.want, patterns.FeatureCounter(tt.pattern))
		})
	}
}

func TestDetectWrongReference_CallWrappingOldCall(t *testing.T) {
	b := newTree()
	beforeBody, afterBody := b.methodBody()

	beforeReturn, afterReturn := b.unchanged(m.KindReturn, beforeBody, afterBody, m.RoleStatement, "return")
	old := b.before(m.KindInvocation, beforeReturn, m.RoleExpression, "load", m.TagDeleted)
	b.delete(old)

	wrapper := b.after(m.KindInvocation, afterReturn, m.RoleExpression, "cached", m.TagNew)
	b.insert(wrapper)
	b.insert(b.after(m.KindInvocation, wrapper, m.RoleArgument, "load", m.TagNew))

	patterns := run(t, DetectWrongReference, b.script(t))
	assert.Zero(t, patterns.FeatureCounter(m.PatternWrongMethodRef))
}

func TestDetectWrongReference_InsertUsedOnce(t *testing.T) {
	b := newTree()
	beforeBody, afterBody := b.methodBody()

	beforeCall, afterCall := b.unchanged(m.KindInvocation, beforeBody, afterBody, m.RoleStatement, "max")
	b.delete(b.before(m.KindVariableReference, beforeCall, m.RoleArgument, "a", m.TagDeleted))
	b.delete(b.before(m.KindVariableReference, beforeCall, m.RoleArgument, "b", m.TagDeleted))
	b.insert(b.after(m.KindVariableReference, afterCall, m.RoleArgument, "c", m.TagNew))

	patterns := run(t, DetectWrongReference, b.script(t))

	require.Equal(t, 1, patterns.FeatureCounter(m.PatternWrongVarRef))
	assert.Equal(t, 0, patterns.Instances(m.PatternWrongVarRef)[0].Operation.Index)
}
