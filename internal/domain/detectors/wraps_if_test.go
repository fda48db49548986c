package detectors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "repattern.dev/pkg/repattern/internal/model"
)

// newIf inserts "if (cond) { }" under parent and returns the conditional and its then block.
func (b *treeBuilder) newIf(parent m.NodeID) (m.NodeID, m.NodeID) {
	cond := b.after(m.KindConditional, parent, m.RoleStatement, "if", m.TagNew)
	check := b.after(m.KindVariableReference, cond, m.RoleCondition, "ready", m.TagNew)
	then := b.after(m.KindBlock, cond, m.RoleThen, "", m.TagNew)

	b.insert(cond)
	b.insert(check)
	b.insert(then)

	return cond, then
}

func TestDetectWrapsWith_WrapsIf(t *testing.T) {
	b := newTree()
	beforeBody, afterBody := b.methodBody()

	cond, then := b.newIf(afterBody)
	stmt, _ := b.moved(m.KindInvocation, beforeBody, then, m.RoleStatement, "save")

	patterns := run(t, DetectWrapsWith, b.script(t))

	assert.Equal(t, 1, patterns.FeatureCounter(m.PatternWrapsIf))
	assert.Zero(t, patterns.FeatureCounter(m.PatternWrapsIfElse))
	assert.Zero(t, patterns.FeatureCounter(m.PatternUnwrapIfElse))

	instances := patterns.Instances(m.PatternWrapsIf)
	require.Len(t, instances, 1)
	assert.Equal(t, cond, instances[0].Operation.Node)
	assert.Equal(t, stmt, instances[0].Statement)
}

func TestDetectWrapsWith_UnwrapIf(t *testing.T) {
	b := newTree()
	beforeBody, afterBody := b.methodBody()

	cond := b.before(m.KindConditional, beforeBody, m.RoleStatement, "if", m.TagDeleted)
	check := b.before(m.KindVariableReference, cond, m.RoleCondition, "ready", m.TagDeleted)
	then := b.before(m.KindBlock, cond, m.RoleThen, "", m.TagDeleted)
	b.delete(cond)
	b.delete(check)
	b.delete(then)
	b.moved(m.KindInvocation, then, afterBody, m.RoleStatement, "save")

	patterns := run(t, DetectWrapsWith, b.script(t))

	assert.Equal(t, 1, patterns.FeatureCounter(m.PatternUnwrapIfElse))
	assert.Zero(t, patterns.FeatureCounter(m.PatternWrapsIf))

	instances := patterns.Instances(m.PatternUnwrapIfElse)
	require.Len(t, instances, 1)
	assert.Equal(t, []m.NodeID{cond}, instances[0].Faulty)
}

func TestDetectWrapsWith_NoWrapOnWholeNewIf(t *testing.T) {
	b := newTree()
	_, afterBody := b.methodBody()

	_, then := b.newIf(afterBody)
	b.insert(b.after(m.KindReturn, then, m.RoleStatement, "return", m.TagNew))

	patterns := run(t, DetectWrapsWith, b.script(t))

	assert.Zero(t, patterns.FeatureCounter(m.PatternWrapsIf))
	assert.Zero(t, patterns.FeatureCounter(m.PatternWrapsIfElse))
	assert.Zero(t, patterns.FeatureCounter(m.PatternWrapsElse))
}

func TestDetectWrapsWith_WrapsIfElse(t *testing.T) {
	b := newTree()
	beforeBody, afterBody := b.methodBody()

	cond, then := b.newIf(afterBody)
	b.insert(b.after(m.KindReturn, then, m.RoleStatement, "return", m.TagNew))

	elseBlock := b.after(m.KindBlock, cond, m.RoleElse, "", m.TagNew)
	b.insert(elseBlock)
	b.moved(m.KindInvocation, beforeBody, elseBlock, m.RoleStatement, "save")

	patterns := run(t, DetectWrapsWith, b.script(t))

	assert.Equal(t, 1, patterns.FeatureCounter(m.PatternWrapsIfElse))
	assert.Zero(t, patterns.FeatureCounter(m.PatternWrapsIf))
}

func TestDetectWrapsWith_WrapsElse(t *testing.T) {
	b := newTree()
	beforeBody, afterBody := b.methodBody()

	beforeIf, afterIf := b.unchanged(m.KindConditional, beforeBody, afterBody, m.RoleStatement, "if")
	b.unchanged(m.KindVariableReference, beforeIf, afterIf, m.RoleCondition, "ready")
	beforeThen := b.before(m.KindBlock, beforeIf, m.RoleThen, "", m.TagMoved, m.TagMovingSource)

	newThen := b.after(m.KindBlock, afterIf, m.RoleThen, "", m.TagNew)
	b.insert(newThen)
	b.insert(b.after(m.KindThrow, newThen, m.RoleStatement, "throw", m.TagNew))

	elseBlock := b.after(m.KindBlock, afterIf, m.RoleElse, "", m.TagMoved, m.TagMovingDestination)
	b.pair(beforeThen, elseBlock)
	b.move(beforeThen, elseBlock)
	b.unchanged(m.KindInvocation, beforeThen, elseBlock, m.RoleStatement, "save")

	patterns := run(t, DetectWrapsWith, b.script(t))

	assert.Equal(t, 1, patterns.FeatureCounter(m.PatternWrapsElse))
	assert.Zero(t, patterns.FeatureCounter(m.PatternWrapsIf))
	assert.Zero(t, patterns.FeatureCounter(m.PatternWrapsIfElse))
}

func TestDetectWrapsWith_NewBranchOfOldIfWithoutOldContent(t *testing.T) {
	b := newTree()
	beforeBody, afterBody := b.methodBody()

	beforeIf, afterIf := b.unchanged(m.KindConditional, beforeBody, afterBody, m.RoleStatement, "if")
	b.unchanged(m.KindVariableReference, beforeIf, afterIf, m.RoleCondition, "ready")
	b.unchanged(m.KindBlock, beforeIf, afterIf, m.RoleThen, "")

	elseBlock := b.after(m.KindBlock, afterIf, m.RoleElse, "", m.TagNew)
	b.insert(elseBlock)
	b.insert(b.after(m.KindReturn, elseBlock, m.RoleStatement, "return", m.TagNew))

	patterns := run(t, DetectWrapsWith, b.script(t))

	assert.Zero(t, patterns.FeatureCounter(m.PatternWrapsElse))
}

func TestDetectWrapsWith_Ternary(t *testing.T) {
	tests := []struct {
		name         string
		oldStatement bool
		oldCondition bool
		oldThen      bool
		want         int
	}{
		{"keeps old then expression", true, false, true, 1},
		{"all new inside new statement", false, false, false, 0},
		{"new branches around old condition in old statement", true, true, false, 1},
		{"new branches and new condition in old statement", true, false, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTree()
			beforeBody, afterBody := b.methodBody()

			var stmt m.NodeID
			if tt.oldStatement {
				_, stmt = b.unchanged(m.KindReturn, beforeBody, afterBody, m.RoleStatement, "return")
			} else {
				stmt = b.after(m.KindReturn, afterBody, m.RoleStatement, "return", m.TagNew)
				b.insert(stmt)
			}

			ternary := b.after(m.KindTernary, stmt, m.RoleExpression, "?:", m.TagNew)
			b.insert(ternary)

			if tt.oldCondition {
				b.moved(m.KindVariableReference, beforeBody, ternary, m.RoleCondition, "ready")
			} else {
				b.insert(b.after(m.KindVariableReference, ternary, m.RoleCondition, "ready", m.TagNew))
			}

			if tt.oldThen {
				b.moved(m.KindVariableReference, beforeBody, ternary, m.RoleThen, "value")
			} else {
				b.insert(b.after(m.KindVariableReference, ternary, m.RoleThen, "value", m.TagNew))
			}

			b.insert(b.after(m.KindLiteral, ternary, m.RoleElse, "0", m.TagNew))

			patterns := run(t, DetectWrapsWith, b.script(t))
			assert.Equal(t, tt.want, patterns.FeatureCounter(m.PatternWrapsIfElse))
		})
	}
}

func TestDetectWrapsWith_DeletedTernaryInSurvivingStatement(t *testing.T) {
	b := newTree()
	beforeBody, afterBody := b.methodBody()

	beforeReturn, afterReturn := b.unchanged(m.KindReturn, beforeBody, afterBody, m.RoleStatement, "return")
	ternary := b.before(m.KindTernary, beforeReturn, m.RoleExpression, "?:", m.TagDeleted)
	b.delete(ternary)
	b.delete(b.before(m.KindVariableReference, ternary, m.RoleCondition, "ready", m.TagDeleted))
	b.moved(m.KindVariableReference, ternary, afterReturn, m.RoleThen, "value")
	b.delete(b.before(m.KindLiteral, ternary, m.RoleElse, "0", m.TagDeleted))

	patterns := run(t, DetectWrapsWith, b.script(t))
	assert.Equal(t, 1, patterns.FeatureCounter(m.PatternUnwrapIfElse))
}
