package detectors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "repattern.dev/pkg/repattern/internal/model"
)

func TestDetectCondBlock_Added(t *testing.T) {
	tests := []struct {
		name string
		kind m.Kind
		want m.PatternName
	}{
		{"return", m.KindReturn, m.PatternCondBlockRetAdd},
		{"throw", m.KindThrow, m.PatternCondBlockExcAdd},
		{"call", m.KindInvocation, m.PatternCondBlockOthers},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTree()
			_, afterBody := b.methodBody()

			cond, then := b.newIf(afterBody)
			b.insert(b.after(tt.kind, then, m.RoleStatement, tt.name, m.TagNew))

			patterns := run(t, DetectCondBlock, b.script(t))

			assert.Equal(t, 1, patterns.Total())
			require.Equal(t, 1, patterns.FeatureCounter(tt.want))
			assert.Equal(t, cond, patterns.Instances(tt.want)[0].Operation.Node)
		})
	}
}

func TestDetectCondBlock_ReturnWinsOverThrow(t *testing.T) {
	b := newTree()
	_, afterBody := b.methodBody()

	_, then := b.newIf(afterBody)
	b.insert(b.after(m.KindThrow, then, m.RoleStatement, "throw", m.TagNew))
	b.insert(b.after(m.KindReturn, then, m.RoleStatement, "return", m.TagNew))

	patterns := run(t, DetectCondBlock, b.script(t))

	assert.Equal(t, 1, patterns.FeatureCounter(m.PatternCondBlockRetAdd))
	assert.Zero(t, patterns.FeatureCounter(m.PatternCondBlockExcAdd))
}

func TestDetectCondBlock_LoneStatementBranch(t *testing.T) {
	b := newTree()
	_, afterBody := b.methodBody()

	cond := b.after(m.KindConditional, afterBody, m.RoleStatement, "if", m.TagNew)
	b.insert(cond)
	b.insert(b.after(m.KindVariableReference, cond, m.RoleCondition, "done", m.TagNew))
	b.insert(b.after(m.KindReturn, cond, m.RoleThen, "return", m.TagNew))

	patterns := run(t, DetectCondBlock, b.script(t))
	assert.Equal(t, 1, patterns.FeatureCounter(m.PatternCondBlockRetAdd))
}

func TestDetectCondBlock_NestedCountsOnce(t *testing.T) {
	b := newTree()
	_, afterBody := b.methodBody()

	_, outerThen := b.newIf(afterBody)
	_, innerThen := b.newIf(outerThen)
	b.insert(b.after(m.KindReturn, innerThen, m.RoleStatement, "return", m.TagNew))

	patterns := run(t, DetectCondBlock, b.script(t))

	assert.Equal(t, 1, patterns.Total())
	assert.Equal(t, 1, patterns.FeatureCounter(m.PatternCondBlockOthers))
}

func TestDetectCondBlock_WrapIsNotBlockAddition(t *testing.T) {
	b := newTree()
	beforeBody, afterBody := b.methodBody()

	_, then := b.newIf(afterBody)
	b.moved(m.KindInvocation, beforeBody, then, m.RoleStatement, "save")

	patterns := run(t, DetectCondBlock, b.script(t))
	assert.Zero(t, patterns.Total())
}

func TestDetectCondBlock_Removed(t *testing.T) {
	b := newTree()
	beforeBody, _ := b.methodBody()

	cond := b.before(m.KindConditional, beforeBody, m.RoleStatement, "if", m.TagDeleted)
	then := b.before(m.KindBlock, cond, m.RoleThen, "", m.TagDeleted)
	ret := b.before(m.KindReturn, then, m.RoleStatement, "return", m.TagDeleted)
	b.delete(cond)
	b.delete(then)
	b.delete(ret)

	patterns := run(t, DetectCondBlock, b.script(t))

	require.Equal(t, 1, patterns.FeatureCounter(m.PatternCondBlockRem))
	assert.Equal(t, []m.NodeID{cond}, patterns.Instances(m.PatternCondBlockRem)[0].Faulty)

	t.Run("with surviving content", func(t *testing.T) {
		b := newTree()
		beforeBody, afterBody := b.methodBody()

		cond := b.before(m.KindConditional, beforeBody, m.RoleStatement, "if", m.TagDeleted)
		then := b.before(m.KindBlock, cond, m.RoleThen, "", m.TagDeleted)
		b.delete(cond)
		b.delete(then)
		b.moved(m.KindReturn, then, afterBody, m.RoleStatement, "return")

		patterns := run(t, DetectCondBlock, b.script(t))
		assert.Zero(t, patterns.FeatureCounter(m.PatternCondBlockRem))
	})
}
