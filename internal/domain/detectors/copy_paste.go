package detectors

import (
	"github.com/pmezard/go-difflib/difflib"

	m "repattern.dev/pkg/repattern/internal/model"
)

const (
	copyPasteMinNodes = 3
	copyPasteMinRatio = 0.9
)

// DetectCopyPaste records new statements that structurally mirror unchanged code in the
// same method.
func DetectCopyPaste(s *m.EditScript, patterns *m.RepairPatterns) {
	for _, op := range s.Operations {
		if op.Kind != m.OpInsert {
			continue
		}

		n := s.Node(op.Node)
		if n == nil || !n.IsNew() || !(n.Kind.IsStatement() || n.Kind == m.KindBlock) {
			continue
		}

		parent := s.Parent(n.ID)
		if parent == nil || parent.IsNew() {
			continue
		}

		shape := structuralTokens(s, n)
		if len(shape) < copyPasteMinNodes {
			continue
		}

		if original := mirroredCode(s, n, shape); original != nil {
			patterns.IncrementFeatureCounter(m.PatternCopyPaste, op, evidence(s, original))
		}
	}
}

// structuralTokens flattens a subtree to kind/role tokens in preorder.
func structuralTokens(s *m.EditScript, root *m.Node) []string {
	nodes := s.Subtree(root.ID)

	tokens := make([]string, 0, len(nodes))
	for _, n := range nodes {
		tokens = append(tokens, n.Kind.String()+"/"+string(n.Role))
	}

	return tokens
}

func mirroredCode(s *m.EditScript, inserted *m.Node, shape []string) *m.Node {
	scope := EnclosingMethod(s, inserted)

	for _, candidate := range s.Subtree(scope.ID) {
		if candidate.Kind != inserted.Kind || candidate.ID == inserted.ID {
			continue
		}

		if s.IsAncestor(inserted.ID, candidate.ID) || s.IsAncestor(candidate.ID, inserted.ID) {
			continue
		}

		if !unchangedSubtree(s, candidate) {
			continue
		}

		if candidate.Kind == m.KindBlock && !ContainsOnlyPreexistingStatements(s.Children(candidate.ID)) {
			continue
		}

		matcher := difflib.NewMatcher(shape, structuralTokens(s, candidate))
		if matcher.Ratio() >= copyPasteMinRatio {
			return candidate
		}
	}

	return nil
}

func unchangedSubtree(s *m.EditScript, root *m.Node) bool {
	for _, n := range s.Subtree(root.ID) {
		if n.IsNew() {
			return false
		}
	}

	return true
}
