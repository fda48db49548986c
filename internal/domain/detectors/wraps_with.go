package detectors

import (
	m "repattern.dev/pkg/repattern/internal/model"
)

// DetectWrapsWith records statements that became enclosed by a new if, try, loop or
// method call, and the mirrored unwraps. The sub-detectors are independent scans.
func DetectWrapsWith(s *m.EditScript, patterns *m.RepairPatterns) {
	detectWrapsIf(s, patterns)
	detectUnwrapIf(s, patterns)
	detectWrapsTryCatch(s, patterns)
	detectUnwrapTryCatch(s, patterns)
	detectWrapsMethod(s, patterns)
	detectUnwrapMethod(s, patterns)
	detectWrapsLoop(s, patterns)
}

func preexisting(nodes []*m.Node) []*m.Node {
	var out []*m.Node

	for _, n := range nodes {
		if isPreexisting(n) {
			out = append(out, n)
		}
	}

	return out
}
