// Package domain runs repair-pattern detection over change-sets and drives the
// detect, list, view and merge workflows.
package domain

import (
	"errors"
	"fmt"
	"strings"

	"repattern.dev/pkg/repattern/internal/domain/detectors"
	m "repattern.dev/pkg/repattern/internal/model"
)

// DetectFunc scans a whole edit script and records its matches into patterns.
type DetectFunc func(script *m.EditScript, patterns *m.RepairPatterns)

// ErrUnknownFamily is returned when a requested pattern family has no detector.
var ErrUnknownFamily = errors.New("unknown pattern family")

// DefaultFamilies lists every family in the order detection runs them.
var DefaultFamilies = []m.Family{
	m.FamilyConstChange,
	m.FamilyWrapsWith,
	m.FamilyWrongReference,
	m.FamilyCopyPaste,
	m.FamilyMissNullCheck,
	m.FamilySingleLine,
	m.FamilyCondBlock,
	m.FamilyExpression,
	m.FamilyCodeMove,
}

var familyDetectors = map[m.Family]DetectFunc{
	m.FamilyConstChange:    detectors.DetectConstantChange,
	m.FamilyWrapsWith:      detectors.DetectWrapsWith,
	m.FamilyWrongReference: detectors.DetectWrongReference,
	m.FamilyCopyPaste:      detectors.DetectCopyPaste,
	m.FamilyMissNullCheck:  detectors.DetectMissNullCheck,
	m.FamilySingleLine:     detectors.DetectSingleLine,
	m.FamilyCondBlock:      detectors.DetectCondBlock,
	m.FamilyExpression:     detectors.DetectExpressionFix,
	m.FamilyCodeMove:       detectors.DetectCodeMove,
}

// resolveFamilies returns the families to run, in request order without duplicates.
// An empty request selects DefaultFamilies.
func resolveFamilies(families []m.Family) ([]m.Family, error) {
	if len(families) == 0 {
		return DefaultFamilies, nil
	}

	seen := make(map[m.Family]bool, len(families))
	resolved := make([]m.Family, 0, len(families))

	for _, family := range families {
		if _, ok := familyDetectors[family]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownFamily, family)
		}

		if seen[family] {
			continue
		}

		seen[family] = true
		resolved = append(resolved, family)
	}

	return resolved, nil
}

// ParseFamilies resolves family names case-insensitively, as found in config files
// and flags. Blank names are ignored.
func ParseFamilies(names []string) ([]m.Family, error) {
	families := make([]m.Family, 0, len(names))

	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		family, ok := lookupFamily(name)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownFamily, name)
		}

		families = append(families, family)
	}

	return families, nil
}

func lookupFamily(name string) (m.Family, bool) {
	for family := range familyDetectors {
		if strings.EqualFold(string(family), name) {
			return family, true
		}
	}

	return "", false
}
