package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "repattern.dev/pkg/repattern/internal/model"
)

func TestFamilyRegistry(t *testing.T) {
	t.Run("every family has a detector", func(t *testing.T) {
		for _, family := range m.Families() {
			assert.Contains(t, familyDetectors, family)
		}

		assert.Len(t, familyDetectors, len(m.FamilyPatterns))
	})

	t.Run("defaults cover every family once", func(t *testing.T) {
		assert.ElementsMatch(t, m.Families(), DefaultFamilies)
	})
}

func TestResolveFamilies(t *testing.T) {
	tests := []struct {
		name    string
		input   []m.Family
		want    []m.Family
		wantErr bool
	}{
		{name: "empty selects defaults", input: nil, want: DefaultFamilies},
		{name: "keeps request order", input: []m.Family{m.FamilyCodeMove, m.FamilyConstChange}, want: []m.Family{m.FamilyCodeMove, m.FamilyConstChange}},
		{name: "drops duplicates", input: []m.Family{m.FamilyWrapsWith, m.FamilyWrapsWith}, want: []m.Family{m.FamilyWrapsWith}},
		{name: "unknown family", input: []m.Family{"bogus"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveFamilies(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownFamily)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFamilies(t *testing.T) {
	families, err := ParseFamilies([]string{"WRAPSWITH", " constChange ", ""})
	require.NoError(t, err)
	assert.Equal(t, []m.Family{m.FamilyWrapsWith, m.FamilyConstChange}, families)

	_, err = ParseFamilies([]string{"wrapsWith", "nope"})
	require.ErrorIs(t, err, ErrUnknownFamily)
	assert.Contains(t, err.Error(), "nope")
}
