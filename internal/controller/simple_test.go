package controller

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "repattern.dev/pkg/repattern/internal/model"
)

func newTestCommand() (*cobra.Command, *bytes.Buffer) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	return cmd, &buf
}

func TestSimpleUI_DisplaySummary(t *testing.T) {
	tests := []struct {
		name            string
		reports         []m.ChangeSetReport
		skipped         int
		wantContains    []string
		wantNotContains []string
	}{
		{
			name:         "empty run",
			wantContains: []string{"Repair patterns", "TOTAL"},
		},
		{
			name: "counts and change-sets per pattern",
			reports: []m.ChangeSetReport{
				{ID: "a", Counters: map[m.PatternName]int{m.PatternWrapsIf: 2, m.PatternConstChange: 1}},
				{ID: "b", Counters: map[m.PatternName]int{m.PatternWrapsIf: 1}},
			},
			wantContains:    []string{"wrapsIf", "constChange", "3"},
			wantNotContains: []string{"codeMove", "Skipped"},
		},
		{
			name:         "skipped change-sets",
			skipped:      4,
			wantContains: []string{"Skipped change-sets: 4"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, buf := newTestCommand()

			summary := m.NewSummary("run")
			for _, report := range tt.reports {
				summary.Add(report)
			}

			summary.Skipped = tt.skipped

			require.NoError(t, NewSimpleUI(cmd).DisplaySummary(context.Background(), summary))

			got := buf.String()
			for _, want := range tt.wantContains {
				assert.Contains(t, got, want)
			}

			for _, unwanted := range tt.wantNotContains {
				assert.NotContains(t, got, unwanted)
			}
		})
	}
}

func TestSimpleUI_DisplayChangeSetResult(t *testing.T) {
	tests := []struct {
		name   string
		report m.ChangeSetReport
		want   string
	}{
		{
			name:   "no patterns",
			report: m.ChangeSetReport{ID: "short", File: "Foo.java"},
			want:   "short Foo.java: no patterns\n",
		},
		{
			name: "several patterns",
			report: m.ChangeSetReport{
				ID:       "0123456789abcdef",
				Source:   "changes/a.json",
				Counters: map[m.PatternName]int{m.PatternWrapsIf: 2, m.PatternConstChange: 1, m.PatternCodeMove: 0},
			},
			want: "01234567 changes/a.json: constChange, wrapsIf x2\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, buf := newTestCommand()

			NewSimpleUI(cmd).DisplayChangeSetResult(context.Background(), tt.report)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestSimpleUI_DisplayConcurrencyInfo(t *testing.T) {
	cmd, buf := newTestCommand()
	ui := NewSimpleUI(cmd)

	ui.DisplayConcurrencyInfo(context.Background(), 10, 4, 0, 0)
	ui.DisplayConcurrencyInfo(context.Background(), 5, 2, 1, 3)

	assert.Equal(t,
		"Detecting patterns in 10 change-set(s) with 4 worker(s)\n"+
			"Detecting patterns in 5 change-set(s) with 2 worker(s) (Shard 1/3)\n",
		buf.String())
}

func TestSimpleUI_DisplaySkipped(t *testing.T) {
	cmd, buf := newTestCommand()

	NewSimpleUI(cmd).DisplaySkipped(context.Background(), "bad.json", errors.New("invalid edit script"))
	assert.Equal(t, "Skipped bad.json: invalid edit script\n", buf.String())
}

func TestSimpleUI_DisplayFamilies(t *testing.T) {
	cmd, buf := newTestCommand()

	err := NewSimpleUI(cmd).DisplayFamilies(context.Background(), m.FamilyPatterns)
	require.NoError(t, err)

	got := buf.String()
	for family, patterns := range m.FamilyPatterns {
		assert.Contains(t, got, string(family))

		for _, pattern := range patterns {
			assert.Contains(t, got, string(pattern))
		}
	}

	assert.Less(t, strings.Index(got, "codeMove"), strings.Index(got, "wrapsWith"))
}

func TestSimpleUI_DisplayReports(t *testing.T) {
	cmd, buf := newTestCommand()

	reports := []m.ChangeSetReport{
		{ID: "a", File: "A.java", Counters: map[m.PatternName]int{m.PatternWrapsLoop: 1}},
		{ID: "b", File: "B.java"},
	}

	summary := m.NewSummary("run")
	for _, report := range reports {
		summary.Add(report)
	}

	require.NoError(t, NewSimpleUI(cmd).DisplayReports(context.Background(), reports, summary))

	got := buf.String()
	assert.Contains(t, got, "Change-sets")
	assert.Contains(t, got, "A.java")
	assert.Contains(t, got, "wrapsLoop")
	assert.Contains(t, got, "B.java")
	assert.Contains(t, got, noPatternsLabel)
	assert.Contains(t, got, "Repair patterns")
}

func TestSimpleUI_CancelledContext(t *testing.T) {
	cmd, buf := newTestCommand()
	ui := NewSimpleUI(cmd)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.Error(t, ui.Start(ctx))
	require.Error(t, ui.DisplaySummary(ctx, m.NewSummary("run")))
	ui.DisplayChangeSetResult(ctx, m.ChangeSetReport{ID: "a"})
	ui.DisplaySkipped(ctx, "a.json", errors.New("x"))

	assert.Empty(t, buf.String())
}

func TestNewUI(t *testing.T) {
	cmd, _ := newTestCommand()

	assert.IsType(t, &SimpleUI{}, NewUI(cmd, false))
	assert.IsType(t, &TUI{}, NewUI(cmd, true))
	assert.False(t, IsTTY(&bytes.Buffer{}))
}

func TestNewStartConfig(t *testing.T) {
	assert.Equal(t, ModeDetect, NewStartConfig().Mode())
	assert.Equal(t, ModeView, NewStartConfig(WithViewMode()).Mode())
	assert.Equal(t, ModeList, NewStartConfig(WithDetectMode(), WithListMode()).Mode())
}
