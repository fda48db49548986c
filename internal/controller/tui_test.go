package controller

import (
	"context"
	"fmt"
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "repattern.dev/pkg/repattern/internal/model"
)

func sampleReports(n int) []m.ChangeSetReport {
	reports := make([]m.ChangeSetReport, 0, n)
	for i := 0; i < n; i++ {
		reports = append(reports, m.ChangeSetReport{
			ID:       fmt.Sprintf("cs-%03d", i),
			File:     m.Path(fmt.Sprintf("File%d.java", i)),
			Counters: map[m.PatternName]int{m.PatternWrapsIf: 1},
			Instances: []m.PatternInstance{{
				Pattern:   m.PatternWrapsIf,
				Operation: m.Operation{Kind: m.OpInsert, Node: 3, Dst: m.NoNode},
				Line:      m.Span{StartLine: 10 + i, EndLine: 10 + i},
			}},
		})
	}

	return reports
}

func TestTUI_DisplayReports_SmallListPrints(t *testing.T) {
	cmd, buf := newTestCommand()
	tui := NewTUI(cmd)
	tui.runner = func(tea.Model, io.Writer) error {
		t.Fatal("browser should not start for output that is not a terminal")
		return nil
	}

	reports := sampleReports(2)
	require.NoError(t, tui.DisplayReports(context.Background(), reports, m.NewSummary("run")))
	assert.Contains(t, buf.String(), "File1.java")
}

func TestReportBrowser_Pagination(t *testing.T) {
	browser := newReportBrowser(sampleReports(30), m.NewSummary("run"))
	assert.False(t, browser.needsPagination(), "unknown height never paginates")

	assert.True(t, browser.resize(120, 20).needsPagination())
	assert.False(t, browser.resize(120, 60).needsPagination())
}

func TestReportBrowser_Update(t *testing.T) {
	browser := newReportBrowser(sampleReports(30), m.NewSummary("run")).resize(120, 20)

	t.Run("navigation moves the cursor", func(t *testing.T) {
		model, _ := browser.Update(tea.KeyMsg{Type: tea.KeyDown})
		moved := model.(reportBrowser)

		report, ok := moved.selected()
		require.True(t, ok)
		assert.Equal(t, "cs-001", report.ID)
	})

	t.Run("enter toggles details", func(t *testing.T) {
		model, _ := browser.Update(tea.KeyMsg{Type: tea.KeyEnter})
		detailed := model.(reportBrowser)

		assert.True(t, detailed.showDetail)
		assert.Contains(t, detailed.View(), "line 10")

		model, _ = detailed.Update(tea.KeyMsg{Type: tea.KeyEnter})
		assert.False(t, model.(reportBrowser).showDetail)
	})

	t.Run("quit keys", func(t *testing.T) {
		for _, key := range []tea.KeyMsg{
			{Type: tea.KeyRunes, Runes: []rune{'q'}},
			{Type: tea.KeyEsc},
			{Type: tea.KeyCtrlC},
		} {
			model, cmd := browser.Update(key)
			require.NotNil(t, cmd, key.String())
			assert.True(t, model.(reportBrowser).quitting)
			assert.Empty(t, model.View())
		}
	})

	t.Run("window resize", func(t *testing.T) {
		model, _ := browser.Update(tea.WindowSizeMsg{Width: 80, Height: 40})
		resized := model.(reportBrowser)

		assert.Equal(t, 80, resized.width)
		assert.Equal(t, 40, resized.height)
	})
}

func TestReportBrowser_View(t *testing.T) {
	summary := m.NewSummary("run")
	summary.ChangeSets = 3
	summary.Skipped = 1

	view := newReportBrowser(sampleReports(3), summary).resize(120, 20).View()

	assert.Contains(t, view, "Repair patterns")
	assert.Contains(t, view, "3 change-set(s), 1 skipped")
	assert.Contains(t, view, "cs-000")
	assert.Contains(t, view, "q quit")
}

func TestReportBrowser_DetailWithoutInstances(t *testing.T) {
	browser := newReportBrowser([]m.ChangeSetReport{{ID: "a", File: "A.java"}}, m.NewSummary("run"))
	assert.Equal(t, "A.java: "+noPatternsLabel, browser.detail())

	empty := newReportBrowser(nil, m.NewSummary("run"))
	assert.Equal(t, "nothing selected", empty.detail())
}
