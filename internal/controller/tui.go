package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "repattern.dev/pkg/repattern/internal/model"
)

const (
	browserChrome    = 8 // heading, summary, help and borders
	browserMinHeight = 5
)

var (
	faintStyle  = lipgloss.NewStyle().Faint(true)
	detailStyle = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
)

// TUI streams detection progress like SimpleUI and opens an interactive
// report browser for view.
type TUI struct {
	*SimpleUI
	output io.Writer
	runner func(tea.Model, io.Writer) error
}

// NewTUI creates a new TUI writing to the command's output.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{
		SimpleUI: NewSimpleUI(cmd),
		output:   cmd.OutOrStdout(),
		runner:   runProgram,
	}
}

// DisplayReports opens the report browser. Small report sets are printed and the
// call returns without taking over the terminal.
func (t *TUI) DisplayReports(ctx context.Context, reports []m.ChangeSetReport, summary m.Summary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	browser := newReportBrowser(reports, summary)

	if f, ok := t.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			browser = browser.resize(width, height)
		}
	}

	if !browser.needsPagination() {
		return t.SimpleUI.DisplayReports(ctx, reports, summary)
	}

	return t.runner(browser, t.output)
}

func runProgram(model tea.Model, output io.Writer) error {
	program := tea.NewProgram(model, tea.WithOutput(output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run report browser: %w", err)
	}

	return nil
}

// reportBrowser lists change-sets in a table; enter toggles the instances of the
// selected one.
type reportBrowser struct {
	reports    []m.ChangeSetReport
	summary    m.Summary
	table      table.Model
	height     int
	width      int
	showDetail bool
	quitting   bool
}

func newReportBrowser(reports []m.ChangeSetReport, summary m.Summary) reportBrowser {
	columns := []table.Column{
		{Title: "Change-set", Width: 10},
		{Title: "File", Width: 40},
		{Title: "Patterns", Width: 50},
	}

	rows := make([]table.Row, 0, len(reports))
	for _, report := range reports {
		rows = append(rows, table.Row{shortID(report.ID), reportFile(report), matchedPatterns(report)})
	}

	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).BorderStyle(lipgloss.NormalBorder()).BorderBottom(true)
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))

	tbl := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
	)
	tbl.SetStyles(styles)

	return reportBrowser{
		reports: reports,
		summary: summary,
		table:   tbl,
	}
}

func (rb reportBrowser) resize(width, height int) reportBrowser {
	rb.width = width
	rb.height = height
	rb.table.SetHeight(max(height-browserChrome, browserMinHeight))

	if width > 0 {
		rb.table.SetWidth(width)
	}

	return rb
}

func (rb reportBrowser) needsPagination() bool {
	if rb.height == 0 {
		return false
	}

	return len(rb.reports) > rb.height-browserChrome
}

func (rb reportBrowser) Init() tea.Cmd {
	return nil
}

func (rb reportBrowser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return rb.resize(msg.Width, msg.Height), nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			rb.quitting = true
			return rb, tea.Quit
		case "enter":
			rb.showDetail = !rb.showDetail
			return rb, nil
		}
	}

	var cmd tea.Cmd

	rb.table, cmd = rb.table.Update(msg)

	return rb, cmd
}

func (rb reportBrowser) View() string {
	if rb.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(headingStyle.Render("Repair patterns"))
	fmt.Fprintf(&b, "  %d change-set(s), %d skipped\n\n", rb.summary.ChangeSets, rb.summary.Skipped)
	b.WriteString(rb.table.View())
	b.WriteString("\n")

	if rb.showDetail {
		b.WriteString(detailStyle.Render(rb.detail()))
		b.WriteString("\n")
	}

	b.WriteString(faintStyle.Render("↑/↓ move • enter details • q quit"))
	b.WriteString("\n")

	return b.String()
}

func (rb reportBrowser) selected() (m.ChangeSetReport, bool) {
	cursor := rb.table.Cursor()
	if cursor < 0 || cursor >= len(rb.reports) {
		return m.ChangeSetReport{}, false
	}

	return rb.reports[cursor], true
}

func (rb reportBrowser) detail() string {
	report, ok := rb.selected()
	if !ok {
		return "nothing selected"
	}

	if len(report.Instances) == 0 {
		return fmt.Sprintf("%s: %s", reportFile(report), noPatternsLabel)
	}

	lines := []string{reportFile(report)}

	for _, instance := range report.Instances {
		line := fmt.Sprintf("%-22s %s", instance.Pattern, instance.Operation)
		if instance.Line.StartLine > 0 {
			line += fmt.Sprintf("  line %d", instance.Line.StartLine)
		}

		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}
