package controller

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "repattern.dev/pkg/repattern/internal/model"
)

var headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))

const noPatternsLabel = "no patterns"

// SimpleUI implements UI using cobra Command's output.
// Progress lines may come from several detection workers at once.
type SimpleUI struct {
	cmd *cobra.Command
	mu  sync.Mutex
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, _ ...StartOption) error {
	return ctx.Err()
}

// Close finalizes the UI.
func (s *SimpleUI) Close(_ context.Context) {}

// Wait blocks until the UI is closed (no-op for SimpleUI).
func (s *SimpleUI) Wait(_ context.Context) {}

// DisplayConcurrencyInfo shows the run size and concurrency settings.
func (s *SimpleUI) DisplayConcurrencyInfo(ctx context.Context, changeSets int, threads int, shardIndex int, shardCount int) {
	if ctx.Err() != nil {
		return
	}

	if shardCount > 1 {
		s.printf("Detecting patterns in %d change-set(s) with %d worker(s) (Shard %d/%d)\n", changeSets, threads, shardIndex, shardCount)
		return
	}

	s.printf("Detecting patterns in %d change-set(s) with %d worker(s)\n", changeSets, threads)
}

// DisplayChangeSetResult prints one line per processed change-set.
func (s *SimpleUI) DisplayChangeSetResult(ctx context.Context, report m.ChangeSetReport) {
	if ctx.Err() != nil {
		return
	}

	s.printf("%s %s: %s\n", shortID(report.ID), reportFile(report), matchedPatterns(report))
}

// DisplaySkipped reports a change-set that could not be loaded.
func (s *SimpleUI) DisplaySkipped(ctx context.Context, path m.Path, err error) {
	if ctx.Err() != nil {
		return
	}

	s.printf("Skipped %s: %v\n", path, err)
}

// DisplaySummary prints the per-pattern totals of a run.
func (s *SimpleUI) DisplaySummary(ctx context.Context, summary m.Summary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s\n%s", headingStyle.Render("Repair patterns"), renderSummaryTable(summary))

	if summary.Skipped > 0 {
		s.printf("Skipped change-sets: %d\n", summary.Skipped)
	}

	return nil
}

// DisplayFamilies prints every family with the patterns it reports.
func (s *SimpleUI) DisplayFamilies(ctx context.Context, families map[m.Family][]m.PatternName) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", renderFamiliesTable(families))

	return nil
}

// DisplayReports prints saved reports followed by their summary.
func (s *SimpleUI) DisplayReports(ctx context.Context, reports []m.ChangeSetReport, summary m.Summary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s\n%s", headingStyle.Render("Change-sets"), renderReportsTable(reports))

	return s.DisplaySummary(ctx, summary)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func renderSummaryTable(summary m.Summary) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Pattern", "Instances", "Change-sets"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER})

	total := 0

	for _, name := range sortedPatternNames(summary.Counters) {
		count := summary.Counters[name]
		if count == 0 {
			continue
		}

		total += count
		table.Append([]string{string(name), fmt.Sprintf("%d", count), fmt.Sprintf("%d", summary.ChangeSetsWith[name])})
	}

	table.SetFooter([]string{
		"Total",
		fmt.Sprintf("%d", total),
		fmt.Sprintf("%d", summary.ChangeSets),
	})

	table.Render()

	return tableBuffer.String()
}

func renderFamiliesTable(families map[m.Family][]m.PatternName) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Family", "Patterns"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	names := make([]string, 0, len(families))
	for family := range families {
		names = append(names, string(family))
	}

	sort.Strings(names)

	for _, name := range names {
		patterns := families[m.Family(name)]

		labels := make([]string, 0, len(patterns))
		for _, pattern := range patterns {
			labels = append(labels, string(pattern))
		}

		table.Append([]string{name, strings.Join(labels, ", ")})
	}

	table.Render()

	return tableBuffer.String()
}

func renderReportsTable(reports []m.ChangeSetReport) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Change-set", "File", "Patterns"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	for _, report := range reports {
		table.Append([]string{shortID(report.ID), reportFile(report), matchedPatterns(report)})
	}

	table.Render()

	return tableBuffer.String()
}

func sortedPatternNames(counters map[m.PatternName]int) []m.PatternName {
	names := make([]m.PatternName, 0, len(counters))
	for name := range counters {
		names = append(names, name)
	}

	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })

	return names
}

// matchedPatterns renders "name xN" for every pattern found, sorted by name.
func matchedPatterns(report m.ChangeSetReport) string {
	var parts []string

	for _, name := range sortedPatternNames(report.Counters) {
		switch count := report.Counters[name]; {
		case count == 1:
			parts = append(parts, string(name))
		case count > 1:
			parts = append(parts, fmt.Sprintf("%s x%d", name, count))
		}
	}

	if len(parts) == 0 {
		return noPatternsLabel
	}

	return strings.Join(parts, ", ")
}

func reportFile(report m.ChangeSetReport) string {
	if report.File != "" {
		return string(report.File)
	}

	return string(report.Source)
}

func shortID(id string) string {
	const width = 8
	if len(id) > width {
		return id[:width]
	}

	return id
}
