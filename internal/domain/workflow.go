package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"sync/atomic"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"repattern.dev/pkg/repattern/internal/adapter"
	"repattern.dev/pkg/repattern/internal/controller"
	m "repattern.dev/pkg/repattern/internal/model"
	"repattern.dev/pkg/repattern/pkg"
)

// ErrNoShards is returned by Merge when there is nothing to merge.
var ErrNoShards = errors.New("no report shards to merge")

// DetectArgs contains the arguments for a detection run.
type DetectArgs struct {
	Paths           []m.Path
	Exclude         []string
	Reports         m.Path
	Threads         uint
	Families        []m.Family
	MetricsFile     m.Path
	ShardIndex      uint
	TotalShardCount uint
}

// ListArgs contains the arguments for listing pattern families.
type ListArgs struct {
	Families []m.Family
}

// ViewArgs contains the arguments for viewing saved reports.
type ViewArgs struct {
	Reports m.Path
}

// MergeArgs contains the arguments for merging report directories.
// With no Inputs the shard_* subdirectories of Reports are merged.
type MergeArgs struct {
	Reports m.Path
	Inputs  []m.Path
}

// Workflow drives the repattern commands.
type Workflow interface {
	Detect(ctx context.Context, args DetectArgs) error
	List(ctx context.Context, args ListArgs) error
	View(ctx context.Context, args ViewArgs) error
	Merge(ctx context.Context, args MergeArgs) error
}

type workflow struct {
	adapter.SourceFSAdapter
	adapter.EditScriptAdapter
	adapter.ReportStore
	controller.UI
	Orchestrator
	metrics *Metrics
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
// metrics may be nil.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	scriptAdapter adapter.EditScriptAdapter,
	reportStore adapter.ReportStore,
	ui controller.UI,
	orchestrator Orchestrator,
	metrics *Metrics,
) Workflow {
	return &workflow{
		SourceFSAdapter:   fsAdapter,
		EditScriptAdapter: scriptAdapter,
		ReportStore:       reportStore,
		UI:                ui,
		Orchestrator:      orchestrator,
		metrics:           metrics,
	}
}

func (w *workflow) Detect(ctx context.Context, args DetectArgs) error {
	families, err := resolveFamilies(args.Families)
	if err != nil {
		return err
	}

	if err := w.Start(ctx, controller.WithDetectMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}

	defer w.Close(ctx)

	paths, err := w.Get(ctx, args.Paths, args.Exclude...)
	if err != nil {
		slog.Error("Failed to discover change-sets", "paths", args.Paths, "error", err)
		return fmt.Errorf("failed to discover change-sets: %w", err)
	}

	paths = ShardPaths(paths, args.ShardIndex, args.TotalShardCount)
	threads := max(int(args.Threads), 1)

	w.DisplayConcurrencyInfo(ctx, len(paths), threads, int(args.ShardIndex), int(args.TotalShardCount))

	spill, err := pkg.NewSpill[m.ChangeSetReport]()
	if err != nil {
		return fmt.Errorf("failed to create report spill: %w", err)
	}

	defer func() {
		_ = spill.Close()
	}()

	var skipped atomic.Int64

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(threads)

	for _, path := range paths {
		currentPath := path

		group.Go(func() error {
			return w.detectChangeSet(groupCtx, currentPath, families, spill, &skipped)
		})
	}

	if err := group.Wait(); err != nil {
		return fmt.Errorf("failed to detect patterns: %w", err)
	}

	reports, err := collectReports(spill)
	if err != nil {
		return err
	}

	summary := m.NewSummary(uuid.NewString())
	for _, report := range reports {
		summary.Add(report)
	}

	summary.Skipped = int(skipped.Load())

	output := ShardReportsDir(args.Reports, args.ShardIndex, args.TotalShardCount)
	if err := w.SaveReports(output, reports, summary); err != nil {
		slog.Error("Failed to save reports", "path", output, "error", err)
		return fmt.Errorf("failed to save reports: %w", err)
	}

	if err := w.metrics.WriteTextfile(args.MetricsFile); err != nil {
		slog.Error("Failed to export metrics", "path", args.MetricsFile, "error", err)
		return err
	}

	slog.Info("Detection finished", "runID", summary.RunID, "changeSets", summary.ChangeSets, "skipped", summary.Skipped)

	return w.DisplaySummary(ctx, summary)
}

func (w *workflow) detectChangeSet(
	ctx context.Context,
	path m.Path,
	families []m.Family,
	spill pkg.Spill[m.ChangeSetReport],
	skipped *atomic.Int64,
) error {
	script, err := w.Load(ctx, path)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		slog.Error("Failed to load change-set", "path", path, "error", err)
		skipped.Add(1)
		w.metrics.RecordSkipped()
		w.DisplaySkipped(ctx, path, err)

		return nil
	}

	patterns, err := w.DetectAll(ctx, script, families...)
	if err != nil {
		return err
	}

	report := m.NewChangeSetReport(script, path, patterns)
	if err := spill.Append(report); err != nil {
		return fmt.Errorf("failed to spill report for %s: %w", path, err)
	}

	w.metrics.RecordReport(report)
	w.DisplayChangeSetResult(ctx, report)

	return nil
}

func (w *workflow) List(ctx context.Context, args ListArgs) error {
	families, err := resolveFamilies(args.Families)
	if err != nil {
		return err
	}

	if err := w.Start(ctx, controller.WithListMode()); err != nil {
		return err
	}

	defer w.Close(ctx)

	listing := make(map[m.Family][]m.PatternName, len(families))
	for _, family := range families {
		listing[family] = m.FamilyPatterns[family]
	}

	return w.DisplayFamilies(ctx, listing)
}

func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	reports, summary, err := w.LoadReports(args.Reports)
	if err != nil {
		slog.Error("Failed to load reports", "path", args.Reports, "error", err)
		return fmt.Errorf("failed to load reports: %w", err)
	}

	if err := w.Start(ctx, controller.WithViewMode()); err != nil {
		return err
	}

	if err := w.DisplayReports(ctx, reports, summary); err != nil {
		w.Close(ctx)
		return fmt.Errorf("display: %w", err)
	}

	w.Wait(ctx)
	w.Close(ctx)

	return nil
}

func (w *workflow) Merge(ctx context.Context, args MergeArgs) error {
	inputs := args.Inputs
	if len(inputs) == 0 {
		shards, err := w.ShardDirs(args.Reports)
		if err != nil {
			return err
		}

		inputs = shards
	}

	if len(inputs) == 0 {
		return fmt.Errorf("%w in %s", ErrNoShards, args.Reports)
	}

	var (
		merged  []m.ChangeSetReport
		skipped int
	)

	for _, input := range inputs {
		if err := ctx.Err(); err != nil {
			return err
		}

		reports, summary, err := w.LoadReports(input)
		if err != nil {
			slog.Error("Failed to load reports", "path", input, "error", err)
			return fmt.Errorf("failed to load reports from %s: %w", input, err)
		}

		merged = append(merged, reports...)
		skipped += summary.Skipped
	}

	sortReports(merged)

	summary := m.NewSummary(uuid.NewString())
	for _, report := range merged {
		summary.Add(report)
	}

	summary.Skipped = skipped

	if err := w.SaveReports(args.Reports, merged, summary); err != nil {
		return fmt.Errorf("failed to save merged reports: %w", err)
	}

	slog.Info("Merged reports", "inputs", len(inputs), "changeSets", summary.ChangeSets)

	return w.DisplaySummary(ctx, summary)
}

// ShardPaths keeps the paths whose position modulo totalShardCount equals
// shardIndex. A count of zero or one keeps everything.
func ShardPaths(paths []m.Path, shardIndex uint, totalShardCount uint) []m.Path {
	if totalShardCount <= 1 {
		return paths
	}

	var shard []m.Path

	for i, path := range paths {
		if uint(i)%totalShardCount == shardIndex {
			shard = append(shard, path)
		}
	}

	return shard
}

// ShardReportsDir is where one shard of a sharded run saves its reports.
func ShardReportsDir(reports m.Path, shardIndex uint, totalShardCount uint) m.Path {
	if totalShardCount <= 1 {
		return reports
	}

	return m.Path(filepath.Join(string(reports), fmt.Sprintf("%s%d", adapter.ShardDirPrefix, shardIndex)))
}

func collectReports(spill pkg.Spill[m.ChangeSetReport]) ([]m.ChangeSetReport, error) {
	reports := make([]m.ChangeSetReport, 0, spill.Len())

	err := spill.Range(func(_ uint64, report m.ChangeSetReport) error {
		reports = append(reports, report)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read report spill: %w", err)
	}

	sortReports(reports)

	return reports, nil
}

func sortReports(reports []m.ChangeSetReport) {
	sort.SliceStable(reports, func(i, j int) bool {
		if reports[i].Source != reports[j].Source {
			return reports[i].Source < reports[j].Source
		}

		return reports[i].ID < reports[j].ID
	})
}
