package domain

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	m "repattern.dev/pkg/repattern/internal/model"
)

// Orchestrator runs pattern families over a single change-set and returns the
// aggregate they populated.
type Orchestrator interface {
	DetectAll(ctx context.Context, script *m.EditScript, families ...m.Family) (*m.RepairPatterns, error)
	DetectFamily(ctx context.Context, script *m.EditScript, family m.Family) (*m.RepairPatterns, error)
}

// OrchestratorOption configures an Orchestrator.
type OrchestratorOption func(*orchestrator)

// WithParallelDetectors runs the families of one change-set concurrently.
func WithParallelDetectors() OrchestratorOption {
	return func(o *orchestrator) {
		o.parallel = true
	}
}

// WithMetrics records per-family durations.
func WithMetrics(metrics *Metrics) OrchestratorOption {
	return func(o *orchestrator) {
		o.metrics = metrics
	}
}

type orchestrator struct {
	parallel bool
	metrics  *Metrics
}

// NewOrchestrator constructs an Orchestrator. Families run sequentially unless
// WithParallelDetectors is given.
func NewOrchestrator(options ...OrchestratorOption) Orchestrator {
	o := &orchestrator{}
	for _, option := range options {
		option(o)
	}

	return o
}

func (o *orchestrator) DetectAll(ctx context.Context, script *m.EditScript, families ...m.Family) (*m.RepairPatterns, error) {
	families, err := resolveFamilies(families)
	if err != nil {
		return nil, err
	}

	patterns := m.NewRepairPatterns()

	if script == nil || len(script.Operations) == 0 {
		return patterns, nil
	}

	if o.parallel {
		err = o.detectParallel(ctx, script, families, patterns)
	} else {
		err = o.detectSequential(ctx, script, families, patterns)
	}

	if err != nil {
		return nil, err
	}

	return patterns, nil
}

func (o *orchestrator) DetectFamily(ctx context.Context, script *m.EditScript, family m.Family) (*m.RepairPatterns, error) {
	return o.DetectAll(ctx, script, family)
}

func (o *orchestrator) detectSequential(ctx context.Context, script *m.EditScript, families []m.Family, patterns *m.RepairPatterns) error {
	for _, family := range families {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("detection of %s cancelled: %w", script.ID, err)
		}

		o.run(script, family, patterns)
	}

	return nil
}

func (o *orchestrator) detectParallel(ctx context.Context, script *m.EditScript, families []m.Family, patterns *m.RepairPatterns) error {
	group, groupCtx := errgroup.WithContext(ctx)

	for _, family := range families {
		currentFamily := family

		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return fmt.Errorf("detection of %s cancelled: %w", script.ID, err)
			}

			o.run(script, currentFamily, patterns)

			return nil
		})
	}

	return group.Wait()
}

func (o *orchestrator) run(script *m.EditScript, family m.Family, patterns *m.RepairPatterns) {
	started := time.Now()

	familyDetectors[family](script, patterns)

	elapsed := time.Since(started)
	o.metrics.ObserveFamily(family, elapsed)
	slog.Debug("Ran pattern family", "changeSet", script.ID, "family", family, "elapsed", elapsed)
}
