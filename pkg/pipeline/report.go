package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/scottgigante/prosstt/pkg/lineage"
	"github.com/scottgigante/prosstt/pkg/observability"
)

// Report is every output the lineage core derives from one topology.
type Report struct {
	Hash          string                              `json:"hash"`
	Root          lineage.Branch                      `json:"root"`
	Branches      int                                 `json:"branches"`
	MaxTime       int                                 `json:"max_time"`
	Paths         []lineage.Path                      `json:"paths"`
	BranchTimes   map[lineage.Branch]lineage.Interval `json:"branch_times"`
	Timezones     []lineage.Interval                  `json:"timezones"`
	TimezoneIndex []int                               `json:"timezone_index"`
	Zones         []lineage.Zone                      `json:"zones"`
	Parallel      map[lineage.Branch][]lineage.Branch `json:"parallel"`
}

// Analyze computes the report for t.
func Analyze(t *lineage.Tree) (*Report, error) {
	return analyze(context.Background(), t)
}

// analyze runs each stage in order and reports it through the analysis
// hooks. The first failing stage aborts the report.
func analyze(ctx context.Context, t *lineage.Tree) (*Report, error) {
	hooks := observability.Analysis()
	start := time.Now()
	hooks.OnAnalyzeStart(ctx, t.Len())

	r := &Report{Hash: TopologyHash(t), Root: t.Root(), Branches: t.Len()}
	err := runStages(ctx, hooks, []stage{
		{observability.StagePaths, func() (err error) {
			if r.Paths, err = t.Paths(t.Root()); err != nil {
				return err
			}
			r.MaxTime, err = t.MaxTime()
			return err
		}},
		{observability.StageTimes, func() (err error) {
			r.BranchTimes, err = t.BranchTimes()
			return err
		}},
		{observability.StageTimezones, func() (err error) {
			if r.Timezones, err = t.Timezones(); err != nil {
				return err
			}
			r.TimezoneIndex, err = t.TimezoneIndex()
			return err
		}},
		{observability.StageZones, func() (err error) {
			r.Zones, err = t.Zones()
			return err
		}},
		{observability.StageParallel, func() error {
			r.Parallel = t.ParallelGroups()
			return nil
		}},
	})

	hooks.OnAnalyzeComplete(ctx, t.Len(), len(r.Timezones), time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return r, nil
}

type stage struct {
	name string
	run  func() error
}

func runStages(ctx context.Context, hooks observability.AnalysisHooks, stages []stage) error {
	for _, s := range stages {
		if err := ctx.Err(); err != nil {
			return err
		}
		start := time.Now()
		err := s.run()
		hooks.OnStage(ctx, s.name, time.Since(start), err)
		if err != nil {
			return fmt.Errorf("%s: %w", s.name, err)
		}
	}
	return nil
}

// MarshalReport encodes r as JSON.
func MarshalReport(r *Report) ([]byte, error) {
	return json.Marshal(r)
}

// UnmarshalReport decodes a report produced by [MarshalReport].
func UnmarshalReport(data []byte) (*Report, error) {
	var r Report
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, err
	}
	if r.Hash == "" {
		return nil, fmt.Errorf("report has no topology hash")
	}
	return &r, nil
}
