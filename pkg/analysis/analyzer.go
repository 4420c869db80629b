// Package analysis runs the risk, resource, schedule and contract analyses
// over one schedule snapshot and collects them into a single Result.
package analysis

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/harrisonrobin/planus/pkg/contract"
	"github.com/harrisonrobin/planus/pkg/i18n"
	"github.com/harrisonrobin/planus/pkg/logging"
	"github.com/harrisonrobin/planus/pkg/model"
	"github.com/harrisonrobin/planus/pkg/resource"
	"github.com/harrisonrobin/planus/pkg/risk"
	"github.com/harrisonrobin/planus/pkg/schedule"
)

// Request is the input of one analysis run.
type Request struct {
	Project string
	Tasks   []model.Task
	// Contract is nil when no contract was supplied or it could not be read.
	Contract *contract.Document
	// ContractErr records why a supplied contract is unavailable.
	ContractErr error
	Locale      i18n.Locale
	// Now is the evaluation time; zero uses the analyzer clock.
	Now time.Time
}

// RiskResult holds per-task assessments in schedule order and their summary.
type RiskResult struct {
	Assessments []risk.Assessment `json:"assessments" yaml:"assessments"`
	Summary     risk.Summary      `json:"summary" yaml:"summary"`
}

// Result is everything a report needs.
type Result struct {
	RunID        string               `json:"run_id" yaml:"run_id"`
	GeneratedAt  time.Time            `json:"generated_at" yaml:"generated_at"`
	Locale       i18n.Locale          `json:"locale" yaml:"locale"`
	Project      string               `json:"project" yaml:"project"`
	Tasks        []model.Task         `json:"tasks" yaml:"tasks"`
	Schedule     schedule.Analysis    `json:"schedule" yaml:"schedule"`
	Progress     schedule.Progress    `json:"progress" yaml:"progress"`
	Risk         RiskResult           `json:"risk" yaml:"risk"`
	Resources    resource.Utilization `json:"resources" yaml:"resources"`
	Productivity []resource.Stats     `json:"productivity" yaml:"productivity"`
	Contract     *contract.Comparison `json:"contract,omitempty" yaml:"contract,omitempty"`
	// ContractError is set when a contract was supplied but could not be analyzed.
	ContractError string `json:"contract_error,omitempty" yaml:"contract_error,omitempty"`
}

// Analyzer runs analyses. It holds no per-run state and is safe for
// concurrent use.
type Analyzer struct {
	logger *logging.Logger
	clock  func() time.Time
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithClock replaces time.Now as the source of the evaluation time.
func WithClock(clock func() time.Time) Option {
	return func(a *Analyzer) { a.clock = clock }
}

// New returns an Analyzer logging to logger (discarded when nil).
func New(logger *logging.Logger, opts ...Option) *Analyzer {
	if logger == nil {
		logger = logging.NopLogger()
	}
	a := &Analyzer{logger: logger, clock: time.Now}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run analyzes a private copy of req.Tasks. Risk, resource and schedule
// analyses run concurrently; the contract is reconciled afterwards because it
// needs the productivity figures. A contract problem never fails the run.
func (a *Analyzer) Run(ctx context.Context, req Request) (*Result, error) {
	now := req.Now
	if now.IsZero() {
		now = a.clock()
	}
	loc := req.Locale
	if !loc.IsValid() {
		loc = i18n.Default
	}

	runID := uuid.NewString()
	log := a.logger.WithRun(runID).WithStage(string(StageAnalyze))

	tasks := model.CloneTasks(req.Tasks)
	if tasks == nil {
		tasks = []model.Task{}
	}
	for _, t := range tasks {
		if err := t.Validate(); err != nil {
			return nil, &StageError{Stage: StageAnalyze, Err: err}
		}
	}
	log.Info("analysis started", "project", req.Project, "tasks", len(tasks), "locale", string(loc), "now", now)

	res := &Result{
		RunID:       runID,
		GeneratedAt: now,
		Locale:      loc,
		Project:     req.Project,
		Tasks:       tasks,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		assessments := risk.NewScorer(loc).AssessAll(tasks, now)
		res.Risk = RiskResult{Assessments: assessments, Summary: risk.Aggregate(assessments, loc)}
		return nil
	})
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		res.Resources = resource.Analyze(tasks, loc)
		res.Productivity = resource.Productivity(tasks)
		return nil
	})
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		res.Schedule = schedule.Analyze(tasks, now, loc)
		res.Progress = schedule.ComputeProgress(tasks)
		return nil
	})
	if err := g.Wait(); err != nil {
		log.Error("analysis aborted", "error", err)
		return nil, &StageError{Stage: StageAnalyze, Err: err}
	}

	switch {
	case req.Contract != nil:
		cmp := contract.Reconcile(req.Contract.Activities, tasks, res.Productivity, now, loc)
		res.Contract = &cmp
		log.Info("contract reconciled",
			"activities", len(req.Contract.Activities),
			"missing", len(cmp.MissingActivities),
			"compliance", cmp.ComplianceScore)
	case req.ContractErr != nil:
		res.ContractError = req.ContractErr.Error()
		log.Warn("contract unavailable, continuing with schedule only", "error", req.ContractErr)
	}

	log.Info("analysis completed",
		"project_level", int(res.Risk.Summary.ProjectLevel),
		"high_risk", len(res.Risk.Summary.HighRisk),
		"delayed", len(res.Schedule.Delayed))
	return res, nil
}

// Files names the inputs of RunFiles.
type Files struct {
	Schedule string
	// Contract is optional.
	Contract string
	Location *time.Location
	Locale   i18n.Locale
	Now      time.Time
}

// RunFiles loads the schedule and optional contract and runs the analysis.
// Schedule failures abort; contract failures are recorded in the result.
func (a *Analyzer) RunFiles(ctx context.Context, f Files) (*Result, error) {
	s, err := LoadSchedule(f.Schedule, f.Location)
	if err != nil {
		a.logger.WithStage(string(StageOf(err))).Error("schedule unavailable", "path", f.Schedule, "error", err)
		return nil, err
	}

	req := Request{Project: s.Name, Tasks: s.Tasks, Locale: f.Locale, Now: f.Now}
	if f.Contract != "" {
		req.Contract, req.ContractErr = LoadContract(f.Contract)
	}
	return a.Run(ctx, req)
}
