package stacks

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"stack-manager/core/photos"
	"stack-manager/core/reconcile"

	"go.uber.org/zap"
)

// Step names one pass of the stack maintenance pipeline.
type Step string

const (
	StepConsolidate Step = "consolidate"
	StepPrune       Step = "prune"
	StepPrimary     Step = "primary"
	StepAudit       Step = "audit"
)

// Pipeline is the order in which a full run executes the steps. Pruning
// follows consolidation so that stacks left with a single member by a merge
// are removed in the same run.
var Pipeline = []Step{StepConsolidate, StepPrune, StepPrimary, StepAudit}

var (
	// ErrRunInProgress is returned when a run is requested while another one is executing.
	ErrRunInProgress = errors.New("a run is already in progress")
	// ErrUnknownStep is returned for step names outside the pipeline.
	ErrUnknownStep = errors.New("unknown step")
)

// ParseSteps resolves a step name, or "all" for the full pipeline.
func ParseSteps(name string) ([]Step, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "all" {
		return Pipeline, nil
	}
	for _, step := range Pipeline {
		if string(step) == name {
			return []Step{step}, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownStep, name)
}

// ConfirmFunc decides whether a plan with actions may be applied.
type ConfirmFunc func(plan *reconcile.Plan) bool

// StepResult is the outcome of one step of a run.
type StepResult struct {
	Plan       *reconcile.Plan `json:"plan"`
	Executed   int             `json:"executed"`
	ExportedTo string          `json:"exported_to,omitempty"`
}

// Service plans and applies stack maintenance against the Photo Service.
type Service struct {
	client   photos.Client
	logger   *zap.Logger
	exporter *reconcile.Exporter
	mu       sync.Mutex
}

// NewService creates a new stack service. exporter may be nil.
func NewService(client photos.Client, logger *zap.Logger, exporter *reconcile.Exporter) *Service {
	return &Service{
		client:   client,
		logger:   logger,
		exporter: exporter,
	}
}

// Plan fetches a fresh snapshot and computes the plan of one step.
// No mutation is performed.
func (s *Service) Plan(ctx context.Context, step Step) (*reconcile.Plan, error) {
	switch step {
	case StepConsolidate:
		return s.planConsolidation(ctx)
	case StepPrune:
		return s.planPrune(ctx)
	case StepPrimary:
		return s.planPrimaries(ctx)
	case StepAudit:
		return s.planAudit(ctx)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStep, step)
	}
}

// Run executes the steps in order. Each step plans against a fresh fetch so
// it sees the mutations of the previous ones. A plan with actions is applied
// only when opts allow it and either opts.Confirmed is set or confirm
// approves it; a refused confirmation ends the run without error.
// The first error aborts the run; results gathered so far are returned.
func (s *Service) Run(ctx context.Context, steps []Step, opts reconcile.Options, confirm ConfirmFunc) ([]StepResult, error) {
	if !s.mu.TryLock() {
		return nil, ErrRunInProgress
	}
	defer s.mu.Unlock()

	var results []StepResult
	for _, step := range steps {
		s.logger.Info("Planning step", zap.String("step", string(step)))

		plan, err := s.Plan(ctx, step)
		if err != nil {
			return results, fmt.Errorf("failed to plan %s: %w", step, err)
		}
		reconcile.LogPlan(s.logger, plan)

		result := StepResult{Plan: plan}
		if s.exporter != nil {
			name, err := s.exporter.Export(ctx, plan)
			if err != nil {
				return results, fmt.Errorf("failed to export %s plan: %w", step, err)
			}
			result.ExportedTo = name
			s.logger.Info("Exported plan", zap.String("object", name))
		}

		if len(plan.Actions) == 0 {
			results = append(results, result)
			continue
		}
		if opts.DryRun {
			s.logger.Info("Dry-run mode: No changes were made.", zap.String("step", string(step)))
			results = append(results, result)
			continue
		}

		applyOpts := opts
		if !applyOpts.Confirmed {
			applyOpts.Confirmed = confirm != nil && confirm(plan)
		}
		if !applyOpts.Confirmed {
			s.logger.Warn("Operation cancelled by user. No changes were made.", zap.String("step", string(step)))
			results = append(results, result)
			return results, nil
		}

		executed, err := reconcile.ApplyPlan(ctx, s.client, plan, applyOpts)
		result.Executed = executed
		results = append(results, result)
		if err != nil {
			return results, fmt.Errorf("failed to apply %s plan: %w", step, err)
		}
		s.logger.Info("Successfully executed actions", zap.String("step", string(step)), zap.Int("count", executed))
	}

	return results, nil
}

func (s *Service) loadCatalog(ctx context.Context) ([]photos.Stack, *Catalog, error) {
	stacks, err := s.client.ListStacks(ctx)
	if err != nil {
		return nil, nil, err
	}
	catalog, err := NewCatalog(stacks)
	if err != nil {
		return nil, nil, err
	}
	s.logger.Info("Found stacks",
		zap.Int("stacks", catalog.StackCount()),
		zap.Int("stacked_assets", catalog.AssetCount()))
	return stacks, catalog, nil
}

func (s *Service) planConsolidation(ctx context.Context) (*reconcile.Plan, error) {
	assets, err := s.client.SearchAllAssets(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Found assets", zap.Int("assets", len(assets)))

	_, catalog, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	groups := GroupDuplicates(assets)
	actions := PlanConsolidation(groups, catalog)
	s.logger.Info("Duplicate groups",
		zap.Int("groups", len(groups)),
		zap.Int("to_stack", len(actions)))

	return reconcile.NewPlan(string(StepConsolidate), len(assets), actions, nil), nil
}

func (s *Service) planPrune(ctx context.Context) (*reconcile.Plan, error) {
	stacks, _, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}
	return reconcile.NewPlan(string(StepPrune), len(stacks), PlanPrune(stacks), nil), nil
}

func (s *Service) planPrimaries(ctx context.Context) (*reconcile.Plan, error) {
	stacks, _, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}
	for _, stack := range stacks {
		s.logger.Debug("Stack",
			zap.String("stack", stack.ID),
			zap.String("primary", stack.PrimaryAssetID),
			zap.Strings("files", fileNames(stack.Assets)),
			zap.Strings("resolutions", resolutions(stack.Assets)))
	}
	return reconcile.NewPlan(string(StepPrimary), len(stacks), PlanPrimaries(stacks), nil), nil
}

func (s *Service) planAudit(ctx context.Context) (*reconcile.Plan, error) {
	_, catalog, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	albums, err := s.client.ListAlbums(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Found albums", zap.Int("albums", len(albums)))

	var violations []Violation
	for _, album := range albums {
		assets, err := s.client.GetAlbumAssets(ctx, album.ID)
		if err != nil {
			return nil, err
		}
		found := AuditAlbum(album, assets, catalog)
		for _, v := range found {
			s.logger.Warn("Album shows several assets of one stack",
				zap.String("album", v.AlbumName),
				zap.String("stack", v.StackID),
				zap.Strings("files", fileNames(v.Assets)),
				zap.Strings("dates", captureDates(v.Assets)),
				zap.String("primary", v.PrimaryAssetID),
				zap.Strings("remove", v.ToRemove))
		}
		violations = append(violations, found...)
	}
	if len(violations) == 0 {
		s.logger.Info("No albums found with multiple assets from the same stack")
	}

	issues := make([]reconcile.Issue, len(violations))
	for i, v := range violations {
		issues[i] = v.issue()
	}
	return reconcile.NewPlan(string(StepAudit), len(albums), PlanAlbumRepairs(violations), issues), nil
}

func fileNames(assets []photos.Asset) []string {
	names := make([]string, len(assets))
	for i, a := range assets {
		names[i] = photos.PathBase(a.OriginalPath)
	}
	return names
}

func captureDates(assets []photos.Asset) []string {
	dates := make([]string, len(assets))
	for i, a := range assets {
		dates[i] = a.DateTimeOriginal()
	}
	return dates
}

func resolutions(assets []photos.Asset) []string {
	res := make([]string, len(assets))
	for i, a := range assets {
		res[i] = a.Resolution()
	}
	return res
}
