package albums

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"stack-manager/core/photos"
	"stack-manager/core/reconcile"

	"go.uber.org/zap"
)

// StepOrder is the plan step name of album ordering.
const StepOrder = "album_order"

// ErrRunInProgress is returned when a run is requested while another one is executing.
var ErrRunInProgress = errors.New("an album order run is already in progress")

// Service plans and applies album ordering.
type Service struct {
	client photos.Client
	logger *zap.Logger
	mu     sync.Mutex
}

// NewService creates a new album service.
func NewService(client photos.Client, logger *zap.Logger) *Service {
	return &Service{client: client, logger: logger}
}

// Plan fetches the albums and computes the actions needed to show all of
// them in order.
func (s *Service) Plan(ctx context.Context, order string) (*reconcile.Plan, error) {
	order, err := ParseOrder(order)
	if err != nil {
		return nil, err
	}

	albums, err := s.client.ListAlbums(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Found albums", zap.Int("albums", len(albums)), zap.String("order", order))

	return reconcile.NewPlan(StepOrder, len(albums), PlanOrder(albums, order), nil), nil
}

// Run plans and, when confirmed, applies the album order. It returns the plan
// and the number of albums updated.
func (s *Service) Run(ctx context.Context, order string, opts reconcile.Options) (*reconcile.Plan, int, error) {
	if !s.mu.TryLock() {
		return nil, 0, ErrRunInProgress
	}
	defer s.mu.Unlock()

	plan, err := s.Plan(ctx, order)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to plan album order: %w", err)
	}

	executed, err := reconcile.ApplyPlan(ctx, s.client, plan, opts)
	if err != nil {
		return plan, executed, fmt.Errorf("failed to apply album order: %w", err)
	}
	if executed > 0 {
		s.logger.Info("Updated album order", zap.Int("count", executed))
	}
	return plan, executed, nil
}
