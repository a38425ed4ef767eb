package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/singleflight"

	"github.com/shardulsaptarshi/deadlines-website/internal/cache"
	dom "github.com/shardulsaptarshi/deadlines-website/internal/domain"
	"github.com/shardulsaptarshi/deadlines-website/internal/repo"
)

// PlanService manages the singleton "tomorrow" plan. It needs the deadline
// repo to drop references to deleted deadlines when the plan is read.
type PlanService struct {
	plans     repo.PlanRepo
	deadlines repo.DeadlineRepo
	cache     *cache.Cache
	sf        singleflight.Group
}

// NewPlanService creates a PlanService. If c is nil, caching is disabled.
func NewPlanService(plans repo.PlanRepo, deadlines repo.DeadlineRepo, c *cache.Cache) *PlanService {
	return &PlanService{plans: plans, deadlines: deadlines, cache: c}
}

// Get returns the plan, or a zero-value plan if none has ever been saved.
// Never reports not-found.
func (s *PlanService) Get(ctx context.Context) (dom.Plan, error) {
	if s.cache != nil {
		v, err, _ := s.sf.Do("plan", func() (interface{}, error) {
			if p, err := s.cache.GetPlan(ctx); err == nil && p != nil {
				return *p, nil
			}
			p, err := s.load(ctx)
			if err != nil {
				return nil, err
			}
			_ = s.cache.SetPlan(ctx, p)
			return p, nil
		})
		if err != nil {
			return dom.Plan{}, err
		}
		return v.(dom.Plan), nil
	}
	return s.load(ctx)
}

// Save upserts the plan verbatim: full overwrite, no merge. Referenced ids
// are not checked against the deadline store on write.
func (s *PlanService) Save(ctx context.Context, content string, selected []string) (dom.Plan, error) {
	if selected == nil {
		selected = []string{}
	}
	p, err := s.plans.Upsert(ctx, dom.Plan{
		Type:              dom.PlanTypeTomorrow,
		Content:           content,
		SelectedDeadlines: selected,
	})
	if err != nil {
		return dom.Plan{}, err
	}
	if s.cache != nil {
		_ = s.cache.InvalidateAll(ctx)
	}
	return p, nil
}

func (s *PlanService) load(ctx context.Context) (dom.Plan, error) {
	p, err := s.plans.Get(ctx, dom.PlanTypeTomorrow)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Plan{Type: dom.PlanTypeTomorrow, SelectedDeadlines: []string{}}, nil
		}
		return dom.Plan{}, err
	}
	p.SelectedDeadlines, err = s.filterDangling(ctx, p.SelectedDeadlines)
	if err != nil {
		return dom.Plan{}, err
	}
	return p, nil
}

// filterDangling keeps only ids that still resolve to a stored deadline,
// preserving selection order. Malformed ids are dropped too.
func (s *PlanService) filterDangling(ctx context.Context, ids []string) ([]string, error) {
	if len(ids) == 0 {
		return []string{}, nil
	}
	parsed := make([]uuid.UUID, 0, len(ids))
	for _, raw := range ids {
		if id, err := uuid.Parse(raw); err == nil {
			parsed = append(parsed, id)
		}
	}
	present, err := s.deadlines.ExistingIDs(ctx, parsed)
	if err != nil {
		return nil, err
	}
	kept := make([]string, 0, len(ids))
	for _, raw := range ids {
		if id, err := uuid.Parse(raw); err == nil && present[id] {
			kept = append(kept, raw)
		}
	}
	return kept, nil
}
