package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	dom "github.com/shardulsaptarshi/deadlines-website/internal/domain"
)

// fakeDeadlineRepo mimics the Postgres repo in memory, including its
// ordering and pgx.ErrNoRows behavior.
type fakeDeadlineRepo struct {
	mu    sync.Mutex
	items map[uuid.UUID]dom.Deadline
}

func newFakeDeadlineRepo() *fakeDeadlineRepo {
	return &fakeDeadlineRepo{items: map[uuid.UUID]dom.Deadline{}}
}

func (f *fakeDeadlineRepo) Create(_ context.Context, d dom.Deadline) (dom.Deadline, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	now := time.Now().UTC()
	d.ID = uuid.New()
	d.CreatedAt = now
	d.UpdatedAt = now
	f.items[d.ID] = d
	return d, nil
}

func (f *fakeDeadlineRepo) GetByID(_ context.Context, id uuid.UUID) (dom.Deadline, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.items[id]
	if !ok {
		return dom.Deadline{}, pgx.ErrNoRows
	}
	return d, nil
}

func (f *fakeDeadlineRepo) List(_ context.Context) ([]dom.Deadline, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var list []dom.Deadline
	for _, d := range f.items {
		list = append(list, d)
	}
	sort.Slice(list, func(i, j int) bool {
		if !list[i].DueDate.Equal(list[j].DueDate) {
			return list[i].DueDate.Before(list[j].DueDate)
		}
		return list[i].CreatedAt.Before(list[j].CreatedAt)
	})
	return list, nil
}

func (f *fakeDeadlineRepo) Update(_ context.Context, id uuid.UUID, d dom.Deadline) (dom.Deadline, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	existing, ok := f.items[id]
	if !ok {
		return dom.Deadline{}, pgx.ErrNoRows
	}
	existing.Title = d.Title
	existing.Description = d.Description
	existing.DueDate = d.DueDate
	existing.DueTime = d.DueTime
	existing.UpdatedAt = time.Now().UTC()
	f.items[id] = existing
	return existing, nil
}

func (f *fakeDeadlineRepo) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[id]; !ok {
		return false, nil
	}
	delete(f.items, id)
	return true, nil
}

func (f *fakeDeadlineRepo) ExistingIDs(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	present := map[uuid.UUID]bool{}
	for _, id := range ids {
		if _, ok := f.items[id]; ok {
			present[id] = true
		}
	}
	return present, nil
}

// fakePlanRepo holds at most one document per plan type, like the plans table.
type fakePlanRepo struct {
	mu    sync.Mutex
	plans map[string]dom.Plan
}

func newFakePlanRepo() *fakePlanRepo {
	return &fakePlanRepo{plans: map[string]dom.Plan{}}
}

func (f *fakePlanRepo) Get(_ context.Context, planType string) (dom.Plan, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.plans[planType]
	if !ok {
		return dom.Plan{}, pgx.ErrNoRows
	}
	return p, nil
}

func (f *fakePlanRepo) Upsert(_ context.Context, p dom.Plan) (dom.Plan, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p.UpdatedAt = time.Now().UTC()
	f.plans[p.Type] = p
	return p, nil
}
