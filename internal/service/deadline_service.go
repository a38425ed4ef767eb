package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/singleflight"

	"github.com/shardulsaptarshi/deadlines-website/internal/cache"
	dom "github.com/shardulsaptarshi/deadlines-website/internal/domain"
	"github.com/shardulsaptarshi/deadlines-website/internal/repo"
)

var (
	ErrNotFound   = errors.New("deadline not found")
	ErrValidation = errors.New("title and due date are required")
	ErrBadDueTime = errors.New("dueTime must be HH:MM")
)

// DeadlineService owns validation and cache coordination for deadline CRUD.
type DeadlineService struct {
	repo  repo.DeadlineRepo
	cache *cache.Cache
	sf    singleflight.Group
}

// NewDeadlineService creates a DeadlineService. If c is nil, caching is disabled.
func NewDeadlineService(r repo.DeadlineRepo, c *cache.Cache) *DeadlineService {
	return &DeadlineService{repo: r, cache: c}
}

func (s *DeadlineService) Create(ctx context.Context, title, desc string, dueDate *time.Time, dueTime *string) (dom.Deadline, error) {
	title = strings.TrimSpace(title)
	if title == "" || dueDate == nil {
		return dom.Deadline{}, ErrValidation
	}
	dueTime, err := normalizeDueTime(dueTime)
	if err != nil {
		return dom.Deadline{}, err
	}

	d, err := s.repo.Create(ctx, dom.Deadline{
		Title:       title,
		Description: strings.TrimSpace(desc),
		DueDate:     *dueDate,
		DueTime:     dueTime,
	})
	if err != nil {
		return dom.Deadline{}, err
	}
	s.invalidateCache(ctx)
	return d, nil
}

// List returns all deadlines sorted by due date ascending. An empty store
// yields an empty slice, not an error.
func (s *DeadlineService) List(ctx context.Context) ([]dom.Deadline, error) {
	if s.cache != nil {
		v, err, _ := s.sf.Do("list", func() (interface{}, error) {
			if list, err := s.cache.GetList(ctx); err == nil && list != nil {
				return list, nil
			}
			list, err := s.repo.List(ctx)
			if err != nil {
				return nil, err
			}
			_ = s.cache.SetList(ctx, list)
			return list, nil
		})
		if err != nil {
			return nil, err
		}
		return v.([]dom.Deadline), nil
	}
	return s.repo.List(ctx)
}

func (s *DeadlineService) GetByID(ctx context.Context, id uuid.UUID) (dom.Deadline, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Deadline{}, ErrNotFound
		}
		return dom.Deadline{}, err
	}
	return d, nil
}

// Update fully replaces title, description, dueDate and dueTime. createdAt
// is preserved by the store; updatedAt advances.
func (s *DeadlineService) Update(ctx context.Context, id uuid.UUID, title, desc string, dueDate *time.Time, dueTime *string) (dom.Deadline, error) {
	title = strings.TrimSpace(title)
	if title == "" || dueDate == nil {
		return dom.Deadline{}, ErrValidation
	}
	dueTime, err := normalizeDueTime(dueTime)
	if err != nil {
		return dom.Deadline{}, err
	}

	d, err := s.repo.Update(ctx, id, dom.Deadline{
		Title:       title,
		Description: strings.TrimSpace(desc),
		DueDate:     *dueDate,
		DueTime:     dueTime,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Deadline{}, ErrNotFound
		}
		return dom.Deadline{}, err
	}
	s.invalidateCache(ctx)
	return d, nil
}

// Delete is a hard delete. It does not touch the stored plan document:
// dangling plan references are filtered when the plan is read.
func (s *DeadlineService) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	s.invalidateCache(ctx)
	return nil
}

func (s *DeadlineService) invalidateCache(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.InvalidateAll(ctx)
	}
}

// normalizeDueTime validates the optional "HH:MM" string. Empty strings
// collapse to null.
func normalizeDueTime(dueTime *string) (*string, error) {
	if dueTime == nil {
		return nil, nil
	}
	v := strings.TrimSpace(*dueTime)
	if v == "" {
		return nil, nil
	}
	if _, err := time.Parse("15:04", v); err != nil {
		return nil, ErrBadDueTime
	}
	return &v, nil
}
