package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	dom "github.com/shardulsaptarshi/deadlines-website/internal/domain"
)

func TestGetPlanFreshStore(t *testing.T) {
	svc := NewPlanService(newFakePlanRepo(), newFakeDeadlineRepo(), nil)

	p, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if p.Content != "" {
		t.Fatalf("content = %q, want empty", p.Content)
	}
	if len(p.SelectedDeadlines) != 0 {
		t.Fatalf("selected = %v, want empty", p.SelectedDeadlines)
	}
}

func TestSavePlanOverwrites(t *testing.T) {
	deadlines := newFakeDeadlineRepo()
	svc := NewPlanService(newFakePlanRepo(), deadlines, nil)
	ctx := context.Background()

	d, err := deadlines.Create(ctx, deadlineFixture("Essay"))
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	first, err := svc.Save(ctx, "pack bags", []string{d.ID.String()})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if first.Content != "pack bags" || len(first.SelectedDeadlines) != 1 {
		t.Fatalf("saved plan mismatch: %+v", first)
	}

	second, err := svc.Save(ctx, "rest", nil)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if second.Content != "rest" || len(second.SelectedDeadlines) != 0 {
		t.Fatalf("save must fully overwrite, got %+v", second)
	}

	got, err := svc.Get(ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Content != "rest" || len(got.SelectedDeadlines) != 0 {
		t.Fatalf("read back mismatch: %+v", got)
	}
}

func TestGetPlanFiltersDanglingReferences(t *testing.T) {
	deadlines := newFakeDeadlineRepo()
	svc := NewPlanService(newFakePlanRepo(), deadlines, nil)
	ctx := context.Background()

	kept, err := deadlines.Create(ctx, deadlineFixture("kept"))
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	doomed, err := deadlines.Create(ctx, deadlineFixture("doomed"))
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	selected := []string{kept.ID.String(), doomed.ID.String(), uuid.New().String(), "not-a-uuid"}
	if _, err := svc.Save(ctx, "notes", selected); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := deadlines.Delete(ctx, doomed.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	p, err := svc.Get(ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(p.SelectedDeadlines) != 1 || p.SelectedDeadlines[0] != kept.ID.String() {
		t.Fatalf("selected = %v, want only %s", p.SelectedDeadlines, kept.ID)
	}
	// The stored document still carries the dangling ids; filtering is read-side only.
	stored, err := svc.plans.Get(ctx, dom.PlanTypeTomorrow)
	if err != nil {
		t.Fatalf("stored plan: %v", err)
	}
	if len(stored.SelectedDeadlines) != 4 {
		t.Fatalf("stored selected = %v, want untouched 4 entries", stored.SelectedDeadlines)
	}
}

func deadlineFixture(title string) dom.Deadline {
	return dom.Deadline{
		Title:   title,
		DueDate: time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC),
	}
}
