package repo

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	dom "github.com/shardulsaptarshi/deadlines-website/internal/domain"
)

// PlanRepo provides persistence for the singleton plan document.
type PlanRepo interface {
	Get(ctx context.Context, planType string) (dom.Plan, error)
	Upsert(ctx context.Context, p dom.Plan) (dom.Plan, error)
}

// PGPlanRepo implements PlanRepo with Postgres. selected_deadlines is a jsonb
// array of id strings; referential integrity is deliberately not enforced.
type PGPlanRepo struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewPGPlanRepo(db *pgxpool.Pool, logger *zap.Logger) *PGPlanRepo {
	return &PGPlanRepo{db: db, logger: logger}
}

func (r *PGPlanRepo) Get(ctx context.Context, planType string) (dom.Plan, error) {
	query := `
		SELECT plan_type, content, selected_deadlines, updated_at
		FROM plans WHERE plan_type = $1`
	var p dom.Plan
	err := r.db.QueryRow(ctx, query, planType).Scan(
		&p.Type, &p.Content, &p.SelectedDeadlines, &p.UpdatedAt,
	)
	return p, err
}

func (r *PGPlanRepo) Upsert(ctx context.Context, p dom.Plan) (dom.Plan, error) {
	query := `
		INSERT INTO plans (plan_type, content, selected_deadlines, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (plan_type)
		DO UPDATE SET content = EXCLUDED.content,
		              selected_deadlines = EXCLUDED.selected_deadlines,
		              updated_at = NOW()
		RETURNING plan_type, content, selected_deadlines, updated_at`
	var out dom.Plan
	err := r.db.QueryRow(ctx, query, p.Type, p.Content, p.SelectedDeadlines).Scan(
		&out.Type, &out.Content, &out.SelectedDeadlines, &out.UpdatedAt,
	)
	if err != nil {
		r.logger.Error("upsert plan", zap.Error(err), zap.String("plan_type", p.Type))
		return dom.Plan{}, err
	}
	r.logger.Info("plan saved", zap.String("plan_type", out.Type),
		zap.Int("selected", len(out.SelectedDeadlines)))
	return out, nil
}
