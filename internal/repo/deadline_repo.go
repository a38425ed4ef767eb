package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	dom "github.com/shardulsaptarshi/deadlines-website/internal/domain"
)

// DeadlineRepo provides deadline persistence.
type DeadlineRepo interface {
	Create(ctx context.Context, d dom.Deadline) (dom.Deadline, error)
	GetByID(ctx context.Context, id uuid.UUID) (dom.Deadline, error)
	List(ctx context.Context) ([]dom.Deadline, error)
	Update(ctx context.Context, id uuid.UUID, d dom.Deadline) (dom.Deadline, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	ExistingIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]bool, error)
}

// PGDeadlineRepo implements DeadlineRepo with Postgres.
type PGDeadlineRepo struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewPGDeadlineRepo(db *pgxpool.Pool, logger *zap.Logger) *PGDeadlineRepo {
	return &PGDeadlineRepo{db: db, logger: logger}
}

const deadlineColumns = `id, title, description, due_date, due_time, created_at, updated_at`

func (r *PGDeadlineRepo) Create(ctx context.Context, d dom.Deadline) (dom.Deadline, error) {
	query := `
		INSERT INTO deadlines (title, description, due_date, due_time)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + deadlineColumns
	var out dom.Deadline
	err := r.db.QueryRow(ctx, query, d.Title, d.Description, d.DueDate, d.DueTime).Scan(
		&out.ID, &out.Title, &out.Description, &out.DueDate, &out.DueTime,
		&out.CreatedAt, &out.UpdatedAt,
	)
	if err != nil {
		r.logger.Error("insert deadline", zap.Error(err), zap.String("title", d.Title))
		return dom.Deadline{}, err
	}
	r.logger.Info("deadline created", zap.String("id", out.ID.String()))
	return out, nil
}

func (r *PGDeadlineRepo) GetByID(ctx context.Context, id uuid.UUID) (dom.Deadline, error) {
	query := `SELECT ` + deadlineColumns + ` FROM deadlines WHERE id = $1`
	var d dom.Deadline
	err := r.db.QueryRow(ctx, query, id).Scan(
		&d.ID, &d.Title, &d.Description, &d.DueDate, &d.DueTime,
		&d.CreatedAt, &d.UpdatedAt,
	)
	return d, err
}

// List returns all deadlines sorted by due date ascending.
func (r *PGDeadlineRepo) List(ctx context.Context) ([]dom.Deadline, error) {
	query := `SELECT ` + deadlineColumns + ` FROM deadlines ORDER BY due_date ASC, created_at ASC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.logger.Error("query deadlines", zap.Error(err))
		return nil, err
	}
	defer rows.Close()
	var list []dom.Deadline
	for rows.Next() {
		var d dom.Deadline
		if err := rows.Scan(&d.ID, &d.Title, &d.Description, &d.DueDate, &d.DueTime,
			&d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

// Update fully replaces the mutable fields. created_at is never touched.
func (r *PGDeadlineRepo) Update(ctx context.Context, id uuid.UUID, d dom.Deadline) (dom.Deadline, error) {
	query := `
		UPDATE deadlines
		SET title = $2, description = $3, due_date = $4, due_time = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + deadlineColumns
	var out dom.Deadline
	err := r.db.QueryRow(ctx, query, id, d.Title, d.Description, d.DueDate, d.DueTime).Scan(
		&out.ID, &out.Title, &out.Description, &out.DueDate, &out.DueTime,
		&out.CreatedAt, &out.UpdatedAt,
	)
	return out, err
}

// Delete removes the row. Returns false when no row matched.
func (r *PGDeadlineRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM deadlines WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("delete deadline", zap.Error(err), zap.String("id", id.String()))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// ExistingIDs reports which of the given ids are present in the store.
func (r *PGDeadlineRepo) ExistingIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]bool, error) {
	if len(ids) == 0 {
		return map[uuid.UUID]bool{}, nil
	}
	rows, err := r.db.Query(ctx, `SELECT id FROM deadlines WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	present := make(map[uuid.UUID]bool, len(ids))
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		present[id] = true
	}
	return present, rows.Err()
}
