package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"patrolwatch/internal/domain"
	"patrolwatch/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PlanRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewPlanRepo(pool *pgxpool.Pool, logger *slog.Logger) *PlanRepo {
	return &PlanRepo{pool: pool, logger: logger}
}

func (p *PlanRepo) Get(ctx context.Context, id uuid.UUID) (*domain.PatrolPlan, error) {
	const op = "postgres.Plan.Get"

	var plan domain.PatrolPlan
	err := p.pool.QueryRow(ctx,
		`SELECT id, name, station_id, created_at FROM patrol_plans WHERE id = $1`, id,
	).Scan(&plan.ID, &plan.Name, &plan.StationID, &plan.CreatedAt)
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}

	rows, err := p.pool.Query(ctx,
		`SELECT checkpoint_id FROM plan_checkpoints WHERE plan_id = $1 ORDER BY sequence`, id,
	)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	for rows.Next() {
		var cID uuid.UUID
		if err := rows.Scan(&cID); err != nil {
			return nil, e.WrapError(ctx, op, err)
		}
		plan.CheckpointIDs = append(plan.CheckpointIDs, cID)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return &plan, nil
}

// Assign records a plan assignment for one officer and day. The unique
// constraint on (plan_id, officer_id, day) surfaces a duplicate same-day
// assignment as ErrConflict.
func (p *PlanRepo) Assign(ctx context.Context, assignment *domain.PlanAssignment) error {
	const op = "postgres.Plan.Assign"

	if assignment == nil || assignment.PlanID == uuid.Nil || assignment.OfficerID == uuid.Nil {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	if assignment.ID == uuid.Nil {
		assignment.ID = uuid.New()
	}
	if assignment.CreatedAt.IsZero() {
		assignment.CreatedAt = time.Now().UTC()
	}

	const query = `
		INSERT INTO plan_assignments (id, plan_id, officer_id, day, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := p.pool.Exec(ctx, query,
		assignment.ID, assignment.PlanID, assignment.OfficerID, assignment.Day, assignment.CreatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

// ReorderCheckpoints rewrites the sequence numbers for a plan as one unit;
// either every checkpoint gets its new slot or none do.
func (p *PlanRepo) ReorderCheckpoints(ctx context.Context, planID uuid.UUID, orderedIDs []uuid.UUID) error {
	const op = "postgres.Plan.ReorderCheckpoints"

	if planID == uuid.Nil || len(orderedIDs) == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	tx, err := p.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return e.WrapError(ctx, op, err)
	}
	defer tx.Rollback(ctx)

	for seq, checkpointID := range orderedIDs {
		tag, err := tx.Exec(ctx,
			`UPDATE plan_checkpoints SET sequence = $3 WHERE plan_id = $1 AND checkpoint_id = $2`,
			planID, checkpointID, seq+1,
		)
		if err != nil {
			p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
			return e.WrapError(ctx, op, err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("%s: checkpoint %s not in plan: %w", op, checkpointID, e.ErrNotFound)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return e.WrapError(ctx, op, err)
	}
	return nil
}
