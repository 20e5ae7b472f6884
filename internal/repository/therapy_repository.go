package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/autismo-mochis/clinic-service/internal/domain"
)

// TherapyRepository defines persistence access for therapy offerings.
type TherapyRepository interface {
	Create(ctx context.Context, therapy *domain.Therapy) error
	Update(ctx context.Context, therapy *domain.Therapy) error
	GetByID(ctx context.Context, id int64) (*domain.Therapy, error)
	List(ctx context.Context) ([]domain.Therapy, error)
	Delete(ctx context.Context, id int64) error
}

type therapyRepository struct {
	pool *pgxpool.Pool
}

// NewTherapyRepository returns a Postgres-backed implementation.
func NewTherapyRepository(pool *pgxpool.Pool) TherapyRepository {
	return &therapyRepository{pool: pool}
}

const therapyColumns = `id, name, description, duration_minutes, cost, created_at`

func (r *therapyRepository) Create(ctx context.Context, therapy *domain.Therapy) error {
	const query = `
        INSERT INTO therapies (name, description, duration_minutes, cost)
        VALUES ($1,$2,$3,$4)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		therapy.Name,
		therapy.Description,
		therapy.DurationMinutes,
		therapy.Cost,
	).Scan(&therapy.ID, &therapy.CreatedAt)
}

func (r *therapyRepository) Update(ctx context.Context, therapy *domain.Therapy) error {
	const query = `
        UPDATE therapies SET name=$1, description=$2, duration_minutes=$3, cost=$4
        WHERE id=$5`

	cmd, err := r.pool.Exec(ctx, query,
		therapy.Name,
		therapy.Description,
		therapy.DurationMinutes,
		therapy.Cost,
		therapy.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *therapyRepository) GetByID(ctx context.Context, id int64) (*domain.Therapy, error) {
	const query = `SELECT ` + therapyColumns + ` FROM therapies WHERE id=$1`

	var therapy domain.Therapy
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&therapy.ID,
		&therapy.Name,
		&therapy.Description,
		&therapy.DurationMinutes,
		&therapy.Cost,
		&therapy.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &therapy, nil
}

func (r *therapyRepository) List(ctx context.Context) ([]domain.Therapy, error) {
	const query = `SELECT ` + therapyColumns + ` FROM therapies ORDER BY name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Therapy
	for rows.Next() {
		var therapy domain.Therapy
		if err := rows.Scan(
			&therapy.ID,
			&therapy.Name,
			&therapy.Description,
			&therapy.DurationMinutes,
			&therapy.Cost,
			&therapy.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, therapy)
	}
	return result, rows.Err()
}

func (r *therapyRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM therapies WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
