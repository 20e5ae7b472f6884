package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/autismo-mochis/clinic-service/internal/domain"
)

// DegreeRepository defines persistence access for academic degrees.
type DegreeRepository interface {
	Create(ctx context.Context, degree *domain.Degree) error
	GetByID(ctx context.Context, id int64) (*domain.Degree, error)
	GetByName(ctx context.Context, name string) (*domain.Degree, error)
	List(ctx context.Context) ([]domain.Degree, error)
}

type degreeRepository struct {
	pool *pgxpool.Pool
}

// NewDegreeRepository returns a Postgres-backed implementation.
func NewDegreeRepository(pool *pgxpool.Pool) DegreeRepository {
	return &degreeRepository{pool: pool}
}

func (r *degreeRepository) Create(ctx context.Context, degree *domain.Degree) error {
	const query = `INSERT INTO degrees (name) VALUES ($1) RETURNING id`
	return r.pool.QueryRow(ctx, query, degree.Name).Scan(&degree.ID)
}

func (r *degreeRepository) GetByID(ctx context.Context, id int64) (*domain.Degree, error) {
	var degree domain.Degree
	if err := r.pool.QueryRow(ctx, `SELECT id, name FROM degrees WHERE id=$1`, id).
		Scan(&degree.ID, &degree.Name); err != nil {
		return nil, err
	}
	return &degree, nil
}

func (r *degreeRepository) GetByName(ctx context.Context, name string) (*domain.Degree, error) {
	var degree domain.Degree
	if err := r.pool.QueryRow(ctx, `SELECT id, name FROM degrees WHERE name=$1`, name).
		Scan(&degree.ID, &degree.Name); err != nil {
		return nil, err
	}
	return &degree, nil
}

func (r *degreeRepository) List(ctx context.Context) ([]domain.Degree, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name FROM degrees ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Degree
	for rows.Next() {
		var degree domain.Degree
		if err := rows.Scan(&degree.ID, &degree.Name); err != nil {
			return nil, err
		}
		result = append(result, degree)
	}
	return result, rows.Err()
}
