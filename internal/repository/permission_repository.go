package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/autismo-mochis/clinic-service/internal/domain"
)

// PermissionRepository defines persistence access for permissions.
type PermissionRepository interface {
	Create(ctx context.Context, permission *domain.Permission) error
	GetByName(ctx context.Context, name string) (*domain.Permission, error)
	List(ctx context.Context) ([]domain.Permission, error)
}

type permissionRepository struct {
	pool *pgxpool.Pool
}

// NewPermissionRepository returns a Postgres-backed implementation.
func NewPermissionRepository(pool *pgxpool.Pool) PermissionRepository {
	return &permissionRepository{pool: pool}
}

func (r *permissionRepository) Create(ctx context.Context, permission *domain.Permission) error {
	const query = `
        INSERT INTO permissions (name, description)
        VALUES ($1, $2)
        RETURNING id`

	return r.pool.QueryRow(ctx, query, permission.Name, permission.Description).Scan(&permission.ID)
}

func (r *permissionRepository) GetByName(ctx context.Context, name string) (*domain.Permission, error) {
	const query = `SELECT id, name, description FROM permissions WHERE name=$1`

	var permission domain.Permission
	if err := r.pool.QueryRow(ctx, query, name).Scan(
		&permission.ID,
		&permission.Name,
		&permission.Description,
	); err != nil {
		return nil, err
	}
	return &permission, nil
}

func (r *permissionRepository) List(ctx context.Context) ([]domain.Permission, error) {
	const query = `SELECT id, name, description FROM permissions ORDER BY name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Permission
	for rows.Next() {
		var permission domain.Permission
		if err := rows.Scan(&permission.ID, &permission.Name, &permission.Description); err != nil {
			return nil, err
		}
		result = append(result, permission)
	}
	return result, rows.Err()
}
