package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/autismo-mochis/clinic-service/internal/domain"
)

// GuardianRepository defines persistence access for guardians.
type GuardianRepository interface {
	Create(ctx context.Context, guardian *domain.Guardian) error
	Update(ctx context.Context, guardian *domain.Guardian) error
	GetByID(ctx context.Context, id int64) (*domain.Guardian, error)
	List(ctx context.Context) ([]domain.Guardian, error)
	Delete(ctx context.Context, id int64) error
}

type guardianRepository struct {
	pool *pgxpool.Pool
}

// NewGuardianRepository returns a Postgres-backed implementation.
func NewGuardianRepository(pool *pgxpool.Pool) GuardianRepository {
	return &guardianRepository{pool: pool}
}

const guardianColumns = `id, user_id, ine, curp, relationship, street, exterior_number,
               neighborhood, postal_code, municipality, state, emergency_phone, created_at`

func (r *guardianRepository) Create(ctx context.Context, guardian *domain.Guardian) error {
	const query = `
        INSERT INTO guardians (user_id, ine, curp, relationship, street, exterior_number,
            neighborhood, postal_code, municipality, state, emergency_phone)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		guardian.UserID,
		guardian.INE,
		guardian.CURP,
		guardian.Relationship,
		guardian.Street,
		guardian.ExteriorNumber,
		guardian.Neighborhood,
		guardian.PostalCode,
		guardian.Municipality,
		guardian.State,
		guardian.EmergencyPhone,
	).Scan(&guardian.ID, &guardian.CreatedAt)
}

func (r *guardianRepository) Update(ctx context.Context, guardian *domain.Guardian) error {
	const query = `
        UPDATE guardians SET user_id=$1, ine=$2, curp=$3, relationship=$4, street=$5,
            exterior_number=$6, neighborhood=$7, postal_code=$8, municipality=$9, state=$10,
            emergency_phone=$11
        WHERE id=$12`

	cmd, err := r.pool.Exec(ctx, query,
		guardian.UserID,
		guardian.INE,
		guardian.CURP,
		guardian.Relationship,
		guardian.Street,
		guardian.ExteriorNumber,
		guardian.Neighborhood,
		guardian.PostalCode,
		guardian.Municipality,
		guardian.State,
		guardian.EmergencyPhone,
		guardian.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *guardianRepository) GetByID(ctx context.Context, id int64) (*domain.Guardian, error) {
	const query = `SELECT ` + guardianColumns + ` FROM guardians WHERE id=$1`

	var guardian domain.Guardian
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&guardian.ID,
		&guardian.UserID,
		&guardian.INE,
		&guardian.CURP,
		&guardian.Relationship,
		&guardian.Street,
		&guardian.ExteriorNumber,
		&guardian.Neighborhood,
		&guardian.PostalCode,
		&guardian.Municipality,
		&guardian.State,
		&guardian.EmergencyPhone,
		&guardian.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &guardian, nil
}

func (r *guardianRepository) List(ctx context.Context) ([]domain.Guardian, error) {
	const query = `SELECT ` + guardianColumns + ` FROM guardians ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Guardian
	for rows.Next() {
		var guardian domain.Guardian
		if err := rows.Scan(
			&guardian.ID,
			&guardian.UserID,
			&guardian.INE,
			&guardian.CURP,
			&guardian.Relationship,
			&guardian.Street,
			&guardian.ExteriorNumber,
			&guardian.Neighborhood,
			&guardian.PostalCode,
			&guardian.Municipality,
			&guardian.State,
			&guardian.EmergencyPhone,
			&guardian.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, guardian)
	}
	return result, rows.Err()
}

func (r *guardianRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM guardians WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
