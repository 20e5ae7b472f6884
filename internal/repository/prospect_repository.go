package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/autismo-mochis/clinic-service/internal/domain"
)

// ProspectRepository defines persistence access for intake prospects.
// Prospects are never hard-deleted; Deactivate flips the active flag.
type ProspectRepository interface {
	Create(ctx context.Context, prospect *domain.Prospect) error
	Update(ctx context.Context, prospect *domain.Prospect) error
	GetByID(ctx context.Context, id int64) (*domain.Prospect, error)
	ListActive(ctx context.Context) ([]domain.Prospect, error)
	Deactivate(ctx context.Context, id int64) error
}

type prospectRepository struct {
	pool *pgxpool.Pool
}

// NewProspectRepository returns a Postgres-backed implementation.
func NewProspectRepository(pool *pgxpool.Pool) ProspectRepository {
	return &prospectRepository{pool: pool}
}

const prospectColumns = `id, first_name, paternal_surname, maternal_surname, approximate_age,
               birth_date, sex, contact_phone, contact_email, guardian_name, notes, active`

func (r *prospectRepository) Create(ctx context.Context, prospect *domain.Prospect) error {
	const query = `
        INSERT INTO prospects (first_name, paternal_surname, maternal_surname, approximate_age,
            birth_date, sex, contact_phone, contact_email, guardian_name, notes, active)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
        RETURNING id`

	return r.pool.QueryRow(ctx, query,
		prospect.FirstName,
		prospect.PaternalSurname,
		prospect.MaternalSurname,
		prospect.ApproximateAge,
		prospect.BirthDate,
		prospect.Sex,
		prospect.ContactPhone,
		prospect.ContactEmail,
		prospect.GuardianName,
		prospect.Notes,
		prospect.Active,
	).Scan(&prospect.ID)
}

func (r *prospectRepository) Update(ctx context.Context, prospect *domain.Prospect) error {
	const query = `
        UPDATE prospects SET first_name=$1, paternal_surname=$2, maternal_surname=$3,
            approximate_age=$4, birth_date=$5, sex=$6, contact_phone=$7, contact_email=$8,
            guardian_name=$9, notes=$10, active=$11
        WHERE id=$12`

	cmd, err := r.pool.Exec(ctx, query,
		prospect.FirstName,
		prospect.PaternalSurname,
		prospect.MaternalSurname,
		prospect.ApproximateAge,
		prospect.BirthDate,
		prospect.Sex,
		prospect.ContactPhone,
		prospect.ContactEmail,
		prospect.GuardianName,
		prospect.Notes,
		prospect.Active,
		prospect.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *prospectRepository) GetByID(ctx context.Context, id int64) (*domain.Prospect, error) {
	const query = `SELECT ` + prospectColumns + ` FROM prospects WHERE id=$1`

	var prospect domain.Prospect
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&prospect.ID,
		&prospect.FirstName,
		&prospect.PaternalSurname,
		&prospect.MaternalSurname,
		&prospect.ApproximateAge,
		&prospect.BirthDate,
		&prospect.Sex,
		&prospect.ContactPhone,
		&prospect.ContactEmail,
		&prospect.GuardianName,
		&prospect.Notes,
		&prospect.Active,
	); err != nil {
		return nil, err
	}
	return &prospect, nil
}

func (r *prospectRepository) ListActive(ctx context.Context) ([]domain.Prospect, error) {
	const query = `SELECT ` + prospectColumns + ` FROM prospects WHERE active ORDER BY first_name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Prospect
	for rows.Next() {
		var prospect domain.Prospect
		if err := rows.Scan(
			&prospect.ID,
			&prospect.FirstName,
			&prospect.PaternalSurname,
			&prospect.MaternalSurname,
			&prospect.ApproximateAge,
			&prospect.BirthDate,
			&prospect.Sex,
			&prospect.ContactPhone,
			&prospect.ContactEmail,
			&prospect.GuardianName,
			&prospect.Notes,
			&prospect.Active,
		); err != nil {
			return nil, err
		}
		result = append(result, prospect)
	}
	return result, rows.Err()
}

func (r *prospectRepository) Deactivate(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE prospects SET active=FALSE WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
