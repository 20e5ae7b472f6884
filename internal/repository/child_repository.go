package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/autismo-mochis/clinic-service/internal/domain"
)

// ChildRepository defines persistence access for registered children.
type ChildRepository interface {
	Create(ctx context.Context, child *domain.Child) error
	Update(ctx context.Context, child *domain.Child) error
	GetByID(ctx context.Context, id int64) (*domain.Child, error)
	List(ctx context.Context) ([]domain.Child, error)
	Delete(ctx context.Context, id int64) error
}

type childRepository struct {
	pool *pgxpool.Pool
}

// NewChildRepository returns a Postgres-backed implementation.
func NewChildRepository(pool *pgxpool.Pool) ChildRepository {
	return &childRepository{pool: pool}
}

const childColumns = `id, first_name, paternal_surname, maternal_surname, birth_date, sex,
               guardian_id, responsible_user_id, school_grade, primary_diagnosis, allergies, notes, active`

func (r *childRepository) Create(ctx context.Context, child *domain.Child) error {
	const query = `
        INSERT INTO children (first_name, paternal_surname, maternal_surname, birth_date, sex,
            guardian_id, responsible_user_id, school_grade, primary_diagnosis, allergies, notes, active)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
        RETURNING id`

	return r.pool.QueryRow(ctx, query,
		child.FirstName,
		child.PaternalSurname,
		child.MaternalSurname,
		child.BirthDate,
		child.Sex,
		child.GuardianID,
		child.ResponsibleID,
		child.SchoolGrade,
		child.PrimaryDiagnosis,
		child.Allergies,
		child.Notes,
		child.Active,
	).Scan(&child.ID)
}

func (r *childRepository) Update(ctx context.Context, child *domain.Child) error {
	const query = `
        UPDATE children SET first_name=$1, paternal_surname=$2, maternal_surname=$3, birth_date=$4,
            sex=$5, guardian_id=$6, responsible_user_id=$7, school_grade=$8, primary_diagnosis=$9,
            allergies=$10, notes=$11, active=$12
        WHERE id=$13`

	cmd, err := r.pool.Exec(ctx, query,
		child.FirstName,
		child.PaternalSurname,
		child.MaternalSurname,
		child.BirthDate,
		child.Sex,
		child.GuardianID,
		child.ResponsibleID,
		child.SchoolGrade,
		child.PrimaryDiagnosis,
		child.Allergies,
		child.Notes,
		child.Active,
		child.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *childRepository) GetByID(ctx context.Context, id int64) (*domain.Child, error) {
	const query = `SELECT ` + childColumns + ` FROM children WHERE id=$1`

	var child domain.Child
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&child.ID,
		&child.FirstName,
		&child.PaternalSurname,
		&child.MaternalSurname,
		&child.BirthDate,
		&child.Sex,
		&child.GuardianID,
		&child.ResponsibleID,
		&child.SchoolGrade,
		&child.PrimaryDiagnosis,
		&child.Allergies,
		&child.Notes,
		&child.Active,
	); err != nil {
		return nil, err
	}
	return &child, nil
}

func (r *childRepository) List(ctx context.Context) ([]domain.Child, error) {
	const query = `SELECT ` + childColumns + ` FROM children ORDER BY first_name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Child
	for rows.Next() {
		var child domain.Child
		if err := rows.Scan(
			&child.ID,
			&child.FirstName,
			&child.PaternalSurname,
			&child.MaternalSurname,
			&child.BirthDate,
			&child.Sex,
			&child.GuardianID,
			&child.ResponsibleID,
			&child.SchoolGrade,
			&child.PrimaryDiagnosis,
			&child.Allergies,
			&child.Notes,
			&child.Active,
		); err != nil {
			return nil, err
		}
		result = append(result, child)
	}
	return result, rows.Err()
}

func (r *childRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM children WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
