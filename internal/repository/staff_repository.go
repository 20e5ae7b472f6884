package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/autismo-mochis/clinic-service/internal/domain"
)

// StaffRepository defines persistence access for staff employment records.
type StaffRepository interface {
	Create(ctx context.Context, staff *domain.StaffMember) error
	Update(ctx context.Context, staff *domain.StaffMember) error
	GetByID(ctx context.Context, id int64) (*domain.StaffMember, error)
	GetByUserID(ctx context.Context, userID int64) (*domain.StaffMember, error)
	List(ctx context.Context) ([]domain.StaffMember, error)
	Delete(ctx context.Context, id int64) error
}

type staffRepository struct {
	pool *pgxpool.Pool
}

// NewStaffRepository returns a Postgres-backed implementation.
func NewStaffRepository(pool *pgxpool.Pool) StaffRepository {
	return &staffRepository{pool: pool}
}

const staffColumns = `id, user_id, birth_date, hire_date, degree_id, specialties, personal_phone,
               personal_email, rfc, curp, street, neighborhood, postal_code, municipality, state, experience`

func (r *staffRepository) Create(ctx context.Context, staff *domain.StaffMember) error {
	const query = `
        INSERT INTO staff_members (user_id, birth_date, hire_date, degree_id, specialties, personal_phone,
            personal_email, rfc, curp, street, neighborhood, postal_code, municipality, state, experience)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
        RETURNING id`

	return r.pool.QueryRow(ctx, query,
		staff.UserID,
		staff.BirthDate,
		staff.HireDate,
		staff.DegreeID,
		staff.Specialties,
		staff.PersonalPhone,
		staff.PersonalEmail,
		staff.RFC,
		staff.CURP,
		staff.Street,
		staff.Neighborhood,
		staff.PostalCode,
		staff.Municipality,
		staff.State,
		staff.Experience,
	).Scan(&staff.ID)
}

func (r *staffRepository) Update(ctx context.Context, staff *domain.StaffMember) error {
	const query = `
        UPDATE staff_members SET birth_date=$1, hire_date=$2, degree_id=$3, specialties=$4,
            personal_phone=$5, personal_email=$6, rfc=$7, curp=$8, street=$9, neighborhood=$10,
            postal_code=$11, municipality=$12, state=$13, experience=$14
        WHERE id=$15`

	cmd, err := r.pool.Exec(ctx, query,
		staff.BirthDate,
		staff.HireDate,
		staff.DegreeID,
		staff.Specialties,
		staff.PersonalPhone,
		staff.PersonalEmail,
		staff.RFC,
		staff.CURP,
		staff.Street,
		staff.Neighborhood,
		staff.PostalCode,
		staff.Municipality,
		staff.State,
		staff.Experience,
		staff.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *staffRepository) GetByID(ctx context.Context, id int64) (*domain.StaffMember, error) {
	const query = `SELECT ` + staffColumns + ` FROM staff_members WHERE id=$1`
	return r.fetchSingle(ctx, query, id)
}

func (r *staffRepository) GetByUserID(ctx context.Context, userID int64) (*domain.StaffMember, error) {
	const query = `SELECT ` + staffColumns + ` FROM staff_members WHERE user_id=$1`
	return r.fetchSingle(ctx, query, userID)
}

func (r *staffRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.StaffMember, error) {
	var staff domain.StaffMember
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&staff.ID,
		&staff.UserID,
		&staff.BirthDate,
		&staff.HireDate,
		&staff.DegreeID,
		&staff.Specialties,
		&staff.PersonalPhone,
		&staff.PersonalEmail,
		&staff.RFC,
		&staff.CURP,
		&staff.Street,
		&staff.Neighborhood,
		&staff.PostalCode,
		&staff.Municipality,
		&staff.State,
		&staff.Experience,
	); err != nil {
		return nil, err
	}
	return &staff, nil
}

func (r *staffRepository) List(ctx context.Context) ([]domain.StaffMember, error) {
	const query = `SELECT ` + staffColumns + ` FROM staff_members ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.StaffMember
	for rows.Next() {
		var staff domain.StaffMember
		if err := rows.Scan(
			&staff.ID,
			&staff.UserID,
			&staff.BirthDate,
			&staff.HireDate,
			&staff.DegreeID,
			&staff.Specialties,
			&staff.PersonalPhone,
			&staff.PersonalEmail,
			&staff.RFC,
			&staff.CURP,
			&staff.Street,
			&staff.Neighborhood,
			&staff.PostalCode,
			&staff.Municipality,
			&staff.State,
			&staff.Experience,
		); err != nil {
			return nil, err
		}
		result = append(result, staff)
	}
	return result, rows.Err()
}

func (r *staffRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM staff_members WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
