package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/autismo-mochis/clinic-service/internal/domain"
)

// AppointmentKindRepository defines persistence access for appointment kinds.
type AppointmentKindRepository interface {
	Create(ctx context.Context, kind *domain.AppointmentKind) error
	Update(ctx context.Context, kind *domain.AppointmentKind) error
	GetByID(ctx context.Context, id int64) (*domain.AppointmentKind, error)
	GetByName(ctx context.Context, name string) (*domain.AppointmentKind, error)
	List(ctx context.Context) ([]domain.AppointmentKind, error)
	Delete(ctx context.Context, id int64) error
}

type appointmentKindRepository struct {
	pool *pgxpool.Pool
}

// NewAppointmentKindRepository returns a Postgres-backed implementation.
func NewAppointmentKindRepository(pool *pgxpool.Pool) AppointmentKindRepository {
	return &appointmentKindRepository{pool: pool}
}

func (r *appointmentKindRepository) Create(ctx context.Context, kind *domain.AppointmentKind) error {
	const query = `
        INSERT INTO appointment_kinds (name, description)
        VALUES ($1, $2)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query, kind.Name, kind.Description).Scan(&kind.ID, &kind.CreatedAt)
}

func (r *appointmentKindRepository) Update(ctx context.Context, kind *domain.AppointmentKind) error {
	const query = `UPDATE appointment_kinds SET name=$1, description=$2 WHERE id=$3`

	cmd, err := r.pool.Exec(ctx, query, kind.Name, kind.Description, kind.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *appointmentKindRepository) GetByID(ctx context.Context, id int64) (*domain.AppointmentKind, error) {
	const query = `SELECT id, name, description, created_at FROM appointment_kinds WHERE id=$1`
	return r.fetchSingle(ctx, query, id)
}

func (r *appointmentKindRepository) GetByName(ctx context.Context, name string) (*domain.AppointmentKind, error) {
	const query = `SELECT id, name, description, created_at FROM appointment_kinds WHERE name=$1`
	return r.fetchSingle(ctx, query, name)
}

func (r *appointmentKindRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.AppointmentKind, error) {
	var kind domain.AppointmentKind
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&kind.ID,
		&kind.Name,
		&kind.Description,
		&kind.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &kind, nil
}

func (r *appointmentKindRepository) List(ctx context.Context) ([]domain.AppointmentKind, error) {
	const query = `SELECT id, name, description, created_at FROM appointment_kinds ORDER BY name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.AppointmentKind
	for rows.Next() {
		var kind domain.AppointmentKind
		if err := rows.Scan(&kind.ID, &kind.Name, &kind.Description, &kind.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, kind)
	}
	return result, rows.Err()
}

func (r *appointmentKindRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM appointment_kinds WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
