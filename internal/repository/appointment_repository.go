package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/autismo-mochis/clinic-service/internal/domain"
)

// AppointmentRepository encapsulates appointment persistence. Updates write
// the full row; sparse-field merging happens in the service layer so the
// discriminator invariant is enforced at a single choke point.
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *domain.Appointment) error
	Update(ctx context.Context, appointment *domain.Appointment) error
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	ListAll(ctx context.Context) ([]domain.Appointment, error)
	ListByDate(ctx context.Context, date time.Time) ([]domain.Appointment, error)
	ListUnregistered(ctx context.Context) ([]domain.Appointment, error)
	ListByStaff(ctx context.Context, staffID int64) ([]domain.Appointment, error)
	ListByChild(ctx context.Context, childID int64) ([]domain.Appointment, error)
	Delete(ctx context.Context, id int64) error
}

type appointmentRepository struct {
	pool *pgxpool.Pool
}

// NewAppointmentRepository instantiates repository.
func NewAppointmentRepository(pool *pgxpool.Pool) AppointmentRepository {
	return &appointmentRepository{pool: pool}
}

const appointmentColumns = `id, child_id, prospect_id, free_text_name, staff_id, therapy_id, kind_id,
               date, start_time, kind_label, notes, status, created_at, updated_at`

func (r *appointmentRepository) Create(ctx context.Context, appointment *domain.Appointment) error {
	const query = `
        INSERT INTO appointments (child_id, prospect_id, free_text_name, staff_id, therapy_id, kind_id,
            date, start_time, kind_label, notes, status)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		appointment.Patient.ChildID,
		appointment.Patient.ProspectID,
		appointment.Patient.FreeName,
		appointment.StaffID,
		appointment.TherapyID,
		appointment.KindID,
		appointment.Date,
		appointment.Time,
		appointment.KindLabel,
		appointment.Notes,
		appointment.Status,
	).Scan(&appointment.ID, &appointment.CreatedAt, &appointment.UpdatedAt)
}

func (r *appointmentRepository) Update(ctx context.Context, appointment *domain.Appointment) error {
	const query = `
        UPDATE appointments SET child_id=$1, prospect_id=$2, free_text_name=$3, staff_id=$4,
            therapy_id=$5, kind_id=$6, date=$7, start_time=$8, kind_label=$9, notes=$10,
            status=$11, updated_at=NOW()
        WHERE id=$12`

	cmd, err := r.pool.Exec(ctx, query,
		appointment.Patient.ChildID,
		appointment.Patient.ProspectID,
		appointment.Patient.FreeName,
		appointment.StaffID,
		appointment.TherapyID,
		appointment.KindID,
		appointment.Date,
		appointment.Time,
		appointment.KindLabel,
		appointment.Notes,
		appointment.Status,
		appointment.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *appointmentRepository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	const query = `SELECT ` + appointmentColumns + ` FROM appointments WHERE id=$1`

	var appointment domain.Appointment
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&appointment.ID,
		&appointment.Patient.ChildID,
		&appointment.Patient.ProspectID,
		&appointment.Patient.FreeName,
		&appointment.StaffID,
		&appointment.TherapyID,
		&appointment.KindID,
		&appointment.Date,
		&appointment.Time,
		&appointment.KindLabel,
		&appointment.Notes,
		&appointment.Status,
		&appointment.CreatedAt,
		&appointment.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) ListAll(ctx context.Context) ([]domain.Appointment, error) {
	const query = `SELECT ` + appointmentColumns + ` FROM appointments
             ORDER BY date DESC, start_time ASC`
	return r.list(ctx, query)
}

func (r *appointmentRepository) ListByDate(ctx context.Context, date time.Time) ([]domain.Appointment, error) {
	const query = `SELECT ` + appointmentColumns + ` FROM appointments
             WHERE date=$1 ORDER BY start_time ASC`
	return r.list(ctx, query, date)
}

func (r *appointmentRepository) ListUnregistered(ctx context.Context) ([]domain.Appointment, error) {
	const query = `SELECT ` + appointmentColumns + ` FROM appointments
             WHERE child_id IS NULL AND (prospect_id IS NOT NULL OR free_text_name IS NOT NULL)
             ORDER BY date DESC, start_time ASC`
	return r.list(ctx, query)
}

func (r *appointmentRepository) ListByStaff(ctx context.Context, staffID int64) ([]domain.Appointment, error) {
	const query = `SELECT ` + appointmentColumns + ` FROM appointments
             WHERE staff_id=$1 ORDER BY date DESC, start_time ASC`
	return r.list(ctx, query, staffID)
}

func (r *appointmentRepository) ListByChild(ctx context.Context, childID int64) ([]domain.Appointment, error) {
	const query = `SELECT ` + appointmentColumns + ` FROM appointments
             WHERE child_id=$1 ORDER BY date DESC, start_time ASC`
	return r.list(ctx, query, childID)
}

func (r *appointmentRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM appointments WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *appointmentRepository) list(ctx context.Context, query string, args ...any) ([]domain.Appointment, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAppointments(rows)
}

func scanAppointments(rows pgx.Rows) ([]domain.Appointment, error) {
	var result []domain.Appointment
	for rows.Next() {
		var appointment domain.Appointment
		if err := rows.Scan(
			&appointment.ID,
			&appointment.Patient.ChildID,
			&appointment.Patient.ProspectID,
			&appointment.Patient.FreeName,
			&appointment.StaffID,
			&appointment.TherapyID,
			&appointment.KindID,
			&appointment.Date,
			&appointment.Time,
			&appointment.KindLabel,
			&appointment.Notes,
			&appointment.Status,
			&appointment.CreatedAt,
			&appointment.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, appointment)
	}
	return result, rows.Err()
}
