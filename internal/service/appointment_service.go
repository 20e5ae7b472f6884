package service

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/autismo-mochis/clinic-service/internal/domain"
	"github.com/autismo-mochis/clinic-service/internal/events"
	"github.com/autismo-mochis/clinic-service/internal/repository"
	apperrors "github.com/autismo-mochis/clinic-service/pkg/util"
)

var timeOfDayPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// AppointmentService coordinates the appointment lifecycle. Every mutation
// that touches the patient discriminator funnels through the PatientRef
// merge so the invariant is enforced in one place. Notification is handled
// by event subscribers and can never fail an operation here.
type AppointmentService struct {
	appointments repository.AppointmentRepository
	dispatcher   events.Dispatcher
}

// NewAppointmentService constructs the service.
func NewAppointmentService(appointments repository.AppointmentRepository, dispatcher events.Dispatcher) *AppointmentService {
	return &AppointmentService{appointments: appointments, dispatcher: dispatcher}
}

// AppointmentCreateInput describes appointment creation payload.
type AppointmentCreateInput struct {
	ChildID    *int64
	ProspectID *int64
	FreeName   *string
	StaffID    *int64
	TherapyID  *int64
	KindID     *int64
	Date       time.Time
	Time       string
	KindLabel  *string
	Notes      *string
}

// AppointmentUpdateInput is a sparse update: only fields flagged as set are
// applied. Pointer values distinguish "set to value" from "set to null".
type AppointmentUpdateInput struct {
	Patient      domain.PatientRefPatch
	SetStaffID   bool
	StaffID      *int64
	SetTherapyID bool
	TherapyID    *int64
	SetKindID    bool
	KindID       *int64
	Date         *time.Time
	Time         *string
	SetKindLabel bool
	KindLabel    *string
	SetNotes     bool
	Notes        *string
	Status       *domain.AppointmentStatus
}

// Create validates the patient reference and persists the appointment with
// default status SCHEDULED. Success is defined purely by persistence; the
// created event is published afterwards for best-effort notification.
func (s *AppointmentService) Create(ctx context.Context, actorID *int64, input AppointmentCreateInput) (*domain.Appointment, error) {
	patient := domain.PatientRef{
		ChildID:    input.ChildID,
		ProspectID: input.ProspectID,
		FreeName:   input.FreeName,
	}
	if err := patient.Validate(); err != nil {
		return nil, err
	}
	if input.Date.IsZero() {
		return nil, apperrors.NewValidationError("date is required", nil)
	}
	if !timeOfDayPattern.MatchString(input.Time) {
		return nil, apperrors.NewValidationError("time must be HH:MM", nil)
	}

	appointment := &domain.Appointment{
		Patient:   patient,
		StaffID:   input.StaffID,
		TherapyID: input.TherapyID,
		KindID:    input.KindID,
		Date:      input.Date,
		Time:      input.Time,
		KindLabel: input.KindLabel,
		Notes:     input.Notes,
		Status:    domain.AppointmentStatusScheduled,
	}

	if err := s.appointments.Create(ctx, appointment); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.EventAppointmentCreated, *appointment, actorID)
	return appointment, nil
}

// Update applies a sparse update. Updates that touch the discriminator are
// merged and re-validated before anything is written, so a rejected patch
// leaves the stored record untouched.
func (s *AppointmentService) Update(ctx context.Context, id int64, input AppointmentUpdateInput) (*domain.Appointment, error) {
	appointment, err := s.getByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Patient.Touches() {
		merged, err := appointment.Patient.Apply(input.Patient)
		if err != nil {
			return nil, err
		}
		appointment.Patient = merged
	}
	if input.SetStaffID {
		appointment.StaffID = input.StaffID
	}
	if input.SetTherapyID {
		appointment.TherapyID = input.TherapyID
	}
	if input.SetKindID {
		appointment.KindID = input.KindID
	}
	if input.Date != nil {
		appointment.Date = *input.Date
	}
	if input.Time != nil {
		if !timeOfDayPattern.MatchString(*input.Time) {
			return nil, apperrors.NewValidationError("time must be HH:MM", nil)
		}
		appointment.Time = *input.Time
	}
	if input.SetKindLabel {
		appointment.KindLabel = input.KindLabel
	}
	if input.SetNotes {
		appointment.Notes = input.Notes
	}
	if input.Status != nil {
		appointment.Status = *input.Status
	}

	if err := s.appointments.Update(ctx, appointment); err != nil {
		return nil, err
	}
	return appointment, nil
}

// Cancel moves the appointment to CANCELLED and publishes the cancellation
// event. Cancelling an already cancelled appointment is a no-op and does
// not re-notify.
func (s *AppointmentService) Cancel(ctx context.Context, actorID *int64, id int64) (*domain.Appointment, error) {
	appointment, err := s.getByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appointment.Status == domain.AppointmentStatusCancelled {
		return appointment, nil
	}

	appointment.Status = domain.AppointmentStatusCancelled
	if err := s.appointments.Update(ctx, appointment); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.EventAppointmentCancelled, *appointment, actorID)
	return appointment, nil
}

// Delete removes the record permanently.
func (s *AppointmentService) Delete(ctx context.Context, id int64) error {
	if err := s.appointments.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("appointment", map[string]any{"id": id})
		}
		return err
	}
	return nil
}

// Promote upgrades a prospect or free-text appointment to a registered
// child: the child reference is set and the prospect reference cleared.
// The free-text label stays visible on purpose.
func (s *AppointmentService) Promote(ctx context.Context, id, childID int64) (*domain.Appointment, error) {
	appointment, err := s.getByID(ctx, id)
	if err != nil {
		return nil, err
	}

	appointment.Patient = appointment.Patient.Promoted(childID)
	if err := s.appointments.Update(ctx, appointment); err != nil {
		return nil, err
	}
	return appointment, nil
}

// Get returns one appointment by id.
func (s *AppointmentService) Get(ctx context.Context, id int64) (*domain.Appointment, error) {
	return s.getByID(ctx, id)
}

// ListAll returns every appointment, date descending then time ascending.
func (s *AppointmentService) ListAll(ctx context.Context) ([]domain.Appointment, error) {
	return s.appointments.ListAll(ctx)
}

// ListByDate returns appointments on the exact date.
func (s *AppointmentService) ListByDate(ctx context.Context, date time.Time) ([]domain.Appointment, error) {
	return s.appointments.ListByDate(ctx, date)
}

// ListToday returns today's appointments.
func (s *AppointmentService) ListToday(ctx context.Context) ([]domain.Appointment, error) {
	return s.appointments.ListByDate(ctx, time.Now().Truncate(24*time.Hour))
}

// ListUnregistered returns appointments without a registered child that
// still name a prospect or a free-text patient.
func (s *AppointmentService) ListUnregistered(ctx context.Context) ([]domain.Appointment, error) {
	return s.appointments.ListUnregistered(ctx)
}

// ListByStaff returns appointments assigned to a staff member.
func (s *AppointmentService) ListByStaff(ctx context.Context, staffID int64) ([]domain.Appointment, error) {
	return s.appointments.ListByStaff(ctx, staffID)
}

// ListByChild returns appointments of a registered child.
func (s *AppointmentService) ListByChild(ctx context.Context, childID int64) ([]domain.Appointment, error) {
	return s.appointments.ListByChild(ctx, childID)
}

func (s *AppointmentService) getByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	appointment, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("appointment", map[string]any{"id": id})
		}
		return nil, err
	}
	return appointment, nil
}

func (s *AppointmentService) publishEvent(ctx context.Context, eventType events.EventType, appointment domain.Appointment, actorID *int64) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:          uuid.NewString(),
		Type:        eventType,
		Appointment: appointment,
		ActorUserID: actorID,
		Timestamp:   time.Now(),
	})
}
