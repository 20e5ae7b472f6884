package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/autismo-mochis/clinic-service/internal/domain"
	"github.com/autismo-mochis/clinic-service/internal/events"
	"github.com/autismo-mochis/clinic-service/internal/mail"
	"github.com/autismo-mochis/clinic-service/internal/repository"
)

// NotificationService emails the people tied to an appointment when it is
// created or cancelled. It only ever runs as an event subscriber, and every
// failure inside it is logged and swallowed: notification is advisory and
// must never fail the lifecycle operation that triggered it.
type NotificationService struct {
	mailer    mail.Mailer
	staff     repository.StaffRepository
	users     repository.UserRepository
	children  repository.ChildRepository
	guardians repository.GuardianRepository
	prospects repository.ProspectRepository
	logger    *zap.Logger
}

// NewNotificationService constructs the service.
func NewNotificationService(
	mailer mail.Mailer,
	staff repository.StaffRepository,
	users repository.UserRepository,
	children repository.ChildRepository,
	guardians repository.GuardianRepository,
	prospects repository.ProspectRepository,
	logger *zap.Logger,
) *NotificationService {
	return &NotificationService{
		mailer:    mailer,
		staff:     staff,
		users:     users,
		children:  children,
		guardians: guardians,
		prospects: prospects,
		logger:    logger,
	}
}

// Register subscribes the service to appointment lifecycle events.
func (s *NotificationService) Register(dispatcher events.Dispatcher) {
	dispatcher.Subscribe(events.EventAppointmentCreated, s.HandleAppointmentCreated)
	dispatcher.Subscribe(events.EventAppointmentCancelled, s.HandleAppointmentCancelled)
}

// HandleAppointmentCreated notifies recipients of a new appointment.
func (s *NotificationService) HandleAppointmentCreated(ctx context.Context, event events.Event) error {
	s.notify(ctx, event,
		"Cita agendada",
		"Se ha agendado una cita para %s el %s a las %s.")
	return nil
}

// HandleAppointmentCancelled notifies recipients of a cancellation.
func (s *NotificationService) HandleAppointmentCancelled(ctx context.Context, event events.Event) error {
	s.notify(ctx, event,
		"Cita cancelada",
		"La cita de %s programada para el %s a las %s ha sido cancelada.")
	return nil
}

func (s *NotificationService) notify(ctx context.Context, event events.Event, subject, template string) {
	appointment := event.Appointment

	recipients := s.resolveRecipients(ctx, appointment)
	if len(recipients) == 0 {
		s.logger.Debug("no notification recipients for appointment",
			zap.Int64("appointment_id", appointment.ID),
			zap.String("event", string(event.Type)))
		return
	}

	body := fmt.Sprintf(
		"<html><body><p>%s</p></body></html>",
		fmt.Sprintf(template,
			s.patientLabel(ctx, appointment.Patient),
			appointment.Date.Format("2006-01-02"),
			appointment.Time),
	)

	if err := s.mailer.Send(mail.Message{Subject: subject, Body: body, To: recipients}); err != nil {
		s.logger.Warn("appointment notification failed",
			zap.Int64("appointment_id", appointment.ID),
			zap.String("event", string(event.Type)),
			zap.Error(err))
	}
}

// resolveRecipients gathers addresses for the assigned staff member and the
// patient side: the child's guardian account, or the prospect's contact
// email when no child is registered. Lookup failures drop the recipient.
func (s *NotificationService) resolveRecipients(ctx context.Context, appointment domain.Appointment) []string {
	var recipients []string
	seen := make(map[string]struct{})

	add := func(addr string) {
		addr = strings.TrimSpace(strings.ToLower(addr))
		if addr == "" {
			return
		}
		if _, dup := seen[addr]; dup {
			return
		}
		seen[addr] = struct{}{}
		recipients = append(recipients, addr)
	}

	if appointment.StaffID != nil {
		if member, err := s.staff.GetByID(ctx, *appointment.StaffID); err == nil {
			if user, err := s.users.GetByID(ctx, member.UserID); err == nil {
				add(user.Email)
			}
		} else {
			s.logger.Debug("staff recipient lookup failed",
				zap.Int64("staff_id", *appointment.StaffID), zap.Error(err))
		}
	}

	if appointment.Patient.ChildID != nil {
		if child, err := s.children.GetByID(ctx, *appointment.Patient.ChildID); err == nil && child.GuardianID != nil {
			if guardian, err := s.guardians.GetByID(ctx, *child.GuardianID); err == nil && guardian.UserID != nil {
				if user, err := s.users.GetByID(ctx, *guardian.UserID); err == nil {
					add(user.Email)
				}
			}
		}
	} else if appointment.Patient.ProspectID != nil {
		if prospect, err := s.prospects.GetByID(ctx, *appointment.Patient.ProspectID); err == nil && prospect.ContactEmail != nil {
			add(*prospect.ContactEmail)
		}
	}

	return recipients
}

func (s *NotificationService) patientLabel(ctx context.Context, patient domain.PatientRef) string {
	if patient.ChildID != nil {
		if child, err := s.children.GetByID(ctx, *patient.ChildID); err == nil {
			return child.FullName()
		}
	}
	if patient.ProspectID != nil {
		if prospect, err := s.prospects.GetByID(ctx, *patient.ProspectID); err == nil {
			name := prospect.FirstName
			if prospect.PaternalSurname != nil && *prospect.PaternalSurname != "" {
				name += " " + *prospect.PaternalSurname
			}
			return name
		}
	}
	if patient.FreeName != nil {
		return *patient.FreeName
	}
	return "el paciente"
}
