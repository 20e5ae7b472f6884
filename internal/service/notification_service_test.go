package service

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/autismo-mochis/clinic-service/internal/domain"
	"github.com/autismo-mochis/clinic-service/internal/events"
	"github.com/autismo-mochis/clinic-service/internal/mail"
	"github.com/autismo-mochis/clinic-service/internal/repository"
)

type captureMailer struct {
	sent []mail.Message
	fail error
}

func (m *captureMailer) Send(msg mail.Message) error {
	if m.fail != nil {
		return m.fail
	}
	m.sent = append(m.sent, msg)
	return nil
}

// Fakes embed the repository interface and override only what the
// notification path reads; anything else panics, which is what we want.

type fakeStaffLookup struct {
	repository.StaffRepository
	members map[int64]domain.StaffMember
}

func (f *fakeStaffLookup) GetByID(_ context.Context, id int64) (*domain.StaffMember, error) {
	m, ok := f.members[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &m, nil
}

type fakeUserLookup struct {
	repository.UserRepository
	users map[int64]domain.User
}

func (f *fakeUserLookup) GetByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &u, nil
}

type fakeChildLookup struct {
	repository.ChildRepository
	children map[int64]domain.Child
}

func (f *fakeChildLookup) GetByID(_ context.Context, id int64) (*domain.Child, error) {
	c, ok := f.children[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &c, nil
}

type fakeGuardianLookup struct {
	repository.GuardianRepository
	guardians map[int64]domain.Guardian
}

func (f *fakeGuardianLookup) GetByID(_ context.Context, id int64) (*domain.Guardian, error) {
	g, ok := f.guardians[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &g, nil
}

type fakeProspectLookup struct {
	repository.ProspectRepository
	prospects map[int64]domain.Prospect
}

func (f *fakeProspectLookup) GetByID(_ context.Context, id int64) (*domain.Prospect, error) {
	p, ok := f.prospects[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &p, nil
}

func notificationFixture(mailer mail.Mailer) *NotificationService {
	staffEmail := "terapeuta@clinic.mx"
	guardianEmail := "tutor@clinic.mx"
	guardianUserID := int64(20)

	staff := &fakeStaffLookup{members: map[int64]domain.StaffMember{
		1: {ID: 1, UserID: 10},
	}}
	users := &fakeUserLookup{users: map[int64]domain.User{
		10: {ID: 10, Email: staffEmail},
		20: {ID: 20, Email: guardianEmail},
	}}
	children := &fakeChildLookup{children: map[int64]domain.Child{
		5: {ID: 5, FirstName: "Luis", GuardianID: intPtr(7)},
	}}
	guardians := &fakeGuardianLookup{guardians: map[int64]domain.Guardian{
		7: {ID: 7, UserID: &guardianUserID},
	}}
	prospects := &fakeProspectLookup{prospects: map[int64]domain.Prospect{
		3: {ID: 3, FirstName: "Sofia", ContactEmail: strPtr("contacto@familia.mx")},
	}}

	return NewNotificationService(mailer, staff, users, children, guardians, prospects, zap.NewNop())
}

func appointmentEvent(eventType events.EventType, patient domain.PatientRef, staffID *int64) events.Event {
	return events.Event{
		ID:   "evt-1",
		Type: eventType,
		Appointment: domain.Appointment{
			ID:      1,
			Patient: patient,
			StaffID: staffID,
			Date:    time.Date(2025, 11, 20, 0, 0, 0, 0, time.UTC),
			Time:    "10:00",
			Status:  domain.AppointmentStatusScheduled,
		},
		Timestamp: time.Now(),
	}
}

func TestNotificationResolvesStaffAndGuardian(t *testing.T) {
	mailer := &captureMailer{}
	svc := notificationFixture(mailer)

	err := svc.HandleAppointmentCreated(context.Background(),
		appointmentEvent(events.EventAppointmentCreated,
			domain.PatientRef{ChildID: intPtr(5)}, intPtr(1)))
	require.NoError(t, err)

	require.Len(t, mailer.sent, 1)
	assert.ElementsMatch(t, []string{"terapeuta@clinic.mx", "tutor@clinic.mx"}, mailer.sent[0].To)
	assert.Equal(t, "Cita agendada", mailer.sent[0].Subject)
	assert.Contains(t, mailer.sent[0].Body, "Luis")
	assert.Contains(t, mailer.sent[0].Body, "2025-11-20")
}

func TestNotificationUsesProspectContactEmail(t *testing.T) {
	mailer := &captureMailer{}
	svc := notificationFixture(mailer)

	err := svc.HandleAppointmentCancelled(context.Background(),
		appointmentEvent(events.EventAppointmentCancelled,
			domain.PatientRef{ProspectID: intPtr(3)}, nil))
	require.NoError(t, err)

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, []string{"contacto@familia.mx"}, mailer.sent[0].To)
	assert.Equal(t, "Cita cancelada", mailer.sent[0].Subject)
}

func TestNotificationSkipsWhenNoRecipients(t *testing.T) {
	mailer := &captureMailer{}
	svc := notificationFixture(mailer)

	err := svc.HandleAppointmentCreated(context.Background(),
		appointmentEvent(events.EventAppointmentCreated,
			domain.PatientRef{FreeName: strPtr("Juan Perez")}, nil))
	require.NoError(t, err)
	assert.Empty(t, mailer.sent)
}

func TestNotificationSwallowsMailerFailure(t *testing.T) {
	mailer := &captureMailer{fail: assert.AnError}
	svc := notificationFixture(mailer)

	err := svc.HandleAppointmentCreated(context.Background(),
		appointmentEvent(events.EventAppointmentCreated,
			domain.PatientRef{ChildID: intPtr(5)}, intPtr(1)))
	assert.NoError(t, err)
}
