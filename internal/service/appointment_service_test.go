package service

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autismo-mochis/clinic-service/internal/domain"
	"github.com/autismo-mochis/clinic-service/internal/events"
	"github.com/autismo-mochis/clinic-service/pkg/util"
)

type fakeAppointmentRepo struct {
	items  map[int64]domain.Appointment
	nextID int64
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{items: make(map[int64]domain.Appointment), nextID: 1}
}

func (f *fakeAppointmentRepo) Create(_ context.Context, a *domain.Appointment) error {
	a.ID = f.nextID
	f.nextID++
	a.CreatedAt = time.Now()
	a.UpdatedAt = a.CreatedAt
	f.items[a.ID] = *a
	return nil
}

func (f *fakeAppointmentRepo) Update(_ context.Context, a *domain.Appointment) error {
	if _, ok := f.items[a.ID]; !ok {
		return pgx.ErrNoRows
	}
	a.UpdatedAt = time.Now()
	f.items[a.ID] = *a
	return nil
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	a, ok := f.items[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &a, nil
}

func (f *fakeAppointmentRepo) ListAll(_ context.Context) ([]domain.Appointment, error) {
	out := make([]domain.Appointment, 0, len(f.items))
	for _, a := range f.items {
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeAppointmentRepo) ListByDate(_ context.Context, date time.Time) ([]domain.Appointment, error) {
	var out []domain.Appointment
	for _, a := range f.items {
		if a.Date.Equal(date) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) ListUnregistered(_ context.Context) ([]domain.Appointment, error) {
	var out []domain.Appointment
	for _, a := range f.items {
		if a.Patient.ChildID == nil && (a.Patient.ProspectID != nil || a.Patient.FreeName != nil) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) ListByStaff(_ context.Context, staffID int64) ([]domain.Appointment, error) {
	var out []domain.Appointment
	for _, a := range f.items {
		if a.StaffID != nil && *a.StaffID == staffID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) ListByChild(_ context.Context, childID int64) ([]domain.Appointment, error) {
	var out []domain.Appointment
	for _, a := range f.items {
		if a.Patient.ChildID != nil && *a.Patient.ChildID == childID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.items[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.items, id)
	return nil
}

type recordingDispatcher struct {
	published []events.Event
}

func (d *recordingDispatcher) Publish(_ context.Context, event events.Event) error {
	d.published = append(d.published, event)
	return nil
}

func (d *recordingDispatcher) Subscribe(events.EventType, events.EventHandler) {}

func strPtr(v string) *string { return &v }
func intPtr(v int64) *int64   { return &v }

func newTestAppointmentService() (*AppointmentService, *fakeAppointmentRepo, *recordingDispatcher) {
	repo := newFakeAppointmentRepo()
	dispatcher := &recordingDispatcher{}
	return NewAppointmentService(repo, dispatcher), repo, dispatcher
}

func TestCreateAppointmentWithFreeTextName(t *testing.T) {
	svc, repo, dispatcher := newTestAppointmentService()

	appointment, err := svc.Create(context.Background(), intPtr(9), AppointmentCreateInput{
		FreeName: strPtr("Juan Perez"),
		Date:     time.Date(2025, 11, 20, 0, 0, 0, 0, time.UTC),
		Time:     "10:00",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.AppointmentStatusScheduled, appointment.Status)
	assert.Equal(t, "Juan Perez", *appointment.Patient.FreeName)
	assert.Len(t, repo.items, 1)

	require.Len(t, dispatcher.published, 1)
	event := dispatcher.published[0]
	assert.Equal(t, events.EventAppointmentCreated, event.Type)
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, int64(9), *event.ActorUserID)
}

func TestCreateAppointmentRequiresPatientReference(t *testing.T) {
	svc, repo, dispatcher := newTestAppointmentService()

	_, err := svc.Create(context.Background(), nil, AppointmentCreateInput{
		Date: time.Date(2025, 11, 20, 0, 0, 0, 0, time.UTC),
		Time: "10:00",
	})
	require.Error(t, err)
	var domainErr *util.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "MISSING_PATIENT_REFERENCE", domainErr.Code)
	assert.Empty(t, repo.items)
	assert.Empty(t, dispatcher.published)
}

func TestCreateAppointmentRejectsBadTime(t *testing.T) {
	svc, _, _ := newTestAppointmentService()

	for _, bad := range []string{"", "25:00", "9:5", "10:60", "banana"} {
		_, err := svc.Create(context.Background(), nil, AppointmentCreateInput{
			FreeName: strPtr("x"),
			Date:     time.Date(2025, 11, 20, 0, 0, 0, 0, time.UTC),
			Time:     bad,
		})
		assert.Error(t, err, "time %q should be rejected", bad)
	}
}

func TestUpdateAppointmentSparse(t *testing.T) {
	svc, _, _ := newTestAppointmentService()
	created, err := svc.Create(context.Background(), nil, AppointmentCreateInput{
		ProspectID: intPtr(5),
		StaffID:    intPtr(2),
		Date:       time.Date(2025, 11, 20, 0, 0, 0, 0, time.UTC),
		Time:       "10:00",
		Notes:      strPtr("first visit"),
	})
	require.NoError(t, err)

	newTime := "11:30"
	updated, err := svc.Update(context.Background(), created.ID, AppointmentUpdateInput{
		Time:     &newTime,
		SetNotes: true,
		Notes:    nil,
	})
	require.NoError(t, err)
	assert.Equal(t, "11:30", updated.Time)
	assert.Nil(t, updated.Notes)
	// untouched fields survive
	assert.Equal(t, int64(5), *updated.Patient.ProspectID)
	assert.Equal(t, int64(2), *updated.StaffID)
}

func TestUpdateAppointmentRejectsClearingPatient(t *testing.T) {
	svc, repo, _ := newTestAppointmentService()
	created, err := svc.Create(context.Background(), nil, AppointmentCreateInput{
		ProspectID: intPtr(5),
		Date:       time.Date(2025, 11, 20, 0, 0, 0, 0, time.UTC),
		Time:       "10:00",
	})
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), created.ID, AppointmentUpdateInput{
		Patient: domain.PatientRefPatch{SetProspectID: true, ProspectID: nil},
	})
	require.Error(t, err)

	stored := repo.items[created.ID]
	require.NotNil(t, stored.Patient.ProspectID)
	assert.Equal(t, int64(5), *stored.Patient.ProspectID)
}

func TestUpdateAppointmentNotFound(t *testing.T) {
	svc, _, _ := newTestAppointmentService()

	_, err := svc.Update(context.Background(), 404, AppointmentUpdateInput{})
	var domainErr *util.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
}

func TestCancelAppointmentIsIdempotent(t *testing.T) {
	svc, _, dispatcher := newTestAppointmentService()
	created, err := svc.Create(context.Background(), nil, AppointmentCreateInput{
		FreeName: strPtr("Juan Perez"),
		Date:     time.Date(2025, 11, 20, 0, 0, 0, 0, time.UTC),
		Time:     "10:00",
	})
	require.NoError(t, err)
	require.Len(t, dispatcher.published, 1)

	cancelled, err := svc.Cancel(context.Background(), nil, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.AppointmentStatusCancelled, cancelled.Status)
	require.Len(t, dispatcher.published, 2)
	assert.Equal(t, events.EventAppointmentCancelled, dispatcher.published[1].Type)

	// a second cancel is a no-op and does not re-notify
	again, err := svc.Cancel(context.Background(), nil, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.AppointmentStatusCancelled, again.Status)
	assert.Len(t, dispatcher.published, 2)
}

func TestPromoteAppointmentKeepsFreeName(t *testing.T) {
	svc, _, _ := newTestAppointmentService()
	created, err := svc.Create(context.Background(), nil, AppointmentCreateInput{
		ProspectID: intPtr(5),
		FreeName:   strPtr("Juan Perez"),
		Date:       time.Date(2025, 11, 20, 0, 0, 0, 0, time.UTC),
		Time:       "10:00",
	})
	require.NoError(t, err)

	promoted, err := svc.Promote(context.Background(), created.ID, 33)
	require.NoError(t, err)
	assert.Equal(t, int64(33), *promoted.Patient.ChildID)
	assert.Nil(t, promoted.Patient.ProspectID)
	assert.Equal(t, "Juan Perez", *promoted.Patient.FreeName)
}

func TestDeleteAppointment(t *testing.T) {
	svc, repo, _ := newTestAppointmentService()
	created, err := svc.Create(context.Background(), nil, AppointmentCreateInput{
		FreeName: strPtr("x"),
		Date:     time.Date(2025, 11, 20, 0, 0, 0, 0, time.UTC),
		Time:     "10:00",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	assert.Empty(t, repo.items)

	err = svc.Delete(context.Background(), created.ID)
	var domainErr *util.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
}

func TestLifecycleSurvivesFailingSubscriber(t *testing.T) {
	repo := newFakeAppointmentRepo()
	dispatcher := events.NewInMemoryDispatcher()
	dispatcher.Subscribe(events.EventAppointmentCreated, func(context.Context, events.Event) error {
		return assert.AnError
	})
	svc := NewAppointmentService(repo, dispatcher)

	appointment, err := svc.Create(context.Background(), nil, AppointmentCreateInput{
		FreeName: strPtr("Juan Perez"),
		Date:     time.Date(2025, 11, 20, 0, 0, 0, 0, time.UTC),
		Time:     "10:00",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.AppointmentStatusScheduled, appointment.Status)
}
