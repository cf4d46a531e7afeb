package service

import (
	"context"
	"sort"
	"time"

	"github.com/clinova/clinova/internal/domain/appointment"
	"github.com/clinova/clinova/internal/domain/doctor"
	"github.com/clinova/clinova/internal/domain/patient"
	"github.com/clinova/clinova/pkg/metrics"
	"go.uber.org/zap"
)

// A single collector for the whole test binary; promauto registers
// globally and double registration panics.
var testMetrics = metrics.NewCollector("test")

var testLogger = zap.NewNop()

type fakePatientRepo struct {
	nextID   uint
	patients map[uint]*patient.Patient
}

func newFakePatientRepo() *fakePatientRepo {
	return &fakePatientRepo{nextID: 1, patients: map[uint]*patient.Patient{}}
}

func (r *fakePatientRepo) Create(_ context.Context, p *patient.Patient) error {
	p.ID = r.nextID
	r.nextID++
	cp := *p
	r.patients[p.ID] = &cp
	return nil
}

func (r *fakePatientRepo) GetByID(_ context.Context, id uint) (*patient.Patient, error) {
	p, ok := r.patients[id]
	if !ok {
		return nil, patient.ErrPatientNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakePatientRepo) List(_ context.Context) ([]*patient.Patient, error) {
	out := make([]*patient.Patient, 0, len(r.patients))
	for _, p := range r.patients {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].LastName != out[j].LastName {
			return out[i].LastName < out[j].LastName
		}
		return out[i].FirstName < out[j].FirstName
	})
	return out, nil
}

func (r *fakePatientRepo) Update(_ context.Context, id uint, cmd *patient.UpdatePatientCommand) error {
	changes := cmd.Changes()
	if len(changes) == 0 {
		return patient.ErrNoFieldsToUpdate
	}
	p, ok := r.patients[id]
	if !ok {
		return patient.ErrPatientNotFound
	}
	if cmd.FirstName != nil {
		p.FirstName = *cmd.FirstName
	}
	if cmd.LastName != nil {
		p.LastName = *cmd.LastName
	}
	if cmd.BirthDate != nil {
		p.BirthDate = *cmd.BirthDate
	}
	if cmd.Phone != nil {
		p.Phone = cmd.Phone
	}
	if cmd.Email != nil {
		p.Email = cmd.Email
	}
	if cmd.Address != nil {
		p.Address = cmd.Address
	}
	return nil
}

func (r *fakePatientRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.patients[id]; !ok {
		return patient.ErrPatientNotFound
	}
	delete(r.patients, id)
	return nil
}

type fakeDoctorRepo struct {
	nextID  uint
	doctors []*doctor.Detail
}

func newFakeDoctorRepo() *fakeDoctorRepo {
	return &fakeDoctorRepo{nextID: 1}
}

func (r *fakeDoctorRepo) add(firstName, lastName, specialtyName string, specialtyID uint) *doctor.Detail {
	d := &doctor.Detail{
		Doctor: doctor.Doctor{
			ID:          r.nextID,
			FirstName:   firstName,
			LastName:    lastName,
			SpecialtyID: specialtyID,
		},
		SpecialtyName: specialtyName,
	}
	r.nextID++
	r.doctors = append(r.doctors, d)
	return d
}

func (r *fakeDoctorRepo) Create(_ context.Context, d *doctor.Doctor) error {
	d.ID = r.nextID
	r.nextID++
	r.doctors = append(r.doctors, &doctor.Detail{Doctor: *d})
	return nil
}

func (r *fakeDoctorRepo) GetByID(_ context.Context, id uint) (*doctor.Detail, error) {
	for _, d := range r.doctors {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, doctor.ErrDoctorNotFound
}

func (r *fakeDoctorRepo) List(_ context.Context) ([]*doctor.Detail, error) {
	return append([]*doctor.Detail(nil), r.doctors...), nil
}

func (r *fakeDoctorRepo) ListBySpecialty(_ context.Context, specialtyID uint) ([]*doctor.Detail, error) {
	var out []*doctor.Detail
	for _, d := range r.doctors {
		if d.SpecialtyID == specialtyID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *fakeDoctorRepo) Update(_ context.Context, id uint, cmd *doctor.UpdateDoctorCommand) error {
	if len(cmd.Changes()) == 0 {
		return doctor.ErrNoFieldsToUpdate
	}
	d, err := r.GetByID(context.Background(), id)
	if err != nil {
		return err
	}
	if cmd.FirstName != nil {
		d.FirstName = *cmd.FirstName
	}
	if cmd.LastName != nil {
		d.LastName = *cmd.LastName
	}
	if cmd.SpecialtyID != nil {
		d.SpecialtyID = *cmd.SpecialtyID
	}
	return nil
}

func (r *fakeDoctorRepo) Delete(_ context.Context, id uint) error {
	for i, d := range r.doctors {
		if d.ID == id {
			r.doctors = append(r.doctors[:i], r.doctors[i+1:]...)
			return nil
		}
	}
	return doctor.ErrDoctorNotFound
}

type fakeAppointmentRepo struct {
	nextID uint
	appts  []*appointment.Appointment
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{nextID: 1}
}

func (r *fakeAppointmentRepo) book(doctorID, patientID uint, at time.Time) {
	r.appts = append(r.appts, &appointment.Appointment{
		ID:          r.nextID,
		ScheduledAt: at,
		PatientID:   patientID,
		DoctorID:    doctorID,
	})
	r.nextID++
}

func (r *fakeAppointmentRepo) Create(_ context.Context, a *appointment.Appointment) error {
	a.ID = r.nextID
	r.nextID++
	cp := *a
	r.appts = append(r.appts, &cp)
	return nil
}

func (r *fakeAppointmentRepo) GetByID(_ context.Context, id uint) (*appointment.Detail, error) {
	for _, a := range r.appts {
		if a.ID == id {
			return &appointment.Detail{Appointment: *a}, nil
		}
	}
	return nil, appointment.ErrAppointmentNotFound
}

func (r *fakeAppointmentRepo) List(_ context.Context) ([]*appointment.Detail, error) {
	out := make([]*appointment.Detail, 0, len(r.appts))
	for _, a := range r.appts {
		out = append(out, &appointment.Detail{Appointment: *a})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ScheduledAt.Before(out[j].ScheduledAt) })
	return out, nil
}

func (r *fakeAppointmentRepo) ListByPatient(ctx context.Context, patientID uint) ([]*appointment.Detail, error) {
	all, _ := r.List(ctx)
	var out []*appointment.Detail
	for _, a := range all {
		if a.PatientID == patientID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAppointmentRepo) ListByDoctor(ctx context.Context, doctorID uint) ([]*appointment.Detail, error) {
	all, _ := r.List(ctx)
	var out []*appointment.Detail
	for _, a := range all {
		if a.DoctorID == doctorID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAppointmentRepo) Update(_ context.Context, id uint, cmd *appointment.UpdateAppointmentCommand) error {
	if len(cmd.Changes()) == 0 {
		return appointment.ErrNoFieldsToUpdate
	}
	for _, a := range r.appts {
		if a.ID == id {
			if cmd.ScheduledAt != nil {
				a.ScheduledAt = *cmd.ScheduledAt
			}
			if cmd.Reason != nil {
				a.Reason = cmd.Reason
			}
			if cmd.DoctorID != nil {
				a.DoctorID = *cmd.DoctorID
			}
			return nil
		}
	}
	return appointment.ErrAppointmentNotFound
}

func (r *fakeAppointmentRepo) Delete(_ context.Context, id uint) error {
	for i, a := range r.appts {
		if a.ID == id {
			r.appts = append(r.appts[:i], r.appts[i+1:]...)
			return nil
		}
	}
	return appointment.ErrAppointmentNotFound
}

func (r *fakeAppointmentRepo) CountAt(_ context.Context, doctorID uint, at time.Time) (int64, error) {
	var count int64
	for _, a := range r.appts {
		if a.DoctorID == doctorID && a.ScheduledAt.Equal(at) {
			count++
		}
	}
	return count, nil
}
