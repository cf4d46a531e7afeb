package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/clinova/clinova/internal/domain/appointment"
	"github.com/clinova/clinova/internal/domain/doctor"
	"github.com/clinova/clinova/internal/service"
	"github.com/clinova/clinova/pkg/metrics"
)

// A single collector for the whole test binary; promauto registers
// globally and double registration panics.
var testMetrics = metrics.NewCollector("handlertest")

type stubDoctorRepo struct {
	doctors []*doctor.Detail
}

func (r *stubDoctorRepo) Create(context.Context, *doctor.Doctor) error { return nil }

func (r *stubDoctorRepo) GetByID(_ context.Context, id uint) (*doctor.Detail, error) {
	for _, d := range r.doctors {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, doctor.ErrDoctorNotFound
}

func (r *stubDoctorRepo) List(context.Context) ([]*doctor.Detail, error) {
	return r.doctors, nil
}

func (r *stubDoctorRepo) ListBySpecialty(_ context.Context, specialtyID uint) ([]*doctor.Detail, error) {
	var out []*doctor.Detail
	for _, d := range r.doctors {
		if d.SpecialtyID == specialtyID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *stubDoctorRepo) Update(context.Context, uint, *doctor.UpdateDoctorCommand) error {
	return nil
}

func (r *stubDoctorRepo) Delete(context.Context, uint) error { return nil }

type stubAppointmentRepo struct {
	appts []*appointment.Appointment
}

func (r *stubAppointmentRepo) Create(context.Context, *appointment.Appointment) error { return nil }

func (r *stubAppointmentRepo) GetByID(context.Context, uint) (*appointment.Detail, error) {
	return nil, appointment.ErrAppointmentNotFound
}

func (r *stubAppointmentRepo) List(context.Context) ([]*appointment.Detail, error) { return nil, nil }

func (r *stubAppointmentRepo) ListByPatient(context.Context, uint) ([]*appointment.Detail, error) {
	return nil, nil
}

func (r *stubAppointmentRepo) ListByDoctor(context.Context, uint) ([]*appointment.Detail, error) {
	return nil, nil
}

func (r *stubAppointmentRepo) Update(context.Context, uint, *appointment.UpdateAppointmentCommand) error {
	return nil
}

func (r *stubAppointmentRepo) Delete(context.Context, uint) error { return nil }

func (r *stubAppointmentRepo) CountAt(_ context.Context, doctorID uint, at time.Time) (int64, error) {
	var count int64
	for _, a := range r.appts {
		if a.DoctorID == doctorID && a.ScheduledAt.Equal(at) {
			count++
		}
	}
	return count, nil
}

func availabilityRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	doctors := &stubDoctorRepo{doctors: []*doctor.Detail{
		{
			Doctor:        doctor.Doctor{ID: 1, FirstName: "Ana", LastName: "Garcia", SpecialtyID: 1},
			SpecialtyName: "Cardiology",
		},
	}}
	appts := &stubAppointmentRepo{appts: []*appointment.Appointment{
		{ID: 1, DoctorID: 1, PatientID: 1, ScheduledAt: time.Date(2024, time.March, 4, 10, 0, 0, 0, time.UTC)},
	}}

	svc := service.NewAvailabilityService(doctors, appts, testMetrics, zap.NewNop())
	h := NewAvailabilityHandler(svc)

	r := gin.New()
	r.GET("/availability", h.DaySchedule)
	r.GET("/availability/check", h.CheckSlot)
	return r
}

func doGet(t *testing.T, r *gin.Engine, url string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCheckSlot(t *testing.T) {
	r := availabilityRouter(t)

	tests := []struct {
		name          string
		url           string
		wantAvailable bool
	}{
		{"booked slot", "/availability/check?date=2024-03-04&doctor_id=1&time=10:00", false},
		{"free slot", "/availability/check?date=2024-03-04&doctor_id=1&time=10:30", true},
		{"another day", "/availability/check?date=2024-03-05&doctor_id=1&time=10:00", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doGet(t, r, tt.url)
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
			}

			var resp struct {
				Data struct {
					Available bool   `json:"available"`
					Time      string `json:"time"`
				} `json:"data"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if resp.Data.Available != tt.wantAvailable {
				t.Errorf("available = %v, want %v", resp.Data.Available, tt.wantAvailable)
			}
		})
	}
}

func TestCheckSlotBadRequests(t *testing.T) {
	r := availabilityRouter(t)

	tests := []struct {
		name string
		url  string
	}{
		{"missing date", "/availability/check?doctor_id=1&time=10:00"},
		{"malformed date", "/availability/check?date=04-03-2024&doctor_id=1&time=10:00"},
		{"missing doctor", "/availability/check?date=2024-03-04&time=10:00"},
		{"invalid time", "/availability/check?date=2024-03-04&doctor_id=1&time=25:99"},
		{"non-numeric doctor", "/availability/check?date=2024-03-04&doctor_id=abc&time=10:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if w := doGet(t, r, tt.url); w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400; body %s", w.Code, w.Body.String())
			}
		})
	}
}

func TestDayScheduleEndpoint(t *testing.T) {
	r := availabilityRouter(t)

	w := doGet(t, r, "/availability?date=2024-03-04")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data []struct {
			DoctorID      uint     `json:"doctor_id"`
			DoctorName    string   `json:"doctor_name"`
			SpecialtyName string   `json:"specialty_name"`
			Slots         []string `json:"available_slots"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if len(resp.Data) != 1 {
		t.Fatalf("got %d doctors, want 1", len(resp.Data))
	}
	got := resp.Data[0]
	if got.DoctorName != "Ana Garcia" || got.SpecialtyName != "Cardiology" {
		t.Errorf("doctor = %q / %q", got.DoctorName, got.SpecialtyName)
	}
	if len(got.Slots) != 15 {
		t.Errorf("got %d open slots, want 15", len(got.Slots))
	}
	for _, s := range got.Slots {
		if s == "10:00" {
			t.Error("booked slot 10:00 leaked into the open list")
		}
	}
}

func TestDayScheduleRequiresDate(t *testing.T) {
	r := availabilityRouter(t)
	if w := doGet(t, r, "/availability"); w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestDayScheduleUnknownDoctorIsEmpty(t *testing.T) {
	r := availabilityRouter(t)

	w := doGet(t, r, "/availability?date=2024-03-04&doctor_id=99")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data []json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Data) != 0 {
		t.Errorf("got %d doctors, want 0", len(resp.Data))
	}
}
