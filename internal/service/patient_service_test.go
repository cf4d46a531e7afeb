package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/clinova/clinova/internal/domain/patient"
)

func strPtr(s string) *string { return &s }

func TestPatientCreateThenGet(t *testing.T) {
	repo := newFakePatientRepo()
	svc := NewPatientService(repo, testMetrics, testLogger)

	cmd := &patient.CreatePatientCommand{
		FirstName: "Maria",
		LastName:  "Lopez",
		BirthDate: time.Date(1985, time.June, 2, 0, 0, 0, 0, time.UTC),
		Phone:     strPtr("555-0101"),
		Email:     strPtr("Maria.Lopez@Example.COM"),
	}

	created, err := svc.Create(context.Background(), cmd)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected an assigned id")
	}

	got, err := svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.FirstName != "Maria" || got.LastName != "Lopez" {
		t.Errorf("name = %s %s, want Maria Lopez", got.FirstName, got.LastName)
	}
	if !got.BirthDate.Equal(cmd.BirthDate) {
		t.Errorf("birth date = %s, want %s", got.BirthDate, cmd.BirthDate)
	}
	if got.Email == nil || *got.Email != "maria.lopez@example.com" {
		t.Errorf("email not normalized: %v", got.Email)
	}
}

func TestPatientCreateValidation(t *testing.T) {
	repo := newFakePatientRepo()
	svc := NewPatientService(repo, testMetrics, testLogger)

	_, err := svc.Create(context.Background(), &patient.CreatePatientCommand{
		FirstName: "  ",
		LastName:  "",
	})

	var validErr *ValidationError
	if !errors.As(err, &validErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(validErr.Fields) < 2 {
		t.Errorf("expected multiple field errors, got %v", validErr.Fields)
	}
}

func TestPatientUpdateEmptyChangesetFails(t *testing.T) {
	repo := newFakePatientRepo()
	svc := NewPatientService(repo, testMetrics, testLogger)

	created, err := svc.Create(context.Background(), &patient.CreatePatientCommand{
		FirstName: "Maria",
		LastName:  "Lopez",
		BirthDate: time.Date(1985, time.June, 2, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	err = svc.Update(context.Background(), created.ID, &patient.UpdatePatientCommand{})
	if !errors.Is(err, patient.ErrNoFieldsToUpdate) {
		t.Fatalf("expected ErrNoFieldsToUpdate, got %v", err)
	}

	got, err := svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.FirstName != "Maria" || got.LastName != "Lopez" {
		t.Errorf("record changed by empty update: %+v", got)
	}
}

func TestPatientPartialUpdateTouchesOnlyGivenFields(t *testing.T) {
	repo := newFakePatientRepo()
	svc := NewPatientService(repo, testMetrics, testLogger)

	created, err := svc.Create(context.Background(), &patient.CreatePatientCommand{
		FirstName: "Maria",
		LastName:  "Lopez",
		BirthDate: time.Date(1985, time.June, 2, 0, 0, 0, 0, time.UTC),
		Phone:     strPtr("555-0101"),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	err = svc.Update(context.Background(), created.ID, &patient.UpdatePatientCommand{
		LastName: strPtr("Lopez-Ruiz"),
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, _ := svc.Get(context.Background(), created.ID)
	if got.LastName != "Lopez-Ruiz" {
		t.Errorf("last name = %q, want %q", got.LastName, "Lopez-Ruiz")
	}
	if got.FirstName != "Maria" {
		t.Errorf("first name changed: %q", got.FirstName)
	}
	if got.Phone == nil || *got.Phone != "555-0101" {
		t.Errorf("phone changed: %v", got.Phone)
	}
}

func TestPatientDelete(t *testing.T) {
	repo := newFakePatientRepo()
	svc := NewPatientService(repo, testMetrics, testLogger)

	if err := svc.Delete(context.Background(), 42); !errors.Is(err, patient.ErrPatientNotFound) {
		t.Fatalf("expected ErrPatientNotFound for unknown id, got %v", err)
	}

	created, err := svc.Create(context.Background(), &patient.CreatePatientCommand{
		FirstName: "Maria",
		LastName:  "Lopez",
		BirthDate: time.Date(1985, time.June, 2, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.Get(context.Background(), created.ID); !errors.Is(err, patient.ErrPatientNotFound) {
		t.Fatalf("expected ErrPatientNotFound after delete, got %v", err)
	}
}

func TestPatientListOrdering(t *testing.T) {
	repo := newFakePatientRepo()
	svc := NewPatientService(repo, testMetrics, testLogger)

	birth := time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC)
	for _, p := range []struct{ first, last string }{
		{"Zoe", "Martin"},
		{"Ana", "Alvarez"},
		{"Ben", "Martin"},
	} {
		if _, err := svc.Create(context.Background(), &patient.CreatePatientCommand{
			FirstName: p.first, LastName: p.last, BirthDate: birth,
		}); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	got, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	want := []string{"Alvarez/Ana", "Martin/Ben", "Martin/Zoe"}
	if len(got) != len(want) {
		t.Fatalf("got %d patients, want %d", len(got), len(want))
	}
	for i, p := range got {
		if key := p.LastName + "/" + p.FirstName; key != want[i] {
			t.Errorf("patient[%d] = %s, want %s", i, key, want[i])
		}
	}
}
