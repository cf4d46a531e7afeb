package patient

import (
	"testing"
	"time"
)

func TestFullName(t *testing.T) {
	p := &Patient{FirstName: "Maria", LastName: "Lopez"}
	if got := p.FullName(); got != "Maria Lopez" {
		t.Errorf("FullName = %q", got)
	}
}

func TestUpdateCommandChanges(t *testing.T) {
	empty := &UpdatePatientCommand{}
	if got := empty.Changes(); len(got) != 0 {
		t.Errorf("empty changeset produced assignments: %v", got)
	}

	first := "Ana"
	birth := time.Date(1990, time.May, 1, 0, 0, 0, 0, time.UTC)
	cmd := &UpdatePatientCommand{FirstName: &first, BirthDate: &birth}

	changes := cmd.Changes()
	if len(changes) != 2 {
		t.Fatalf("got %d assignments, want 2: %v", len(changes), changes)
	}
	if changes["first_name"] != "Ana" {
		t.Errorf("first_name = %v", changes["first_name"])
	}
	if changes["birth_date"] != birth {
		t.Errorf("birth_date = %v", changes["birth_date"])
	}
	if _, ok := changes["last_name"]; ok {
		t.Error("unpopulated field leaked into changeset")
	}
}
