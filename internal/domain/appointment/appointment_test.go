package appointment

import (
	"testing"
	"time"
)

func TestUpdateCommandChanges(t *testing.T) {
	empty := &UpdateAppointmentCommand{}
	if got := empty.Changes(); len(got) != 0 {
		t.Errorf("empty changeset produced assignments: %v", got)
	}

	at := time.Date(2024, time.January, 15, 10, 0, 0, 0, time.UTC)
	reason := "follow-up"
	cmd := &UpdateAppointmentCommand{ScheduledAt: &at, Reason: &reason}

	changes := cmd.Changes()
	if len(changes) != 2 {
		t.Fatalf("got %d assignments, want 2: %v", len(changes), changes)
	}
	if changes["scheduled_at"] != at {
		t.Errorf("scheduled_at = %v", changes["scheduled_at"])
	}
	if changes["reason"] != "follow-up" {
		t.Errorf("reason = %v", changes["reason"])
	}
	if _, ok := changes["doctor_id"]; ok {
		t.Error("unpopulated field leaked into changeset")
	}
}
