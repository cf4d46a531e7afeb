package history

import "time"

// History is one past-visit record linking a patient and a doctor.
type History struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	VisitDate time.Time `gorm:"column:visit_date;type:date;not null;index" json:"visit_date"`
	Diagnosis *string   `gorm:"column:diagnosis;type:text" json:"diagnosis,omitempty"`
	Treatment *string   `gorm:"column:treatment;type:text" json:"treatment,omitempty"`
	Notes     *string   `gorm:"column:notes;type:text" json:"notes,omitempty"`

	PatientID uint `gorm:"column:patient_id;not null;index" json:"patient_id"`
	DoctorID  uint `gorm:"column:doctor_id;not null;index" json:"doctor_id"`
}

func (History) TableName() string {
	return "history"
}

// Detail decorates a visit record with the names of the referenced
// patient and doctor for display.
type Detail struct {
	History
	PatientName string `json:"patient_name"`
	DoctorName  string `json:"doctor_name"`
}

type CreateHistoryCommand struct {
	VisitDate time.Time
	Diagnosis *string
	Treatment *string
	Notes     *string
	PatientID uint
	DoctorID  uint
}

// UpdateHistoryCommand never moves a record to another patient; the
// patient reference is immutable once written.
type UpdateHistoryCommand struct {
	VisitDate *time.Time
	Diagnosis *string
	Treatment *string
	Notes     *string
	DoctorID  *uint
}

func (c *UpdateHistoryCommand) Changes() map[string]any {
	changes := map[string]any{}
	if c.VisitDate != nil {
		changes["visit_date"] = *c.VisitDate
	}
	if c.Diagnosis != nil {
		changes["diagnosis"] = *c.Diagnosis
	}
	if c.Treatment != nil {
		changes["treatment"] = *c.Treatment
	}
	if c.Notes != nil {
		changes["notes"] = *c.Notes
	}
	if c.DoctorID != nil {
		changes["doctor_id"] = *c.DoctorID
	}
	return changes
}
