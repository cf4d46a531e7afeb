package appointment

import "time"

type Appointment struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	ScheduledAt time.Time `gorm:"column:scheduled_at;not null;index:idx_appointments_doctor_schedule,priority:2" json:"scheduled_at"`
	Reason      *string   `gorm:"column:reason;type:text" json:"reason,omitempty"`

	PatientID uint `gorm:"column:patient_id;not null;index" json:"patient_id"`
	DoctorID  uint `gorm:"column:doctor_id;not null;index:idx_appointments_doctor_schedule,priority:1" json:"doctor_id"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// Detail decorates an appointment with the referenced patient, doctor,
// and specialty names.
type Detail struct {
	Appointment
	PatientName   string `json:"patient_name"`
	DoctorName    string `json:"doctor_name"`
	SpecialtyName string `json:"specialty_name"`
}

type CreateAppointmentCommand struct {
	ScheduledAt time.Time
	Reason      *string
	PatientID   uint
	DoctorID    uint
}

// UpdateAppointmentCommand can reschedule or reassign the doctor, but the
// patient reference is immutable once written.
type UpdateAppointmentCommand struct {
	ScheduledAt *time.Time
	Reason      *string
	DoctorID    *uint
}

func (c *UpdateAppointmentCommand) Changes() map[string]any {
	changes := map[string]any{}
	if c.ScheduledAt != nil {
		changes["scheduled_at"] = *c.ScheduledAt
	}
	if c.Reason != nil {
		changes["reason"] = *c.Reason
	}
	if c.DoctorID != nil {
		changes["doctor_id"] = *c.DoctorID
	}
	return changes
}
