package doctor

import (
	"strings"
	"time"
)

type Doctor struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	FirstName string  `gorm:"column:first_name;type:varchar(100);not null" json:"first_name"`
	LastName  string  `gorm:"column:last_name;type:varchar(100);not null" json:"last_name"`
	Phone     *string `gorm:"column:phone;type:varchar(20)" json:"phone,omitempty"`
	Email     *string `gorm:"column:email;type:varchar(255);uniqueIndex" json:"email,omitempty"`

	SpecialtyID uint `gorm:"column:specialty_id;not null;index" json:"specialty_id"`
}

func (Doctor) TableName() string {
	return "doctors"
}

func (d *Doctor) FullName() string {
	return strings.TrimSpace(d.FirstName + " " + d.LastName)
}

// Detail is the joined read model: a doctor plus the name of their
// specialty. Read-only decoration, never written back.
type Detail struct {
	Doctor
	SpecialtyName string `json:"specialty_name"`
}

type CreateDoctorCommand struct {
	FirstName   string
	LastName    string
	Phone       *string
	Email       *string
	SpecialtyID uint
}

type UpdateDoctorCommand struct {
	FirstName   *string
	LastName    *string
	Phone       *string
	Email       *string
	SpecialtyID *uint
}

func (c *UpdateDoctorCommand) Changes() map[string]any {
	changes := map[string]any{}
	if c.FirstName != nil {
		changes["first_name"] = *c.FirstName
	}
	if c.LastName != nil {
		changes["last_name"] = *c.LastName
	}
	if c.Phone != nil {
		changes["phone"] = *c.Phone
	}
	if c.Email != nil {
		changes["email"] = *c.Email
	}
	if c.SpecialtyID != nil {
		changes["specialty_id"] = *c.SpecialtyID
	}
	return changes
}
