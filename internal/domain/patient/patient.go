package patient

import (
	"strings"
	"time"
)

type Patient struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	FirstName string    `gorm:"column:first_name;type:varchar(100);not null" json:"first_name"`
	LastName  string    `gorm:"column:last_name;type:varchar(100);not null" json:"last_name"`
	BirthDate time.Time `gorm:"column:birth_date;type:date;not null" json:"birth_date"`

	// Nullable so patients without contact details never collide on the
	// unique indexes.
	Phone   *string `gorm:"column:phone;type:varchar(20);uniqueIndex" json:"phone,omitempty"`
	Email   *string `gorm:"column:email;type:varchar(255);uniqueIndex" json:"email,omitempty"`
	Address *string `gorm:"column:address;type:text" json:"address,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}

func (p *Patient) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

type CreatePatientCommand struct {
	FirstName string
	LastName  string
	BirthDate time.Time
	Phone     *string
	Email     *string
	Address   *string
}

// UpdatePatientCommand is an explicit changeset: only populated fields are
// written, everything else keeps its stored value.
type UpdatePatientCommand struct {
	FirstName *string
	LastName  *string
	BirthDate *time.Time
	Phone     *string
	Email     *string
	Address   *string
}

// Changes returns the column assignments for the populated fields.
func (c *UpdatePatientCommand) Changes() map[string]any {
	changes := map[string]any{}
	if c.FirstName != nil {
		changes["first_name"] = *c.FirstName
	}
	if c.LastName != nil {
		changes["last_name"] = *c.LastName
	}
	if c.BirthDate != nil {
		changes["birth_date"] = *c.BirthDate
	}
	if c.Phone != nil {
		changes["phone"] = *c.Phone
	}
	if c.Email != nil {
		changes["email"] = *c.Email
	}
	if c.Address != nil {
		changes["address"] = *c.Address
	}
	return changes
}
