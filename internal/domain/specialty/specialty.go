package specialty

import "time"

// Specialty groups doctors by medical discipline.
type Specialty struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Name        string  `gorm:"column:name;type:varchar(100);not null" json:"name"`
	Description *string `gorm:"column:description;type:text" json:"description,omitempty"`
}

func (Specialty) TableName() string {
	return "specialties"
}

type CreateSpecialtyCommand struct {
	Name        string
	Description *string
}

type UpdateSpecialtyCommand struct {
	Name        *string
	Description *string
}

func (c *UpdateSpecialtyCommand) Changes() map[string]any {
	changes := map[string]any{}
	if c.Name != nil {
		changes["name"] = *c.Name
	}
	if c.Description != nil {
		changes["description"] = *c.Description
	}
	return changes
}
