// club/model.go
package club

import (
	"gorm.io/gorm"
)

// Club is a team entity that owns players and enters competitions. Clubs
// self-register and stay invisible until an admin approves them.
type Club struct {
	gorm.Model
	Name     string `json:"name" gorm:"not null;index"`
	Region   string `json:"region" gorm:"not null;index"`
	Email    string `json:"email" gorm:"uniqueIndex;not null"`
	Phone    string `json:"phone"`
	Password string `json:"-" gorm:"not null"`
	Logo     string `json:"logo"`
	Approved bool   `json:"approved" gorm:"default:false;index"`
}

// Summary is the public projection used by lookup endpoints.
type Summary struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Region string `json:"region"`
	Logo   string `json:"logo"`
}

func (c *Club) Summary() Summary {
	return Summary{ID: c.ID, Name: c.Name, Region: c.Region, Logo: c.Logo}
}
