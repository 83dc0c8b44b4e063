// player/model.go
package player

import (
	"time"

	"gorm.io/gorm"
)

type PlayerStatus string

const (
	StatusPending  PlayerStatus = "pending"
	StatusApproved PlayerStatus = "approved"
	StatusRejected PlayerStatus = "rejected"
)

// Player registers against an approved club and stays pending until that club
// approves them. Stat counters are maintained by match event recording.
type Player struct {
	gorm.Model
	FullName       string       `json:"full_name" gorm:"not null"`
	Username       string       `json:"username" gorm:"uniqueIndex;not null"`
	Email          string       `json:"email" gorm:"uniqueIndex;not null"`
	Phone          string       `json:"phone"`
	DateOfBirth    time.Time    `json:"date_of_birth" gorm:"not null"`
	JerseyNumber   *int         `json:"jersey_number,omitempty"`
	Gender         string       `json:"gender,omitempty"`
	ProfilePicture string       `json:"profile_picture"`
	ClubID         *uint        `json:"club_id" gorm:"index"`
	Goals          int          `json:"goals" gorm:"default:0"`
	Assists        int          `json:"assists" gorm:"default:0"`
	YellowCards    int          `json:"yellow_cards" gorm:"default:0"`
	RedCards       int          `json:"red_cards" gorm:"default:0"`
	Password       string       `json:"-" gorm:"not null"`
	Status         PlayerStatus `json:"status" gorm:"index;default:'pending'"`
}

// Age in whole years as of today.
func (p *Player) Age() int {
	return ageAt(p.DateOfBirth, time.Now())
}

func ageAt(birth, at time.Time) int {
	years := at.Year() - birth.Year()
	if at.Month() < birth.Month() || (at.Month() == birth.Month() && at.Day() < birth.Day()) {
		years--
	}
	return years
}

// Listing is the public projection with the club name joined in.
type Listing struct {
	ID           uint   `json:"id"`
	FullName     string `json:"full_name"`
	JerseyNumber *int   `json:"jersey_number,omitempty"`
	ClubID       *uint  `json:"club_id,omitempty"`
	ClubName     string `json:"club_name,omitempty"`
	Goals        int    `json:"goals"`
	Assists      int    `json:"assists"`
	YellowCards  int    `json:"yellow_cards"`
	RedCards     int    `json:"red_cards"`
}
