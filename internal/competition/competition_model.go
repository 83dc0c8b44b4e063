// competition/model.go
package competition

import (
	"time"

	"gorm.io/gorm"
)

type RegistrationStatus string

const (
	RegistrationPending  RegistrationStatus = "pending"
	RegistrationApproved RegistrationStatus = "approved"
	RegistrationRejected RegistrationStatus = "rejected"
)

// Competition is a league or cup clubs register for.
type Competition struct {
	gorm.Model
	Name                 string    `json:"name" gorm:"uniqueIndex;not null"`
	Description          string    `json:"description" gorm:"type:text"`
	StartDate            time.Time `json:"start_date"`
	EndDate              time.Time `json:"end_date"`
	RegistrationDeadline time.Time `json:"registration_deadline"`
	IsActive             bool      `json:"is_active" gorm:"default:true;index"`
}

// Registration is a club's entry into a competition, pending admin approval.
// At most one row exists per club and competition, regardless of status.
type Registration struct {
	gorm.Model
	ClubID        uint               `json:"club_id" gorm:"index;not null;uniqueIndex:idx_club_competition"`
	CompetitionID uint               `json:"competition_id" gorm:"index;not null;uniqueIndex:idx_club_competition"`
	Status        RegistrationStatus `json:"status" gorm:"index;default:'pending'"`
	ApprovedByID  *uint              `json:"approved_by_id,omitempty"`
	ApprovedAt    *time.Time         `json:"approved_at,omitempty"`
	Notes         string             `json:"notes" gorm:"type:text"`
}

// RegistrationRecord is the admin listing with club and competition names.
type RegistrationRecord struct {
	ID              uint               `json:"id"`
	ClubID          uint               `json:"club_id"`
	ClubName        string             `json:"club_name"`
	CompetitionID   uint               `json:"competition_id"`
	CompetitionName string             `json:"competition_name"`
	Status          RegistrationStatus `json:"status"`
	RegisteredAt    time.Time          `json:"registered_at"`
	ApprovedByID    *uint              `json:"approved_by_id,omitempty"`
	ApprovedAt      *time.Time         `json:"approved_at,omitempty"`
	Notes           string             `json:"notes"`
}
