// transfer/model.go
package transfer

import (
	"time"

	"gorm.io/gorm"
)

// TransferStatus tracks the two-party approval sequence. A request moves
// pending -> approved_by_from -> completed; rejected is terminal and reachable
// from either live state.
type TransferStatus string

const (
	StatusPending        TransferStatus = "pending"
	StatusApprovedByFrom TransferStatus = "approved_by_from"
	StatusRejected       TransferStatus = "rejected"
	StatusCompleted      TransferStatus = "completed"
)

// Open reports whether the request still awaits a decision.
func (s TransferStatus) Open() bool {
	return s == StatusPending || s == StatusApprovedByFrom
}

// TransferRequest is a proposal to move a player between clubs. The player
// stays on the source club's roster until the destination club completes the
// transfer; completion is the only point at which roster membership changes.
type TransferRequest struct {
	gorm.Model
	PlayerID         uint           `json:"player_id" gorm:"index;not null"`
	FromClubID       uint           `json:"from_club_id" gorm:"index;not null"`
	ToClubID         uint           `json:"to_club_id" gorm:"index;not null"`
	Reason           string         `json:"reason" gorm:"type:text"`
	Status           TransferStatus `json:"status" gorm:"index;not null;default:'pending'"`
	ApprovedByFromAt *time.Time     `json:"approved_by_from_at,omitempty"`
	ApprovedByToAt   *time.Time     `json:"approved_by_to_at,omitempty"`
	CompletedAt      *time.Time     `json:"completed_at,omitempty"`
}

// TransferRecord is the read projection with the party names joined in.
type TransferRecord struct {
	ID               uint           `json:"id"`
	PlayerID         uint           `json:"player_id"`
	PlayerName       string         `json:"player_name"`
	FromClubID       uint           `json:"from_club_id"`
	FromClubName     string         `json:"from_club_name"`
	ToClubID         uint           `json:"to_club_id"`
	ToClubName       string         `json:"to_club_name"`
	Reason           string         `json:"reason"`
	Status           TransferStatus `json:"status"`
	RequestedAt      time.Time      `json:"requested_at"`
	ApprovedByFromAt *time.Time     `json:"approved_by_from_at,omitempty"`
	ApprovedByToAt   *time.Time     `json:"approved_by_to_at,omitempty"`
	CompletedAt      *time.Time     `json:"completed_at,omitempty"`
}

// Outcome names the transition an approval performed.
type Outcome int

const (
	// OutcomeApprovedBySource means the source club released the player and
	// the destination club's approval is now awaited.
	OutcomeApprovedBySource Outcome = iota
	// OutcomeCompleted means the destination club accepted and the player has
	// been moved onto its roster.
	OutcomeCompleted
)
