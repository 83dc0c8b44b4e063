package match

import (
	"time"

	"gorm.io/gorm"
)

// MatchStatus is the lifecycle of a fixture.
type MatchStatus string

const (
	StatusScheduled MatchStatus = "scheduled"
	StatusOngoing   MatchStatus = "ongoing"
	StatusCompleted MatchStatus = "completed"
	StatusCancelled MatchStatus = "cancelled"
)

// Event types that feed a player's career counters. Any other type is
// recorded against the match but changes no counter.
const (
	EventGoal       = "goal"
	EventAssist     = "assist"
	EventYellowCard = "yellow_card"
	EventRedCard    = "red_card"
)

// Match is a standalone fixture between two clubs in a competition.
type Match struct {
	gorm.Model
	CompetitionID uint        `gorm:"not null;index" json:"competition_id"`
	HomeClubID    uint        `gorm:"not null" json:"home_club_id"`
	AwayClubID    uint        `gorm:"not null" json:"away_club_id"`
	MatchDate     time.Time   `json:"match_date"`
	MatchTime     string      `gorm:"size:10" json:"match_time"`
	Location      string      `gorm:"size:150" json:"location"`
	Status        MatchStatus `gorm:"size:20;default:scheduled" json:"status"`
	HomeScore     int         `gorm:"default:0" json:"home_score"`
	AwayScore     int         `gorm:"default:0" json:"away_score"`
}

// MatchEvent records a single in-match incident attributed to a player.
// CompetitionID is copied from the parent match when the event is created.
type MatchEvent struct {
	gorm.Model
	MatchID       uint   `gorm:"not null;index" json:"match_id"`
	CompetitionID uint   `gorm:"not null;index" json:"competition_id"`
	PlayerID      uint   `gorm:"not null;index" json:"player_id"`
	EventType     string `gorm:"size:30;not null" json:"event_type"`
	Minute        int    `json:"minute"`
	Description   string `gorm:"size:255" json:"description"`
}

// MatchRecord is a fixture with club names resolved for listings.
type MatchRecord struct {
	ID              uint        `json:"id"`
	CompetitionID   uint        `json:"competition_id"`
	CompetitionName string      `json:"competition_name"`
	HomeClubID      uint        `json:"home_club_id"`
	HomeClubName    string      `json:"home_club_name"`
	AwayClubID      uint        `json:"away_club_id"`
	AwayClubName    string      `json:"away_club_name"`
	MatchDate       time.Time   `json:"match_date"`
	MatchTime       string      `json:"match_time"`
	Location        string      `json:"location"`
	Status          MatchStatus `json:"status"`
	HomeScore       int         `json:"home_score"`
	AwayScore       int         `json:"away_score"`
}

// EventRecord is an event with the player's name resolved.
type EventRecord struct {
	ID          uint   `json:"id"`
	MatchID     uint   `json:"match_id"`
	PlayerID    uint   `json:"player_id"`
	PlayerName  string `json:"player_name"`
	EventType   string `json:"event_type"`
	Minute      int    `json:"minute"`
	Description string `json:"description"`
}

// MatchDetail bundles a fixture with its event log.
type MatchDetail struct {
	Match  MatchRecord   `json:"match"`
	Events []EventRecord `json:"events"`
}
