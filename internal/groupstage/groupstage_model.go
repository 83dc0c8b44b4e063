package groupstage

import (
	"time"

	"gorm.io/gorm"
)

// StandingStatus tracks whether a club is still alive in its group.
type StandingStatus string

const (
	StandingActive     StandingStatus = "active"
	StandingEliminated StandingStatus = "eliminated"
	StandingQualified  StandingStatus = "qualified"
)

// GroupMatchStatus mirrors the lifecycle of an ordinary match.
type GroupMatchStatus string

const (
	GroupMatchScheduled GroupMatchStatus = "scheduled"
	GroupMatchOngoing   GroupMatchStatus = "ongoing"
	GroupMatchCompleted GroupMatchStatus = "completed"
	GroupMatchCancelled GroupMatchStatus = "cancelled"
)

// CompetitionGroup is a named pool of clubs within a competition.
type CompetitionGroup struct {
	gorm.Model
	CompetitionID uint   `gorm:"not null;uniqueIndex:idx_comp_group_name" json:"competition_id"`
	Name          string `gorm:"size:50;not null;uniqueIndex:idx_comp_group_name" json:"name"`
}

// GroupAssignment places a club into a group. A club holds at most one
// assignment per competition.
type GroupAssignment struct {
	gorm.Model
	CompetitionID uint `gorm:"not null;index" json:"competition_id"`
	GroupID       uint `gorm:"not null;index" json:"group_id"`
	ClubID        uint `gorm:"not null;index" json:"club_id"`
}

// GroupMatch is a fixture between two clubs of the same group.
type GroupMatch struct {
	gorm.Model
	CompetitionID uint             `gorm:"not null;index" json:"competition_id"`
	GroupID       uint             `gorm:"not null;index" json:"group_id"`
	HomeClubID    uint             `gorm:"not null" json:"home_club_id"`
	AwayClubID    uint             `gorm:"not null" json:"away_club_id"`
	MatchDate     time.Time        `json:"match_date"`
	MatchTime     string           `gorm:"size:10" json:"match_time"`
	Location      string           `gorm:"size:150" json:"location"`
	Status        GroupMatchStatus `gorm:"size:20;default:scheduled" json:"status"`
	HomeScore     int              `gorm:"default:0" json:"home_score"`
	AwayScore     int              `gorm:"default:0" json:"away_score"`
}

// GroupStanding is one club's accumulated record within a group.
type GroupStanding struct {
	gorm.Model
	CompetitionID uint           `gorm:"not null;index" json:"competition_id"`
	GroupID       uint           `gorm:"not null;index" json:"group_id"`
	ClubID        uint           `gorm:"not null;index" json:"club_id"`
	MatchesPlayed int            `gorm:"default:0" json:"matches_played"`
	Wins          int            `gorm:"default:0" json:"wins"`
	Draws         int            `gorm:"default:0" json:"draws"`
	Losses        int            `gorm:"default:0" json:"losses"`
	GoalsFor      int            `gorm:"default:0" json:"goals_for"`
	GoalsAgainst  int            `gorm:"default:0" json:"goals_against"`
	Points        int            `gorm:"default:0" json:"points"`
	Status        StandingStatus `gorm:"size:20;default:active" json:"status"`
}

// StandingRow is a standings table line enriched with the club name.
type StandingRow struct {
	ClubID        uint           `json:"club_id"`
	ClubName      string         `json:"club_name"`
	MatchesPlayed int            `json:"matches_played"`
	Wins          int            `json:"wins"`
	Draws         int            `json:"draws"`
	Losses        int            `json:"losses"`
	GoalsFor      int            `json:"goals_for"`
	GoalsAgainst  int            `json:"goals_against"`
	GoalDiff      int            `json:"goal_diff"`
	Points        int            `json:"points"`
	Status        StandingStatus `json:"status"`
}

// GroupMatchRecord is a fixture with both club names resolved.
type GroupMatchRecord struct {
	ID           uint             `json:"id"`
	GroupID      uint             `json:"group_id"`
	HomeClubID   uint             `json:"home_club_id"`
	HomeClubName string           `json:"home_club_name"`
	AwayClubID   uint             `json:"away_club_id"`
	AwayClubName string           `json:"away_club_name"`
	MatchDate    time.Time        `json:"match_date"`
	MatchTime    string           `json:"match_time"`
	Location     string           `json:"location"`
	Status       GroupMatchStatus `json:"status"`
	HomeScore    int              `json:"home_score"`
	AwayScore    int              `json:"away_score"`
}

// GroupView bundles a group with its table and fixtures for public reads.
type GroupView struct {
	Group     CompetitionGroup   `json:"group"`
	Standings []StandingRow      `json:"standings"`
	Matches   []GroupMatchRecord `json:"matches"`
}
