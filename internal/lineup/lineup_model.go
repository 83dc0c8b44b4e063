package lineup

import "gorm.io/gorm"

// Lineup is one player's slot in a club's squad for a competition.
type Lineup struct {
	gorm.Model
	ClubID        uint   `gorm:"not null;index" json:"club_id"`
	CompetitionID uint   `gorm:"not null;index" json:"competition_id"`
	PlayerID      uint   `gorm:"not null" json:"player_id"`
	Position      string `gorm:"size:30" json:"position"`
}

// Entry is a lineup row with the player's name resolved.
type Entry struct {
	PlayerID   uint   `json:"player_id"`
	PlayerName string `json:"player_name"`
	Position   string `json:"position"`
}

// ClubLineup groups a club's entries for a competition.
type ClubLineup struct {
	ClubID   uint    `json:"club_id"`
	ClubName string  `json:"club_name"`
	Entries  []Entry `json:"entries"`
}
