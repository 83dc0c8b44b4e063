package lineup

import (
	"gorm.io/gorm"

	"github.com/tamaula/leaguehub/pkg/apperr"
)

// LineupRepository manages competition squad lists.
type LineupRepository interface {
	ReplaceLineup(clubID, competitionID uint, lineups []Lineup) error
	GetForClub(clubID, competitionID uint) ([]Entry, error)
	GetByCompetition(competitionID uint) ([]ClubLineup, error)
}

type lineupRepository struct {
	db *gorm.DB
}

// NewLineupRepository creates a new instance of LineupRepository.
func NewLineupRepository(db *gorm.DB) LineupRepository {
	return &lineupRepository{db: db}
}

// ReplaceLineup swaps the club's full squad list for a competition in one
// transaction. Every submitted player must belong to the club.
func (r *lineupRepository) ReplaceLineup(clubID, competitionID uint, lineups []Lineup) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		playerIDs := make([]uint, 0, len(lineups))
		for i := range lineups {
			lineups[i].ClubID = clubID
			lineups[i].CompetitionID = competitionID
			playerIDs = append(playerIDs, lineups[i].PlayerID)
		}

		if len(playerIDs) > 0 {
			var owned int64
			if err := tx.Table("players").
				Where("id IN ? AND club_id = ? AND deleted_at IS NULL", playerIDs, clubID).
				Count(&owned).Error; err != nil {
				return err
			}
			if owned != int64(len(playerIDs)) {
				return apperr.Conflict("every lineup player must belong to your club")
			}
		}

		if err := tx.Where("club_id = ? AND competition_id = ?", clubID, competitionID).
			Delete(&Lineup{}).Error; err != nil {
			return err
		}
		if len(lineups) == 0 {
			return nil
		}
		return tx.Create(&lineups).Error
	})
}

func (r *lineupRepository) GetForClub(clubID, competitionID uint) ([]Entry, error) {
	var entries []Entry
	err := r.db.Table("lineups l").
		Select("l.player_id, p.full_name as player_name, l.position").
		Joins("JOIN players p ON p.id = l.player_id").
		Where("l.club_id = ? AND l.competition_id = ? AND l.deleted_at IS NULL", clubID, competitionID).
		Order("l.position, p.full_name").
		Scan(&entries).Error
	return entries, err
}

func (r *lineupRepository) GetByCompetition(competitionID uint) ([]ClubLineup, error) {
	type flatRow struct {
		ClubID     uint
		ClubName   string
		PlayerID   uint
		PlayerName string
		Position   string
	}
	var rows []flatRow
	err := r.db.Table("lineups l").
		Select(`l.club_id, c.name as club_name, l.player_id,
			p.full_name as player_name, l.position`).
		Joins("JOIN clubs c ON c.id = l.club_id").
		Joins("JOIN players p ON p.id = l.player_id").
		Where("l.competition_id = ? AND l.deleted_at IS NULL", competitionID).
		Order("c.name, l.position, p.full_name").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	grouped := make([]ClubLineup, 0)
	for _, row := range rows {
		if len(grouped) == 0 || grouped[len(grouped)-1].ClubID != row.ClubID {
			grouped = append(grouped, ClubLineup{ClubID: row.ClubID, ClubName: row.ClubName})
		}
		last := &grouped[len(grouped)-1]
		last.Entries = append(last.Entries, Entry{
			PlayerID:   row.PlayerID,
			PlayerName: row.PlayerName,
			Position:   row.Position,
		})
	}
	return grouped, nil
}
