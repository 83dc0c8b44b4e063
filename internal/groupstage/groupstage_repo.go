package groupstage

import (
	"errors"

	"gorm.io/gorm"

	"github.com/tamaula/leaguehub/pkg/apperr"
)

// GroupStageRepository manages groups, assignments, fixtures and standings.
type GroupStageRepository interface {
	CreateGroup(competitionID uint, name string) (*CompetitionGroup, error)
	GetGroups(competitionID uint) ([]CompetitionGroup, error)
	GetGroupByID(id uint) (*CompetitionGroup, error)
	DeleteGroup(id uint) error

	AssignClub(competitionID, groupID, clubID uint) error
	RemoveClub(groupID, clubID uint) error

	CreateGroupMatch(match *GroupMatch) error
	GetGroupMatches(groupID uint) ([]GroupMatchRecord, error)
	RecordScore(matchID uint, homeScore, awayScore int, status GroupMatchStatus) (*GroupMatch, error)

	GetStandings(groupID uint) ([]StandingRow, error)
	UpdateStandingStatus(groupID, clubID uint, status StandingStatus) error
	GetGroupViews(competitionID uint) ([]GroupView, error)
}

type groupStageRepository struct {
	db *gorm.DB
}

// NewGroupStageRepository creates a new instance of GroupStageRepository.
func NewGroupStageRepository(db *gorm.DB) GroupStageRepository {
	return &groupStageRepository{db: db}
}

func (r *groupStageRepository) CreateGroup(competitionID uint, name string) (*CompetitionGroup, error) {
	var group *CompetitionGroup
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&CompetitionGroup{}).
			Where("competition_id = ? AND name = ?", competitionID, name).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return apperr.Duplicate("group name in this competition")
		}
		group = &CompetitionGroup{CompetitionID: competitionID, Name: name}
		return tx.Create(group).Error
	})
	return group, err
}

func (r *groupStageRepository) GetGroups(competitionID uint) ([]CompetitionGroup, error) {
	var groups []CompetitionGroup
	err := r.db.Where("competition_id = ?", competitionID).Order("name").Find(&groups).Error
	return groups, err
}

func (r *groupStageRepository) GetGroupByID(id uint) (*CompetitionGroup, error) {
	var group CompetitionGroup
	if err := r.db.First(&group, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &group, nil
}

func (r *groupStageRepository) DeleteGroup(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("group_id = ?", id).Delete(&GroupAssignment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("group_id = ?", id).Delete(&GroupStanding{}).Error; err != nil {
			return err
		}
		if err := tx.Where("group_id = ?", id).Delete(&GroupMatch{}).Error; err != nil {
			return err
		}
		return tx.Delete(&CompetitionGroup{}, id).Error
	})
}

// AssignClub moves a club into a group. Any previous assignment of the club
// within the same competition is replaced, along with its standing row.
func (r *groupStageRepository) AssignClub(competitionID, groupID, clubID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var group CompetitionGroup
		if err := tx.First(&group, groupID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("group")
			}
			return err
		}
		if group.CompetitionID != competitionID {
			return apperr.Conflict("group does not belong to this competition")
		}

		if err := tx.Where("competition_id = ? AND club_id = ?", competitionID, clubID).
			Delete(&GroupAssignment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("competition_id = ? AND club_id = ?", competitionID, clubID).
			Delete(&GroupStanding{}).Error; err != nil {
			return err
		}

		assignment := GroupAssignment{CompetitionID: competitionID, GroupID: groupID, ClubID: clubID}
		if err := tx.Create(&assignment).Error; err != nil {
			return err
		}
		standing := GroupStanding{
			CompetitionID: competitionID,
			GroupID:       groupID,
			ClubID:        clubID,
			Status:        StandingActive,
		}
		return tx.Create(&standing).Error
	})
}

func (r *groupStageRepository) RemoveClub(groupID, clubID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("group_id = ? AND club_id = ?", groupID, clubID).
			Delete(&GroupAssignment{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperr.NotFound("group assignment")
		}
		return tx.Where("group_id = ? AND club_id = ?", groupID, clubID).
			Delete(&GroupStanding{}).Error
	})
}

// CreateGroupMatch schedules a fixture. Both clubs must be assigned to the
// group and the same home/away pairing may only be scheduled once.
func (r *groupStageRepository) CreateGroupMatch(match *GroupMatch) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var group CompetitionGroup
		if err := tx.First(&group, match.GroupID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("group")
			}
			return err
		}
		match.CompetitionID = group.CompetitionID

		var assigned int64
		if err := tx.Model(&GroupAssignment{}).
			Where("group_id = ? AND club_id IN ?", match.GroupID, []uint{match.HomeClubID, match.AwayClubID}).
			Count(&assigned).Error; err != nil {
			return err
		}
		if assigned != 2 {
			return apperr.Conflict("both clubs must be assigned to the group")
		}

		var existing int64
		if err := tx.Model(&GroupMatch{}).
			Where("group_id = ? AND home_club_id = ? AND away_club_id = ?",
				match.GroupID, match.HomeClubID, match.AwayClubID).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return apperr.Duplicate("fixture between these clubs")
		}

		if match.Status == "" {
			match.Status = GroupMatchScheduled
		}
		return tx.Create(match).Error
	})
}

func (r *groupStageRepository) GetGroupMatches(groupID uint) ([]GroupMatchRecord, error) {
	var records []GroupMatchRecord
	err := r.db.Table("group_matches gm").
		Select(`gm.id, gm.group_id, gm.home_club_id, hc.name as home_club_name,
			gm.away_club_id, ac.name as away_club_name,
			gm.match_date, gm.match_time, gm.location, gm.status,
			gm.home_score, gm.away_score`).
		Joins("JOIN clubs hc ON hc.id = gm.home_club_id").
		Joins("JOIN clubs ac ON ac.id = gm.away_club_id").
		Where("gm.group_id = ? AND gm.deleted_at IS NULL", groupID).
		Order("gm.match_date, gm.match_time").
		Scan(&records).Error
	return records, err
}

// RecordScore updates a fixture's score and status. Standings deltas are
// applied exactly once, on the transition into completed. A completed fixture
// can never leave that status again, so the transition fires at most once per
// fixture; re-saving a score on a completed fixture only touches the match row.
func (r *groupStageRepository) RecordScore(matchID uint, homeScore, awayScore int, status GroupMatchStatus) (*GroupMatch, error) {
	var match GroupMatch
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&match, matchID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("group match")
			}
			return err
		}

		if match.Status == GroupMatchCompleted && status != GroupMatchCompleted {
			return apperr.Conflict("a completed match cannot be reopened")
		}

		becameCompleted := status == GroupMatchCompleted && match.Status != GroupMatchCompleted

		match.HomeScore = homeScore
		match.AwayScore = awayScore
		match.Status = status
		if err := tx.Save(&match).Error; err != nil {
			return err
		}

		if !becameCompleted {
			return nil
		}
		if err := applyResult(tx, &match, match.HomeClubID, homeScore, awayScore); err != nil {
			return err
		}
		return applyResult(tx, &match, match.AwayClubID, awayScore, homeScore)
	})
	if err != nil {
		return nil, err
	}
	return &match, nil
}

// applyResult folds one club's side of a completed fixture into its standing.
func applyResult(tx *gorm.DB, match *GroupMatch, clubID uint, scored, conceded int) error {
	var standing GroupStanding
	if err := tx.Where("group_id = ? AND club_id = ?", match.GroupID, clubID).
		First(&standing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("group standing")
		}
		return err
	}

	standing.MatchesPlayed++
	standing.GoalsFor += scored
	standing.GoalsAgainst += conceded
	switch {
	case scored > conceded:
		standing.Wins++
		standing.Points += 3
	case scored < conceded:
		standing.Losses++
	default:
		standing.Draws++
		standing.Points++
	}
	return tx.Save(&standing).Error
}

func (r *groupStageRepository) GetStandings(groupID uint) ([]StandingRow, error) {
	var rows []StandingRow
	err := r.db.Table("group_standings gs").
		Select(`gs.club_id, c.name as club_name, gs.matches_played, gs.wins, gs.draws,
			gs.losses, gs.goals_for, gs.goals_against,
			(gs.goals_for - gs.goals_against) as goal_diff, gs.points, gs.status`).
		Joins("JOIN clubs c ON c.id = gs.club_id").
		Where("gs.group_id = ? AND gs.deleted_at IS NULL", groupID).
		Order("gs.points DESC, (gs.goals_for - gs.goals_against) DESC, gs.goals_for DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *groupStageRepository) UpdateStandingStatus(groupID, clubID uint, status StandingStatus) error {
	result := r.db.Model(&GroupStanding{}).
		Where("group_id = ? AND club_id = ?", groupID, clubID).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("group standing")
	}
	return nil
}

func (r *groupStageRepository) GetGroupViews(competitionID uint) ([]GroupView, error) {
	groups, err := r.GetGroups(competitionID)
	if err != nil {
		return nil, err
	}
	views := make([]GroupView, 0, len(groups))
	for _, g := range groups {
		standings, err := r.GetStandings(g.ID)
		if err != nil {
			return nil, err
		}
		matches, err := r.GetGroupMatches(g.ID)
		if err != nil {
			return nil, err
		}
		views = append(views, GroupView{Group: g, Standings: standings, Matches: matches})
	}
	return views, nil
}
