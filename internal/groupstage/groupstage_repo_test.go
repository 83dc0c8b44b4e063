package groupstage_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tamaula/leaguehub/internal/club"
	"github.com/tamaula/leaguehub/internal/competition"
	"github.com/tamaula/leaguehub/internal/groupstage"
	"github.com/tamaula/leaguehub/pkg/apperr"
)

// GroupStageSuite covers group administration and the standings engine.
type GroupStageSuite struct {
	suite.Suite
	db    *gorm.DB
	repo  groupstage.GroupStageRepository
	comp  competition.Competition
	group *groupstage.CompetitionGroup
	clubA club.Club
	clubB club.Club
	clubC club.Club
}

func TestGroupStageSuite(t *testing.T) {
	suite.Run(t, new(GroupStageSuite))
}

func (s *GroupStageSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared&_fk=1"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	s.Require().NoError(err)
	s.Require().NoError(db.AutoMigrate(
		&club.Club{}, &competition.Competition{},
		&groupstage.CompetitionGroup{}, &groupstage.GroupAssignment{},
		&groupstage.GroupMatch{}, &groupstage.GroupStanding{},
	))
	s.db = db
	s.repo = groupstage.NewGroupStageRepository(db)

	s.comp = competition.Competition{
		Name:      "Regional Cup 2026",
		StartDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		IsActive:  true,
	}
	s.Require().NoError(db.Create(&s.comp).Error)

	s.group, err = s.repo.CreateGroup(s.comp.ID, "Group A")
	s.Require().NoError(err)

	s.clubA = s.makeClub("Alpha FC")
	s.clubB = s.makeClub("Bravo FC")
	s.clubC = s.makeClub("Charlie FC")
	s.Require().NoError(s.repo.AssignClub(s.comp.ID, s.group.ID, s.clubA.ID))
	s.Require().NoError(s.repo.AssignClub(s.comp.ID, s.group.ID, s.clubB.ID))
	s.Require().NoError(s.repo.AssignClub(s.comp.ID, s.group.ID, s.clubC.ID))
}

func (s *GroupStageSuite) TearDownTest() {
	sqlDB, err := s.db.DB()
	s.Require().NoError(err)
	sqlDB.Close()
}

func (s *GroupStageSuite) makeClub(name string) club.Club {
	c := club.Club{
		Name:     name,
		Region:   "North",
		Email:    fmt.Sprintf("%s@example.com", name),
		Password: "irrelevant",
		Approved: true,
	}
	s.Require().NoError(s.db.Create(&c).Error)
	return c
}

func (s *GroupStageSuite) scheduleMatch(home, away uint) groupstage.GroupMatch {
	m := groupstage.GroupMatch{
		GroupID:    s.group.ID,
		HomeClubID: home,
		AwayClubID: away,
		MatchDate:  time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC),
	}
	s.Require().NoError(s.repo.CreateGroupMatch(&m))
	return m
}

func (s *GroupStageSuite) standingFor(clubID uint) groupstage.GroupStanding {
	var st groupstage.GroupStanding
	s.Require().NoError(s.db.Where("group_id = ? AND club_id = ?", s.group.ID, clubID).First(&st).Error)
	return st
}

func (s *GroupStageSuite) TestDuplicateGroupNameRefused() {
	_, err := s.repo.CreateGroup(s.comp.ID, "Group A")
	s.Require().ErrorIs(err, apperr.ErrDuplicate)

	// The same name is fine in another competition.
	other := competition.Competition{Name: "Other Cup", IsActive: true}
	s.Require().NoError(s.db.Create(&other).Error)
	_, err = s.repo.CreateGroup(other.ID, "Group A")
	s.NoError(err)
}

func (s *GroupStageSuite) TestAssignmentInitializesStanding() {
	st := s.standingFor(s.clubA.ID)
	s.Equal(0, st.MatchesPlayed)
	s.Equal(0, st.Points)
	s.Equal(groupstage.StandingActive, st.Status)
}

func (s *GroupStageSuite) TestReassignmentReplacesOldGroup() {
	groupB, err := s.repo.CreateGroup(s.comp.ID, "Group B")
	s.Require().NoError(err)

	s.Require().NoError(s.repo.AssignClub(s.comp.ID, groupB.ID, s.clubA.ID))

	var count int64
	s.Require().NoError(s.db.Model(&groupstage.GroupAssignment{}).
		Where("competition_id = ? AND club_id = ?", s.comp.ID, s.clubA.ID).
		Count(&count).Error)
	s.Equal(int64(1), count)

	var st groupstage.GroupStanding
	s.Require().NoError(s.db.Where("competition_id = ? AND club_id = ?", s.comp.ID, s.clubA.ID).
		First(&st).Error)
	s.Equal(groupB.ID, st.GroupID)
}

func (s *GroupStageSuite) TestFixtureRequiresAssignedClubs() {
	outsider := s.makeClub("Delta FC")
	m := groupstage.GroupMatch{
		GroupID:    s.group.ID,
		HomeClubID: s.clubA.ID,
		AwayClubID: outsider.ID,
		MatchDate:  time.Now(),
	}
	err := s.repo.CreateGroupMatch(&m)
	s.Require().ErrorIs(err, apperr.ErrConflict)
}

func (s *GroupStageSuite) TestDuplicatePairingRefused() {
	s.scheduleMatch(s.clubA.ID, s.clubB.ID)

	dup := groupstage.GroupMatch{
		GroupID:    s.group.ID,
		HomeClubID: s.clubA.ID,
		AwayClubID: s.clubB.ID,
		MatchDate:  time.Now(),
	}
	err := s.repo.CreateGroupMatch(&dup)
	s.Require().ErrorIs(err, apperr.ErrDuplicate)

	// The reverse fixture is a different pairing.
	reverse := groupstage.GroupMatch{
		GroupID:    s.group.ID,
		HomeClubID: s.clubB.ID,
		AwayClubID: s.clubA.ID,
		MatchDate:  time.Now(),
	}
	s.NoError(s.repo.CreateGroupMatch(&reverse))
}

func (s *GroupStageSuite) TestWinAppliesDeltasToBothClubs() {
	m := s.scheduleMatch(s.clubA.ID, s.clubB.ID)

	_, err := s.repo.RecordScore(m.ID, 2, 1, groupstage.GroupMatchCompleted)
	s.Require().NoError(err)

	home := s.standingFor(s.clubA.ID)
	s.Equal(1, home.MatchesPlayed)
	s.Equal(1, home.Wins)
	s.Equal(0, home.Draws)
	s.Equal(0, home.Losses)
	s.Equal(2, home.GoalsFor)
	s.Equal(1, home.GoalsAgainst)
	s.Equal(3, home.Points)

	away := s.standingFor(s.clubB.ID)
	s.Equal(1, away.MatchesPlayed)
	s.Equal(0, away.Wins)
	s.Equal(1, away.Losses)
	s.Equal(1, away.GoalsFor)
	s.Equal(2, away.GoalsAgainst)
	s.Equal(0, away.Points)
}

func (s *GroupStageSuite) TestDrawAwardsOnePointEach() {
	m := s.scheduleMatch(s.clubA.ID, s.clubB.ID)

	_, err := s.repo.RecordScore(m.ID, 1, 1, groupstage.GroupMatchCompleted)
	s.Require().NoError(err)

	for _, id := range []uint{s.clubA.ID, s.clubB.ID} {
		st := s.standingFor(id)
		s.Equal(1, st.MatchesPlayed)
		s.Equal(1, st.Draws)
		s.Equal(1, st.Points)
	}
}

func (s *GroupStageSuite) TestCompletedMatchDoesNotReapplyDeltas() {
	m := s.scheduleMatch(s.clubA.ID, s.clubB.ID)

	_, err := s.repo.RecordScore(m.ID, 2, 1, groupstage.GroupMatchCompleted)
	s.Require().NoError(err)

	// A correction to an already completed fixture touches only the match row.
	_, err = s.repo.RecordScore(m.ID, 2, 1, groupstage.GroupMatchCompleted)
	s.Require().NoError(err)

	home := s.standingFor(s.clubA.ID)
	s.Equal(1, home.MatchesPlayed)
	s.Equal(3, home.Points)
}

func (s *GroupStageSuite) TestCompletedMatchCannotBeReopened() {
	m := s.scheduleMatch(s.clubA.ID, s.clubB.ID)

	_, err := s.repo.RecordScore(m.ID, 2, 1, groupstage.GroupMatchCompleted)
	s.Require().NoError(err)

	// Reverting to scheduled would let a second completion re-apply deltas.
	for _, status := range []groupstage.GroupMatchStatus{
		groupstage.GroupMatchScheduled,
		groupstage.GroupMatchOngoing,
		groupstage.GroupMatchCancelled,
	} {
		_, err = s.repo.RecordScore(m.ID, 0, 0, status)
		s.Require().ErrorIs(err, apperr.ErrConflict)
	}

	var stored groupstage.GroupMatch
	s.Require().NoError(s.db.First(&stored, m.ID).Error)
	s.Equal(groupstage.GroupMatchCompleted, stored.Status)
	s.Equal(2, stored.HomeScore)

	home := s.standingFor(s.clubA.ID)
	s.Equal(1, home.MatchesPlayed)
	s.Equal(3, home.Points)
}

func (s *GroupStageSuite) TestNonCompletedStatusLeavesStandingsAlone() {
	m := s.scheduleMatch(s.clubA.ID, s.clubB.ID)

	_, err := s.repo.RecordScore(m.ID, 1, 0, groupstage.GroupMatchOngoing)
	s.Require().NoError(err)

	home := s.standingFor(s.clubA.ID)
	s.Equal(0, home.MatchesPlayed)
	s.Equal(0, home.Points)

	// Completing it afterwards applies the deltas once.
	_, err = s.repo.RecordScore(m.ID, 1, 0, groupstage.GroupMatchCompleted)
	s.Require().NoError(err)
	home = s.standingFor(s.clubA.ID)
	s.Equal(1, home.MatchesPlayed)
	s.Equal(3, home.Points)
}

func (s *GroupStageSuite) TestStandingsOrdering() {
	// Equal points rank by goal difference, then goals scored.
	s.seedStanding(s.clubA.ID, 9, 10, 6)  // +4
	s.seedStanding(s.clubB.ID, 9, 12, 6)  // +6
	s.seedStanding(s.clubC.ID, 7, 20, 10) // most goals, fewest points

	rows, err := s.repo.GetStandings(s.group.ID)
	s.Require().NoError(err)
	s.Require().Len(rows, 3)
	s.Equal(s.clubB.ID, rows[0].ClubID)
	s.Equal(s.clubA.ID, rows[1].ClubID)
	s.Equal(s.clubC.ID, rows[2].ClubID)
	s.Equal(6, rows[0].GoalDiff)
}

func (s *GroupStageSuite) seedStanding(clubID uint, points, goalsFor, goalsAgainst int) {
	s.Require().NoError(s.db.Model(&groupstage.GroupStanding{}).
		Where("group_id = ? AND club_id = ?", s.group.ID, clubID).
		Updates(map[string]interface{}{
			"points":        points,
			"goals_for":     goalsFor,
			"goals_against": goalsAgainst,
		}).Error)
}

func (s *GroupStageSuite) TestEliminationStatusUpdate() {
	s.Require().NoError(s.repo.UpdateStandingStatus(s.group.ID, s.clubC.ID, groupstage.StandingEliminated))
	s.Equal(groupstage.StandingEliminated, s.standingFor(s.clubC.ID).Status)

	err := s.repo.UpdateStandingStatus(s.group.ID, 9999, groupstage.StandingQualified)
	s.Require().ErrorIs(err, apperr.ErrNotFound)
}
