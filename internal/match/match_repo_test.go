package match_test

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
	"github.com/tamaula/leaguehub/internal/match"
	"github.com/tamaula/leaguehub/internal/player"
	"github.com/tamaula/leaguehub/pkg/apperr"
)

// MatchSuite covers fixtures and the event log's player counter side effects.
type MatchSuite struct {
	suite.Suite
	db      *gorm.DB
	repo    match.MatchRepository
	comp    competition.Competition
	home    club.Club
	away    club.Club
	striker player.Player
	fixture match.Match
}

func TestMatchSuite(t *testing.T) {
	suite.Run(t, new(MatchSuite))
}

func (s *MatchSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared&_fk=1"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	s.Require().NoError(err)
	s.Require().NoError(db.AutoMigrate(
		&club.Club{}, &player.Player{}, &competition.Competition{},
		&match.Match{}, &match.MatchEvent{},
	))
	s.db = db
	s.repo = match.NewMatchRepository(db)

	s.comp = competition.Competition{Name: "Regional Cup 2026", IsActive: true}
	s.Require().NoError(db.Create(&s.comp).Error)

	s.home = s.makeClub("Alpha FC")
	s.away = s.makeClub("Bravo FC")
	s.striker = s.makePlayer("striker9", s.home.ID)

	s.fixture = match.Match{
		CompetitionID: s.comp.ID,
		HomeClubID:    s.home.ID,
		AwayClubID:    s.away.ID,
		MatchDate:     time.Date(2026, 4, 11, 0, 0, 0, 0, time.UTC),
	}
	s.Require().NoError(s.repo.CreateMatch(&s.fixture))
}

func (s *MatchSuite) TearDownTest() {
	sqlDB, err := s.db.DB()
	s.Require().NoError(err)
	sqlDB.Close()
}

func (s *MatchSuite) makeClub(name string) club.Club {
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

func (s *MatchSuite) makePlayer(username string, clubID uint) player.Player {
	p := player.Player{
		FullName:    "Sam Striker",
		Username:    username,
		Email:       username + "@example.com",
		DateOfBirth: time.Date(2001, 7, 2, 0, 0, 0, 0, time.UTC),
		ClubID:      &clubID,
		Password:    "irrelevant",
		Status:      player.StatusApproved,
	}
	s.Require().NoError(s.db.Create(&p).Error)
	return p
}

func (s *MatchSuite) reloadStriker() player.Player {
	var p player.Player
	s.Require().NoError(s.db.First(&p, s.striker.ID).Error)
	return p
}

func (s *MatchSuite) addEvent(eventType string) match.MatchEvent {
	event := match.MatchEvent{
		MatchID:   s.fixture.ID,
		PlayerID:  s.striker.ID,
		EventType: eventType,
		Minute:    23,
	}
	s.Require().NoError(s.repo.AddEvent(&event))
	return event
}

func (s *MatchSuite) TestEventBumpsMatchingCounter() {
	s.addEvent(match.EventGoal)
	s.addEvent(match.EventGoal)
	s.addEvent(match.EventAssist)
	s.addEvent(match.EventYellowCard)

	p := s.reloadStriker()
	s.Equal(2, p.Goals)
	s.Equal(1, p.Assists)
	s.Equal(1, p.YellowCards)
	s.Equal(0, p.RedCards)
}

func (s *MatchSuite) TestCompetitionIDComesFromParentMatch() {
	event := match.MatchEvent{
		MatchID:       s.fixture.ID,
		CompetitionID: 9999, // ignored, the match decides
		PlayerID:      s.striker.ID,
		EventType:     match.EventGoal,
		Minute:        5,
	}
	s.Require().NoError(s.repo.AddEvent(&event))
	s.Equal(s.comp.ID, event.CompetitionID)
}

func (s *MatchSuite) TestUnknownEventTypePersistsWithoutCounter() {
	event := s.addEvent("own_goal")

	p := s.reloadStriker()
	s.Equal(0, p.Goals)
	s.Equal(0, p.Assists)

	stored, err := s.repo.GetEventByID(event.ID)
	s.Require().NoError(err)
	s.Require().NotNil(stored)
	s.Equal("own_goal", stored.EventType)
}

func (s *MatchSuite) TestEventForUnknownMatchOrPlayer() {
	err := s.repo.AddEvent(&match.MatchEvent{MatchID: 9999, PlayerID: s.striker.ID, EventType: match.EventGoal})
	s.Require().ErrorIs(err, apperr.ErrNotFound)

	err = s.repo.AddEvent(&match.MatchEvent{MatchID: s.fixture.ID, PlayerID: 9999, EventType: match.EventGoal})
	s.Require().ErrorIs(err, apperr.ErrNotFound)
}

func (s *MatchSuite) TestDeleteEventRollsBackCounter() {
	event := s.addEvent(match.EventGoal)
	s.Equal(1, s.reloadStriker().Goals)

	s.Require().NoError(s.repo.DeleteEvent(event.ID))
	s.Equal(0, s.reloadStriker().Goals)

	stored, err := s.repo.GetEventByID(event.ID)
	s.Require().NoError(err)
	s.Nil(stored)
}

func (s *MatchSuite) TestDeleteNeverDrivesCounterNegative() {
	event := s.addEvent(match.EventRedCard)

	// The counter was corrected out of band; deletion must floor at zero.
	s.Require().NoError(s.db.Model(&player.Player{}).
		Where("id = ?", s.striker.ID).
		Update("red_cards", 0).Error)

	s.Require().NoError(s.repo.DeleteEvent(event.ID))
	s.Equal(0, s.reloadStriker().RedCards)
}

func (s *MatchSuite) TestMatchDetailIncludesEvents() {
	s.addEvent(match.EventGoal)
	s.addEvent(match.EventAssist)

	detail, err := s.repo.GetMatchDetail(s.fixture.ID)
	s.Require().NoError(err)
	s.Require().NotNil(detail)
	s.Equal("Alpha FC", detail.Match.HomeClubName)
	s.Equal("Bravo FC", detail.Match.AwayClubName)
	s.Len(detail.Events, 2)
	s.Equal("Sam Striker", detail.Events[0].PlayerName)

	missing, err := s.repo.GetMatchDetail(9999)
	s.Require().NoError(err)
	s.Nil(missing)
}

func (s *MatchSuite) TestUpdateMatchScoreAndStatus() {
	updated, err := s.repo.UpdateMatch(s.fixture.ID, 3, 1, match.StatusCompleted)
	s.Require().NoError(err)
	s.Equal(3, updated.HomeScore)
	s.Equal(match.StatusCompleted, updated.Status)

	_, err = s.repo.UpdateMatch(9999, 0, 0, match.StatusCancelled)
	s.Require().ErrorIs(err, apperr.ErrNotFound)
}

func (s *MatchSuite) TestDeleteMatchRemovesEvents() {
	s.addEvent(match.EventGoal)
	s.Require().NoError(s.repo.DeleteMatch(s.fixture.ID))

	var count int64
	s.Require().NoError(s.db.Model(&match.MatchEvent{}).
		Where("match_id = ? AND deleted_at IS NULL", s.fixture.ID).
		Count(&count).Error)
	s.Equal(int64(0), count)
}
