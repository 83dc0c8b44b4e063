package lineup_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tamaula/leaguehub/internal/club"
	"github.com/tamaula/leaguehub/internal/competition"
	"github.com/tamaula/leaguehub/internal/lineup"
	"github.com/tamaula/leaguehub/internal/player"
	"github.com/tamaula/leaguehub/internal/transfer"
	"github.com/tamaula/leaguehub/pkg/apperr"
)

type lineupFixture struct {
	db      *gorm.DB
	repo    lineup.LineupRepository
	club    club.Club
	rival   club.Club
	comp    competition.Competition
	keeper  player.Player
	striker player.Player
	outside player.Player
}

func newLineupFixture(t *testing.T) *lineupFixture {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared&_fk=1"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&club.Club{}, &player.Player{}, &competition.Competition{},
		&transfer.TransferRequest{}, &lineup.Lineup{},
	))
	t.Cleanup(func() {
		sqlDB, err := db.DB()
		require.NoError(t, err)
		sqlDB.Close()
	})

	f := &lineupFixture{db: db, repo: lineup.NewLineupRepository(db)}
	f.club = f.makeClub(t, "Harbor FC")
	f.rival = f.makeClub(t, "Valley United")
	f.comp = competition.Competition{Name: "Regional Cup 2026", IsActive: true}
	require.NoError(t, db.Create(&f.comp).Error)
	f.keeper = f.makePlayer(t, "keeper1", f.club.ID)
	f.striker = f.makePlayer(t, "striker9", f.club.ID)
	f.outside = f.makePlayer(t, "rival7", f.rival.ID)
	return f
}

func (f *lineupFixture) makeClub(t *testing.T, name string) club.Club {
	t.Helper()
	c := club.Club{
		Name:     name,
		Region:   "North",
		Email:    name + "@example.com",
		Password: "irrelevant",
		Approved: true,
	}
	require.NoError(t, f.db.Create(&c).Error)
	return c
}

func (f *lineupFixture) makePlayer(t *testing.T, username string, clubID uint) player.Player {
	t.Helper()
	p := player.Player{
		FullName:    "Player " + username,
		Username:    username,
		Email:       username + "@example.com",
		DateOfBirth: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
		ClubID:      &clubID,
		Password:    "irrelevant",
		Status:      player.StatusApproved,
	}
	require.NoError(t, f.db.Create(&p).Error)
	return p
}

func TestReplaceLineupSwapsEntries(t *testing.T) {
	f := newLineupFixture(t)

	first := []lineup.Lineup{
		{PlayerID: f.keeper.ID, Position: "GK"},
		{PlayerID: f.striker.ID, Position: "ST"},
	}
	require.NoError(t, f.repo.ReplaceLineup(f.club.ID, f.comp.ID, first))

	entries, err := f.repo.GetForClub(f.club.ID, f.comp.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Resubmitting replaces rather than appends.
	second := []lineup.Lineup{{PlayerID: f.striker.ID, Position: "CF"}}
	require.NoError(t, f.repo.ReplaceLineup(f.club.ID, f.comp.ID, second))

	entries, err = f.repo.GetForClub(f.club.ID, f.comp.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "CF", entries[0].Position)
}

func TestReplaceLineupRejectsForeignPlayers(t *testing.T) {
	f := newLineupFixture(t)

	err := f.repo.ReplaceLineup(f.club.ID, f.comp.ID, []lineup.Lineup{
		{PlayerID: f.keeper.ID, Position: "GK"},
		{PlayerID: f.outside.ID, Position: "ST"},
	})
	require.ErrorIs(t, err, apperr.ErrConflict)

	// Nothing was written for the club.
	entries, err := f.repo.GetForClub(f.club.ID, f.comp.ID)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestEmptyLineupClearsSquadList(t *testing.T) {
	f := newLineupFixture(t)

	require.NoError(t, f.repo.ReplaceLineup(f.club.ID, f.comp.ID, []lineup.Lineup{
		{PlayerID: f.keeper.ID, Position: "GK"},
	}))
	require.NoError(t, f.repo.ReplaceLineup(f.club.ID, f.comp.ID, nil))

	entries, err := f.repo.GetForClub(f.club.ID, f.comp.ID)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestLineupsGroupedByClub(t *testing.T) {
	f := newLineupFixture(t)

	require.NoError(t, f.repo.ReplaceLineup(f.club.ID, f.comp.ID, []lineup.Lineup{
		{PlayerID: f.keeper.ID, Position: "GK"},
		{PlayerID: f.striker.ID, Position: "ST"},
	}))
	require.NoError(t, f.repo.ReplaceLineup(f.rival.ID, f.comp.ID, []lineup.Lineup{
		{PlayerID: f.outside.ID, Position: "ST"},
	}))

	grouped, err := f.repo.GetByCompetition(f.comp.ID)
	require.NoError(t, err)
	require.Len(t, grouped, 2)

	// Ordered by club name: Harbor FC before Valley United.
	require.Equal(t, "Harbor FC", grouped[0].ClubName)
	require.Len(t, grouped[0].Entries, 2)
	require.Equal(t, "Valley United", grouped[1].ClubName)
	require.Len(t, grouped[1].Entries, 1)
}
