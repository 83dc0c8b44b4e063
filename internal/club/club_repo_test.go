package club_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tamaula/leaguehub/internal/club"
	"github.com/tamaula/leaguehub/internal/competition"
	"github.com/tamaula/leaguehub/internal/groupstage"
	"github.com/tamaula/leaguehub/internal/lineup"
	"github.com/tamaula/leaguehub/internal/player"
	"github.com/tamaula/leaguehub/internal/transfer"
)

func clubTestDB(t *testing.T) (*gorm.DB, club.ClubRepository) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared&_fk=1"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&club.Club{}, &player.Player{}, &competition.Competition{},
		&competition.Registration{}, &transfer.TransferRequest{},
		&lineup.Lineup{}, &groupstage.GroupAssignment{}, &groupstage.GroupStanding{},
	))
	t.Cleanup(func() {
		sqlDB, err := db.DB()
		require.NoError(t, err)
		sqlDB.Close()
	})
	return db, club.NewClubRepository(db)
}

func newClub(name, region string, approved bool) club.Club {
	return club.Club{
		Name:     name,
		Region:   region,
		Email:    name + "@example.com",
		Password: "irrelevant",
		Approved: approved,
	}
}

func TestClubLookups(t *testing.T) {
	_, repo := clubTestDB(t)

	c := newClub("Harbor FC", "North", true)
	require.NoError(t, repo.CreateClub(&c))

	found, err := repo.GetClubByNameAndRegion("Harbor FC", "North")
	require.NoError(t, err)
	require.NotNil(t, found)
	require.Equal(t, c.ID, found.ID)

	// Name match in a different region is no match.
	missing, err := repo.GetClubByNameAndRegion("Harbor FC", "South")
	require.NoError(t, err)
	require.Nil(t, missing)

	taken, err := repo.ExistsByNameOrEmail("Other FC", "Harbor FC@example.com")
	require.NoError(t, err)
	require.True(t, taken)
}

func TestApprovedClubsFilterByRegion(t *testing.T) {
	_, repo := clubTestDB(t)

	for _, c := range []club.Club{
		newClub("Alpha FC", "North", true),
		newClub("Bravo FC", "North", false),
		newClub("Charlie FC", "South", true),
	} {
		clubRow := c
		require.NoError(t, repo.CreateClub(&clubRow))
	}

	north, total, err := repo.GetApprovedClubs("North", 1, 10)
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
	require.Len(t, north, 1)
	require.Equal(t, "Alpha FC", north[0].Name)

	all, total, err := repo.GetApprovedClubs("", 1, 10)
	require.NoError(t, err)
	require.Equal(t, int64(2), total)
	require.Len(t, all, 2)

	pending, err := repo.GetPendingClubs()
	require.NoError(t, err)
	require.Len(t, pending, 1)
	require.Equal(t, "Bravo FC", pending[0].Name)
}

func TestCascadeDeleteRemovesEverythingReferencingTheClub(t *testing.T) {
	db, repo := clubTestDB(t)

	doomed := newClub("Doomed FC", "North", true)
	require.NoError(t, repo.CreateClub(&doomed))
	survivor := newClub("Survivor FC", "North", true)
	require.NoError(t, repo.CreateClub(&survivor))

	clubID := doomed.ID
	p := player.Player{
		FullName:    "Roster Player",
		Username:    "roster1",
		Email:       "roster1@example.com",
		DateOfBirth: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
		ClubID:      &clubID,
		Password:    "irrelevant",
		Status:      player.StatusApproved,
	}
	require.NoError(t, db.Create(&p).Error)

	comp := competition.Competition{Name: "Regional Cup 2026", IsActive: true}
	require.NoError(t, db.Create(&comp).Error)
	require.NoError(t, db.Create(&competition.Registration{
		ClubID: doomed.ID, CompetitionID: comp.ID, Status: competition.RegistrationPending,
	}).Error)
	require.NoError(t, db.Create(&lineup.Lineup{
		ClubID: doomed.ID, CompetitionID: comp.ID, PlayerID: p.ID, Position: "GK",
	}).Error)
	require.NoError(t, db.Create(&transfer.TransferRequest{
		PlayerID: p.ID, FromClubID: doomed.ID, ToClubID: survivor.ID, Status: transfer.StatusPending,
	}).Error)
	require.NoError(t, db.Create(&groupstage.GroupAssignment{
		CompetitionID: comp.ID, GroupID: 1, ClubID: doomed.ID,
	}).Error)
	require.NoError(t, db.Create(&groupstage.GroupStanding{
		CompetitionID: comp.ID, GroupID: 1, ClubID: doomed.ID,
	}).Error)

	require.NoError(t, repo.DeleteClubCascade(doomed.ID))

	gone, err := repo.GetClubByID(doomed.ID)
	require.NoError(t, err)
	require.Nil(t, gone)

	for table, query := range map[string]string{
		"players":                   "club_id = ?",
		"competition_registrations": "club_id = ?",
		"lineups":                   "club_id = ?",
		"group_assignments":         "club_id = ?",
		"group_standings":           "club_id = ?",
	} {
		var count int64
		require.NoError(t, db.Table(table).Where(query, doomed.ID).Count(&count).Error)
		require.Zero(t, count, "expected no %s rows for the deleted club", table)
	}

	var transfers int64
	require.NoError(t, db.Table("transfer_requests").
		Where("from_club_id = ? OR to_club_id = ?", doomed.ID, doomed.ID).
		Count(&transfers).Error)
	require.Zero(t, transfers)

	// The other club is untouched.
	kept, err := repo.GetClubByID(survivor.ID)
	require.NoError(t, err)
	require.NotNil(t, kept)
}

func TestApprovalToggle(t *testing.T) {
	_, repo := clubTestDB(t)

	c := newClub("Harbor FC", "North", false)
	require.NoError(t, repo.CreateClub(&c))

	require.NoError(t, repo.SetApproved(c.ID, true))
	stored, err := repo.GetClubByID(c.ID)
	require.NoError(t, err)
	require.True(t, stored.Approved)

	require.NoError(t, repo.SetApproved(c.ID, false))
	stored, err = repo.GetClubByID(c.ID)
	require.NoError(t, err)
	require.False(t, stored.Approved)
}
