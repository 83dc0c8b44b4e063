package player

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/tamaula/leaguehub/internal/club"
	"github.com/tamaula/leaguehub/pkg/apperr"
	"github.com/tamaula/leaguehub/pkg/utils"
)

const minRegistrationAge = 5

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// RegisterInput carries the raw registration form. Values arrive as strings so
// that validation can report every bad field in one pass.
type RegisterInput struct {
	FullName       string
	Username       string
	Email          string
	Phone          string
	DateOfBirth    string
	JerseyNumber   string
	Gender         string
	Region         string
	ClubName       string
	Password       string
	ProfilePicture string
}

// Register validates a self-registration and persists the player in pending
// state against the resolved club. Validation enumerates every failing field
// rather than stopping at the first; nothing is persisted on failure.
func Register(players PlayerRepository, clubs club.ClubRepository, in RegisterInput) (*Player, error) {
	var v apperr.Validation
	v.Require("full_name", in.FullName)
	v.Require("username", in.Username)
	v.Require("email", in.Email)
	v.Require("date_of_birth", in.DateOfBirth)
	v.Require("region", in.Region)
	v.Require("club", in.ClubName)
	v.Require("password", in.Password)

	if in.Email != "" && !emailPattern.MatchString(in.Email) {
		v.Add("email", "please enter a valid email address")
	}

	var birth time.Time
	if in.DateOfBirth != "" {
		var err error
		birth, err = time.Parse("2006-01-02", in.DateOfBirth)
		if err != nil {
			v.Add("date_of_birth", "please enter a valid date of birth")
		} else if ageAt(birth, time.Now()) < minRegistrationAge {
			v.Add("date_of_birth", "you must be at least 5 years old to register")
		}
	}

	if in.Password != "" && len(in.Password) < 6 {
		v.Add("password", "password must be at least 6 characters long")
	}

	var jersey *int
	if strings.TrimSpace(in.JerseyNumber) != "" {
		n, err := strconv.Atoi(strings.TrimSpace(in.JerseyNumber))
		if err != nil {
			v.Add("jersey_number", "jersey number must be a whole number")
		} else {
			jersey = &n
		}
	}

	if err := v.Err(); err != nil {
		return nil, err
	}

	owningClub, err := clubs.GetClubByNameAndRegion(in.ClubName, in.Region)
	if err != nil {
		return nil, err
	}
	if owningClub == nil {
		return nil, apperr.NewValidation("club", "selected club is not registered; please ask your club to register first")
	}

	// Emails are stored lowercased, so the duplicate check has to see the
	// same form or a re-registration would slip past it into a DB error.
	email := strings.ToLower(in.Email)
	taken, err := players.ExistsByUsernameOrEmail(in.Username, email, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperr.Duplicate("username or email")
	}

	hashed, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	clubID := owningClub.ID
	p := &Player{
		FullName:       in.FullName,
		Username:       in.Username,
		Email:          email,
		Phone:          in.Phone,
		DateOfBirth:    birth,
		JerseyNumber:   jersey,
		Gender:         in.Gender,
		ProfilePicture: in.ProfilePicture,
		ClubID:         &clubID,
		Password:       hashed,
		Status:         StatusPending,
	}
	return p, players.CreatePlayer(p)
}
