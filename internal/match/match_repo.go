package match

import (
	"errors"

	"gorm.io/gorm"

	"github.com/tamaula/leaguehub/pkg/apperr"
)

// MatchRepository manages fixtures and their event logs.
type MatchRepository interface {
	CreateMatch(match *Match) error
	GetMatches(competitionID uint) ([]MatchRecord, error)
	GetMatchDetail(id uint) (*MatchDetail, error)
	UpdateMatch(matchID uint, homeScore, awayScore int, status MatchStatus) (*Match, error)
	DeleteMatch(id uint) error

	AddEvent(event *MatchEvent) error
	GetEventByID(id uint) (*MatchEvent, error)
	DeleteEvent(id uint) error
}

type matchRepository struct {
	db *gorm.DB
}

// NewMatchRepository creates a new instance of MatchRepository.
func NewMatchRepository(db *gorm.DB) MatchRepository {
	return &matchRepository{db: db}
}

func (r *matchRepository) CreateMatch(match *Match) error {
	if match.Status == "" {
		match.Status = StatusScheduled
	}
	return r.db.Create(match).Error
}

func (r *matchRepository) matchQuery() *gorm.DB {
	return r.db.Table("matches m").
		Select(`m.id, m.competition_id, comp.name as competition_name,
			m.home_club_id, hc.name as home_club_name,
			m.away_club_id, ac.name as away_club_name,
			m.match_date, m.match_time, m.location, m.status,
			m.home_score, m.away_score`).
		Joins("JOIN competitions comp ON comp.id = m.competition_id").
		Joins("JOIN clubs hc ON hc.id = m.home_club_id").
		Joins("JOIN clubs ac ON ac.id = m.away_club_id").
		Where("m.deleted_at IS NULL")
}

func (r *matchRepository) GetMatches(competitionID uint) ([]MatchRecord, error) {
	var records []MatchRecord
	query := r.matchQuery()
	if competitionID != 0 {
		query = query.Where("m.competition_id = ?", competitionID)
	}
	err := query.Order("m.match_date desc, m.match_time desc").Scan(&records).Error
	return records, err
}

func (r *matchRepository) GetMatchDetail(id uint) (*MatchDetail, error) {
	var record MatchRecord
	result := r.matchQuery().Where("m.id = ?", id).Scan(&record)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	var events []EventRecord
	err := r.db.Table("match_events me").
		Select(`me.id, me.match_id, me.player_id, p.full_name as player_name,
			me.event_type, me.minute, me.description`).
		Joins("JOIN players p ON p.id = me.player_id").
		Where("me.match_id = ? AND me.deleted_at IS NULL", id).
		Order("me.minute, me.id").
		Scan(&events).Error
	if err != nil {
		return nil, err
	}
	return &MatchDetail{Match: record, Events: events}, nil
}

func (r *matchRepository) UpdateMatch(matchID uint, homeScore, awayScore int, status MatchStatus) (*Match, error) {
	var match Match
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&match, matchID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("match")
			}
			return err
		}
		match.HomeScore = homeScore
		match.AwayScore = awayScore
		match.Status = status
		return tx.Save(&match).Error
	})
	if err != nil {
		return nil, err
	}
	return &match, nil
}

func (r *matchRepository) DeleteMatch(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("match_id = ?", id).Delete(&MatchEvent{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&Match{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperr.NotFound("match")
		}
		return nil
	})
}

// statColumn maps an event type to the player counter it drives.
func statColumn(eventType string) string {
	switch eventType {
	case EventGoal:
		return "goals"
	case EventAssist:
		return "assists"
	case EventYellowCard:
		return "yellow_cards"
	case EventRedCard:
		return "red_cards"
	default:
		return ""
	}
}

// AddEvent records the event and bumps the matching player counter in one
// transaction. The competition id is taken from the parent match, never from
// the caller. Event types without a counter are stored as plain log entries.
func (r *matchRepository) AddEvent(event *MatchEvent) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var match Match
		if err := tx.First(&match, event.MatchID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("match")
			}
			return err
		}
		event.CompetitionID = match.CompetitionID

		var playerCount int64
		if err := tx.Table("players").
			Where("id = ? AND deleted_at IS NULL", event.PlayerID).
			Count(&playerCount).Error; err != nil {
			return err
		}
		if playerCount == 0 {
			return apperr.NotFound("player")
		}

		if err := tx.Create(event).Error; err != nil {
			return err
		}

		column := statColumn(event.EventType)
		if column == "" {
			return nil
		}
		return tx.Table("players").
			Where("id = ?", event.PlayerID).
			Update(column, gorm.Expr(column+" + 1")).Error
	})
}

func (r *matchRepository) GetEventByID(id uint) (*MatchEvent, error) {
	var event MatchEvent
	if err := r.db.First(&event, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &event, nil
}

// DeleteEvent reverses the counter the event contributed, never below zero,
// then removes the row. Both happen in one transaction.
func (r *matchRepository) DeleteEvent(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var event MatchEvent
		if err := tx.First(&event, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("match event")
			}
			return err
		}

		if column := statColumn(event.EventType); column != "" {
			err := tx.Table("players").
				Where("id = ?", event.PlayerID).
				Update(column, gorm.Expr("CASE WHEN "+column+" > 0 THEN "+column+" - 1 ELSE 0 END")).Error
			if err != nil {
				return err
			}
		}
		return tx.Delete(&event).Error
	})
}
