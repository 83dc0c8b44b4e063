package competition

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/tamaula/leaguehub/pkg/apperr"
)

// CompetitionRepository defines competition and registration data operations.
type CompetitionRepository interface {
	CreateCompetition(comp *Competition) error
	GetCompetitionByID(id uint) (*Competition, error)
	GetCompetitionByName(name string) (*Competition, error)
	GetCompetitions(activeOnly bool) ([]Competition, error)
	UpdateCompetition(comp *Competition) error

	RegisterClub(clubID, competitionID uint) (*Registration, error)
	GetRegistrationByID(id uint) (*Registration, error)
	GetRegistrationRecords(status RegistrationStatus) ([]RegistrationRecord, error)
	GetRegistrationsForClub(clubID uint) ([]RegistrationRecord, error)
	DecideRegistration(id uint, status RegistrationStatus, adminID uint, notes string) error
}

type competitionRepository struct {
	db *gorm.DB
}

// NewCompetitionRepository creates a new instance of CompetitionRepository.
func NewCompetitionRepository(db *gorm.DB) CompetitionRepository {
	return &competitionRepository{db: db}
}

func (r *competitionRepository) CreateCompetition(comp *Competition) error {
	return r.db.Create(comp).Error
}

func (r *competitionRepository) GetCompetitionByID(id uint) (*Competition, error) {
	var comp Competition
	if err := r.db.First(&comp, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &comp, nil
}

func (r *competitionRepository) GetCompetitionByName(name string) (*Competition, error) {
	var comp Competition
	if err := r.db.Where("name = ?", name).First(&comp).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &comp, nil
}

func (r *competitionRepository) GetCompetitions(activeOnly bool) ([]Competition, error) {
	var comps []Competition
	query := r.db.Order("start_date desc")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.Find(&comps).Error
	return comps, err
}

func (r *competitionRepository) UpdateCompetition(comp *Competition) error {
	return r.db.Save(comp).Error
}

// RegisterClub files a club's entry. One row per club and competition pair is
// permitted regardless of its status, so a rejected club cannot simply re-file.
func (r *competitionRepository) RegisterClub(clubID, competitionID uint) (*Registration, error) {
	var reg *Registration
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var comp Competition
		if err := tx.First(&comp, competitionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("competition")
			}
			return err
		}
		if !comp.IsActive {
			return apperr.Conflict("competition is not open for registration")
		}

		var count int64
		if err := tx.Model(&Registration{}).
			Where("club_id = ? AND competition_id = ?", clubID, competitionID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return apperr.Duplicate("registration for this competition")
		}

		reg = &Registration{ClubID: clubID, CompetitionID: competitionID, Status: RegistrationPending}
		return tx.Create(reg).Error
	})
	return reg, err
}

func (r *competitionRepository) GetRegistrationByID(id uint) (*Registration, error) {
	var reg Registration
	if err := r.db.First(&reg, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &reg, nil
}

func (r *competitionRepository) GetRegistrationRecords(status RegistrationStatus) ([]RegistrationRecord, error) {
	var records []RegistrationRecord
	query := r.recordQuery()
	if status != "" {
		query = query.Where("cr.status = ?", status)
	}
	err := query.Order("cr.created_at desc").Scan(&records).Error
	return records, err
}

func (r *competitionRepository) GetRegistrationsForClub(clubID uint) ([]RegistrationRecord, error) {
	var records []RegistrationRecord
	err := r.recordQuery().
		Where("cr.club_id = ?", clubID).
		Order("cr.created_at desc").
		Scan(&records).Error
	return records, err
}

func (r *competitionRepository) recordQuery() *gorm.DB {
	return r.db.Table("competition_registrations cr").
		Select(`cr.id, cr.club_id, c.name as club_name,
			cr.competition_id, comp.name as competition_name,
			cr.status, cr.created_at as registered_at,
			cr.approved_by_id, cr.approved_at, cr.notes`).
		Joins("JOIN clubs c ON c.id = cr.club_id").
		Joins("JOIN competitions comp ON comp.id = cr.competition_id").
		Where("cr.deleted_at IS NULL")
}

// DecideRegistration approves or rejects an entry, stamping the deciding
// admin and time on approval.
func (r *competitionRepository) DecideRegistration(id uint, status RegistrationStatus, adminID uint, notes string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var reg Registration
		if err := tx.First(&reg, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("registration")
			}
			return err
		}

		updates := map[string]interface{}{
			"status": status,
			"notes":  notes,
		}
		if status == RegistrationApproved {
			now := time.Now()
			updates["approved_by_id"] = adminID
			updates["approved_at"] = &now
		}
		return tx.Model(&reg).Updates(updates).Error
	})
}
