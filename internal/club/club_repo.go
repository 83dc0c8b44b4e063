package club

import (
	"errors"

	"gorm.io/gorm"
)

// ClubRepository defines the interface for club data operations.
type ClubRepository interface {
	CreateClub(club *Club) error
	GetClubByID(id uint) (*Club, error)
	GetClubByName(name string) (*Club, error)
	GetClubByNameAndRegion(name, region string) (*Club, error)
	ExistsByNameOrEmail(name, email string) (bool, error)
	GetApprovedClubs(region string, page, limit int) ([]Club, int64, error)
	GetPendingClubs() ([]Club, error)
	UpdateClub(club *Club) error
	SetApproved(id uint, approved bool) error
	DeleteClub(id uint) error
	DeleteClubCascade(id uint) error
}

type clubRepository struct {
	db *gorm.DB
}

// NewClubRepository creates a new instance of ClubRepository.
func NewClubRepository(db *gorm.DB) ClubRepository {
	return &clubRepository{db: db}
}

func (r *clubRepository) CreateClub(club *Club) error {
	return r.db.Create(club).Error
}

func (r *clubRepository) GetClubByID(id uint) (*Club, error) {
	var club Club
	if err := r.db.First(&club, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &club, nil
}

func (r *clubRepository) GetClubByName(name string) (*Club, error) {
	var club Club
	if err := r.db.Where("name = ?", name).First(&club).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &club, nil
}

func (r *clubRepository) GetClubByNameAndRegion(name, region string) (*Club, error) {
	var club Club
	if err := r.db.Where("name = ? AND region = ?", name, region).First(&club).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &club, nil
}

func (r *clubRepository) ExistsByNameOrEmail(name, email string) (bool, error) {
	var count int64
	err := r.db.Model(&Club{}).Where("name = ? OR email = ?", name, email).Count(&count).Error
	return count > 0, err
}

func (r *clubRepository) GetApprovedClubs(region string, page, limit int) ([]Club, int64, error) {
	var clubs []Club
	var total int64

	query := r.db.Model(&Club{}).Where("approved = ?", true)
	if region != "" {
		query = query.Where("region = ?", region)
	}
	query.Count(&total)
	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Order("name asc").Find(&clubs).Error; err != nil {
		return nil, 0, err
	}
	return clubs, total, nil
}

func (r *clubRepository) GetPendingClubs() ([]Club, error) {
	var clubs []Club
	if err := r.db.Where("approved = ?", false).Order("created_at desc").Find(&clubs).Error; err != nil {
		return nil, err
	}
	return clubs, nil
}

func (r *clubRepository) UpdateClub(club *Club) error {
	return r.db.Save(club).Error
}

func (r *clubRepository) SetApproved(id uint, approved bool) error {
	return r.db.Model(&Club{}).Where("id = ?", id).Update("approved", approved).Error
}

// DeleteClub removes only the club row. Players referencing it keep their rows
// with club_id set to NULL by the foreign key.
func (r *clubRepository) DeleteClub(id uint) error {
	return r.db.Unscoped().Delete(&Club{}, id).Error
}

// DeleteClubCascade removes a club together with everything that references
// it: roster, competition registrations, lineups, transfers either way, group
// assignments and standings.
func (r *clubRepository) DeleteClubCascade(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM players WHERE club_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM competition_registrations WHERE club_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM lineups WHERE club_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM transfer_requests WHERE from_club_id = ? OR to_club_id = ?", id, id).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM group_assignments WHERE club_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM group_standings WHERE club_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&Club{}, id).Error
	})
}
