package player

import (
	"errors"

	"gorm.io/gorm"

	"github.com/tamaula/leaguehub/internal/transfer"
)

// PlayerRepository defines the interface for player data operations.
type PlayerRepository interface {
	CreatePlayer(player *Player) error
	GetPlayerByID(id uint) (*Player, error)
	GetPlayerByUsername(username string) (*Player, error)
	ExistsByUsernameOrEmail(username, email string, excludeID uint) (bool, error)
	GetPlayersByClubAndStatus(clubID uint, status PlayerStatus) ([]Player, error)
	GetApprovedListings(page, limit int) ([]Listing, int64, error)
	SaveProfile(player *Player, transferReq *transfer.TransferRequest) error
	SetStatus(id uint, status PlayerStatus) error
	DeletePlayer(id uint) error
}

type playerRepository struct {
	db *gorm.DB
}

// NewPlayerRepository creates a new instance of PlayerRepository.
func NewPlayerRepository(db *gorm.DB) PlayerRepository {
	return &playerRepository{db: db}
}

func (r *playerRepository) CreatePlayer(player *Player) error {
	return r.db.Create(player).Error
}

func (r *playerRepository) GetPlayerByID(id uint) (*Player, error) {
	var player Player
	if err := r.db.First(&player, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &player, nil
}

func (r *playerRepository) GetPlayerByUsername(username string) (*Player, error) {
	var player Player
	if err := r.db.Where("username = ?", username).First(&player).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &player, nil
}

func (r *playerRepository) ExistsByUsernameOrEmail(username, email string, excludeID uint) (bool, error) {
	var count int64
	query := r.db.Model(&Player{}).Where("username = ? OR email = ?", username, email)
	if excludeID != 0 {
		query = query.Where("id != ?", excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

func (r *playerRepository) GetPlayersByClubAndStatus(clubID uint, status PlayerStatus) ([]Player, error) {
	var players []Player
	order := "full_name asc"
	if status == StatusPending {
		order = "created_at desc"
	}
	err := r.db.Where("club_id = ? AND status = ?", clubID, status).Order(order).Find(&players).Error
	return players, err
}

func (r *playerRepository) GetApprovedListings(page, limit int) ([]Listing, int64, error) {
	var total int64
	if err := r.db.Model(&Player{}).Where("status = ?", StatusApproved).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var listings []Listing
	offset := (page - 1) * limit
	err := r.db.Table("players p").
		Select(`p.id, p.full_name, p.jersey_number, p.club_id, c.name as club_name,
			p.goals, p.assists, p.yellow_cards, p.red_cards`).
		Joins("LEFT JOIN clubs c ON c.id = p.club_id").
		Where("p.status = ? AND p.deleted_at IS NULL", StatusApproved).
		Order("p.full_name asc").
		Offset(offset).Limit(limit).
		Scan(&listings).Error
	return listings, total, err
}

// SaveProfile persists a profile edit and, when the edit opened a transfer,
// creates the request in the same transaction. The player's club_id is never
// touched here when a transfer is pending; completion owns that change.
func (r *playerRepository) SaveProfile(player *Player, transferReq *transfer.TransferRequest) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if transferReq != nil {
			if err := tx.Create(transferReq).Error; err != nil {
				return err
			}
		}
		return tx.Save(player).Error
	})
}

func (r *playerRepository) SetStatus(id uint, status PlayerStatus) error {
	return r.db.Model(&Player{}).Where("id = ?", id).Update("status", status).Error
}

func (r *playerRepository) DeletePlayer(id uint) error {
	return r.db.Unscoped().Delete(&Player{}, id).Error
}
