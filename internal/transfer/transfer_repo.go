package transfer

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/tamaula/leaguehub/pkg/apperr"
)

// TransferRepository defines transfer data operations, including the approval
// state machine itself. Every multi-row transition runs in one transaction.
type TransferRepository interface {
	CreateRequest(req *TransferRequest) error
	GetRequestByID(id uint) (*TransferRequest, error)
	GetOpenRequestForPlayer(playerID uint) (*TransferRequest, error)
	GetOpenRecordsForPlayer(playerID uint) ([]TransferRecord, error)
	GetRecordsForClub(clubID uint) ([]TransferRecord, error)
	GetAllRecords(page, limit int) ([]TransferRecord, int64, error)
	Approve(transferID, clubID uint) (Outcome, error)
	Reject(transferID, clubID uint) error
}

type transferRepository struct {
	db *gorm.DB
}

// NewTransferRepository creates a new instance of TransferRepository.
func NewTransferRepository(db *gorm.DB) TransferRepository {
	return &transferRepository{db: db}
}

func (r *transferRepository) CreateRequest(req *TransferRequest) error {
	return r.db.Create(req).Error
}

func (r *transferRepository) GetRequestByID(id uint) (*TransferRequest, error) {
	var req TransferRequest
	if err := r.db.First(&req, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &req, nil
}

func (r *transferRepository) GetOpenRequestForPlayer(playerID uint) (*TransferRequest, error) {
	var req TransferRequest
	err := r.db.Where("player_id = ? AND status IN ?", playerID,
		[]TransferStatus{StatusPending, StatusApprovedByFrom}).First(&req).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &req, nil
}

func (r *transferRepository) GetOpenRecordsForPlayer(playerID uint) ([]TransferRecord, error) {
	var records []TransferRecord
	err := r.recordQuery().
		Where("tr.player_id = ? AND tr.status IN ?", playerID,
			[]TransferStatus{StatusPending, StatusApprovedByFrom}).
		Scan(&records).Error
	return records, err
}

func (r *transferRepository) GetRecordsForClub(clubID uint) ([]TransferRecord, error) {
	var records []TransferRecord
	err := r.recordQuery().
		Where("tr.from_club_id = ? OR tr.to_club_id = ?", clubID, clubID).
		Order("tr.created_at desc").
		Scan(&records).Error
	return records, err
}

func (r *transferRepository) GetAllRecords(page, limit int) ([]TransferRecord, int64, error) {
	// Count over the same joined query the page uses, so rows dropped by
	// the joins cannot push the reported total out of step with the pages.
	var total int64
	if err := r.recordQuery().Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var records []TransferRecord
	offset := (page - 1) * limit
	err := r.recordQuery().
		Order("tr.created_at desc").
		Offset(offset).Limit(limit).
		Scan(&records).Error
	return records, total, err
}

func (r *transferRepository) recordQuery() *gorm.DB {
	return r.db.Table("transfer_requests tr").
		Select(`tr.id, tr.player_id, p.full_name as player_name,
			tr.from_club_id, fc.name as from_club_name,
			tr.to_club_id, tc.name as to_club_name,
			tr.reason, tr.status, tr.created_at as requested_at,
			tr.approved_by_from_at, tr.approved_by_to_at, tr.completed_at`).
		Joins("JOIN players p ON p.id = tr.player_id").
		Joins("JOIN clubs fc ON fc.id = tr.from_club_id").
		Joins("JOIN clubs tc ON tc.id = tr.to_club_id").
		Where("tr.deleted_at IS NULL")
}

// Approve advances the state machine on behalf of the acting club. The source
// club may release a pending request; the destination club may complete a
// released one. Completion reassigns the player's club in the same transaction
// as the status change, so a half-approved transfer never moves a roster.
func (r *transferRepository) Approve(transferID, clubID uint) (Outcome, error) {
	var outcome Outcome
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var req TransferRequest
		if err := tx.First(&req, transferID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("transfer request")
			}
			return err
		}

		now := time.Now()
		switch clubID {
		case req.FromClubID:
			if req.Status != StatusPending {
				return apperr.Conflict("transfer already processed")
			}
			outcome = OutcomeApprovedBySource
			return tx.Model(&req).Updates(map[string]interface{}{
				"status":              StatusApprovedByFrom,
				"approved_by_from_at": &now,
			}).Error

		case req.ToClubID:
			switch req.Status {
			case StatusApprovedByFrom:
				if err := tx.Table("players").
					Where("id = ?", req.PlayerID).
					Update("club_id", req.ToClubID).Error; err != nil {
					return err
				}
				outcome = OutcomeCompleted
				return tx.Model(&req).Updates(map[string]interface{}{
					"status":            StatusCompleted,
					"approved_by_to_at": &now,
					"completed_at":      &now,
				}).Error
			case StatusPending:
				return apperr.Conflict("source club must approve first")
			default:
				return apperr.Conflict("transfer already processed")
			}

		default:
			return apperr.NotAuthorized("not a party to this transfer")
		}
	})
	return outcome, err
}

// Reject terminates an open request. Either involved club may reject; the
// player's roster assignment is untouched.
func (r *transferRepository) Reject(transferID, clubID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var req TransferRequest
		if err := tx.First(&req, transferID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("transfer request")
			}
			return err
		}
		if req.FromClubID != clubID && req.ToClubID != clubID {
			return apperr.NotAuthorized("not a party to this transfer")
		}
		if !req.Status.Open() {
			return apperr.Conflict("transfer already processed")
		}
		return tx.Model(&req).Update("status", StatusRejected).Error
	})
}
