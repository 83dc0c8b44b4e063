package transfer

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/tamaula/leaguehub/internal/middleware"
	"github.com/tamaula/leaguehub/pkg/responses"
)

// TransferController exposes the transfer approval workflow to the acting club
// and the public transfer history.
type TransferController struct {
	repo TransferRepository
}

func NewTransferController(repo TransferRepository) *TransferController {
	return &TransferController{repo: repo}
}

// Approve godoc
// @Summary Approve a transfer request
// @Description The source club releases a pending request; the destination club completes a released one, which moves the player onto its roster.
// @Tags Transfers
// @Produce json
// @Param transfer_id path int true "Transfer request ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 403 {object} responses.ErrorResponse "Acting club is not a party to the transfer"
// @Failure 409 {object} responses.ErrorResponse "Wrong state for this club's approval"
// @Router /transfers/{transfer_id}/approve [post]
// @Security BearerAuth
func (tc *TransferController) Approve(c *gin.Context) {
	transferID, ok := transferIDParam(c)
	if !ok {
		return
	}
	clubID := middleware.PrincipalID(c)

	outcome, err := tc.repo.Approve(transferID, clubID)
	if err != nil {
		log.Warn().Err(err).Uint("transfer_id", transferID).Uint("club_id", clubID).Msg("transfer approval refused")
		responses.FromError(c, err)
		return
	}

	switch outcome {
	case OutcomeCompleted:
		log.Info().Uint("transfer_id", transferID).Uint("club_id", clubID).Msg("transfer completed")
		responses.SendSuccess(c, http.StatusOK, "Transfer completed! Player has been added to your club.", nil)
	default:
		responses.SendSuccess(c, http.StatusOK, "Transfer approved. Waiting for destination club approval.", nil)
	}
}

// Reject terminates an open transfer on behalf of either involved club.
func (tc *TransferController) Reject(c *gin.Context) {
	transferID, ok := transferIDParam(c)
	if !ok {
		return
	}
	clubID := middleware.PrincipalID(c)

	if err := tc.repo.Reject(transferID, clubID); err != nil {
		log.Warn().Err(err).Uint("transfer_id", transferID).Uint("club_id", clubID).Msg("transfer rejection refused")
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Transfer rejected", nil)
}

// ListForClub shows the authenticated club its incoming and outgoing requests.
func (tc *TransferController) ListForClub(c *gin.Context) {
	clubID := middleware.PrincipalID(c)
	records, err := tc.repo.GetRecordsForClub(clubID)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", records)
}

// History is the public transfer listing.
func (tc *TransferController) History(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	records, total, err := tc.repo.GetAllRecords(page, limit)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.SendPaginated(c, http.StatusOK, "", records, total, page, limit)
}

func transferIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("transfer_id"), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid transfer id")
		return 0, false
	}
	return uint(id), true
}
