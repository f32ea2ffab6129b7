package public

import (
	"errors"

	"courtside/internal/repositories/interfaces"
	"courtside/internal/services"
	"courtside/internal/utils"

	"github.com/gin-gonic/gin"
)

type CourtHandler struct {
	courtService *services.CourtService
}

func NewCourtHandler(courtService *services.CourtService) *CourtHandler {
	return &CourtHandler{
		courtService: courtService,
	}
}

// ListCourts returns every bookable court.
func (h *CourtHandler) ListCourts(c *gin.Context) {
	courts, err := h.courtService.ListActive(c.Request.Context())
	if err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponseWithMeta(c, "Courts retrieved", courts, &utils.Meta{Count: len(courts)})
}

// GetCourt resolves one court by hex id or slug. The booking page uses this
// for court=<id-or-slug> deep links.
func (h *CourtHandler) GetCourt(c *gin.Context) {
	court, err := h.courtService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, interfaces.ErrCourtNotFound) {
			utils.NotFoundResponse(c, "Court")
			return
		}
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponse(c, "Court retrieved", court)
}
