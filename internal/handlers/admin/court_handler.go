package admin

import (
	"errors"

	"courtside/internal/models"
	"courtside/internal/repositories/interfaces"
	"courtside/internal/services"
	"courtside/internal/utils"
	"courtside/internal/validators"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CourtHandler struct {
	courtService *services.CourtService
}

func NewCourtHandler(courtService *services.CourtService) *CourtHandler {
	return &CourtHandler{
		courtService: courtService,
	}
}

// ListCourts returns all courts, active or not.
func (h *CourtHandler) ListCourts(c *gin.Context) {
	courts, err := h.courtService.ListAll(c.Request.Context())
	if err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponseWithMeta(c, "Courts retrieved", courts, &utils.Meta{Count: len(courts)})
}

// CreateCourt adds a court to the catalogue.
func (h *CourtHandler) CreateCourt(c *gin.Context) {
	var court models.Court
	if err := c.ShouldBindJSON(&court); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if err := h.courtService.Create(c.Request.Context(), &court); err != nil {
		var validationErrs validators.ValidationErrors
		if errors.As(err, &validationErrs) {
			utils.ValidationErrorResponse(c, validationErrs.ToMap())
			return
		}
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.CreatedResponse(c, "Court created", court)
}

type setActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// SetActive toggles whether a court shows up on the public site.
func (h *CourtHandler) SetActive(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid court ID")
		return
	}

	var req setActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if err := h.courtService.SetActive(c.Request.Context(), id, *req.Active); err != nil {
		if errors.Is(err, interfaces.ErrCourtNotFound) {
			utils.NotFoundResponse(c, "Court")
			return
		}
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponse(c, "Court updated", gin.H{"id": id.Hex(), "active": *req.Active})
}
