package admin

import (
	"errors"
	"net/http"

	"courtside/internal/models"
	"courtside/internal/repositories/interfaces"
	"courtside/internal/services"
	"courtside/internal/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingHandler struct {
	bookingService *services.BookingService
}

func NewBookingHandler(bookingService *services.BookingService) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
	}
}

// ListBookings returns the review queue, newest first. Supports ?status=,
// ?search= over customer name and email, and standard pagination.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	bookings, total, err := h.bookingService.List(c.Request.Context(), params)
	if err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponseWithMeta(c, "Bookings retrieved", bookings, &utils.Meta{
		Pagination: utils.CreatePaginationMeta(params, total),
		Total:      total,
	})
}

// GetBooking returns one booking in full.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid booking ID")
		return
	}

	booking, err := h.bookingService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, interfaces.ErrBookingNotFound) {
			utils.NotFoundResponse(c, "Booking")
			return
		}
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponse(c, "Booking retrieved", booking)
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed rejected"`
}

// UpdateStatus accepts, rejects, or re-opens a booking.
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid booking ID")
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	booking, err := h.bookingService.UpdateStatus(c.Request.Context(), id, models.BookingStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, interfaces.ErrBookingNotFound):
			utils.NotFoundResponse(c, "Booking")
		case errors.Is(err, services.ErrInvalidStatus):
			utils.ErrorResponse(c, http.StatusUnprocessableEntity, "INVALID_STATUS", err.Error())
		default:
			utils.InternalServerErrorResponse(c)
		}
		return
	}

	utils.SuccessResponse(c, "Booking updated", booking)
}
