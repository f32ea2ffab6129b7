package public

import (
	"errors"
	"net/http"

	"courtside/internal/repositories/interfaces"
	"courtside/internal/services"
	"courtside/internal/utils"
	"courtside/internal/validators"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingService *services.BookingService
}

func NewBookingHandler(bookingService *services.BookingService) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
	}
}

// CreateBooking accepts a reservation request and stores it as pending.
// All amounts are recomputed server-side; client-supplied totals are ignored.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req validators.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	booking, err := h.bookingService.Create(c.Request.Context(), &req)
	if err != nil {
		var validationErrs validators.ValidationErrors
		switch {
		case errors.As(err, &validationErrs):
			utils.ValidationErrorResponse(c, validationErrs.ToMap())
		case errors.Is(err, interfaces.ErrCourtNotFound):
			utils.NotFoundResponse(c, "Court")
		case errors.Is(err, services.ErrCourtUnavailable):
			utils.ErrorResponse(c, http.StatusConflict, "COURT_UNAVAILABLE", err.Error())
		default:
			utils.InternalServerErrorResponse(c)
		}
		return
	}

	utils.CreatedResponse(c, "Booking submitted", booking)
}
