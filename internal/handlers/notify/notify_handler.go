package notify

import (
	"encoding/json"
	"errors"
	"net/http"

	"courtside/internal/mailer"
	"courtside/internal/models"
	"courtside/internal/utils"
	"courtside/pkg/logger"

	"github.com/gin-gonic/gin"
)

// NotifyRequest is the only accepted body shape. Unknown fields are
// rejected so misrouted payloads fail loudly instead of producing a
// half-empty email.
type NotifyRequest struct {
	CourtID       string `json:"court_id"`
	CourtName     string `json:"court_name"`
	Plan          string `json:"plan"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	StartTime     string `json:"start_time"`
	TotalAmount   int64  `json:"total_amount"`
	PromoCode     string `json:"promo_code"`
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	CustomerEmail string `json:"customer_email"`
	EventType     string `json:"event_type"`
	Notes         string `json:"notes"`
}

// courtLabel prefers the display name; bare booking records carry only the
// court id.
func (r *NotifyRequest) courtLabel() string {
	if r.CourtName != "" {
		return r.CourtName
	}
	return r.CourtID
}

// dateLabel mirrors the label the in-process notifier renders, working from
// the wire strings instead of parsed times.
func (r *NotifyRequest) dateLabel() string {
	start, err := utils.ParseDate(r.StartDate)
	if err != nil {
		return r.StartDate
	}

	end := start
	if r.EndDate != "" {
		if parsed, err := utils.ParseDate(r.EndDate); err == nil {
			end = parsed
		}
	}

	return mailer.DateLabel(models.PlanType(r.Plan), start, end, r.StartTime)
}

// Handler relays booking notifications to an upstream mail provider. Both
// relay endpoints share this handler; only the Mailer behind them differs.
type Handler struct {
	mailer      mailer.Mailer
	adminEmail  string
	fromAddress string
	logger      *logger.Logger
}

func NewHandler(m mailer.Mailer, adminEmail, fromAddress string, logger *logger.Logger) *Handler {
	return &Handler{
		mailer:      m,
		adminEmail:  adminEmail,
		fromAddress: fromAddress,
		logger:      logger,
	}
}

// Relay accepts a booking-shaped JSON body and forwards it as an email.
// POST only; the router answers 405 for anything else.
func (h *Handler) Relay(c *gin.Context) {
	req, err := decodeStrict(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unrecognized request body: " + err.Error()})
		return
	}

	summary := &mailer.BookingSummary{
		CourtLabel:    req.courtLabel(),
		Plan:          req.Plan,
		DateLabel:     req.dateLabel(),
		TotalLabel:    utils.FormatIDR(req.TotalAmount),
		PromoCode:     req.PromoCode,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: req.CustomerEmail,
		EventType:     req.EventType,
		Notes:         req.Notes,
	}

	msg := mailer.BuildBookingMessage(h.fromAddress, h.adminEmail, summary)
	if err := h.mailer.Send(c.Request.Context(), msg); err != nil {
		if errors.Is(err, mailer.ErrMissingCredentials) {
			h.logger.Error("Mail relay called without credentials configured")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "mail service is not configured"})
			return
		}
		h.logger.WithError(err).Error("Mail relay upstream failure")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.String(http.StatusOK, "ok")
}

func decodeStrict(c *gin.Context) (*NotifyRequest, error) {
	decoder := json.NewDecoder(c.Request.Body)
	decoder.DisallowUnknownFields()

	var req NotifyRequest
	if err := decoder.Decode(&req); err != nil {
		return nil, err
	}
	if req.CustomerName == "" || (req.CourtName == "" && req.CourtID == "") {
		return nil, errors.New("customer_name and court_name or court_id are required")
	}
	return &req, nil
}
