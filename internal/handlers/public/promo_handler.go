package public

import (
	"net/http"
	"time"

	"courtside/internal/services"
	"courtside/internal/utils"

	"github.com/gin-gonic/gin"
)

type PromoHandler struct {
	promoService *services.PromoService
}

func NewPromoHandler(promoService *services.PromoService) *PromoHandler {
	return &PromoHandler{
		promoService: promoService,
	}
}

type evaluatePromoRequest struct {
	Code       string `json:"code"`
	BaseAmount int64  `json:"base_amount" binding:"min=0"`
}

// EvaluatePromo prices a promo code against a quoted base amount. Rejections
// come back as a 200 with the reason; only a transport failure is a 502.
func (h *PromoHandler) EvaluatePromo(c *gin.Context) {
	var req evaluatePromoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	result, err := h.promoService.Evaluate(c.Request.Context(), req.Code, req.BaseAmount, time.Now())
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadGateway, "PROMO_LOOKUP_FAILED", services.PromoStatusLookupFailed)
		return
	}

	utils.SuccessResponse(c, result.Message, result)
}
