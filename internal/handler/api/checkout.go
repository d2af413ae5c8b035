package api

import (
	"errors"
	"net/http"

	reqdto "booking-checkout/internal/handler/dto/request"
	resdto "booking-checkout/internal/handler/dto/response"
	"booking-checkout/internal/handler/httperr"
	"booking-checkout/internal/handler/middleware"
	"booking-checkout/internal/pkg/errs"
	"booking-checkout/internal/usecase/commands"
	"booking-checkout/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

var errUserMismatch = errs.New("userId does not match the authenticated user")

type CheckoutHandler struct {
	cmds commands.CheckoutCommands
}

func NewCheckoutHandler(cmds commands.CheckoutCommands) *CheckoutHandler {
	return &CheckoutHandler{cmds: cmds}
}

// @Summary Create checkout session
// @Description Price a consultation or coaching booking and open a hosted checkout session
// @Tags checkout
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CheckoutRequest true "Booking form"
// @Success 200 {object} resdto.CheckoutResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /checkout [post]
func (h *CheckoutHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, commands.ErrAuthenticationRequired, "Unauthorized", nil)
		return
	}

	var req reqdto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	claimed, present, err := req.ClaimedUserID()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid userId", nil)
		return
	}
	if present && claimed != userID {
		httperr.AbortWithError(c, http.StatusForbidden, errUserMismatch, "Forbidden", nil)
		return
	}

	fallbackEmail := req.UserEmail
	if fallbackEmail == "" {
		fallbackEmail = middleware.GetUserEmail(c)
	}
	bookingReq, err := req.FormData.ToDomain(userID, fallbackEmail)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.CreateCheckoutSession(c.Request.Context(), bookingReq)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		case errs.Is(err, commands.ErrCheckoutCreationFailed):
			httperr.AbortWithError(c, http.StatusBadGateway, err, providerMessage(err), nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCheckoutResult(result))
}

func providerMessage(err error) string {
	var pe *shared.ProviderError
	if errors.As(err, &pe) && pe.Message != "" {
		return pe.Message
	}
	return "Checkout session creation failed"
}
