package api

import (
	"net/http"

	reqdto "booking-checkout/internal/handler/dto/request"
	resdto "booking-checkout/internal/handler/dto/response"
	"booking-checkout/internal/handler/httperr"
	"booking-checkout/internal/handler/middleware"
	"booking-checkout/internal/pkg/errs"
	"booking-checkout/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errUnknownTool = errs.New("unknown booking tool")

type BookingToolHandler struct {
	cmds commands.BookingToolCommands
}

func NewBookingToolHandler(cmds commands.BookingToolCommands) *BookingToolHandler {
	return &BookingToolHandler{cmds: cmds}
}

// @Summary Booking tool
// @Description Record a booking without payment: schedule_appointment, subscribe_coaching or request_pitch_deck
// @Tags booking-tool
// @Accept json
// @Produce json
// @Param request body reqdto.BookingToolRequest true "Tool invocation"
// @Success 200 {object} resdto.BookingToolResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /booking-tool [post]
func (h *BookingToolHandler) Invoke(c *gin.Context) {
	var req reqdto.BookingToolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithMessage(c, http.StatusBadRequest, err, "Invalid request", "The request body could not be parsed.")
		return
	}

	userID, authenticated := middleware.GetUserID(c)
	ctx := c.Request.Context()

	var (
		resp resdto.BookingToolResponse
		id   uuid.UUID
		err  error
	)
	switch req.Tool {
	case reqdto.ToolScheduleAppointment:
		params, convErr := req.ToScheduleAppointment(userID)
		if convErr != nil {
			err = convErr
			break
		}
		id, err = h.cmds.ScheduleAppointment(ctx, params)
		resp.AppointmentID = &id
		resp.Message = "Appointment scheduled."
	case reqdto.ToolSubscribeCoaching:
		params, convErr := req.ToSubscribeCoaching(userID)
		if convErr != nil {
			err = convErr
			break
		}
		if params.Email == "" {
			params.Email = middleware.GetUserEmail(c)
		}
		id, err = h.cmds.SubscribeCoaching(ctx, params)
		resp.SubscriptionID = &id
		resp.Message = "Coaching subscription activated."
	case reqdto.ToolRequestPitchDeck:
		var owner *uuid.UUID
		if authenticated {
			owner = &userID
		}
		params, convErr := req.ToRequestPitchDeck(owner)
		if convErr != nil {
			err = convErr
			break
		}
		id, err = h.cmds.RequestPitchDeck(ctx, params)
		resp.PitchRequestID = &id
		resp.Message = "Pitch deck request submitted."
	default:
		httperr.AbortWithMessage(c, http.StatusBadRequest, errUnknownTool, "Unknown tool", "Supported tools: schedule_appointment, subscribe_coaching, request_pitch_deck.")
		return
	}

	if err != nil {
		switch {
		case errs.Is(err, commands.ErrAuthenticationRequired):
			httperr.AbortWithMessage(c, http.StatusUnauthorized, err, "Authentication required", "Please sign in to use this tool.")
		case errs.Is(err, commands.ErrValidation):
			httperr.AbortWithMessage(c, http.StatusBadRequest, err, "Invalid booking details", err.Error())
		default:
			httperr.AbortWithMessage(c, http.StatusInternalServerError, err, "Booking failed", "Something went wrong while saving your booking.")
		}
		return
	}

	resp.Success = true
	c.JSON(http.StatusOK, resp)
}
