package api

import (
	"net/http"
	"strconv"

	resdto "booking-checkout/internal/handler/dto/response"
	"booking-checkout/internal/handler/httperr"
	"booking-checkout/internal/handler/middleware"
	"booking-checkout/internal/usecase/commands"
	"booking-checkout/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	q queries.BookingQueries
}

func NewBookingHandler(q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{q: q}
}

// @Summary List my appointments
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size (max 200)"
// @Param offset query int false "Offset"
// @Success 200 {array} resdto.AppointmentResponse
// @Failure 401 {object} httperr.Response
// @Router /me/appointments [get]
func (h *BookingHandler) ListAppointments(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, commands.ErrAuthenticationRequired, "Unauthorized", nil)
		return
	}

	views, err := h.q.ListAppointments(c.Request.Context(), userID, pageFromQuery(c))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list appointments", nil)
		return
	}

	out := make([]*resdto.AppointmentResponse, len(views))
	for i, v := range views {
		out[i] = resdto.FromAppointmentView(v)
	}
	c.JSON(http.StatusOK, out)
}

// @Summary List my subscriptions
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size (max 200)"
// @Param offset query int false "Offset"
// @Success 200 {array} resdto.SubscriptionResponse
// @Failure 401 {object} httperr.Response
// @Router /me/subscriptions [get]
func (h *BookingHandler) ListSubscriptions(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, commands.ErrAuthenticationRequired, "Unauthorized", nil)
		return
	}

	views, err := h.q.ListSubscriptions(c.Request.Context(), userID, pageFromQuery(c))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list subscriptions", nil)
		return
	}

	out := make([]*resdto.SubscriptionResponse, len(views))
	for i, v := range views {
		out[i] = resdto.FromSubscriptionView(v)
	}
	c.JSON(http.StatusOK, out)
}

// Malformed values fall back to the defaults.
func pageFromQuery(c *gin.Context) queries.Page {
	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))
	return queries.Page{Limit: limit, Offset: offset}
}
