//go:build e2e

package bookingtool_test

import (
	"net/http"
	"testing"

	reqdto "booking-checkout/internal/handler/dto/request"
	resdto "booking-checkout/internal/handler/dto/response"
	"booking-checkout/tests/common/authtest"
	"booking-checkout/tests/common/builder"
	"booking-checkout/tests/common/dbtest"
	"booking-checkout/tests/common/httptest"
	"booking-checkout/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const toolURL = "/api/booking-tool"

type BookingToolSuite struct {
	e2e.SharedSuite
}

func (s *BookingToolSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestBookingToolSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingToolSuite))
}

func (s *BookingToolSuite) TestScheduleAppointment() {
	s.Run("Normal case: signed-in user books without payment", func() {
		t := s.T()
		userID := uuid.New()
		token := authtest.NewJWTHelper(s.Config.JWT).GenerateToken(t, userID, "ada@example.com")

		reqBody := builder.NewConsultationBuilder().WithDuration(120).BuildToolRequest(reqdto.ToolScheduleAppointment)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, toolURL, reqBody, token)

		var res resdto.BookingToolResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.True(t, res.Success)
		require.NotNil(t, res.AppointmentID)

		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "appointments",
			"id = $1 AND user_id = $2 AND duration_minutes = 120 AND stripe_payment_id IS NULL", *res.AppointmentID, userID))
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "notification_jobs", "topic = 'appointment_confirmed'"))

		// listed as unpaid
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/me/appointments", nil, token)
		var list []resdto.AppointmentResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &list)
		require.Len(t, list, 1)
		require.False(t, list[0].Paid)
	})

	s.Run("Abnormal case: anonymous caller", func() {
		t := s.T()
		reqBody := builder.NewConsultationBuilder().BuildToolRequest(reqdto.ToolScheduleAppointment)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, toolURL, reqBody, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Authentication required")
		require.Equal(t, 0, dbtest.CountRows(t, s.DB, "appointments", ""))
	})

	s.Run("Abnormal case: invalid duration", func() {
		t := s.T()
		token := authtest.NewJWTHelper(s.Config.JWT).GenerateToken(t, uuid.New(), "")
		reqBody := builder.NewConsultationBuilder().WithDuration(30).BuildToolRequest(reqdto.ToolScheduleAppointment)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, toolURL, reqBody, token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid booking details")
	})
}

func (s *BookingToolSuite) TestSubscribeCoaching() {
	s.Run("Normal case: subscription recorded without provider ids", func() {
		t := s.T()
		userID := uuid.New()
		token := authtest.NewJWTHelper(s.Config.JWT).GenerateToken(t, userID, "grace@example.com")

		reqBody := builder.NewCoachingBuilder().WithPlan("basic").BuildToolRequest(reqdto.ToolSubscribeCoaching)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, toolURL, reqBody, token)

		var res resdto.BookingToolResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.NotNil(t, res.SubscriptionID)
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "subscriptions",
			"id = $1 AND plan_id = 'basic' AND stripe_subscription_id IS NULL", *res.SubscriptionID))
	})

	s.Run("Abnormal case: unknown plan", func() {
		t := s.T()
		token := authtest.NewJWTHelper(s.Config.JWT).GenerateToken(t, uuid.New(), "")
		reqBody := builder.NewCoachingBuilder().WithPlan("platinum").BuildToolRequest(reqdto.ToolSubscribeCoaching)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, toolURL, reqBody, token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid booking details")
		require.Equal(t, 0, dbtest.CountRows(t, s.DB, "subscriptions", ""))
	})
}

func (s *BookingToolSuite) TestRequestPitchDeck() {
	s.Run("Normal case: anonymous visitor", func() {
		t := s.T()
		reqBody := reqdto.BookingToolRequest{
			Tool:    reqdto.ToolRequestPitchDeck,
			Project: "Perspectiv",
			Name:    "Vera Capital",
			Email:   "vera@example.com",
			Role:    "investor",
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, toolURL, reqBody, "")

		var res resdto.BookingToolResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.NotNil(t, res.PitchRequestID)
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "pitch_requests",
			"id = $1 AND user_id IS NULL AND project = 'Perspectiv'", *res.PitchRequestID))
	})

	s.Run("Abnormal case: unknown project", func() {
		t := s.T()
		reqBody := reqdto.BookingToolRequest{Tool: reqdto.ToolRequestPitchDeck, Project: "Other", Email: "x@example.com"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, toolURL, reqBody, "")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid booking details")
	})
}
