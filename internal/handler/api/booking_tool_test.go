//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"booking-checkout/internal/domain/pitch"
	"booking-checkout/internal/handler/api"
	reqdto "booking-checkout/internal/handler/dto/request"
	resdto "booking-checkout/internal/handler/dto/response"
	"booking-checkout/internal/pkg/errs"
	"booking-checkout/internal/usecase/commands"
	"booking-checkout/tests/common/builder"
	"booking-checkout/tests/common/httptest"
	"booking-checkout/tests/common/testutil"
	commandsmock "booking-checkout/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingToolHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingToolCommands
	handler      *api.BookingToolHandler
	userID       uuid.UUID
}

func (s *BookingToolHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingToolCommands(s.mockCtrl)
	s.handler = api.NewBookingToolHandler(s.mockCommands)
	s.userID = uuid.New()

	s.router.POST("/booking-tool", fakeAuth(s.userID, false), s.handler.Invoke)
}

func (s *BookingToolHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingToolHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingToolHandlerTestSuite))
}

const toolURL = "/booking-tool"

// ================================================================================
// schedule_appointment
// ================================================================================

func (s *BookingToolHandlerTestSuite) TestScheduleAppointment() {
	reqBody := builder.NewConsultationBuilder().WithDuration(45).BuildToolRequest(reqdto.ToolScheduleAppointment)

	s.Run("success: appointment id returned", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().ScheduleAppointment(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p commands.ScheduleAppointmentParams) (uuid.UUID, error) {
				s.Equal(s.userID, p.UserID)
				s.Equal("2025-07-01", p.Date)
				s.Equal("10:00", p.Time)
				s.Equal(45, p.Duration)
				s.Equal("Ada Lovelace", p.Name)
				return id, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, "POST", toolURL, reqBody, "bearer-token")

		var body resdto.BookingToolResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Success)
		s.Require().NotNil(body.AppointmentID)
		s.Equal(id, *body.AppointmentID)
		s.Nil(body.SubscriptionID)
		s.Nil(body.PitchRequestID)
	})

	s.Run("error: 401 when the command requires a user", func() {
		s.mockCommands.EXPECT().ScheduleAppointment(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p commands.ScheduleAppointmentParams) (uuid.UUID, error) {
				s.Equal(uuid.Nil, p.UserID)
				return uuid.Nil, commands.ErrAuthenticationRequired
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, "POST", toolURL, reqBody, "")
		body := httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Authentication required")
		s.NotEmpty(body.Message)
	})

	s.Run("error: 400 on invalid slot", func() {
		s.mockCommands.EXPECT().ScheduleAppointment(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, errs.Mark(errors.New("invalid date"), commands.ErrValidation)).Times(1)

		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("date", "01/07/2025"))
		rec := httptest.PerformRequest(s.T(), s.router, "POST", toolURL, requestMap, "bearer-token")
		body := httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking details")
		s.Contains(body.Message, "invalid date")
	})

	s.Run("error: 500 on persistence failure", func() {
		s.mockCommands.EXPECT().ScheduleAppointment(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, errors.New("db down")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, "POST", toolURL, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Booking failed")
	})
}

// ================================================================================
// subscribe_coaching
// ================================================================================

func (s *BookingToolHandlerTestSuite) TestSubscribeCoaching() {
	reqBody := builder.NewCoachingBuilder().WithPlan("premium").BuildToolRequest(reqdto.ToolSubscribeCoaching)

	s.Run("success: subscription id returned", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().SubscribeCoaching(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p commands.SubscribeCoachingParams) (uuid.UUID, error) {
				s.Equal(s.userID, p.UserID)
				s.Equal("premium", p.Plan)
				s.Equal("grace@example.com", p.Email)
				return id, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, "POST", toolURL, reqBody, "bearer-token")

		var body resdto.BookingToolResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().NotNil(body.SubscriptionID)
		s.Equal(id, *body.SubscriptionID)
	})

	s.Run("success: email falls back to the token email", func() {
		s.mockCommands.EXPECT().SubscribeCoaching(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p commands.SubscribeCoachingParams) (uuid.UUID, error) {
				s.Equal(tokenEmail, p.Email)
				return uuid.New(), nil
			}).Times(1)

		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("email", ""))
		rec := httptest.PerformRequest(s.T(), s.router, "POST", toolURL, requestMap, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})
}

// ================================================================================
// request_pitch_deck
// ================================================================================

func (s *BookingToolHandlerTestSuite) TestRequestPitchDeck() {
	reqBody := reqdto.BookingToolRequest{
		Tool:    reqdto.ToolRequestPitchDeck,
		Project: string(pitch.ProjectGalowClub),
		Email:   "vc@example.com",
		Role:    "investor",
	}

	s.Run("success: anonymous visitor", func() {
		s.mockCommands.EXPECT().RequestPitchDeck(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p commands.RequestPitchDeckParams) (uuid.UUID, error) {
				s.Nil(p.UserID)
				s.Equal("GalowClub", p.Project)
				s.Equal("investor", p.Role)
				return uuid.New(), nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, "POST", toolURL, reqBody, "")

		var body resdto.BookingToolResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.NotNil(body.PitchRequestID)
	})

	s.Run("success: signed-in user is recorded", func() {
		s.mockCommands.EXPECT().RequestPitchDeck(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p commands.RequestPitchDeckParams) (uuid.UUID, error) {
				s.Require().NotNil(p.UserID)
				s.Equal(s.userID, *p.UserID)
				return uuid.New(), nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, "POST", toolURL, reqBody, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})
}

// ================================================================================
// request shape
// ================================================================================

func (s *BookingToolHandlerTestSuite) TestInvalidRequests() {
	s.Run("error: unknown tool", func() {
		rec := httptest.PerformRequest(s.T(), s.router, "POST", toolURL, map[string]any{"tool": "cancel_everything"}, "bearer-token")
		body := httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Unknown tool")
		s.Contains(body.Message, "schedule_appointment")
	})

	s.Run("error: missing tool", func() {
		rec := httptest.PerformRequest(s.T(), s.router, "POST", toolURL, map[string]any{"plan": "basic"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}
