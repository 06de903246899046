//go:build unit

package api_test

import (
	"fmt"
	"net/http"
	"testing"

	"car-rental-api/internal/domain/user"
	"car-rental-api/internal/handler/api"
	resdto "car-rental-api/internal/handler/dto/response"
	"car-rental-api/internal/usecase/commands"
	"car-rental-api/internal/usecase/queries"
	"car-rental-api/tests/common/builder"
	"car-rental-api/tests/common/httptest"
	"car-rental-api/tests/common/testutil"
	commandsmock "car-rental-api/tests/mock/commands"
	queriesmock "car-rental-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler

	actorID   uuid.UUID
	actorRole user.Role
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	s.actorID = uuid.New()
	s.actorRole = user.RoleCustomer

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", s.actorID)
		c.Set("user_role", s.actorRole)
		c.Next()
	}

	s.router.POST("/bookings", authMiddleware, s.handler.CreateBooking)
	s.router.GET("/bookings", authMiddleware, s.handler.ListBookings)
	s.router.GET("/bookings/:id", authMiddleware, s.handler.GetBooking)
	s.router.POST("/bookings/:id/cancel", authMiddleware, s.handler.CancelBooking)
	s.router.POST("/bookings/:id/complete", authMiddleware, s.handler.CompleteBooking)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	url := "/bookings"
	reqBody := builder.NewBookingBuilder().BuildCreateRequestDTO()

	s.Run("success: returns 201 with booking id and price", func() {
		expected := &commands.CreateBookingResult{BookingID: uuid.New(), TotalPriceCents: 10000}
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), s.actorID).
			Return(expected, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(expected.BookingID.String(), body["booking_id"])
		s.Equal(float64(10000), body["total_price_cents"])
		s.Equal("pending", body["status"])
	})

	s.Run("validation: missing required fields", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{"missing car_id", testutil.Field("car_id", nil)},
			{"missing start_at", testutil.Field("start_at", nil)},
			{"missing end_at", testutil.Field("end_at", nil)},
			{"malformed car_id", testutil.Field("car_id", "not-a-uuid")},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error mapping", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
		}{
			{"inverted period", commands.ErrInvalidPeriod, http.StatusBadRequest},
			{"car not found", commands.ErrCarNotFound, http.StatusNotFound},
			{"car not bookable", commands.ErrCarNotBookable, http.StatusConflict},
			{"period conflict", commands.ErrBookingConflict, http.StatusConflict},
			{"database failure", commands.ErrDatabaseOperationFailed, http.StatusInternalServerError},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), s.actorID).
					Return(nil, tc.err).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})

	s.Run("unauthorized without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})
}

func (s *BookingHandlerTestSuite) TestGetBooking() {
	view := builder.NewBookingBuilder().BuildView()
	url := "/bookings/" + view.ID.String()

	s.Run("success: returns booking view", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID, s.actorID, s.actorRole).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID, body.ID)
		s.Equal(view.Status, body.Status)
		s.Equal(view.TotalPriceCents, body.TotalPriceCents)
	})

	s.Run("not found", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID, s.actorID, s.actorRole).
			Return(nil, queries.ErrBookingNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("forbidden for someone else's booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID, s.actorID, s.actorRole).
			Return(nil, queries.ErrBookingForbidden).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})

	s.Run("malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/not-a-uuid", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID")
	})
}

func (s *BookingHandlerTestSuite) TestListBookings() {
	s.Run("success: returns list", func() {
		items := []*queries.BookingListItem{
			builder.NewBookingBuilder().BuildListItem(),
			builder.NewBookingBuilder().BuildListItem(),
		}
		s.mockQueries.EXPECT().ListForActor(gomock.Any(), s.actorID, s.actorRole).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "token")

		var body []resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 2)
		s.Equal(items[0].ID, body[0].ID)
	})

	s.Run("empty list is an empty array", func() {
		s.mockQueries.EXPECT().ListForActor(gomock.Any(), s.actorID, s.actorRole).
			Return([]*queries.BookingListItem{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "token")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq("[]", rec.Body.String())
	})
}

func (s *BookingHandlerTestSuite) TestCancelBooking() {
	bookingID := uuid.New()
	url := fmt.Sprintf("/bookings/%s/cancel", bookingID)

	s.Run("success", func() {
		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), bookingID, s.actorID, s.actorRole).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("cancelled", body["status"])
	})

	s.Run("error mapping", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
		}{
			{"not found", commands.ErrBookingNotFound, http.StatusNotFound},
			{"forbidden", commands.ErrBookingForbidden, http.StatusForbidden},
			{"already terminal", commands.ErrInvalidTransition, http.StatusConflict},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CancelBooking(gomock.Any(), bookingID, s.actorID, s.actorRole).
					Return(tc.err).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestCompleteBooking() {
	bookingID := uuid.New()
	url := fmt.Sprintf("/bookings/%s/complete", bookingID)

	s.Run("success for fleet manager", func() {
		s.actorRole = user.RoleFleetManager
		s.mockCommands.EXPECT().CompleteBooking(gomock.Any(), bookingID, s.actorID, user.RoleFleetManager).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("completed", body["status"])
	})

	s.Run("forbidden for customer", func() {
		s.actorRole = user.RoleCustomer
		s.mockCommands.EXPECT().CompleteBooking(gomock.Any(), bookingID, s.actorID, user.RoleCustomer).
			Return(commands.ErrBookingForbidden).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})
}
