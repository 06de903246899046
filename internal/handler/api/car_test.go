//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

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

type CarHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCarCommands
	mockQueries  *queriesmock.MockCarQueries
	handler      *api.CarHandler

	actorID   uuid.UUID
	actorRole user.Role
}

func (s *CarHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCarCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCarQueries(s.mockCtrl)
	s.handler = api.NewCarHandler(s.mockCommands, s.mockQueries)

	s.actorID = uuid.New()
	s.actorRole = user.RoleFleetManager

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", s.actorID)
		c.Set("user_role", s.actorRole)
		c.Next()
	}

	s.router.GET("/cars", s.handler.SearchCars)
	s.router.GET("/cars/:id", s.handler.GetCar)
	s.router.POST("/cars", authMiddleware, s.handler.CreateCar)
	s.router.PUT("/cars/:id", authMiddleware, s.handler.UpdateCar)
	s.router.PATCH("/cars/:id/status", authMiddleware, s.handler.UpdateCarStatus)
}

func (s *CarHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCarHandlerSuite(t *testing.T) {
	suite.Run(t, new(CarHandlerTestSuite))
}

func (s *CarHandlerTestSuite) TestCreateCar() {
	url := "/cars"
	reqBody := builder.NewCarBuilder().BuildCreateRequestDTO()

	s.Run("success: returns 201 with car id", func() {
		expected := &commands.CreateCarResult{CarID: uuid.New()}
		s.mockCommands.EXPECT().CreateCar(gomock.Any(), gomock.Any(), s.actorID, s.actorRole).
			Return(expected, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(expected.CarID.String(), body["car_id"])
	})

	s.Run("validation: missing required fields", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{"missing name", testutil.Field("name", nil)},
			{"missing location", testutil.Field("location", nil)},
			{"missing daily_rate_cents", testutil.Field("daily_rate_cents", nil)},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("customer is forbidden", func() {
		s.actorRole = user.RoleCustomer
		s.mockCommands.EXPECT().CreateCar(gomock.Any(), gomock.Any(), s.actorID, user.RoleCustomer).
			Return(nil, commands.ErrCarForbidden).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})
}

func (s *CarHandlerTestSuite) TestUpdateCar() {
	carID := uuid.New()
	url := "/cars/" + carID.String()
	reqBody := builder.NewCarBuilder().BuildCreateRequestDTO()

	s.Run("success", func() {
		s.mockCommands.EXPECT().UpdateCar(gomock.Any(), carID, gomock.Any(), s.actorID, s.actorRole).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("updated", body["status"])
	})

	s.Run("error mapping", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
		}{
			{"invalid attributes", commands.ErrCarValidation, http.StatusBadRequest},
			{"car not found", commands.ErrCarNotFound, http.StatusNotFound},
			{"not the owner", commands.ErrCarForbidden, http.StatusForbidden},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().UpdateCar(gomock.Any(), carID, gomock.Any(), s.actorID, s.actorRole).
					Return(tc.err).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})
}

func (s *CarHandlerTestSuite) TestUpdateCarStatus() {
	carID := uuid.New()
	url := "/cars/" + carID.String() + "/status"

	s.Run("success", func() {
		s.mockCommands.EXPECT().UpdateCarStatus(gomock.Any(), carID, "maintenance", s.actorID, s.actorRole).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, gin.H{"status": "maintenance"}, "token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("maintenance", body["status"])
	})

	s.Run("unknown status maps to 400", func() {
		s.mockCommands.EXPECT().UpdateCarStatus(gomock.Any(), carID, "scrapped", s.actorID, s.actorRole).
			Return(commands.ErrCarValidation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, gin.H{"status": "scrapped"}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("missing status field", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, gin.H{}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *CarHandlerTestSuite) TestGetCar() {
	view := builder.NewCarBuilder().BuildView()
	url := "/cars/" + view.ID.String()

	s.Run("success", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var body resdto.CarResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID, body.ID)
		s.Equal(view.DailyRateCents, body.DailyRateCents)
	})

	s.Run("not found", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).
			Return(nil, queries.ErrCarNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

func (s *CarHandlerTestSuite) TestSearchCars() {
	s.Run("passes filters through to the query side", func() {
		expectedFilters := queries.CarSearchFilters{
			Location:      "Berlin",
			MinDailyCents: 1000,
			MaxDailyCents: 9000,
		}
		s.mockQueries.EXPECT().Search(gomock.Any(), expectedFilters).
			Return([]*queries.CarListItem{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/cars?location=Berlin&min_daily_cents=1000&max_daily_cents=9000", nil, "")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq("[]", rec.Body.String())
	})

	s.Run("availability window filter", func() {
		from := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
		until := time.Date(2025, 7, 5, 0, 0, 0, 0, time.UTC)
		s.mockQueries.EXPECT().Search(gomock.Any(), queries.CarSearchFilters{
			AvailableFrom:  &from,
			AvailableUntil: &until,
		}).Return([]*queries.CarListItem{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/cars?available_from=2025-07-01T00:00:00Z&available_until=2025-07-05T00:00:00Z", nil, "")

		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("malformed filter values are ignored", func() {
		s.mockQueries.EXPECT().Search(gomock.Any(), queries.CarSearchFilters{}).
			Return([]*queries.CarListItem{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/cars?min_daily_cents=abc&available_from=yesterday", nil, "")

		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("returns matching cars", func() {
		items := []*queries.CarListItem{
			{ID: uuid.New(), Name: "City Compact", Make: "Toyota", Model: "Corolla", Year: 2022, Location: "Berlin", DailyRateCents: 5000, Status: "available"},
		}
		s.mockQueries.EXPECT().Search(gomock.Any(), gomock.Any()).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cars", nil, "")

		var body []resdto.CarListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
		s.Equal(items[0].ID, body[0].ID)
	})
}
