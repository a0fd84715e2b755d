package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	playground "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/savioruz/courtside/internal/domains/bookings/dto"
	"github.com/savioruz/courtside/internal/domains/bookings/mock"
	"github.com/savioruz/courtside/pkg/constant"
	"github.com/savioruz/courtside/pkg/failure"
	"github.com/savioruz/courtside/pkg/gdto"
	"github.com/savioruz/courtside/pkg/jwt"
	"github.com/savioruz/courtside/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/text/language"
)

const testSecret = "handler-test-secret"

func init() {
	jwt.Initialize("", testSecret)
}

func setup(t *testing.T) (*fiber.App, *mock.MockBookingService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockService := mock.NewMockBookingService(ctrl)

	app := fiber.New()
	h := New(mockService, logger.NewWithWriter("error", io.Discard), playground.New(playground.WithRequiredStructEnabled()))
	h.RegisterRoutes(app.Group("/v1"))

	return app, mockService
}

func token(t *testing.T, level string) string {
	t.Helper()

	signed, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, jwt.Claims{
		ID:    "u-1",
		Email: "player@example.com",
		Level: level,
		RegisteredClaims: gojwt.RegisteredClaims{
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	return signed
}

func jsonRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	return req
}

const validBody = `{"court_id":7,"court_number":1,"date":"2025-06-11","start_time":"08:00","end_time":"10:00"}`

func TestHandler_Defaults(t *testing.T) {
	app, mockService := setup(t)

	mockService.EXPECT().Defaults(gomock.Any()).Return(dto.DefaultsResponse{
		Date:        "2025-06-10",
		CourtNumber: 1,
		StartTime:   "08:00",
		EndTime:     "10:00",
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/v1/bookings/defaults", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Data dto.DefaultsResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "08:00", body.Data.StartTime)
}

func TestHandler_Quote(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		app, mockService := setup(t)

		mockService.EXPECT().Quote(gomock.Any(), dto.BookingRequest{
			CourtID:     7,
			CourtNumber: 1,
			Date:        "2025-06-11",
			StartTime:   "08:00",
			EndTime:     "10:00",
		}, language.English).Return(dto.QuoteResponse{DurationHours: 2, TotalPrice: 200000}, nil)

		resp, err := app.Test(jsonRequest(http.MethodPost, "/v1/bookings/quote", validBody))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("error: violation carries reason and localized message", func(t *testing.T) {
		app, mockService := setup(t)

		mockService.EXPECT().Quote(gomock.Any(), gomock.Any(), language.Vietnamese).
			Return(dto.QuoteResponse{}, failure.UnprocessableEntity("too_short", "thời gian đặt sân tối thiểu là 1 giờ"))

		req := jsonRequest(http.MethodPost, "/v1/bookings/quote", validBody)
		req.Header.Set(fiber.HeaderAcceptLanguage, "vi-VN,vi;q=0.9,en;q=0.5")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

		var body struct {
			Error  string `json:"error"`
			Reason string `json:"reason"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "too_short", body.Reason)
		assert.Equal(t, "thời gian đặt sân tối thiểu là 1 giờ", body.Error)
	})

	t.Run("error: request fails tag validation", func(t *testing.T) {
		app, _ := setup(t)

		for _, body := range []string{
			`{"court_id":7,"court_number":0,"date":"2025-06-11","start_time":"08:00","end_time":"10:00"}`,
			`{"court_id":7,"court_number":1,"date":"11/06/2025","start_time":"08:00","end_time":"10:00"}`,
			`{"court_number":1,"date":"2025-06-11","start_time":"08:00","end_time":"10:00"}`,
			`{not json`,
		} {
			resp, err := app.Test(jsonRequest(http.MethodPost, "/v1/bookings/quote", body))
			require.NoError(t, err)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode, body)
		}
	})

	t.Run("success: malformed times reach the service", func(t *testing.T) {
		app, mockService := setup(t)

		mockService.EXPECT().Quote(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(dto.QuoteResponse{}, failure.UnprocessableEntity("malformed_time", "time must be in HH:mm format"))

		body := `{"court_id":7,"court_number":1,"date":"2025-06-11","start_time":"8h","end_time":"10:00"}`
		resp, err := app.Test(jsonRequest(http.MethodPost, "/v1/bookings/quote", body))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	})
}

func TestHandler_Submit(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		app, mockService := setup(t)
		bearer := token(t, constant.UserRoleUser)

		mockService.EXPECT().
			Submit(gomock.Any(), gomock.Any(), dto.Submitter{UserID: "u-1", Email: "player@example.com", Token: bearer}, language.English).
			Return(dto.SubmitResponse{RemoteBookingID: "42"}, nil)

		req := jsonRequest(http.MethodPost, "/v1/bookings", validBody)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+bearer)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("error: missing token", func(t *testing.T) {
		app, _ := setup(t)

		resp, err := app.Test(jsonRequest(http.MethodPost, "/v1/bookings", validBody))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("error: token signed with another secret", func(t *testing.T) {
		app, _ := setup(t)

		forged, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, jwt.Claims{
			ID: "u-1",
			RegisteredClaims: gojwt.RegisteredClaims{
				ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}).SignedString([]byte("other-secret"))
		require.NoError(t, err)

		req := jsonRequest(http.MethodPost, "/v1/bookings", validBody)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+forged)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("error: backend conflict", func(t *testing.T) {
		app, mockService := setup(t)

		mockService.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(dto.SubmitResponse{}, failure.Conflict("slot already booked"))

		req := jsonRequest(http.MethodPost, "/v1/bookings", validBody)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token(t, constant.UserRoleUser))

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})
}

func TestHandler_GetSubmissions(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		app, mockService := setup(t)

		mockService.EXPECT().
			GetSubmissions(gomock.Any(), gdto.PaginationRequest{Page: 2, Limit: 5, Filter: "rejected"}).
			Return(dto.GetSubmissionsResponse{Submissions: []dto.SubmissionResponse{}, TotalPages: 1}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/bookings/submissions?page=2&limit=5&filter=rejected", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token(t, constant.UserRoleAdmin))

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("error: not an admin", func(t *testing.T) {
		app, _ := setup(t)

		req := httptest.NewRequest(http.MethodGet, "/v1/bookings/submissions", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token(t, constant.UserRoleUser))

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("error: unknown status filter", func(t *testing.T) {
		app, _ := setup(t)

		req := httptest.NewRequest(http.MethodGet, "/v1/bookings/submissions?filter=cancelled", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token(t, constant.UserRoleAdmin))

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
