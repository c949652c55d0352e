//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"coach-booking-api/internal/handler/api"
	reqdto "coach-booking-api/internal/handler/dto/request"
	resdto "coach-booking-api/internal/handler/dto/response"
	"coach-booking-api/internal/usecase/commands"
	"coach-booking-api/internal/usecase/notify"
	"coach-booking-api/tests/common/httptest"
	commandsmock "coach-booking-api/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestContactHandler_Submit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	reqBody := reqdto.ContactMessageRequest{
		Name:    "Jo Doe",
		Email:   "jo@example.com",
		Subject: "Pricing",
		Message: "Do you offer group discounts?",
	}

	testCases := []struct {
		name           string
		body           any
		setupMock      func(m *commandsmock.MockContactCommands)
		expectedStatus int
		expectedMsg    string
		expected       *resdto.ContactResponse
	}{
		{
			name: "success: 202 Accepted with delivery counts",
			body: reqBody,
			setupMock: func(m *commandsmock.MockContactCommands) {
				m.EXPECT().Submit(gomock.Any(), reqBody.ToInput()).
					Return(notify.Result{Created: 2, Failed: 1}, nil).Times(1)
			},
			expectedStatus: http.StatusAccepted,
			expected:       &resdto.ContactResponse{Delivered: 2, Failed: 1},
		},
		{
			name:           "error: 400 on non-JSON body",
			body:           "not an object",
			setupMock:      func(m *commandsmock.MockContactCommands) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid request format",
		},
		{
			name:           "error: 400 on missing fields",
			body:           reqdto.ContactMessageRequest{Name: "Jo"},
			setupMock:      func(m *commandsmock.MockContactCommands) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid request format",
		},
		{
			name: "error: 400 on email with display name",
			body: reqdto.ContactMessageRequest{
				Name:    "Eve",
				Email:   "Eve <eve@example.com>",
				Subject: "Pricing",
				Message: "Hello",
			},
			setupMock:      func(m *commandsmock.MockContactCommands) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid request format",
		},
		{
			name: "error: 400 on whitespace-only fields",
			body: reqdto.ContactMessageRequest{
				Name:    "  ",
				Email:   "jo@example.com",
				Subject: "Pricing",
				Message: "Hello",
			},
			setupMock: func(m *commandsmock.MockContactCommands) {
				m.EXPECT().Submit(gomock.Any(), gomock.Any()).
					Return(notify.Result{}, commands.ErrContactFieldsRequired).Times(1)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "are required",
		},
		{
			name: "error: 400 on invalid email",
			body: reqBody,
			setupMock: func(m *commandsmock.MockContactCommands) {
				m.EXPECT().Submit(gomock.Any(), gomock.Any()).
					Return(notify.Result{}, commands.ErrContactInvalidEmail).Times(1)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid contact email",
		},
		{
			name: "error: 500 when admins cannot be listed",
			body: reqBody,
			setupMock: func(m *commandsmock.MockContactCommands) {
				m.EXPECT().Submit(gomock.Any(), gomock.Any()).
					Return(notify.Result{}, errors.New("db down")).Times(1)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "Internal server error",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockCommands := commandsmock.NewMockContactCommands(ctrl)
			tc.setupMock(mockCommands)

			router := gin.New()
			router.POST("/contact", api.NewContactHandler(mockCommands).Submit)

			rec := httptest.PerformRequest(t, router, http.MethodPost, "/contact", tc.body, "")

			if tc.expected != nil {
				var response resdto.ContactResponse
				httptest.AssertSuccessResponse(t, rec, tc.expectedStatus, &response)
				assert.Equal(t, *tc.expected, response)
				return
			}
			httptest.AssertErrorResponse(t, rec, tc.expectedStatus, tc.expectedMsg)
		})
	}
}
