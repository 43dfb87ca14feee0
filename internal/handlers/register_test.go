package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"biblioteca-api/internal/models"
	"biblioteca-api/internal/services"
)

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		mockSetup    func(m *MockRegisterer)
		expectedCode int
		rawBody      bool
	}{
		{
			name: "success",
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "Maria Gomez", "maria@test.com", "supersecret").
					Return(&services.RegisterResult{
						User:            models.UserDB{UserID: uuid.New(), FullName: "Maria Gomez", Email: "maria@test.com"},
						ValidationToken: "validation-token",
						EmailDelivered:  true,
					}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "email taken",
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "Maria Gomez", "maria@test.com", "supersecret").
					Return(nil, services.ErrEmailTaken)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "invalid email",
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "Maria Gomez", "maria@test.com", "supersecret").
					Return(nil, services.ErrInvalidEmail)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "internal server error",
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "Maria Gomez", "maria@test.com", "supersecret").
					Return(nil, errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
		},
		{
			name:         "invalid json",
			rawBody:      true,
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRegisterer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewRegisterHandler(mockSvc)

			var req *http.Request
			if tt.rawBody {
				req = httptest.NewRequest(http.MethodPost, "/register", bytes.NewBufferString("{invalid json}"))
			} else {
				bodyBytes, _ := json.Marshal(RegisterRequest{
					FullName: "Maria Gomez",
					Email:    "maria@test.com",
					Password: "supersecret",
				})
				req = httptest.NewRequest(http.MethodPost, "/register", bytes.NewBuffer(bodyBytes))
			}

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}
