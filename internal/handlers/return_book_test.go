package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"biblioteca-api/internal/models"
	"biblioteca-api/internal/services"
)

func newReturnRequest(t *testing.T, bookID string) *http.Request {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/books/"+bookID+"/return", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("bookID", bookID)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestReturnBookHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	bookID := uuid.New()

	tests := []struct {
		name         string
		bookID       string
		mockSetup    func(m *MockBookReturner)
		expectedCode int
	}{
		{
			name:   "success",
			bookID: bookID.String(),
			mockSetup: func(m *MockBookReturner) {
				m.EXPECT().
					ReturnBook(gomock.Any(), bookID).
					Return(&services.ReturnResult{
						Book:    models.BookDB{BookID: bookID, Title: "Rayuela"},
						Rental:  models.RentalDB{RentalID: uuid.New(), BookID: bookID},
						Fine:    300,
						Message: "El libro Rayuela fue devuelto con exito",
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "book does not exist",
			bookID: bookID.String(),
			mockSetup: func(m *MockBookReturner) {
				m.EXPECT().
					ReturnBook(gomock.Any(), bookID).
					Return(nil, services.ErrBookNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:   "book not rented",
			bookID: bookID.String(),
			mockSetup: func(m *MockBookReturner) {
				m.EXPECT().
					ReturnBook(gomock.Any(), bookID).
					Return(nil, services.ErrBookNotRented)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:   "internal server error",
			bookID: bookID.String(),
			mockSetup: func(m *MockBookReturner) {
				m.EXPECT().
					ReturnBook(gomock.Any(), bookID).
					Return(nil, errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
		},
		{
			name:         "malformed book id",
			bookID:       "not-a-uuid",
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockBookReturner(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewReturnBookHandler(mockSvc)

			rr := httptest.NewRecorder()
			handler(rr, newReturnRequest(t, tt.bookID))

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestReturnBookHandler_BodyCarriesFine(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	bookID := uuid.New()

	mockSvc := NewMockBookReturner(ctrl)
	mockSvc.EXPECT().
		ReturnBook(gomock.Any(), bookID).
		Return(&services.ReturnResult{
			Book:    models.BookDB{BookID: bookID, Title: "Rayuela"},
			Rental:  models.RentalDB{RentalID: uuid.New(), BookID: bookID},
			Fine:    300,
			Message: "devuelto",
		}, nil)

	handler := NewReturnBookHandler(mockSvc)

	rr := httptest.NewRecorder()
	handler(rr, newReturnRequest(t, bookID.String()))

	var resp map[string]json.RawMessage
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "300", string(resp["multa"]))
	assert.Contains(t, resp, "alquiler")
	assert.Contains(t, resp, "mensaje")
}
