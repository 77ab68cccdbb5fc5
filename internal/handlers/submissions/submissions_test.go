package submissions

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/jukuhub/studyquest/internal/domain"
	"github.com/jukuhub/studyquest/internal/dto"
	"github.com/jukuhub/studyquest/internal/service/submissionservice"
	"github.com/jukuhub/studyquest/pkg/auth"
	"github.com/jukuhub/studyquest/pkg/utils"
)

func NewMock(t *testing.T) (*SubmissionsHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func authCtx() context.Context {
	return context.WithValue(context.Background(), auth.StudentIDKey, 1)
}

func TestSubmitHandler(t *testing.T) {
	handler, service := NewMock(t)
	uploaded := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Accepts submission",
			body: `{"subject":"math","score":85}`,
			prepareMock: func() {
				service.EXPECT().Submit(authCtx(), 1, "math", 85).Return(&domain.ScoreSubmission{
					ID:         1,
					StudentID:  1,
					Subject:    "math",
					Score:      85,
					Status:     domain.SubmissionNew,
					UploadedAt: uploaded,
				}, nil)
			},
			expectedCode: http.StatusAccepted,
		},
		{
			name: "Score out of range",
			body: `{"subject":"math","score":120}`,
			prepareMock: func() {
				service.EXPECT().Submit(authCtx(), 1, "math", 120).Return(nil, submissionservice.ErrInvalidScore)
			},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "score must be between 0 and 100",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
		{
			name: "Service error",
			body: `{"subject":"math","score":85}`,
			prepareMock: func() {
				service.EXPECT().Submit(authCtx(), 1, "math", 85).Return(nil, errors.New("database error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest("POST", "/api/student/submissions", bytes.NewReader([]byte(tt.body)))
			r = r.WithContext(authCtx())
			rr := httptest.NewRecorder()

			handler.Submit(rr, r)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			} else {
				var resp dto.SubmissionResponseDTO
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, 1, resp.ID)
				assert.Equal(t, domain.SubmissionNew, resp.Status)
			}
		})
	}
}

func TestGetSubmissionsHandler(t *testing.T) {
	handler, service := NewMock(t)
	uploaded := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		entries      int
	}{
		{
			name: "Returns submissions",
			prepareMock: func() {
				service.EXPECT().GetSubmissions(authCtx(), 1).Return([]domain.ScoreSubmission{
					{ID: 1, StudentID: 1, Subject: "math", Score: 85, Status: domain.SubmissionProcessed, UploadedAt: uploaded},
				}, nil)
			},
			expectedCode: http.StatusOK,
			entries:      1,
		},
		{
			name: "No submissions",
			prepareMock: func() {
				service.EXPECT().GetSubmissions(authCtx(), 1).Return(nil, nil)
			},
			expectedCode: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest("GET", "/api/student/submissions", nil)
			r = r.WithContext(authCtx())
			rr := httptest.NewRecorder()

			handler.GetSubmissions(rr, r)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode == http.StatusOK {
				var resp []dto.SubmissionResponseDTO
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Len(t, resp, tt.entries)
			}
		})
	}
}
