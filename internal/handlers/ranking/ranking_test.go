package ranking

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/jukuhub/studyquest/internal/dto"
	rankrepo "github.com/jukuhub/studyquest/internal/repo/rank-repo"
	"github.com/jukuhub/studyquest/pkg/utils"
)

func NewMock(t *testing.T) (*RankingHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func TestGetRankingHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		url           string
		prepareMock   func()
		expectedCode  int
		expectedError string
		entries       int
	}{
		{
			name: "Returns leaderboard",
			url:  "/api/ranking",
			prepareMock: func() {
				service.EXPECT().Top(gomock.Any(), int64(0)).Return([]rankrepo.Entry{
					{Rank: 1, StudentID: 7, Level: 12, Experience: 40},
					{Rank: 2, StudentID: 3, Level: 11, Experience: 90},
				}, nil)
			},
			expectedCode: http.StatusOK,
			entries:      2,
		},
		{
			name: "Honors limit parameter",
			url:  "/api/ranking?limit=1",
			prepareMock: func() {
				service.EXPECT().Top(gomock.Any(), int64(1)).Return([]rankrepo.Entry{
					{Rank: 1, StudentID: 7, Level: 12, Experience: 40},
				}, nil)
			},
			expectedCode: http.StatusOK,
			entries:      1,
		},
		{
			name: "Service error",
			url:  "/api/ranking",
			prepareMock: func() {
				service.EXPECT().Top(gomock.Any(), int64(0)).Return(nil, errors.New("redis down"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Failed to fetch ranking",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest("GET", tt.url, nil)
			rr := httptest.NewRecorder()

			handler.GetRanking(rr, r)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			} else {
				var resp []dto.RankingEntryResponseDTO
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Len(t, resp, tt.entries)
			}
		})
	}
}
