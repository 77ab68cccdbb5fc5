package economy

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/jukuhub/studyquest/internal/domain"
	"github.com/jukuhub/studyquest/internal/dto"
	"github.com/jukuhub/studyquest/internal/service/drawservice"
	"github.com/jukuhub/studyquest/internal/service/spendservice"
	"github.com/jukuhub/studyquest/pkg/auth"
	"github.com/jukuhub/studyquest/pkg/utils"
)

func NewMock(t *testing.T) (*EconomyHandler, *MockSpendService, *MockDrawService) {
	ctrl := gomock.NewController(t)
	spendService := NewMockSpendService(ctrl)
	drawService := NewMockDrawService(ctrl)
	handler := New(spendService, drawService)
	return handler, spendService, drawService
}

func authCtx() context.Context {
	return context.WithValue(context.Background(), auth.StudentIDKey, 1)
}

func TestSpendHandler(t *testing.T) {
	handler, spendService, _ := NewMock(t)
	entryID := uuid.New()

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful spend",
			body: `{"item_id":"snack-pack"}`,
			prepareMock: func() {
				spendService.EXPECT().
					Spend(authCtx(), 1, "snack-pack").
					Return(&spendservice.SpendResult{
						EntryID:         entryID,
						RemainingPoints: 50,
						RemainingStock:  4,
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Insufficient points",
			body: `{"item_id":"snack-pack"}`,
			prepareMock: func() {
				spendService.EXPECT().
					Spend(authCtx(), 1, "snack-pack").
					Return(nil, spendservice.ErrInsufficientPoints)
			},
			expectedCode: http.StatusPaymentRequired,
		},
		{
			name: "Out of stock",
			body: `{"item_id":"snack-pack"}`,
			prepareMock: func() {
				spendService.EXPECT().
					Spend(authCtx(), 1, "snack-pack").
					Return(nil, spendservice.ErrOutOfStock)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Limit reached",
			body: `{"item_id":"snack-pack"}`,
			prepareMock: func() {
				spendService.EXPECT().
					Spend(authCtx(), 1, "snack-pack").
					Return(nil, spendservice.ErrLimitReached)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Item not found",
			body: `{"item_id":"nope"}`,
			prepareMock: func() {
				spendService.EXPECT().
					Spend(authCtx(), 1, "nope").
					Return(nil, spendservice.ErrItemNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Invalid item cost",
			body: `{"item_id":"freebie"}`,
			prepareMock: func() {
				spendService.EXPECT().
					Spend(authCtx(), 1, "freebie").
					Return(nil, spendservice.ErrInvalidAmount)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest("POST", "/api/student/spend", bytes.NewReader([]byte(tt.body)))
			r = r.WithContext(authCtx())
			rr := httptest.NewRecorder()

			handler.Spend(rr, r)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestGetRewardsHandler(t *testing.T) {
	handler, spendService, _ := NewMock(t)

	spendService.EXPECT().ListRewards(authCtx()).Return([]domain.RewardItem{
		{ID: "snack-pack", Name: "Snack Pack", Cost: 200, Stock: 4, PerStudentLimit: 1},
	}, nil)

	r := httptest.NewRequest("GET", "/api/student/rewards", nil)
	r = r.WithContext(authCtx())
	rr := httptest.NewRecorder()

	handler.GetRewards(rr, r)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp []dto.RewardItemResponseDTO
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Len(t, resp, 1)
	assert.Equal(t, "snack-pack", resp[0].ID)
	assert.Equal(t, 200, resp[0].Cost)
}

func TestDrawHandler(t *testing.T) {
	handler, _, drawService := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful draw",
			prepareMock: func() {
				drawService.EXPECT().
					Draw(authCtx(), 1).
					Return(&drawservice.DrawResult{
						PrizeID:         "gold-sticker",
						PrizeName:       "Gold Sticker",
						Rarity:          "rare",
						RemainingPoints: 40,
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Insufficient points",
			prepareMock: func() {
				drawService.EXPECT().
					Draw(authCtx(), 1).
					Return(nil, spendservice.ErrInsufficientPoints)
			},
			expectedCode: http.StatusPaymentRequired,
		},
		{
			name: "Empty prize pool",
			prepareMock: func() {
				drawService.EXPECT().
					Draw(authCtx(), 1).
					Return(nil, drawservice.ErrNoItemsAvailable)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest("POST", "/api/student/draw", nil)
			r = r.WithContext(authCtx())
			rr := httptest.NewRecorder()

			handler.Draw(rr, r)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestGetDrawsHandler(t *testing.T) {
	handler, _, drawService := NewMock(t)

	t.Run("No draws", func(t *testing.T) {
		drawService.EXPECT().GetHistory(authCtx(), 1).Return(nil, nil)

		r := httptest.NewRequest("GET", "/api/student/draws", nil)
		r = r.WithContext(authCtx())
		rr := httptest.NewRecorder()

		handler.GetDraws(rr, r)
		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("With draws", func(t *testing.T) {
		drawService.EXPECT().GetHistory(authCtx(), 1).Return([]domain.DrawRecord{
			{ID: uuid.New(), StudentID: 1, PrizeID: "gold-sticker", PrizeName: "Gold Sticker", Rarity: "rare"},
		}, nil)

		r := httptest.NewRequest("GET", "/api/student/draws", nil)
		r = r.WithContext(authCtx())
		rr := httptest.NewRecorder()

		handler.GetDraws(rr, r)
		assert.Equal(t, http.StatusOK, rr.Code)
	})
}
