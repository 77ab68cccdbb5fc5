package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	_ "github.com/jukuhub/studyquest/docs"
	authhandlers "github.com/jukuhub/studyquest/internal/handlers/auth"
	economyhandlers "github.com/jukuhub/studyquest/internal/handlers/economy"
	grantshandlers "github.com/jukuhub/studyquest/internal/handlers/grants"
	rankinghandlers "github.com/jukuhub/studyquest/internal/handlers/ranking"
	submissionshandlers "github.com/jukuhub/studyquest/internal/handlers/submissions"
	titleshandlers "github.com/jukuhub/studyquest/internal/handlers/titles"
	"github.com/jukuhub/studyquest/internal/service"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		AuthService:       authhandlers.NewMockService(ctrl),
		LedgerService:     grantshandlers.NewMockService(ctrl),
		SpendService:      economyhandlers.NewMockSpendService(ctrl),
		DrawService:       economyhandlers.NewMockDrawService(ctrl),
		TitleService:      titleshandlers.NewMockService(ctrl),
		RankService:       rankinghandlers.NewMockService(ctrl),
		SubmissionService: submissionshandlers.NewMockService(ctrl),
	}

	h := New(services)
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockGrantsHandler := NewMockGrantsHandler(ctrl)
	mockEconomyHandler := NewMockEconomyHandler(ctrl)
	mockTitlesHandler := NewMockTitlesHandler(ctrl)
	mockRankingHandler := NewMockRankingHandler(ctrl)
	mockSubmissionsHandler := NewMockSubmissionsHandler(ctrl)

	mockAuthHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockRankingHandler.EXPECT().GetRanking(gomock.Any(), gomock.Any()).AnyTimes()
	mockGrantsHandler.EXPECT().Grant(gomock.Any(), gomock.Any()).AnyTimes()
	mockGrantsHandler.EXPECT().Revoke(gomock.Any(), gomock.Any()).AnyTimes()
	mockGrantsHandler.EXPECT().CloseSession(gomock.Any(), gomock.Any()).AnyTimes()
	mockGrantsHandler.EXPECT().GetAccount(gomock.Any(), gomock.Any()).AnyTimes()
	mockGrantsHandler.EXPECT().GetLedger(gomock.Any(), gomock.Any()).AnyTimes()
	mockEconomyHandler.EXPECT().Spend(gomock.Any(), gomock.Any()).AnyTimes()
	mockEconomyHandler.EXPECT().GetRewards(gomock.Any(), gomock.Any()).AnyTimes()
	mockEconomyHandler.EXPECT().Draw(gomock.Any(), gomock.Any()).AnyTimes()
	mockEconomyHandler.EXPECT().GetDraws(gomock.Any(), gomock.Any()).AnyTimes()
	mockTitlesHandler.EXPECT().GetTitles(gomock.Any(), gomock.Any()).AnyTimes()
	mockTitlesHandler.EXPECT().Evaluate(gomock.Any(), gomock.Any()).AnyTimes()
	mockTitlesHandler.EXPECT().SetActive(gomock.Any(), gomock.Any()).AnyTimes()
	mockSubmissionsHandler.EXPECT().Submit(gomock.Any(), gomock.Any()).AnyTimes()
	mockSubmissionsHandler.EXPECT().GetSubmissions(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		AuthHandler:        mockAuthHandler,
		GrantsHandler:      mockGrantsHandler,
		EconomyHandler:     mockEconomyHandler,
		TitlesHandler:      mockTitlesHandler,
		RankingHandler:     mockRankingHandler,
		SubmissionsHandler: mockSubmissionsHandler,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/user/register", http.StatusOK},
		{"POST", "/api/user/login", http.StatusOK},
		{"GET", "/api/ranking", http.StatusOK},
		{"POST", "/api/student/grants", http.StatusUnauthorized},
		{"POST", "/api/student/sessions/close", http.StatusUnauthorized},
		{"GET", "/api/student/account", http.StatusUnauthorized},
		{"GET", "/api/student/ledger", http.StatusUnauthorized},
		{"POST", "/api/student/spend", http.StatusUnauthorized},
		{"GET", "/api/student/rewards", http.StatusUnauthorized},
		{"POST", "/api/student/draw", http.StatusUnauthorized},
		{"GET", "/api/student/draws", http.StatusUnauthorized},
		{"GET", "/api/student/titles", http.StatusUnauthorized},
		{"POST", "/api/student/titles/evaluate", http.StatusUnauthorized},
		{"PUT", "/api/student/titles/active", http.StatusUnauthorized},
		{"POST", "/api/student/submissions", http.StatusUnauthorized},
		{"GET", "/api/student/submissions", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
