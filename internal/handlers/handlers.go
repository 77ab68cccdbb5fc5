package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/jukuhub/studyquest/docs"
	authhandlers "github.com/jukuhub/studyquest/internal/handlers/auth"
	economyhandlers "github.com/jukuhub/studyquest/internal/handlers/economy"
	grantshandlers "github.com/jukuhub/studyquest/internal/handlers/grants"
	rankinghandlers "github.com/jukuhub/studyquest/internal/handlers/ranking"
	submissionshandlers "github.com/jukuhub/studyquest/internal/handlers/submissions"
	titleshandlers "github.com/jukuhub/studyquest/internal/handlers/titles"
	"github.com/jukuhub/studyquest/internal/service"
	"github.com/jukuhub/studyquest/pkg/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type GrantsHandler interface {
	Grant(w http.ResponseWriter, r *http.Request)
	Revoke(w http.ResponseWriter, r *http.Request)
	CloseSession(w http.ResponseWriter, r *http.Request)
	GetAccount(w http.ResponseWriter, r *http.Request)
	GetLedger(w http.ResponseWriter, r *http.Request)
}

type EconomyHandler interface {
	Spend(w http.ResponseWriter, r *http.Request)
	GetRewards(w http.ResponseWriter, r *http.Request)
	Draw(w http.ResponseWriter, r *http.Request)
	GetDraws(w http.ResponseWriter, r *http.Request)
}

type TitlesHandler interface {
	Evaluate(w http.ResponseWriter, r *http.Request)
	GetTitles(w http.ResponseWriter, r *http.Request)
	SetActive(w http.ResponseWriter, r *http.Request)
}

type RankingHandler interface {
	GetRanking(w http.ResponseWriter, r *http.Request)
}

type SubmissionsHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	GetSubmissions(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler        AuthHandler
	GrantsHandler      GrantsHandler
	EconomyHandler     EconomyHandler
	TitlesHandler      TitlesHandler
	RankingHandler     RankingHandler
	SubmissionsHandler SubmissionsHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:        authhandlers.New(s.AuthService),
		GrantsHandler:      grantshandlers.New(s.LedgerService),
		EconomyHandler:     economyhandlers.New(s.SpendService, s.DrawService),
		TitlesHandler:      titleshandlers.New(s.TitleService),
		RankingHandler:     rankinghandlers.New(s.RankService),
		SubmissionsHandler: submissionshandlers.New(s.SubmissionService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Route("/user", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)
		})
		r.Get("/ranking", h.RankingHandler.GetRanking)

		r.Route("/student", func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Route("/grants", func(r chi.Router) {
				r.Post("/", h.GrantsHandler.Grant)
				r.Post("/{id}/revoke", h.GrantsHandler.Revoke)
			})
			r.Post("/sessions/close", h.GrantsHandler.CloseSession)
			r.Get("/account", h.GrantsHandler.GetAccount)
			r.Get("/ledger", h.GrantsHandler.GetLedger)

			r.Post("/spend", h.EconomyHandler.Spend)
			r.Get("/rewards", h.EconomyHandler.GetRewards)
			r.Post("/draw", h.EconomyHandler.Draw)
			r.Get("/draws", h.EconomyHandler.GetDraws)

			r.Route("/titles", func(r chi.Router) {
				r.Get("/", h.TitlesHandler.GetTitles)
				r.Post("/evaluate", h.TitlesHandler.Evaluate)
				r.Put("/active", h.TitlesHandler.SetActive)
			})
			r.Route("/submissions", func(r chi.Router) {
				r.Post("/", h.SubmissionsHandler.Submit)
				r.Get("/", h.SubmissionsHandler.GetSubmissions)
			})
		})
	})

	return r
}
