package service

import (
	"math/rand"
	"time"

	"github.com/jukuhub/studyquest/internal/handlers/auth"
	"github.com/jukuhub/studyquest/internal/handlers/economy"
	"github.com/jukuhub/studyquest/internal/handlers/grants"
	"github.com/jukuhub/studyquest/internal/handlers/ranking"
	"github.com/jukuhub/studyquest/internal/handlers/submissions"
	"github.com/jukuhub/studyquest/internal/handlers/titles"

	pkgauth "github.com/jukuhub/studyquest/pkg/auth"

	"github.com/jukuhub/studyquest/internal/pg"
	"github.com/jukuhub/studyquest/internal/repo"
	"github.com/jukuhub/studyquest/internal/service/authservice"
	"github.com/jukuhub/studyquest/internal/service/drawservice"
	"github.com/jukuhub/studyquest/internal/service/ledgerservice"
	"github.com/jukuhub/studyquest/internal/service/rankservice"
	"github.com/jukuhub/studyquest/internal/service/spendservice"
	"github.com/jukuhub/studyquest/internal/service/submissionservice"
	"github.com/jukuhub/studyquest/internal/service/titleservice"
)

type Services struct {
	AuthService       auth.Service
	LedgerService     grants.Service
	SpendService      economy.SpendService
	DrawService       economy.DrawService
	TitleService      titles.Service
	RankService       ranking.Service
	SubmissionService submissions.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager, drawCost int) *Services {
	titleService := titleservice.New(repo.TitleRepo, repo.StudentRepo)
	rankService := rankservice.New(repo.RankRepo)
	ledgerService := ledgerservice.New(repo.StudentRepo, repo.LedgerRepo, titleService, rankService, txManager)
	spendService := spendservice.New(repo.StudentRepo, repo.RewardRepo, repo.LedgerRepo, txManager)
	drawService := drawservice.New(repo.DrawRepo, spendService, drawCost, rand.New(rand.NewSource(time.Now().UnixNano())))
	authService := authservice.New(repo.StudentRepo, &pkgauth.HashService{}, &pkgauth.JWTService{})
	submissionService := submissionservice.New(repo.SubmissionRepo)

	return &Services{
		AuthService:       authService,
		LedgerService:     ledgerService,
		SpendService:      spendService,
		DrawService:       drawService,
		TitleService:      titleService,
		RankService:       rankService,
		SubmissionService: submissionService,
	}
}
