package repo

import (
	"github.com/redis/go-redis/v9"

	"github.com/jukuhub/studyquest/internal/pg"
	drawrepo "github.com/jukuhub/studyquest/internal/repo/draw-repo"
	ledgerrepo "github.com/jukuhub/studyquest/internal/repo/ledger-repo"
	rankrepo "github.com/jukuhub/studyquest/internal/repo/rank-repo"
	rewardrepo "github.com/jukuhub/studyquest/internal/repo/reward-repo"
	studentrepo "github.com/jukuhub/studyquest/internal/repo/student-repo"
	submissionrepo "github.com/jukuhub/studyquest/internal/repo/submission-repo"
	titlerepo "github.com/jukuhub/studyquest/internal/repo/title-repo"
)

// Repositories holds every storage adapter. The student repo is shared: the
// auth, ledger, spend and title services all read the same account rows.
type Repositories struct {
	StudentRepo    *studentrepo.Repository
	LedgerRepo     *ledgerrepo.Repository
	RewardRepo     *rewardrepo.Repository
	DrawRepo       *drawrepo.Repository
	TitleRepo      *titlerepo.Repository
	SubmissionRepo *submissionrepo.Repository
	RankRepo       *rankrepo.Repository
}

func New(conn pg.Database, redisClient *redis.Client) *Repositories {
	return &Repositories{
		StudentRepo:    studentrepo.New(conn),
		LedgerRepo:     ledgerrepo.New(conn),
		RewardRepo:     rewardrepo.New(conn),
		DrawRepo:       drawrepo.New(conn),
		TitleRepo:      titlerepo.New(conn),
		SubmissionRepo: submissionrepo.New(conn),
		RankRepo:       rankrepo.New(redisClient),
	}
}
