package rankservice

import (
	"context"

	rankrepo "github.com/jukuhub/studyquest/internal/repo/rank-repo"
)

type RankRepo interface {
	UpdateScore(ctx context.Context, studentID, level, experience int) error
	Top(ctx context.Context, n int64) ([]rankrepo.Entry, error)
	Rank(ctx context.Context, studentID int) (int64, error)
}

type Service struct {
	rank RankRepo
}

func New(rank RankRepo) *Service {
	return &Service{
		rank: rank,
	}
}

func (s *Service) UpdateScore(ctx context.Context, studentID, level, experience int) error {
	return s.rank.UpdateScore(ctx, studentID, level, experience)
}

func (s *Service) Top(ctx context.Context, n int64) ([]rankrepo.Entry, error) {
	if n <= 0 {
		n = 10
	}
	return s.rank.Top(ctx, n)
}

func (s *Service) Rank(ctx context.Context, studentID int) (int64, error) {
	return s.rank.Rank(ctx, studentID)
}
