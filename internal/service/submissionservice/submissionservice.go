package submissionservice

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/jukuhub/studyquest/internal/domain"
)

type Repo interface {
	Create(ctx context.Context, submission *domain.ScoreSubmission) (*domain.ScoreSubmission, error)
	ListByStudent(ctx context.Context, studentID int) ([]domain.ScoreSubmission, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

var ErrInvalidScore = errors.New("score must be between 0 and 100")

// Submit registers a score claim for later judging. The reward is not
// applied here: the approval processor asks the judge system for a verdict
// and grants exp and points only on approval.
func (s *Service) Submit(ctx context.Context, studentID int, subject string, score int) (*domain.ScoreSubmission, error) {
	if score < 0 || score > 100 {
		return nil, ErrInvalidScore
	}

	submission := &domain.ScoreSubmission{
		StudentID: studentID,
		Subject:   subject,
		Score:     score,
	}
	created, err := s.repo.Create(ctx, submission)
	if err != nil {
		zap.L().Error("can't save submission: ", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *Service) GetSubmissions(ctx context.Context, studentID int) ([]domain.ScoreSubmission, error) {
	submissions, err := s.repo.ListByStudent(ctx, studentID)
	if err != nil {
		zap.L().Error("failed to get submissions", zap.Error(err))
		return nil, err
	}
	return submissions, nil
}
