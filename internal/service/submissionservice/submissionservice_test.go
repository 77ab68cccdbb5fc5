package submissionservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/jukuhub/studyquest/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	return New(repo), repo
}

func TestSubmit(t *testing.T) {
	ctx := context.Background()
	service, repo := NewMock(t)

	tests := []struct {
		name          string
		score         int
		prepareMock   func()
		expectedError error
	}{
		{
			name:  "Successful submission",
			score: 85,
			prepareMock: func() {
				repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
					func(_ context.Context, s *domain.ScoreSubmission) (*domain.ScoreSubmission, error) {
						s.ID = 1
						s.Status = domain.SubmissionNew
						return s, nil
					})
			},
			expectedError: nil,
		},
		{
			name:          "Negative score",
			score:         -1,
			prepareMock:   func() {},
			expectedError: ErrInvalidScore,
		},
		{
			name:          "Score over limit",
			score:         101,
			prepareMock:   func() {},
			expectedError: ErrInvalidScore,
		},
		{
			name:  "Repo error",
			score: 50,
			prepareMock: func() {
				repo.EXPECT().Create(ctx, gomock.Any()).Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			submission, err := service.Submit(ctx, 1, "math", tt.score)
			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
				assert.Nil(t, submission)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, domain.SubmissionNew, submission.Status)
			assert.Equal(t, "math", submission.Subject)
		})
	}
}

func TestGetSubmissions(t *testing.T) {
	ctx := context.Background()
	service, repo := NewMock(t)

	submissions := []domain.ScoreSubmission{
		{ID: 1, StudentID: 1, Subject: "math", Score: 85, Status: domain.SubmissionProcessed},
	}
	repo.EXPECT().ListByStudent(ctx, 1).Return(submissions, nil)

	got, err := service.GetSubmissions(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, submissions, got)
}
