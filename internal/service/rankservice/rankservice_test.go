package rankservice

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	rankrepo "github.com/jukuhub/studyquest/internal/repo/rank-repo"
)

func TestTopDefaultsToTen(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	rank := NewMockRankRepo(ctrl)
	service := New(rank)

	entries := []rankrepo.Entry{{StudentID: 1, Level: 3, Experience: 40, Rank: 1}}
	rank.EXPECT().Top(ctx, int64(10)).Return(entries, nil)

	got, err := service.Top(ctx, 0)
	assert.NoError(t, err)
	assert.Equal(t, entries, got)
}

func TestRankPassthrough(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	rank := NewMockRankRepo(ctrl)
	service := New(rank)

	rank.EXPECT().Rank(ctx, 7).Return(int64(3), nil)

	got, err := service.Rank(ctx, 7)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), got)
}
