package rankrepo

import (
	"context"
	"strconv"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const rankingKey = "ranking"

// levelScale folds (level, experience) into one sortable ZSET score.
// Experience inside a level never reaches the scale (cap is 100+998*10).
const levelScale = 1_000_000

type Entry struct {
	StudentID  int
	Level      int
	Experience int
	Rank       int64
}

type Repository struct {
	client *redis.Client
}

func New(client *redis.Client) *Repository {
	return &Repository{
		client: client,
	}
}

func Score(level, experience int) float64 {
	return float64(level*levelScale + experience)
}

func (r *Repository) UpdateScore(ctx context.Context, studentID, level, experience int) error {
	err := r.client.ZAdd(ctx, rankingKey, redis.Z{
		Score:  Score(level, experience),
		Member: strconv.Itoa(studentID),
	}).Err()
	if err != nil {
		zap.L().Error("failed to update ranking score", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Top(ctx context.Context, n int64) ([]Entry, error) {
	zs, err := r.client.ZRevRangeWithScores(ctx, rankingKey, 0, n-1).Result()
	if err != nil {
		zap.L().Error("failed to fetch ranking", zap.Error(err))
		return nil, err
	}

	entries := make([]Entry, 0, len(zs))
	for i, z := range zs {
		member, ok := z.Member.(string)
		if !ok {
			continue
		}
		studentID, err := strconv.Atoi(member)
		if err != nil {
			continue
		}
		score := int(z.Score)
		entries = append(entries, Entry{
			StudentID:  studentID,
			Level:      score / levelScale,
			Experience: score % levelScale,
			Rank:       int64(i) + 1,
		})
	}

	return entries, nil
}

// Rank returns the 1-based position of the student, or 0 when unranked.
func (r *Repository) Rank(ctx context.Context, studentID int) (int64, error) {
	rank, err := r.client.ZRevRank(ctx, rankingKey, strconv.Itoa(studentID)).Result()
	if err != nil {
		if err == redis.Nil {
			return 0, nil
		}
		zap.L().Error("failed to fetch student rank", zap.Error(err))
		return 0, err
	}
	return rank + 1, nil
}
