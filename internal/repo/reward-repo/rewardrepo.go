package rewardrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/jukuhub/studyquest/internal/domain"
	"github.com/jukuhub/studyquest/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) GetByID(ctx context.Context, itemID string) (*domain.RewardItem, error) {
	query := `
		SELECT id, name, cost, stock, per_student_limit, category
		FROM reward_items
		WHERE id = $1
	`
	var item domain.RewardItem
	err := r.db.QueryRow(ctx, query, itemID).Scan(
		&item.ID, &item.Name, &item.Cost, &item.Stock, &item.PerStudentLimit, &item.Category)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get reward item", zap.Error(err))
		return nil, err
	}
	return &item, nil
}

func (r *Repository) List(ctx context.Context) ([]domain.RewardItem, error) {
	query := `
		SELECT id, name, cost, stock, per_student_limit, category
		FROM reward_items
		ORDER BY cost
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("failed to fetch reward items", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var items []domain.RewardItem
	for rows.Next() {
		var item domain.RewardItem
		err := rows.Scan(&item.ID, &item.Name, &item.Cost, &item.Stock, &item.PerStudentLimit, &item.Category)
		if err != nil {
			zap.L().Error("failed to scan reward item row", zap.Error(err))
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

// DecrementStock takes one unit off a finite stock. The stock > 0 guard keeps
// a concurrent spend from driving it negative; unlimited items (-1) are never
// touched. Returns the remaining stock.
func (r *Repository) DecrementStock(ctx context.Context, itemID string) (int, error) {
	query := `
		UPDATE reward_items
		SET stock = stock - 1
		WHERE id = $1 AND stock > 0
		RETURNING stock
	`
	var remaining int
	err := r.db.QueryRow(ctx, query, itemID).Scan(&remaining)
	if err != nil {
		zap.L().Error("failed to decrement reward stock", zap.Error(err))
		return 0, err
	}
	return remaining, nil
}
