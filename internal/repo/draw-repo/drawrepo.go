package drawrepo

import (
	"context"

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

// ListEligible returns prizes that can actually be drawn: positive weight and
// either unlimited or remaining stock. Ordered by id so the cumulative-weight
// walk is deterministic under a seeded source.
func (r *Repository) ListEligible(ctx context.Context) ([]domain.DrawItem, error) {
	query := `
		SELECT id, name, weight, stock, rarity
		FROM draw_items
		WHERE weight > 0 AND (stock = -1 OR stock > 0)
		ORDER BY id
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("failed to fetch draw items", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var items []domain.DrawItem
	for rows.Next() {
		var item domain.DrawItem
		err := rows.Scan(&item.ID, &item.Name, &item.Weight, &item.Stock, &item.Rarity)
		if err != nil {
			zap.L().Error("failed to scan draw item row", zap.Error(err))
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

// DecrementStock is a compare-and-decrement clamped at zero. A false return
// means another draw emptied the stock first; the prize is still handed out,
// the displayed stock just under-counts until the next read.
func (r *Repository) DecrementStock(ctx context.Context, itemID string) (bool, error) {
	query := `UPDATE draw_items SET stock = stock - 1 WHERE id = $1 AND stock > 0`
	tag, err := r.db.Exec(ctx, query, itemID)
	if err != nil {
		zap.L().Error("failed to decrement draw stock", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) CreateRecord(ctx context.Context, record *domain.DrawRecord) (*domain.DrawRecord, error) {
	query := `
		INSERT INTO draw_records (id, student_id, prize_id, prize_name, rarity, charge_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`
	err := r.db.QueryRow(ctx, query,
		record.ID, record.StudentID, record.PrizeID, record.PrizeName, record.Rarity, record.ChargeID).Scan(&record.CreatedAt)
	if err != nil {
		zap.L().Error("can't save draw record", zap.Error(err))
		return nil, err
	}
	return record, nil
}

func (r *Repository) ListRecords(ctx context.Context, studentID int) ([]domain.DrawRecord, error) {
	query := `
		SELECT id, student_id, prize_id, prize_name, rarity, charge_id, created_at
		FROM draw_records
		WHERE student_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		zap.L().Error("failed to fetch draw records", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var records []domain.DrawRecord
	for rows.Next() {
		var record domain.DrawRecord
		err := rows.Scan(&record.ID, &record.StudentID, &record.PrizeID, &record.PrizeName,
			&record.Rarity, &record.ChargeID, &record.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan draw record row", zap.Error(err))
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}
