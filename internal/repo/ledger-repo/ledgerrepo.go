package ledgerrepo

import (
	"context"

	"github.com/google/uuid"
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

const entryColumns = `id, student_id, kind, exp_delta, points_delta, counter_deltas, item_id, reversed, reversal_of, created_at`

func (r *Repository) Append(ctx context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error) {
	query := `
		INSERT INTO ledger_entries (id, student_id, kind, exp_delta, points_delta, counter_deltas, item_id, reversal_of)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at
	`
	err := r.db.QueryRow(ctx, query,
		entry.ID, entry.StudentID, entry.Kind, entry.ExpDelta, entry.PointsDelta,
		entry.CounterDeltas, entry.ItemID, entry.ReversalOf).Scan(&entry.CreatedAt)
	if err != nil {
		zap.L().Error("can't append ledger entry", zap.Error(err))
		return nil, err
	}
	return entry, nil
}

func (r *Repository) GetByID(ctx context.Context, entryID uuid.UUID) (*domain.LedgerEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM ledger_entries WHERE id = $1`
	var entry domain.LedgerEntry
	err := r.db.QueryRow(ctx, query, entryID).Scan(
		&entry.ID, &entry.StudentID, &entry.Kind, &entry.ExpDelta, &entry.PointsDelta,
		&entry.CounterDeltas, &entry.ItemID, &entry.Reversed, &entry.ReversalOf, &entry.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get ledger entry", zap.Error(err))
		return nil, err
	}
	return &entry, nil
}

// MarkReversed flips the reversed flag exactly once; the WHERE clause makes
// a concurrent double-revoke lose the race inside its transaction.
func (r *Repository) MarkReversed(ctx context.Context, entryID uuid.UUID) (bool, error) {
	query := `UPDATE ledger_entries SET reversed = TRUE WHERE id = $1 AND reversed = FALSE`
	tag, err := r.db.Exec(ctx, query, entryID)
	if err != nil {
		zap.L().Error("failed to mark ledger entry reversed", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// CountSpends returns how many successful spends the student has made on the
// item, derived from the audit log.
func (r *Repository) CountSpends(ctx context.Context, studentID int, itemID string) (int, error) {
	query := `
		SELECT count(*) FROM ledger_entries
		WHERE student_id = $1 AND item_id = $2 AND kind = $3 AND reversed = FALSE
	`
	var count int
	err := r.db.QueryRow(ctx, query, studentID, itemID, domain.KindSpend).Scan(&count)
	if err != nil {
		zap.L().Error("failed to count spends", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) ListByStudent(ctx context.Context, studentID int) ([]domain.LedgerEntry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM ledger_entries
		WHERE student_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		zap.L().Error("failed to fetch ledger entries", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.LedgerEntry
	for rows.Next() {
		var entry domain.LedgerEntry
		err := rows.Scan(
			&entry.ID, &entry.StudentID, &entry.Kind, &entry.ExpDelta, &entry.PointsDelta,
			&entry.CounterDeltas, &entry.ItemID, &entry.Reversed, &entry.ReversalOf, &entry.CreatedAt,
		)
		if err != nil {
			zap.L().Error("failed to scan ledger entry row", zap.Error(err))
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

func (r *Repository) AddLevelHistory(ctx context.Context, history *domain.LevelHistory) error {
	query := `
		INSERT INTO level_history (student_id, old_level, new_level, gained_exp, reason)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		history.StudentID, history.OldLevel, history.NewLevel, history.GainedExp, history.Reason).Scan(&history.ID)
	if err != nil {
		zap.L().Error("can't save level history", zap.Error(err))
		return err
	}
	return nil
}
