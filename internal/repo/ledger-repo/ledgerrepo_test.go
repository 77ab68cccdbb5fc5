package ledgerrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/jukuhub/studyquest/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_Append(t *testing.T) {
	repo, mock := NewMock(t)

	entryID := uuid.New()
	now := time.Now()

	tests := []struct {
		name      string
		entry     *domain.LedgerEntry
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Successfully appends entry",
			entry: &domain.LedgerEntry{
				ID:          entryID,
				StudentID:   1,
				Kind:        domain.KindHomework,
				ExpDelta:    20,
				PointsDelta: 10,
			},
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"created_at"}).AddRow(now)
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO ledger_entries (id, student_id, kind, exp_delta, points_delta, counter_deltas, item_id, reversal_of)`)).
					WithArgs(entryID, 1, domain.KindHomework, 20, 10,
						(map[string]int)(nil), (*string)(nil), (*uuid.UUID)(nil)).
					WillReturnRows(rows)
			},
			expectErr: false,
		},
		{
			name: "Database error",
			entry: &domain.LedgerEntry{
				ID:        entryID,
				StudentID: 1,
				Kind:      domain.KindHomework,
			},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO ledger_entries`)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Append(context.Background(), tt.entry)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, now, result.CreatedAt)
			}
		})
	}
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := NewMock(t)

	entryID := uuid.New()
	now := time.Now()
	columns := []string{
		"id", "student_id", "kind", "exp_delta", "points_delta",
		"counter_deltas", "item_id", "reversed", "reversal_of", "created_at",
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.LedgerEntry
	}{
		{
			name: "Valid id returns entry",
			mockSetup: func() {
				rows := pgxmock.NewRows(columns).
					AddRow(entryID, 1, domain.KindHomework, 20, 10,
						map[string]int{"homeworkCount": 1}, (*string)(nil), false, (*uuid.UUID)(nil), now)
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, student_id, kind, exp_delta, points_delta, counter_deltas, item_id, reversed, reversal_of, created_at FROM ledger_entries WHERE id = $1`)).
					WithArgs(entryID).
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.LedgerEntry{
				ID:            entryID,
				StudentID:     1,
				Kind:          domain.KindHomework,
				ExpDelta:      20,
				PointsDelta:   10,
				CounterDeltas: map[string]int{"homeworkCount": 1},
				CreatedAt:     now,
			},
		},
		{
			name: "Non-existing id returns nil",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM ledger_entries WHERE id = $1`)).
					WithArgs(entryID).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM ledger_entries WHERE id = $1`)).
					WithArgs(entryID).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetByID(context.Background(), entryID)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			if tt.result == nil {
				assert.Nil(t, result)
			} else {
				assert.NotNil(t, result)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_MarkReversed(t *testing.T) {
	repo, mock := NewMock(t)

	entryID := uuid.New()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    bool
	}{
		{
			name: "Marks entry reversed",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE ledger_entries SET reversed = TRUE WHERE id = $1 AND reversed = FALSE`)).
					WithArgs(entryID).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			result: true,
		},
		{
			name: "Already reversed loses the race",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE ledger_entries SET reversed = TRUE WHERE id = $1 AND reversed = FALSE`)).
					WithArgs(entryID).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			result: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE ledger_entries SET reversed = TRUE`)).
					WithArgs(entryID).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			ok, err := repo.MarkReversed(context.Background(), entryID)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, ok)
		})
	}
}

func TestRepository_CountSpends(t *testing.T) {
	repo, mock := NewMock(t)

	rows := pgxmock.NewRows([]string{"count"}).AddRow(2)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM ledger_entries`)).
		WithArgs(1, "snack-pack", domain.KindSpend).
		WillReturnRows(rows)

	count, err := repo.CountSpends(context.Background(), 1, "snack-pack")

	assert.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestRepository_ListByStudent(t *testing.T) {
	repo, mock := NewMock(t)

	entryID := uuid.New()
	now := time.Now()
	columns := []string{
		"id", "student_id", "kind", "exp_delta", "points_delta",
		"counter_deltas", "item_id", "reversed", "reversal_of", "created_at",
	}

	rows := pgxmock.NewRows(columns).
		AddRow(entryID, 1, domain.KindHomework, 20, 10,
			(map[string]int)(nil), (*string)(nil), false, (*uuid.UUID)(nil), now)
	mock.ExpectQuery(regexp.QuoteMeta(`FROM ledger_entries`)).
		WithArgs(1).
		WillReturnRows(rows)

	entries, err := repo.ListByStudent(context.Background(), 1)

	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, entryID, entries[0].ID)
	assert.Equal(t, domain.KindHomework, entries[0].Kind)
}
