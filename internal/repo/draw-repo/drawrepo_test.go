package drawrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
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

func TestRepository_ListEligible(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expected  []domain.DrawItem
		expectErr bool
	}{
		{
			name: "Returns eligible prizes",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "name", "weight", "stock", "rarity"}).
					AddRow("sticker", "Sticker", 60, -1, "normal").
					AddRow("golden-ticket", "Golden ticket", 1, 1, "ur")
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, weight, stock, rarity`)).
					WillReturnRows(rows)
			},
			expected: []domain.DrawItem{
				{ID: "sticker", Name: "Sticker", Weight: 60, Stock: -1, Rarity: "normal"},
				{ID: "golden-ticket", Name: "Golden ticket", Weight: 1, Stock: 1, Rarity: "ur"},
			},
		},
		{
			name: "Empty pool",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "name", "weight", "stock", "rarity"})
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, weight, stock, rarity`)).
					WillReturnRows(rows)
			},
			expected: nil,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, weight, stock, rarity`)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			items, err := repo.ListEligible(context.Background())

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, items)
			}
		})
	}
}

func TestRepository_DecrementStock(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expected  bool
		expectErr bool
	}{
		{
			name: "Successfully decrements stock",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE draw_items SET stock = stock - 1 WHERE id = $1 AND stock > 0`)).
					WithArgs("golden-ticket").
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			expected: true,
		},
		{
			name: "Stock already empty",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE draw_items SET stock = stock - 1 WHERE id = $1 AND stock > 0`)).
					WithArgs("golden-ticket").
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			expected: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE draw_items SET stock = stock - 1 WHERE id = $1 AND stock > 0`)).
					WithArgs("golden-ticket").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			ok, err := repo.DecrementStock(context.Background(), "golden-ticket")

			if tt.expectErr {
				assert.Error(t, err)
				assert.False(t, ok)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, ok)
			}
		})
	}
}

func TestRepository_CreateRecord(t *testing.T) {
	repo, mock := NewMock(t)

	recordID := uuid.New()
	chargeID := uuid.New()
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Successfully creates record",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"created_at"}).AddRow(now)
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO draw_records (id, student_id, prize_id, prize_name, rarity, charge_id)`)).
					WithArgs(recordID, 1, "figure", "Figure", "sr", chargeID).
					WillReturnRows(rows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO draw_records`)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			record := &domain.DrawRecord{
				ID: recordID, StudentID: 1, PrizeID: "figure", PrizeName: "Figure", Rarity: "sr", ChargeID: chargeID,
			}
			result, err := repo.CreateRecord(context.Background(), record)

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

func TestRepository_ListRecords(t *testing.T) {
	repo, mock := NewMock(t)

	recordID := uuid.New()
	chargeID := uuid.New()
	now := time.Now()

	rows := pgxmock.NewRows([]string{"id", "student_id", "prize_id", "prize_name", "rarity", "charge_id", "created_at"}).
		AddRow(recordID, 1, "sticker", "Sticker", "normal", chargeID, now)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, student_id, prize_id, prize_name, rarity, charge_id, created_at`)).
		WithArgs(1).
		WillReturnRows(rows)

	records, err := repo.ListRecords(context.Background(), 1)

	assert.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, "sticker", records[0].PrizeID)
	assert.Equal(t, chargeID, records[0].ChargeID)
}
