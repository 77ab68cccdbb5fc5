package spendservice

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/jukuhub/studyquest/internal/domain"
	"github.com/jukuhub/studyquest/internal/pg"
)

type mocks struct {
	students *MockStudentRepo
	rewards  *MockRewardRepo
	ledger   *MockLedgerRepo
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		students: NewMockStudentRepo(ctrl),
		rewards:  NewMockRewardRepo(ctrl),
		ledger:   NewMockLedgerRepo(ctrl),
	}
	txManager := pg.NewMockTXManager(ctrl)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		}).AnyTimes()
	service := New(m.students, m.rewards, m.ledger, txManager)
	defer ctrl.Finish()
	return service, m
}

func item(cost, stock, limit int) *domain.RewardItem {
	return &domain.RewardItem{
		ID:              "snack-chocolate",
		Name:            "Chocolate bar",
		Cost:            cost,
		Stock:           stock,
		PerStudentLimit: limit,
	}
}

func student(points int) *domain.Student {
	return &domain.Student{
		ID:       1,
		Login:    "hanako",
		Level:    1,
		Points:   points,
		Counters: map[string]int{},
	}
}

func TestSpend(t *testing.T) {
	tests := []struct {
		name          string
		item          *domain.RewardItem
		student       *domain.Student
		usedCount     int
		expectCommit  bool
		expectedError error
		expectedStock int
	}{
		{
			name:          "Successful spend with finite stock",
			item:          item(100, 3, 0),
			student:       student(250),
			expectCommit:  true,
			expectedStock: 2,
		},
		{
			name:          "Successful spend with unlimited stock",
			item:          item(100, domain.UnlimitedStock, 0),
			student:       student(250),
			expectCommit:  true,
			expectedStock: domain.UnlimitedStock,
		},
		{
			name:          "Insufficient points",
			item:          item(100, 3, 0),
			student:       student(99),
			expectedError: ErrInsufficientPoints,
		},
		{
			name:          "Out of stock",
			item:          item(100, 0, 0),
			student:       student(250),
			expectedError: ErrOutOfStock,
		},
		{
			name:          "Per-student limit reached",
			item:          item(100, 3, 2),
			student:       student(250),
			usedCount:     2,
			expectedError: ErrLimitReached,
		},
		{
			name:          "Limit not yet reached",
			item:          item(100, 3, 2),
			student:       student(250),
			usedCount:     1,
			expectCommit:  true,
			expectedStock: 2,
		},
		{
			name:          "Non-positive cost is a config error",
			item:          item(0, 3, 0),
			student:       student(250),
			expectedError: ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)

			m.rewards.EXPECT().GetByID(gomock.Any(), "snack-chocolate").Return(tt.item, nil)
			if tt.expectedError != ErrInvalidAmount {
				m.students.EXPECT().GetByID(gomock.Any(), 1).Return(tt.student, nil)
			}
			if tt.item.PerStudentLimit > 0 && tt.expectedError != ErrInsufficientPoints {
				m.ledger.EXPECT().CountSpends(gomock.Any(), 1, "snack-chocolate").Return(tt.usedCount, nil)
			}
			if tt.expectCommit {
				prevPoints := tt.student.Points
				m.students.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, s *domain.Student) (*domain.Student, error) {
						assert.Equal(t, prevPoints-tt.item.Cost, s.Points)
						assert.Equal(t, 1, s.Counters[domain.CounterRewards])
						return s, nil
					})
				if tt.item.Stock > 0 {
					m.rewards.EXPECT().DecrementStock(gomock.Any(), "snack-chocolate").Return(tt.item.Stock-1, nil)
				}
				m.ledger.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error) {
						assert.Equal(t, domain.KindSpend, entry.Kind)
						assert.Equal(t, -tt.item.Cost, entry.PointsDelta)
						return entry, nil
					})
			}

			result, err := service.Spend(context.Background(), 1, "snack-chocolate")

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.student.Points, result.RemainingPoints)
				assert.Equal(t, tt.expectedStock, result.RemainingStock)
			}
		})
	}
}

func TestSpendItemNotFound(t *testing.T) {
	service, m := NewMock(t)

	m.rewards.EXPECT().GetByID(gomock.Any(), "missing").Return(nil, nil)

	result, err := service.Spend(context.Background(), 1, "missing")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestCharge(t *testing.T) {
	tests := []struct {
		name          string
		cost          int
		points        int
		expectedError error
	}{
		{
			name:   "Successful charge",
			cost:   200,
			points: 350,
		},
		{
			name:          "Insufficient points",
			cost:          200,
			points:        150,
			expectedError: ErrInsufficientPoints,
		},
		{
			name:          "Non-positive cost",
			cost:          0,
			points:        350,
			expectedError: ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)

			if tt.expectedError != ErrInvalidAmount {
				m.students.EXPECT().GetByID(gomock.Any(), 1).Return(student(tt.points), nil)
			}
			if tt.expectedError == nil {
				m.students.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, s *domain.Student) (*domain.Student, error) {
						return s, nil
					})
				m.ledger.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error) {
						assert.Equal(t, domain.KindDrawCharge, entry.Kind)
						assert.Equal(t, -tt.cost, entry.PointsDelta)
						return entry, nil
					})
			}

			result, err := service.Charge(context.Background(), 1, tt.cost, domain.KindDrawCharge)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.points-tt.cost, result.RemainingPoints)
			}
		})
	}
}
