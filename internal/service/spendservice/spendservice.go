package spendservice

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jukuhub/studyquest/internal/domain"
	"github.com/jukuhub/studyquest/internal/pg"
)

type StudentRepo interface {
	GetByID(ctx context.Context, studentID int) (*domain.Student, error)
	Update(ctx context.Context, student *domain.Student) (*domain.Student, error)
}

type RewardRepo interface {
	GetByID(ctx context.Context, itemID string) (*domain.RewardItem, error)
	List(ctx context.Context) ([]domain.RewardItem, error)
	DecrementStock(ctx context.Context, itemID string) (int, error)
}

type LedgerRepo interface {
	Append(ctx context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error)
	CountSpends(ctx context.Context, studentID int, itemID string) (int, error)
}

var (
	ErrInsufficientPoints = errors.New("insufficient points")
	ErrOutOfStock         = errors.New("item out of stock")
	ErrLimitReached       = errors.New("per-student limit reached")
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrItemNotFound       = errors.New("item not found")
	ErrStudentNotFound    = errors.New("student not found")
)

type Service struct {
	students  StudentRepo
	rewards   RewardRepo
	ledger    LedgerRepo
	txManager pg.TXManager
}

func New(students StudentRepo, rewards RewardRepo, ledger LedgerRepo, txManager pg.TXManager) *Service {
	return &Service{
		students:  students,
		rewards:   rewards,
		ledger:    ledger,
		txManager: txManager,
	}
}

type SpendResult struct {
	EntryID         uuid.UUID
	RemainingPoints int
	RemainingStock  int
}

// Spend redeems one unit of the item. All reads and writes happen inside one
// serialized transaction, so concurrent spends can neither overdraw points
// nor drive stock negative. Validation order is fixed: points, stock, limit.
func (s *Service) Spend(ctx context.Context, studentID int, itemID string) (*SpendResult, error) {
	var result *SpendResult
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		item, err := s.rewards.GetByID(ctx, itemID)
		if err != nil {
			return err
		}
		if item == nil {
			return ErrItemNotFound
		}
		if item.Cost <= 0 {
			zap.L().Error("reward item has non-positive cost", zap.String("itemID", itemID))
			return ErrInvalidAmount
		}

		student, err := s.students.GetByID(ctx, studentID)
		if err != nil {
			return err
		}
		if student == nil {
			return ErrStudentNotFound
		}

		if student.Points < item.Cost {
			return ErrInsufficientPoints
		}
		if item.Stock != domain.UnlimitedStock && item.Stock <= 0 {
			return ErrOutOfStock
		}
		if item.PerStudentLimit > 0 {
			used, err := s.ledger.CountSpends(ctx, studentID, itemID)
			if err != nil {
				return err
			}
			if used >= item.PerStudentLimit {
				return ErrLimitReached
			}
		}

		student.Points -= item.Cost
		if student.Counters == nil {
			student.Counters = map[string]int{}
		}
		student.Counters[domain.CounterRewards]++
		if _, err := s.students.Update(ctx, student); err != nil {
			return err
		}

		remainingStock := domain.UnlimitedStock
		if item.Stock > 0 {
			remainingStock, err = s.rewards.DecrementStock(ctx, itemID)
			if err != nil {
				return err
			}
		}

		entry := &domain.LedgerEntry{
			ID:          uuid.New(),
			StudentID:   studentID,
			Kind:        domain.KindSpend,
			PointsDelta: -item.Cost,
			CounterDeltas: map[string]int{
				domain.CounterRewards: 1,
			},
			ItemID: &item.ID,
		}
		if _, err := s.ledger.Append(ctx, entry); err != nil {
			return err
		}

		result = &SpendResult{
			EntryID:         entry.ID,
			RemainingPoints: student.Points,
			RemainingStock:  remainingStock,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

type ChargeResult struct {
	EntryID         uuid.UUID
	RemainingPoints int
}

// Charge deducts a fixed cost without an item: the draw engine's virtual
// unlimited-stock purchase.
func (s *Service) Charge(ctx context.Context, studentID int, cost int, kind string) (*ChargeResult, error) {
	if cost <= 0 {
		return nil, ErrInvalidAmount
	}

	var result *ChargeResult
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		student, err := s.students.GetByID(ctx, studentID)
		if err != nil {
			return err
		}
		if student == nil {
			return ErrStudentNotFound
		}
		if student.Points < cost {
			return ErrInsufficientPoints
		}

		student.Points -= cost
		if _, err := s.students.Update(ctx, student); err != nil {
			return err
		}

		entry := &domain.LedgerEntry{
			ID:          uuid.New(),
			StudentID:   studentID,
			Kind:        kind,
			PointsDelta: -cost,
		}
		if _, err := s.ledger.Append(ctx, entry); err != nil {
			return err
		}

		result = &ChargeResult{
			EntryID:         entry.ID,
			RemainingPoints: student.Points,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *Service) ListRewards(ctx context.Context) ([]domain.RewardItem, error) {
	items, err := s.rewards.List(ctx)
	if err != nil {
		zap.L().Error("failed to list rewards", zap.Error(err))
		return nil, err
	}
	return items, nil
}
