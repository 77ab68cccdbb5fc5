package drawservice

import (
	"context"
	"errors"
	"math/rand"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jukuhub/studyquest/internal/domain"
	"github.com/jukuhub/studyquest/internal/service/spendservice"
)

type DrawRepo interface {
	ListEligible(ctx context.Context) ([]domain.DrawItem, error)
	DecrementStock(ctx context.Context, itemID string) (bool, error)
	CreateRecord(ctx context.Context, record *domain.DrawRecord) (*domain.DrawRecord, error)
	ListRecords(ctx context.Context, studentID int) ([]domain.DrawRecord, error)
}

// Charger is the fixed-cost charge of the spend engine.
type Charger interface {
	Charge(ctx context.Context, studentID int, cost int, kind string) (*spendservice.ChargeResult, error)
}

var ErrNoItemsAvailable = errors.New("no draw items available")

type Service struct {
	draws   DrawRepo
	charger Charger
	cost    int

	mu  sync.Mutex
	rnd *rand.Rand
}

func New(draws DrawRepo, charger Charger, cost int, rnd *rand.Rand) *Service {
	return &Service{
		draws:   draws,
		charger: charger,
		cost:    cost,
		rnd:     rnd,
	}
}

type DrawResult struct {
	PrizeID         string
	PrizeName       string
	Rarity          string
	RemainingPoints int
}

// Draw charges the fixed cost and hands out one weighted-random prize.
// The pool is checked before any charge so a student is never billed for an
// impossible draw; this ordering is load-bearing, do not swap it.
func (s *Service) Draw(ctx context.Context, studentID int) (*DrawResult, error) {
	pool, err := s.draws.ListEligible(ctx)
	if err != nil {
		return nil, err
	}
	if len(pool) == 0 {
		return nil, ErrNoItemsAvailable
	}

	charge, err := s.charger.Charge(ctx, studentID, s.cost, domain.KindDrawCharge)
	if err != nil {
		return nil, err
	}

	prize := s.pick(pool)

	// Stock runs down outside the charge transaction. Losing this race only
	// under-counts the displayed stock; the clamp keeps it non-negative.
	if prize.Stock > 0 {
		decremented, err := s.draws.DecrementStock(ctx, prize.ID)
		if err != nil {
			zap.L().Error("failed to decrement prize stock", zap.Error(err))
		} else if !decremented {
			zap.L().Warn("prize stock already empty", zap.String("prizeID", prize.ID))
		}
	}

	record := &domain.DrawRecord{
		ID:        uuid.New(),
		StudentID: studentID,
		PrizeID:   prize.ID,
		PrizeName: prize.Name,
		Rarity:    prize.Rarity,
		ChargeID:  charge.EntryID,
	}
	if _, err := s.draws.CreateRecord(ctx, record); err != nil {
		zap.L().Error("can't save draw record", zap.Error(err))
		return nil, err
	}

	return &DrawResult{
		PrizeID:         prize.ID,
		PrizeName:       prize.Name,
		Rarity:          prize.Rarity,
		RemainingPoints: charge.RemainingPoints,
	}, nil
}

// pick samples by cumulative weight: r uniform in [0, totalWeight), first
// item whose running sum exceeds r wins. Pool order is the tie-break, which
// keeps a seeded source deterministic.
func (s *Service) pick(pool []domain.DrawItem) domain.DrawItem {
	totalWeight := 0
	for _, item := range pool {
		totalWeight += item.Weight
	}

	s.mu.Lock()
	r := s.rnd.Float64() * float64(totalWeight)
	s.mu.Unlock()

	acc := 0.0
	for _, item := range pool {
		acc += float64(item.Weight)
		if r < acc {
			return item
		}
	}
	return pool[len(pool)-1]
}

func (s *Service) GetHistory(ctx context.Context, studentID int) ([]domain.DrawRecord, error) {
	records, err := s.draws.ListRecords(ctx, studentID)
	if err != nil {
		zap.L().Error("failed to fetch draw history", zap.Error(err))
		return nil, err
	}
	return records, nil
}
