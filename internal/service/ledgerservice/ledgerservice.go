package ledgerservice

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

type LedgerRepo interface {
	Append(ctx context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error)
	GetByID(ctx context.Context, entryID uuid.UUID) (*domain.LedgerEntry, error)
	MarkReversed(ctx context.Context, entryID uuid.UUID) (bool, error)
	ListByStudent(ctx context.Context, studentID int) ([]domain.LedgerEntry, error)
	AddLevelHistory(ctx context.Context, history *domain.LevelHistory) error
}

// TitleEvaluator is invoked after every committed grant.
type TitleEvaluator interface {
	Evaluate(ctx context.Context, studentID int) ([]string, error)
}

// Ranker keeps the leaderboard in step with the account.
type Ranker interface {
	UpdateScore(ctx context.Context, studentID, level, experience int) error
}

var (
	ErrNotFound        = errors.New("ledger entry not found")
	ErrStudentNotFound = errors.New("student not found")
	ErrAlreadyReversed = errors.New("ledger entry already reversed")
)

type Service struct {
	students  StudentRepo
	ledger    LedgerRepo
	titles    TitleEvaluator
	rank      Ranker
	txManager pg.TXManager
}

func New(students StudentRepo, ledger LedgerRepo, titles TitleEvaluator, rank Ranker, txManager pg.TXManager) *Service {
	return &Service{
		students:  students,
		ledger:    ledger,
		titles:    titles,
		rank:      rank,
		txManager: txManager,
	}
}

type GrantResult struct {
	EntryID       uuid.UUID
	NewLevel      int
	Experience    int
	LevelUps      int
	AppliedExp    int
	AppliedPoints int
}

// Grant atomically applies experience, points and counter deltas to the
// student, appends the audit entry, and on commit re-evaluates titles and the
// ranking. Negative deltas clamp at zero; the entry records what was actually
// applied.
func (s *Service) Grant(ctx context.Context, studentID int, kind string, expDelta, pointsDelta int, counterDeltas map[string]int) (*GrantResult, error) {
	var result *GrantResult
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		result, err = s.apply(ctx, studentID, kind, expDelta, pointsDelta, counterDeltas, nil)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.afterGrant(ctx, studentID, result)
	return result, nil
}

type RevokeResult struct {
	EntryID       uuid.UUID
	NewLevel      int
	AppliedPoints int
}

// Revoke compensates a previous grant: the original deltas are applied
// negated under kind "undo-<kind>", the original entry is flagged reversed
// exactly once, and the compensating entry links back to it.
func (s *Service) Revoke(ctx context.Context, studentID int, entryID uuid.UUID) (*RevokeResult, error) {
	var result *RevokeResult
	var granted *GrantResult
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		entry, err := s.ledger.GetByID(ctx, entryID)
		if err != nil {
			return err
		}
		if entry == nil || entry.StudentID != studentID {
			return ErrNotFound
		}
		if entry.Reversed {
			return ErrAlreadyReversed
		}

		ok, err := s.ledger.MarkReversed(ctx, entryID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrAlreadyReversed
		}

		negated := make(map[string]int, len(entry.CounterDeltas))
		for name, delta := range entry.CounterDeltas {
			negated[name] = -delta
		}
		granted, err = s.apply(ctx, studentID, domain.KindUndoPrefix+entry.Kind,
			-entry.ExpDelta, -entry.PointsDelta, negated, &entry.ID)
		if err != nil {
			return err
		}
		result = &RevokeResult{
			EntryID:       granted.EntryID,
			NewLevel:      granted.NewLevel,
			AppliedPoints: granted.AppliedPoints,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.afterGrant(ctx, studentID, granted)
	return result, nil
}

// CloseSession converts a finished study session into a grant. Forced closes
// apply zero minutes so an unmatched check-in can never leak rewards.
func (s *Service) CloseSession(ctx context.Context, studentID int, forced bool, appliedMinutes int) (*GrantResult, error) {
	if forced || appliedMinutes < 0 {
		appliedMinutes = 0
	}
	gained := appliedMinutes / 10 * 5
	return s.Grant(ctx, studentID, domain.KindSelfStudy, gained, gained, map[string]int{
		domain.CounterSelfStudy:    1,
		domain.CounterStudyMinutes: appliedMinutes,
	})
}

func (s *Service) GetAccount(ctx context.Context, studentID int) (*domain.Student, error) {
	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, ErrStudentNotFound
	}
	return student, nil
}

func (s *Service) GetLedger(ctx context.Context, studentID int) ([]domain.LedgerEntry, error) {
	entries, err := s.ledger.ListByStudent(ctx, studentID)
	if err != nil {
		zap.L().Error("failed to fetch ledger", zap.Error(err))
		return nil, err
	}
	return entries, nil
}

// apply is the transaction body shared by Grant and Revoke. It must run
// inside an open transaction.
func (s *Service) apply(ctx context.Context, studentID int, kind string, expDelta, pointsDelta int, counterDeltas map[string]int, reversalOf *uuid.UUID) (*GrantResult, error) {
	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, ErrStudentNotFound
	}

	oldLevel := student.Level

	appliedExp := expDelta
	student.Experience += expDelta
	if student.Experience < 0 {
		// Intentional clamp, not an error: an intervening spend or level-up may
		// already have consumed what is being revoked.
		appliedExp = expDelta - student.Experience
		zap.L().Warn("experience clamped to zero",
			zap.Int("studentID", studentID), zap.Int("expDelta", expDelta))
		student.Experience = 0
	}

	levelUps := 0
	for student.Experience >= 0 && student.Experience >= domain.ExpNeeded(student.Level) && student.Level < domain.MaxLevel {
		student.Experience -= domain.ExpNeeded(student.Level)
		student.Level++
		levelUps++
	}

	appliedPoints := pointsDelta
	student.Points += pointsDelta
	if student.Points < 0 {
		appliedPoints = pointsDelta - student.Points
		zap.L().Warn("points clamped to zero",
			zap.Int("studentID", studentID), zap.Int("pointsDelta", pointsDelta))
		student.Points = 0
	}

	if student.Counters == nil {
		student.Counters = map[string]int{}
	}
	appliedCounters := make(map[string]int, len(counterDeltas))
	for name, delta := range counterDeltas {
		applied := delta
		next := student.Counters[name] + delta
		if next < 0 {
			applied = delta - next
			next = 0
		}
		student.Counters[name] = next
		appliedCounters[name] = applied
	}

	if _, err := s.students.Update(ctx, student); err != nil {
		return nil, err
	}

	entry := &domain.LedgerEntry{
		ID:            uuid.New(),
		StudentID:     studentID,
		Kind:          kind,
		ExpDelta:      appliedExp,
		PointsDelta:   appliedPoints,
		CounterDeltas: appliedCounters,
		ReversalOf:    reversalOf,
	}
	if _, err := s.ledger.Append(ctx, entry); err != nil {
		return nil, err
	}

	if levelUps > 0 {
		err := s.ledger.AddLevelHistory(ctx, &domain.LevelHistory{
			StudentID: studentID,
			OldLevel:  oldLevel,
			NewLevel:  student.Level,
			GainedExp: appliedExp,
			Reason:    kind,
		})
		if err != nil {
			return nil, err
		}
	}

	return &GrantResult{
		EntryID:       entry.ID,
		NewLevel:      student.Level,
		Experience:    student.Experience,
		LevelUps:      levelUps,
		AppliedExp:    appliedExp,
		AppliedPoints: appliedPoints,
	}, nil
}

// afterGrant runs the post-commit hooks. The grant is already durable, so
// failures here are logged and swallowed.
func (s *Service) afterGrant(ctx context.Context, studentID int, result *GrantResult) {
	if result == nil {
		return
	}
	if _, err := s.titles.Evaluate(ctx, studentID); err != nil {
		zap.L().Error("title evaluation failed after grant", zap.Error(err))
	}
	if err := s.rank.UpdateScore(ctx, studentID, result.NewLevel, result.Experience); err != nil {
		zap.L().Error("ranking update failed after grant", zap.Error(err))
	}
}
