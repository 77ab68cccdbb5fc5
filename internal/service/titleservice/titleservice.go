package titleservice

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/jukuhub/studyquest/internal/domain"
	"github.com/jukuhub/studyquest/pkg/validate"
)

type TitleRepo interface {
	ListDefinitions(ctx context.Context) ([]domain.TitleDefinition, error)
	EarnedIDs(ctx context.Context, studentID int) (map[string]struct{}, error)
	CreateGrant(ctx context.Context, studentID int, titleID string) (bool, error)
	ListGrants(ctx context.Context, studentID int) ([]domain.TitleGrant, error)
}

type StudentRepo interface {
	GetByID(ctx context.Context, studentID int) (*domain.Student, error)
	SetActiveTitle(ctx context.Context, studentID int, titleID *string) error
}

var (
	ErrStudentNotFound = errors.New("student not found")
	ErrInvalidAmount   = errors.New("title threshold must be positive")
	ErrNotEarned       = errors.New("title not earned")
)

// Legacy condition strings look like "Lv5到達". Newer definitions leave the
// condition empty and rely on category plus required_value instead.
var levelCondition = regexp.MustCompile(`^Lv(\d+)到達$`)

// rule is a parsed title condition. Exactly one of the two threshold forms
// is set: a level floor, or a counter floor keyed by counter name.
type rule struct {
	titleID string
	level   int
	counter string
	need    int
}

func (r rule) satisfiedBy(student *domain.Student) bool {
	if r.level > 0 {
		return student.Level >= r.level
	}
	return student.Counter(r.counter) >= r.need
}

type Service struct {
	titles   TitleRepo
	students StudentRepo

	mu    sync.Mutex
	rules []rule
}

func New(titles TitleRepo, students StudentRepo) *Service {
	return &Service{
		titles:   titles,
		students: students,
	}
}

func parseRule(def domain.TitleDefinition) (rule, error) {
	if m := levelCondition.FindStringSubmatch(def.Condition); m != nil {
		level, err := strconv.Atoi(m[1])
		if err != nil || level <= 0 {
			return rule{}, fmt.Errorf("title %s: %w", def.ID, ErrInvalidAmount)
		}
		return rule{titleID: def.ID, level: level}, nil
	}
	if def.RequiredValue <= 0 {
		return rule{}, fmt.Errorf("title %s: %w", def.ID, ErrInvalidAmount)
	}
	if def.Category == domain.TitleCategoryLevel {
		return rule{titleID: def.ID, level: def.RequiredValue}, nil
	}
	if !validate.IsCounterName(def.Category) {
		return rule{}, fmt.Errorf("title %s: unknown counter %q", def.ID, def.Category)
	}
	return rule{titleID: def.ID, counter: def.Category, need: def.RequiredValue}, nil
}

// loadRules parses every definition once and caches the result. A broken
// definition fails the whole load so it cannot be silently skipped.
func (s *Service) loadRules(ctx context.Context) ([]rule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rules != nil {
		return s.rules, nil
	}

	defs, err := s.titles.ListDefinitions(ctx)
	if err != nil {
		return nil, err
	}
	rules := make([]rule, 0, len(defs))
	for _, def := range defs {
		parsed, err := parseRule(def)
		if err != nil {
			zap.L().Error("invalid title definition", zap.Error(err))
			return nil, err
		}
		rules = append(rules, parsed)
	}
	s.rules = rules
	return rules, nil
}

// Evaluate grants every satisfied title the student does not yet hold and
// returns the ids granted by this call only. Re-running it is a no-op.
func (s *Service) Evaluate(ctx context.Context, studentID int) ([]string, error) {
	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, ErrStudentNotFound
	}

	rules, err := s.loadRules(ctx)
	if err != nil {
		return nil, err
	}
	earned, err := s.titles.EarnedIDs(ctx, studentID)
	if err != nil {
		return nil, err
	}

	granted := []string{}
	for _, r := range rules {
		if _, ok := earned[r.titleID]; ok {
			continue
		}
		if !r.satisfiedBy(student) {
			continue
		}
		created, err := s.titles.CreateGrant(ctx, studentID, r.titleID)
		if err != nil {
			return nil, err
		}
		// A concurrent Evaluate may have won the insert; only the winner
		// reports the title as newly granted.
		if created {
			granted = append(granted, r.titleID)
		}
	}
	return granted, nil
}

// EarnedTitle pairs a grant with its definition for display.
type EarnedTitle struct {
	domain.TitleDefinition
	GrantedAt string
}

func (s *Service) GetEarned(ctx context.Context, studentID int) ([]EarnedTitle, error) {
	grants, err := s.titles.ListGrants(ctx, studentID)
	if err != nil {
		return nil, err
	}
	defs, err := s.titles.ListDefinitions(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]domain.TitleDefinition, len(defs))
	for _, def := range defs {
		byID[def.ID] = def
	}

	titles := make([]EarnedTitle, 0, len(grants))
	for _, grant := range grants {
		def, ok := byID[grant.TitleID]
		if !ok {
			zap.L().Warn("grant for unknown title", zap.String("titleID", grant.TitleID))
			continue
		}
		titles = append(titles, EarnedTitle{
			TitleDefinition: def,
			GrantedAt:       grant.GrantedAt.Format(time.RFC3339),
		})
	}
	return titles, nil
}

// SetActive picks an earned title for the profile, or clears it when
// titleID is nil.
func (s *Service) SetActive(ctx context.Context, studentID int, titleID *string) error {
	if titleID != nil {
		earned, err := s.titles.EarnedIDs(ctx, studentID)
		if err != nil {
			return err
		}
		if _, ok := earned[*titleID]; !ok {
			return ErrNotEarned
		}
	}
	return s.students.SetActiveTitle(ctx, studentID, titleID)
}
