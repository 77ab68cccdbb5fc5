package studentrepo

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

const studentColumns = `id, login, password_hash, level, experience, points, counters, active_title_id, yellow_card_count, banned_until, created_at`

func (r *Repository) Create(ctx context.Context, student *domain.Student) (*domain.Student, error) {
	query := `
		INSERT INTO students (login, password_hash, level, experience, points, counters)
		VALUES ($1, $2, 1, 0, 0, '{}'::jsonb)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, student.Login, student.PasswordHash).Scan(&student.ID)
	if err != nil {
		zap.L().Error("can't save student", zap.Error(err))
		return nil, err
	}
	student.Level = 1
	return student, nil
}

func (r *Repository) FindByLogin(ctx context.Context, login string) (*domain.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE login = $1`
	student, err := r.scanStudent(r.db.QueryRow(ctx, query, login))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find student", zap.Error(err))
		return nil, err
	}
	return student, nil
}

func (r *Repository) GetByID(ctx context.Context, studentID int) (*domain.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE id = $1`
	student, err := r.scanStudent(r.db.QueryRow(ctx, query, studentID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get student", zap.Error(err))
		return nil, err
	}
	return student, nil
}

// Update persists the mutable progression state. It is only ever called from
// inside a ledger or spend transaction.
func (r *Repository) Update(ctx context.Context, student *domain.Student) (*domain.Student, error) {
	query := `
		UPDATE students
		SET level = $1, experience = $2, points = $3, counters = $4
		WHERE id = $5
		RETURNING ` + studentColumns
	updated, err := r.scanStudent(r.db.QueryRow(ctx, query,
		student.Level, student.Experience, student.Points, student.Counters, student.ID))
	if err != nil {
		zap.L().Error("failed to update student", zap.Error(err))
		return nil, err
	}
	return updated, nil
}

// SetActiveTitle sets or clears the title shown on the student's profile.
func (r *Repository) SetActiveTitle(ctx context.Context, studentID int, titleID *string) error {
	query := `UPDATE students SET active_title_id = $1 WHERE id = $2`
	tag, err := r.db.Exec(ctx, query, titleID, studentID)
	if err != nil {
		zap.L().Error("failed to set active title", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *Repository) scanStudent(row pgx.Row) (*domain.Student, error) {
	var student domain.Student
	err := row.Scan(
		&student.ID, &student.Login, &student.PasswordHash,
		&student.Level, &student.Experience, &student.Points, &student.Counters,
		&student.ActiveTitleID, &student.YellowCards, &student.BannedUntil, &student.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if student.Counters == nil {
		student.Counters = map[string]int{}
	}
	return &student, nil
}
