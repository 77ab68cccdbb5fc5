package submissionrepo

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

func (r *Repository) Create(ctx context.Context, submission *domain.ScoreSubmission) (*domain.ScoreSubmission, error) {
	query := `
		INSERT INTO score_submissions (student_id, subject, score, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, uploaded_at
	`
	err := r.db.QueryRow(ctx, query,
		submission.StudentID, submission.Subject, submission.Score, domain.SubmissionNew).
		Scan(&submission.ID, &submission.UploadedAt)
	if err != nil {
		zap.L().Error("can't save score submission", zap.Error(err))
		return nil, err
	}
	submission.Status = domain.SubmissionNew
	return submission, nil
}

func (r *Repository) FindForProcessing(ctx context.Context, limit uint32) ([]domain.ScoreSubmission, error) {
	query := `
		SELECT id, student_id, subject, score, status, uploaded_at
		FROM score_submissions
		WHERE status IN ($1, $2)
		ORDER BY uploaded_at
		LIMIT $3
	`
	rows, err := r.db.Query(ctx, query, domain.SubmissionNew, domain.SubmissionProcessing, limit)
	if err != nil {
		zap.L().Error("failed to fetch submissions for processing", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var submissions []domain.ScoreSubmission
	for rows.Next() {
		var s domain.ScoreSubmission
		err := rows.Scan(&s.ID, &s.StudentID, &s.Subject, &s.Score, &s.Status, &s.UploadedAt)
		if err != nil {
			zap.L().Error("failed to scan submission row", zap.Error(err))
			return nil, err
		}
		submissions = append(submissions, s)
	}

	return submissions, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, submissionID int, status string) error {
	query := `UPDATE score_submissions SET status = $1 WHERE id = $2`
	if _, err := r.db.Exec(ctx, query, status, submissionID); err != nil {
		zap.L().Error("failed to update submission status", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListByStudent(ctx context.Context, studentID int) ([]domain.ScoreSubmission, error) {
	query := `
		SELECT id, student_id, subject, score, status, uploaded_at
		FROM score_submissions
		WHERE student_id = $1
		ORDER BY uploaded_at DESC
	`
	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		zap.L().Error("failed to fetch submissions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var submissions []domain.ScoreSubmission
	for rows.Next() {
		var s domain.ScoreSubmission
		err := rows.Scan(&s.ID, &s.StudentID, &s.Subject, &s.Score, &s.Status, &s.UploadedAt)
		if err != nil {
			zap.L().Error("failed to scan submission row", zap.Error(err))
			return nil, err
		}
		submissions = append(submissions, s)
	}

	return submissions, nil
}
