package titlerepo

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

func (r *Repository) ListDefinitions(ctx context.Context) ([]domain.TitleDefinition, error) {
	query := `
		SELECT id, name, description, category, required_value, condition
		FROM titles
		ORDER BY id
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("failed to fetch title definitions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var defs []domain.TitleDefinition
	for rows.Next() {
		var def domain.TitleDefinition
		err := rows.Scan(&def.ID, &def.Name, &def.Description, &def.Category, &def.RequiredValue, &def.Condition)
		if err != nil {
			zap.L().Error("failed to scan title definition row", zap.Error(err))
			return nil, err
		}
		defs = append(defs, def)
	}

	return defs, nil
}

func (r *Repository) EarnedIDs(ctx context.Context, studentID int) (map[string]struct{}, error) {
	query := `SELECT title_id FROM student_titles WHERE student_id = $1`
	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		zap.L().Error("failed to fetch earned titles", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	earned := make(map[string]struct{})
	for rows.Next() {
		var titleID string
		if err := rows.Scan(&titleID); err != nil {
			zap.L().Error("failed to scan earned title row", zap.Error(err))
			return nil, err
		}
		earned[titleID] = struct{}{}
	}

	return earned, nil
}

// CreateGrant inserts the (student, title) pair if absent. The pair's
// existence is the sole idempotency marker: a false return means the title
// was already earned.
func (r *Repository) CreateGrant(ctx context.Context, studentID int, titleID string) (bool, error) {
	query := `
		INSERT INTO student_titles (student_id, title_id)
		VALUES ($1, $2)
		ON CONFLICT (student_id, title_id) DO NOTHING
	`
	tag, err := r.db.Exec(ctx, query, studentID, titleID)
	if err != nil {
		zap.L().Error("can't save title grant", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) ListGrants(ctx context.Context, studentID int) ([]domain.TitleGrant, error) {
	query := `
		SELECT student_id, title_id, granted_at
		FROM student_titles
		WHERE student_id = $1
		ORDER BY granted_at DESC
	`
	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		zap.L().Error("failed to fetch title grants", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var grants []domain.TitleGrant
	for rows.Next() {
		var grant domain.TitleGrant
		if err := rows.Scan(&grant.StudentID, &grant.TitleID, &grant.GrantedAt); err != nil {
			zap.L().Error("failed to scan title grant row", zap.Error(err))
			return nil, err
		}
		grants = append(grants, grant)
	}

	return grants, nil
}
