package sqlxrepos

import (
	"context"
	"database/sql"

	"github.com/friendsofgo/errors"
	"github.com/jmoiron/sqlx"

	"github.com/trezcool/charityevents/core/category"
)

type categoryRepository struct {
	db *sqlx.DB
}

var _ category.Repository = (*categoryRepository)(nil) // interface compliance check

func NewCategoryRepository(db *sql.DB) *categoryRepository {
	return &categoryRepository{db: sqlx.NewDb(db, "postgres")}
}

func (repo categoryRepository) QueryAllCategories(ctx context.Context) ([]category.Category, error) {
	categories := make([]category.Category, 0)
	query := "SELECT id, name, icon_class FROM event_categories ORDER BY name"
	if err := repo.db.SelectContext(ctx, &categories, query); err != nil {
		return nil, errors.Wrap(err, "selecting categories")
	}
	return categories, nil
}
