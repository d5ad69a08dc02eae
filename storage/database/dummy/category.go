package dummydb

import (
	"context"
	"sort"

	"github.com/trezcool/charityevents/core/category"
)

var categoryPKCount int

type categoryRepository struct {
	db *categoryTable
}

var _ category.Repository = (*categoryRepository)(nil) // interface compliance check

func NewCategoryRepository(db *DB) *categoryRepository {
	return &categoryRepository{db: db.category}
}

// CreateCategory registers a category for tests.
func (repo *categoryRepository) CreateCategory(cat category.Category) category.Category {
	repo.db.Lock()
	defer repo.db.Unlock()

	categoryPKCount++
	cat.ID = categoryPKCount
	repo.db.table[cat.ID] = &cat
	return cat
}

func (repo *categoryRepository) QueryAllCategories(ctx context.Context) ([]category.Category, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	categories := make([]category.Category, 0, len(repo.db.table))
	for _, cat := range repo.db.table {
		categories = append(categories, *cat)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].Name < categories[j].Name })
	return categories, nil
}
