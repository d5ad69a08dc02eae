package category

import "context"

type (
	Repository interface {
		// QueryAllCategories returns every category, ordered by name.
		QueryAllCategories(ctx context.Context) ([]Category, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) QueryAll(ctx context.Context) ([]Category, error) {
	return svc.repo.QueryAllCategories(ctx)
}
