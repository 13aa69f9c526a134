package mock

import (
	"context"

	litcontest "github.com/kytalli/lit-contest"
)

var _ litcontest.GrantService = (*GrantService)(nil)

// GrantService is a mock implementation of litcontest.GrantService.
type GrantService struct {
	CreateGrantFn   func(ctx context.Context, grant *litcontest.Grant) error
	FindGrantByIDFn func(ctx context.Context, id int64) (*litcontest.GrantWithGenres, error)
	FindGrantsFn    func(ctx context.Context, filter litcontest.GrantFilter) ([]*litcontest.GrantWithGenres, error)
}

func (s *GrantService) CreateGrant(ctx context.Context, grant *litcontest.Grant) error {
	return s.CreateGrantFn(ctx, grant)
}

func (s *GrantService) FindGrantByID(ctx context.Context, id int64) (*litcontest.GrantWithGenres, error) {
	return s.FindGrantByIDFn(ctx, id)
}

func (s *GrantService) FindGrants(ctx context.Context, filter litcontest.GrantFilter) ([]*litcontest.GrantWithGenres, error) {
	return s.FindGrantsFn(ctx, filter)
}
