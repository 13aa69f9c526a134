// Package slog provides logging decorators for litcontest services.
package slog

import (
	"context"
	"log/slog"
	"time"

	litcontest "github.com/kytalli/lit-contest"
)

// Ensure GrantService implements litcontest.GrantService.
var _ litcontest.GrantService = (*GrantService)(nil)

// GrantService wraps a GrantService with structured logging. Duplicate-key
// conflicts log at debug level since callers treat them as expected;
// everything else failing logs at error level.
type GrantService struct {
	next   litcontest.GrantService
	logger *slog.Logger
}

// NewGrantService creates a logging GrantService wrapping next.
func NewGrantService(next litcontest.GrantService, logger *slog.Logger) *GrantService {
	return &GrantService{next: next, logger: logger}
}

// CreateGrant delegates to the wrapped service, logging the outcome.
func (s *GrantService) CreateGrant(ctx context.Context, grant *litcontest.Grant) error {
	begin := time.Now()
	err := s.next.CreateGrant(ctx, grant)

	switch {
	case err == nil:
		s.logger.Info("grant inserted",
			"id", grant.ID,
			"issuer", grant.Issuer,
			"title", grant.Title,
			"deadline", grant.Deadline,
			"genres", grant.GenreNames(),
			"duration", time.Since(begin),
		)
	case litcontest.ErrorCode(err) == litcontest.ECONFLICT:
		s.logger.Debug("grant already exists",
			"issuer", grant.Issuer,
			"title", grant.Title,
			"deadline", grant.Deadline,
		)
	default:
		s.logger.Error("grant insert failed",
			"title", grant.Title,
			"error", err,
		)
	}

	return err
}

// FindGrantByID delegates to the wrapped service.
func (s *GrantService) FindGrantByID(ctx context.Context, id int64) (*litcontest.GrantWithGenres, error) {
	return s.next.FindGrantByID(ctx, id)
}

// FindGrants delegates to the wrapped service, logging the result size.
func (s *GrantService) FindGrants(ctx context.Context, filter litcontest.GrantFilter) ([]*litcontest.GrantWithGenres, error) {
	begin := time.Now()
	grants, err := s.next.FindGrants(ctx, filter)
	if err != nil {
		s.logger.Error("grant query failed", "error", err)
		return nil, err
	}
	s.logger.Debug("grants queried",
		"count", len(grants),
		"duration", time.Since(begin),
	)
	return grants, nil
}
