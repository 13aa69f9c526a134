package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	litcontest "github.com/kytalli/lit-contest"
	"github.com/kytalli/lit-contest/mock"
	litslog "github.com/kytalli/lit-contest/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, buf
}

func TestGrantService_CreateGrant(t *testing.T) {
	t.Parallel()

	t.Run("logs successful insert", func(t *testing.T) {
		t.Parallel()

		logger, buf := newTestLogger()
		next := &mock.GrantService{
			CreateGrantFn: func(ctx context.Context, grant *litcontest.Grant) error {
				grant.ID = 7
				return nil
			},
		}
		svc := litslog.NewGrantService(next, logger)

		err := svc.CreateGrant(context.Background(), &litcontest.Grant{
			Issuer:   "Poets & Writers",
			Title:    "Award",
			Deadline: "soon",
		})
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "grant inserted")
		assert.Contains(t, buf.String(), "Award")
	})

	t.Run("logs conflicts at debug and passes the error through", func(t *testing.T) {
		t.Parallel()

		logger, buf := newTestLogger()
		next := &mock.GrantService{
			CreateGrantFn: func(ctx context.Context, grant *litcontest.Grant) error {
				return litcontest.Errorf(litcontest.ECONFLICT, "grant already exists")
			},
		}
		svc := litslog.NewGrantService(next, logger)

		err := svc.CreateGrant(context.Background(), &litcontest.Grant{Title: "Award"})
		require.Error(t, err)
		assert.Equal(t, litcontest.ECONFLICT, litcontest.ErrorCode(err))
		assert.Contains(t, buf.String(), "grant already exists")
		assert.Contains(t, buf.String(), "level=DEBUG")
	})

	t.Run("logs storage faults at error level", func(t *testing.T) {
		t.Parallel()

		logger, buf := newTestLogger()
		next := &mock.GrantService{
			CreateGrantFn: func(ctx context.Context, grant *litcontest.Grant) error {
				return errors.New("disk I/O error")
			},
		}
		svc := litslog.NewGrantService(next, logger)

		err := svc.CreateGrant(context.Background(), &litcontest.Grant{Title: "Award"})
		require.Error(t, err)
		assert.Contains(t, buf.String(), "level=ERROR")
		assert.Contains(t, buf.String(), "grant insert failed")
	})
}

func TestGrantService_FindGrants(t *testing.T) {
	t.Parallel()

	logger, buf := newTestLogger()
	next := &mock.GrantService{
		FindGrantsFn: func(ctx context.Context, filter litcontest.GrantFilter) ([]*litcontest.GrantWithGenres, error) {
			return []*litcontest.GrantWithGenres{{Grant: &litcontest.Grant{Title: "Award"}}}, nil
		},
	}
	svc := litslog.NewGrantService(next, logger)

	grants, err := svc.FindGrants(context.Background(), litcontest.GrantFilter{})
	require.NoError(t, err)
	assert.Len(t, grants, 1)
	assert.Contains(t, buf.String(), "grants queried")
}
