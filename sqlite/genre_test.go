package sqlite_test

import (
	"context"
	"testing"

	litcontest "github.com/kytalli/lit-contest"
	"github.com/kytalli/lit-contest/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenreService_EnsureGenre(t *testing.T) {
	t.Parallel()

	t.Run("registers a new genre", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewGenreService(db)
		ctx := context.Background()

		require.NoError(t, svc.EnsureGenre(ctx, "Fiction"))

		id, err := svc.FindGenreID(ctx, "Fiction")
		require.NoError(t, err)
		assert.NotZero(t, id)
	})

	t.Run("re-adding an existing name is a no-op", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewGenreService(db)
		ctx := context.Background()

		require.NoError(t, svc.EnsureGenre(ctx, "Poetry"))
		first, err := svc.FindGenreID(ctx, "Poetry")
		require.NoError(t, err)

		require.NoError(t, svc.EnsureGenre(ctx, "Poetry"))
		second, err := svc.FindGenreID(ctx, "Poetry")
		require.NoError(t, err)

		assert.Equal(t, first, second, "surrogate ID must be stable once assigned")
	})

	t.Run("names are case-sensitive", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewGenreService(db)
		ctx := context.Background()

		require.NoError(t, svc.EnsureGenre(ctx, "fiction"))
		require.NoError(t, svc.EnsureGenre(ctx, "Fiction"))

		genres, err := svc.FindGenres(ctx)
		require.NoError(t, err)
		require.Len(t, genres, 2)
	})
}

func TestGenreService_FindGenreID(t *testing.T) {
	t.Parallel()

	t.Run("returns ENOTFOUND for unregistered name", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewGenreService(db)

		_, err := svc.FindGenreID(context.Background(), "Translation")
		require.Error(t, err)
		assert.Equal(t, litcontest.ENOTFOUND, litcontest.ErrorCode(err))
	})
}

func TestGenreService_LinkGrantGenre(t *testing.T) {
	t.Parallel()

	t.Run("links grant to genre once", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		genres := sqlite.NewGenreService(db)
		grants := sqlite.NewGrantService(db, genres)
		ctx := context.Background()

		grant := testGrant("Fiction")
		require.NoError(t, grants.CreateGrant(ctx, grant))
		require.NoError(t, genres.EnsureGenre(ctx, "Poetry"))
		genreID, err := genres.FindGenreID(ctx, "Poetry")
		require.NoError(t, err)

		require.NoError(t, genres.LinkGrantGenre(ctx, grant.ID, genreID))
		// Linking the same pair again is a no-op.
		require.NoError(t, genres.LinkGrantGenre(ctx, grant.ID, genreID))

		names, err := genres.GenresForGrant(ctx, grant.ID)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"Fiction", "Poetry"}, names)
	})
}

func TestGenreService_GenresForGrant(t *testing.T) {
	t.Parallel()

	t.Run("returns empty for unlinked grant", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewGenreService(db)

		names, err := svc.GenresForGrant(context.Background(), 999)
		require.NoError(t, err)
		assert.Empty(t, names)
	})
}

func TestGenreService_FindGenres(t *testing.T) {
	t.Parallel()

	t.Run("returns vocabulary ordered by name", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewGenreService(db)
		ctx := context.Background()

		require.NoError(t, svc.EnsureGenre(ctx, "Poetry"))
		require.NoError(t, svc.EnsureGenre(ctx, "Fiction"))
		require.NoError(t, svc.EnsureGenre(ctx, "Creative Nonfiction"))

		genres, err := svc.FindGenres(ctx)
		require.NoError(t, err)
		require.Len(t, genres, 3)
		assert.Equal(t, "Creative Nonfiction", genres[0].Name)
		assert.Equal(t, "Fiction", genres[1].Name)
		assert.Equal(t, "Poetry", genres[2].Name)
	})
}
