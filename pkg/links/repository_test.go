package links_test

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qrkit/pkg/links"
)

// testRepository runs the behaviour every Repository must share.
func testRepository(t *testing.T, repo links.Repository) {
	t.Helper()
	ctx := t.Context()

	newLink := func(code string) links.Link {
		return links.Link{
			ID:          uuid.New(),
			Code:        code,
			Destination: "https://example.com/" + code,
			CreatedAt:   time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		}
	}

	t.Run("insert and find", func(t *testing.T) {
		link := newLink(uniqueCode(t))
		require.NoError(t, repo.Insert(ctx, link))

		got, err := repo.FindByCode(ctx, link.Code)
		require.NoError(t, err)
		assert.Equal(t, link.ID, got.ID)
		assert.Equal(t, link.Destination, got.Destination)
		assert.Equal(t, int64(0), got.Visits)
		assert.True(t, link.CreatedAt.Equal(got.CreatedAt))
	})

	t.Run("duplicate code", func(t *testing.T) {
		code := uniqueCode(t)
		require.NoError(t, repo.Insert(ctx, newLink(code)))
		err := repo.Insert(ctx, newLink(code))
		require.ErrorIs(t, err, links.ErrCodeTaken)
	})

	t.Run("unknown code", func(t *testing.T) {
		_, err := repo.FindByCode(ctx, "missing0")
		require.ErrorIs(t, err, links.ErrNotFound)
		_, err = repo.IncrementVisits(ctx, "missing0")
		require.ErrorIs(t, err, links.ErrNotFound)
	})

	t.Run("concurrent increments are not lost", func(t *testing.T) {
		link := newLink(uniqueCode(t))
		require.NoError(t, repo.Insert(ctx, link))

		const n = 20
		var wg sync.WaitGroup
		for range n {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := repo.IncrementVisits(context.WithoutCancel(ctx), link.Code)
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		got, err := repo.FindByCode(ctx, link.Code)
		require.NoError(t, err)
		assert.Equal(t, int64(n), got.Visits)

		visits, err := repo.IncrementVisits(ctx, link.Code)
		require.NoError(t, err)
		assert.Equal(t, int64(n+1), visits)
	})
}

func uniqueCode(t *testing.T) string {
	t.Helper()
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}

func TestMemoryRepository(t *testing.T) {
	t.Parallel()
	testRepository(t, links.NewMemoryRepository())
}
