package repository_test

import (
	"context"
	"testing"

	"hospitality/entity"
	"hospitality/internal/testdb"
	"hospitality/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countSection(t *testing.T, repo *repository.ContentRepository, section string) int {
	t.Helper()
	items, err := repo.List(context.Background(), section)
	require.NoError(t, err)
	return len(items)
}

func TestContentRepository_UpsertIsIdempotent(t *testing.T) {
	repo := repository.NewContentRepository(testdb.Open(t))
	ctx := context.Background()

	first, err := repo.Upsert(ctx, "homepage", "heroTitle", "Welcome")
	require.NoError(t, err)
	second, err := repo.Upsert(ctx, "homepage", "heroTitle", "Welcome back")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Welcome back", second.Value)
	assert.Equal(t, 1, countSection(t, repo, "homepage"))

	m, err := repo.Section(ctx, "homepage")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"heroTitle": "Welcome back"}, m)
}

func TestContentRepository_ReplaceSection(t *testing.T) {
	repo := repository.NewContentRepository(testdb.Open(t))
	ctx := context.Background()

	_, err := repo.Upsert(ctx, "about", "stale", "old")
	require.NoError(t, err)
	_, err = repo.Upsert(ctx, "about", "title", "Old title")
	require.NoError(t, err)
	_, err = repo.Upsert(ctx, "footer", "phone", "123")
	require.NoError(t, err)

	data := map[string]string{"title": "Our story", "body": "Since 1990", "cta": "Book now"}
	m, err := repo.ReplaceSection(ctx, "about", data)
	require.NoError(t, err)
	assert.Equal(t, data, m)
	assert.Equal(t, 3, countSection(t, repo, "about"))

	// Repeating the call changes nothing.
	_, err = repo.ReplaceSection(ctx, "about", data)
	require.NoError(t, err)
	assert.Equal(t, 3, countSection(t, repo, "about"))

	// Other sections are untouched.
	assert.Equal(t, 1, countSection(t, repo, "footer"))
}

func TestContentRepository_ListOrdersBySectionThenKey(t *testing.T) {
	repo := repository.NewContentRepository(testdb.Open(t))
	ctx := context.Background()
	for _, c := range []entity.Content{
		{Section: "b", Key: "z"}, {Section: "a", Key: "y"}, {Section: "b", Key: "a"},
	} {
		_, err := repo.Upsert(ctx, c.Section, c.Key, "v")
		require.NoError(t, err)
	}

	items, err := repo.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, []string{"a/y", "b/a", "b/z"}, []string{
		items[0].Section + "/" + items[0].Key,
		items[1].Section + "/" + items[1].Key,
		items[2].Section + "/" + items[2].Key,
	})
}
