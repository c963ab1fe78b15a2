package repository_test

import (
	"context"
	"net/url"
	"testing"
	"time"

	"hospitality/entity"
	"hospitality/internal/testdb"
	"hospitality/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var menuFilters = []repository.Filter{
	{Param: "category", Kind: repository.FilterEqual, Columns: []string{"category"}},
	{Param: "search", Kind: repository.FilterSearch, Columns: []string{"name", "description"}},
}

func seedMenu(t *testing.T, repo *repository.Repository[entity.MenuItem]) {
	t.Helper()
	ctx := context.Background()
	items := []entity.MenuItem{
		{Name: "Masala Chai", Category: "drinks", Type: entity.MenuTypeBeverage},
		{Name: "Paneer Tikka", Category: "starters", Description: "Smoky cottage cheese", Type: entity.MenuTypeVeg},
		{Name: "Chicken Tikka", Category: "starters", Type: entity.MenuTypeNonVeg},
	}
	for i := range items {
		require.NoError(t, repo.Create(ctx, &items[i]))
		time.Sleep(2 * time.Millisecond)
	}
}

func TestRepository_CreateAssignsIDAndTimestamps(t *testing.T) {
	repo := repository.NewRepository[entity.MenuItem](testdb.Open(t))
	item := entity.MenuItem{Name: "Lassi", Category: "drinks", Type: entity.MenuTypeBeverage}

	require.NoError(t, repo.Create(context.Background(), &item))
	assert.Len(t, item.ID, 36)
	assert.False(t, item.CreatedAt.IsZero())

	got, err := repo.Get(context.Background(), item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lassi", got.Name)
}

func TestRepository_ListFilters(t *testing.T) {
	repo := repository.NewRepository[entity.MenuItem](testdb.Open(t))
	seedMenu(t, repo)
	ctx := context.Background()

	tests := []struct {
		name  string
		query url.Values
		want  []string
	}{
		{"no filter newest first", url.Values{}, []string{"Chicken Tikka", "Paneer Tikka", "Masala Chai"}},
		{"category", url.Values{"category": {"starters"}}, []string{"Chicken Tikka", "Paneer Tikka"}},
		{"search is case insensitive", url.Values{"search": {"TIKKA"}}, []string{"Chicken Tikka", "Paneer Tikka"}},
		{"search matches description", url.Values{"search": {"smoky"}}, []string{"Paneer Tikka"}},
		{"unknown parameter ignored", url.Values{"colour": {"red"}}, []string{"Chicken Tikka", "Paneer Tikka", "Masala Chai"}},
		{"combined", url.Values{"category": {"starters"}, "search": {"paneer"}}, []string{"Paneer Tikka"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := repo.List(ctx, menuFilters, tt.query, "created_at desc")
			require.NoError(t, err)
			names := make([]string, 0, len(items))
			for _, it := range items {
				names = append(names, it.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestRepository_BoolAndWindowFilters(t *testing.T) {
	repo := repository.NewRepository[entity.Offer](testdb.Open(t))
	repo.Now = func() time.Time { return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC) }
	ctx := context.Background()

	for _, o := range []entity.Offer{
		{Title: "summer", Description: "d", StartDate: "2025-06-01", EndDate: "2025-06-30", IsActive: true},
		{Title: "expired", Description: "d", StartDate: "2025-01-01", EndDate: "2025-01-31", IsActive: true},
		{Title: "open ended", Description: "d", StartDate: "2025-06-15", IsActive: false},
		{Title: "future", Description: "d", StartDate: "2025-07-01", EndDate: "2025-07-31", IsActive: true},
	} {
		require.NoError(t, repo.Create(ctx, &o))
	}

	filters := []repository.Filter{
		{Param: "active", Kind: repository.FilterBool, Columns: []string{"is_active"}},
		{Param: "current", Kind: repository.FilterCurrentWindow},
	}
	titles := func(q url.Values) []string {
		items, err := repo.List(ctx, filters, q, "title asc")
		require.NoError(t, err)
		var out []string
		for _, it := range items {
			out = append(out, it.Title)
		}
		return out
	}

	assert.Equal(t, []string{"expired", "future", "summer"}, titles(url.Values{"active": {"true"}}))
	assert.Equal(t, []string{"open ended"}, titles(url.Values{"active": {"false"}}))
	assert.Len(t, titles(url.Values{"active": {"maybe"}}), 4)
	assert.Equal(t, []string{"open ended", "summer"}, titles(url.Values{"current": {"true"}}))
	assert.Equal(t, []string{"summer"}, titles(url.Values{"current": {"true"}, "active": {"true"}}))
}

func TestRepository_NotFound(t *testing.T) {
	repo := repository.NewRepository[entity.Leader](testdb.Open(t))
	ctx := context.Background()

	_, err := repo.Get(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "missing"), repository.ErrNotFound)
}

func TestRepository_DeleteRemovesRow(t *testing.T) {
	repo := repository.NewRepository[entity.Leader](testdb.Open(t))
	ctx := context.Background()
	l := entity.Leader{Name: "Asha", Role: "Chef", Description: "Head chef"}
	require.NoError(t, repo.Create(ctx, &l))

	require.NoError(t, repo.Delete(ctx, l.ID))
	_, err := repo.Get(ctx, l.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestRepository_SaveDoesNotReviveDeletedRow(t *testing.T) {
	repo := repository.NewRepository[entity.MenuItem](testdb.Open(t))
	ctx := context.Background()
	item := entity.MenuItem{Name: "Kulfi", Category: "desserts", Type: entity.MenuTypeVeg}
	require.NoError(t, repo.Create(ctx, &item))

	stale, err := repo.Get(ctx, item.ID)
	require.NoError(t, err)
	require.NoError(t, repo.Delete(ctx, item.ID))

	stale.Price = "90"
	assert.ErrorIs(t, repo.Save(ctx, stale), repository.ErrNotFound)

	_, err = repo.Get(ctx, item.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestRepository_SaveUpdatesStoredRow(t *testing.T) {
	repo := repository.NewRepository[entity.MenuItem](testdb.Open(t))
	ctx := context.Background()
	item := entity.MenuItem{Name: "Kulfi", Category: "desserts", Type: entity.MenuTypeVeg, IsSignature: true}
	require.NoError(t, repo.Create(ctx, &item))

	item.Price = "90"
	item.IsSignature = false
	require.NoError(t, repo.Save(ctx, &item))

	got, err := repo.Get(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "90", got.Price)
	assert.False(t, got.IsSignature)
}
