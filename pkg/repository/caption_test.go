package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/captions/pkg/domain"
)

func TestCaptionRepository_CreateAndGet(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	generatedAt := time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)
	gen := &domain.Generation{
		Topic:           "coffee shop launch",
		Tone:            "witty",
		Platform:        "instagram",
		Length:          "short",
		IncludeEmojis:   true,
		IncludeHashtags: false,
		Variants:        []string{"Hot take: coffee shop launch — let's go!", "Plot twist: coffee shop launch — let's go!"},
		GeneratedAt:     generatedAt,
	}

	id, err := repos.Caption.CreateGeneration(ctx, gen)
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Equal(t, id, gen.ID)

	got, err := repos.Caption.GetGeneration(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "coffee shop launch", got.Topic)
	assert.Equal(t, "witty", got.Tone)
	assert.Equal(t, "instagram", got.Platform)
	assert.Equal(t, "short", got.Length)
	assert.True(t, got.IncludeEmojis)
	assert.False(t, got.IncludeHashtags)
	assert.Equal(t, gen.Variants, got.Variants)
	assert.False(t, got.Favorite)
	assert.Nil(t, got.FavoriteIndex)
	assert.Nil(t, got.UpdatedAt)
	assert.True(t, generatedAt.Equal(got.GeneratedAt), "got %v", got.GeneratedAt)
}

func TestCaptionRepository_CreateDefaults(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	id, err := repos.Caption.CreateGeneration(ctx, &domain.Generation{Topic: "no variants"})
	require.NoError(t, err)

	got, err := repos.Caption.GetGeneration(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []string{}, got.Variants)
	assert.False(t, got.GeneratedAt.IsZero())
	assert.WithinDuration(t, time.Now(), got.GeneratedAt, time.Minute)
}

func TestCaptionRepository_GetGeneration_Errors(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	t.Run("malformed id", func(t *testing.T) {
		_, err := repos.Caption.GetGeneration(ctx, "not-an-id")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMalformedID)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := repos.Caption.GetGeneration(ctx, "3f2504e0-4f89-41d3-9a0c-0305e82c3301")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestCaptionRepository_ListGenerations(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	topics := []string{"first", "second", "third", "fourth"}
	for i, topic := range topics {
		_, err := repos.Caption.CreateGeneration(ctx, &domain.Generation{
			Topic:       topic,
			Variants:    []string{topic + " caption"},
			GeneratedAt: base.Add(time.Duration(i) * time.Hour),
		})
		require.NoError(t, err)
	}

	t.Run("most recent first", func(t *testing.T) {
		list, err := repos.Caption.ListGenerations(ctx, 10)
		require.NoError(t, err)
		require.Len(t, list, 4)
		assert.Equal(t, "fourth", list[0].Topic)
		assert.Equal(t, "third", list[1].Topic)
		assert.Equal(t, "second", list[2].Topic)
		assert.Equal(t, "first", list[3].Topic)
		assert.Equal(t, []string{"fourth caption"}, list[0].Variants)
	})

	t.Run("limited", func(t *testing.T) {
		list, err := repos.Caption.ListGenerations(ctx, 2)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "fourth", list[0].Topic)
		assert.Equal(t, "third", list[1].Topic)
	})
}

func TestCaptionRepository_ListGenerations_Empty(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	list, err := repos.Caption.ListGenerations(context.Background(), 20)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCaptionRepository_MarkFavorite(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	id, err := repos.Caption.CreateGeneration(ctx, &domain.Generation{
		Topic:    "topic",
		Variants: []string{"a", "b", "c"},
	})
	require.NoError(t, err)

	t.Run("mark", func(t *testing.T) {
		require.NoError(t, repos.Caption.MarkFavorite(ctx, id, 2))

		got, err := repos.Caption.GetGeneration(ctx, id)
		require.NoError(t, err)
		assert.True(t, got.Favorite)
		require.NotNil(t, got.FavoriteIndex)
		assert.Equal(t, 2, *got.FavoriteIndex)
		require.NotNil(t, got.UpdatedAt)
		assert.WithinDuration(t, time.Now(), *got.UpdatedAt, time.Minute)
		assert.Equal(t, []string{"a", "b", "c"}, got.Variants)
	})

	t.Run("mark again with other index", func(t *testing.T) {
		require.NoError(t, repos.Caption.MarkFavorite(ctx, id, 0))

		got, err := repos.Caption.GetGeneration(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, got.FavoriteIndex)
		assert.Equal(t, 0, *got.FavoriteIndex)
	})

	t.Run("malformed id", func(t *testing.T) {
		err := repos.Caption.MarkFavorite(ctx, "66f1c2", 0)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMalformedID)
	})

	t.Run("not found", func(t *testing.T) {
		err := repos.Caption.MarkFavorite(ctx, "3f2504e0-4f89-41d3-9a0c-0305e82c3301", 0)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestVariantsSQL(t *testing.T) {
	t.Run("nil value", func(t *testing.T) {
		var v variantsSQL
		value, err := v.Value()
		require.NoError(t, err)
		assert.Equal(t, "[]", value)
	})

	t.Run("value", func(t *testing.T) {
		v := variantsSQL{"one", "two 🔥"}
		value, err := v.Value()
		require.NoError(t, err)
		assert.JSONEq(t, `["one","two 🔥"]`, value.(string))
	})

	t.Run("scan nil", func(t *testing.T) {
		var v variantsSQL
		require.NoError(t, v.Scan(nil))
		assert.Equal(t, variantsSQL{}, v)
	})

	t.Run("scan bytes", func(t *testing.T) {
		var v variantsSQL
		require.NoError(t, v.Scan([]byte(`["a","b"]`)))
		assert.Equal(t, variantsSQL{"a", "b"}, v)
	})

	t.Run("scan string", func(t *testing.T) {
		var v variantsSQL
		require.NoError(t, v.Scan(`["c"]`))
		assert.Equal(t, variantsSQL{"c"}, v)
	})

	t.Run("scan unsupported", func(t *testing.T) {
		var v variantsSQL
		require.Error(t, v.Scan(42))
	})

	t.Run("scan invalid json", func(t *testing.T) {
		var v variantsSQL
		require.Error(t, v.Scan("not json"))
	})
}
