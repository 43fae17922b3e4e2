package recipes

import (
	"context"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"recipebox-backend/internal/scrapers/nytcooking"
	"recipebox-backend/lib/testutil"
	"recipebox-backend/services/recipes/db"

	"github.com/stretchr/testify/require"
)

func TestRecipeIdFromUrl(t *testing.T) {
	id, ok := RecipeIdFromUrl("https://cooking.nytimes.com/recipes/1015978-bacon-onion-jam")
	require.True(t, ok)
	require.Equal(t, int64(1015978), id)

	_, ok = RecipeIdFromUrl("https://cooking.nytimes.com/recipe-box")
	require.False(t, ok)

	_, ok = RecipeIdFromUrl("")
	require.False(t, ok)
}

func TestIngestExample(t *testing.T) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/recipes",
		DbSchema: db.Schema,
	})
	defer cleanup()
	service := NewService(setup.DB)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	summary := service.Ingest(ctx, []nytcooking.Recipe{
		{
			Url:       "https://cooking.nytimes.com/recipes/42-test",
			Name:      "Test",
			TotalTime: "PT45M",
			Tags:      []string{"quick", "weeknight"},
		},
	})
	require.Equal(t, 1, summary.RecipesIngested)
	require.Equal(t, 2, summary.TagsCreated)
	require.Equal(t, 2, summary.RecipeTagsLinked)
	require.Equal(t, 0, summary.Errors)

	recipe, ok := service.GetById(ctx, 42)
	require.True(t, ok)
	require.Equal(t, "Test", recipe.Name)
	require.True(t, recipe.Totaltimeminutes.Valid)
	require.Equal(t, int64(45), recipe.Totaltimeminutes.Int64)
	require.Equal(t, []string{"quick", "weeknight"}, recipe.Tags)

	tags, err := db.New(setup.DB).CountTags(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(2), tags)
	links, err := db.New(setup.DB).CountRecipeTags(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(2), links)
}

func TestIngestSkipsRecordWithoutId(t *testing.T) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/recipes",
		DbSchema: db.Schema,
	})
	defer cleanup()
	service := NewService(setup.DB)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	summary := service.Ingest(ctx, []nytcooking.Recipe{
		{Url: "https://cooking.nytimes.com/guides/1-how-to-make-pasta", Name: "Not a recipe page"},
	})
	require.Equal(t, 0, summary.RecipesIngested)
	require.Equal(t, 1, summary.Errors)

	count, err := db.New(setup.DB).CountRecipes(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(0), count)
}

func randomRecord(rndm *rand.Rand, id int) nytcooking.Recipe {
	record := nytcooking.Recipe{
		Url:  fmt.Sprintf("https://cooking.nytimes.com/recipes/%d-%s", id, testutil.RandomString(rndm, 8)),
		Name: testutil.RandomString(rndm, 12),
	}

	hasDuration := testutil.RandomSwitch(1, 1)
	if hasDuration(rndm) == 0 {
		record.TotalTime = fmt.Sprintf("PT%dM", 10+rndm.Intn(120))
	}
	for i := 0; i < rndm.Intn(4); i++ {
		// a tiny alphabet so tags repeat across records
		record.Tags = append(record.Tags, testutil.RandomString(rndm, 2))
	}
	return record
}

func TestIngestIdempotent(t *testing.T) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/recipes",
		DbSchema: db.Schema,
	})
	defer cleanup()
	service := NewService(setup.DB)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	rndm := rand.New(rand.NewSource(7))
	var records []nytcooking.Recipe
	for i := 1; i <= 10; i++ {
		records = append(records, randomRecord(rndm, i))
	}

	first := service.Ingest(ctx, records)
	require.Equal(t, 10, first.RecipesIngested)
	require.Equal(t, 0, first.Errors)

	qry := db.New(setup.DB)
	recipesAfterFirst, err := qry.CountRecipes(ctx)
	require.NoError(t, err)
	tagsAfterFirst, err := qry.CountTags(ctx)
	require.NoError(t, err)
	linksAfterFirst, err := qry.CountRecipeTags(ctx)
	require.NoError(t, err)

	second := service.Ingest(ctx, records)
	// the counters track attempts, so they repeat on a re-run
	require.Equal(t, 10, second.RecipesIngested)
	require.Equal(t, 0, second.Errors)

	recipesAfterSecond, err := qry.CountRecipes(ctx)
	require.NoError(t, err)
	tagsAfterSecond, err := qry.CountTags(ctx)
	require.NoError(t, err)
	linksAfterSecond, err := qry.CountRecipeTags(ctx)
	require.NoError(t, err)

	require.Equal(t, recipesAfterFirst, recipesAfterSecond)
	require.Equal(t, tagsAfterFirst, tagsAfterSecond)
	require.Equal(t, linksAfterFirst, linksAfterSecond)
}

func TestIngestNeverOverwrites(t *testing.T) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/recipes",
		DbSchema: db.Schema,
	})
	defer cleanup()
	service := NewService(setup.DB)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	service.Ingest(ctx, []nytcooking.Recipe{
		{Url: "https://cooking.nytimes.com/recipes/7-original", Name: "Original"},
	})
	service.Ingest(ctx, []nytcooking.Recipe{
		{Url: "https://cooking.nytimes.com/recipes/7-original", Name: "Changed"},
	})

	recipe, ok := service.GetById(ctx, 7)
	require.True(t, ok)
	require.Equal(t, "Original", recipe.Name)
}
