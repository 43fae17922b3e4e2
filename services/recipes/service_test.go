package recipes

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"recipebox-backend/lib/testutil"
	"recipebox-backend/services/recipes/db"

	"github.com/stretchr/testify/require"
)

func setupRecipes(t *testing.T) (Service, *sql.DB, context.Context) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/recipes",
		DbSchema: db.Schema,
	})
	t.Cleanup(cleanup)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	t.Cleanup(cancel)

	return NewService(setup.DB), setup.DB, ctx
}

func createRecipe(t *testing.T, ctx context.Context, service Service, id int64, name string, minutes int64) db.Recipe {
	params := db.CreateRecipeParams{
		ID:           id,
		Url:          "https://cooking.nytimes.com/recipes/1",
		Name:         name,
		Ingredients:  "[]",
		Instructions: "[]",
	}
	params.Url = params.Url + "-" + name
	if minutes > 0 {
		params.Totaltimeminutes = sql.NullInt64{Int64: minutes, Valid: true}
	}
	recipe, ok := service.Create(ctx, params)
	require.True(t, ok)
	return recipe
}

func TestCreateAndGet(t *testing.T) {
	service, _, ctx := setupRecipes(t)

	created := createRecipe(t, ctx, service, 100, "Bacon Onion Jam", 85)
	require.Equal(t, int64(100), created.ID)

	got, ok := service.GetById(ctx, 100)
	require.True(t, ok)
	require.Equal(t, "Bacon Onion Jam", got.Name)
	require.Equal(t, int64(85), got.Totaltimeminutes.Int64)
	require.Empty(t, got.Tags)

	_, ok = service.GetById(ctx, 999)
	require.False(t, ok)
}

func TestCreateConflictFails(t *testing.T) {
	service, _, ctx := setupRecipes(t)

	createRecipe(t, ctx, service, 1, "First", 0)
	_, ok := service.Create(ctx, db.CreateRecipeParams{
		ID:           1,
		Url:          "https://cooking.nytimes.com/recipes/1-other",
		Name:         "Second",
		Ingredients:  "[]",
		Instructions: "[]",
	})
	require.False(t, ok)

	got, ok := service.GetById(ctx, 1)
	require.True(t, ok)
	require.Equal(t, "First", got.Name)
}

func TestListOrdersByName(t *testing.T) {
	service, _, ctx := setupRecipes(t)

	createRecipe(t, ctx, service, 1, "Ziti", 0)
	createRecipe(t, ctx, service, 2, "Aioli", 0)
	createRecipe(t, ctx, service, 3, "Miso Soup", 0)

	rows := service.List(ctx, 10, 0)
	require.Len(t, rows, 3)
	require.Equal(t, "Aioli", rows[0].Name)
	require.Equal(t, "Miso Soup", rows[1].Name)
	require.Equal(t, "Ziti", rows[2].Name)

	page := service.List(ctx, 1, 1)
	require.Len(t, page, 1)
	require.Equal(t, "Miso Soup", page[0].Name)
}

func TestUpdate(t *testing.T) {
	service, _, ctx := setupRecipes(t)

	createRecipe(t, ctx, service, 5, "Plain Rice", 20)

	updated, ok := service.Update(ctx, db.UpdateRecipeParams{
		ID:   5,
		Name: sql.NullString{String: "Coconut Rice", Valid: true},
	})
	require.True(t, ok)
	require.Equal(t, "Coconut Rice", updated.Name)
	// untouched fields carry over
	require.Equal(t, int64(20), updated.Totaltimeminutes.Int64)
	require.Equal(t, int64(5), updated.ID)

	_, ok = service.Update(ctx, db.UpdateRecipeParams{
		ID:   404,
		Name: sql.NullString{String: "Nothing", Valid: true},
	})
	require.False(t, ok)
}

func TestDeleteCascadesLinksButKeepsTags(t *testing.T) {
	service, database, ctx := setupRecipes(t)
	qry := db.New(database)

	createRecipe(t, ctx, service, 9, "Tagged", 0)
	require.NoError(t, qry.CreateTag(ctx, "weeknight"))
	tagId, err := qry.GetTagIdByName(ctx, "weeknight")
	require.NoError(t, err)
	require.NoError(t, qry.CreateRecipeTag(ctx, db.CreateRecipeTagParams{
		Recipeid: 9,
		Tagid:    tagId,
	}))

	require.True(t, service.Delete(ctx, 9))
	require.False(t, service.Delete(ctx, 9))

	links, err := qry.CountRecipeTags(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(0), links)

	// the tag vocabulary survives its last recipe
	tags, err := qry.CountTags(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1), tags)
}

func TestSearchByName(t *testing.T) {
	service, _, ctx := setupRecipes(t)

	createRecipe(t, ctx, service, 1, "Pasta Al Pomodoro", 0)
	createRecipe(t, ctx, service, 2, "Pasta Carbonara", 0)
	createRecipe(t, ctx, service, 3, "Green Curry", 0)

	rows := service.SearchByName(ctx, "pasta", 10)
	require.Len(t, rows, 2)
	require.Equal(t, "Pasta Al Pomodoro", rows[0].Name)
	require.Equal(t, "Pasta Carbonara", rows[1].Name)

	require.Empty(t, service.SearchByName(ctx, "burger", 10))
}

func TestSearchByTag(t *testing.T) {
	service, database, ctx := setupRecipes(t)
	qry := db.New(database)

	createRecipe(t, ctx, service, 1, "Weeknight Stir Fry", 0)
	createRecipe(t, ctx, service, 2, "Sunday Roast", 0)

	require.NoError(t, qry.CreateTag(ctx, "quick"))
	tagId, err := qry.GetTagIdByName(ctx, "quick")
	require.NoError(t, err)
	require.NoError(t, qry.CreateRecipeTag(ctx, db.CreateRecipeTagParams{
		Recipeid: 1,
		Tagid:    tagId,
	}))

	rows := service.SearchByTag(ctx, "quick", 10)
	require.Len(t, rows, 1)
	require.Equal(t, "Weeknight Stir Fry", rows[0].Name)

	require.Empty(t, service.SearchByTag(ctx, "slow", 10))
}

func TestSearchByTotalTime(t *testing.T) {
	service, _, ctx := setupRecipes(t)

	createRecipe(t, ctx, service, 1, "Fast", 20)
	createRecipe(t, ctx, service, 2, "Medium", 60)
	createRecipe(t, ctx, service, 3, "Slow", 240)
	createRecipe(t, ctx, service, 4, "Untimed", 0)

	atLeast := service.SearchByTotalTime(ctx, AtLeast, 60, 10)
	require.Len(t, atLeast, 2)
	// rows without a derived duration never match, and results come
	// back shortest first
	require.Equal(t, "Medium", atLeast[0].Name)
	require.Equal(t, "Slow", atLeast[1].Name)

	under := service.SearchByTotalTime(ctx, Less, 60, 10)
	require.Len(t, under, 1)
	require.Equal(t, "Fast", under[0].Name)

	atMost := service.SearchByTotalTime(ctx, AtMost, 60, 10)
	require.Len(t, atMost, 2)

	over := service.SearchByTotalTime(ctx, Greater, 60, 10)
	require.Len(t, over, 1)
	require.Equal(t, "Slow", over[0].Name)

	require.Nil(t, service.SearchByTotalTime(ctx, Comparison("!="), 60, 10))
}

func TestParseComparison(t *testing.T) {
	for _, raw := range []string{"<", "<=", ">", ">="} {
		cmp, err := ParseComparison(raw)
		require.NoError(t, err)
		require.Equal(t, Comparison(raw), cmp)
	}
	_, err := ParseComparison("==")
	require.Error(t, err)
}

func TestSuggest(t *testing.T) {
	service, _, ctx := setupRecipes(t)

	createRecipe(t, ctx, service, 1, "Pasta Al Pomodoro", 0)
	createRecipe(t, ctx, service, 2, "Shakshuka", 0)

	suggestions := service.Suggest(ctx, "pasta pomodoro", 5)
	require.NotEmpty(t, suggestions)
	require.Equal(t, "Pasta Al Pomodoro", suggestions[0].Recipe.Name)
	for i := 1; i < len(suggestions); i++ {
		require.LessOrEqual(t, suggestions[i].Similarity, suggestions[i-1].Similarity)
	}

	require.Empty(t, service.Suggest(ctx, "zzzzzzzz", 5))
}
