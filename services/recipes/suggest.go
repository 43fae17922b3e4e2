package recipes

import (
	"context"
	"sort"
	"strings"

	"recipebox-backend/services/recipes/db"

	"github.com/antzucaro/matchr"
	"go.opentelemetry.io/otel/attribute"
)

type Suggestion struct {
	Recipe     db.Recipe
	Similarity float64
}

// Suggest ranks stored recipes by JaroWinkler similarity of their name to
// the query, for when a substring search comes back empty ("pomodoro"
// vs "Pasta Al Pomodoro" typos and half-remembered names). Results are
// best-first; an empty result means nothing scored above the floor.
func (s Service) Suggest(ctx context.Context, query string, limit int64) []Suggestion {
	ctx, span := tracer.Start(ctx, "Suggest")
	defer span.End()
	span.SetAttributes(attribute.String("query", query))

	// rank over every name; the recipe table tops out in the low
	// thousands for a personal recipe box
	rows, err := s.qry.ListRecipes(ctx, db.ListRecipesParams{
		Limit:  1 << 20,
		Offset: 0,
	})
	if err != nil {
		reportError(ctx, "suggest", err)
		return nil
	}

	const similarityFloor = 0.6
	normalized := strings.ToLower(query)

	var suggestions []Suggestion
	for _, row := range rows {
		similarity := matchr.JaroWinkler(normalized, strings.ToLower(row.Name), false)
		if similarity < similarityFloor {
			continue
		}
		suggestions = append(suggestions, Suggestion{
			Recipe:     row,
			Similarity: similarity,
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Similarity > suggestions[j].Similarity
	})
	if int64(len(suggestions)) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions
}
