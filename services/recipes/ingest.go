package recipes

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"regexp"
	"strconv"

	"recipebox-backend/internal/scrapers/nytcooking"
	"recipebox-backend/lib/isodur"
	"recipebox-backend/services/recipes/db"

	"go.opentelemetry.io/otel/attribute"
)

// recipe pages live at /recipes/<id>-<slug>; the numeric segment is the
// stable identity of a recipe, so re-ingesting a url can never duplicate it
var recipeIdPattern = regexp.MustCompile(`recipes/(\d+)-`)

// RecipeIdFromUrl derives the stable recipe id from its page url. ok is
// false when the url carries no numeric segment, in which case the record
// has no identity and cannot be ingested.
func RecipeIdFromUrl(url string) (int64, bool) {
	match := recipeIdPattern.FindStringSubmatch(url)
	if len(match) < 2 {
		return 0, false
	}
	id, err := strconv.ParseInt(match[1], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// IngestSummary tallies one ingestion run. The counts are attempts, not
// confirmed row inserts: a conflict-suppressed insert of an already-present
// row still increments its counter.
type IngestSummary struct {
	RecipesIngested  int
	TagsCreated      int
	RecipeTagsLinked int
	Errors           int
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func jsonArray(values []string) string {
	if values == nil {
		values = []string{}
	}
	contents, err := json.Marshal(values)
	if err != nil {
		return "[]"
	}
	return string(contents)
}

func ingestParams(id int64, record nytcooking.Recipe) db.IngestRecipeParams {
	params := db.IngestRecipeParams{
		ID:           id,
		Url:          record.Url,
		Name:         record.Name,
		Description:  nullString(record.Description),
		Author:       nullString(record.Author),
		Image:        nullString(record.Image),
		Recipeyield:  nullString(record.RecipeYield),
		Preptimeiso:  nullString(record.PrepTime),
		Cooktimeiso:  nullString(record.CookTime),
		Totaltimeiso: nullString(record.TotalTime),
		Ingredients:  jsonArray(record.Ingredients),
		Instructions: jsonArray(record.Instructions),
	}

	if minutes, ok := isodur.Minutes(record.TotalTime); ok {
		params.Totaltimeminutes = sql.NullInt64{Int64: minutes, Valid: true}
	}
	if record.Nutrition != nil {
		contents, err := json.Marshal(record.Nutrition)
		if err == nil {
			params.Nutrition = nullString(string(contents))
		}
	}
	if record.Rating != 0 {
		params.Rating = sql.NullFloat64{Float64: record.Rating, Valid: true}
	}
	if record.RatingCount != 0 {
		params.Ratingcount = sql.NullInt64{Int64: record.RatingCount, Valid: true}
	}
	return params
}

// Ingest loads extracted records into the store. Existing rows are left
// untouched (conflict-suppressed inserts), a bad record is logged and
// counted but never aborts the run.
func (s Service) Ingest(ctx context.Context, records []nytcooking.Recipe) IngestSummary {
	ctx, span := tracer.Start(ctx, "Ingest")
	defer span.End()
	span.SetAttributes(attribute.Int("records", len(records)))

	summary := IngestSummary{}

	// the cache makes a full run cost one tag read instead of one per
	// tag occurrence; tags created mid-run are added on first miss
	tagCache := map[string]int64{}
	existing, err := s.qry.ListTags(ctx)
	if err != nil {
		reportError(ctx, "preload tags", err)
	} else {
		for _, tag := range existing {
			tagCache[tag.Name] = tag.ID
		}
		slog.Info("pre-loaded tag cache", "tags", len(existing))
	}

	for _, record := range records {
		id, ok := RecipeIdFromUrl(record.Url)
		if !ok {
			slog.Warn("skipping recipe without a derivable id", "url", record.Url)
			summary.Errors++
			continue
		}

		err := s.qry.IngestRecipe(ctx, ingestParams(id, record))
		if err != nil {
			reportError(ctx, "ingest recipe", err)
			summary.Errors++
			continue
		}
		summary.RecipesIngested++

		for _, tagName := range record.Tags {
			if tagName == "" {
				continue
			}

			tagId, cached := tagCache[tagName]
			if !cached {
				err := s.qry.CreateTag(ctx, tagName)
				if err != nil {
					reportError(ctx, "create tag", err)
					summary.Errors++
					continue
				}
				summary.TagsCreated++

				// read back the id whether the insert landed or
				// lost to an existing row
				tagId, err = s.qry.GetTagIdByName(ctx, tagName)
				if err != nil {
					reportError(ctx, "resolve tag id", err)
					summary.Errors++
					continue
				}
				tagCache[tagName] = tagId
			}

			err := s.qry.CreateRecipeTag(ctx, db.CreateRecipeTagParams{
				Recipeid: id,
				Tagid:    tagId,
			})
			if err != nil {
				reportError(ctx, "link recipe tag", err)
				summary.Errors++
				continue
			}
			summary.RecipeTagsLinked++
		}

		processed := summary.RecipesIngested + summary.Errors
		if processed%100 == 0 {
			slog.Info("ingestion progress", "processed", processed, "total", len(records))
		}
	}

	span.SetAttributes(
		attribute.Int("recipes_ingested", summary.RecipesIngested),
		attribute.Int("tags_created", summary.TagsCreated),
		attribute.Int("recipe_tags_linked", summary.RecipeTagsLinked),
		attribute.Int("errors", summary.Errors),
	)
	return summary
}
