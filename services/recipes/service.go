// Package recipes stores extracted recipe records and answers lookups over
// them. Read accessors deliberately collapse store failures into empty
// results: callers render whatever is available and the failure itself goes
// to the log and the active span.
package recipes

import (
	"context"
	"database/sql"
	"log/slog"

	"recipebox-backend/services/recipes/db"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("services/recipes")

type Service struct {
	db  *sql.DB
	qry *db.Queries
}

func NewService(database *sql.DB) Service {
	return Service{
		db:  database,
		qry: db.New(database),
	}
}

// RecipeWithTags is a recipe row with its tag names flattened in, the shape
// GetById returns.
type RecipeWithTags struct {
	db.Recipe
	Tags []string
}

func reportError(ctx context.Context, operation string, err error) {
	span := trace.SpanFromContext(ctx)
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	slog.Error("recipe store operation failed", "operation", operation, "err", err)
}

// Create inserts a single recipe row. ok is false when the insert failed,
// including on a uniqueness conflict: unlike ingestion, a direct create of
// an existing recipe is a caller mistake, not an expected no-op.
func (s Service) Create(ctx context.Context, params db.CreateRecipeParams) (db.Recipe, bool) {
	ctx, span := tracer.Start(ctx, "Create")
	defer span.End()
	span.SetAttributes(attribute.Int64("id", params.ID))

	recipe, err := s.qry.CreateRecipe(ctx, params)
	if err != nil {
		reportError(ctx, "create", err)
		return db.Recipe{}, false
	}
	return recipe, true
}

// GetById returns the recipe with its tag names joined in. ok is false for
// both a missing row and a store failure.
func (s Service) GetById(ctx context.Context, id int64) (RecipeWithTags, bool) {
	ctx, span := tracer.Start(ctx, "GetById")
	defer span.End()
	span.SetAttributes(attribute.Int64("id", id))

	recipe, err := s.qry.GetRecipe(ctx, id)
	if err == sql.ErrNoRows {
		return RecipeWithTags{}, false
	}
	if err != nil {
		reportError(ctx, "get", err)
		return RecipeWithTags{}, false
	}

	tags, err := s.qry.GetRecipeTagNames(ctx, id)
	if err != nil {
		reportError(ctx, "get tags", err)
		return RecipeWithTags{}, false
	}

	return RecipeWithTags{Recipe: recipe, Tags: tags}, true
}

// List returns a name-ordered page of recipes, without tags.
func (s Service) List(ctx context.Context, limit, offset int64) []db.Recipe {
	ctx, span := tracer.Start(ctx, "List")
	defer span.End()

	rows, err := s.qry.ListRecipes(ctx, db.ListRecipesParams{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		reportError(ctx, "list", err)
		return nil
	}
	return rows
}

// Update applies the non-null fields of params to an existing row. The id
// is never mutable through this path. ok is false when no row matched or
// the store failed.
func (s Service) Update(ctx context.Context, params db.UpdateRecipeParams) (db.Recipe, bool) {
	ctx, span := tracer.Start(ctx, "Update")
	defer span.End()
	span.SetAttributes(attribute.Int64("id", params.ID))

	recipe, err := s.qry.UpdateRecipe(ctx, params)
	if err == sql.ErrNoRows {
		return db.Recipe{}, false
	}
	if err != nil {
		reportError(ctx, "update", err)
		return db.Recipe{}, false
	}
	return recipe, true
}

// Delete reports whether a row existed and was removed. Association rows
// go with it via the schema's cascading foreign keys.
func (s Service) Delete(ctx context.Context, id int64) bool {
	ctx, span := tracer.Start(ctx, "Delete")
	defer span.End()
	span.SetAttributes(attribute.Int64("id", id))

	affected, err := s.qry.DeleteRecipe(ctx, id)
	if err != nil {
		reportError(ctx, "delete", err)
		return false
	}
	return affected > 0
}

// SearchByName does a case-insensitive substring match over recipe names.
func (s Service) SearchByName(ctx context.Context, query string, limit int64) []db.Recipe {
	ctx, span := tracer.Start(ctx, "SearchByName")
	defer span.End()
	span.SetAttributes(attribute.String("query", query))

	rows, err := s.qry.SearchRecipesByName(ctx, db.SearchRecipesByNameParams{
		Name:  "%" + query + "%",
		Limit: limit,
	})
	if err != nil {
		reportError(ctx, "search by name", err)
		return nil
	}
	return rows
}

// SearchByTag returns recipes carrying an exact tag name.
func (s Service) SearchByTag(ctx context.Context, tag string, limit int64) []db.Recipe {
	ctx, span := tracer.Start(ctx, "SearchByTag")
	defer span.End()
	span.SetAttributes(attribute.String("tag", tag))

	rows, err := s.qry.SearchRecipesByTag(ctx, db.SearchRecipesByTagParams{
		Name:  tag,
		Limit: limit,
	})
	if err != nil {
		reportError(ctx, "search by tag", err)
		return nil
	}
	return rows
}

// SearchByTotalTime filters on the derived totalTimeMinutes column.
// Rows without a usable duration never match, whatever the comparison.
func (s Service) SearchByTotalTime(ctx context.Context, cmp Comparison, minutes int64, limit int64) []db.Recipe {
	ctx, span := tracer.Start(ctx, "SearchByTotalTime")
	defer span.End()
	span.SetAttributes(
		attribute.String("comparison", string(cmp)),
		attribute.Int64("minutes", minutes),
	)

	threshold := sql.NullInt64{Int64: minutes, Valid: true}

	var rows []db.Recipe
	var err error
	switch cmp {
	case Less:
		rows, err = s.qry.SearchRecipesUnderTime(ctx, db.SearchRecipesUnderTimeParams{
			Totaltimeminutes: threshold,
			Limit:            limit,
		})
	case AtMost:
		rows, err = s.qry.SearchRecipesAtMostTime(ctx, db.SearchRecipesAtMostTimeParams{
			Totaltimeminutes: threshold,
			Limit:            limit,
		})
	case Greater:
		rows, err = s.qry.SearchRecipesOverTime(ctx, db.SearchRecipesOverTimeParams{
			Totaltimeminutes: threshold,
			Limit:            limit,
		})
	case AtLeast:
		rows, err = s.qry.SearchRecipesAtLeastTime(ctx, db.SearchRecipesAtLeastTimeParams{
			Totaltimeminutes: threshold,
			Limit:            limit,
		})
	default:
		slog.Error("unknown time comparison", "comparison", cmp)
		return nil
	}
	if err != nil {
		reportError(ctx, "search by total time", err)
		return nil
	}
	return rows
}
