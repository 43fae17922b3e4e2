package nytcooking

import (
	"encoding/json"
	"strconv"
	"strings"

	"recipebox-backend/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

var smartQuotes = strings.NewReplacer("“", `"`, "”", `"`)

// ExtractRecipe pulls a recipe out of the JSON-LD blocks embedded in one
// recipe page. ok is false when the page carries no recipe entity, which is
// a normal outcome for paywalled, removed, or non-recipe pages.
func ExtractRecipe(html string) (Recipe, bool) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return Recipe{}, false
	}

	var candidates []map[string]any
	for _, node := range doc.Find(`script[type="application/ld+json"]`).Nodes {
		text := smartQuotes.Replace(htmlutil.GetText(node))

		var block any
		err := json.Unmarshal([]byte(text), &block)
		if err != nil {
			// malformed blocks are common on ad-heavy pages, skip them
			continue
		}

		switch b := block.(type) {
		case []any:
			for _, entry := range b {
				if obj, ok := entry.(map[string]any); ok {
					candidates = append(candidates, obj)
				}
			}
		case map[string]any:
			candidates = append(candidates, b)
		}
	}

	for _, obj := range candidates {
		if isRecipeEntity(obj["@type"]) {
			return fromLdObject(obj), true
		}
	}
	return Recipe{}, false
}

func isRecipeEntity(declared any) bool {
	switch t := declared.(type) {
	case string:
		return t == "Recipe"
	case []any:
		for _, entry := range t {
			if s, ok := entry.(string); ok && s == "Recipe" {
				return true
			}
		}
	}
	return false
}

func fromLdObject(obj map[string]any) Recipe {
	recipe := Recipe{
		Url:          asString(obj["url"]),
		Name:         htmlutil.CleanText(asString(obj["name"])),
		Description:  htmlutil.CleanText(asString(obj["description"])),
		Author:       htmlutil.CleanText(extractAuthor(obj["author"])),
		Image:        extractImage(obj["image"]),
		RecipeYield:  htmlutil.CleanText(asString(obj["recipeYield"])),
		PrepTime:     asString(obj["prepTime"]),
		CookTime:     asString(obj["cookTime"]),
		TotalTime:    asString(obj["totalTime"]),
		Ingredients:  asStringSlice(obj["recipeIngredient"]),
		Instructions: extractInstructions(obj["recipeInstructions"]),
		Nutrition:    extractNutrition(obj["nutrition"]),
		Tags:         extractTags(obj),
	}

	if rating, ok := obj["aggregateRating"].(map[string]any); ok {
		recipe.Rating = asFloat(rating["ratingValue"])
		recipe.RatingCount = int64(asFloat(rating["ratingCount"]))
	}
	return recipe
}

func extractAuthor(v any) string {
	if obj, ok := v.(map[string]any); ok {
		return asString(obj["name"])
	}
	return asString(v)
}

func extractImage(v any) string {
	arr, ok := v.([]any)
	if !ok {
		return asString(v)
	}
	if len(arr) == 0 {
		return ""
	}
	if obj, ok := arr[0].(map[string]any); ok {
		if url := asString(obj["url"]); url != "" {
			return url
		}
	}
	return asString(arr[0])
}

// tags are the union of the comma-separated "keywords" and
// "recipeCategory" fields, first occurrence wins
func extractTags(obj map[string]any) []string {
	var tags []string
	seen := map[string]bool{}
	for _, field := range []string{"keywords", "recipeCategory"} {
		for _, tag := range strings.Split(asString(obj[field]), ",") {
			tag = strings.TrimSpace(tag)
			if tag == "" || seen[tag] {
				continue
			}
			seen[tag] = true
			tags = append(tags, tag)
		}
	}
	return tags
}

func extractInstructions(v any) []string {
	arr, ok := v.([]any)
	if !ok {
		return nil
	}
	var steps []string
	for _, entry := range arr {
		if obj, ok := entry.(map[string]any); ok {
			steps = append(steps, asString(obj["text"]))
			continue
		}
		steps = append(steps, asString(entry))
	}
	return steps
}

func extractNutrition(v any) map[string]any {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	out := map[string]any{}
	for key, value := range obj {
		if strings.HasPrefix(key, "@") {
			continue
		}
		out[key] = value
	}
	return out
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asStringSlice(v any) []string {
	arr, ok := v.([]any)
	if !ok {
		return nil
	}
	var out []string
	for _, entry := range arr {
		out = append(out, asString(entry))
	}
	return out
}

func asFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case string:
		parsed, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0
		}
		return parsed
	}
	return 0
}
