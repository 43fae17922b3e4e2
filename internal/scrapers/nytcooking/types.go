package nytcooking

// Recipe is the extracted shape of one recipe page's JSON-LD block. It is
// also the element type of the snapshot file written between the fetch and
// ingest stages, so the field names are part of the on-disk format.
type Recipe struct {
	Url          string         `json:"url"`
	Name         string         `json:"name"`
	Description  string         `json:"description,omitempty"`
	Author       string         `json:"author,omitempty"`
	Image        string         `json:"image,omitempty"`
	RecipeYield  string         `json:"recipeYield,omitempty"`
	PrepTime     string         `json:"prepTime,omitempty"`
	CookTime     string         `json:"cookTime,omitempty"`
	TotalTime    string         `json:"totalTime,omitempty"`
	Ingredients  []string       `json:"ingredients"`
	Instructions []string       `json:"instructions"`
	Nutrition    map[string]any `json:"nutrition,omitempty"`
	Tags         []string       `json:"tags"`
	Rating       float64        `json:"rating,omitempty"`
	RatingCount  int64          `json:"ratingCount,omitempty"`
}
