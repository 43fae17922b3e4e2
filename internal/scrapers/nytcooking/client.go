package nytcooking

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"recipebox-backend/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("scrapers/nytcooking")

// RecipeBoxPageSize is the fixed page size of the recipe box search
// endpoint. A page with fewer results signals the last page.
const RecipeBoxPageSize = 48

type Client struct {
	http     *resty.Client
	userId   string
	pageSize int
}

type ClientOptions struct {
	// numeric account id, appears in the recipe box api path
	UserId string
	// full cookie header of a logged-in session
	Cookie string
	// overrides https://cooking.nytimes.com, for tests
	BaseUrl string
	// overrides RecipeBoxPageSize, for tests
	PageSize int
}

func NewClient(opts ClientOptions) Client {
	baseUrl := opts.BaseUrl
	if baseUrl == "" {
		baseUrl = "https://cooking.nytimes.com"
	}
	pageSize := opts.PageSize
	if pageSize == 0 {
		pageSize = RecipeBoxPageSize
	}

	client := resty.New()
	client.SetBaseURL(baseUrl)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	client.SetHeader("accept", "*/*")
	client.SetHeader("x-cooking-api", "cooking-frontend")
	client.SetHeader("referer", baseUrl+"/recipe-box")
	if opts.Cookie != "" {
		client.SetHeader("cookie", opts.Cookie)
	}
	client.SetTimeout(time.Second * 30)

	telemetry.InstrumentResty(client, "scrapers/nytcooking/http")

	return Client{
		http:     client,
		userId:   opts.UserId,
		pageSize: pageSize,
	}
}

type boxPage struct {
	Collectables []struct {
		Url string `json:"url"`
	} `json:"collectables"`
}

func (c Client) fetchBoxPage(ctx context.Context, page int) ([]string, error) {
	var body boxPage
	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"q":             "",
			"per_page":      fmt.Sprint(c.pageSize),
			"page":          fmt.Sprint(page),
			"include_crops": "ipad_mediumThreeByTwo440,card",
		}).
		SetResult(&body).
		Get(fmt.Sprintf("/api/v2/users/%s/search/recipe_box_search", c.userId))
	if err != nil {
		return nil, err
	}
	if res.IsError() {
		return nil, fmt.Errorf("fetch recipe box page %d: %s", page, res.Status())
	}

	links := make([]string, 0, len(body.Collectables))
	for _, collectable := range body.Collectables {
		if collectable.Url == "" {
			continue
		}
		links = append(links, collectable.Url)
	}
	return links, nil
}

// CollectLinks walks every page of the account's recipe box and returns the
// deduplicated bookmark links. Any page failure aborts the whole collection:
// a partial link list would silently shrink the downstream dataset.
func (c Client) CollectLinks(ctx context.Context) ([]string, error) {
	ctx, span := tracer.Start(ctx, "CollectLinks")
	defer span.End()

	var all []string
	for page := 1; ; page++ {
		links, err := c.fetchBoxPage(ctx, page)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}

		all = append(all, links...)
		slog.Info("collected recipe box page", "page", page, "links", len(all))

		if len(links) < c.pageSize {
			break
		}
	}

	// the same bookmark can reappear across page windows if the remote
	// list mutates mid-scan
	seen := map[string]bool{}
	deduped := make([]string, 0, len(all))
	for _, link := range all {
		if seen[link] {
			continue
		}
		seen[link] = true
		deduped = append(deduped, link)
	}

	span.SetAttributes(attribute.Int("links", len(deduped)))
	return deduped, nil
}

// GetRecipe fetches one recipe page and extracts its structured data.
func (c Client) GetRecipe(ctx context.Context, link string) (Recipe, error) {
	res, err := c.http.R().
		SetContext(ctx).
		SetHeader("accept", "text/html,application/xhtml+xml,application/xml").
		Get(link)
	if err != nil {
		return Recipe{}, err
	}
	if res.IsError() {
		return Recipe{}, fmt.Errorf("fetch %s: %s", link, res.Status())
	}

	recipe, ok := ExtractRecipe(res.String())
	if !ok {
		return Recipe{}, fmt.Errorf("no recipe entity in %s", link)
	}
	return recipe, nil
}

// FetchRecipes fetches every link concurrently. The result is index-aligned
// with links; a failed fetch or extraction leaves a nil slot rather than
// aborting the batch.
func (c Client) FetchRecipes(ctx context.Context, links []string) []*Recipe {
	ctx, span := tracer.Start(ctx, "FetchRecipes")
	defer span.End()

	out := make([]*Recipe, len(links))
	wg := sync.WaitGroup{}

	for i, link := range links {
		wg.Add(1)
		go func(i int, link string) {
			defer wg.Done()

			recipe, err := c.GetRecipe(ctx, link)
			if err != nil {
				slog.Warn("skipping recipe", "link", link, "err", err)
				return
			}
			// each goroutine owns exactly one slot
			out[i] = &recipe
		}(i, link)
	}
	wg.Wait()

	fetched := 0
	for _, r := range out {
		if r != nil {
			fetched++
		}
	}
	span.SetAttributes(
		attribute.Int("links", len(links)),
		attribute.Int("fetched", fetched),
	)
	return out
}
