package nytcooking

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func recipeHtml(id int, name string) string {
	return fmt.Sprintf(`<html><script type="application/ld+json">
{"@type": "Recipe", "url": "https://cooking.nytimes.com/recipes/%d-x", "name": "%s"}
</script></html>`, id, name)
}

func TestCollectLinks(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v2/users/42/search/recipe_box_search", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "2", r.URL.Query().Get("per_page"))
		switch r.URL.Query().Get("page") {
		case "1":
			fmt.Fprint(w, `{"collectables": [{"url": "/recipes/1-a"}, {"url": "/recipes/2-b"}]}`)
		case "2":
			// short page ends the scan, duplicate link exercises dedup
			fmt.Fprint(w, `{"collectables": [{"url": "/recipes/1-a"}]}`)
		default:
			t.Errorf("unexpected page %q", r.URL.Query().Get("page"))
		}
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client := NewClient(ClientOptions{
		UserId:   "42",
		BaseUrl:  server.URL,
		PageSize: 2,
	})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	links, err := client.CollectLinks(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"/recipes/1-a", "/recipes/2-b"}, links)
}

func TestCollectLinksAbortsOnFailedPage(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v2/users/42/search/recipe_box_search", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") == "1" {
			fmt.Fprint(w, `{"collectables": [{"url": "/recipes/1-a"}, {"url": "/recipes/2-b"}]}`)
			return
		}
		w.WriteHeader(http.StatusForbidden)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client := NewClient(ClientOptions{
		UserId:   "42",
		BaseUrl:  server.URL,
		PageSize: 2,
	})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	links, err := client.CollectLinks(ctx)
	require.Error(t, err)
	require.Nil(t, links)
}

func TestFetchRecipes(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/recipes/1-a", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, recipeHtml(1, "First"))
	})
	mux.HandleFunc("/recipes/2-b", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	mux.HandleFunc("/recipes/3-c", func(w http.ResponseWriter, r *http.Request) {
		// fetch succeeds but the page has no recipe entity
		fmt.Fprint(w, `<html><body>nothing here</body></html>`)
	})
	mux.HandleFunc("/recipes/4-d", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, recipeHtml(4, "Fourth"))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client := NewClient(ClientOptions{
		UserId:  "42",
		BaseUrl: server.URL,
	})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	recipes := client.FetchRecipes(ctx, []string{
		"/recipes/1-a",
		"/recipes/2-b",
		"/recipes/3-c",
		"/recipes/4-d",
	})
	require.Len(t, recipes, 4)
	require.NotNil(t, recipes[0])
	require.Equal(t, "First", recipes[0].Name)
	require.Nil(t, recipes[1])
	require.Nil(t, recipes[2])
	require.NotNil(t, recipes[3])
	require.Equal(t, "Fourth", recipes[3].Name)
}
