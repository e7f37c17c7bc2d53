package xlautomaten

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const articleJSON = `{
	"id": 11,
	"number": "A-11",
	"name": "Cola",
	"price": 1.5,
	"supplier_id": 7,
	"is_lend": false,
	"created_at": "2023-01-02 03:04:05",
	"updated_at": "2023-01-02 03:04:05"
}`

func TestArticleToDomain_Defaults(t *testing.T) {
	t.Parallel()

	var dto apiArticleResponse
	require.NoError(t, json.Unmarshal([]byte(articleJSON), &dto))

	article, err := dto.toDomain()
	require.NoError(t, err)

	// Absent fields fall back to the documented defaults.
	assert.True(t, article.SpiralAsPusher)
	assert.True(t, article.Photocell)
	assert.True(t, article.DoubleTurn)
	assert.False(t, article.Pushable)
	assert.False(t, article.Archived)
	assert.Equal(t, "19.00", article.TaxRate)
	assert.Equal(t, 0, article.Priority)
	assert.Nil(t, article.Price2)
}

func TestArticleToDomain_ArchivedAcceptsBooleanLiteral(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{`true`, `1`} {
		var dto apiArticleResponse
		doc := `{
			"id": 11,
			"number": "A-11",
			"name": "Cola",
			"price": 1.5,
			"supplier_id": 7,
			"is_lend": false,
			"archived": ` + raw + `,
			"created_at": "2023-01-02 03:04:05",
			"updated_at": "2023-01-02 03:04:05"
		}`
		require.NoError(t, json.Unmarshal([]byte(doc), &dto))

		article, err := dto.toDomain()
		require.NoError(t, err)
		assert.True(t, article.Archived, "archived %s", raw)
	}
}

func TestArticleBody(t *testing.T) {
	t.Parallel()

	body := articleBody(NewArticle{
		Number:     "A-11",
		Name:       "Cola",
		Price:      1.5,
		SupplierID: 7,
	})
	assert.Equal(t, map[string]any{
		"number":      "A-11",
		"name":        "Cola",
		"price":       1.5,
		"supplier_id": 7,
	}, body)

	body = articleBody(NewArticle{
		Number:      "A-11",
		Name:        "Cola",
		Price:       1.5,
		SupplierID:  7,
		Description: ptr(""),
		Blocked:     ptr(true),
	})
	assert.Nil(t, body["description"])
	assert.Equal(t, 1, body["blocked"])
}

func TestUpdateArticle_FullPatchSkipsFetch(t *testing.T) {
	t.Parallel()

	var methods []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		methods = append(methods, r.Method)
		_, _ = w.Write([]byte(articleJSON))
	}))
	t.Cleanup(srv.Close)

	client := NewClient(WithBaseURL(srv.URL), WithToken("t"),
		WithLogger(slog.New(slog.DiscardHandler)))

	_, err := client.UpdateArticle(context.Background(), 11, ArticlePatch{
		Number:     ptr("A-11"),
		Name:       ptr("Cola Zero"),
		Price:      ptr(1.6),
		SupplierID: ptr(7),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{http.MethodPut}, methods)
}

func TestUpdateArticle_PartialPatchFetchesFirst(t *testing.T) {
	t.Parallel()

	var methods []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		methods = append(methods, r.Method)
		_, _ = w.Write([]byte(articleJSON))
	}))
	t.Cleanup(srv.Close)

	client := NewClient(WithBaseURL(srv.URL), WithToken("t"),
		WithLogger(slog.New(slog.DiscardHandler)))

	_, err := client.UpdateArticle(context.Background(), 11, ArticlePatch{Price: ptr(1.6)})
	require.NoError(t, err)
	assert.Equal(t, []string{http.MethodGet, http.MethodPut}, methods)
}

func TestArchiveArticle_UsesDelete(t *testing.T) {
	t.Parallel()

	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(articleJSON))
	}))
	t.Cleanup(srv.Close)

	client := NewClient(WithBaseURL(srv.URL), WithToken("t"),
		WithLogger(slog.New(slog.DiscardHandler)))

	_, err := client.ArchiveArticle(context.Background(), 11)
	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/article/11", gotPath)
}

func TestGetArticles_CarriesCategories(t *testing.T) {
	t.Parallel()

	body := `[{
		"id": 11,
		"number": "A-11",
		"name": "Cola",
		"price": 1.5,
		"supplier_id": 7,
		"is_lend": false,
		"categories": [{
			"id": 3,
			"name": "Getraenke",
			"pivot": {
				"categorizable_id": 11,
				"category_id": 3,
				"categorizable_type": "App\\Article"
			},
			"created_at": "2023-01-02 03:04:05",
			"updated_at": "2023-01-02 03:04:05"
		}],
		"created_at": "2023-01-02 03:04:05",
		"updated_at": "2023-01-02 03:04:05"
	}]`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	client := NewClient(WithBaseURL(srv.URL), WithToken("t"),
		WithLogger(slog.New(slog.DiscardHandler)))

	articles, err := client.GetArticles(context.Background())
	require.NoError(t, err)
	require.Len(t, articles, 1)
	require.Len(t, articles[0].Categories, 1)
	assert.Equal(t, "Getraenke", articles[0].Categories[0].Name)
	assert.Equal(t, 11, articles[0].Categories[0].Pivot.CategorizableID)
}
