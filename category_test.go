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

func TestCategoryBody_AlwaysSendsEveryField(t *testing.T) {
	t.Parallel()

	body := categoryBody(NewCategory{Name: "Getraenke"})
	assert.Equal(t, "Getraenke", body["name"])
	assert.Nil(t, body["description"])
	assert.Nil(t, body["main_img"])
	assert.Nil(t, body["preview_img"])
	assert.Equal(t, 0, body["priority"])

	body = categoryBody(NewCategory{Name: "Getraenke", Description: ptr("kalt"), Priority: ptr(3)})
	assert.Equal(t, "kalt", body["description"])
	assert.Equal(t, 3, body["priority"])
}

func TestCategoryToDomain_EmptyStringsBecomeAbsent(t *testing.T) {
	t.Parallel()

	raw := `{
		"id": 3,
		"name": "Getraenke",
		"description": "",
		"main_img": null,
		"created_at": "2023-01-02 03:04:05",
		"updated_at": "2023-01-02 03:04:05"
	}`
	var dto apiCategoryResponse
	require.NoError(t, json.Unmarshal([]byte(raw), &dto))

	category, err := dto.toDomain()
	require.NoError(t, err)
	assert.Nil(t, category.Description)
	assert.Nil(t, category.Image)
	assert.Equal(t, 0, category.Priority)
}

func TestDeleteCategory_ReturnsOrphanedArticles(t *testing.T) {
	t.Parallel()

	body := `{
		"id": 3,
		"name": "Getraenke",
		"articles": [` + articleJSON + `],
		"created_at": "2023-01-02 03:04:05",
		"updated_at": "2023-01-02 03:04:05"
	}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	client := NewClient(WithBaseURL(srv.URL), WithToken("t"),
		WithLogger(slog.New(slog.DiscardHandler)))

	deleted, err := client.DeleteCategory(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, deleted.Articles, 1)
	assert.Equal(t, "Cola", deleted.Articles[0].Name)
}
