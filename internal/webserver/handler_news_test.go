package webserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopquanao/storefront/internal/news"
)

type mockNews struct {
	lastPage  int
	lastLimit int
	articles  map[string]news.Article
}

func (m *mockNews) List(ctx context.Context, page, limit int) *news.ListResult {
	m.lastPage = page
	m.lastLimit = limit
	rows := make([]news.Article, 0, len(m.articles))
	for _, a := range m.articles {
		rows = append(rows, a)
	}
	return &news.ListResult{
		Articles:   rows,
		Pagination: news.Pagination{Page: page, Limit: limit, Total: len(rows)},
	}
}

func (m *mockNews) Detail(ctx context.Context, id string) (*news.Article, error) {
	a, found := m.articles[id]
	if !found {
		return nil, news.ErrArticleNotFound
	}
	return &a, nil
}

func TestListNewsParsesPagination(t *testing.T) {
	mock := &mockNews{articles: map[string]news.Article{}}
	h := NewNewsHandler(mock)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/news?page=3&limit=5", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.ListNews(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 3, mock.lastPage)
	assert.Equal(t, 5, mock.lastLimit)
}

func TestListNewsDefaultsOnGarbage(t *testing.T) {
	mock := &mockNews{articles: map[string]news.Article{}}
	h := NewNewsHandler(mock)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/news?page=zero&limit=-4", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.ListNews(e.NewContext(req, rec)))

	assert.Equal(t, 1, mock.lastPage)
	assert.Equal(t, 10, mock.lastLimit)
}

func TestGetNewsHandler(t *testing.T) {
	mock := &mockNews{articles: map[string]news.Article{
		"news_1_0": {ID: "news_1_0", Title: "Runway recap", Author: "Fashion Editor"},
	}}
	h := NewNewsHandler(mock)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/news/news_1_0", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("news_1_0")
	require.NoError(t, h.GetNews(c))

	require.Equal(t, http.StatusOK, rec.Code)
	var article news.Article
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &article))
	assert.Equal(t, "Runway recap", article.Title)
}

func TestGetNewsNotFound(t *testing.T) {
	h := NewNewsHandler(&mockNews{articles: map[string]news.Article{}})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/news/ghost", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("ghost")
	require.NoError(t, h.GetNews(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Article not found", body["message"])
}
