// Package news proxies a hosted news feed for the storefront sidebar.
// The upstream is best-effort: any failure is replaced with a static
// fallback payload so the sidebar always renders.
package news

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/guonaihong/gout"
	"go.uber.org/zap"
)

// ErrArticleNotFound is returned for identifiers that match neither the
// proxied nor the fallback naming scheme.
var ErrArticleNotFound = errors.New("article not found")

const fetchTimeout = 10 * time.Second

// Article is the reshaped representation served to the frontend.
type Article struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	URLToImage  string `json:"urlToImage"`
	PublishedAt string `json:"publishedAt"`
	Source      string `json:"source"`
	Content     string `json:"content"`
	Author      string `json:"author"`
}

// Pagination mirrors the upstream paging window.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// ListResult is the /news response body.
type ListResult struct {
	Articles   []Article  `json:"articles"`
	Pagination Pagination `json:"pagination"`
}

type upstreamArticle struct {
	Source struct {
		Name string `json:"name"`
	} `json:"source"`
	Author      string `json:"author"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	URLToImage  string `json:"urlToImage"`
	PublishedAt string `json:"publishedAt"`
	Content     string `json:"content"`
}

type upstreamResponse struct {
	Status       string            `json:"status"`
	TotalResults int               `json:"totalResults"`
	Articles     []upstreamArticle `json:"articles"`
}

// Client queries the news endpoint and reshapes the results.
type Client struct {
	endpoint string
	apiKey   string
	query    string
	language string
}

func NewClient(endpoint, apiKey, query, language string) *Client {
	return &Client{endpoint: endpoint, apiKey: apiKey, query: query, language: language}
}

func (c *Client) fetch(ctx context.Context, page, pageSize int) (*upstreamResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	var (
		resp upstreamResponse
		code int
	)
	err := gout.GET(c.endpoint).
		WithContext(ctx).
		SetQuery(gout.H{
			"q":        c.query,
			"language": c.language,
			"sortBy":   "publishedAt",
			"page":     page,
			"pageSize": pageSize,
			"apiKey":   c.apiKey,
		}).
		Code(&code).
		BindJSON(&resp).
		Do()
	if err != nil {
		return nil, err
	}
	if code != 200 {
		return nil, fmt.Errorf("news upstream returned status %d", code)
	}
	return &resp, nil
}

// List returns one page of articles. On any upstream failure it logs
// and substitutes the static fallback payload.
func (c *Client) List(ctx context.Context, page, limit int) *ListResult {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	resp, err := c.fetch(ctx, page, limit)
	if err != nil {
		zap.L().Warn("news upstream failed, serving fallback", zap.Error(err))
		return fallbackList()
	}

	articles := make([]Article, len(resp.Articles))
	for i, a := range resp.Articles {
		articles[i] = reshape(fmt.Sprintf("news_%d_%d", page, i), a)
	}
	return &ListResult{
		Articles:   articles,
		Pagination: Pagination{Page: page, Limit: limit, Total: resp.TotalResults},
	}
}

// Detail resolves one article by the identifier scheme used in List:
// "news_<page>_<index>" re-fetches the page, "fallback_<n>" synthesizes
// the static article. Upstream failures degrade to the static payload.
func (c *Client) Detail(ctx context.Context, id string) (*Article, error) {
	switch {
	case strings.HasPrefix(id, "news_"):
		parts := strings.Split(id, "_")
		if len(parts) != 3 {
			return nil, ErrArticleNotFound
		}
		page, err1 := strconv.Atoi(parts[1])
		index, err2 := strconv.Atoi(parts[2])
		if err1 != nil || err2 != nil || page < 1 || index < 0 {
			return nil, ErrArticleNotFound
		}

		resp, err := c.fetch(ctx, page, 20)
		if err != nil {
			zap.L().Warn("news upstream failed, serving fallback detail", zap.Error(err))
			a := fallbackDetail(id)
			return &a, nil
		}
		if index >= len(resp.Articles) {
			return nil, ErrArticleNotFound
		}
		a := reshape(id, resp.Articles[index])
		if a.Content == "" {
			a.Content = fmt.Sprintf("%s\n\nRead the full story at: %s", a.Description, a.URL)
		}
		return &a, nil

	case strings.HasPrefix(id, "fallback_"):
		a := fallbackDetail(id)
		return &a, nil

	default:
		return nil, ErrArticleNotFound
	}
}

func reshape(id string, a upstreamArticle) Article {
	author := a.Author
	if author == "" {
		author = "Fashion Editor"
	}
	return Article{
		ID:          id,
		Title:       a.Title,
		Description: a.Description,
		URL:         a.URL,
		URLToImage:  a.URLToImage,
		PublishedAt: a.PublishedAt,
		Source:      a.Source.Name,
		Content:     a.Content,
		Author:      author,
	}
}

func fallbackList() *ListResult {
	articles := make([]Article, 10)
	for i := range articles {
		articles[i] = fallbackDetail(fmt.Sprintf("fallback_%d", i+1))
	}
	return &ListResult{
		Articles:   articles,
		Pagination: Pagination{Page: 1, Limit: 10, Total: 50},
	}
}

func fallbackDetail(id string) Article {
	n := strings.TrimPrefix(id, "fallback_")
	return Article{
		ID:          id,
		Title:       fmt.Sprintf("Fashion trends spotlight %s", n),
		Description: fmt.Sprintf("The latest looks and wardrobe ideas, issue %s", n),
		URL:         "#",
		URLToImage:  fmt.Sprintf("https://images.unsplash.com/photo-1445205170230-053b83016050?w=800&h=600&fit=crop&ixid=%s", n),
		PublishedAt: time.Now().Format(time.RFC3339),
		Source:      "Storefront Style Desk",
		Content:     fmt.Sprintf("A closer look at this season's styles, issue %s. The news feed is temporarily unavailable, so this is locally generated content.", n),
		Author:      "Fashion Editor",
	}
}
