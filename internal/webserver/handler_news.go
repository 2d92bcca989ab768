package webserver

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/shopquanao/storefront/internal/news"
)

// NewsProvider is the news surface the handlers need.
type NewsProvider interface {
	List(ctx context.Context, page, limit int) *news.ListResult
	Detail(ctx context.Context, id string) (*news.Article, error)
}

type NewsHandler struct {
	svc NewsProvider
}

func NewNewsHandler(svc NewsProvider) *NewsHandler {
	return &NewsHandler{svc: svc}
}

// ListNews proxies one page of the news feed; the client never sees an
// upstream failure, only the fallback payload.
func (h *NewsHandler) ListNews(c echo.Context) error {
	page := 1
	limit := 10
	if p, err := strconv.Atoi(c.QueryParam("page")); err == nil && p > 0 {
		page = p
	}
	if l, err := strconv.Atoi(c.QueryParam("limit")); err == nil && l > 0 {
		limit = l
	}
	return ok(c, h.svc.List(c.Request().Context(), page, limit))
}

func (h *NewsHandler) GetNews(c echo.Context) error {
	article, err := h.svc.Detail(c.Request().Context(), c.Param("id"))
	if errors.Is(err, news.ErrArticleNotFound) {
		return fail(c, http.StatusNotFound, "Article not found", nil)
	}
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Failed to load article", err)
	}
	return ok(c, article)
}
