package webserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// fail writes the storefront error body: a human-readable message plus,
// for server-side failures, the underlying error string.
func fail(c echo.Context, status int, message string, err error) error {
	body := echo.Map{"message": message}
	if err != nil {
		body["error"] = err.Error()
	}
	return c.JSON(status, body)
}

func ok(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

// paged wraps a list response with its pagination window.
func paged(c echo.Context, data interface{}, total int64, page, pageSize int) error {
	return c.JSON(http.StatusOK, echo.Map{
		"data":     data,
		"total":    total,
		"page":     page,
		"pageSize": pageSize,
	})
}

func parsePagination(c echo.Context) (page, pageSize int) {
	page = 1
	pageSize = 20
	if p, err := strconv.Atoi(c.QueryParam("page")); err == nil && p > 0 {
		page = p
	}
	if ps, err := strconv.Atoi(c.QueryParam("pageSize")); err == nil && ps > 0 && ps <= 500 {
		pageSize = ps
	}
	return page, pageSize
}

func parseIDParam(c echo.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}
