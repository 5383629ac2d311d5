package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"gradpath/cmd/internal/logger"
	"gradpath/cmd/web/contentclient"
	"gradpath/cmd/web/listview"
)

// listFilters are the query parameters forwarded to the content API.
var listFilters = []string{"category", "tag", "upcoming"}

// Listing describes one paginated page of the site.
type Listing struct {
	Resource contentclient.Resource
	Title    string
	Template string
	Factory  listview.Factory
}

type listPage struct {
	Title    string
	Path     string
	Filters  map[string]string
	State    any
	Resource contentclient.Resource
}

type detailPage struct {
	Title string
	Item  any
}

type messagePage struct {
	Title   string
	Message string
}

// filtersFrom keeps only the known listing filters of the request query.
func filtersFrom(c *gin.Context) map[string]string {
	out := map[string]string{}
	for _, key := range listFilters {
		if v := strings.TrimSpace(c.Query(key)); v != "" {
			out[key] = v
		}
	}
	if v, ok := out["upcoming"]; ok {
		if b, err := strconv.ParseBool(v); err != nil || !b {
			delete(out, "upcoming")
		} else {
			out["upcoming"] = "true"
		}
	}
	return out
}

// ListPageHandler mounts a fresh view per request, moves to ?page= when it is in range,
// renders and unmounts. A page outside the list shows page 1.
func ListPageHandler(l Listing) gin.HandlerFunc {
	return func(c *gin.Context) {
		filters := filtersFrom(c)
		session, err := l.Factory(c.Request.Context(), filters)
		if err != nil {
			renderError(c, http.StatusInternalServerError, err)
			return
		}
		defer session.Unmount()

		if page, err := strconv.Atoi(c.Query("page")); err == nil && page > 1 {
			session.JumpTo(page)
		}
		if err := session.Err(); err != nil {
			_ = c.Error(err)
		}

		c.HTML(http.StatusOK, l.Template, listPage{
			Title:    l.Title,
			Path:     c.Request.URL.Path,
			Filters:  filters,
			State:    session.Snapshot(),
			Resource: l.Resource,
		})
	}
}

// DetailPageHandler renders the item named by :slug, 404 when the API has no such item.
func DetailPageHandler[T any](template string, fetch func(ctx context.Context, slug string) contentclient.ItemResult[T], title func(T) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		res := fetch(c.Request.Context(), c.Param("slug"))
		if res.Err != nil {
			renderError(c, http.StatusServiceUnavailable, res.Err)
			return
		}
		if res.Data == nil {
			NotFound(c)
			return
		}
		c.HTML(http.StatusOK, template, detailPage{Title: title(*res.Data), Item: res.Data})
	}
}

// NotFound renders the 404 page.
func NotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "not_found.tmpl", messagePage{
		Title:   "Not found",
		Message: "The page you are looking for does not exist or has been moved.",
	})
}

func renderError(c *gin.Context, status int, err error) {
	_ = c.Error(err)
	logger.ErrorWithFields("page render failed", logger.Fields{
		"path":   c.Request.URL.Path,
		"status": status,
		"error":  err.Error(),
	})
	c.HTML(status, "error.tmpl", messagePage{
		Title:   "Error",
		Message: "We could not load this page. Please try again in a moment.",
	})
}
