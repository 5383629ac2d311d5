package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gradpath/cmd/internal/logger"
	"gradpath/dto"
	"gradpath/services"
)

// Reader is the read surface of one content kind.
type Reader[T any] interface {
	List(ctx context.Context, in services.ListInput) ([]T, error)
	GetByID(ctx context.Context, hexID string) (*T, error)
	GetBySlug(ctx context.Context, slug string) (*T, error)
}

// ListHandler serves GET /{resource} as {"data": [...]}.
func ListHandler[T any](svc Reader[T]) gin.HandlerFunc {
	return func(c *gin.Context) {
		upcoming, _ := strconv.ParseBool(c.Query("upcoming"))
		items, err := svc.List(c.Request.Context(), services.ListInput{
			Category: c.Query("category"),
			Tag:      c.Query("tag"),
			Upcoming: upcoming,
		})
		if err != nil {
			internalError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.Envelope[[]T]{Data: items})
	}
}

// GetByIDHandler serves GET /{resource}/:id as {"data": item} or 404 {"data": null}.
func GetByIDHandler[T any](svc Reader[T]) gin.HandlerFunc {
	return func(c *gin.Context) {
		item, err := svc.GetByID(c.Request.Context(), c.Param("id"))
		writeOne(c, item, err)
	}
}

// GetBySlugHandler serves GET /{resource}/slug/:slug.
func GetBySlugHandler[T any](svc Reader[T]) gin.HandlerFunc {
	return func(c *gin.Context) {
		item, err := svc.GetBySlug(c.Request.Context(), c.Param("slug"))
		writeOne(c, item, err)
	}
}

func writeOne[T any](c *gin.Context, item *T, err error) {
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, dto.Envelope[*T]{Data: nil})
		return
	}
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Envelope[*T]{Data: item})
}

func internalError(c *gin.Context, err error) {
	_ = c.Error(err)
	logger.ErrorWithFields("content read failed", logger.Fields{
		"path":  c.Request.URL.Path,
		"error": err.Error(),
	})
	c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "internal_error"})
}
