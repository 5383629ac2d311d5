package handlers

import (
	"github.com/gin-gonic/gin"

	"gradpath/dto"
)

// swag cannot follow type parameters, so each route gets a concrete constructor to carry its annotations.

// ListServicesHandler godoc
// @Summary      List services
// @Description  List consulting services ordered for display
// @Tags         services
// @Param        category  query  string  false  "Category (case-insensitive exact match)"
// @Produce      json
// @Success      200  {object}  dto.ServiceListDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /services [get]
func ListServicesHandler(svc Reader[dto.ServiceDTO]) gin.HandlerFunc {
	return ListHandler(svc)
}

// GetServiceHandler godoc
// @Summary      Get service by id
// @Tags         services
// @Param        id  path  string  true  "ObjectID"
// @Produce      json
// @Success      200  {object}  object{data=dto.ServiceDTO}
// @Failure      404  {object}  object{data=object}
// @Router       /services/{id} [get]
func GetServiceHandler(svc Reader[dto.ServiceDTO]) gin.HandlerFunc {
	return GetByIDHandler(svc)
}

// GetServiceBySlugHandler godoc
// @Summary      Get service by slug
// @Tags         services
// @Param        slug  path  string  true  "Slug"
// @Produce      json
// @Success      200  {object}  object{data=dto.ServiceDTO}
// @Failure      404  {object}  object{data=object}
// @Router       /services/slug/{slug} [get]
func GetServiceBySlugHandler(svc Reader[dto.ServiceDTO]) gin.HandlerFunc {
	return GetBySlugHandler(svc)
}

// ListBlogsHandler godoc
// @Summary      List blogs
// @Description  List blog posts, newest first
// @Tags         blogs
// @Param        category  query  string  false  "Category (case-insensitive exact match)"
// @Param        tag       query  string  false  "Tag (case-insensitive exact match)"
// @Produce      json
// @Success      200  {object}  dto.BlogListDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /blogs [get]
func ListBlogsHandler(svc Reader[dto.BlogDTO]) gin.HandlerFunc {
	return ListHandler(svc)
}

// GetBlogHandler godoc
// @Summary      Get blog by id
// @Tags         blogs
// @Param        id  path  string  true  "ObjectID"
// @Produce      json
// @Success      200  {object}  object{data=dto.BlogDTO}
// @Failure      404  {object}  object{data=object}
// @Router       /blogs/{id} [get]
func GetBlogHandler(svc Reader[dto.BlogDTO]) gin.HandlerFunc {
	return GetByIDHandler(svc)
}

// GetBlogBySlugHandler godoc
// @Summary      Get blog by slug
// @Tags         blogs
// @Param        slug  path  string  true  "Slug"
// @Produce      json
// @Success      200  {object}  object{data=dto.BlogDTO}
// @Failure      404  {object}  object{data=object}
// @Router       /blogs/slug/{slug} [get]
func GetBlogBySlugHandler(svc Reader[dto.BlogDTO]) gin.HandlerFunc {
	return GetBySlugHandler(svc)
}

// ListEventsHandler godoc
// @Summary      List events
// @Description  List events by start time
// @Tags         events
// @Param        category  query  string  false  "Category (case-insensitive exact match)"
// @Param        upcoming  query  bool    false  "Only events starting now or later"
// @Produce      json
// @Success      200  {object}  dto.EventListDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /events [get]
func ListEventsHandler(svc Reader[dto.EventDTO]) gin.HandlerFunc {
	return ListHandler(svc)
}

// GetEventHandler godoc
// @Summary      Get event by id
// @Tags         events
// @Param        id  path  string  true  "ObjectID"
// @Produce      json
// @Success      200  {object}  object{data=dto.EventDTO}
// @Failure      404  {object}  object{data=object}
// @Router       /events/{id} [get]
func GetEventHandler(svc Reader[dto.EventDTO]) gin.HandlerFunc {
	return GetByIDHandler(svc)
}

// GetEventBySlugHandler godoc
// @Summary      Get event by slug
// @Tags         events
// @Param        slug  path  string  true  "Slug"
// @Produce      json
// @Success      200  {object}  object{data=dto.EventDTO}
// @Failure      404  {object}  object{data=object}
// @Router       /events/slug/{slug} [get]
func GetEventBySlugHandler(svc Reader[dto.EventDTO]) gin.HandlerFunc {
	return GetBySlugHandler(svc)
}
