package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"gradpath/cmd/web/contentclient"
	"gradpath/cmd/web/listview"
)

// ViewsHandler serves the JSON navigation API. A mounted view lives in the
// registry so next/prev/jump work on the held snapshot without refetching.
type ViewsHandler struct {
	registry  *listview.Registry
	factories map[contentclient.Resource]listview.Factory
}

func NewViewsHandler(registry *listview.Registry, factories map[contentclient.Resource]listview.Factory) *ViewsHandler {
	return &ViewsHandler{registry: registry, factories: factories}
}

type createViewRequest struct {
	Resource string `json:"resource" binding:"required,oneof=services blogs events"`
	Category string `json:"category"`
	Tag      string `json:"tag"`
	Upcoming bool   `json:"upcoming"`
	Page     int    `json:"page" binding:"gte=0"`
}

type viewResponse struct {
	ViewID    string    `json:"view_id"`
	Resource  string    `json:"resource"`
	ExpiresAt time.Time `json:"expires_at"`
	Moved     *bool     `json:"moved,omitempty"`
	State     any       `json:"state"`
}

// Register mounts the routes under g.
func (h *ViewsHandler) Register(g *gin.RouterGroup) {
	g.POST("", h.Create)
	g.GET("/:id", h.Get)
	g.POST("/:id/next", h.navigate(func(s listview.Session, _ *gin.Context) (bool, bool) { return s.Advance(), true }))
	g.POST("/:id/prev", h.navigate(func(s listview.Session, _ *gin.Context) (bool, bool) { return s.Retreat(), true }))
	g.POST("/:id/jump/:page", h.navigate(func(s listview.Session, c *gin.Context) (bool, bool) {
		page, err := strconv.Atoi(c.Param("page"))
		if err != nil {
			return false, false
		}
		return s.JumpTo(page), true
	}))
	g.POST("/:id/reload", h.Reload)
	g.DELETE("/:id", h.Delete)
}

// Create mounts a view and registers it.
func (h *ViewsHandler) Create(c *gin.Context) {
	var req createViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "detail": err.Error()})
		return
	}
	resource := contentclient.Resource(req.Resource)
	factory, ok := h.factories[resource]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown_resource"})
		return
	}

	filters := map[string]string{"category": req.Category, "tag": req.Tag}
	if req.Upcoming {
		filters["upcoming"] = "true"
	}
	session, err := factory(c.Request.Context(), filters)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "mount_failed"})
		return
	}
	if err := session.Err(); err != nil {
		_ = c.Error(err)
	}
	if req.Page > 1 {
		session.JumpTo(req.Page)
	}

	entry := h.registry.Add(req.Resource, session)
	c.JSON(http.StatusCreated, toResponse(entry, nil))
}

// Get returns the current state of a view.
func (h *ViewsHandler) Get(c *gin.Context) {
	entry, ok := h.lookup(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, toResponse(entry, nil))
}

// Reload refetches the view's collection, keeping its page when still valid.
func (h *ViewsHandler) Reload(c *gin.Context) {
	entry, ok := h.lookup(c)
	if !ok {
		return
	}
	if err := entry.Session.Reload(c.Request.Context()); err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusConflict, gin.H{"error": "view_unmounted"})
		return
	}
	if err := entry.Session.Err(); err != nil {
		_ = c.Error(err)
	}
	c.JSON(http.StatusOK, toResponse(entry, nil))
}

// Delete unmounts a view.
func (h *ViewsHandler) Delete(c *gin.Context) {
	if !h.registry.Remove(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "view_not_found"})
		return
	}
	c.Status(http.StatusNoContent)
}

// navigate wraps a move. move returns (moved, valid); valid=false means a malformed request.
func (h *ViewsHandler) navigate(move func(listview.Session, *gin.Context) (bool, bool)) gin.HandlerFunc {
	return func(c *gin.Context) {
		entry, ok := h.lookup(c)
		if !ok {
			return
		}
		moved, valid := move(entry.Session, c)
		if !valid {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_page"})
			return
		}
		c.JSON(http.StatusOK, toResponse(entry, &moved))
	}
}

func (h *ViewsHandler) lookup(c *gin.Context) (listview.Entry, bool) {
	entry, ok := h.registry.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "view_not_found"})
		return listview.Entry{}, false
	}
	return entry, true
}

func toResponse(e listview.Entry, moved *bool) viewResponse {
	return viewResponse{
		ViewID:    e.ID,
		Resource:  e.Resource,
		ExpiresAt: e.ExpiresAt,
		Moved:     moved,
		State:     e.Session.Snapshot(),
	}
}
