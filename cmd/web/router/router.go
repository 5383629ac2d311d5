package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"gradpath/cmd/internal/middleware"
	"gradpath/cmd/web/contentclient"
	"gradpath/cmd/web/handlers"
	"gradpath/cmd/web/listview"
	"gradpath/cmd/web/render"
	"gradpath/config"
)

// New wires the site pages and the view navigation API. The returned registry
// holds the mounted navigation views; close it on shutdown.
func New(client *contentclient.Client, listing config.ListingConfig) (*gin.Engine, *listview.Registry, error) {
	tmpl, err := render.Templates()
	if err != nil {
		return nil, nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestTrace("web"))
	r.SetHTMLTemplate(tmpl)

	siblings := 1
	if listing.SiblingPages != nil {
		siblings = *listing.SiblingPages
	}
	opts := []listview.Option{listview.WithSiblings(siblings)}
	factories := map[contentclient.Resource]listview.Factory{
		contentclient.Services: listview.NewFactory(client.ListServices, listing.ServicesPageSize, opts...),
		contentclient.Blogs:    listview.NewFactory(client.ListBlogs, listing.BlogsPageSize, opts...),
		contentclient.Events:   listview.NewFactory(client.ListEvents, listing.EventsPageSize, opts...),
	}

	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/services")
	})
	r.GET("/health", handlers.HealthHandler(client.Health))

	r.GET("/services", handlers.ListPageHandler(handlers.Listing{
		Resource: contentclient.Services,
		Title:    "Services",
		Template: "services.tmpl",
		Factory:  factories[contentclient.Services],
	}))
	r.GET("/services/:slug", handlers.DetailPageHandler("service.tmpl", client.ServiceBySlug,
		func(s contentclient.Service) string { return s.Title }))

	r.GET("/blogs", handlers.ListPageHandler(handlers.Listing{
		Resource: contentclient.Blogs,
		Title:    "Blog",
		Template: "blogs.tmpl",
		Factory:  factories[contentclient.Blogs],
	}))
	r.GET("/blogs/:slug", handlers.DetailPageHandler("blog.tmpl", client.BlogBySlug,
		func(b contentclient.Blog) string { return b.Title }))

	r.GET("/events", handlers.ListPageHandler(handlers.Listing{
		Resource: contentclient.Events,
		Title:    "Events",
		Template: "events.tmpl",
		Factory:  factories[contentclient.Events],
	}))
	r.GET("/events/:slug", handlers.DetailPageHandler("event.tmpl", client.EventBySlug,
		func(e contentclient.Event) string { return e.Title }))

	registry := listview.NewRegistry(time.Duration(listing.ViewIdleMinutes) * time.Minute)
	handlers.NewViewsHandler(registry, factories).Register(r.Group("/views"))

	r.NoRoute(handlers.NotFound)

	return r, registry, nil
}
