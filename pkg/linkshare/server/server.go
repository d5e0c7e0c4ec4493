// Package server assembles the gin engine from the feature handlers.
package server

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/syedhamzaalinaqvi/linkshare/pkg/linkshare/apierror"
	"github.com/syedhamzaalinaqvi/linkshare/pkg/linkshare/catalog"
	"github.com/syedhamzaalinaqvi/linkshare/pkg/linkshare/events"
	"github.com/syedhamzaalinaqvi/linkshare/pkg/linkshare/groups"
	"github.com/syedhamzaalinaqvi/linkshare/pkg/linkshare/linkpreview"
	"github.com/syedhamzaalinaqvi/linkshare/pkg/linkshare/middleware"
	"github.com/syedhamzaalinaqvi/linkshare/pkg/linkshare/store"
	"go.uber.org/zap"

	_ "github.com/syedhamzaalinaqvi/linkshare/api/swagger"
)

// Deps are the collaborators the router is built from
type Deps struct {
	Store     store.Store
	Publisher events.Publisher
	Resolver  *linkpreview.Resolver
	Logger    *zap.Logger
	// WebDist is the built frontend directory; it is served when it exists
	WebDist string
}

// spaRoutes are the client-side routes that get index.html
var spaRoutes = []string{"/", "/submit", "/about"}

func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// New builds the router
func New(d Deps) *gin.Engine {
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	if d.Resolver == nil {
		d.Resolver = linkpreview.NewResolver(linkpreview.WithLogger(d.Logger))
	}

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(d.Logger), middleware.Recovery(d.Logger))

	r.GET("/health", health)

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	{
		api.GET("/health", health)

		groups.NewHandler(d.Store, d.Publisher, d.Logger).RegisterRoutes(api)
		linkpreview.NewHandler(d.Resolver).RegisterRoutes(api)
		catalog.NewHandler().RegisterRoutes(api)
	}

	if d.WebDist != "" {
		if _, err := os.Stat(d.WebDist); err == nil {
			registerFrontend(r, d.WebDist)
			d.Logger.Info("serving frontend", zap.String("dir", d.WebDist))
		} else {
			d.Logger.Info("no frontend build found, API only mode", zap.String("dir", d.WebDist))
		}
	}

	r.NoRoute(func(c *gin.Context) {
		apierror.JSON(c, http.StatusNotFound, "Not found")
	})

	return r
}

func registerFrontend(r *gin.Engine, dir string) {
	r.Static("/assets", filepath.Join(dir, "assets"))
	r.StaticFile("/favicon.ico", filepath.Join(dir, "favicon.ico"))
	r.StaticFile("/robots.txt", filepath.Join(dir, "robots.txt"))

	indexHTML := filepath.Join(dir, "index.html")
	serveIndex := func(c *gin.Context) {
		c.File(indexHTML)
	}
	for _, route := range spaRoutes {
		r.GET(route, serveIndex)
	}
	// detail pages: /group/:id and /group/:id/:slug
	r.GET("/group/*path", serveIndex)
}
