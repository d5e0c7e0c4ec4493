package linkpreview

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/syedhamzaalinaqvi/linkshare/pkg/linkshare/apierror"
	"github.com/syedhamzaalinaqvi/linkshare/pkg/linkshare/validation"
)

// Handler serves link previews over HTTP
type Handler struct {
	resolver *Resolver
}

// NewHandler creates a new link preview handler
func NewHandler(resolver *Resolver) *Handler {
	return &Handler{resolver: resolver}
}

// Get returns preview metadata for a WhatsApp invite link
// @Summary Preview an invite link
// @Description Fetch title, description and image for a WhatsApp invite link. Defaults are returned when the page cannot be read.
// @Tags link-preview
// @Produce json
// @Param url query string true "WhatsApp invite URL"
// @Success 200 {object} Preview
// @Failure 400 {object} apierror.Response "Missing or invalid URL"
// @Router /link-preview [get]
func (h *Handler) Get(c *gin.Context) {
	url := c.Query("url")
	if url == "" {
		apierror.JSON(c, http.StatusBadRequest, "URL parameter is required")
		return
	}
	if !validation.IsWhatsAppLink(url) {
		apierror.JSON(c, http.StatusBadRequest, validation.InvalidLinkMessage)
		return
	}

	result := h.resolver.Resolve(c.Request.Context(), url)

	c.Header("X-Preview-Source", result.Source.String())
	c.JSON(http.StatusOK, result.Preview)
}

// RegisterRoutes registers link preview routes
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/link-preview", h.Get)
}
