// Package catalog serves the fixed option lists used by the submit form.
package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/syedhamzaalinaqvi/linkshare/pkg/linkshare/models"
)

// Handler serves category and country lists
type Handler struct{}

// NewHandler creates a new catalog handler
func NewHandler() *Handler {
	return &Handler{}
}

// Categories returns the recommended categories
// @Summary List categories
// @Description Recommended category values for the submit form
// @Tags catalog
// @Produce json
// @Success 200 {array} string
// @Router /categories [get]
func (h *Handler) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, models.Categories)
}

// Countries returns the selectable countries
// @Summary List countries
// @Description Recommended country values for the submit form
// @Tags catalog
// @Produce json
// @Success 200 {array} string
// @Router /countries [get]
func (h *Handler) Countries(c *gin.Context) {
	c.JSON(http.StatusOK, models.Countries)
}

// RegisterRoutes registers catalog routes
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/categories", h.Categories)
	rg.GET("/countries", h.Countries)
}
