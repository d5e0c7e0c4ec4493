package groups

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/syedhamzaalinaqvi/linkshare/pkg/linkshare/apierror"
	"github.com/syedhamzaalinaqvi/linkshare/pkg/linkshare/events"
	"github.com/syedhamzaalinaqvi/linkshare/pkg/linkshare/models"
	"github.com/syedhamzaalinaqvi/linkshare/pkg/linkshare/store"
	"github.com/syedhamzaalinaqvi/linkshare/pkg/linkshare/validation"
	"go.uber.org/zap"
)

// PublishTimeout bounds how long a create waits on the event publisher
const PublishTimeout = 2 * time.Second

// Handler handles group listing requests
type Handler struct {
	store     store.Store
	publisher events.Publisher
	logger    *zap.Logger
}

// NewHandler creates a new groups handler. A nil publisher or logger is
// replaced with a no-op.
func NewHandler(s store.Store, publisher events.Publisher, logger *zap.Logger) *Handler {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{store: s, publisher: publisher, logger: logger}
}

// GroupResponse represents a group in API responses
type GroupResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Country     string `json:"country"`
	Link        string `json:"link"`
	Owner       string `json:"owner"`
	Members     int    `json:"members"`
	CreatedAt   int64  `json:"createdAt"`
	Slug        string `json:"slug"`
}

func groupToResponse(g models.Group) GroupResponse {
	return GroupResponse{
		ID:          g.ID,
		Name:        g.Name,
		Description: g.Description,
		Category:    g.Category,
		Country:     g.Country,
		Link:        g.Link,
		Owner:       g.Owner,
		Members:     g.Members,
		CreatedAt:   g.CreatedAt,
		Slug:        g.Slug(),
	}
}

func groupsToResponse(groups []models.Group) []GroupResponse {
	responses := make([]GroupResponse, len(groups))
	for i, g := range groups {
		responses[i] = groupToResponse(g)
	}
	return responses
}

// filterGroups applies the optional search and country filters, keeping order
func filterGroups(groups []models.Group, search, country string) []models.Group {
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" && country == "" {
		return groups
	}

	filtered := make([]models.Group, 0, len(groups))
	for _, g := range groups {
		if country != "" && g.Country != country {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(g.Name), search) &&
			!strings.Contains(strings.ToLower(g.Description), search) &&
			!strings.Contains(strings.ToLower(g.Category), search) {
			continue
		}
		filtered = append(filtered, g)
	}
	return filtered
}

// List returns all groups, newest first
// @Summary List groups
// @Description Get all listed groups ordered by submission time, newest first
// @Tags groups
// @Produce json
// @Param search query string false "Case-insensitive match on name, description or category"
// @Param country query string false "Exact country filter"
// @Success 200 {array} GroupResponse
// @Failure 500 {object} apierror.Response
// @Router /groups [get]
func (h *Handler) List(c *gin.Context) {
	groups, err := h.store.GetAll(c.Request.Context())
	if err != nil {
		h.logger.Error("list groups", zap.Error(err))
		apierror.JSON(c, http.StatusInternalServerError, "Failed to fetch groups")
		return
	}

	groups = filterGroups(groups, c.Query("search"), c.Query("country"))
	c.JSON(http.StatusOK, groupsToResponse(groups))
}

// ListByCategory returns the groups in one category
// @Summary List groups in a category
// @Description Get groups whose category matches exactly (case-sensitive), newest first
// @Tags groups
// @Produce json
// @Param category path string true "Category"
// @Success 200 {array} GroupResponse
// @Failure 500 {object} apierror.Response
// @Router /groups/category/{category} [get]
func (h *Handler) ListByCategory(c *gin.Context) {
	category := c.Param("category")

	groups, err := h.store.GetByCategory(c.Request.Context(), category)
	if err != nil {
		h.logger.Error("list groups by category", zap.String("category", category), zap.Error(err))
		apierror.JSON(c, http.StatusInternalServerError, "Failed to fetch groups by category")
		return
	}

	c.JSON(http.StatusOK, groupsToResponse(groups))
}

// Get returns a single group
// @Summary Get a group
// @Description Get a group by its id
// @Tags groups
// @Produce json
// @Param id path int true "Group ID"
// @Success 200 {object} GroupResponse
// @Failure 400 {object} apierror.Response "Invalid ID format"
// @Failure 404 {object} apierror.Response "Group not found"
// @Router /groups/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		apierror.JSON(c, http.StatusBadRequest, "Invalid ID format")
		return
	}

	group, err := h.store.GetByID(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		apierror.JSON(c, http.StatusNotFound, "Group not found")
		return
	}
	if err != nil {
		h.logger.Error("get group", zap.Int64("id", id), zap.Error(err))
		apierror.JSON(c, http.StatusInternalServerError, "Failed to fetch group")
		return
	}

	c.JSON(http.StatusOK, groupToResponse(group))
}

// Create submits a new group
// @Summary Submit a group
// @Description Validate and list a new WhatsApp group invite
// @Tags groups
// @Accept json
// @Produce json
// @Param request body validation.GroupInput true "Group details"
// @Success 201 {object} GroupResponse
// @Failure 400 {object} apierror.Response "Validation error"
// @Failure 500 {object} apierror.Response
// @Router /groups [post]
func (h *Handler) Create(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		apierror.JSON(c, http.StatusBadRequest, "Failed to read request body")
		return
	}

	input, err := validation.Validate(body)
	if err != nil {
		var verrs *validation.Errors
		if errors.As(err, &verrs) {
			apierror.Validation(c, verrs)
			return
		}
		h.logger.Error("validate group", zap.Error(err))
		apierror.JSON(c, http.StatusInternalServerError, "Failed to create group")
		return
	}

	// Checked again here so a change to the shared rules cannot let a
	// non-WhatsApp link through.
	if !validation.IsWhatsAppLink(input.Link) {
		apierror.JSON(c, http.StatusBadRequest, validation.InvalidLinkMessage)
		return
	}

	group, err := h.store.Create(c.Request.Context(), input)
	if err != nil {
		h.logger.Error("create group", zap.Error(err))
		apierror.JSON(c, http.StatusInternalServerError, "Failed to create group")
		return
	}

	pubCtx, cancel := context.WithTimeout(c.Request.Context(), PublishTimeout)
	err = h.publisher.GroupCreated(pubCtx, group)
	cancel()
	if err != nil {
		h.logger.Warn("publish group created", zap.Int64("id", group.ID), zap.Error(err))
	}

	h.logger.Info("group created",
		zap.Int64("id", group.ID),
		zap.String("category", group.Category),
		zap.String("country", group.Country),
	)
	c.JSON(http.StatusCreated, groupToResponse(group))
}

// RegisterRoutes registers group routes
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/groups", h.List)
	rg.POST("/groups", h.Create)
	rg.GET("/groups/category/:category", h.ListByCategory)
	rg.GET("/groups/:id", h.Get)
}
