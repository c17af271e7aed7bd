package search

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/helpcentre-io/helpcentre-api/internal/handler"
	"github.com/helpcentre-io/helpcentre-api/internal/model"
	"github.com/helpcentre-io/helpcentre-api/internal/service/search"
)

type Handler struct {
	service search.SearchServicer
}

func NewHandler(service search.SearchServicer) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/search/:country", h.Search)
	r.GET("/search/:country", h.SearchGet)
}

func (h *Handler) RegisterAdminRoutes(r *gin.RouterGroup) {
	r.PUT("/:region/articles", h.ReplaceArticles)
}

// Search ranks the country's article index against a structured query.
func (h *Handler) Search(c *gin.Context) {
	var req model.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	result, err := h.service.Search(c.Request.Context(), c.Param("country"), req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(result))
}

// SearchGet is the query-string form used by the site's search box:
// ?q=...&limit=...&offset=...&product=...&language=...
func (h *Handler) SearchGet(c *gin.Context) {
	req := model.SearchRequest{Query: c.Query("q")}
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, handler.NewErrorResponse("limit must be a non-negative integer"))
			return
		}
		req.Limit = n
	}
	if v := c.Query("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, handler.NewErrorResponse("offset must be a non-negative integer"))
			return
		}
		req.Offset = n
	}
	if v := c.Query("product"); v != "" {
		req.Filters.Products = []string{v}
	}
	if v := c.Query("language"); v != "" {
		req.Filters.Language = v
	}

	result, err := h.service.Search(c.Request.Context(), c.Param("country"), req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(result))
}

func (h *Handler) ReplaceArticles(c *gin.Context) {
	var items []model.SearchDocument
	if err := c.ShouldBindJSON(&items); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}
	if err := h.service.ReplaceArticles(c.Request.Context(), c.Param("region"), items); err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{"count": len(items)}))
}
