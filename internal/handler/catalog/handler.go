package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/helpcentre-io/helpcentre-api/internal/handler"
	"github.com/helpcentre-io/helpcentre-api/internal/model"
	"github.com/helpcentre-io/helpcentre-api/internal/service/catalog"
)

type Handler struct {
	service catalog.CatalogServicer
}

func NewHandler(service catalog.CatalogServicer) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	content := r.Group("/content/:country")
	{
		content.GET("/products", h.ListProducts)
		content.GET("/topics", h.ListTopics)
		content.GET("/products/:productId/topics", h.ProductLandingTopics)
		content.GET("/products/:productId/topics/:topicId/subtopics", h.Subtopics)
		content.GET("/products/:productId/release-notes", h.ReleaseNotes)
	}
}

func (h *Handler) RegisterAdminRoutes(r *gin.RouterGroup) {
	admin := r.Group("/:region")
	{
		admin.PUT("/products", h.ReplaceProducts)
		admin.PUT("/products/:id", h.UpsertProduct)
		admin.DELETE("/products/:id", h.DeleteProduct)
		admin.POST("/products/:id/reorder", h.ReorderProducts)

		admin.PUT("/topics", h.ReplaceTopics)
		admin.PUT("/topics/:id", h.UpsertTopic)
		admin.DELETE("/topics/:id", h.DeleteTopic)
		admin.POST("/topics/:id/reorder", h.ReorderTopics)

		admin.PUT("/release-notes", h.ReplaceReleaseNotes)
	}
}

func (h *Handler) ListProducts(c *gin.Context) {
	products, err := h.service.ProductsForCountry(c.Request.Context(), c.Param("country"), c.Query("persona"))
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(products))
}

func (h *Handler) ListTopics(c *gin.Context) {
	topics, err := h.service.TopicsForCountry(c.Request.Context(), c.Param("country"))
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(topics))
}

func (h *Handler) ProductLandingTopics(c *gin.Context) {
	topics, err := h.service.ProductLandingTopics(c.Request.Context(), c.Param("country"), c.Param("productId"))
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(topics))
}

func (h *Handler) Subtopics(c *gin.Context) {
	topics, err := h.service.Subtopics(c.Request.Context(), c.Param("country"), c.Param("productId"), c.Param("topicId"))
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(topics))
}

func (h *Handler) ReleaseNotes(c *gin.Context) {
	notes, err := h.service.ReleaseNotesForCountry(c.Request.Context(), c.Param("country"), c.Param("productId"))
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(notes))
}

// ReplaceProducts swaps the region's whole product document. Last write wins.
func (h *Handler) ReplaceProducts(c *gin.Context) {
	var items []model.Product
	if err := c.ShouldBindJSON(&items); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}
	if err := h.service.ReplaceProducts(c.Request.Context(), c.Param("region"), items); err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{"count": len(items)}))
}

func (h *Handler) UpsertProduct(c *gin.Context) {
	var item model.Product
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}
	item.ID = c.Param("id")
	if err := h.service.UpsertProduct(c.Request.Context(), c.Param("region"), &item); err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(item))
}

func (h *Handler) DeleteProduct(c *gin.Context) {
	if err := h.service.DeleteProduct(c.Request.Context(), c.Param("region"), c.Param("id")); err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, &handler.Response{Status: "success", Message: "product deleted"})
}

type reorderRequest struct {
	BeforeID string `json:"beforeId"`
}

// ReorderProducts moves a product before another, or to the end when beforeId
// is empty.
func (h *Handler) ReorderProducts(c *gin.Context) {
	var req reorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}
	if err := h.service.ReorderProducts(c.Request.Context(), c.Param("region"), c.Param("id"), req.BeforeID); err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, &handler.Response{Status: "success", Message: "products reordered"})
}

func (h *Handler) ReplaceTopics(c *gin.Context) {
	var items []model.Topic
	if err := c.ShouldBindJSON(&items); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}
	if err := h.service.ReplaceTopics(c.Request.Context(), c.Param("region"), items); err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{"count": len(items)}))
}

func (h *Handler) UpsertTopic(c *gin.Context) {
	var item model.Topic
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}
	item.ID = c.Param("id")
	if err := h.service.UpsertTopic(c.Request.Context(), c.Param("region"), &item); err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(item))
}

func (h *Handler) DeleteTopic(c *gin.Context) {
	if err := h.service.DeleteTopic(c.Request.Context(), c.Param("region"), c.Param("id")); err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, &handler.Response{Status: "success", Message: "topic deleted"})
}

func (h *Handler) ReorderTopics(c *gin.Context) {
	var req reorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}
	if err := h.service.ReorderTopics(c.Request.Context(), c.Param("region"), c.Param("id"), req.BeforeID); err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, &handler.Response{Status: "success", Message: "topics reordered"})
}

func (h *Handler) ReplaceReleaseNotes(c *gin.Context) {
	var items []model.ReleaseNote
	if err := c.ShouldBindJSON(&items); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}
	if err := h.service.ReplaceReleaseNotes(c.Request.Context(), c.Param("region"), items); err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{"count": len(items)}))
}
