package notice

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/helpcentre-io/helpcentre-api/internal/content"
	"github.com/helpcentre-io/helpcentre-api/internal/handler"
	"github.com/helpcentre-io/helpcentre-api/internal/model"
	"github.com/helpcentre-io/helpcentre-api/internal/service/notice"
)

type Handler struct {
	service notice.NoticeServicer
}

func NewHandler(service notice.NoticeServicer) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	content := r.Group("/content/:country")
	{
		content.GET("/banner", h.ActiveBanner)
		content.GET("/popup", h.EligiblePopup)
		content.POST("/popup/:id/dismiss", h.DismissPopup)
	}
}

func (h *Handler) RegisterAdminRoutes(r *gin.RouterGroup) {
	admin := r.Group("/:region")
	{
		admin.PUT("/banners", h.ReplaceBanners)
		admin.PUT("/banners/:id", h.UpsertBanner)
		admin.DELETE("/banners/:id", h.DeleteBanner)

		admin.PUT("/popups", h.ReplacePopups)
		admin.PUT("/popups/:id", h.UpsertPopup)
		admin.DELETE("/popups/:id", h.DeletePopup)
	}
}

// pageContext builds the matching context from query parameters: the product
// and topic the visitor is on, and the page path for pattern scopes.
func pageContext(c *gin.Context) content.PageContext {
	return content.PageContext{
		ProductID: c.Query("productId"),
		TopicID:   c.Query("topicId"),
		Path:      c.Query("path"),
	}
}

// ActiveBanner returns the single banner for the page, or null data when none
// applies.
func (h *Handler) ActiveBanner(c *gin.Context) {
	banner, err := h.service.ActiveBanner(c.Request.Context(), c.Param("country"), pageContext(c))
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(banner))
}

func (h *Handler) EligiblePopup(c *gin.Context) {
	offer, err := h.service.EligiblePopup(c.Request.Context(), c.Param("country"), c.Query("clientId"), pageContext(c))
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(offer))
}

func (h *Handler) DismissPopup(c *gin.Context) {
	clientID := c.Query("clientId")
	if clientID == "" {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("clientId is required"))
		return
	}
	if err := h.service.DismissPopup(c.Request.Context(), clientID, c.Param("id")); err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, &handler.Response{Status: "success", Message: "popup dismissed"})
}

func (h *Handler) ReplaceBanners(c *gin.Context) {
	var items []model.IncidentBanner
	if err := c.ShouldBindJSON(&items); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}
	if err := h.service.ReplaceBanners(c.Request.Context(), c.Param("region"), items); err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{"count": len(items)}))
}

func (h *Handler) UpsertBanner(c *gin.Context) {
	var item model.IncidentBanner
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}
	item.ID = c.Param("id")
	if err := h.service.UpsertBanner(c.Request.Context(), c.Param("region"), &item); err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(item))
}

func (h *Handler) DeleteBanner(c *gin.Context) {
	if err := h.service.DeleteBanner(c.Request.Context(), c.Param("region"), c.Param("id")); err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, &handler.Response{Status: "success", Message: "banner deleted"})
}

func (h *Handler) ReplacePopups(c *gin.Context) {
	var items []model.PopupModal
	if err := c.ShouldBindJSON(&items); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}
	if err := h.service.ReplacePopups(c.Request.Context(), c.Param("region"), items); err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{"count": len(items)}))
}

func (h *Handler) UpsertPopup(c *gin.Context) {
	var item model.PopupModal
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}
	item.ID = c.Param("id")
	if err := h.service.UpsertPopup(c.Request.Context(), c.Param("region"), &item); err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(item))
}

func (h *Handler) DeletePopup(c *gin.Context) {
	if err := h.service.DeletePopup(c.Request.Context(), c.Param("region"), c.Param("id")); err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, &handler.Response{Status: "success", Message: "popup deleted"})
}
