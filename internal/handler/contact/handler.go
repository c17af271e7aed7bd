package contact

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/helpcentre-io/helpcentre-api/internal/handler"
	"github.com/helpcentre-io/helpcentre-api/internal/model"
	"github.com/helpcentre-io/helpcentre-api/internal/service/contact"
)

type Handler struct {
	service contact.ContactServicer
}

func NewHandler(service contact.ContactServicer) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	content := r.Group("/content/:country")
	{
		content.GET("/contact-methods", h.ListMethods)
		content.POST("/contact", h.SubmitForm)
	}
}

func (h *Handler) ListMethods(c *gin.Context) {
	methods, err := h.service.MethodsForCountry(c.Request.Context(), c.Param("country"), c.Query("persona"))
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(methods))
}

func (h *Handler) SubmitForm(c *gin.Context) {
	var req model.ContactFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}
	if err := h.service.SubmitForm(c.Request.Context(), c.Param("country"), &req); err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, &handler.Response{Status: "success", Message: "message accepted"})
}
