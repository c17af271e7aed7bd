package article

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/helpcentre-io/helpcentre-api/internal/handler"
	"github.com/helpcentre-io/helpcentre-api/internal/service/article"
)

type Handler struct {
	service article.ArticleServicer
}

func NewHandler(service article.ArticleServicer) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	// health before :id so the literal segment wins
	r.GET("/article/health", h.Health)
	r.GET("/article/:id", h.Fetch)
}

// Fetch proxies one knowledge-base article. The upstream document is returned
// as-is with _metadata appended.
func (h *Handler) Fetch(c *gin.Context) {
	country := c.DefaultQuery("country", "gb")
	body, err := h.service.Fetch(c.Request.Context(), c.Param("id"), country)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, body)
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, handler.NewSuccessResponse(h.service.Health()))
}
