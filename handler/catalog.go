package handler

import (
	"Giftspin/pkg/context"
	"Giftspin/pkg/response"
	"Giftspin/service"

	"github.com/gin-gonic/gin"
)

type Catalog struct {
	CatalogService service.ICatalogService
}

func (h *Catalog) RegisterRouter(r gin.IRouter) {
	g := r.Group("/v1/catalog")
	g.GET("/search", context.Wrap(h.Search))
	g.GET("/gaming", context.Wrap(h.Gaming))
}

// Search ?q=&limit=
func (h *Catalog) Search(c *gin.Context) error {
	q := c.Query("q")
	if q == "" {
		return badRequest("q is required")
	}

	resp, err := h.CatalogService.Search(c.Request.Context(), q, queryInt(c, "limit", 0))
	if err != nil {
		return toBizError(err)
	}
	response.Success(c, resp)
	return nil
}

func (h *Catalog) Gaming(c *gin.Context) error {
	resp, err := h.CatalogService.AllGaming(c.Request.Context())
	if err != nil {
		return toBizError(err)
	}
	response.Success(c, resp)
	return nil
}
