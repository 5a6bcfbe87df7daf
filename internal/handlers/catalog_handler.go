package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/trainer-marketplace/internal/httperr"
	"github.com/BruksfildServices01/trainer-marketplace/internal/httpresp"
	ucCatalog "github.com/BruksfildServices01/trainer-marketplace/internal/usecase/catalog"
)

type CatalogHandler struct {
	catalog *ucCatalog.ListCatalog
}

func NewCatalogHandler(catalog *ucCatalog.ListCatalog) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

func (h *CatalogHandler) Zones(c *gin.Context) {
	out, err := h.catalog.Zones(c.Request.Context())
	if err != nil {
		httperr.Handle(c, err, "failed_to_list_zones")
		return
	}
	httpresp.OK(c, out)
}

func (h *CatalogHandler) Categories(c *gin.Context) {
	out, err := h.catalog.Categories(c.Request.Context())
	if err != nil {
		httperr.Handle(c, err, "failed_to_list_categories")
		return
	}
	httpresp.OK(c, out)
}
